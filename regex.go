// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathkit

package pathkit

import (
	"fmt"
	"regexp"

	"github.com/dlclark/regexp2"
)

// regex is compiled expression backed by RE2 regexp, or by regexp2 when the
// expression needs lookahead.
type regex struct {
	std    *regexp.Regexp
	ext    *regexp2.Regexp
	source string
}

// compileRegex compiles expr, selecting regexp2 when lookaround is set.
func compileRegex(expr string, lookaround bool) (*regex, error) {
	if lookaround {
		re, err := regexp2.Compile(expr, regexp2.RE2)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
		}

		return &regex{ext: re, source: expr}, nil
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	return &regex{std: re, source: expr}, nil
}

// String returns expression source.
func (r *regex) String() string {
	return r.source
}

// count returns number of non-overlapping matches in s, stopping at limit.
func (r *regex) count(s string, limit int) int {
	if r.std != nil {
		return len(r.std.FindAllStringIndex(s, limit))
	}

	n := 0
	m, err := r.ext.FindStringMatch(s)
	for err == nil && m != nil && n < limit {
		n++
		m, err = r.ext.FindNextMatch(m)
	}

	return n
}

// matchOne reports whether s yields exactly one match.
func (r *regex) matchOne(s string) bool {
	return r.count(s, 2) == 1
}
