// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathkit

package pathkit

import (
	"fmt"
	"strings"
)

// compiledRule is matcher-internal compiled representation of one rule.
type compiledRule struct {
	// componentGlob matches basename/component patterns without slash in source.
	componentGlob *Glob
	// pathGlob matches full path patterns.
	pathGlob *Glob
	// componentExact matches basename/component patterns without glob meta.
	componentExact string
	// pathExact matches full path patterns without glob meta.
	pathExact string
	// source is original source rule.
	source Rule
	// anchored means source pattern starts with "/".
	anchored bool
	// dirOnly means source pattern ends with "/".
	dirOnly bool
	// hasSlash means source pattern contains "/" after normalization.
	hasSlash bool
}

// compileRule compiles one source rule, using literal comparison when the
// pattern has no glob syntax and a compiled glob otherwise.
func compileRule(rule Rule, opts MatcherOptions) (*compiledRule, error) {
	if !rule.Action.valid() {
		return nil, fmt.Errorf("%w: unsupported action %d", ErrInvalidRule, rule.Action)
	}

	pattern := normalizePattern(rule.Pattern)
	if opts.CaseInsensitive {
		pattern = asciiLower(pattern)
	}

	if pattern == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidPattern)
	}

	cr := &compiledRule{
		source:   rule,
		anchored: strings.HasPrefix(pattern, "/"),
		dirOnly:  strings.HasSuffix(pattern, "/"),
	}

	pattern = strings.Trim(pattern, "/")
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty after normalization (%q)", ErrInvalidPattern, rule.Pattern)
	}

	// Anchored patterns ("/name") must be matched against full path from root
	// even when they do not contain an explicit slash after normalization.
	cr.hasSlash = strings.Contains(pattern, "/") || cr.anchored
	hasMeta := patternHasGlobMeta(pattern)

	if !cr.hasSlash {
		if !hasMeta {
			cr.componentExact = pattern
			return cr, nil
		}

		g, err := CompileGlob(pattern, opts.Glob)
		if err != nil {
			return nil, fmt.Errorf("compile component %q: %w", rule.Pattern, err)
		}

		cr.componentGlob = g
		return cr, nil
	}

	if !hasMeta {
		cr.pathExact = pattern
		return cr, nil
	}

	// Unanchored path rules may start at any directory depth.
	if !cr.anchored && !strings.HasPrefix(pattern, "**/") {
		pattern = "**/" + pattern
	}

	g, err := CompileGlob(pattern, opts.Glob)
	if err != nil {
		return nil, fmt.Errorf("compile path %q: %w", rule.Pattern, err)
	}

	cr.pathGlob = g
	return cr, nil
}

// matches reports whether compiled rule matches normalized candidate path.
func (r *compiledRule) matches(candidate string, isDir bool) bool {
	if candidate == "" {
		return false
	}

	if r.hasSlash {
		if r.pathExact != "" {
			return matchExactPathRule(r.pathExact, candidate, isDir, r.anchored, r.dirOnly)
		}

		if !r.dirOnly {
			return r.pathGlob.Match(candidate)
		}

		return matchDirOnlyPath(r.pathGlob.Match, candidate, isDir)
	}

	if r.componentExact != "" {
		if !r.dirOnly {
			return pathBase(candidate) == r.componentExact
		}

		return matchDirOnlyComponent(func(s string) bool { return s == r.componentExact }, candidate, isDir)
	}

	if !r.dirOnly {
		return r.componentGlob.Match(pathBase(candidate))
	}

	return matchDirOnlyComponent(r.componentGlob.Match, candidate, isDir)
}

// patternHasGlobMeta reports whether pattern contains glob syntax.
func patternHasGlobMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[]{}()")
}

// matchExactPathRule matches slash-containing literal pattern without regexp.
func matchExactPathRule(pattern string, candidate string, isDir bool, anchored bool, dirOnly bool) bool {
	if pattern == "" || candidate == "" {
		return false
	}

	if anchored {
		if !dirOnly {
			return candidate == pattern
		}

		return candidate == pattern || strings.HasPrefix(candidate, pattern+"/")
	}

	if !dirOnly {
		return candidate == pattern || strings.HasSuffix(candidate, "/"+pattern)
	}

	return containsDirPath(pattern, candidate, isDir)
}

// containsDirPath reports whether candidate contains pattern as directory path segment.
func containsDirPath(pattern string, candidate string, isDir bool) bool {
	for start := 0; start < len(candidate); {
		idx := strings.Index(candidate[start:], pattern)
		if idx < 0 {
			return false
		}

		idx += start
		beforeOK := idx == 0 || candidate[idx-1] == '/'
		after := idx + len(pattern)
		afterOK := after == len(candidate) || candidate[after] == '/'
		if beforeOK && afterOK && (after < len(candidate) || isDir) {
			return true
		}

		start = idx + 1
	}

	return false
}

// matchDirOnlyPath matches directory path rule against every ancestor of
// candidate and candidate itself when it is a directory.
func matchDirOnlyPath(match func(string) bool, candidate string, isDir bool) bool {
	for i := 0; i < len(candidate); i++ {
		if candidate[i] == '/' && match(candidate[:i]) {
			return true
		}
	}

	return isDir && match(candidate)
}

// matchDirOnlyComponent matches dir-only component rule without allocating split slices.
func matchDirOnlyComponent(match func(string) bool, candidate string, isDir bool) bool {
	start := 0
	for i := 0; i <= len(candidate); i++ {
		if i != len(candidate) && candidate[i] != '/' {
			continue
		}

		if i > start {
			// For file paths, skip the last component (basename).
			if i == len(candidate) && !isDir {
				return false
			}

			if match(candidate[start:i]) {
				return true
			}
		}

		start = i + 1
	}

	return false
}
