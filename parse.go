// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathkit

package pathkit

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// ParseRules parses gitignore-like rules from reader.
//
// Semantics:
// - blank lines and comments are ignored
// - "!" creates include rule
// - plain lines create exclude rule
// - "\#" and "\!" escape leading comment/negation tokens
// - lines must be valid UTF-8
func ParseRules(r io.Reader) ([]Rule, error) {
	s := bufio.NewScanner(r)
	rules := make([]Rule, 0, 16)

	for lineNo := 1; s.Scan(); lineNo++ {
		line := s.Text()
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrInvalidEncoding)
		}

		if rule, ok := parseRuleLine(line); ok {
			rules = append(rules, rule)
		}
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan rules: %w", err)
	}

	return rules, nil
}

// ParseRulesString parses rules from string input.
func ParseRulesString(src string) ([]Rule, error) {
	return ParseRules(strings.NewReader(src))
}

// parseRuleLine converts one source line to rule; ok is false for blanks and comments.
func parseRuleLine(line string) (Rule, bool) {
	line = trimTrailingSpaces(strings.TrimRight(line, "\r"))
	if line == "" || strings.HasPrefix(line, "#") {
		return Rule{}, false
	}

	if strings.HasPrefix(line, `\#`) {
		line = line[1:]
	}

	action := ActionExclude
	switch {
	case strings.HasPrefix(line, "!"):
		action = ActionInclude
		line = line[1:]
	case strings.HasPrefix(line, `\!`):
		line = line[1:]
	}

	if line == "" {
		return Rule{}, false
	}

	return Rule{Action: action, Pattern: line}, true
}

// trimTrailingSpaces removes trailing spaces unless escaped by "\".
func trimTrailingSpaces(s string) string {
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		if len(s) >= 2 && s[len(s)-2] == '\\' {
			s = s[:len(s)-2] + s[len(s)-1:]
			break
		}

		s = s[:len(s)-1]
	}

	return s
}
