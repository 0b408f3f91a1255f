// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathkit

package pathkit

import (
	"fmt"
	"strings"
)

// Matcher evaluates path decisions against compiled ordered rules.
type Matcher struct {
	compiled        []compiledRule
	defaultAction   Action
	caseInsensitive bool
}

// NewMatcher compiles ordered rules into matcher.
func NewMatcher(rules []Rule, opts MatcherOptions) (*Matcher, error) {
	opts.applyDefaults()

	compiled := make([]compiledRule, 0, len(rules))
	for i, rule := range rules {
		cr, err := compileRule(rule, opts)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}

		compiled = append(compiled, *cr)
	}

	return &Matcher{
		compiled:        compiled,
		defaultAction:   opts.DefaultAction,
		caseInsensitive: opts.CaseInsensitive,
	}, nil
}

// Decide returns deterministic include/exclude decision for one path.
//
// Decision policy:
// - last matched rule wins
// - if no rule matched, default action is used
func (m *Matcher) Decide(path string, isDir bool) MatchResult {
	return m.decide(normalizePath(path), isDir)
}

// DecideInDir returns decisions for multiple entries of one directory.
//
// Directory is normalized once; entry names must be single path components.
func (m *Matcher) DecideInDir(dir string, entries []DirEntry) ([]MatchResult, error) {
	prefix := normalizePath(dir)
	if prefix != "" {
		prefix += "/"
	}

	results := make([]MatchResult, len(entries))
	for i := range entries {
		name, err := cleanEntryName(entries[i].Name)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%q): %w", i, entries[i].Name, err)
		}

		results[i] = m.decide(prefix+name, entries[i].IsDir)
	}

	return results, nil
}

// Included reports whether path is included by decision policy.
func (m *Matcher) Included(path string, isDir bool) bool {
	return m.Decide(path, isDir).Included
}

// Excluded reports whether path is excluded by decision policy.
func (m *Matcher) Excluded(path string, isDir bool) bool {
	return !m.Decide(path, isDir).Included
}

// Len returns number of compiled rules.
func (m *Matcher) Len() int {
	return len(m.compiled)
}

func (m *Matcher) decide(candidate string, isDir bool) MatchResult {
	if m.caseInsensitive {
		candidate = asciiLower(candidate)
	}

	res := MatchResult{
		Included:  m.defaultAction == ActionInclude,
		Matched:   false,
		RuleIndex: -1,
	}

	for i := range m.compiled {
		if !m.compiled[i].matches(candidate, isDir) {
			continue
		}

		res.Matched = true
		res.RuleIndex = i
		res.Included = m.compiled[i].source.Action == ActionInclude
	}

	return res
}

// cleanEntryName validates one directory entry name.
func cleanEntryName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", ErrInvalidEntryName
	}

	return name, nil
}
