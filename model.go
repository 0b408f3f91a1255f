// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathkit

package pathkit

import (
	"fmt"
	"strings"
)

// Action represents a decision action of one rule.
type Action uint8

const (
	// ActionUnknown is unset/invalid action placeholder.
	ActionUnknown Action = iota
	// ActionExclude means matching path should be excluded.
	ActionExclude
	// ActionInclude means matching path should be included.
	ActionInclude
)

// Rule is one user-visible path rule.
type Rule struct {
	// Pattern is a gitignore-like glob pattern.
	Pattern string `json:"pattern" yaml:"pattern"`
	// Action is a decision action applied when the rule matches.
	Action Action `json:"action" yaml:"action"`
}

// MatcherOptions controls matcher behavior.
type MatcherOptions struct {
	// Glob controls rule pattern compilation.
	// Zero value enables extended syntax and globstar; flavor is always POSIX.
	Glob GlobOptions `json:"glob" yaml:"glob"`
	// CaseInsensitive enables ASCII case-insensitive matching.
	CaseInsensitive bool `json:"case_insensitive,omitempty" yaml:"case_insensitive,omitempty"`
	// DefaultAction is applied when no rule matched.
	DefaultAction Action `json:"default_action,omitempty" yaml:"default_action,omitempty"`
}

// MatchResult is a deterministic decision produced by matcher.
type MatchResult struct {
	// Included reports final include decision.
	Included bool `json:"included" yaml:"included"`
	// Matched reports whether at least one rule matched.
	Matched bool `json:"matched" yaml:"matched"`
	// RuleIndex is the matched rule index in matcher input order, -1 when no match.
	RuleIndex int `json:"rule_index" yaml:"rule_index"`
}

// DirEntry is one directory entry input for Matcher.DecideInDir.
type DirEntry struct {
	// Name is entry name inside directory, without separators.
	Name string `json:"name" yaml:"name"`
	// IsDir reports whether entry is a directory.
	IsDir bool `json:"is_dir,omitempty" yaml:"is_dir,omitempty"`
}

// applyDefaults fills zero-valued options with defaults.
func (opts *MatcherOptions) applyDefaults() {
	if !opts.DefaultAction.valid() {
		opts.DefaultAction = ActionInclude
	}

	if opts.Glob == (GlobOptions{}) {
		opts.Glob = GlobOptions{Extended: true, Globstar: true}
	}

	// Candidates are always slash-separated whole paths.
	opts.Glob.Flavor = Posix
	opts.Glob.Filepath = false
}

// valid reports whether action value is supported.
func (a Action) valid() bool {
	return a == ActionExclude || a == ActionInclude
}

// String returns action name.
func (a Action) String() string {
	switch a {
	case ActionExclude:
		return "exclude"
	case ActionInclude:
		return "include"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Action) MarshalText() ([]byte, error) {
	if !a.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAction, a)
	}

	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Action) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "exclude", "ignore", "deny":
		*a = ActionExclude
	case "include", "keep", "allow":
		*a = ActionInclude
	default:
		return fmt.Errorf("%w: %q", ErrInvalidAction, text)
	}

	return nil
}
