// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathkit

package pathkit

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// RuleSet is YAML rules document with matcher options.
type RuleSet struct {
	// Rules are ordered rules, later rules win.
	Rules []Rule `json:"rules" yaml:"rules"`
	// Options configures matcher built from Rules.
	Options MatcherOptions `json:"matcher_options" yaml:"matcher_options"`
}

// Matcher compiles rule set into matcher.
func (rs RuleSet) Matcher() (*Matcher, error) {
	return NewMatcher(rs.Rules, rs.Options)
}

// ParseRuleSet decodes YAML rules document.
//
// Unknown fields are rejected. Actions and flavors are decoded by name.
func ParseRuleSet(r io.Reader) (RuleSet, error) {
	var rs RuleSet

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&rs); err != nil {
		if errors.Is(err, io.EOF) {
			return RuleSet{}, nil
		}

		return RuleSet{}, fmt.Errorf("%w: decode rule set: %w", ErrInvalidRule, err)
	}

	for i, rule := range rs.Rules {
		if !rule.Action.valid() {
			return RuleSet{}, fmt.Errorf("%w: rule %d (%q): missing action", ErrInvalidRule, i, rule.Pattern)
		}
	}

	return rs, nil
}

// LoadRulesFile reads rules from a file.
//
// Files with ".yaml" or ".yml" extension are decoded as RuleSet and their
// matcher options are dropped; other files are gitignore-like text.
func LoadRulesFile(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open rules file: %w", err)
	}

	if isYAMLFile(path) {
		rs, err := ParseRuleSet(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("parse rules file %s: %w", path, err)
		}

		return rs.Rules, nil
	}

	rules, err := ParseRules(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse rules file %s: %w", path, err)
	}

	return rules, nil
}

// LoadRulesFiles reads and merges rules from files in the given order.
//
// Returned rules preserve file order and rule order inside each file.
func LoadRulesFiles(paths ...string) ([]Rule, error) {
	sets := make([][]Rule, 0, len(paths))
	for _, path := range paths {
		rules, err := LoadRulesFile(path)
		if err != nil {
			return nil, err
		}

		sets = append(sets, rules)
	}

	return MergeRules(sets...), nil
}

// isYAMLFile reports whether path has YAML extension in any flavor.
func isYAMLFile(path string) bool {
	switch strings.ToLower(Win32.Extname(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
