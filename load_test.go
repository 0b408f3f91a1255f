// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathkit

package pathkit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRulesFile(t *testing.T, name string, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadRulesFile(t *testing.T) {
	t.Parallel()

	rules, err := LoadRulesFile(writeRulesFile(t, ".rules", "*.tmp\n!keep.tmp\n"))
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, ActionExclude, rules[0].Action)
	assert.Equal(t, ActionInclude, rules[1].Action)
}

func TestLoadRulesFileYAML(t *testing.T) {
	t.Parallel()

	path := writeRulesFile(t, "rules.yaml", `
rules:
  - pattern: "*.tmp"
    action: exclude
  - pattern: keep.tmp
    action: include
matcher_options:
  case_insensitive: true
`)

	rules, err := LoadRulesFile(path)
	require.NoError(t, err)
	assert.Equal(t, []Rule{
		{Action: ActionExclude, Pattern: "*.tmp"},
		{Action: ActionInclude, Pattern: "keep.tmp"},
	}, rules)
}

func TestLoadRulesFiles(t *testing.T) {
	t.Parallel()

	p1 := writeRulesFile(t, "a.rules", "*.tmp\n")
	p2 := writeRulesFile(t, "b.yml", "rules:\n  - {pattern: keep.tmp, action: keep}\n")

	rules, err := LoadRulesFiles(p1, p2)
	require.NoError(t, err)
	assert.Equal(t, []Rule{
		{Action: ActionExclude, Pattern: "*.tmp"},
		{Action: ActionInclude, Pattern: "keep.tmp"},
	}, rules)

	_, err = LoadRulesFiles(p1, filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestParseRuleSet(t *testing.T) {
	t.Parallel()

	rs, err := ParseRuleSet(strings.NewReader(`
rules:
  - pattern: "src/**/*.go"
    action: include
matcher_options:
  default_action: exclude
  glob:
    extended: true
    globstar: true
`))
	require.NoError(t, err)
	assert.Equal(t, ActionExclude, rs.Options.DefaultAction)

	m, err := rs.Matcher()
	require.NoError(t, err)
	assert.True(t, m.Included("src/a/b.go", false))
	assert.False(t, m.Included("README.md", false))

	empty, err := ParseRuleSet(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, empty.Rules)

	_, err = ParseRuleSet(strings.NewReader("rules:\n  - pattern: x\n    action: maybe\n"))
	require.ErrorIs(t, err, ErrInvalidRule)

	_, err = ParseRuleSet(strings.NewReader("rules:\n  - pattern: x\n"))
	require.ErrorIs(t, err, ErrInvalidRule)

	_, err = ParseRuleSet(strings.NewReader("rulez: []\n"))
	require.ErrorIs(t, err, ErrInvalidRule)
}
