// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathkit

package pathkit

import "strings"

// ParseExtensions converts extension list to include rules.
//
// Accepted extension forms:
//   - "txt"
//   - ".txt"
//   - "*.txt"
//
// Empty values are skipped. Returned patterns are normalized to lower-case
// "*.ext" form and preserve input order.
func ParseExtensions(exts []string) []Rule {
	cleaned := cleanExtensions(exts)
	rules := make([]Rule, 0, len(cleaned))
	for _, ext := range cleaned {
		rules = append(rules, Rule{
			Action:  ActionInclude,
			Pattern: "*." + ext,
		})
	}

	return rules
}

// ExtensionsPattern builds one brace glob "*.{a,b}" matching any extension.
//
// Returns empty string when no extension survives cleaning.
func ExtensionsPattern(exts []string) string {
	cleaned := cleanExtensions(exts)
	switch len(cleaned) {
	case 0:
		return ""
	case 1:
		return "*." + cleaned[0]
	default:
		return "*.{" + strings.Join(cleaned, ",") + "}"
	}
}

// cleanExtensions strips "*." and leading dots, lower-cases and drops
// empty and duplicate values.
func cleanExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	seen := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		ext = strings.TrimPrefix(ext, "*.")
		ext = strings.TrimLeft(ext, ".")
		ext = asciiLower(ext)
		if ext == "" {
			continue
		}

		if _, ok := seen[ext]; ok {
			continue
		}
		seen[ext] = struct{}{}
		out = append(out, ext)
	}

	return out
}
