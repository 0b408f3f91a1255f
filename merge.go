// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathkit

package pathkit

import "slices"

// MergeRules merges rule slices preserving input order.
//
// Later rules win in Matcher, so sets passed last take precedence.
func MergeRules(ruleSets ...[]Rule) []Rule {
	if len(ruleSets) == 0 {
		return []Rule{}
	}

	return slices.Concat(ruleSets...)
}
