// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathkit

package pathkit

import (
	"errors"
	"fmt"
)

// Sentinel errors for pathkit operations.
var (
	// ErrInvalidPattern indicates malformed or unsupported glob pattern.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrPatternTooComplex indicates glob group nesting deeper than MaxGroupDepth.
	ErrPatternTooComplex = fmt.Errorf("%w: pattern too complex", ErrInvalidPattern)
	// ErrInvalidEncoding indicates input text that is not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid encoding")
	// ErrInvalidRule indicates malformed or unsupported rule input.
	ErrInvalidRule = errors.New("invalid rule")
	// ErrInvalidAction indicates unknown rule action name.
	ErrInvalidAction = errors.New("invalid action")
	// ErrInvalidFlavor indicates unknown path flavor name.
	ErrInvalidFlavor = errors.New("invalid flavor")
	// ErrInvalidEntryName indicates directory entry name that is not a single component.
	ErrInvalidEntryName = errors.New("invalid entry name")
)
