// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathkit

//go:build !windows

package pathkit

// Native is the path flavor of the current platform.
const Native = Posix
