// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathkit

package pathkit

import "strings"

// ParsedPath is path decomposed into root, directory, base, name and extension.
type ParsedPath struct {
	// Root is "/", "C:\", "C:" or "\\server\share\", empty for relative paths.
	Root string `json:"root" yaml:"root"`
	// Dir is everything before the last separator, Root when there is none.
	Dir string `json:"dir" yaml:"dir"`
	// Base is last segment.
	Base string `json:"base" yaml:"base"`
	// Name is Base without Ext.
	Name string `json:"name" yaml:"name"`
	// Ext is Base extension including leading dot.
	Ext string `json:"ext" yaml:"ext"`
}

// String formats parsed path with Native flavor.
func (pp ParsedPath) String() string {
	return Native.Format(pp)
}

// Parse decomposes p with Native flavor.
func Parse(p string) ParsedPath { return Native.Parse(p) }

// Format composes pp with Native flavor.
func Format(pp ParsedPath) string { return Native.Format(pp) }

// Parse decomposes p into root, dir, base, name and ext.
func (f Flavor) Parse(p string) ParsedPath {
	if p == "" {
		return ParsedPath{}
	}

	if f.resolve() == Win32 {
		return parseWin32(p)
	}

	return parsePosix(p)
}

// Format composes pp; Dir falls back to Root and Base to Name+Ext.
func (f Flavor) Format(pp ParsedPath) string {
	dir := pp.Dir
	if dir == "" {
		dir = pp.Root
	}

	base := pp.Base
	if base == "" {
		base = pp.Name + pp.Ext
	}

	switch {
	case dir == "":
		return base
	case dir == pp.Root:
		return dir + base
	default:
		return dir + f.Separator() + base
	}
}

// JoinParsed joins formatted a and b and parses result.
func (f Flavor) JoinParsed(a ParsedPath, b ParsedPath) ParsedPath {
	return f.Parse(f.Join(f.Format(a), f.Format(b)))
}

// parsePosix splits POSIX path into root, dir, base, name and ext.
func parsePosix(p string) ParsedPath {
	var pp ParsedPath

	start := 0
	if p[0] == '/' {
		pp.Root = "/"
		start = 1
	}

	startPart := fillBase(&pp, p, start, isPosixSeparator)
	switch {
	case startPart > start:
		pp.Dir = p[:startPart-1]
	case pp.Root != "":
		pp.Dir = "/"
	}

	return pp
}

// parseWin32 splits Win32 path, taking drive or UNC root first.
func parseWin32(p string) ParsedPath {
	var pp ParsedPath

	if len(p) == 1 && isWin32Separator(p[0]) {
		pp.Root, pp.Dir = p, p
		return pp
	}

	root := scanWin32Root(p)
	rootEnd := root.end
	switch {
	case strings.HasPrefix(root.device, `\\`) && !root.uncOnly:
		// UNC root includes the separator after share.
		rootEnd++
	case root.device != "" && !strings.HasPrefix(root.device, `\\`) && rootEnd == len(p):
		// Bare "C:" or "C:\".
		pp.Root, pp.Dir = p, p
		return pp
	}

	if rootEnd > 0 {
		pp.Root = p[:rootEnd]
	}

	startPart := fillBase(&pp, p, rootEnd, isWin32Separator)
	if startPart > 0 && startPart != rootEnd {
		pp.Dir = p[:startPart-1]
	} else {
		pp.Dir = pp.Root
	}

	return pp
}

// fillBase sets Base, Name and Ext from last segment at or after start and
// returns offset of that segment.
func fillBase(pp *ParsedPath, p string, start int, isSeparator func(byte) bool) int {
	startDot, startPart, end, ok := scanLastSegment(p, start, isSeparator)
	switch {
	case ok:
		pp.Name = p[startPart:startDot]
		pp.Base = p[startPart:end]
		pp.Ext = p[startDot:end]
	case end != -1:
		pp.Base = p[startPart:end]
		pp.Name = pp.Base
	}

	return startPart
}
