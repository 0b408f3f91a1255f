// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathkit

package pathkit

import "strings"

// posixNormalize normalizes p keeping leading root and trailing separator.
func posixNormalize(p string) string {
	if p == "" {
		return "."
	}

	isAbsolute := p[0] == '/'
	trailingSeparator := p[len(p)-1] == '/'

	out := normalizeSegments(p, !isAbsolute, "/", isPosixSeparator)
	if out == "" && !isAbsolute {
		out = "."
	}
	if out != "" && trailingSeparator {
		out += "/"
	}

	if isAbsolute {
		return "/" + out
	}

	return out
}

// posixJoin joins non-empty parts with "/" and normalizes result.
func posixJoin(parts []string) string {
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('/')
		}
		b.WriteString(part)
	}

	if b.Len() == 0 {
		return "."
	}

	return posixNormalize(b.String())
}

// posixResolve folds parts right to left, then env working directory.
func posixResolve(env Env, parts []string) string {
	resolved := ""
	resolvedAbsolute := false

	for i := len(parts) - 1; i >= -1 && !resolvedAbsolute; i-- {
		var p string
		if i >= 0 {
			p = parts[i]
		} else {
			p = env.Cwd()
		}

		if p == "" {
			continue
		}

		resolved = p + "/" + resolved
		resolvedAbsolute = p[0] == '/'
	}

	resolved = normalizeSegments(resolved, !resolvedAbsolute, "/", isPosixSeparator)

	switch {
	case resolvedAbsolute:
		return "/" + resolved
	case resolved != "":
		return resolved
	default:
		return "."
	}
}

// posixIsAbsolute reports whether p starts with "/".
func posixIsAbsolute(p string) bool {
	return p != "" && p[0] == '/'
}

// posixDirname keeps a leading "//" when the first segment follows it.
func posixDirname(p string) string {
	if p == "" {
		return "."
	}

	hasRoot := p[0] == '/'
	end := -1
	matchedSlash := true
	for i := len(p) - 1; i >= 1; i-- {
		if p[i] == '/' {
			if !matchedSlash {
				end = i
				break
			}
		} else {
			matchedSlash = false
		}
	}

	switch {
	case end == -1 && hasRoot:
		return "/"
	case end == -1:
		return "."
	case hasRoot && end == 1:
		return "//"
	default:
		return p[:end]
	}
}

// posixBasename returns last segment, trimming suffix when it is a proper tail.
func posixBasename(p string, suffix string) string {
	return scanBasename(p, suffix, 0, isPosixSeparator)
}

// posixExtname returns extension of last segment including leading dot.
func posixExtname(p string) string {
	return scanExtname(p, 0, isPosixSeparator)
}

// posixRelative walks both resolved paths to the last common separator.
func posixRelative(env Env, from string, to string) string {
	if from == to {
		return ""
	}

	from = posixResolve(env, []string{from})
	to = posixResolve(env, []string{to})
	if from == to {
		return ""
	}

	fromStart := 1
	for fromStart < len(from) && from[fromStart] == '/' {
		fromStart++
	}
	fromEnd := len(from)
	fromLen := fromEnd - fromStart

	toStart := 1
	for toStart < len(to) && to[toStart] == '/' {
		toStart++
	}
	toLen := len(to) - toStart

	length := min(fromLen, toLen)
	lastCommonSep := -1
	i := 0
	for ; i <= length; i++ {
		if i == length {
			if toLen > length {
				if to[toStart+i] == '/' {
					// from is the exact base path of to.
					return to[toStart+i+1:]
				} else if i == 0 {
					// from is the root.
					return to[toStart+i:]
				}
			} else if fromLen > length {
				if from[fromStart+i] == '/' {
					// to is the exact base path of from.
					lastCommonSep = i
				} else if i == 0 {
					// to is the root.
					lastCommonSep = 0
				}
			}

			break
		}

		fromCode := from[fromStart+i]
		if fromCode != to[toStart+i] {
			break
		} else if fromCode == '/' {
			lastCommonSep = i
		}
	}

	var out strings.Builder
	for i = fromStart + lastCommonSep + 1; i <= fromEnd; i++ {
		if i == fromEnd || from[i] == '/' {
			if out.Len() == 0 {
				out.WriteString("..")
			} else {
				out.WriteString("/..")
			}
		}
	}

	if out.Len() > 0 {
		return out.String() + to[toStart+lastCommonSep:]
	}

	toStart += lastCommonSep
	if toStart < len(to) && to[toStart] == '/' {
		toStart++
	}

	return to[toStart:]
}

// scanBasename implements basename for both flavors; start skips a drive prefix.
func scanBasename(p string, suffix string, start int, isSeparator func(byte) bool) string {
	end := -1
	matchedSlash := true

	if suffix != "" && len(suffix) <= len(p) {
		if suffix == p {
			return ""
		}

		suffixIdx := len(suffix) - 1
		firstNonSlashEnd := -1
		for i := len(p) - 1; i >= start; i-- {
			code := p[i]
			if isSeparator(code) {
				if !matchedSlash {
					start = i + 1
					break
				}
				continue
			}

			if firstNonSlashEnd == -1 {
				matchedSlash = false
				firstNonSlashEnd = i + 1
			}

			if suffixIdx >= 0 {
				if code == suffix[suffixIdx] {
					suffixIdx--
					if suffixIdx == -1 {
						end = i
					}
				} else {
					suffixIdx = -1
					end = firstNonSlashEnd
				}
			}
		}

		switch {
		case start == end:
			end = firstNonSlashEnd
		case end == -1:
			end = len(p)
		}

		if end < start {
			return ""
		}

		return p[start:end]
	}

	for i := len(p) - 1; i >= start; i-- {
		if isSeparator(p[i]) {
			if !matchedSlash {
				start = i + 1
				break
			}
		} else if end == -1 {
			matchedSlash = false
			end = i + 1
		}
	}

	if end == -1 {
		return ""
	}

	return p[start:end]
}

// scanExtname implements extname for both flavors; start skips a drive prefix.
func scanExtname(p string, start int, isSeparator func(byte) bool) string {
	startDot, _, end, ok := scanLastSegment(p, start, isSeparator)
	if !ok {
		return ""
	}

	return p[startDot:end]
}

// scanLastSegment locates the last segment of p at or after start and its
// extension dot. ok is false when the segment has no extension.
func scanLastSegment(p string, start int, isSeparator func(byte) bool) (startDot, startPart, end int, ok bool) {
	startDot = -1
	startPart = start
	end = -1
	matchedSlash := true
	// 0: no non-dot seen before the dot, 1: dots only, -1: name before dot.
	preDotState := 0

	for i := len(p) - 1; i >= start; i-- {
		code := p[i]
		if isSeparator(code) {
			if !matchedSlash {
				startPart = i + 1
				break
			}
			continue
		}

		if end == -1 {
			matchedSlash = false
			end = i + 1
		}

		if code == '.' {
			if startDot == -1 {
				startDot = i
			} else if preDotState != 1 {
				preDotState = 1
			}
		} else if startDot != -1 {
			preDotState = -1
		}
	}

	ok = !(startDot == -1 || end == -1 || preDotState == 0 ||
		(preDotState == 1 && startDot == end-1 && startDot == startPart+1))

	return startDot, startPart, end, ok
}
