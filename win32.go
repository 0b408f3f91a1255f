// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathkit

package pathkit

import (
	"strings"
	"unicode"
)

// win32Root describes the root prefix of a Win32 path.
type win32Root struct {
	// device is "C:" or "\\server\share", empty when absent.
	device string
	// end is byte offset of the first byte after the root.
	end int
	// absolute is set when root ends with a separator.
	absolute bool
	// uncOnly is set when path is exactly "\\server\share" with nothing after.
	uncOnly bool
}

// scanWin32Root detects drive and UNC roots.
func scanWin32Root(p string) win32Root {
	var r win32Root
	n := len(p)
	if n == 0 {
		return r
	}

	code := p[0]
	if n == 1 {
		if isWin32Separator(code) {
			r.end = 1
			r.absolute = true
		}

		return r
	}

	switch {
	case isWin32Separator(code):
		r.absolute = true
		r.end = 1
		if !isWin32Separator(p[1]) {
			return r
		}

		// UNC root: \\server\share.
		j := 2
		last := j
		for j < n && !isWin32Separator(p[j]) {
			j++
		}
		if j >= n || j == last {
			return r
		}

		server := p[last:j]
		last = j
		for j < n && isWin32Separator(p[j]) {
			j++
		}
		if j >= n || j == last {
			return r
		}

		last = j
		for j < n && !isWin32Separator(p[j]) {
			j++
		}

		switch {
		case j == n:
			r.device = `\\` + server + `\` + p[last:]
			r.end = j
			r.uncOnly = true
		case j != last:
			r.device = `\\` + server + `\` + p[last:j]
			r.end = j
		}
	case isDriveLetter(code) && p[1] == ':':
		r.device = p[:2]
		r.end = 2
		if n > 2 && isWin32Separator(p[2]) {
			r.absolute = true
			r.end = 3
		}
	}

	return r
}

// win32Normalize normalizes p keeping device prefix and trailing separator.
func win32Normalize(p string) string {
	n := len(p)
	if n == 0 {
		return "."
	}
	if n == 1 && isWin32Separator(p[0]) {
		return `\`
	}

	root := scanWin32Root(p)
	if root.uncOnly {
		return root.device + `\`
	}

	tail := ""
	if root.end < n {
		tail = normalizeSegments(p[root.end:], !root.absolute, `\`, isWin32Separator)
	}
	if tail == "" && !root.absolute {
		tail = "."
	}
	if tail != "" && isWin32Separator(p[n-1]) {
		tail += `\`
	}

	switch {
	case root.device == "" && root.absolute:
		return `\` + tail
	case root.device == "" && len(tail) >= 2 && isDriveLetter(tail[0]) && tail[1] == ':':
		// Relative "C:" segment must not turn into a drive root.
		return `.\` + tail
	case root.device == "":
		return tail
	case root.absolute:
		return root.device + `\` + tail
	default:
		return root.device + tail
	}
}

// win32Join joins non-empty parts with "\" and normalizes result.
//
// Leading separator run of the joined path collapses to one unless the
// first non-empty part starts with exactly two separators, which keeps UNC
// roots intact.
func win32Join(parts []string) string {
	var b strings.Builder
	firstPart := ""
	for _, part := range parts {
		if part == "" {
			continue
		}
		if b.Len() == 0 {
			firstPart = part
		} else {
			b.WriteByte('\\')
		}
		b.WriteString(part)
	}

	if b.Len() == 0 {
		return "."
	}

	joined := b.String()
	needsReplace := true
	slashCount := 0
	if isWin32Separator(firstPart[0]) {
		slashCount++
		if len(firstPart) > 1 && isWin32Separator(firstPart[1]) {
			slashCount++
			if len(firstPart) > 2 {
				if isWin32Separator(firstPart[2]) {
					slashCount++
				} else {
					needsReplace = false
				}
			}
		}
	}

	if needsReplace {
		for slashCount < len(joined) && isWin32Separator(joined[slashCount]) {
			slashCount++
		}
		if slashCount >= 2 {
			joined = `\` + joined[slashCount:]
		}
	}

	return win32Normalize(joined)
}

// win32Resolve folds parts right to left until both a device and an absolute
// tail are known. Missing device directory comes from "=C:" style variables.
func win32Resolve(env Env, parts []string) string {
	resolvedDevice := ""
	resolvedTail := ""
	resolvedAbsolute := false

	for i := len(parts) - 1; i >= -1; i-- {
		var p string
		switch {
		case i >= 0:
			p = parts[i]
		case resolvedDevice == "":
			p = env.Cwd()
		default:
			p = env.Cwd()
			if v, ok := env.LookupEnv("=" + resolvedDevice); ok && v != "" {
				p = v
			}

			// Directory must belong to the resolved drive.
			if p == "" || !strings.EqualFold(prefix(p, 3), resolvedDevice+`\`) {
				p = resolvedDevice + `\`
			}
		}

		if p == "" {
			continue
		}

		root := scanWin32Root(p)
		if root.device != "" && resolvedDevice != "" &&
			!strings.EqualFold(root.device, resolvedDevice) {
			// Different drive, ignore.
			continue
		}

		if resolvedDevice == "" && root.device != "" {
			resolvedDevice = root.device
		}
		if !resolvedAbsolute {
			resolvedTail = p[root.end:] + `\` + resolvedTail
			resolvedAbsolute = root.absolute
		}

		if resolvedDevice != "" && resolvedAbsolute {
			break
		}
	}

	resolvedTail = normalizeSegments(resolvedTail, !resolvedAbsolute, `\`, isWin32Separator)

	res := resolvedDevice
	if resolvedAbsolute {
		res += `\`
	}
	res += resolvedTail
	if res == "" {
		return "."
	}

	return res
}

// win32IsAbsolute reports whether p has a separator or "C:\" root.
func win32IsAbsolute(p string) bool {
	if p == "" {
		return false
	}
	if isWin32Separator(p[0]) {
		return true
	}

	return len(p) > 2 && isDriveLetter(p[0]) && p[1] == ':' && isWin32Separator(p[2])
}

// win32Dirname returns p without last segment, keeping device root.
func win32Dirname(p string) string {
	n := len(p)
	if n == 0 {
		return "."
	}
	if n == 1 && isWin32Separator(p[0]) {
		return p
	}

	root := scanWin32Root(p)
	if root.uncOnly {
		return p
	}

	rootEnd := -1
	switch {
	case strings.HasPrefix(root.device, `\\`):
		// UNC root includes the separator after share.
		rootEnd = root.end + 1
	case root.end > 0:
		rootEnd = root.end
	}
	offset := max(rootEnd, 0)

	end := -1
	matchedSlash := true
	for i := n - 1; i >= offset; i-- {
		if isWin32Separator(p[i]) {
			if !matchedSlash {
				end = i
				break
			}
		} else {
			matchedSlash = false
		}
	}

	if end == -1 {
		if rootEnd == -1 {
			return "."
		}
		end = rootEnd
	}

	return p[:end]
}

// win32Basename returns last segment after drive prefix with suffix trimmed.
func win32Basename(p string, suffix string) string {
	start := 0
	if len(p) >= 2 && isDriveLetter(p[0]) && p[1] == ':' {
		start = 2
	}

	return scanBasename(p, suffix, start, isWin32Separator)
}

// win32Extname returns extension of last segment after drive prefix.
func win32Extname(p string) string {
	start := 0
	if len(p) >= 2 && isDriveLetter(p[0]) && p[1] == ':' {
		start = 2
	}

	return scanExtname(p, start, isWin32Separator)
}

// win32Relative compares resolved paths case-insensitively and slices the
// result from resolved "to" keeping its original case.
func win32Relative(env Env, from string, to string) string {
	if from == to {
		return ""
	}

	fromOrig := []rune(win32Resolve(env, []string{from}))
	toOrig := []rune(win32Resolve(env, []string{to}))
	if string(fromOrig) == string(toOrig) {
		return ""
	}

	fromLower := lowerRunes(fromOrig)
	toLower := lowerRunes(toOrig)
	if string(fromLower) == string(toLower) {
		return ""
	}

	fromStart := 0
	for fromStart < len(fromLower) && fromLower[fromStart] == '\\' {
		fromStart++
	}
	fromEnd := len(fromLower)
	for fromEnd-1 > fromStart && fromLower[fromEnd-1] == '\\' {
		fromEnd--
	}
	fromLen := fromEnd - fromStart

	toStart := 0
	for toStart < len(toLower) && toLower[toStart] == '\\' {
		toStart++
	}
	toEnd := len(toLower)
	for toEnd-1 > toStart && toLower[toEnd-1] == '\\' {
		toEnd--
	}
	toLen := toEnd - toStart

	length := min(fromLen, toLen)
	lastCommonSep := -1
	i := 0
	for ; i <= length; i++ {
		if i == length {
			if toLen > length {
				if toLower[toStart+i] == '\\' {
					// from is the exact base path of to.
					return string(toOrig[toStart+i+1:])
				} else if i == 2 {
					// from is a drive root.
					return string(toOrig[toStart+i:])
				}
			}
			if fromLen > length {
				if fromLower[fromStart+i] == '\\' {
					// to is the exact base path of from.
					lastCommonSep = i
				} else if i == 2 {
					// to is a drive root.
					lastCommonSep = 3
				}
			}

			break
		}

		fromCode := fromLower[fromStart+i]
		if fromCode != toLower[toStart+i] {
			break
		} else if fromCode == '\\' {
			lastCommonSep = i
		}
	}

	// Nothing in common, e.g. different drives.
	if i != length && lastCommonSep == -1 {
		return string(toOrig)
	}
	if lastCommonSep == -1 {
		lastCommonSep = 0
	}

	var out strings.Builder
	for i = fromStart + lastCommonSep + 1; i <= fromEnd; i++ {
		if i == fromEnd || fromLower[i] == '\\' {
			if out.Len() == 0 {
				out.WriteString("..")
			} else {
				out.WriteString(`\..`)
			}
		}
	}

	if out.Len() > 0 {
		return out.String() + string(toOrig[min(toStart+lastCommonSep, toEnd):toEnd])
	}

	toStart += lastCommonSep
	if toStart < len(toOrig) && toOrig[toStart] == '\\' {
		toStart++
	}
	if toStart > toEnd {
		return ""
	}

	return string(toOrig[toStart:toEnd])
}

// win32ToNamespacedPath builds \\?\ and \\?\UNC\ long-path forms.
func win32ToNamespacedPath(env Env, p string) string {
	if p == "" {
		return ""
	}

	resolved := win32Resolve(env, []string{p})
	if len(resolved) < 3 {
		return p
	}

	if resolved[0] == '\\' {
		if resolved[1] == '\\' && resolved[2] != '?' && resolved[2] != '.' {
			return `\\?\UNC\` + resolved[2:]
		}

		return p
	}

	if isDriveLetter(resolved[0]) && resolved[1] == ':' && resolved[2] == '\\' {
		return `\\?\` + resolved
	}

	return p
}

// lowerRunes returns rs lowered rune by rune, keeping rune count.
func lowerRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToLower(r)
	}

	return out
}

// prefix returns at most n leading bytes of s.
func prefix(s string, n int) string {
	if len(s) < n {
		return s
	}

	return s[:n]
}
