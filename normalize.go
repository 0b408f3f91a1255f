// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathkit

package pathkit

import "bytes"

// normalizeSegments collapses "." and ".." segments and redundant separators
// in one left-to-right pass without splitting path into segments.
//
// Result never carries leading or trailing separator; callers restore them.
// With allowAboveRoot, ".." segments that cannot be popped are kept.
func normalizeSegments(path string, allowAboveRoot bool, separator string, isSeparator func(byte) bool) string {
	res := make([]byte, 0, len(path))
	sep := []byte(separator)
	lastSegmentLength := 0
	lastSlash := -1
	dots := 0
	var code byte

	for i := 0; i <= len(path); i++ {
		if i < len(path) {
			code = path[i]
		} else if isSeparator(code) {
			break
		} else {
			// End of input closes the last segment like a separator.
			code = '/'
		}

		if !isSeparator(code) {
			if code == '.' && dots != -1 {
				dots++
			} else {
				dots = -1
			}

			continue
		}

		switch {
		case lastSlash == i-1 || dots == 1:
			// Empty or "." segment.
		case dots == 2:
			endsWithParent := len(res) >= 2 && lastSegmentLength == 2 &&
				res[len(res)-1] == '.' && res[len(res)-2] == '.'
			if !endsWithParent {
				if len(res) > 2 {
					idx := bytes.LastIndex(res, sep)
					if idx == -1 {
						res = res[:0]
						lastSegmentLength = 0
					} else {
						res = res[:idx]
						lastSegmentLength = len(res) - 1 - bytes.LastIndex(res, sep)
					}

					lastSlash = i
					dots = 0
					continue
				}

				if len(res) != 0 {
					res = res[:0]
					lastSegmentLength = 0
					lastSlash = i
					dots = 0
					continue
				}
			}

			if allowAboveRoot {
				if len(res) > 0 {
					res = append(res, sep...)
				}

				res = append(res, '.', '.')
				lastSegmentLength = 2
			}
		default:
			if len(res) > 0 {
				res = append(res, sep...)
			}

			res = append(res, path[lastSlash+1:i]...)
			lastSegmentLength = i - lastSlash - 1
		}

		lastSlash = i
		dots = 0
	}

	return string(res)
}

// isPosixSeparator reports whether c separates POSIX path segments.
func isPosixSeparator(c byte) bool {
	return c == '/'
}

// isWin32Separator reports whether c separates Win32 path segments.
func isWin32Separator(c byte) bool {
	return c == '/' || c == '\\'
}

// isDriveLetter reports whether c can start a Win32 drive root.
func isDriveLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
