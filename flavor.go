// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathkit

package pathkit

import (
	"fmt"
	"strings"
)

// Flavor selects path syntax rules.
type Flavor uint8

const (
	// FlavorUnknown is unset flavor placeholder, resolved to Native.
	FlavorUnknown Flavor = iota
	// Posix uses "/" as the only separator and a single "/" root.
	Posix
	// Win32 accepts "/" and "\" separators, drive letters and UNC roots.
	Win32
)

// String returns flavor name.
func (f Flavor) String() string {
	switch f {
	case Posix:
		return "posix"
	case Win32:
		return "win32"
	default:
		return "native"
	}
}

// Set parses flavor name, implementing pflag.Value.
func (f *Flavor) Set(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "posix", "unix":
		*f = Posix
	case "win32", "windows":
		*f = Win32
	case "native", "":
		*f = Native
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFlavor, s)
	}

	return nil
}

// Type returns pflag value type name.
func (f *Flavor) Type() string {
	return "flavor"
}

// MarshalText implements encoding.TextMarshaler.
func (f Flavor) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Flavor) UnmarshalText(text []byte) error {
	return f.Set(string(text))
}

// resolve maps FlavorUnknown to Native.
func (f Flavor) resolve() Flavor {
	if f == Posix || f == Win32 {
		return f
	}

	return Native
}

// Separator returns canonical segment separator.
func (f Flavor) Separator() string {
	if f.resolve() == Win32 {
		return `\`
	}

	return "/"
}

// Delimiter returns path list delimiter.
func (f Flavor) Delimiter() string {
	if f.resolve() == Win32 {
		return ";"
	}

	return ":"
}

// IsSeparator reports whether c is a segment separator for flavor.
func (f Flavor) IsSeparator(c byte) bool {
	if f.resolve() == Win32 {
		return isWin32Separator(c)
	}

	return isPosixSeparator(c)
}

// Normalize collapses "." and ".." segments and redundant separators.
func (f Flavor) Normalize(p string) string {
	if f.resolve() == Win32 {
		return win32Normalize(p)
	}

	return posixNormalize(p)
}

// Join joins non-empty parts with flavor separator and normalizes result.
func (f Flavor) Join(parts ...string) string {
	if f.resolve() == Win32 {
		return win32Join(parts)
	}

	return posixJoin(parts)
}

// Resolve resolves parts into an absolute path using process environment.
func (f Flavor) Resolve(parts ...string) string {
	return f.ResolveEnv(OSEnv{}, parts...)
}

// ResolveEnv resolves parts into an absolute path.
//
// Parts are folded right to left until an absolute one is found; env supplies
// the working directory (and Win32 per-drive directories) when none is.
func (f Flavor) ResolveEnv(env Env, parts ...string) string {
	if env == nil {
		env = OSEnv{}
	}

	if f.resolve() == Win32 {
		return win32Resolve(env, parts)
	}

	return posixResolve(env, parts)
}

// IsAbsolute reports whether p is absolute.
func (f Flavor) IsAbsolute(p string) bool {
	if f.resolve() == Win32 {
		return win32IsAbsolute(p)
	}

	return posixIsAbsolute(p)
}

// Dirname returns p without its last segment.
func (f Flavor) Dirname(p string) string {
	if f.resolve() == Win32 {
		return win32Dirname(p)
	}

	return posixDirname(p)
}

// Basename returns last segment of p ignoring trailing separators.
func (f Flavor) Basename(p string) string {
	if f.resolve() == Win32 {
		return win32Basename(p, "")
	}

	return posixBasename(p, "")
}

// BasenameSuffix returns last segment of p with suffix removed.
//
// Suffix is kept when it equals the whole segment.
func (f Flavor) BasenameSuffix(p string, suffix string) string {
	if f.resolve() == Win32 {
		return win32Basename(p, suffix)
	}

	return posixBasename(p, suffix)
}

// Extname returns extension of last segment including leading dot.
func (f Flavor) Extname(p string) string {
	if f.resolve() == Win32 {
		return win32Extname(p)
	}

	return posixExtname(p)
}

// Relative returns path from "from" to "to" using process environment.
func (f Flavor) Relative(from string, to string) string {
	return f.RelativeEnv(OSEnv{}, from, to)
}

// RelativeEnv returns path from "from" to "to" after resolving both with env.
func (f Flavor) RelativeEnv(env Env, from string, to string) string {
	if env == nil {
		env = OSEnv{}
	}

	if f.resolve() == Win32 {
		return win32Relative(env, from, to)
	}

	return posixRelative(env, from, to)
}

// ToNamespacedPath returns Win32 long-path form of p; POSIX returns p unchanged.
func (f Flavor) ToNamespacedPath(p string) string {
	return f.ToNamespacedPathEnv(OSEnv{}, p)
}

// ToNamespacedPathEnv is ToNamespacedPath with explicit environment.
func (f Flavor) ToNamespacedPathEnv(env Env, p string) string {
	if f.resolve() != Win32 {
		return p
	}

	if env == nil {
		env = OSEnv{}
	}

	return win32ToNamespacedPath(env, p)
}

// Normalize normalizes p with Native flavor.
func Normalize(p string) string { return Native.Normalize(p) }

// Join joins parts with Native flavor.
func Join(parts ...string) string { return Native.Join(parts...) }

// Resolve resolves parts with Native flavor.
func Resolve(parts ...string) string { return Native.Resolve(parts...) }

// IsAbsolute reports whether p is absolute for Native flavor.
func IsAbsolute(p string) bool { return Native.IsAbsolute(p) }

// Dirname returns directory part of p with Native flavor.
func Dirname(p string) string { return Native.Dirname(p) }

// Basename returns last segment of p with Native flavor.
func Basename(p string) string { return Native.Basename(p) }

// BasenameSuffix returns last segment of p without suffix with Native flavor.
func BasenameSuffix(p string, suffix string) string { return Native.BasenameSuffix(p, suffix) }

// Extname returns extension of p with Native flavor.
func Extname(p string) string { return Native.Extname(p) }

// Relative returns relative path between from and to with Native flavor.
func Relative(from string, to string) string { return Native.Relative(from, to) }
