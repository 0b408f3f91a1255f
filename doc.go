// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathkit

/*
Package pathkit normalizes path strings under POSIX and Win32 syntax and
compiles shell globs into regular expressions.

Path functions are pure string operations. They never touch the filesystem;
working directory, home directory and environment variables come from Env:
  - per-flavor helpers on Flavor (`Posix.Join`, `Win32.Resolve`, ...)
  - package-level helpers bound to Native flavor (`Normalize`, `Relative`, ...)
  - decomposition into ParsedPath (`Parse` / `Format`)
  - temp, home and per-application directories (`TempDir`, `NewAppDirs`)

Glob flow:
  - compile glob (`CompileGlob`) with GlobOptions
  - match whole text (`Glob.Match`) or path (`Glob.MatchPath`)
  - test single path segments (`Glob.MatchSegment`, `Glob.MatchGlobstar`)
  - or use cached one-shot helpers (`Match`, `GlobToRegex`, `GlobCache`)

Globs support extglob groups `?( *( +( @( !(`, bracket expressions with
POSIX classes, brace alternation and `**` globstar. A match counts only when
the regex matches the text exactly once.

On top of globs, Matcher makes gitignore-like include/exclude decisions:
  - parse rules from text (`ParseRules`) or file (`LoadRulesFile`)
  - optionally build extension-based include rules (`ParseExtensions`)
  - compile matcher (`NewMatcher`)
  - ask for decision (`Decide` / `DecideInDir` / `Included` / `Excluded`)
*/
package pathkit
