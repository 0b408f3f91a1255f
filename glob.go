// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathkit

package pathkit

import "fmt"

// GlobOptions controls glob compilation.
type GlobOptions struct {
	// Extended enables extglob groups, "?", bracket expressions and braces.
	Extended bool `json:"extended,omitempty" yaml:"extended,omitempty"`
	// Globstar makes "**" between separators match zero or more segments.
	Globstar bool `json:"globstar,omitempty" yaml:"globstar,omitempty"`
	// Strict disables treating a run of separators in the glob as one.
	Strict bool `json:"strict,omitempty" yaml:"strict,omitempty"`
	// Filepath builds path regex, segment regexes and globstar regex.
	Filepath bool `json:"filepath,omitempty" yaml:"filepath,omitempty"`
	// Flavor selects separators recognized in glob and target text.
	Flavor Flavor `json:"flavor,omitempty" yaml:"flavor,omitempty"`
}

// DefaultGlobOptions returns extended, globstar, filepath options used by
// Match and GlobToRegex.
func DefaultGlobOptions() GlobOptions {
	return GlobOptions{
		Extended: true,
		Globstar: true,
		Filepath: true,
	}
}

// applyDefaults resolves unset flavor.
func (o *GlobOptions) applyDefaults() {
	o.Flavor = o.Flavor.resolve()
}

// Glob is compiled glob, immutable and safe for concurrent use.
type Glob struct {
	source   string
	opts     GlobOptions
	regex    *regex
	path     *regex
	globstar *regex
	segments []*regex
}

// CompileGlob compiles glob into regular expressions.
func CompileGlob(glob string, opts GlobOptions) (*Glob, error) {
	opts.applyDefaults()

	src, err := translateGlob(glob, opts)
	if err != nil {
		return nil, err
	}

	g := &Glob{source: glob, opts: opts}
	if g.regex, err = compileRegex(src.regex, src.lookaround); err != nil {
		return nil, fmt.Errorf("compile %q: %w", glob, err)
	}

	if !opts.Filepath {
		return g, nil
	}

	if g.path, err = compileRegex(src.path, src.lookaround); err != nil {
		return nil, fmt.Errorf("compile %q path: %w", glob, err)
	}
	if g.globstar, err = compileRegex(src.globstar, false); err != nil {
		return nil, fmt.Errorf("compile %q globstar: %w", glob, err)
	}

	g.segments = make([]*regex, 0, len(src.segments))
	for i, s := range src.segments {
		re, err := compileRegex(s, src.lookaround)
		if err != nil {
			return nil, fmt.Errorf("compile %q segment %d: %w", glob, i, err)
		}
		g.segments = append(g.segments, re)
	}

	return g, nil
}

// MustCompileGlob is CompileGlob that panics on error.
func MustCompileGlob(glob string, opts GlobOptions) *Glob {
	g, err := CompileGlob(glob, opts)
	if err != nil {
		panic(err)
	}

	return g
}

// Source returns glob text.
func (g *Glob) Source() string { return g.source }

// Options returns options with resolved flavor.
func (g *Glob) Options() GlobOptions { return g.opts }

// Regex returns whole-string regex source.
func (g *Glob) Regex() string { return g.regex.String() }

// PathRegex returns path regex source, empty without Filepath.
func (g *Glob) PathRegex() string {
	if g.path == nil {
		return ""
	}

	return g.path.String()
}

// GlobstarRegex returns standalone globstar regex source, empty without Filepath.
func (g *Glob) GlobstarRegex() string {
	if g.globstar == nil {
		return ""
	}

	return g.globstar.String()
}

// PathSegments returns per-segment regex sources in glob order.
func (g *Glob) PathSegments() []string {
	out := make([]string, len(g.segments))
	for i, re := range g.segments {
		out[i] = re.String()
	}

	return out
}

// SegmentCount returns number of path segment regexes.
func (g *Glob) SegmentCount() int { return len(g.segments) }

// Match reports whether text yields exactly one match of the whole regex.
// Empty text is matched like any other text, so "*" matches "".
func (g *Glob) Match(text string) bool {
	return g.regex.matchOne(text)
}

// MatchPath matches text against path regex, or whole regex without Filepath.
func (g *Glob) MatchPath(text string) bool {
	if g.path == nil {
		return g.regex.matchOne(text)
	}

	return g.path.matchOne(text)
}

// MatchSegment matches seg against i-th path segment regex.
func (g *Glob) MatchSegment(i int, seg string) bool {
	if i < 0 || i >= len(g.segments) {
		return false
	}

	return g.segments[i].matchOne(seg)
}

// MatchGlobstar reports whether s matches standalone globstar regex.
func (g *Glob) MatchGlobstar(s string) bool {
	if g.globstar == nil {
		return false
	}

	return g.globstar.matchOne(s)
}

// String returns glob text.
func (g *Glob) String() string { return g.source }

// GlobToRegex returns path regex source of glob compiled with DefaultGlobOptions.
func GlobToRegex(glob string) (string, error) {
	g, err := defaultGlobCache.Get(glob, DefaultGlobOptions())
	if err != nil {
		return "", err
	}

	return g.PathRegex(), nil
}

// Match compiles glob through the default cache and matches text.
//
// Nil opts means DefaultGlobOptions. Path regex is used when Filepath is set.
func Match(text string, glob string, opts *GlobOptions) (bool, error) {
	o := DefaultGlobOptions()
	if opts != nil {
		o = *opts
	}

	return defaultGlobCache.Match(text, glob, o)
}
