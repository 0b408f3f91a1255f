// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathkit

package pathkit

import (
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	posixBasic    = GlobOptions{Flavor: Posix}
	posixExtended = GlobOptions{Flavor: Posix, Extended: true}
	posixGlobstar = GlobOptions{Flavor: Posix, Globstar: true}
	posixFull     = GlobOptions{Flavor: Posix, Extended: true, Globstar: true}
	posixStrict   = GlobOptions{Flavor: Posix, Strict: true}
)

type globCase struct {
	glob string
	text string
	want bool
}

func runGlobCases(t *testing.T, opts GlobOptions, cases []globCase) {
	t.Helper()

	for _, tc := range cases {
		g, err := CompileGlob(tc.glob, opts)
		require.NoError(t, err, "CompileGlob(%q)", tc.glob)
		assert.Equal(t, tc.want, g.Match(tc.text), "glob %q (%s) on %q", tc.glob, g.Regex(), tc.text)
	}
}

func TestGlobRegexSource(t *testing.T) {
	t.Parallel()

	g := MustCompileGlob("*.js", posixBasic)
	assert.Equal(t, `^(?:[^/]*)\.js$`, g.Regex())
	assert.Empty(t, g.PathRegex())
	assert.Empty(t, g.GlobstarRegex())
	assert.Zero(t, g.SegmentCount())
}

func TestGlobBasic(t *testing.T) {
	t.Parallel()

	runGlobCases(t, posixBasic, []globCase{
		{"*", "foo", true},
		{"f*", "foo", true},
		{"*o", "foo", true},
		{"u*orn", "unicorn", true},
		{"ico", "unicorn", false},
		{"u*nicorn", "unicorn", true},
		{".min.", "http://example.com/jquery.min.js", false},
		{"*.min.*", "http://example.com/jquery.min.js", false},
		{"http:", "http://example.com/jquery.min.js", false},
		{"min.js", "http://example.com/jquery.min.js", false},
		{"/js*jq*.js", "http://example.com/js/jquery.min.js", false},
		{"http://*/*/*.js", "http://example.com/js/jquery.min.js", true},
		{"f?o", "f?o", true},
		{"f?o", "foo", false},
	})
}

func TestGlobWildcardStaysInSegment(t *testing.T) {
	t.Parallel()

	runGlobCases(t, posixBasic, []globCase{
		{"*.min.js", "http://example.com/jquery.min.js", false},
		{"*/js/*.js", "http://example.com/js/jquery.min.js", false},
		{"http://foo.com/*", "http://foo.com/bar/baz/jquery.min.js", false},
		{"http://foo.com/*/*/jquery.min.js", "http://foo.com/bar/baz/jquery.min.js", true},
		{"http://foo.com/*/jquery.min.js", "http://foo.com/bar/baz/jquery.min.js", false},
		{"http://foo.com/**", "http://foo.com/bar/baz/jquery.min.js", false},
	})
}

func TestGlobLiteralMetacharacters(t *testing.T) {
	t.Parallel()

	str := `\/$^+?.()=!|{},[].*`
	runGlobCases(t, posixBasic, []globCase{{str, str, true}})

	ext := `\/$^+.()=!|,.*`
	runGlobCases(t, posixExtended, []globCase{{ext, ext, true}})
}

func TestGlobExtended(t *testing.T) {
	t.Parallel()

	runGlobCases(t, posixExtended, []globCase{
		{"f?o", "foo", true},
		{"f?o", "fooo", false},
		{"f?oo", "foo", false},
		{"f?o", "f/o", false},

		{"fo[oz]", "foo", true},
		{"fo[oz]", "foz", true},
		{"fo[oz]", "fog", false},
		{"fo[a-z]", "fob", true},
		{"fo[a-d]", "fot", false},
		{"fo[!tz]", "fot", false},
		{"fo[!tz]", "fob", true},
		{"fo[^tz]", "fob", true},
		{"fo[!tz]", "fo/", false},
		{"fo[]]", "fo]", true},
		{"fo[a!b]", "fo!", true},
		{"fo[a!b]", "fob", true},
		{"fo[a!b]", "foc", false},
		{"fo[a^]", "fo^", true},

		{"[[:alnum:]]/bar.txt", "a/bar.txt", true},
		{"@([[:alnum:]abc]|11)/bar.txt", "11/bar.txt", true},
		{"@([[:alnum:]abc]|11)/bar.txt", "a/bar.txt", true},
		{"@([[:alnum:]abc]|11)/bar.txt", "b/bar.txt", true},
		{"@([[:alnum:]abc]|11)/bar.txt", "c/bar.txt", true},
		{"@([[:alnum:]abc]|11)/bar.txt", "abc/bar.txt", false},
		{"@([[:alnum:]abc]|11)/bar.txt", "3/bar.txt", true},
		{"[[:digit:]]/bar.txt", "1/bar.txt", true},
		{"[[:digit:]b]/bar.txt", "b/bar.txt", true},
		{"[![:digit:]b]/bar.txt", "a/bar.txt", true},
		{"[[:alnum:]]/bar.txt", "!/bar.txt", false},
		{"[[:digit:]]/bar.txt", "a/bar.txt", false},
		{"[[:digit:]b]/bar.txt", "a/bar.txt", false},
		{"[[:upper:]][[:lower:]]", "Ab", true},
		{"[[:upper:]][[:lower:]]", "aB", false},
		{"[[:xdigit:]][[:space:]]", "f ", true},

		{"foo{bar,baaz}", "foobaaz", true},
		{"foo{bar,baaz}", "foobar", true},
		{"foo{bar,baaz}", "foobuzz", false},
		{"foo{bar,b*z}", "foobuzz", true},
		{"a,b", "a,b", true},

		{"http://?o[oz].b*z.com/{*.js,*.html}", "http://foo.baaz.com/jquery.min.js", true},
		{"http://?o[oz].b*z.com/{*.js,*.html}", "http://moz.buzz.com/index.html", true},
		{"http://?o[oz].b*z.com/{*.js,*.html}", "http://moz.buzz.com/index.htm", false},
		{"http://?o[oz].b*z.com/{*.js,*.html}", "http://moz.bar.com/index.html", false},
		{"http://?o[oz].b*z.com/{*.js,*.html}", "http://flozz.buzz.com/index.html", false},

		{"[[:digit:]_.]/file.js", "1/file.js", true},
		{"[[:digit:]_.]/file.js", "2/file.js", true},
		{"[[:digit:]_.]/file.js", "_/file.js", true},
		{"[[:digit:]_.]/file.js", "./file.js", true},
		{"[[:digit:]_.]/file.js", "z/file.js", false},
	})
}

func TestGlobExtglob(t *testing.T) {
	t.Parallel()

	runGlobCases(t, posixExtended, []globCase{
		{"(foo).txt", "(foo).txt", true},
		{"?(foo).txt", "foo.txt", true},
		{"?(foo).txt", ".txt", true},
		{"?(foo|bar)baz.txt", "foobaz.txt", true},
		{"?(ba[zr]|qux)baz.txt", "bazbaz.txt", true},
		{"?(ba[zr]|qux)baz.txt", "barbaz.txt", true},
		{"?(ba[zr]|qux)baz.txt", "quxbaz.txt", true},
		{"?(ba[!zr]|qux)baz.txt", "batbaz.txt", true},
		{"?(ba*|qux)baz.txt", "batbaz.txt", true},
		{"?(ba*|qux)baz.txt", "batttbaz.txt", true},
		{"?(ba*|qux)baz.txt", "quxbaz.txt", true},
		{"?(ba?(z|r)|qux)baz.txt", "bazbaz.txt", true},
		{"?(ba?(z|?(r))|qux)baz.txt", "bazbaz.txt", true},
		{"?(foo|bar)baz.txt", "foobarbaz.txt", false},
		{"?(ba[zr]|qux)baz.txt", "bazquxbaz.txt", false},
		{"?(ba[!zr]|qux)baz.txt", "bazbaz.txt", false},

		{"*(foo).txt", "foo.txt", true},
		{"*foo.txt", "bofoo.txt", true},
		{"*(foo).txt", "foofoo.txt", true},
		{"*(foo).txt", ".txt", true},
		{"*(fooo).txt", ".txt", true},
		{"*(fooo).txt", "foo.txt", false},
		{"*(foo|bar).txt", "foobar.txt", true},
		{"*(foo|bar).txt", "barbar.txt", true},
		{"*(foo|bar).txt", "barfoobar.txt", true},
		{"*(foo|bar).txt", ".txt", true},
		{"*(foo|ba[rt]).txt", "bat.txt", true},
		{"*(foo|b*[rt]).txt", "blat.txt", true},
		{"*(foo|b*[rt]).txt", "tlat.txt", false},

		{"+(foo).txt", "foo.txt", true},
		{"+foo.txt", "+foo.txt", true},
		{"+(foo).txt", ".txt", false},
		{"+(foo|bar).txt", "foobar.txt", true},

		{"@(foo).txt", "foo.txt", true},
		{"@foo.txt", "@foo.txt", true},
		{"@(foo|baz)bar.txt", "foobar.txt", true},
		{"@(foo|baz)bar.txt", "foobazbar.txt", false},
		{"@(foo|baz)bar.txt", "foofoobar.txt", false},
		{"@(foo|baz)bar.txt", "toofoobar.txt", false},

		{"!(boo).txt", "foo.txt", true},
		{"!(foo|baz)bar.txt", "buzbar.txt", true},
		{"!bar.txt", "!bar.txt", true},
		{"!({foo,bar})baz.txt", "notbaz.txt", true},
		{"!({foo,bar})baz.txt", "foobaz.txt", false},
		{"!(boo).txt", "dir/foo.txt", false},
	})

	runGlobCases(t, posixBasic, []globCase{
		{"?(foo).txt", "foo.txt", false},
		{"?(foo).txt", "?(foo).txt", true},
	})
}

func TestGlobGlobstar(t *testing.T) {
	t.Parallel()

	runGlobCases(t, posixGlobstar, []globCase{
		{"/foo/*", "/foo/bar.txt", true},
		{"/foo/**", "/foo/bar.txt", true},
		{"/foo/**", "/foo/bar/baz.txt", true},
		{"/foo/*/*.txt", "/foo/bar/baz.txt", true},
		{"/foo/**/*.txt", "/foo/bar/baz.txt", true},
		{"/foo/**/*.txt", "/foo/bar/baz/qux.txt", true},
		{"/foo/**/bar.txt", "/foo/bar.txt", true},
		{"/foo/**/**/bar.txt", "/foo/bar.txt", true},
		{"/foo/**/*/baz.txt", "/foo/bar/baz.txt", true},
		{"/foo/**/*.txt", "/foo/bar.txt", true},
		{"/foo/**/**/*.txt", "/foo/bar.txt", true},
		{"/foo/**/*/*.txt", "/foo/bar/baz.txt", true},
		{"**/*.txt", "/foo/bar/baz/qux.txt", true},
		{"**/foo.txt", "foo.txt", true},
		{"**/*.txt", "foo.txt", true},
		{"/foo/*", "/foo/bar/baz.txt", false},
		{"/foo/*.txt", "/foo/bar/baz.txt", false},
		{"/foo/*/*.txt", "/foo/bar/baz/qux.txt", false},
		{"/foo/*/bar.txt", "/foo/bar.txt", false},
		{"/foo/*/*/baz.txt", "/foo/bar/baz.txt", false},
		{"/foo/**.txt", "/foo/bar/baz/qux.txt", false},
		{"/foo/bar**/*.txt", "/foo/bar/baz/qux.txt", false},
		{"/foo/bar**", "/foo/bar/baz.txt", false},
		{"**/.txt", "/foo/bar/baz/qux.txt", false},
		{"*/*.txt", "/foo/bar/baz/qux.txt", false},
		{"*/*.txt", "foo.txt", false},

		{"http://foo.com/*", "http://foo.com/bar/baz/jquery.min.js", false},
		{"http://foo.com/**", "http://foo.com/bar/baz/jquery.min.js", true},
		{"http://foo.com/*/*/jquery.min.js", "http://foo.com/bar/baz/jquery.min.js", true},
		{"http://foo.com/**/jquery.min.js", "http://foo.com/bar/baz/jquery.min.js", true},
		{"http://foo.com/*/jquery.min.js", "http://foo.com/bar/baz/jquery.min.js", false},
	})

	runGlobCases(t, posixFull, []globCase{
		{"http://foo.com/*", "http://foo.com/bar/baz/jquery.min.js", false},
		{"*(*).txt", "whatever.txt", true},
		{"*(foo|bar)/**/*.txt", "foo/hello/world/bar.txt", true},
		{"*(foo|bar)/**/*.txt", "foo/world/bar.txt", true},
		{"**/*/?yfile.{md,js,txt}", "foo/bar/baz/myfile.md", true},
		{"**/*/?yfile.{md,js,txt}", "foo/baz/myfile.md", true},
		{"**/*/?yfile.{md,js,txt}", "foo/baz/tyfile.js", true},
		{"**/*/?yfile.{md,js,txt}", "myfile.md", false},
	})
}

func TestGlobSeparatorRuns(t *testing.T) {
	t.Parallel()

	runGlobCases(t, posixBasic, []globCase{
		{"foo//bar.txt", "foo/bar.txt", true},
		{"foo///bar.txt", "foo/bar.txt", true},
		{"foo//bar.txt", "foo//bar.txt", true},
	})

	runGlobCases(t, posixStrict, []globCase{
		{"foo///bar.txt", "foo/bar.txt", false},
		{"foo///bar.txt", "foo///bar.txt", true},
	})
}

func TestGlobFilepath(t *testing.T) {
	t.Parallel()

	g, err := CompileGlob("foo/**/*.txt", GlobOptions{Flavor: Posix, Globstar: true, Filepath: true})
	require.NoError(t, err)

	assert.Equal(t, `^foo/(?:(?:[^/]*(?:/|$))*)(?:[^/]*)\.txt$`, g.Regex())
	assert.Equal(t, `^foo/((?:[^/]*(?:/|$))*)(?:[^/]*)\.txt$`, g.PathRegex())
	assert.Equal(t, `^((?:[^/]*(?:/|$))*)$`, g.GlobstarRegex())
	assert.Equal(t, []string{
		`^foo$`,
		`^((?:[^/]*(?:/|$))*)$`,
		`^(?:[^/]*)\.txt$`,
	}, g.PathSegments())
	assert.Equal(t, 3, g.SegmentCount())

	assert.True(t, g.MatchPath("foo/a/b/c.txt"))
	assert.False(t, g.MatchPath("bar/c.txt"))
	assert.True(t, g.MatchSegment(0, "foo"))
	assert.False(t, g.MatchSegment(0, "food"))
	assert.True(t, g.MatchSegment(2, "c.txt"))
	assert.False(t, g.MatchSegment(3, "c.txt"))
	assert.False(t, g.MatchSegment(-1, "foo"))
	assert.True(t, g.MatchGlobstar("a/b/"))
	assert.True(t, g.MatchGlobstar(""))
}

func TestGlobFilepathSegments(t *testing.T) {
	t.Parallel()

	opts := GlobOptions{Flavor: Posix, Extended: true, Filepath: true}

	// Trailing separator leaves an empty final segment.
	g := MustCompileGlob("a/b/", opts)
	assert.Equal(t, []string{`^a$`, `^b$`, `^$`}, g.PathSegments())

	// Separators inside a group stay in the enclosing segment.
	g = MustCompileGlob("x/@(a/b|c)/y", opts)
	assert.Equal(t, []string{`^x$`, `^(?:a/b|c)$`, `^y$`}, g.PathSegments())
	assert.True(t, g.Match("x/a/b/y"))
	assert.True(t, g.Match("x/c/y"))

	g = MustCompileGlob("", opts)
	assert.Equal(t, []string{`^$`}, g.PathSegments())
	assert.True(t, g.Match(""))
	assert.False(t, g.Match("a"))
}

func TestGlobWin32Flavor(t *testing.T) {
	t.Parallel()

	opts := GlobOptions{Flavor: Win32, Extended: true, Globstar: true, Filepath: true}
	g, err := CompileGlob("**/{*.node,*.exe}", opts)
	require.NoError(t, err)

	assert.True(t, g.MatchPath(`C:\Projects\a\b\c\addon.node`))
	assert.True(t, g.MatchPath(`C:\Projects\a\b\c\app.exe`))
	assert.True(t, g.MatchPath(`C:/Projects/a/app.exe`))
	assert.False(t, g.MatchPath(`C:\Projects\a\b\c\index.js`))
	assert.False(t, g.MatchPath(`C:\Projects\a\b\c\favicon.ico`))

	g = MustCompileGlob(`src\*.go`, opts)
	assert.True(t, g.Match(`src\main.go`))
	assert.True(t, g.Match(`src/main.go`))
	assert.False(t, g.Match(`src\cmd\main.go`))
	assert.Equal(t, []string{`^src$`, `^(?:[^\\/]*)\.go$`}, g.PathSegments())

	// POSIX treats backslash as a literal.
	g = MustCompileGlob(`src\*.go`, posixBasic)
	assert.True(t, g.Match(`src\main.go`))
	assert.False(t, g.Match(`src/main.go`))
}

func TestGlobSingleMatchContract(t *testing.T) {
	t.Parallel()

	g := MustCompileGlob("*", posixBasic)
	assert.True(t, g.Match(""))
	assert.True(t, g.Match("abc"))
	assert.False(t, g.Match("a/b"))

	g = MustCompileGlob("!(x)", posixExtended)
	assert.True(t, g.Match(""))
	assert.True(t, g.Match("y"))
	assert.False(t, g.Match("x"))
}

func TestGlobErrors(t *testing.T) {
	t.Parallel()

	for _, glob := range []string{
		"fo[oz",
		"[[:alpha:]",
		"[[:alpha",
		"[[:bogus:]]",
		"@(foo",
		"?(a|(b)",
		"{a,b",
		"!(x",
	} {
		_, err := CompileGlob(glob, posixExtended)
		require.ErrorIs(t, err, ErrInvalidPattern, "CompileGlob(%q)", glob)
	}

	_, err := CompileGlob("a\xffb", posixExtended)
	require.ErrorIs(t, err, ErrInvalidPattern)
	require.ErrorIs(t, err, ErrInvalidEncoding)

	// Without extended syntax the same text is literal.
	_, err = CompileGlob("fo[oz", posixBasic)
	require.NoError(t, err)
	_, err = CompileGlob("{a,b", posixBasic)
	require.NoError(t, err)
}

func TestGlobDepthLimit(t *testing.T) {
	t.Parallel()

	nested := func(depth int) string {
		return strings.Repeat("@(", depth) + "a" + strings.Repeat(")", depth)
	}

	g, err := CompileGlob(nested(MaxGroupDepth), posixExtended)
	require.NoError(t, err)
	assert.True(t, g.Match("a"))

	_, err = CompileGlob(nested(MaxGroupDepth+1), posixExtended)
	require.ErrorIs(t, err, ErrPatternTooComplex)
	require.ErrorIs(t, err, ErrInvalidPattern)

	_, err = CompileGlob(strings.Repeat("{", MaxGroupDepth+1), posixExtended)
	require.ErrorIs(t, err, ErrPatternTooComplex)
}

func TestGlobMatchesDoublestar(t *testing.T) {
	t.Parallel()

	patterns := []string{
		"*.go",
		"a/*/c",
		"a/**/c",
		"**/*.txt",
		"{a,b}/x",
		"file[0-9].txt",
		"file[!0-9].txt",
		"?x",
		"a/b",
	}
	names := []string{
		"main.go",
		"dir/main.go",
		"a/b/c",
		"a/c",
		"a/b/d/c",
		"x.txt",
		"d/e/x.txt",
		"a/x",
		"c/x",
		"file1.txt",
		"filez.txt",
		"ax",
		"a/b",
	}

	for _, pattern := range patterns {
		g := MustCompileGlob(pattern, posixFull)
		for _, name := range names {
			want, err := doublestar.Match(pattern, name)
			require.NoError(t, err)
			assert.Equal(t, want, g.Match(name), "pattern %q on %q", pattern, name)
		}
	}
}

func TestMatchAndGlobToRegex(t *testing.T) {
	t.Parallel()

	ok, err := Match("a/b/c.txt", "**/*.txt", &GlobOptions{Flavor: Posix, Extended: true, Globstar: true, Filepath: true})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Match("c.txt", "*.md", &GlobOptions{Flavor: Posix})
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = Match("x", "[", &GlobOptions{Flavor: Posix, Extended: true})
	require.ErrorIs(t, err, ErrInvalidPattern)

	ok, err = Match("img.png", "*.{png,jpg}", nil)
	require.NoError(t, err)
	assert.True(t, ok)

	src, err := GlobToRegex("*.txt")
	require.NoError(t, err)
	assert.Contains(t, src, `\.txt$`)
	assert.Regexp(t, `^\^`, src)
}
