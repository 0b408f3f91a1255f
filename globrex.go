// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathkit

package pathkit

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxGroupDepth limits nesting of extglob, paren and brace groups in a glob.
const MaxGroupDepth = 64

// frameKind identifies open group type on compiler stack.
type frameKind uint8

const (
	frameExt frameKind = iota
	frameParen
	frameBrace
)

// frame is one open group; op is extglob operator for frameExt.
type frame struct {
	kind frameKind
	op   rune
}

// globSyntax holds flavor-specific regex fragments.
type globSyntax struct {
	isSep func(rune) bool
	// sep matches one separator.
	sep string
	// notSep matches one non-separator rune.
	notSep string
	// sepClass lists separators inside a bracket expression.
	sepClass string
	// wildcard matches any run inside one segment.
	wildcard string
	// globstar matches zero or more whole segments.
	globstar string
	// globstarSegment is capturing globstar used in path regexes.
	globstarSegment string
}

var (
	posixGlobSyntax = newGlobSyntax(func(r rune) bool { return r == '/' }, `/`, `/`)
	win32GlobSyntax = newGlobSyntax(func(r rune) bool { return r == '/' || r == '\\' }, `[\\/]`, `\\/`)
)

// newGlobSyntax derives regex fragments from separator match and class.
func newGlobSyntax(isSep func(rune) bool, sep string, sepClass string) globSyntax {
	notSep := "[^" + sepClass + "]"
	segments := "(?:" + notSep + "*(?:" + sep + "|$))*"

	return globSyntax{
		isSep:           isSep,
		sep:             sep,
		notSep:          notSep,
		sepClass:        sepClass,
		wildcard:        "(?:" + notSep + "*)",
		globstar:        "(?:" + segments + ")",
		globstarSegment: "(" + segments + ")",
	}
}

// posixClasses maps bracket class names to bracket expression fragments.
var posixClasses = map[string]string{
	"alnum":  `\w`,
	"alpha":  `A-Za-z`,
	"blank":  ` \t`,
	"digit":  `\d`,
	"lower":  `a-z`,
	"space":  `\s`,
	"upper":  `A-Z`,
	"word":   `\w`,
	"xdigit": `0-9A-Fa-f`,
}

// globSources is compiler output before regex compilation.
type globSources struct {
	regex      string
	path       string
	segments   []string
	globstar   string
	lookaround bool
}

// globCompiler translates glob runes into regex sources in one pass.
type globCompiler struct {
	syn      globSyntax
	opts     GlobOptions
	runes    []rune
	stack    []frame
	segments []string
	regex    strings.Builder
	path     strings.Builder
	segment  strings.Builder
	// lookaround is set once a negative lookahead is emitted.
	lookaround bool
}

// translateGlob produces regex sources for glob under resolved opts.
func translateGlob(glob string, opts GlobOptions) (globSources, error) {
	if !utf8.ValidString(glob) {
		return globSources{}, fmt.Errorf("%w: %w: glob is not valid UTF-8", ErrInvalidPattern, ErrInvalidEncoding)
	}

	c := &globCompiler{
		syn:   posixGlobSyntax,
		opts:  opts,
		runes: []rune(glob),
	}
	if opts.Flavor.resolve() == Win32 {
		c.syn = win32GlobSyntax
	}

	if err := c.run(); err != nil {
		return globSources{}, err
	}

	out := globSources{
		regex:      "^" + c.regex.String() + "$",
		lookaround: c.lookaround,
	}
	if opts.Filepath {
		out.path = "^" + c.path.String() + "$"
		out.segments = append(c.segments, "^"+c.segment.String()+"$")
		out.globstar = "^" + c.syn.globstarSegment + "$"
	}

	return out, nil
}

// run scans glob runes once, emitting regex and checking groups are closed.
func (c *globCompiler) run() error {
	rs := c.runes
	extended := c.opts.Extended

	for i := 0; i < len(rs); i++ {
		r := rs[i]
		next := rune(-1)
		if i+1 < len(rs) {
			next = rs[i+1]
		}

		switch {
		case c.syn.isSep(r):
			c.separator(false)
			if !c.opts.Strict {
				for i+1 < len(rs) && c.syn.isSep(rs[i+1]) {
					i++
					c.separator(true)
				}
			}

		case extended && next == '(' && strings.ContainsRune("?*+@!", r):
			if err := c.push(frame{kind: frameExt, op: r}); err != nil {
				return err
			}
			if r == '!' {
				c.lookaround = true
				c.emit("(?!")
			} else {
				c.emit("(?:")
			}
			i++

		case extended && r == '[':
			end, err := c.bracket(i)
			if err != nil {
				return err
			}
			i = end

		case r == '(':
			if c.top(frameExt) || c.top(frameParen) {
				if err := c.push(frame{kind: frameParen}); err != nil {
					return err
				}
				c.emit("(?:")
				continue
			}
			c.emit(`\(`)

		case r == ')':
			switch {
			case c.top(frameExt):
				c.emit(")" + c.closeExt(c.pop().op))
			case c.top(frameParen):
				c.pop()
				c.emit(")")
			default:
				c.emit(`\)`)
			}

		case r == '|':
			if c.top(frameExt) || c.top(frameParen) {
				c.emit("|")
				continue
			}
			c.emit(`\|`)

		case extended && r == '{':
			if err := c.push(frame{kind: frameBrace}); err != nil {
				return err
			}
			c.emit("(?:")

		case r == '}' && c.top(frameBrace):
			c.pop()
			c.emit(")")

		case r == ',' && c.top(frameBrace):
			c.emit("|")

		case extended && r == '?':
			c.emit(c.syn.notSep)

		case r == '*':
			i = c.stars(i)

		default:
			c.emit(regexp.QuoteMeta(string(r)))
		}
	}

	if len(c.stack) > 0 {
		return fmt.Errorf("%w: unterminated %s", ErrInvalidPattern, c.stack[len(c.stack)-1])
	}

	return nil
}

// emit appends s to the whole regex, path regex and current segment.
func (c *globCompiler) emit(s string) {
	c.regex.WriteString(s)
	if c.opts.Filepath {
		c.path.WriteString(s)
		c.segment.WriteString(s)
	}
}

// separator emits one separator match; outside groups it ends the segment.
func (c *globCompiler) separator(optional bool) {
	s := c.syn.sep
	if optional {
		s += "?"
	}

	c.regex.WriteString(s)
	if !c.opts.Filepath {
		return
	}

	c.path.WriteString(s)
	if len(c.stack) > 0 {
		c.segment.WriteString(s)
		return
	}

	c.flushSegment()
}

// flushSegment pushes non-empty segment accumulator as anchored regex.
func (c *globCompiler) flushSegment() {
	if c.segment.Len() > 0 {
		c.segments = append(c.segments, "^"+c.segment.String()+"$")
	}
	c.segment.Reset()
}

// stars handles a run of "*" starting at i and returns index of its last rune.
func (c *globCompiler) stars(i int) int {
	rs := c.runes
	start := i
	for i+1 < len(rs) && rs[i+1] == '*' {
		i++
	}

	count := i - start + 1
	prevSep := start == 0 || c.syn.isSep(rs[start-1])
	nextSep := i+1 == len(rs) || c.syn.isSep(rs[i+1])

	if !c.opts.Globstar || count < 2 || !prevSep || !nextSep {
		c.emit(c.syn.wildcard)
		return i
	}

	c.regex.WriteString(c.syn.globstar)
	if c.opts.Filepath {
		c.path.WriteString(c.syn.globstarSegment)
		c.segment.WriteString(c.syn.globstarSegment)
		if len(c.stack) == 0 {
			c.flushSegment()
		}
	}

	// Globstar owns the separator that follows it.
	if i+1 < len(rs) {
		i++
		if !c.opts.Strict {
			for i+1 < len(rs) && c.syn.isSep(rs[i+1]) {
				i++
			}
		}
	}

	return i
}

// bracket translates bracket expression opened at start and returns index of
// its closing "]".
func (c *globCompiler) bracket(start int) (int, error) {
	rs := c.runes
	i := start + 1

	var b strings.Builder
	b.WriteByte('[')

	negate := false
	if i < len(rs) && (rs[i] == '!' || rs[i] == '^') {
		negate = true
		b.WriteByte('^')
		i++
	}

	first := true
	for ; i < len(rs); i++ {
		r := rs[i]
		switch {
		case r == ']' && !first:
			// Negated class never matches a separator.
			if negate {
				b.WriteString(c.syn.sepClass)
			}
			b.WriteByte(']')
			c.emit(b.String())
			return i, nil

		case r == '[' && i+1 < len(rs) && rs[i+1] == ':':
			end := indexRunes(rs, i+2, ":]")
			if end < 0 {
				return 0, fmt.Errorf("%w: unterminated character class name at offset %d", ErrInvalidPattern, i)
			}

			name := string(rs[i+2 : end])
			class, ok := posixClasses[name]
			if !ok {
				return 0, fmt.Errorf("%w: unknown character class %q", ErrInvalidPattern, name)
			}
			b.WriteString(class)
			i = end + 1

		case r == '-' && !first && i+1 < len(rs) && rs[i+1] != ']':
			b.WriteByte('-')

		default:
			b.WriteString(escapeClassRune(r))
		}

		first = false
	}

	return 0, fmt.Errorf("%w: unterminated bracket expression at offset %d", ErrInvalidPattern, start)
}

// closeExt returns regex suffix closing extglob group opened by op.
func (c *globCompiler) closeExt(op rune) string {
	switch op {
	case '?', '*', '+':
		return string(op)
	case '!':
		return c.syn.wildcard
	default:
		return ""
	}
}

// push opens group frame, failing past MaxGroupDepth.
func (c *globCompiler) push(f frame) error {
	if len(c.stack) >= MaxGroupDepth {
		return fmt.Errorf("%w: more than %d nested groups", ErrPatternTooComplex, MaxGroupDepth)
	}
	c.stack = append(c.stack, f)

	return nil
}

// pop removes innermost group frame.
func (c *globCompiler) pop() frame {
	f := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]

	return f
}

// top reports whether innermost open group has kind k.
func (c *globCompiler) top(k frameKind) bool {
	return len(c.stack) > 0 && c.stack[len(c.stack)-1].kind == k
}

// String names frame for error messages.
func (f frame) String() string {
	switch f.kind {
	case frameExt:
		return string(f.op) + "( group"
	case frameParen:
		return "( group"
	default:
		return "{ group"
	}
}

// escapeClassRune escapes ASCII punctuation for use inside a bracket expression.
func escapeClassRune(r rune) string {
	if r < utf8.RuneSelf && !isWordByte(byte(r)) && r > ' ' {
		return `\` + string(r)
	}

	return string(r)
}

// isWordByte reports ASCII letters, digits and "_".
func isWordByte(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// indexRunes returns index of sub in rs at or after from, or -1.
func indexRunes(rs []rune, from int, sub string) int {
	needle := []rune(sub)
	for i := from; i+len(needle) <= len(rs); i++ {
		match := true
		for j, r := range needle {
			if rs[i+j] != r {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}

	return -1
}
