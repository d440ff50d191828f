package latex

import (
	"fmt"
	"strings"
)

// specials are the characters that end a text run.
const specials = "\\{}$%"

// escapable lists the characters that may follow a backslash to form a
// one-character command such as \% or \'.
const escapable = "\\{}()[]$&,;%@:-'`^\"~"

// ParseError reports why a fragment falls outside the supported subset.
// Callers treat it as "structure unavailable" rather than as a fatal error.
type ParseError struct {
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("latex: %s at offset %d", e.Msg, e.Offset)
}

// Parse builds the tree of src. The result is always a single Group holding
// the top-level nodes, as if src had been wrapped in a pair of braces. Empty
// or whitespace-only input yields an empty Group.
//
// Parsing is all or nothing: an unbalanced brace or math delimiter, or a
// backslash not followed by letters or an escapable character, fails the
// whole input.
func Parse(src string) (Node, error) {
	if strings.TrimSpace(src) == "" {
		return Node{Kind: GroupKind}, nil
	}
	p := &parser{src: src}
	children, err := p.sequence(topLevel, "", 0)
	if err != nil {
		return Node{}, err
	}
	return Node{Kind: GroupKind, Children: children}, nil
}

type mode int

const (
	topLevel mode = iota
	inGroup
	inMath
)

type parser struct {
	src string
	pos int
}

func (p *parser) rest() string { return p.src[p.pos:] }

func (p *parser) errorf(offset int, format string, args ...interface{}) error {
	return &ParseError{Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

// sequence parses nodes until closer (or the end of input at top level).
// openedAt is the offset of the opening delimiter, used in error messages.
func (p *parser) sequence(m mode, closer string, openedAt int) ([]Node, error) {
	var nodes []Node
	for {
		if p.pos >= len(p.src) {
			if m == topLevel {
				return nodes, nil
			}
			return nil, p.errorf(openedAt, "unterminated %q", openerFor(closer))
		}
		if m != topLevel && strings.HasPrefix(p.rest(), closer) {
			p.pos += len(closer)
			return nodes, nil
		}
		if p.src[p.pos] == '}' {
			return nil, p.errorf(p.pos, "unbalanced '}'")
		}

		if n, ok := p.atom(); ok {
			nodes = append(nodes, n)
			continue
		}

		n, err := p.construct(m)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
}

// atom tries, in order, Comment, Text, Reference, Label and Command.
// Math openers \( and \[ are left to construct.
func (p *parser) atom() (Node, bool) {
	rest := p.rest()
	switch {
	case rest[0] == '%':
		end := strings.IndexByte(rest, '\n')
		if end < 0 {
			end = len(rest)
		}
		p.pos += end
		return Node{Kind: CommentKind, Data: rest[1:end]}, true

	case !strings.ContainsRune(specials, rune(rest[0])):
		end := strings.IndexAny(rest, specials)
		if end < 0 {
			end = len(rest)
		}
		p.pos += end
		return Node{Kind: TextKind, Data: rest[:end]}, true

	case rest[0] != '\\':
		return Node{}, false
	}

	if strings.HasPrefix(rest, `\(`) || strings.HasPrefix(rest, `\[`) {
		return Node{}, false
	}
	if n, ok := p.keyed(`\ref`, ReferenceKind); ok {
		return n, true
	}
	if n, ok := p.keyed(`\label`, LabelKind); ok {
		return n, true
	}
	if tok := command(rest); tok != "" {
		p.pos += len(tok)
		return Node{Kind: CommandKind, Data: tok}, true
	}
	return Node{}, false
}

// keyed matches prefix followed by a braced run of non-special characters,
// as in \ref{sec:intro}.
func (p *parser) keyed(prefix string, kind Kind) (Node, bool) {
	rest := p.rest()
	if !strings.HasPrefix(rest, prefix+"{") {
		return Node{}, false
	}
	inner := rest[len(prefix)+1:]
	end := strings.IndexAny(inner, specials)
	if end <= 0 || inner[end] != '}' {
		return Node{}, false
	}
	tok := rest[:len(prefix)+1+end+1]
	p.pos += len(tok)
	return Node{Kind: kind, Data: tok}, true
}

// command returns the command token at the start of s, or "".
func command(s string) string {
	if len(s) < 2 || s[0] != '\\' {
		return ""
	}
	i := 1
	for i < len(s) && isASCIILetter(s[i]) {
		i++
	}
	if i > 1 {
		return s[:i]
	}
	if strings.IndexByte(escapable, s[1]) >= 0 {
		return s[:2]
	}
	return ""
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// construct parses a Group, DisplayMath or Math starting at the current
// position. Inside math only groups are allowed.
func (p *parser) construct(m mode) (Node, error) {
	start := p.pos
	rest := p.rest()

	if rest[0] == '{' {
		p.pos++
		children, err := p.sequence(inGroup, "}", start)
		if err != nil {
			return Node{}, err
		}
		return Node{Kind: GroupKind, Children: children}, nil
	}

	var kind Kind
	var open string
	switch {
	case strings.HasPrefix(rest, "$$"):
		kind, open = DisplayMathKind, "$$"
	case strings.HasPrefix(rest, `\[`):
		kind, open = DisplayMathKind, `\[`
	case strings.HasPrefix(rest, "$"):
		kind, open = MathKind, "$"
	case strings.HasPrefix(rest, `\(`):
		kind, open = MathKind, `\(`
	default:
		return Node{}, p.errorf(start, "invalid command %q", truncate(rest, 8))
	}

	if m == inMath {
		return Node{}, p.errorf(start, "nested math %q", open)
	}
	p.pos += len(open)
	children, err := p.sequence(inMath, closingDelimiter(open), start)
	if err != nil {
		return Node{}, err
	}
	return Node{Kind: kind, Data: open, Children: children}, nil
}

func openerFor(closer string) string {
	switch closer {
	case "}":
		return "{"
	case `\)`:
		return `\(`
	case `\]`:
		return `\[`
	default:
		return closer
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
