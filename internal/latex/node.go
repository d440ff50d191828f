// Package latex parses a conservative subset of LaTeX markup into a small
// syntax tree and derives from it the vocabulary, the generation grammar and
// the structural distance used to rank translations of a fragment.
package latex

import "strings"

// Kind identifies the variant held by a Node.
type Kind int

const (
	TextKind Kind = iota
	CommentKind
	LabelKind
	ReferenceKind
	CommandKind
	GroupKind
	MathKind
	DisplayMathKind
)

func (k Kind) String() string {
	switch k {
	case TextKind:
		return "Text"
	case CommentKind:
		return "Comment"
	case LabelKind:
		return "Label"
	case ReferenceKind:
		return "Reference"
	case CommandKind:
		return "Command"
	case GroupKind:
		return "Group"
	case MathKind:
		return "Math"
	case DisplayMathKind:
		return "DisplayMath"
	default:
		return "Unknown"
	}
}

// Node is one element of the tree. Atoms (Text, Comment, Label, Reference,
// Command) carry Data and no children; containers (Group, Math, DisplayMath)
// own their Children exclusively.
//
// Data holds:
//   - Text: the raw run of characters
//   - Comment: the text after '%' up to the end of the line
//   - Label, Reference: the canonical form, e.g. \label{eq:1}
//   - Command: the command token including the backslash, e.g. \frac or \%
//   - Math, DisplayMath: the opening delimiter ("$", "\(", "$$", "\[")
type Node struct {
	Kind     Kind
	Data     string
	Children []Node
}

// IsContainer reports whether n holds child nodes.
func (n Node) IsContainer() bool {
	return n.Kind == GroupKind || n.Kind == MathKind || n.Kind == DisplayMathKind
}

// Count returns the number of nodes in the subtree rooted at n, n included.
func (n Node) Count() int {
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}

// closingDelimiter returns the delimiter matching an opening math delimiter.
func closingDelimiter(open string) string {
	switch open {
	case `\(`:
		return `\)`
	case `\[`:
		return `\]`
	default:
		return open
	}
}

// String prints the subtree back to LaTeX source.
func (n Node) String() string {
	var sb strings.Builder
	n.write(&sb)
	return sb.String()
}

// Body prints the children of a container without its own delimiters. For
// the top-level group returned by Parse this is the original source text.
func (n Node) Body() string {
	var sb strings.Builder
	for _, c := range n.Children {
		c.write(&sb)
	}
	return sb.String()
}

func (n Node) write(sb *strings.Builder) {
	switch n.Kind {
	case TextKind, LabelKind, ReferenceKind, CommandKind:
		sb.WriteString(n.Data)
	case CommentKind:
		sb.WriteByte('%')
		sb.WriteString(n.Data)
	case GroupKind:
		sb.WriteByte('{')
		for _, c := range n.Children {
			c.write(sb)
		}
		sb.WriteByte('}')
	case MathKind, DisplayMathKind:
		sb.WriteString(n.Data)
		for _, c := range n.Children {
			c.write(sb)
		}
		sb.WriteString(closingDelimiter(n.Data))
	}
}

// PlainText concatenates the Text nodes of the subtree, skipping comments,
// commands and math. It is meant for language detection, not display.
func PlainText(n Node) string {
	var sb strings.Builder
	var walk func(Node)
	walk = func(n Node) {
		switch n.Kind {
		case TextKind:
			sb.WriteString(n.Data)
		case GroupKind:
			for _, c := range n.Children {
				walk(c)
			}
		}
	}
	walk(n)
	return sb.String()
}
