package latex

import "strings"

// Placeholder is the first alternative of the command production so that it
// is never empty, even for a fragment without any command.
const Placeholder = `\commandevide`

// Delimiters of the answer expected from the oracle. The output document
// declares a matching no-op environment.
const (
	BeginDelimiter = `\begin{trsltx}`
	EndDelimiter   = `\end{trsltx}`
)

// skeleton is the fragment-independent part of the grammar, in the W3C EBNF
// notation accepted by grammar-constrained completion endpoints.
const skeleton = `root ::= "\\begin{trsltx}" stuff "\\end{trsltx}"
stuff ::= (atom | construct)*
atom ::= command | text
construct ::= group | math
text ::= [^\\{}$%]+
group ::= "{" stuff "}"
math ::= ("$" stuff "$") | ("$$" stuff "$$") | ("\\(" stuff "\\)") | ("\\[" stuff "\\]")
`

// Grammar returns the generation grammar of a fragment: the skeleton
// followed by a command production listing the placeholder, then the
// labels, references and commands found in n.
func Grammar(n Node) string {
	alts := []string{Placeholder}
	alts = append(alts, Labels(n)...)
	alts = append(alts, References(n)...)
	alts = append(alts, Commands(n)...)

	quoted := make([]string, len(alts))
	for i, a := range alts {
		quoted[i] = quote(a)
	}

	var sb strings.Builder
	sb.WriteString(skeleton)
	sb.WriteString("command ::= ")
	sb.WriteString(strings.Join(quoted, " | "))
	sb.WriteByte('\n')
	return sb.String()
}

// quote renders s as a double-quoted grammar literal: backslashes are
// doubled, then double quotes escaped.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
