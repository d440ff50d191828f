package chunker

import (
	"strings"
	"unicode/utf8"

	"github.com/valpere/trsltx/internal/latex"
)

// GenerateSplit returns body with split marker lines inserted so that, as far
// as possible, no chunk exceeds maxChars unicode code points. If maxChars ≤ 0
// body is returned unchanged.
//
// Splits are only placed at the start of a line following a blank line, and
// only at the top level of the parsed body: never inside a group or a math
// construct. When body cannot be parsed, a lexical scan of braces and math
// delimiters stands in for the tree. A single paragraph longer than maxChars
// stays in one chunk.
//
// Removing the inserted marker lines gives back body exactly.
func GenerateSplit(body string, maxChars int) string {
	if maxChars <= 0 {
		return body
	}

	splits := pickSplits(body, candidates(body), maxChars)
	if len(splits) == 0 {
		return body
	}

	var sb strings.Builder
	prev := 0
	for _, s := range splits {
		sb.WriteString(body[prev:s])
		sb.WriteString(SplitMarker)
		sb.WriteByte('\n')
		prev = s
	}
	sb.WriteString(body[prev:])
	return sb.String()
}

// candidates returns the byte offsets, in increasing order, at which a split
// marker may be inserted.
func candidates(body string) []int {
	root, err := latex.Parse(body)
	if err != nil {
		return scanParagraphStarts(body)
	}

	var out []int
	offset := 0
	for _, n := range root.Children {
		end := offset + len(n.String())
		if n.Kind == latex.TextKind {
			out = append(out, paragraphStarts(body, offset, end)...)
		}
		offset = end
	}
	return out
}

// paragraphStarts lists the offsets in (from, to] that begin a line and
// follow a blank line.
func paragraphStarts(body string, from, to int) []int {
	var out []int
	for i := from + 1; i <= to; i++ {
		if body[i-1] != '\n' {
			continue
		}
		lineStart := strings.LastIndexByte(body[:i-1], '\n') + 1
		if strings.TrimSpace(body[lineStart:i]) == "" {
			out = append(out, i)
		}
	}
	return out
}

// scanParagraphStarts lists the paragraph starts of body that lie outside any
// brace group and any math. Escapes of the form \x are stepped over and
// comments are skipped up to their end of line, so that it tolerates input
// the parser rejects.
func scanParagraphStarts(body string) []int {
	var (
		out     []int
		braces  int
		math    int
		inline  bool
		display bool
	)
	topLevel := func() bool {
		return braces == 0 && math == 0 && !inline && !display
	}

	for i := 0; i <= len(body); {
		if i > 0 && body[i-1] == '\n' && topLevel() {
			lineStart := strings.LastIndexByte(body[:i-1], '\n') + 1
			if strings.TrimSpace(body[lineStart:i]) == "" {
				out = append(out, i)
			}
		}
		if i == len(body) {
			break
		}

		switch body[i] {
		case '\\':
			if i+1 < len(body) {
				switch body[i+1] {
				case '(', '[':
					math++
				case ')', ']':
					math = max(math-1, 0)
				}
			}
			i += 2
			continue
		case '%':
			if end := strings.IndexByte(body[i:], '\n'); end >= 0 {
				i += end
			} else {
				i = len(body)
			}
			continue
		case '{':
			braces++
		case '}':
			braces = max(braces-1, 0)
		case '$':
			if strings.HasPrefix(body[i:], "$$") && !inline {
				display = !display
				i += 2
				continue
			}
			inline = !inline
		}
		i++
	}
	return out
}

// pickSplits greedily chooses, among cands, the latest split that keeps the
// current chunk within maxChars. Splits that would leave only whitespace
// after them are dropped.
func pickSplits(body string, cands []int, maxChars int) []int {
	var splits []int
	last, prev := 0, 0

	cut := func(at int) {
		if at <= last || strings.TrimSpace(body[at:]) == "" {
			return
		}
		splits = append(splits, at)
		last = at
	}

	for _, c := range cands {
		if utf8.RuneCountInString(body[last:c]) > maxChars {
			cut(prev)
			if utf8.RuneCountInString(body[last:c]) > maxChars {
				cut(c)
			}
		}
		prev = c
	}
	if utf8.RuneCountInString(body[last:]) > maxChars {
		cut(prev)
	}
	return splits
}
