// Package chunker divides a document body into ordered translation units.
// Units are delimited by marker comments on their own line: split markers
// separate units, and ignore markers bracket regions that are copied to the
// output verbatim. GenerateSplit inserts split markers into a body that has
// none. ExtractContext provides a sliding-window context snippet for LLM
// prompts.
package chunker

import (
	"errors"
	"fmt"
	"strings"
)

// Marker lines recognised in a document body.
const (
	SplitMarker       = "%trsltx-split"
	BeginIgnoreMarker = "%trsltx-begin-ignore"
	EndIgnoreMarker   = "%trsltx-end-ignore"
)

const (
	// DefaultContextWords is the default number of words extracted by
	// ExtractContext for use as a sliding-window context.
	DefaultContextWords = 25
)

var (
	ErrUnbalancedIgnore = errors.New("unbalanced ignore markers")
	ErrNestedIgnore     = errors.New("nested ignore region")
	ErrSplitInIgnore    = errors.New("split marker inside ignore region")
)

// Kind tells whether a chunk goes through the oracle.
type Kind int

const (
	Translate Kind = iota
	Unchanged
)

func (k Kind) String() string {
	if k == Unchanged {
		return "unchanged"
	}
	return "translate"
}

// Chunk is one unit of the body. Concatenating the Content of all chunks of
// a body gives back the body minus its split marker lines.
type Chunk struct {
	Content string
	Kind    Kind
}

// ExtractChunks segments body at its marker lines.
//
// Every split marker line is dropped and ends the current Translate chunk,
// so a body with N split markers and no ignore region yields N+1 chunks.
// An ignore region, markers included, becomes a single Unchanged chunk; it
// ends on the end marker itself, the newline after it opening the next
// chunk. A split marker directly after an ignore region is redundant and is
// dropped without creating an empty chunk.
//
// Unbalanced or nested ignore markers and split markers inside an ignore
// region are structural errors and no chunk is returned.
func ExtractChunks(body string) ([]Chunk, error) {
	var (
		chunks     []Chunk
		current    strings.Builder
		ignored    strings.Builder
		inIgnore   bool
		justClosed bool
	)

	flush := func(kind Kind, content string) {
		chunks = append(chunks, Chunk{Content: content, Kind: kind})
	}

	for i, line := range strings.SplitAfter(body, "\n") {
		lineNo := i + 1
		switch strings.TrimSpace(line) {
		case SplitMarker:
			if inIgnore {
				return nil, fmt.Errorf("line %d: %w", lineNo, ErrSplitInIgnore)
			}
			if justClosed && strings.TrimSpace(current.String()) == "" {
				justClosed = false
				continue
			}
			flush(Translate, current.String())
			current.Reset()
			justClosed = false

		case BeginIgnoreMarker:
			if inIgnore {
				return nil, fmt.Errorf("line %d: %w", lineNo, ErrNestedIgnore)
			}
			if current.Len() > 0 {
				flush(Translate, current.String())
				current.Reset()
			}
			inIgnore = true
			justClosed = false
			ignored.WriteString(line)

		case EndIgnoreMarker:
			if !inIgnore {
				return nil, fmt.Errorf("line %d: %w", lineNo, ErrUnbalancedIgnore)
			}
			content := strings.TrimSuffix(line, "\n")
			ignored.WriteString(content)
			flush(Unchanged, ignored.String())
			ignored.Reset()
			current.WriteString(line[len(content):])
			inIgnore = false
			justClosed = true

		default:
			if inIgnore {
				ignored.WriteString(line)
				continue
			}
			if strings.TrimSpace(line) != "" {
				justClosed = false
			}
			current.WriteString(line)
		}
	}

	if inIgnore {
		return nil, fmt.Errorf("%w: %q without %q", ErrUnbalancedIgnore, BeginIgnoreMarker, EndIgnoreMarker)
	}

	last := len(chunks) - 1
	if current.Len() > 0 || last < 0 || chunks[last].Kind == Translate {
		flush(Translate, current.String())
	}
	return chunks, nil
}

// HasMarkers reports whether body contains any marker line.
func HasMarkers(body string) bool {
	for _, line := range strings.Split(body, "\n") {
		switch strings.TrimSpace(line) {
		case SplitMarker, BeginIgnoreMarker, EndIgnoreMarker:
			return true
		}
	}
	return false
}

// ExtractContext returns the last wordCount words of text, joined by a single
// space. It is intended for use as a sliding-window context snippet passed to
// LLM translators so they can maintain continuity across chunks.
// If text has fewer words than wordCount, the entire text is returned.
// If wordCount ≤ 0, DefaultContextWords is used.
func ExtractContext(text string, wordCount int) string {
	if wordCount <= 0 {
		wordCount = DefaultContextWords
	}
	words := strings.Fields(text)
	if len(words) <= wordCount {
		return strings.TrimSpace(text)
	}
	return strings.Join(words[len(words)-wordCount:], " ")
}
