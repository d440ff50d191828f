package oracle

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/valpere/trsltx/internal/latex"
)

//go:embed prompt.txt
var defaultPrompt string

// PromptData is what BuildPrompt puts around a chunk. Languages are English
// names, e.g. "French".
type PromptData struct {
	SourceLang string
	TargetLang string
	Chunk      string
	Glossary   map[string]string
	Context    string
}

// LoadPrompt returns the template stored at path, or the built-in template
// when path is empty.
func LoadPrompt(path string) (string, error) {
	if path == "" {
		return defaultPrompt, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read prompt: %w", err)
	}
	return string(data), nil
}

// BuildPrompt fills <lang_in> and <lang_out> in tmpl, appends the optional
// glossary and previous-context sections, then the chunk wrapped in the
// answer delimiters, without added whitespace.
func BuildPrompt(tmpl string, d PromptData) string {
	var sb strings.Builder

	text := strings.ReplaceAll(tmpl, "<lang_in>", d.SourceLang)
	text = strings.ReplaceAll(text, "<lang_out>", d.TargetLang)
	sb.WriteString(strings.TrimRight(text, "\n"))
	sb.WriteString("\n")

	if len(d.Glossary) > 0 {
		terms := make([]string, 0, len(d.Glossary))
		for src := range d.Glossary {
			terms = append(terms, src)
		}
		sort.Strings(terms)

		sb.WriteString("\nTerminology (use these exact translations):\n")
		for _, src := range terms {
			fmt.Fprintf(&sb, "  %s -> %s\n", src, d.Glossary[src])
		}
	}

	if d.Context != "" {
		sb.WriteString("\nEnd of the previous translated passage, for continuity only (do not translate it again):\n...")
		sb.WriteString(d.Context)
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "\n%s text:\n%s%s%s\n", d.SourceLang, latex.BeginDelimiter, d.Chunk, latex.EndDelimiter)
	fmt.Fprintf(&sb, "\n%s text:\n", d.TargetLang)
	return sb.String()
}
