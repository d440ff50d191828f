// Package detector identifies the natural language of LaTeX prose.
package detector

import (
	"strings"

	lingua "github.com/pemistahl/lingua-go"

	"github.com/valpere/trsltx/internal/latex"
)

type Detector struct {
	detector lingua.LanguageDetector
}

func New() *Detector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromAllLanguages().
		Build()

	return &Detector{detector: detector}
}

func (d *Detector) Detect(text string) (lingua.Language, bool) {
	if strings.TrimSpace(text) == "" {
		return lingua.Unknown, false
	}
	return d.detector.DetectLanguageOf(text)
}

func (d *Detector) DetectISO(text string) (string, bool) {
	lang, ok := d.Detect(text)
	if !ok {
		return "", false
	}
	return lang.IsoCode639_1().String(), true
}

// DetectLaTeX detects the language of the prose of a LaTeX source.
func (d *Detector) DetectLaTeX(src string) (string, bool) {
	return d.DetectISO(Prose(src))
}

// Prose returns the text of src outside commands, comments and math. Each
// paragraph is parsed on its own so that one paragraph outside the parsed
// subset does not hide the others; such paragraphs are skipped.
func Prose(src string) string {
	var parts []string
	for _, para := range strings.Split(src, "\n\n") {
		n, err := latex.Parse(para)
		if err != nil {
			continue
		}
		if text := strings.Join(strings.Fields(latex.PlainText(n)), " "); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n")
}
