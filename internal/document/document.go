// Package document splits a LaTeX source file into preamble, body and
// afterword, and assembles the translated document.
package document

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	beginDocument = `\begin{document}`
	endDocument   = `\end{document}`

	// envDeclaration makes the oracle's answer delimiters a valid no-op
	// environment in the output.
	envDeclaration = `\newenvironment{trsltx}{}{}`
)

var (
	ErrMissingBegin = errors.New(`missing \begin{document}`)
	ErrMissingEnd   = errors.New(`missing \end{document}`)
)

// Document is a LaTeX source divided at its document environment.
type Document struct {
	Preamble  string
	Body      string
	Afterword string
}

// Parse splits text on the first \begin{document} and the last
// \end{document} following it.
func Parse(text string) (*Document, error) {
	b := strings.Index(text, beginDocument)
	if b < 0 {
		return nil, ErrMissingBegin
	}
	rest := text[b+len(beginDocument):]
	e := strings.LastIndex(rest, endDocument)
	if e < 0 {
		return nil, ErrMissingEnd
	}
	return &Document{
		Preamble:  text[:b],
		Body:      rest[:e],
		Afterword: rest[e+len(endDocument):],
	}, nil
}

// Read loads and parses the file at path.
func Read(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Render returns the document text with body in place of d.Body. The trsltx
// environment is declared just before \begin{document} unless the preamble
// already declares it.
func (d *Document) Render(body string) string {
	var sb strings.Builder
	sb.Grow(len(d.Preamble) + len(body) + len(d.Afterword) + 64)
	sb.WriteString(d.Preamble)
	if !strings.Contains(d.Preamble, envDeclaration) {
		sb.WriteString(envDeclaration)
		sb.WriteByte('\n')
	}
	sb.WriteString(beginDocument)
	sb.WriteString(body)
	sb.WriteString(endDocument)
	sb.WriteString(d.Afterword)
	return sb.String()
}

// String returns the document unchanged.
func (d *Document) String() string {
	return d.Preamble + beginDocument + d.Body + endDocument + d.Afterword
}
