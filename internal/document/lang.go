package document

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// LangFromFilename returns the two-letter language code carried by a file
// name of the form name_xy.ext, e.g. "fr" for "article_fr.tex".
func LangFromFilename(path string) (string, error) {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	i := strings.LastIndexByte(stem, '_')
	if i < 0 || len(stem)-i-1 != 2 {
		return "", fmt.Errorf("%s: expected a name_xy suffix with a two-letter language code", base)
	}
	code := strings.ToLower(stem[i+1:])
	if _, err := language.ParseBase(code); err != nil {
		return "", fmt.Errorf("%s: unknown language %q: %w", base, code, err)
	}
	return code, nil
}

// LanguageName returns the English name of a language code, or the code
// itself when it has none.
func LanguageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return code
}
