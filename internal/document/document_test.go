package document

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sample = "\\documentclass{article}\n\\usepackage[french]{babel}\n" +
	"\\begin{document}\nBonjour.\n\\end{document}\n% trailer\n"

func TestParse(t *testing.T) {
	doc, err := Parse(sample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Preamble != "\\documentclass{article}\n\\usepackage[french]{babel}\n" {
		t.Errorf("unexpected preamble %q", doc.Preamble)
	}
	if doc.Body != "\nBonjour.\n" {
		t.Errorf("unexpected body %q", doc.Body)
	}
	if doc.Afterword != "\n% trailer\n" {
		t.Errorf("unexpected afterword %q", doc.Afterword)
	}
	if doc.String() != sample {
		t.Error("String should give back the source")
	}
}

func TestParse_LastEndDocument(t *testing.T) {
	src := "p\\begin{document}a\\end{document}b\\end{document}c"
	doc, err := Parse(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Body != "a\\end{document}b" || doc.Afterword != "c" {
		t.Errorf("unexpected split %+v", doc)
	}
}

func TestParse_Missing(t *testing.T) {
	if _, err := Parse("no document here"); !errors.Is(err, ErrMissingBegin) {
		t.Errorf("expected ErrMissingBegin, got %v", err)
	}
	if _, err := Parse("\\end{document}\\begin{document}x"); !errors.Is(err, ErrMissingEnd) {
		t.Errorf("expected ErrMissingEnd, got %v", err)
	}
}

func TestRender(t *testing.T) {
	doc, err := Parse(sample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := doc.Render("\nHello.\n")
	want := "\\documentclass{article}\n\\usepackage[french]{babel}\n" +
		"\\newenvironment{trsltx}{}{}\n\\begin{document}\nHello.\n\\end{document}\n% trailer\n"
	if out != want {
		t.Errorf("Render() = %q, want %q", out, want)
	}
}

func TestRender_EnvironmentAlreadyDeclared(t *testing.T) {
	doc := &Document{Preamble: "\\newenvironment{trsltx}{}{}\n", Body: "x"}
	out := doc.Render("y")
	if n := strings.Count(out, envDeclaration); n != 1 {
		t.Errorf("expected one declaration, got %d in %q", n, out)
	}
}

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "article_fr.tex")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := Read(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Body != "\nBonjour.\n" {
		t.Errorf("unexpected body %q", doc.Body)
	}

	if _, err := Read(filepath.Join(t.TempDir(), "missing.tex")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestLangFromFilename(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"article_fr.tex", "fr", false},
		{"/tmp/papers/my_article_EN.tex", "en", false},
		{"notes_uk.tex", "uk", false},
		{"article.tex", "", true},
		{"article_french.tex", "", true},
		{"article_.tex", "", true},
	}
	for _, tt := range tests {
		got, err := LangFromFilename(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("LangFromFilename(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("LangFromFilename(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestLanguageName(t *testing.T) {
	tests := map[string]string{
		"en": "English",
		"fr": "French",
		"de": "German",
		"uk": "Ukrainian",
	}
	for code, want := range tests {
		if got := LanguageName(code); got != want {
			t.Errorf("LanguageName(%q) = %q, want %q", code, got, want)
		}
	}
}

func TestLocalizePreamble(t *testing.T) {
	pre := "\\usepackage[english, french]{babel}\n\\selectlanguage{french}\n\\selectlanguage{english}\n"
	got := LocalizePreamble(pre, "fr", "de")
	want := "\\usepackage[english, ngerman]{babel}\n\\selectlanguage{ngerman}\n\\selectlanguage{english}\n"
	if got != want {
		t.Errorf("LocalizePreamble() = %q, want %q", got, want)
	}
}

func TestLocalizePreamble_NoBabel(t *testing.T) {
	pre := "\\documentclass{article}\n"
	if got := LocalizePreamble(pre, "fr", "en"); got != pre {
		t.Errorf("expected preamble unchanged, got %q", got)
	}
}
