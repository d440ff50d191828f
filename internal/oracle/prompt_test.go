package oracle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt(defaultPrompt, PromptData{
		SourceLang: "French",
		TargetLang: "English",
		Chunk:      "\nBonjour \\ref{x}.\n",
	})

	if strings.Contains(p, "<lang_in>") || strings.Contains(p, "<lang_out>") {
		t.Errorf("language placeholders not replaced:\n%s", p)
	}
	if !strings.Contains(p, "from French to English") {
		t.Errorf("expected language names in prompt:\n%s", p)
	}
	if !strings.Contains(p, "\\begin{trsltx}\nBonjour \\ref{x}.\n\\end{trsltx}") {
		t.Errorf("chunk should be wrapped in delimiters:\n%s", p)
	}
	if strings.Contains(p, "Terminology") || strings.Contains(p, "previous translated passage") {
		t.Errorf("unexpected optional sections:\n%s", p)
	}
	if !strings.HasSuffix(p, "English text:\n") {
		t.Errorf("prompt should end with the answer cue:\n%s", p)
	}
}

func TestBuildPrompt_GlossaryAndContext(t *testing.T) {
	p := BuildPrompt("from <lang_in> to <lang_out>", PromptData{
		SourceLang: "French",
		TargetLang: "English",
		Chunk:      "x",
		Glossary:   map[string]string{"théorème": "theorem", "anneau": "ring"},
		Context:    "the last words",
	})

	a := strings.Index(p, "anneau -> ring")
	b := strings.Index(p, "théorème -> theorem")
	if a < 0 || b < 0 || a > b {
		t.Errorf("glossary should be listed in sorted order:\n%s", p)
	}
	if !strings.Contains(p, "...the last words") {
		t.Errorf("expected context section:\n%s", p)
	}
}

func TestLoadPrompt(t *testing.T) {
	def, err := LoadPrompt("")
	if err != nil || def != defaultPrompt {
		t.Fatalf("expected built-in prompt, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "prompt.txt")
	if err := os.WriteFile(path, []byte("custom <lang_in>"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadPrompt(path)
	if err != nil || got != "custom <lang_in>" {
		t.Errorf("LoadPrompt() = %q, %v", got, err)
	}

	if _, err := LoadPrompt(filepath.Join(t.TempDir(), "none.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}
