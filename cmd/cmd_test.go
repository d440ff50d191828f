package cmd

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
)

func TestFirstLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"\n\n  \n", ""},
		{"\n  Bonjour.\nAu revoir.", "Bonjour."},
		{strings.Repeat("é", 70), strings.Repeat("é", 60) + "..."},
	}
	for _, tt := range tests {
		if got := firstLine(tt.in, 60); got != tt.want {
			t.Errorf("firstLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSamePath(t *testing.T) {
	if !samePath("article_fr.tex", "./article_fr.tex") {
		t.Error("expected relative spellings of one file to match")
	}
	if samePath("article_fr.tex", "article_en.tex") {
		t.Error("expected different files not to match")
	}
}

func TestTranslate_EndToEnd(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		var req struct {
			Prompt  string `json:"prompt"`
			Grammar string `json:"grammar"`
		}
		json.NewDecoder(r.Body).Decode(&req)

		text := `\begin{trsltx}Goodbye.` + "\n" + `\end{trsltx}`
		if strings.Contains(req.Prompt, "Bonjour") {
			text = `\begin{trsltx}` + "\nHello \\ref{x}.\n" + `\end{trsltx}`
		}
		json.NewEncoder(w).Encode(map[string]string{"text": text, "finish_reason": "stop"})
	}))
	defer server.Close()

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("TRSLTX_API_KEY", "test-key")

	in := filepath.Join(dir, "article_fr.tex")
	out := filepath.Join(dir, "out", "article_en.tex")
	src := "\\documentclass{article}\n\\usepackage[french]{babel}\n\\begin{document}\n" +
		"Bonjour \\ref{x}.\n%trsltx-split\nAu revoir.\n" +
		"%trsltx-begin-ignore\nNe pas traduire.\n%trsltx-end-ignore\n\\end{document}\n"
	if err := os.WriteFile(in, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	rootCmd.SetArgs([]string{"translate", "-i", in, "-o", out, "--base-url", server.URL, "--skip-lang-check", "--log-level", "error"})
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("translate failed: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	want := "\\documentclass{article}\n\\usepackage[english]{babel}\n\\newenvironment{trsltx}{}{}\n\\begin{document}\n" +
		"Hello \\ref{x}.\nGoodbye.\n" +
		"%trsltx-begin-ignore\nNe pas traduire.\n%trsltx-end-ignore\n\\end{document}\n"
	if string(got) != want {
		t.Errorf("output =\n%s\nwant\n%s", got, want)
	}
	if calls.Load() != 2 {
		t.Errorf("expected 2 oracle calls, got %d", calls.Load())
	}
}

func TestTranslate_SameFile(t *testing.T) {
	rootCmd.SetArgs([]string{"translate", "-i", "article_fr.tex", "-o", "./article_fr.tex"})
	if err := rootCmd.ExecuteContext(context.Background()); err == nil {
		t.Error("expected error for identical input and output")
	}
}
