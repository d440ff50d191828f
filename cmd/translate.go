/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/valpere/trsltx/internal"
	"github.com/valpere/trsltx/internal/chunker"
	"github.com/valpere/trsltx/internal/config"
	"github.com/valpere/trsltx/internal/detector"
	"github.com/valpere/trsltx/internal/document"
	"github.com/valpere/trsltx/internal/latex"
	"github.com/valpere/trsltx/internal/oracle"
	"github.com/valpere/trsltx/internal/orchestrator"
	"github.com/valpere/trsltx/internal/validator"
)

var (
	inputFile     string
	outputFile    string
	dryRun        bool
	skipLangCheck bool
)

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Translate a LaTeX document",
	Long: `Translate the body of a LaTeX document chunk by chunk.

The source and target languages come from the two-letter suffix of the file
names, e.g. -i article_fr.tex -o article_en.tex translates French to English.

Available oracles:
  - textsynth   TextSynth completions (requires API key, grammar-constrained)
  - ollama      Ollama LLM (self-hosted)
  - openrouter  OpenRouter LLM (requires API key)

A body without markers is split automatically at --max-chunk characters.
Chunks that cannot be translated are copied unchanged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if samePath(inputFile, outputFile) {
			return fmt.Errorf("input file and output file cannot be the same")
		}
		sourceLang, err := document.LangFromFilename(inputFile)
		if err != nil {
			return err
		}
		targetLang, err := document.LangFromFilename(outputFile)
		if err != nil {
			return err
		}

		cfg, log, err := setup(cmd, map[string]string{
			"oracle":        "oracle",
			"model":         "model",
			"base_url":      "base-url",
			"temperature":   "temperature",
			"max_chunk":     "max-chunk",
			"context_words": "context-words",
			"prompt_file":   "prompt",
		})
		if err != nil {
			return err
		}

		run := internal.NewTranslationRun(inputFile, outputFile, sourceLang, targetLang)
		log = log.With("run", run.ID.String())
		log.Info("translation started", "input", run.InputFile, "output", run.OutputFile,
			"source", run.SourceLang, "target", run.TargetLang, "oracle", cfg.Oracle)

		doc, err := document.Read(inputFile)
		if err != nil {
			return err
		}
		chunks, err := segment(doc, cfg.MaxChunk, log)
		if err != nil {
			return err
		}

		var det *detector.Detector
		if !skipLangCheck {
			det = detector.New()
			if code, ok := det.DetectLaTeX(doc.Body); ok && !strings.EqualFold(code, sourceLang) {
				log.Warn("body language differs from the input file name", "expected", sourceLang, "detected", code)
			}
		}

		if dryRun {
			printPlan(chunks)
			return nil
		}

		translated, summary, err := translateBody(cmd, cfg, chunks, sourceLang, targetLang, log)
		if err != nil {
			return err
		}

		if det != nil {
			if ok, err := validator.NewWithDetector(det).IsValidLaTeX(translated, targetLang); !ok {
				log.Warn("translated body may not be in the target language", "err", err)
			}
		}

		doc.Preamble = document.LocalizePreamble(doc.Preamble, sourceLang, targetLang)
		if err := writeOutput(outputFile, doc.Render(translated)); err != nil {
			return err
		}

		fmt.Printf("Successfully translated %s to %s\n", document.LanguageName(sourceLang), document.LanguageName(targetLang))
		fmt.Printf("Chunks: %d translated, %d unchanged, %d oversize, %d failed\n",
			summary.Translated, summary.Unchanged, summary.Oversize, summary.Failed)
		return nil
	},
}

func translateBody(cmd *cobra.Command, cfg *config.Config, chunks []chunker.Chunk, sourceLang, targetLang string, log *slog.Logger) (string, orchestrator.Summary, error) {
	o, err := oracle.New(cfg.Oracle, cfg.OracleConfig())
	if err != nil {
		return "", orchestrator.Summary{}, err
	}
	prompt, err := oracle.LoadPrompt(cfg.PromptFile)
	if err != nil {
		return "", orchestrator.Summary{}, err
	}

	ctl := orchestrator.New(o, orchestrator.Config{
		SourceLang:   document.LanguageName(sourceLang),
		TargetLang:   document.LanguageName(targetLang),
		Prompt:       prompt,
		MaxTokens:    cfg.MaxTokens,
		Temperature:  cfg.Temperature,
		Glossary:     cfg.GlossaryMap(),
		ContextWords: cfg.ContextWords,
	}, log)

	translated, summary := ctl.TranslateBody(cmd.Context(), chunks)
	if err := cmd.Context().Err(); err != nil {
		return "", summary, fmt.Errorf("translation interrupted: %w", err)
	}
	return translated, summary, nil
}

// printPlan lists what translate would send to the oracle.
func printPlan(chunks []chunker.Chunk) {
	for i, ch := range chunks {
		status := ch.Kind.String()
		if ch.Kind == chunker.Translate {
			if n, err := latex.Parse(ch.Content); err != nil {
				status += ", no grammar: " + err.Error()
			} else {
				status += fmt.Sprintf(", grammar of %d commands", len(latex.Commands(n))+len(latex.Labels(n))+len(latex.References(n)))
			}
		}
		fmt.Printf("%4d  %6d chars  %s\n", i, len([]rune(ch.Content)), status)
	}
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&inputFile, "input", "i", "article_fr.tex", "Input LaTeX file, named name_xy.tex")
	translateCmd.Flags().StringVarP(&outputFile, "output", "o", "article_en.tex", "Output LaTeX file, named name_xy.tex")
	translateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Segment the body and build grammars without calling the oracle")
	translateCmd.Flags().BoolVar(&skipLangCheck, "skip-lang-check", false, "Do not check the languages of the source and translated bodies")

	translateCmd.Flags().String("oracle", "textsynth", "Oracle: textsynth, ollama or openrouter")
	translateCmd.Flags().String("model", "", "Oracle model (oracle default if empty)")
	translateCmd.Flags().String("base-url", "", "Oracle base URL (oracle default if empty)")
	translateCmd.Flags().Float64("temperature", 0.5, "Sampling temperature")
	translateCmd.Flags().Int("max-chunk", 2000, "Auto-split target in characters for bodies without markers (0 disables)")
	translateCmd.Flags().Int("context-words", 0, "Words of the previous translated chunk passed as context (0 disables)")
	translateCmd.Flags().String("prompt", "", "Prompt template file with <lang_in> and <lang_out> (built-in if empty)")
}
