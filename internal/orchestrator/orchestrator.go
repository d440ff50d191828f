// Package orchestrator drives the oracle over the chunks of a document body,
// one chunk at a time, and keeps for each chunk the candidate whose structure
// is closest to the source.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/valpere/trsltx/internal/chunker"
	"github.com/valpere/trsltx/internal/latex"
	"github.com/valpere/trsltx/internal/oracle"
	"github.com/valpere/trsltx/internal/postprocess"
)

const (
	// MaxAttempts is the number of oracle calls allowed per chunk.
	MaxAttempts = 4
	// GrammarAttempts is how many of the first attempts are constrained by
	// the chunk grammar when one is available.
	GrammarAttempts = 2
	// OversizeChars is the length, in code points, from which a chunk is
	// left untranslated.
	OversizeChars = 4000
	// AcceptDistance stops the attempt loop once a candidate is this close.
	AcceptDistance = 1
)

// Scores of candidates that cannot be compared with the source.
const (
	scoreMissing     = math.MaxInt
	scoreUnparseable = math.MaxInt - 1
)

// Config holds the per-run translation settings shared by every chunk.
type Config struct {
	// SourceLang and TargetLang are English language names.
	SourceLang   string
	TargetLang   string
	Prompt       string
	MaxTokens    int
	Temperature  float64
	Glossary     map[string]string
	ContextWords int
}

// Status is the terminal state of one chunk.
type Status int

const (
	StatusTranslated Status = iota
	StatusUnchanged
	StatusOversize
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusTranslated:
		return "translated"
	case StatusUnchanged:
		return "unchanged"
	case StatusOversize:
		return "oversize"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the result of TranslateChunk. Text is the original chunk for
// every status other than StatusTranslated.
type Outcome struct {
	Text     string
	Status   Status
	Attempts int
	Distance int
}

// Summary counts chunk outcomes over a body.
type Summary struct {
	Total      int
	Translated int
	Unchanged  int
	Oversize   int
	Failed     int
}

func (s *Summary) add(st Status) {
	s.Total++
	switch st {
	case StatusTranslated:
		s.Translated++
	case StatusUnchanged:
		s.Unchanged++
	case StatusOversize:
		s.Oversize++
	case StatusFailed:
		s.Failed++
	}
}

// Controller translates chunks with a single oracle.
type Controller struct {
	oracle oracle.Oracle
	config Config
	log    *slog.Logger
}

// New returns a Controller. A nil log uses slog.Default.
func New(o oracle.Oracle, config Config, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{
		oracle: o,
		config: config,
		log:    log,
	}
}

// useGrammar reports whether attempt (1-based) is constrained by the grammar.
func useGrammar(attempt int, available bool) bool {
	return available && attempt <= GrammarAttempts
}

// isTrivial reports whether chunk has nothing to translate.
func isTrivial(chunk string) bool {
	s := strings.TrimSpace(chunk)
	return s == "" || s == latex.Placeholder
}

// score rates a candidate against the source tree; lower is better. A blank
// candidate is never usable, even when the source does not parse.
func score(ref latex.Node, refOK bool, cand string) int {
	if strings.TrimSpace(cand) == "" {
		return scoreMissing
	}
	if !refOK {
		return 0
	}
	n, err := latex.Parse(cand)
	if err != nil {
		return scoreUnparseable
	}
	return latex.Distance(ref, n)
}

// TranslateChunk translates one chunk. previous is the end of the preceding
// translated chunk, passed to the oracle as context; it may be empty.
//
// An oracle failure aborts the chunk: the returned outcome carries the
// original text with StatusFailed, together with the error.
func (c *Controller) TranslateChunk(ctx context.Context, chunk, previous string) (Outcome, error) {
	unchanged := Outcome{Text: chunk, Status: StatusUnchanged}

	if isTrivial(chunk) {
		return unchanged, nil
	}
	if n := utf8.RuneCountInString(chunk); n >= OversizeChars {
		c.log.Warn("chunk too long, left untranslated", "chars", n, "limit", OversizeChars)
		unchanged.Status = StatusOversize
		return unchanged, nil
	}

	ref, err := latex.Parse(chunk)
	refOK := err == nil
	var grammar string
	switch {
	case !refOK:
		c.log.Info("chunk does not parse, grammar unavailable", "err", err)
	case c.oracle.SupportsGrammar():
		grammar = latex.Grammar(ref)
	}

	prompt := oracle.BuildPrompt(c.config.Prompt, oracle.PromptData{
		SourceLang: c.config.SourceLang,
		TargetLang: c.config.TargetLang,
		Chunk:      chunk,
		Glossary:   c.config.Glossary,
		Context:    previous,
	})

	best, bestScore := "", scoreMissing
	attempt := 0
	for attempt < MaxAttempts && bestScore > AcceptDistance {
		attempt++
		req := oracle.Request{
			Prompt:      prompt,
			MaxTokens:   c.config.MaxTokens,
			Temperature: c.config.Temperature,
		}
		if useGrammar(attempt, grammar != "") {
			req.Grammar = grammar
		}

		res, err := c.oracle.Complete(ctx, req)
		if err != nil {
			return Outcome{Text: chunk, Status: StatusFailed, Attempts: attempt},
				fmt.Errorf("attempt %d: %w", attempt, err)
		}

		cand := postprocess.Candidate(res.Text)
		s := score(ref, refOK, cand)
		c.log.Debug("attempt", "attempt", attempt, "grammar", req.Grammar != "", "distance", s, "latency", res.Latency)
		if s < bestScore {
			best, bestScore = cand, s
		}
	}

	if best == "" {
		c.log.Warn("no usable candidate, chunk left untranslated", "attempts", attempt)
		unchanged.Attempts = attempt
		return unchanged, nil
	}
	if bestScore <= AcceptDistance {
		c.log.Debug("candidate accepted early", "attempts", attempt, "distance", bestScore)
	}
	return Outcome{Text: best, Status: StatusTranslated, Attempts: attempt, Distance: bestScore}, nil
}

// TranslateBody translates chunks in order and returns their concatenation.
// Unchanged chunks are copied verbatim and a chunk whose translation fails
// keeps its original text, so the result always covers every chunk.
func (c *Controller) TranslateBody(ctx context.Context, chunks []chunker.Chunk) (string, Summary) {
	var (
		out      strings.Builder
		summary  Summary
		previous string
	)

	for i, ch := range chunks {
		log := c.log.With("chunk", i)
		log.Info("processing chunk", "kind", ch.Kind, "chars", utf8.RuneCountInString(ch.Content))

		if ch.Kind == chunker.Unchanged {
			out.WriteString(ch.Content)
			summary.add(StatusUnchanged)
			continue
		}

		ctl := *c
		ctl.log = log
		outcome, err := ctl.TranslateChunk(ctx, ch.Content, previous)
		if err != nil {
			log.Warn("oracle failed, chunk kept untranslated", "err", err)
		}
		out.WriteString(outcome.Text)
		summary.add(outcome.Status)

		if outcome.Status == StatusTranslated {
			log.Info("chunk translated", "attempts", outcome.Attempts, "distance", outcome.Distance)
			if c.config.ContextWords > 0 {
				previous = chunker.ExtractContext(outcome.Text, c.config.ContextWords)
			}
		}
	}

	c.log.Info("translation finished",
		"chunks", summary.Total,
		"translated", summary.Translated,
		"unchanged", summary.Unchanged,
		"oversize", summary.Oversize,
		"failed", summary.Failed,
	)
	return out.String(), summary
}
