package oracle

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultTextSynthURL   = "https://api.textsynth.com/v1"
	DefaultTextSynthModel = "mistral_7B"
)

// TextSynth calls the TextSynth completions endpoint, which accepts a
// grammar restricting the generated text.
type TextSynth struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewTextSynth(cfg Config) (*TextSynth, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("textsynth: %w", ErrNoAPIKey)
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultTextSynthURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultTextSynthModel
	}
	return &TextSynth{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func (s *TextSynth) Name() string {
	return "textsynth"
}

func (s *TextSynth) SupportsGrammar() bool {
	return true
}

type textSynthRequest struct {
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens,omitempty"`
	Temperature float64 `json:"temperature"`
	Grammar     string  `json:"grammar,omitempty"`
}

type textSynthResponse struct {
	Text         string `json:"text"`
	FinishReason string `json:"finish_reason"`
}

func (s *TextSynth) Complete(ctx context.Context, req Request) (*Completion, error) {
	start := time.Now()

	var resp textSynthResponse
	err := postJSON(ctx, s.client, s.Name(),
		fmt.Sprintf("%s/engines/%s/completions", s.baseURL, s.model),
		map[string]string{"Authorization": "Bearer " + s.apiKey},
		textSynthRequest{
			Prompt:      req.Prompt,
			MaxTokens:   req.MaxTokens,
			Temperature: req.Temperature,
			Grammar:     req.Grammar,
		}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Text == "" && resp.FinishReason == "" {
		return nil, &Error{Service: s.Name(), StatusCode: http.StatusOK, Err: errors.New("empty response")}
	}

	return &Completion{
		Text:    resp.Text,
		Model:   s.model,
		Latency: time.Since(start),
	}, nil
}
