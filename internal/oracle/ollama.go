package oracle

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultOllamaURL   = "http://localhost:11434"
	DefaultOllamaModel = "llama3.2"
)

// Ollama calls a local Ollama server. It has no grammar support.
type Ollama struct {
	baseURL string
	model   string
	client  *http.Client
}

func NewOllama(cfg Config) *Ollama {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultOllamaURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultOllamaModel
	}
	return &Ollama{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

func (s *Ollama) Name() string {
	return "ollama"
}

func (s *Ollama) SupportsGrammar() bool {
	return false
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type ollamaRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options"`
}

func (s *Ollama) Complete(ctx context.Context, req Request) (*Completion, error) {
	start := time.Now()

	var resp struct {
		Response string `json:"response"`
	}
	err := postJSON(ctx, s.client, s.Name(), fmt.Sprintf("%s/api/generate", s.baseURL), nil,
		ollamaRequest{
			Model:  s.model,
			Prompt: req.Prompt,
			Options: ollamaOptions{
				Temperature: req.Temperature,
				NumPredict:  req.MaxTokens,
			},
		}, &resp)
	if err != nil {
		return nil, err
	}

	return &Completion{
		Text:    resp.Response,
		Model:   s.model,
		Latency: time.Since(start),
	}, nil
}
