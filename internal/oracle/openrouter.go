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
	DefaultOpenRouterURL   = "https://openrouter.ai/api/v1"
	DefaultOpenRouterModel = "mistralai/mistral-nemo:free"
)

// OpenRouter calls the OpenRouter chat completions API. The prompt is sent
// as a single user message; grammars are not supported.
type OpenRouter struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewOpenRouter(cfg Config) (*OpenRouter, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter: %w", ErrNoAPIKey)
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultOpenRouterURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultOpenRouterModel
	}
	return &OpenRouter{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func (s *OpenRouter) Name() string {
	return "openrouter"
}

func (s *OpenRouter) SupportsGrammar() bool {
	return false
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (s *OpenRouter) Complete(ctx context.Context, req Request) (*Completion, error) {
	start := time.Now()

	var resp chatResponse
	err := postJSON(ctx, s.client, s.Name(), fmt.Sprintf("%s/chat/completions", s.baseURL),
		map[string]string{
			"Authorization": "Bearer " + s.apiKey,
			"HTTP-Referer":  "https://github.com/valpere/trsltx",
			"X-Title":       "trsltx",
		},
		chatRequest{
			Model:       s.model,
			Messages:    []chatMessage{{Role: "user", Content: req.Prompt}},
			MaxTokens:   req.MaxTokens,
			Temperature: req.Temperature,
		}, &resp)
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, &Error{Service: s.Name(), StatusCode: http.StatusOK, Err: errors.New("empty response from API")}
	}

	return &Completion{
		Text:    resp.Choices[0].Message.Content,
		Model:   s.model,
		Latency: time.Since(start),
	}, nil
}
