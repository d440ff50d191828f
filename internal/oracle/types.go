// Package oracle talks to the generative completion services that produce
// candidate translations.
package oracle

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrNoAPIKey = errors.New("API key required")

// Config holds the settings of one oracle client.
type Config struct {
	APIKey  string        `mapstructure:"api_key" json:"api_key"`
	Model   string        `mapstructure:"model" json:"model"`
	BaseURL string        `mapstructure:"base_url" json:"base_url"`
	Timeout time.Duration `mapstructure:"timeout" json:"timeout"`
}

// Request is one completion call. An empty Grammar means unconstrained
// generation.
type Request struct {
	Prompt      string  `json:"prompt"`
	Grammar     string  `json:"grammar,omitempty"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

type Completion struct {
	Text    string        `json:"text"`
	Model   string        `json:"model"`
	Latency time.Duration `json:"latency"`
}

// Oracle produces a completion for a prompt, optionally constrained by a
// W3C EBNF grammar when SupportsGrammar reports true.
type Oracle interface {
	Name() string
	SupportsGrammar() bool
	Complete(ctx context.Context, req Request) (*Completion, error)
}

// Error is a transport or protocol failure of an oracle call. StatusCode is
// zero when no HTTP response was received.
type Error struct {
	Service    string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Service, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns the oracle client registered under name.
func New(name string, cfg Config) (Oracle, error) {
	switch name {
	case "", "textsynth":
		return NewTextSynth(cfg)
	case "ollama":
		return NewOllama(cfg), nil
	case "openrouter":
		return NewOpenRouter(cfg)
	default:
		return nil, fmt.Errorf("unknown oracle %q", name)
	}
}
