package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Provider defines the interface for LLM layout planning
type Provider interface {
	Name() string
	Complete(ctx context.Context, req Request) (*Completion, error)
}

// Request is one JSON-mode completion request
type Request struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float64
	MaxTokens    int
	JSONMode     bool
}

// Completion is a parsed plan plus token usage
type Completion struct {
	Plan       *Plan
	TokensUsed int
	Raw        string
}

// Plan is the JSON document the model is asked to produce
type Plan struct {
	Sections []PlannedSection `json:"sections"`
	Metadata PlanMetadata     `json:"metadata"`
}

// PlannedSection is one component choice proposed by the model
type PlannedSection struct {
	ComponentID    string            `json:"componentId"`
	NarrativeRole  string            `json:"narrativeRole"`
	ContentMapping map[string]string `json:"contentMapping"`
	Reasoning      string            `json:"reasoning"`
}

// PlanMetadata is the SEO block proposed by the model
type PlanMetadata struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// Options configures a provider. Empty fields fall back to environment
// variables and provider defaults.
type Options struct {
	Model   string
	APIKey  string
	BaseURL string
}

// NewProvider creates a new AI provider based on the provider name
func NewProvider(name string, opts Options) (Provider, error) {
	switch strings.ToLower(name) {
	case "claude", "anthropic":
		return NewClaudeProvider(opts)
	case "openai", "gpt":
		return NewOpenAIProvider(opts)
	default:
		return nil, fmt.Errorf("unknown provider: %s (supported: claude, openai)", name)
	}
}

// Unavailable returns a provider that fails every completion with err. It
// stands in for a configured provider that could not be built, so callers
// see why instead of a silently disabled LLM.
func Unavailable(name string, err error) Provider {
	var aerr *Error
	if !errors.As(err, &aerr) {
		aerr = &Error{Provider: name, Kind: KindUnknown, Err: err}
	}
	return &unavailable{name: name, err: aerr}
}

type unavailable struct {
	name string
	err  *Error
}

func (u *unavailable) Name() string { return u.name }

func (u *unavailable) Complete(context.Context, Request) (*Completion, error) {
	return nil, u.err
}
