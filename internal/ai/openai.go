package ai

import (
	"context"
	"errors"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

const openAIName = "openai"

// OpenAIProvider implements the Provider interface using OpenAI
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider creates a new OpenAI provider
func NewOpenAIProvider(opts Options) (*OpenAIProvider, error) {
	apiKey := opts.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("LAYOUTGEN_OPENAI_KEY")
	}
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, &Error{
			Provider: openAIName,
			Kind:     KindMissingCredentials,
			Err:      fmt.Errorf("LAYOUTGEN_OPENAI_KEY or OPENAI_API_KEY environment variable required"),
		}
	}

	cfg := openai.DefaultConfig(apiKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	client := openai.NewClientWithConfig(cfg)

	model := opts.Model
	if model == "" {
		model = "gpt-4o"
	}

	return &OpenAIProvider{
		client: client,
		model:  model,
	}, nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string { return openAIName }

// Complete sends one chat completion and parses the JSON plan from the reply
func (p *OpenAIProvider) Complete(ctx context.Context, req Request) (*Completion, error) {
	chatReq := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: req.SystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.UserPrompt,
			},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: float32(req.Temperature),
	}
	if req.JSONMode {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return nil, requestError(openAIName, apiErr.HTTPStatusCode, err)
		}
		var reqErr *openai.RequestError
		if errors.As(err, &reqErr) {
			return nil, requestError(openAIName, reqErr.HTTPStatusCode, err)
		}
		return nil, requestError(openAIName, 0, err)
	}

	if len(resp.Choices) == 0 {
		return nil, &Error{Provider: openAIName, Kind: KindEmptyResponse, Err: fmt.Errorf("empty response from OpenAI")}
	}

	return decode(openAIName, resp.Choices[0].Message.Content, resp.Usage.TotalTokens)
}
