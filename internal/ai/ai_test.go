package ai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/v0xg/layoutgen/internal/catalog"
	"github.com/v0xg/layoutgen/internal/content"
	"github.com/v0xg/layoutgen/internal/model"
)

const planJSON = `{"sections":[{"componentId":"hero-centered","narrativeRole":"hook","contentMapping":{"headline":"headline"},"reasoning":"opens with the {value} prop"}],"metadata":{"title":"Acme","description":"d","keywords":["a"]}}`

func TestParsePlanJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"bare object", planJSON, false},
		{"surrounded by prose", "Sure! Here is the plan:\n" + planJSON + "\nLet me know.", false},
		{"markdown fence", "```json\n" + planJSON + "\n```", false},
		{"no object", "I cannot help with that", true},
		{"unterminated", `{"sections": [`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := parsePlanJSON(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, plan.Sections, 1)
			assert.Equal(t, "hero-centered", plan.Sections[0].ComponentID)
			assert.Equal(t, "opens with the {value} prop", plan.Sections[0].Reasoning)
			assert.Equal(t, "Acme", plan.Metadata.Title)
		})
	}
}

func TestDecode(t *testing.T) {
	c, err := decode("test", planJSON, 42)
	require.NoError(t, err)
	assert.Equal(t, 42, c.TokensUsed)
	assert.Len(t, c.Plan.Sections, 1)

	_, err = decode("test", "  ", 0)
	assert.Equal(t, KindEmptyResponse, KindOf(err))

	_, err = decode("test", "not json", 0)
	assert.Equal(t, KindMalformedJSON, KindOf(err))

	_, err = decode("test", `{"metadata":{"title":"x"}}`, 0)
	assert.Equal(t, KindMalformedJSON, KindOf(err))
}

func TestErrorFormatting(t *testing.T) {
	err := &Error{Provider: "openai", Kind: KindStatus, StatusCode: 401, Err: errors.New("bad key")}
	assert.Equal(t, "openai: status (401): bad key", err.Error())
	assert.ErrorIs(t, err, err.Err)
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
}

func TestNewProvider(t *testing.T) {
	t.Setenv("LAYOUTGEN_ANTHROPIC_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("LAYOUTGEN_OPENAI_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	_, err := NewProvider("claude", Options{})
	assert.Equal(t, KindMissingCredentials, KindOf(err))

	_, err = NewProvider("openai", Options{})
	assert.Equal(t, KindMissingCredentials, KindOf(err))

	_, err = NewProvider("bard", Options{APIKey: "k"})
	assert.Error(t, err)

	p, err := NewProvider("Anthropic", Options{APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, "claude", p.Name())

	p, err = NewProvider("gpt", Options{APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, "openai", p.Name())
}

func TestUnavailable(t *testing.T) {
	t.Setenv("LAYOUTGEN_ANTHROPIC_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	_, buildErr := NewProvider("claude", Options{})
	require.Error(t, buildErr)

	p := Unavailable("claude", buildErr)
	assert.Equal(t, "claude", p.Name())
	_, err := p.Complete(context.Background(), Request{})
	assert.Equal(t, KindMissingCredentials, KindOf(err))

	_, buildErr = NewProvider("bard", Options{APIKey: "k"})
	_, err = Unavailable("bard", buildErr).Complete(context.Background(), Request{})
	var aerr *Error
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, KindUnknown, aerr.Kind)
	assert.Equal(t, "bard", aerr.Provider)
	assert.ErrorIs(t, err, buildErr)
}

func TestOpenAIProvider_Success(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1,
			"model":   "gpt-4o",
			"choices": []any{map[string]any{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": planJSON},
				"finish_reason": "stop",
			}},
			"usage": map[string]any{"prompt_tokens": 100, "completion_tokens": 20, "total_tokens": 120},
		})
	}))
	defer srv.Close()

	p, err := NewOpenAIProvider(Options{APIKey: "test-key", BaseURL: srv.URL + "/v1"})
	require.NoError(t, err)

	c, err := p.Complete(context.Background(), Request{
		SystemPrompt: "sys",
		UserPrompt:   "user",
		Temperature:  0.4,
		MaxTokens:    512,
		JSONMode:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, 120, c.TokensUsed)
	assert.Equal(t, "hero-centered", c.Plan.Sections[0].ComponentID)

	require.NotNil(t, got)
	assert.Equal(t, "gpt-4o", got["model"])
	format, _ := got["response_format"].(map[string]any)
	assert.Equal(t, "json_object", format["type"])
}

func TestOpenAIProvider_InvalidKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`)
	}))
	defer srv.Close()

	p, err := NewOpenAIProvider(Options{APIKey: "bad", BaseURL: srv.URL + "/v1"})
	require.NoError(t, err)

	_, err = p.Complete(context.Background(), Request{SystemPrompt: "s", UserPrompt: "u", MaxTokens: 10})
	require.Error(t, err)

	var aerr *Error
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, KindStatus, aerr.Kind)
	assert.Equal(t, http.StatusUnauthorized, aerr.StatusCode)
}

func TestClaudeProvider_InvalidKey(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`)
	}))
	defer srv.Close()

	p, err := NewClaudeProvider(Options{APIKey: "bad", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = p.Complete(context.Background(), Request{SystemPrompt: "s", UserPrompt: "u", MaxTokens: 10})
	require.Error(t, err)

	var aerr *Error
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, KindStatus, aerr.Kind)
	assert.Equal(t, http.StatusUnauthorized, aerr.StatusCode)
	assert.Equal(t, 1, calls, "no retries")
}

func TestClaudeProvider_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":    "msg_1",
			"type":  "message",
			"role":  "assistant",
			"model": "claude-sonnet-4-20250514",
			"content": []any{map[string]any{
				"type": "text",
				"text": "Here you go:\n" + planJSON,
			}},
			"stop_reason": "end_turn",
			"usage":       map[string]any{"input_tokens": 80, "output_tokens": 40},
		})
	}))
	defer srv.Close()

	p, err := NewClaudeProvider(Options{APIKey: "k", BaseURL: srv.URL})
	require.NoError(t, err)

	c, err := p.Complete(context.Background(), Request{SystemPrompt: "s", UserPrompt: "u", JSONMode: true})
	require.NoError(t, err)
	assert.Equal(t, 120, c.TokensUsed)
	assert.Equal(t, "hero-centered", c.Plan.Sections[0].ComponentID)
}

func TestBuildUserPrompt(t *testing.T) {
	def, _ := catalog.Get("pricing-table")
	prompt, err := BuildUserPrompt(PromptInput{
		PageType:      "pricing",
		StoryFlow:     []catalog.NarrativeRole{catalog.RoleSolution, catalog.RoleAction},
		Content:       content.Map{"headline": "Simple Pricing"},
		TargetPersona: "business",
		Personas:      []model.Persona{{Name: "Ops lead", CommunicationStyle: "direct", PainPoints: []string{"tool sprawl"}}},
		Brand:         &model.BrandConfig{Name: "Acme", Voice: model.BrandVoice{Tone: "bold", Personality: []string{"witty"}}},
		Components:    []catalog.ComponentDefinition{def},
		MinSections:   2,
		MaxSections:   5,
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "Page type: pricing")
	assert.Contains(t, prompt, "Story flow: solution -> action")
	assert.Contains(t, prompt, `"headline": "Simple Pricing"`)
	assert.Contains(t, prompt, "Primary persona: business")
	assert.Contains(t, prompt, "- Ops lead (prefers direct); pain points: tool sprawl")
	assert.Contains(t, prompt, "Brand: Acme; tone: bold; personality: witty")
	assert.Contains(t, prompt, "- pricing-table [pricing, action, middle]")
	assert.Contains(t, prompt, "requires: plans; optional: headline, subheadline, ctaText")
	assert.Contains(t, prompt, "between 2 and 5")
}

func TestBuildUserPrompt_NoBrandNoPersona(t *testing.T) {
	prompt, err := BuildUserPrompt(PromptInput{PageType: "home", Content: content.Map{}})
	require.NoError(t, err)
	assert.Contains(t, prompt, "No brand configured")
	assert.Contains(t, prompt, "general business audience")
}
