package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/v0xg/layoutgen/internal/catalog"
	"github.com/v0xg/layoutgen/internal/content"
	"github.com/v0xg/layoutgen/internal/model"
)

// SystemPrompt instructs the model to return a layout plan as JSON
const SystemPrompt = `You are a conversion-focused web page architect. Your task is to assemble a marketing page from a fixed library of visual components so the page tells a story: hook, problem, solution, proof, action.

You will receive:
1. The page type and the narrative stages the page must cover, in order
2. The available content, as a JSON object keyed by content slot name
3. The target audience personas and the brand voice
4. The component library: id, category, narrative role, preferred position, required and optional content slots

Output a JSON object with this shape:
{
  "sections": [
    {
      "componentId": "id from the component library",
      "narrativeRole": "hook | problem | solution | proof | action",
      "contentMapping": {"componentSlot": "contentSlot"},
      "reasoning": "one sentence on why this component fits here"
    }
  ],
  "metadata": {
    "title": "SEO title, under 60 characters",
    "description": "SEO description, under 160 characters",
    "keywords": ["keyword", "keyword"]
  }
}

Guidelines:
- Use only component ids from the library
- Never use the same component twice
- Cover the narrative stages in the given order, one section per stage unless the content clearly supports more
- Only choose components whose required slots exist in the available content
- Map slots by name; only reference content slots that exist
- Match the brand voice in the metadata copy

Respond ONLY with the JSON object, no explanation or markdown.`

// PromptInput is everything the user prompt embeds
type PromptInput struct {
	PageType      string
	StoryFlow     []catalog.NarrativeRole
	Content       content.Map
	TargetPersona string
	Personas      []model.Persona
	Brand         *model.BrandConfig
	Components    []catalog.ComponentDefinition
	MinSections   int
	MaxSections   int
}

// BuildUserPrompt renders the planning request for one page
func BuildUserPrompt(in PromptInput) (string, error) {
	contentJSON, err := json.MarshalIndent(in.Content, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal content: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Page type: %s\n", in.PageType)

	stages := make([]string, len(in.StoryFlow))
	for i, r := range in.StoryFlow {
		stages[i] = string(r)
	}
	fmt.Fprintf(&b, "Story flow: %s\n", strings.Join(stages, " -> "))
	if in.MaxSections > 0 {
		fmt.Fprintf(&b, "Section count: between %d and %d\n", in.MinSections, in.MaxSections)
	}

	b.WriteString("\nAvailable content:\n")
	b.Write(contentJSON)
	b.WriteString("\n")

	b.WriteString("\nAudience:\n")
	if in.TargetPersona != "" {
		fmt.Fprintf(&b, "Primary persona: %s\n", in.TargetPersona)
	}
	if len(in.Personas) == 0 && in.TargetPersona == "" {
		b.WriteString("No persona information; write for a general business audience.\n")
	}
	for _, p := range in.Personas {
		b.WriteString(summarizePersona(p))
	}

	b.WriteString("\nBrand voice:\n")
	b.WriteString(summarizeBrand(in.Brand))

	b.WriteString("\nComponent library:\n")
	for _, d := range in.Components {
		b.WriteString(summarizeComponent(d))
	}

	return b.String(), nil
}

func summarizePersona(p model.Persona) string {
	line := "- " + p.Name
	if p.CommunicationStyle != "" {
		line += " (prefers " + p.CommunicationStyle + ")"
	}
	if len(p.Goals) > 0 {
		line += "; goals: " + strings.Join(p.Goals, ", ")
	}
	if len(p.PainPoints) > 0 {
		line += "; pain points: " + strings.Join(p.PainPoints, ", ")
	}
	return line + "\n"
}

func summarizeBrand(brand *model.BrandConfig) string {
	if brand == nil {
		return "No brand configured; use a clear, confident, friendly tone.\n"
	}
	line := "Brand: " + brand.Name
	if brand.Voice.Tone != "" {
		line += "; tone: " + brand.Voice.Tone
	}
	if brand.Voice.Formality != "" {
		line += "; formality: " + brand.Voice.Formality
	}
	if len(brand.Voice.Personality) > 0 {
		line += "; personality: " + strings.Join(brand.Voice.Personality, ", ")
	}
	return line + "\n"
}

func summarizeComponent(d catalog.ComponentDefinition) string {
	req := d.AI.ContentRequirements
	line := fmt.Sprintf("- %s [%s, %s, %s]: %s. requires: %s",
		d.ID, d.Category, d.AI.NarrativeRole, d.AI.PositionHints.Preferred, d.Description,
		orNone(req.Required))
	if len(req.Optional) > 0 {
		line += "; optional: " + strings.Join(req.Optional, ", ")
	}
	return line + "\n"
}

func orNone(list []string) string {
	if len(list) == 0 {
		return "nothing"
	}
	return strings.Join(list, ", ")
}
