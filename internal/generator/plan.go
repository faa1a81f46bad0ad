package generator

import (
	"context"
	"errors"
	"fmt"
	"html"
	"slices"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/v0xg/layoutgen/internal/ai"
	"github.com/v0xg/layoutgen/internal/catalog"
	"github.com/v0xg/layoutgen/internal/content"
	"github.com/v0xg/layoutgen/internal/model"
	"github.com/v0xg/layoutgen/internal/planner"
	"github.com/v0xg/layoutgen/internal/scoring"
)

// Source records which planner produced a layout.
type Source string

const (
	SourceLLM   Source = "llm"
	SourceRules Source = "rules"
)

// Failure reasons that do not come from the ai package.
const (
	ReasonDisabled  ai.Kind = "disabled"
	ReasonEmptyPlan ai.Kind = "empty_plan"
)

var (
	errNoProvider = errors.New("no llm provider configured")
	errEmptyPlan  = errors.New("llm plan has no usable sections")
)

// GenerationFailure explains why the LLM plan was not used.
type GenerationFailure struct {
	Reason ai.Kind
	Err    error
}

func (f *GenerationFailure) Error() string {
	return fmt.Sprintf("llm plan failed (%s): %v", f.Reason, f.Err)
}

func (f *GenerationFailure) Unwrap() error { return f.Err }

// PlanContext is the per-page input shared by both planners.
type PlanContext struct {
	PageType      string
	Content       content.Map
	Flow          []catalog.NarrativeRole
	TargetPersona string
	Personas      []model.Persona
	Brand         *model.BrandConfig
}

// ProposedSection is one unvalidated entry of a plan. Position is the slot
// index the section was planned for.
type ProposedSection struct {
	ComponentID    string
	NarrativeRole  catalog.NarrativeRole
	ContentMapping map[string]string
	Reasoning      string
	Position       int
}

// Plan is an ordered component proposal from either planner.
type Plan struct {
	Source   Source
	Provider string
	Sections []ProposedSection
	// TotalSlots is the slot count positions are relative to.
	TotalSlots int
	Metadata   *model.PageMetadata
	TokensUsed int
}

func (p *Plan) generatedBy() string {
	if p.Source == SourceLLM {
		return "llm:" + p.Provider
	}
	return string(SourceRules)
}

// Attempt is the outcome of AttemptLLM: exactly one of Plan and Failure is
// set.
type Attempt struct {
	Plan    *Plan
	Failure *GenerationFailure
}

// OrElse returns the LLM plan, or the fallback's plan when the attempt failed.
func (a Attempt) OrElse(fallback func() *Plan) *Plan {
	if a.Failure == nil && a.Plan != nil {
		return a.Plan
	}
	return fallback()
}

func failed(reason ai.Kind, err error) Attempt {
	return Attempt{Failure: &GenerationFailure{Reason: reason, Err: err}}
}

// AttemptLLM asks the provider for a plan. Errors are returned inside the
// Attempt, never as a panic or a Go error.
func (g *Generator) AttemptLLM(ctx context.Context, pc PlanContext) Attempt {
	if g.provider == nil {
		return failed(ReasonDisabled, errNoProvider)
	}

	cfg, _ := catalog.PageType(pc.PageType)
	prompt, err := ai.BuildUserPrompt(ai.PromptInput{
		PageType:      pc.PageType,
		StoryFlow:     pc.Flow,
		Content:       pc.Content,
		TargetPersona: pc.TargetPersona,
		Personas:      pc.Personas,
		Brand:         pc.Brand,
		Components:    g.catalog.All(),
		MinSections:   cfg.MinSections,
		MaxSections:   cfg.MaxSections,
	})
	if err != nil {
		return failed(ai.KindUnknown, err)
	}

	c, err := g.provider.Complete(ctx, ai.Request{
		SystemPrompt: ai.SystemPrompt,
		UserPrompt:   prompt,
		Temperature:  g.temperature,
		MaxTokens:    g.maxTokens,
		JSONMode:     true,
	})
	if err != nil {
		return failed(ai.KindOf(err), err)
	}
	if c == nil || c.Plan == nil {
		return failed(ai.KindEmptyResponse, errors.New("provider returned no plan"))
	}

	plan := &Plan{
		Source:     SourceLLM,
		Provider:   g.provider.Name(),
		Sections:   make([]ProposedSection, len(c.Plan.Sections)),
		TotalSlots: len(c.Plan.Sections),
		TokensUsed: c.TokensUsed,
	}
	for i, s := range c.Plan.Sections {
		plan.Sections[i] = ProposedSection{
			ComponentID:    strings.TrimSpace(s.ComponentID),
			NarrativeRole:  catalog.NarrativeRole(strings.ToLower(strings.TrimSpace(s.NarrativeRole))),
			ContentMapping: s.ContentMapping,
			Reasoning:      s.Reasoning,
			Position:       i,
		}
	}
	if md := c.Plan.Metadata; plainText(md.Title) != "" {
		plan.Metadata = &model.PageMetadata{
			Title:       plainText(md.Title),
			Description: plainText(md.Description),
			Keywords:    md.Keywords,
		}
	}
	return Attempt{Plan: plan}
}

// RuleBasedFallback fills each stage of the flow with the best-scoring
// component not already placed. Stages with no candidate above the accept
// threshold contribute no section.
func (g *Generator) RuleBasedFallback(pc PlanContext) *Plan {
	plan := &Plan{Source: SourceRules, TotalSlots: len(pc.Flow)}
	var chosen []string
	for i, role := range pc.Flow {
		ctx := scoring.SelectionContext{
			PageType:           pc.PageType,
			Content:            pc.Content,
			TargetPersona:      pc.TargetPersona,
			CurrentPosition:    i,
			TotalSections:      len(pc.Flow),
			PreviousComponents: slices.Clone(chosen),
			NarrativeStage:     role,
		}
		candidates := g.planner.FindBestMatch(ctx, planner.DefaultLimit)
		if len(candidates) == 0 {
			continue
		}
		def, _ := g.catalog.Get(candidates[0].ComponentID)
		plan.Sections = append(plan.Sections, ProposedSection{
			ComponentID:    def.ID,
			NarrativeRole:  role,
			ContentMapping: identityMapping(def, pc.Content),
			Position:       i,
		})
		chosen = append(chosen, def.ID)
	}
	return plan
}

// identityMapping maps every slot the component accepts that the content
// provides to itself.
func identityMapping(def catalog.ComponentDefinition, m content.Map) map[string]string {
	out := make(map[string]string)
	for _, slot := range def.AI.ContentRequirements.Slots() {
		if m.Has(slot) {
			out[slot] = slot
		}
	}
	return out
}

var stripMarkup = bluemonday.StrictPolicy()

// plainText strips any markup the model put into metadata copy.
func plainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(stripMarkup.Sanitize(s)))
}
