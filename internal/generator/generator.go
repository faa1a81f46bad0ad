// Package generator drives single-page layout generation: it gathers the
// workspace inputs, asks the LLM for a plan, falls back to rule-based
// planning when that fails, and assembles the validated result.
package generator

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/v0xg/layoutgen/internal/ai"
	"github.com/v0xg/layoutgen/internal/catalog"
	"github.com/v0xg/layoutgen/internal/content"
	"github.com/v0xg/layoutgen/internal/layout"
	"github.com/v0xg/layoutgen/internal/model"
	"github.com/v0xg/layoutgen/internal/planner"
)

const (
	defaultTemperature = 0.4
	defaultMaxTokens   = 4096
)

// Options configures a Generator. Every collaborator is optional.
type Options struct {
	Catalog  *catalog.Catalog
	Provider ai.Provider
	Content  ContentSource
	Personas PersonaSource
	Brands   BrandSource
	// Defaults is the placeholder content used when the knowledge base is
	// empty. Nil means content.DefaultContent().
	Defaults    content.Defaults
	Temperature float64
	MaxTokens   int
	Logger      *zap.Logger
	Now         func() time.Time
}

// Generator produces page layouts. It holds no per-request state and is safe
// for concurrent use.
type Generator struct {
	catalog     *catalog.Catalog
	planner     *planner.Planner
	provider    ai.Provider
	content     ContentSource
	personas    PersonaSource
	brands      BrandSource
	defaults    content.Defaults
	temperature float64
	maxTokens   int
	log         *zap.Logger
	now         func() time.Time
}

// New builds a Generator from opts.
func New(opts Options) *Generator {
	g := &Generator{
		catalog:     opts.Catalog,
		provider:    opts.Provider,
		content:     opts.Content,
		personas:    opts.Personas,
		brands:      opts.Brands,
		defaults:    opts.Defaults,
		temperature: opts.Temperature,
		maxTokens:   opts.MaxTokens,
		log:         opts.Logger,
		now:         opts.Now,
	}
	if g.catalog == nil {
		g.catalog = catalog.Default()
	}
	g.planner = planner.New(g.catalog)
	if g.defaults == nil {
		g.defaults = content.DefaultContent()
	}
	if g.temperature <= 0 {
		g.temperature = defaultTemperature
	}
	if g.maxTokens <= 0 {
		g.maxTokens = defaultMaxTokens
	}
	if g.log == nil {
		g.log = zap.NewNop()
	}
	if g.now == nil {
		g.now = func() time.Time { return time.Now().UTC() }
	}
	return g
}

// Request describes one page to generate.
type Request struct {
	WebsiteID     string
	WorkspaceID   string
	PageType      string
	TargetPersona string
	PersonaIDs    []string
	BrandID       string
}

// Result is a generated layout plus how it was produced.
type Result struct {
	Layout     *model.PageLayout
	Selections []layout.Selection
	Source     Source
	// Failure is set when the LLM plan was not used.
	Failure      *GenerationFailure
	StoryFlow    []catalog.NarrativeRole
	BelowMinimum bool
	TokensUsed   int
	Content      content.Map
}

// Generate runs the full pipeline for one page. It returns an error only
// when ctx is already done; every other condition still yields a layout.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	pageType := strings.ToLower(strings.TrimSpace(req.PageType))

	in := g.fetchInputs(ctx, req)
	pc := PlanContext{
		PageType:      pageType,
		Content:       ExtractContent(in.items, in.personas, g.defaults, pageType),
		Flow:          DetermineFlow(pageType),
		TargetPersona: req.TargetPersona,
		Personas:      in.personas,
		Brand:         in.brand,
	}

	attempt := g.AttemptLLM(ctx, pc)
	g.logFailure(attempt.Failure)
	plan := attempt.OrElse(func() *Plan { return g.RuleBasedFallback(pc) })
	sels := g.ValidateAndScore(plan, pc)

	if plan.Source == SourceLLM && len(sels) == 0 {
		attempt.Failure = &GenerationFailure{Reason: ReasonEmptyPlan, Err: errEmptyPlan}
		g.logFailure(attempt.Failure)
		plan = g.RuleBasedFallback(pc)
		sels = g.ValidateAndScore(plan, pc)
	}

	md := layout.DefaultMetadata(pageType, pc.Content, in.brand)
	if plan.Metadata != nil {
		md = *plan.Metadata
	}

	l := layout.Assemble(layout.Input{
		WebsiteID:   req.WebsiteID,
		PageType:    pageType,
		Selections:  sels,
		Metadata:    md,
		Brand:       in.brand,
		GeneratedBy: plan.generatedBy(),
		Catalog:     g.catalog,
		Now:         g.now(),
	})
	l.PersonaOverrides = g.personaOverrides(sels, l.Sections, in.personas)

	res := &Result{
		Layout:     l,
		Selections: sels,
		Source:     plan.Source,
		Failure:    attempt.Failure,
		StoryFlow:  pc.Flow,
		TokensUsed: plan.TokensUsed,
		Content:    pc.Content,
	}
	if cfg, ok := catalog.PageType(pageType); ok && len(l.Sections) < cfg.MinSections {
		res.BelowMinimum = true
		g.log.Warn("layout below minimum section count",
			zap.String("page_type", pageType),
			zap.Int("sections", len(l.Sections)),
			zap.Int("min", cfg.MinSections))
	}

	g.log.Info("layout generated",
		zap.String("page_type", pageType),
		zap.String("source", string(plan.Source)),
		zap.Int("sections", len(l.Sections)),
		zap.Float64("confidence", l.ConfidenceScore))
	return res, nil
}

func (g *Generator) logFailure(f *GenerationFailure) {
	if f == nil {
		return
	}
	// Running without a provider is a configuration choice, not a fault.
	if f.Reason == ReasonDisabled {
		g.log.Debug("llm disabled, using rule-based planning")
		return
	}
	g.log.Warn("llm plan unavailable, using rule-based fallback",
		zap.String("reason", string(f.Reason)),
		zap.Error(f.Err))
}
