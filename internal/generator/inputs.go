package generator

import (
	"context"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/v0xg/layoutgen/internal/catalog"
	"github.com/v0xg/layoutgen/internal/content"
	"github.com/v0xg/layoutgen/internal/model"
)

// ContentSource returns a workspace's knowledge-base items.
type ContentSource interface {
	FetchKnowledgeBase(ctx context.Context, workspaceID string) ([]model.KnowledgeItem, error)
}

// PersonaSource returns personas by id. No ids means every persona in the
// workspace.
type PersonaSource interface {
	FetchPersonas(ctx context.Context, workspaceID string, ids []string) ([]model.Persona, error)
}

// BrandSource returns a brand configuration, or nil when there is none.
type BrandSource interface {
	FetchBrandConfig(ctx context.Context, id string) (*model.BrandConfig, error)
}

type inputs struct {
	items    []model.KnowledgeItem
	personas []model.Persona
	brand    *model.BrandConfig
}

// fetchInputs runs the three fetches concurrently. A failing fetch degrades
// to an empty result and never cancels the others.
func (g *Generator) fetchInputs(ctx context.Context, req Request) inputs {
	var (
		in inputs
		eg errgroup.Group
	)
	if g.content != nil {
		eg.Go(func() error {
			items, err := g.content.FetchKnowledgeBase(ctx, req.WorkspaceID)
			if err != nil {
				g.degraded("knowledge_base", err)
				return nil
			}
			in.items = items
			return nil
		})
	}
	if g.personas != nil {
		eg.Go(func() error {
			personas, err := g.personas.FetchPersonas(ctx, req.WorkspaceID, req.PersonaIDs)
			if err != nil {
				g.degraded("personas", err)
				return nil
			}
			in.personas = personas
			return nil
		})
	}
	if g.brands != nil && req.BrandID != "" {
		eg.Go(func() error {
			brand, err := g.brands.FetchBrandConfig(ctx, req.BrandID)
			if err != nil {
				g.degraded("brand", err)
				return nil
			}
			in.brand = brand
			return nil
		})
	}
	_ = eg.Wait()
	return in
}

func (g *Generator) degraded(source string, err error) {
	g.log.Warn("input fetch degraded", zap.String("source", source), zap.Error(err))
}

// ExtractContent builds the content map for a page. An empty knowledge base
// falls back to the page type's defaults. Persona pain points fill the
// problems slot when nothing else does.
func ExtractContent(items []model.KnowledgeItem, personas []model.Persona, defaults content.Defaults, pageType string) content.Map {
	var m content.Map
	if len(items) == 0 {
		m = defaults.For(pageType)
	} else {
		m = content.Extract(items)
	}
	return content.EnrichFromPersonas(m, personas)
}

var defaultFlow = []catalog.NarrativeRole{catalog.RoleHook, catalog.RoleSolution, catalog.RoleAction}

// DetermineFlow returns the page type's narrative stages in canonical order.
// Unknown page types and empty configurations use hook, solution, action.
func DetermineFlow(pageType string) []catalog.NarrativeRole {
	cfg, _ := catalog.PageType(pageType)
	var flow []catalog.NarrativeRole
	for _, role := range catalog.NarrativeRoles {
		if slices.Contains(cfg.RequiredSections, role) {
			flow = append(flow, role)
		}
	}
	if len(flow) == 0 {
		return append([]catalog.NarrativeRole(nil), defaultFlow...)
	}
	return flow
}
