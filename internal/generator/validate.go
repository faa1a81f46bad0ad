package generator

import (
	"slices"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/v0xg/layoutgen/internal/catalog"
	"github.com/v0xg/layoutgen/internal/content"
	"github.com/v0xg/layoutgen/internal/layout"
	"github.com/v0xg/layoutgen/internal/scoring"
)

const alternateCount = 5

// ValidateAndScore checks a plan against the catalog and rescores every
// section in the slot it will actually occupy. Unknown and repeated
// components are dropped.
func (g *Generator) ValidateAndScore(plan *Plan, pc PlanContext) []layout.Selection {
	total := plan.TotalSlots
	if total <= 0 {
		total = len(plan.Sections)
	}

	var (
		sels   []layout.Selection
		placed []string
	)
	for _, ps := range plan.Sections {
		def, ok := g.catalog.Get(ps.ComponentID)
		if !ok {
			g.log.Warn("dropping unknown component", zap.String("component", ps.ComponentID))
			continue
		}
		if slices.Contains(placed, def.ID) {
			g.log.Warn("dropping duplicate component", zap.String("component", def.ID))
			continue
		}

		stage := ps.NarrativeRole
		if !stage.Valid() {
			stage = def.AI.NarrativeRole
		}
		ctx := scoring.SelectionContext{
			PageType:           pc.PageType,
			Content:            pc.Content,
			TargetPersona:      pc.TargetPersona,
			CurrentPosition:    ps.Position,
			TotalSections:      total,
			PreviousComponents: slices.Clone(placed),
			NarrativeStage:     stage,
		}
		score := scoring.Score(def, ctx)
		if plan.Source == SourceLLM && score.TotalScore <= scoring.AcceptThreshold {
			g.log.Warn("low confidence llm section",
				zap.String("component", def.ID),
				zap.Float64("score", score.TotalScore))
		}
		g.checkConstraints(def, pc.Content)

		sels = append(sels, layout.Selection{
			Score:          score,
			NarrativeRole:  def.AI.NarrativeRole,
			ContentMapping: contentMapping(def, ps.ContentMapping, pc.Content),
			Reasoning:      ps.Reasoning,
			Alternates:     g.planner.Alternates(ctx, def.ID, alternateCount),
			Context:        ctx,
		})
		placed = append(placed, def.ID)
	}
	return sels
}

// contentMapping keeps the proposed pairs whose component slot exists and
// whose content slot has a value. With nothing left it falls back to the
// identity mapping.
func contentMapping(def catalog.ComponentDefinition, proposed map[string]string, m content.Map) map[string]string {
	slots := def.AI.ContentRequirements.Slots()
	out := make(map[string]string)
	for slot, key := range proposed {
		if slices.Contains(slots, slot) && m.Has(key) {
			out[slot] = key
		}
	}
	if len(out) == 0 {
		return identityMapping(def, m)
	}
	return out
}

// checkConstraints reports slot values outside the component's bounds. It
// never rejects the component.
func (g *Generator) checkConstraints(def catalog.ComponentDefinition, m content.Map) {
	for slot, c := range def.AI.ContentRequirements.Constraints {
		if !m.Has(slot) {
			continue
		}
		if s := m.String(slot); s != "" {
			n := utf8.RuneCountInString(s)
			if c.MinLength > 0 && n < c.MinLength {
				g.unmet(def.ID, slot, "minLength")
			}
			if c.MaxLength > 0 && n > c.MaxLength {
				g.unmet(def.ID, slot, "maxLength")
			}
			continue
		}
		n := m.Count(slot)
		if c.MinCount > 0 && n < c.MinCount {
			g.unmet(def.ID, slot, "minCount")
		}
		if c.MaxCount > 0 && n > c.MaxCount {
			g.unmet(def.ID, slot, "maxCount")
		}
	}
}

func (g *Generator) unmet(component, slot, constraint string) {
	g.log.Debug("content constraint unmet",
		zap.String("component", component),
		zap.String("slot", slot),
		zap.String("constraint", constraint))
}
