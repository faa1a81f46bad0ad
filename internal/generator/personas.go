package generator

import (
	"strings"

	"github.com/v0xg/layoutgen/internal/layout"
	"github.com/v0xg/layoutgen/internal/model"
	"github.com/v0xg/layoutgen/internal/scoring"
)

// overrideMargin is how far an alternate must beat the placed component
// under a persona before it is recorded as that persona's override.
const overrideMargin = 0.05

// personaOverrides rescores every section for each fetched persona and
// records alternates that fit that persona clearly better. Components
// already on the page are never proposed.
func (g *Generator) personaOverrides(sels []layout.Selection, sections []model.Section, personas []model.Persona) map[string][]model.SectionOverride {
	onPage := make(map[string]bool, len(sels))
	for _, s := range sels {
		onPage[s.Score.ComponentID] = true
	}

	out := make(map[string][]model.SectionOverride)
	for _, p := range personas {
		label := strings.TrimSpace(p.Name)
		if label == "" {
			continue
		}
		for i, sel := range sels {
			ctx := sel.Context
			ctx.TargetPersona = label

			def, ok := g.catalog.Get(sel.Score.ComponentID)
			if !ok {
				continue
			}
			best := scoring.Score(def, ctx).TotalScore + overrideMargin
			var pick *scoring.ComponentScore
			for _, alt := range sel.Alternates {
				if onPage[alt.ComponentID] {
					continue
				}
				altDef, ok := g.catalog.Get(alt.ComponentID)
				if !ok {
					continue
				}
				if s := scoring.Score(altDef, ctx); s.TotalScore > best {
					best = s.TotalScore
					pick = &s
				}
			}
			if pick != nil {
				out[label] = append(out[label], model.SectionOverride{
					SectionID:   sections[i].ID,
					ComponentID: pick.ComponentID,
					Score:       pick.TotalScore,
				})
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
