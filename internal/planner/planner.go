// Package planner ranks catalog components for a slot and picks the best
// candidates that have not been placed yet.
package planner

import (
	"sort"

	"github.com/v0xg/layoutgen/internal/catalog"
	"github.com/v0xg/layoutgen/internal/scoring"
)

// DefaultLimit is the candidate count used by rule-based planning.
const DefaultLimit = 3

// Planner ranks components from one catalog.
type Planner struct {
	catalog *catalog.Catalog
}

// New returns a planner over c, or over the built-in catalog when c is nil.
func New(c *catalog.Catalog) *Planner {
	if c == nil {
		c = catalog.Default()
	}
	return &Planner{catalog: c}
}

// Catalog returns the catalog the planner ranks.
func (p *Planner) Catalog() *catalog.Catalog { return p.catalog }

// Rank scores every component not already placed in ctx, best first. Equal
// scores keep catalog order.
func (p *Planner) Rank(ctx scoring.SelectionContext) []scoring.ComponentScore {
	defs := p.catalog.All()
	scores := make([]scoring.ComponentScore, 0, len(defs))
	for _, def := range defs {
		if ctx.Excludes(def.ID) {
			continue
		}
		scores = append(scores, scoring.Score(def, ctx))
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].TotalScore > scores[j].TotalScore
	})
	return scores
}

// FindBestMatch returns up to limit candidates scoring above the accept
// threshold, best first. A non-positive limit returns every candidate.
func (p *Planner) FindBestMatch(ctx scoring.SelectionContext, limit int) []scoring.ComponentScore {
	ranked := p.Rank(ctx)
	out := make([]scoring.ComponentScore, 0, min(len(ranked), max(limit, 0)))
	for _, s := range ranked {
		if s.TotalScore <= scoring.AcceptThreshold {
			break
		}
		out = append(out, s)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Alternates returns the next-best limit candidates other than chosen,
// regardless of threshold.
func (p *Planner) Alternates(ctx scoring.SelectionContext, chosen string, limit int) []scoring.ComponentScore {
	var out []scoring.ComponentScore
	for _, s := range p.Rank(ctx) {
		if s.ComponentID == chosen {
			continue
		}
		out = append(out, s)
		if len(out) == limit {
			break
		}
	}
	return out
}

// FindBestMatch ranks the built-in catalog.
func FindBestMatch(ctx scoring.SelectionContext, limit int) []scoring.ComponentScore {
	return New(nil).FindBestMatch(ctx, limit)
}
