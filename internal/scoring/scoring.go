// Package scoring ranks a component for one slot of a page with a fixed
// five-factor weighted score.
package scoring

import (
	"slices"
	"strings"

	"github.com/v0xg/layoutgen/internal/catalog"
	"github.com/v0xg/layoutgen/internal/content"
)

// Weights of the five sub-scores. They sum to 1.
const (
	WeightContentMatch  = 0.30
	WeightUseCaseMatch  = 0.25
	WeightPersonaFit    = 0.20
	WeightPositionMatch = 0.15
	WeightNarrativeFit  = 0.10
)

// AcceptThreshold is the score a candidate must exceed to be placed.
const AcceptThreshold = 0.5

const (
	neutralScore      = 0.5
	narrativeMismatch = 0.3
	avoidPenalty      = 0.3
	preferBonus       = 1.3
)

// SelectionContext describes the slot being filled.
type SelectionContext struct {
	PageType           string
	Content            content.Map
	TargetPersona      string
	CurrentPosition    int
	TotalSections      int
	PreviousComponents []string
	NarrativeStage     catalog.NarrativeRole
}

// Previous returns the component placed immediately before this slot.
func (c SelectionContext) Previous() (string, bool) {
	if len(c.PreviousComponents) == 0 {
		return "", false
	}
	return c.PreviousComponents[len(c.PreviousComponents)-1], true
}

// Excludes reports whether id was already placed.
func (c SelectionContext) Excludes(id string) bool {
	return slices.Contains(c.PreviousComponents, id)
}

// Breakdown holds the unweighted sub-scores.
type Breakdown struct {
	ContentMatch  float64 `json:"contentMatch"`
	UseCaseMatch  float64 `json:"useCaseMatch"`
	PersonaFit    float64 `json:"personaFit"`
	PositionMatch float64 `json:"positionMatch"`
	NarrativeFit  float64 `json:"narrativeFit"`
}

// ComponentScore is a component's total score for one context.
type ComponentScore struct {
	ComponentID string    `json:"componentId"`
	TotalScore  float64   `json:"totalScore"`
	Breakdown   Breakdown `json:"breakdown"`
}

// Score computes the weighted score of def in ctx. It is pure.
func Score(def catalog.ComponentDefinition, ctx SelectionContext) ComponentScore {
	b := Breakdown{
		ContentMatch:  ContentMatch(def.AI.ContentRequirements, ctx.Content),
		UseCaseMatch:  UseCaseMatch(def.AI.UseCases, ctx.PageType),
		PersonaFit:    PersonaFit(def.AI.PersonaFit, ctx.TargetPersona),
		PositionMatch: PositionMatch(def.AI.PositionHints, ctx),
		NarrativeFit:  NarrativeFit(def.AI.NarrativeRole, ctx.NarrativeStage),
	}
	total := WeightContentMatch*b.ContentMatch +
		WeightUseCaseMatch*b.UseCaseMatch +
		WeightPersonaFit*b.PersonaFit +
		WeightPositionMatch*b.PositionMatch +
		WeightNarrativeFit*b.NarrativeFit

	return ComponentScore{
		ComponentID: def.ID,
		TotalScore:  clamp01(total),
		Breakdown:   b,
	}
}

// ContentMatch weighs required slot coverage at 0.8 and optional at 0.2.
func ContentMatch(req catalog.ContentRequirements, m content.Map) float64 {
	required := 1.0
	if len(req.Required) > 0 {
		required = coverage(req.Required, m)
	}
	optional := 0.0
	if len(req.Optional) > 0 {
		optional = coverage(req.Optional, m)
	}
	return 0.8*required + 0.2*optional
}

func coverage(slots []string, m content.Map) float64 {
	n := 0
	for _, s := range slots {
		if m.Has(s) {
			n++
		}
	}
	return float64(n) / float64(len(slots))
}

// UseCaseMatch counts use-case phrases containing a page-type keyword; two
// matches score 1.
func UseCaseMatch(useCases []string, pageType string) float64 {
	keywords, ok := catalog.UseCaseKeywords(pageType)
	if !ok {
		return neutralScore
	}
	matches := 0
	for _, uc := range useCases {
		phrase := strings.ToLower(uc)
		for _, kw := range keywords {
			if strings.Contains(phrase, strings.ToLower(kw)) {
				matches++
				break
			}
		}
	}
	return min(float64(matches)/2, 1.0)
}

// PersonaFit returns the component's affinity with persona, or 0.5 when the
// persona is unset or not listed.
func PersonaFit(fits []catalog.PersonaFit, persona string) float64 {
	if persona == "" {
		return neutralScore
	}
	for _, f := range fits {
		if strings.EqualFold(f.Persona, persona) {
			return f.Score
		}
	}
	return neutralScore
}

// PositionMatch scores placement against the preferred position and the
// adjacency hints for the previous component.
func PositionMatch(hints catalog.PositionHints, ctx SelectionContext) float64 {
	rel := 0.0
	if ctx.TotalSections > 0 {
		rel = float64(ctx.CurrentPosition) / float64(ctx.TotalSections)
	}

	var score float64
	switch hints.Preferred {
	case catalog.PositionTop:
		score = pick(rel < 0.3, 1.0, 0.3)
	case catalog.PositionMiddle:
		score = pick(rel >= 0.2 && rel <= 0.8, 1.0, 0.4)
	case catalog.PositionBottom:
		score = pick(rel > 0.7, 1.0, 0.3)
	default:
		score = 0.8
	}

	if prev, ok := ctx.Previous(); ok {
		if slices.Contains(hints.AvoidAfter, prev) {
			score *= avoidPenalty
		}
		if slices.Contains(hints.PreferAfter, prev) {
			score *= preferBonus
		}
	}
	return min(score, 1.0)
}

// NarrativeFit is 1 when the component's role is the stage being filled.
func NarrativeFit(role, stage catalog.NarrativeRole) float64 {
	if role == stage {
		return 1.0
	}
	return narrativeMismatch
}

func pick(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}

func clamp01(v float64) float64 {
	return max(0, min(v, 1))
}
