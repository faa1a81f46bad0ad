package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/v0xg/layoutgen/internal/catalog"
	"github.com/v0xg/layoutgen/internal/content"
	"github.com/v0xg/layoutgen/internal/scoring"
)

func pricingContext(pos int, prev ...string) scoring.SelectionContext {
	stage := catalog.RoleSolution
	if pos == 1 {
		stage = catalog.RoleAction
	}
	return scoring.SelectionContext{
		PageType: "pricing",
		Content: content.Map{
			"headline": "Simple Pricing",
			"plans":    []any{map[string]any{"name": "Pro"}, map[string]any{"name": "Team"}},
		},
		TargetPersona:      "business",
		CurrentPosition:    pos,
		TotalSections:      2,
		PreviousComponents: prev,
		NarrativeStage:     stage,
	}
}

func TestFindBestMatch_SortedAboveThreshold(t *testing.T) {
	got := New(nil).FindBestMatch(pricingContext(0), 0)
	require.NotEmpty(t, got)
	for i, s := range got {
		assert.Greater(t, s.TotalScore, scoring.AcceptThreshold)
		if i > 0 {
			assert.LessOrEqual(t, s.TotalScore, got[i-1].TotalScore)
		}
	}
	assert.Equal(t, "pricing-table", got[0].ComponentID)
}

func TestFindBestMatch_Limit(t *testing.T) {
	p := New(nil)
	all := p.FindBestMatch(pricingContext(0), 0)
	require.Greater(t, len(all), 3)

	top := p.FindBestMatch(pricingContext(0), DefaultLimit)
	assert.Equal(t, all[:3], top)
}

func TestFindBestMatch_RespectsExclusions(t *testing.T) {
	ctx := pricingContext(1, "pricing-table", "pricing-cards")
	for _, s := range FindBestMatch(ctx, 0) {
		assert.NotContains(t, ctx.PreviousComponents, s.ComponentID)
	}
}

func TestFindBestMatch_PricingActionStage(t *testing.T) {
	p := New(nil)
	first := p.FindBestMatch(pricingContext(0), DefaultLimit)
	require.NotEmpty(t, first)

	second := p.FindBestMatch(pricingContext(1, first[0].ComponentID), DefaultLimit)
	require.NotEmpty(t, second)

	def, ok := catalog.Get(second[0].ComponentID)
	require.True(t, ok)
	assert.Equal(t, catalog.CategoryPricing, def.Category)
	assert.Equal(t, catalog.RoleAction, def.AI.NarrativeRole)
	assert.GreaterOrEqual(t, second[0].TotalScore, 0.5)
	assert.NotEqual(t, first[0].ComponentID, second[0].ComponentID)
}

func TestFindBestMatch_MissingContentZeroesContentMatch(t *testing.T) {
	ctx := scoring.SelectionContext{
		PageType:        "pricing",
		Content:         content.Map{},
		CurrentPosition: 0,
		TotalSections:   3,
		NarrativeStage:  catalog.RoleAction,
	}
	for _, def := range catalog.ByCategory(catalog.CategoryPricing) {
		s := scoring.Score(def, ctx)
		assert.Zero(t, s.Breakdown.ContentMatch, def.ID)
	}

	withContent := pricingContext(0)
	withContent.NarrativeStage = catalog.RoleAction
	assert.Less(t, len(FindBestMatch(ctx, 0)), len(FindBestMatch(withContent, 0)))
}

func TestFindBestMatch_EmptyWhenNothingClears(t *testing.T) {
	c := catalog.New([]catalog.ComponentDefinition{{
		ID:       "needs-video",
		Category: catalog.CategoryHero,
		AI: catalog.AIMetadata{
			UseCases:            []string{"unrelated"},
			ContentRequirements: catalog.ContentRequirements{Required: []string{"video"}},
			PositionHints:       catalog.PositionHints{Preferred: catalog.PositionBottom},
			NarrativeRole:       catalog.RoleHook,
		},
	}})
	got := New(c).FindBestMatch(scoring.SelectionContext{
		PageType:       "pricing",
		Content:        content.Map{},
		TotalSections:  3,
		NarrativeStage: catalog.RoleAction,
	}, DefaultLimit)
	assert.Empty(t, got)
}

func TestFindBestMatch_TiesKeepCatalogOrder(t *testing.T) {
	meta := catalog.AIMetadata{
		UseCases:      []string{"pricing page"},
		PositionHints: catalog.PositionHints{Preferred: catalog.PositionAny},
		NarrativeRole: catalog.RoleAction,
	}
	c := catalog.New([]catalog.ComponentDefinition{
		{ID: "zeta", Category: catalog.CategoryPricing, AI: meta},
		{ID: "alpha", Category: catalog.CategoryPricing, AI: meta},
		{ID: "mid", Category: catalog.CategoryPricing, AI: meta},
	})
	ctx := scoring.SelectionContext{PageType: "pricing", TotalSections: 1, NarrativeStage: catalog.RoleAction}

	for i := 0; i < 5; i++ {
		got := New(c).FindBestMatch(ctx, 0)
		require.Len(t, got, 3)
		assert.Equal(t, []string{"zeta", "alpha", "mid"}, []string{got[0].ComponentID, got[1].ComponentID, got[2].ComponentID})
	}
}

func TestFindBestMatch_PositionPreferenceOrdersHeroes(t *testing.T) {
	ctx := scoring.SelectionContext{
		PageType:       "home",
		Content:        content.Map{"headline": "Hello"},
		TotalSections:  5,
		NarrativeStage: catalog.RoleHook,
	}
	def, _ := catalog.Get("hero-centered")

	ctx.CurrentPosition = 0
	top := scoring.Score(def, ctx)
	ctx.CurrentPosition = 4
	bottom := scoring.Score(def, ctx)

	assert.Less(t, bottom.Breakdown.PositionMatch, top.Breakdown.PositionMatch)
}

func TestAlternates(t *testing.T) {
	p := New(nil)
	ctx := pricingContext(0)
	alts := p.Alternates(ctx, "pricing-table", 5)
	require.Len(t, alts, 5)
	for i, a := range alts {
		assert.NotEqual(t, "pricing-table", a.ComponentID)
		if i > 0 {
			assert.LessOrEqual(t, a.TotalScore, alts[i-1].TotalScore)
		}
	}
}
