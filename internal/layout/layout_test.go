package layout

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/v0xg/layoutgen/internal/catalog"
	"github.com/v0xg/layoutgen/internal/content"
	"github.com/v0xg/layoutgen/internal/model"
	"github.com/v0xg/layoutgen/internal/scoring"
)

func sel(id string, score float64) Selection {
	return Selection{
		Score:          scoring.ComponentScore{ComponentID: id, TotalScore: score},
		ContentMapping: map[string]string{"headline": "headline"},
	}
}

func TestAssemble(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	brand := &model.BrandConfig{
		Name:       "Acme",
		Colors:     map[string]string{"primary": "#ff5500"},
		Typography: map[string]string{"heading": "Inter"},
	}

	l := Assemble(Input{
		WebsiteID:   "site-1",
		PageType:    "pricing",
		Selections:  []Selection{sel("hero-centered", 0.8), sel("pricing-table", 0.9), sel("faq-accordion", 0.61)},
		Metadata:    model.PageMetadata{Title: "Pricing"},
		Brand:       brand,
		GeneratedBy: "rules",
		Now:         now,
	})

	assert.NotEmpty(t, l.ID)
	assert.Equal(t, "/pricing", l.Slug)
	assert.Equal(t, "site-1", l.WebsiteID)
	assert.Equal(t, "rules", l.GeneratedBy)
	assert.Equal(t, now, l.CreatedAt)
	assert.Equal(t, 0.77, l.ConfidenceScore)

	require.Len(t, l.Sections, 3)
	for i, s := range l.Sections {
		assert.Equal(t, i, s.Order)
		assert.Equal(t, "#ff5500", s.StyleHints["accent"])
		assert.Equal(t, "Inter", s.StyleHints["headingFont"])
	}

	hero := l.Sections[0]
	assert.Equal(t, "section-0-hero-centered", hero.ID)
	assert.Equal(t, catalog.RoleHook, hero.NarrativeRole)
	assert.Equal(t, "fade-up", hero.Animation)
	assert.Equal(t, "full-bleed", hero.StyleHints["width"])
	assert.Equal(t, "default", hero.StyleHints["background"])

	pricing := l.Sections[1]
	assert.Equal(t, catalog.RoleAction, pricing.NarrativeRole)
	assert.Equal(t, "scale-in", pricing.Animation)
	assert.Equal(t, "emphasis", pricing.StyleHints["background"])
	assert.Equal(t, "contained", pricing.StyleHints["width"])

	assert.Equal(t, "default", l.Sections[2].StyleHints["background"])
}

func TestAssemble_RoleComesFromComponent(t *testing.T) {
	s := sel("testimonials-carousel", 0.7)
	s.NarrativeRole = catalog.RoleAction
	l := Assemble(Input{PageType: "home", Selections: []Selection{s}})
	assert.Equal(t, catalog.RoleProof, l.Sections[0].NarrativeRole)
	assert.Equal(t, "/", l.Slug)
}

func TestAssemble_UsesGivenCatalog(t *testing.T) {
	cat := catalog.New([]catalog.ComponentDefinition{
		{ID: "custom-banner", Category: catalog.CategoryCTA, AI: catalog.AIMetadata{NarrativeRole: catalog.RoleAction}},
		{ID: "hero-centered", Category: catalog.CategoryContent, AI: catalog.AIMetadata{NarrativeRole: catalog.RoleProof}},
	})
	l := Assemble(Input{
		PageType:   "home",
		Selections: []Selection{sel("custom-banner", 0.7), sel("hero-centered", 0.7)},
		Catalog:    cat,
	})
	require.Len(t, l.Sections, 2)

	banner := l.Sections[0]
	assert.Equal(t, catalog.RoleAction, banner.NarrativeRole)
	assert.Equal(t, "full-bleed", banner.StyleHints["width"])
	assert.Equal(t, "emphasis", banner.StyleHints["background"])

	hero := l.Sections[1]
	assert.Equal(t, catalog.RoleProof, hero.NarrativeRole, "role comes from the given catalog, not the built-in one")
	assert.Equal(t, "contained", hero.StyleHints["width"])
	assert.Equal(t, "slide-in", hero.Animation)
}

func TestAssemble_IDsAreUnique(t *testing.T) {
	a := Assemble(Input{PageType: "home"})
	b := Assemble(Input{PageType: "home"})
	assert.NotEqual(t, a.ID, b.ID)
	assert.Empty(t, a.Sections)
	assert.Zero(t, a.ConfidenceScore)
}

func TestConfidence(t *testing.T) {
	assert.Equal(t, 0.0, Confidence(nil))
	assert.Equal(t, 0.67, Confidence([]Selection{sel("a", 0.6), sel("b", 0.7), sel("c", 0.71)}))
	assert.Equal(t, 0.55, Confidence([]Selection{sel("a", 0.554), sel("b", 0.554)}))
}

func TestDefaultMetadata(t *testing.T) {
	brand := &model.BrandConfig{Name: "Acme", Voice: model.BrandVoice{Personality: []string{"bold"}}}

	md := DefaultMetadata("pricing", content.Map{"headline": "Simple", "subheadline": "Start free"}, brand)
	assert.Equal(t, "Pricing | Acme", md.Title)
	assert.Equal(t, "Start free", md.Description)
	assert.Equal(t, []string{"pricing", "price", "plan", "tier", "subscription", "bold", "acme"}, md.Keywords)

	home := DefaultMetadata("home", content.Map{"headline": "Ship faster"}, nil)
	assert.Equal(t, "Ship faster", home.Title)
	assert.Equal(t, "Ship faster", home.Description)

	long := DefaultMetadata("legal", content.Map{"description": strings.Repeat("word ", 60)}, nil)
	assert.LessOrEqual(t, len([]rune(long.Description)), maxDescription)
	assert.True(t, strings.HasSuffix(long.Description, "..."))
	assert.Empty(t, long.Keywords)
	assert.Equal(t, "Legal", long.Title)
}
