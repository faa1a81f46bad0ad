// Package layout assembles scored component selections into a page layout
// ready to persist and render.
package layout

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/v0xg/layoutgen/internal/catalog"
	"github.com/v0xg/layoutgen/internal/content"
	"github.com/v0xg/layoutgen/internal/model"
	"github.com/v0xg/layoutgen/internal/scoring"
)

// Selection is one validated component choice, in page order.
type Selection struct {
	Score          scoring.ComponentScore   `json:"score"`
	NarrativeRole  catalog.NarrativeRole    `json:"narrativeRole"`
	ContentMapping map[string]string        `json:"contentMapping"`
	Reasoning      string                   `json:"reasoning,omitempty"`
	Alternates     []scoring.ComponentScore `json:"alternates,omitempty"`
	// Context is the slot the selection was scored in.
	Context scoring.SelectionContext `json:"-"`
}

// Input is everything Assemble needs.
type Input struct {
	ID          string
	WebsiteID   string
	PageType    string
	Selections  []Selection
	Metadata    model.PageMetadata
	Brand       *model.BrandConfig
	GeneratedBy string
	Now         time.Time
	// Catalog resolves component ids; nil means the built-in catalog.
	Catalog *catalog.Catalog
}

var animations = map[catalog.NarrativeRole]string{
	catalog.RoleHook:     "fade-up",
	catalog.RoleProblem:  "fade-in",
	catalog.RoleSolution: "stagger",
	catalog.RoleProof:    "slide-in",
	catalog.RoleAction:   "scale-in",
}

// Assemble builds the layout. Section order follows selection order.
func Assemble(in Input) *model.PageLayout {
	id := in.ID
	if id == "" {
		id = ulid.Make().String()
	}
	now := in.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	cat := in.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	sections := make([]model.Section, len(in.Selections))
	for i, sel := range in.Selections {
		role := sel.NarrativeRole
		def, known := cat.Get(sel.Score.ComponentID)
		if known {
			role = def.AI.NarrativeRole
		}
		sections[i] = model.Section{
			ID:            fmt.Sprintf("section-%d-%s", i, sel.Score.ComponentID),
			ComponentID:   sel.Score.ComponentID,
			ContentSlots:  sel.ContentMapping,
			NarrativeRole: role,
			Order:         i,
			Animation:     animations[role],
			StyleHints:    styleHints(def, known, i, in.Brand),
		}
	}

	return &model.PageLayout{
		ID:              id,
		WebsiteID:       in.WebsiteID,
		Slug:            catalog.SlugFor(in.PageType),
		PageType:        in.PageType,
		Sections:        sections,
		Metadata:        in.Metadata,
		ConfidenceScore: Confidence(in.Selections),
		GeneratedBy:     in.GeneratedBy,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func styleHints(def catalog.ComponentDefinition, known bool, order int, brand *model.BrandConfig) map[string]string {
	hints := map[string]string{"background": "default", "width": "contained"}
	if order%2 == 1 {
		hints["background"] = "muted"
	}
	if known {
		switch def.Category {
		case catalog.CategoryHero, catalog.CategoryCTA:
			hints["width"] = "full-bleed"
		}
		if def.AI.NarrativeRole == catalog.RoleAction {
			hints["background"] = "emphasis"
		}
	}
	if brand != nil {
		if c, ok := brand.Colors["primary"]; ok {
			hints["accent"] = c
		}
		if f, ok := brand.Typography["heading"]; ok {
			hints["headingFont"] = f
		}
	}
	return hints
}

// Confidence is the mean total score, rounded to two decimals. An empty
// selection list scores 0.
func Confidence(sels []Selection) float64 {
	if len(sels) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range sels {
		sum += s.Score.TotalScore
	}
	return math.Round(sum/float64(len(sels))*100) / 100
}

const maxDescription = 160

// DefaultMetadata derives SEO metadata from the content and brand.
func DefaultMetadata(pageType string, m content.Map, brand *model.BrandConfig) model.PageMetadata {
	label := catalog.LabelFor(pageType)
	title := label
	if h := m.String("headline"); h != "" && pageType == "home" {
		title = h
	}
	if brand != nil && brand.Name != "" {
		title += " | " + brand.Name
	}

	desc := ""
	for _, slot := range []string{"subheadline", "description", "headline"} {
		if s := strings.TrimSpace(m.String(slot)); s != "" {
			desc = s
			break
		}
	}
	if r := []rune(desc); len(r) > maxDescription {
		desc = strings.TrimSpace(string(r[:maxDescription-3])) + "..."
	}

	var keywords []string
	if kw, ok := catalog.UseCaseKeywords(pageType); ok {
		keywords = append(keywords, kw[:min(len(kw), 5)]...)
	}
	if brand != nil {
		keywords = append(keywords, brand.Voice.Personality...)
		if brand.Name != "" {
			keywords = append(keywords, strings.ToLower(brand.Name))
		}
	}

	return model.PageMetadata{Title: title, Description: desc, Keywords: keywords}
}
