package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/v0xg/layoutgen/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dir := t.TempDir()
	s, err := NewSQLiteStore(filepath.Join(dir, "nested", "test.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestKnowledgeBase(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	first, err := s.AddKnowledgeItem(ctx, AddItemParams{WorkspaceID: "ws", EntityType: "headline", Content: "Ship faster"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if first.ID == "" {
		t.Error("expected non-empty ID")
	}
	if _, err := s.AddKnowledgeItem(ctx, AddItemParams{
		WorkspaceID: "ws", EntityType: "plan", Content: "For teams", Metadata: map[string]any{"name": "Team", "seats": 10},
	}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.AddKnowledgeItem(ctx, AddItemParams{WorkspaceID: "other", EntityType: "headline", Content: "Nope"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.AddKnowledgeItem(ctx, AddItemParams{WorkspaceID: "ws", Content: "no type"}); err == nil {
		t.Error("expected error for missing entity type")
	}

	items, err := s.FetchKnowledgeBase(ctx, "ws")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Content != "Ship faster" || items[1].EntityType != "plan" {
		t.Errorf("unexpected order: %+v", items)
	}
	if items[1].Metadata["name"] != "Team" {
		t.Errorf("expected metadata name Team, got %v", items[1].Metadata["name"])
	}
	if items[1].Metadata["seats"] != float64(10) {
		t.Errorf("expected seats 10, got %v", items[1].Metadata["seats"])
	}
	if items[0].Metadata != nil {
		t.Errorf("expected nil metadata, got %v", items[0].Metadata)
	}

	empty, err := s.FetchKnowledgeBase(ctx, "missing")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected no items, got %d", len(empty))
	}
}

func TestPersonas(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	dev, err := s.PutPersona(ctx, model.Persona{WorkspaceID: "ws", Name: "developer", PainPoints: []string{"flaky builds"}})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := s.PutPersona(ctx, model.Persona{ID: "ops", WorkspaceID: "ws", Name: "ops lead", Goals: []string{"fewer pages"}}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := s.PutPersona(ctx, model.Persona{WorkspaceID: "ws"}); err == nil {
		t.Error("expected error for missing name")
	}

	all, err := s.FetchPersonas(ctx, "ws", nil)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 personas, got %d", len(all))
	}
	if all[0].Name != "developer" || len(all[0].PainPoints) != 1 {
		t.Errorf("unexpected persona: %+v", all[0])
	}

	some, err := s.FetchPersonas(ctx, "ws", []string{"ops", "unknown"})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(some) != 1 || some[0].Goals[0] != "fewer pages" {
		t.Errorf("unexpected personas: %+v", some)
	}

	dev.CommunicationStyle = "technical"
	if _, err := s.PutPersona(ctx, *dev); err != nil {
		t.Fatalf("update: %v", err)
	}
	updated, _ := s.FetchPersonas(ctx, "ws", []string{dev.ID})
	if len(updated) != 1 || updated[0].CommunicationStyle != "technical" {
		t.Errorf("expected updated persona, got %+v", updated)
	}
}

func TestBrands(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	got, err := s.FetchBrandConfig(ctx, "missing")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil brand, got %+v", got)
	}

	_, err = s.PutBrand(ctx, model.BrandConfig{
		ID:     "acme",
		Name:   "Acme",
		Colors: map[string]string{"primary": "#ff5500"},
		Voice:  model.BrandVoice{Tone: "bold", Personality: []string{"witty"}},
	})
	if err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err = s.FetchBrandConfig(ctx, "acme")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if got == nil || got.Name != "Acme" || got.Colors["primary"] != "#ff5500" || got.Voice.Personality[0] != "witty" {
		t.Errorf("unexpected brand: %+v", got)
	}
	if got.Typography != nil {
		t.Errorf("expected nil typography, got %v", got.Typography)
	}
}

func TestPageLayoutUpsert(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	missing, err := s.GetPageLayout(ctx, "site", "/pricing")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil layout, got %+v", missing)
	}

	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	first, err := s.SavePageLayout(ctx, &model.PageLayout{
		ID:              "first",
		WebsiteID:       "site",
		Slug:            "/pricing",
		PageType:        "pricing",
		Sections:        []model.Section{{ID: "section-0-pricing-table", ComponentID: "pricing-table", Order: 0}},
		ConfidenceScore: 0.78,
		GeneratedBy:     "rules",
		CreatedAt:       created,
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if first.ID != "first" || !first.CreatedAt.Equal(created) {
		t.Errorf("unexpected saved layout: %+v", first)
	}

	second, err := s.SavePageLayout(ctx, &model.PageLayout{
		ID:              "second",
		WebsiteID:       "site",
		Slug:            "/pricing",
		PageType:        "pricing",
		Sections:        []model.Section{{ID: "section-0-pricing-cards", ComponentID: "pricing-cards"}},
		ConfidenceScore: 0.9,
		GeneratedBy:     "llm:claude",
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if second.ID != "first" {
		t.Errorf("expected upsert to keep id 'first', got %q", second.ID)
	}
	if !second.CreatedAt.Equal(created) {
		t.Errorf("expected created_at preserved, got %v", second.CreatedAt)
	}

	got, err := s.GetPageLayout(ctx, "site", "/pricing")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.GeneratedBy != "llm:claude" || got.Sections[0].ComponentID != "pricing-cards" || got.ID != "first" {
		t.Errorf("unexpected layout: %+v", got)
	}

	if _, err := s.SavePageLayout(ctx, &model.PageLayout{WebsiteID: "site", Slug: "/", PageType: "home"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := s.SavePageLayout(ctx, &model.PageLayout{WebsiteID: "other", Slug: "/", PageType: "home"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	list, err := s.ListPageLayouts(ctx, "site")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].Slug != "/" || list[1].Slug != "/pricing" {
		t.Errorf("unexpected list: %+v", list)
	}
}
