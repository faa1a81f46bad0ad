package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/v0xg/layoutgen/internal/catalog"
	"github.com/v0xg/layoutgen/internal/generator"
	"github.com/v0xg/layoutgen/internal/model"
)

type memoryLayouts struct {
	bySlug map[string]*model.PageLayout
}

func (m *memoryLayouts) SavePageLayout(_ context.Context, l *model.PageLayout) (*model.PageLayout, error) {
	m.bySlug[l.Slug] = l
	return l, nil
}

func (m *memoryLayouts) GetPageLayout(_ context.Context, _, slug string) (*model.PageLayout, error) {
	return m.bySlug[slug], nil
}

func (m *memoryLayouts) ListPageLayouts(context.Context, string) ([]model.PageLayout, error) {
	var out []model.PageLayout
	for _, l := range m.bySlug {
		out = append(out, *l)
	}
	return out, nil
}

func newTestServer(layouts LayoutStore) http.Handler {
	return NewServer(Options{
		Generator: generator.New(generator.Options{}),
		Layouts:   layouts,
		WebsiteID: "site-1",
		BrandName: "Acme",
	}).Handler()
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestGenerateAndFetch(t *testing.T) {
	layouts := &memoryLayouts{bySlug: map[string]*model.PageLayout{}}
	h := newTestServer(layouts)

	rec := do(t, h, http.MethodPost, "/api/v1/pages/pricing/generate", `{"persona":"business","save":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp generateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, generator.SourceRules, resp.Source)
	assert.Equal(t, "disabled", resp.Fallback)
	assert.Equal(t, "/pricing", resp.Layout.Slug)
	assert.Equal(t, "site-1", resp.Layout.WebsiteID)
	assert.NotEmpty(t, resp.Layout.Sections)
	require.Contains(t, layouts.bySlug, "/pricing")

	rec = do(t, h, http.MethodGet, "/api/v1/layouts?slug=pricing", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got model.PageLayout
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, resp.Layout.ID, got.ID)

	rec = do(t, h, http.MethodGet, "/api/v1/layouts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []model.PageLayout
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	rec = do(t, h, http.MethodGet, "/api/v1/layouts?slug=/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGenerate_BadRequests(t *testing.T) {
	h := newTestServer(nil)

	rec := do(t, h, http.MethodPost, "/api/v1/pages/home/generate", `{"unknown":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/pages/home/generate", `{"save":true}`)
	assert.Equal(t, http.StatusNotImplemented, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/pages/home/generate", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/layouts", "")
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}

func TestSite(t *testing.T) {
	h := newTestServer(nil)

	rec := do(t, h, http.MethodPost, "/api/v1/site", `{"pageTypes":["home","pricing","blog"]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var s struct {
		Pages      []model.PageLayout `json:"pages"`
		Navigation struct {
			Primary []struct {
				Href string `json:"href"`
			} `json:"primary"`
		} `json:"navigation"`
		Header struct {
			ComponentID string         `json:"componentId"`
			Content     map[string]any `json:"content"`
		} `json:"header"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.Len(t, s.Pages, 3)
	require.Len(t, s.Navigation.Primary, 2)
	assert.Equal(t, "/", s.Navigation.Primary[0].Href)
	assert.Equal(t, "navbar-standard", s.Header.ComponentID)
	assert.Equal(t, "Acme", s.Header.Content["brand"])

	rec = do(t, h, http.MethodPost, "/api/v1/site", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalog(t *testing.T) {
	h := newTestServer(nil)

	rec := do(t, h, http.MethodGet, "/api/v1/catalog?category=hero&role=hook", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var defs []catalog.ComponentDefinition
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &defs))
	require.NotEmpty(t, defs)
	for _, d := range defs {
		assert.Equal(t, catalog.CategoryHero, d.Category)
		assert.Equal(t, catalog.RoleHook, d.AI.NarrativeRole)
	}

	rec = do(t, h, http.MethodGet, "/api/v1/catalog?role=nothing", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = do(t, h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
