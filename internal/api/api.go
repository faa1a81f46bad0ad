// Package api exposes page and site generation over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/v0xg/layoutgen/internal/catalog"
	"github.com/v0xg/layoutgen/internal/generator"
	"github.com/v0xg/layoutgen/internal/model"
	"github.com/v0xg/layoutgen/internal/site"
)

// LayoutStore persists and reads layouts.
type LayoutStore interface {
	site.LayoutSaver
	GetPageLayout(ctx context.Context, websiteID, slug string) (*model.PageLayout, error)
	ListPageLayouts(ctx context.Context, websiteID string) ([]model.PageLayout, error)
}

// Options configures a Server. Layouts is optional; without it saving and
// lookups are unavailable.
type Options struct {
	Generator   site.PageGenerator
	Layouts     LayoutStore
	WebsiteID   string
	WorkspaceID string
	BrandID     string
	BrandName   string
	Logger      *zap.Logger
}

// Server serves the HTTP API.
type Server struct {
	opts Options
	log  *zap.Logger
}

// NewServer returns a Server.
func NewServer(opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{opts: opts, log: log}
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog", s.handleCatalog)
		r.Post("/pages/{pageType}/generate", s.handleGenerate)
		r.Post("/site", s.handleSite)
		r.Get("/layouts", s.handleLayouts)
	})
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Debug("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	defs := catalog.Default().All()
	if c := r.URL.Query().Get("category"); c != "" {
		defs = catalog.ByCategory(catalog.Category(c))
	}
	if role := r.URL.Query().Get("role"); role != "" {
		var filtered []catalog.ComponentDefinition
		for _, d := range defs {
			if string(d.AI.NarrativeRole) == role {
				filtered = append(filtered, d)
			}
		}
		defs = filtered
	}
	if defs == nil {
		defs = []catalog.ComponentDefinition{}
	}
	writeJSON(w, http.StatusOK, defs)
}

type generateBody struct {
	Persona    string   `json:"persona"`
	PersonaIDs []string `json:"personaIds"`
	BrandID    string   `json:"brandId"`
	Save       bool     `json:"save"`
}

type generateResponse struct {
	Layout       *model.PageLayout `json:"layout"`
	Source       generator.Source  `json:"source"`
	Fallback     string            `json:"fallbackReason,omitempty"`
	BelowMinimum bool              `json:"belowMinimum"`
	TokensUsed   int               `json:"tokensUsed"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var body generateBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if body.Save && s.opts.Layouts == nil {
		writeError(w, http.StatusNotImplemented, "layout storage is not configured")
		return
	}
	brand := body.BrandID
	if brand == "" {
		brand = s.opts.BrandID
	}

	res, err := s.opts.Generator.Generate(r.Context(), generator.Request{
		WebsiteID:     s.opts.WebsiteID,
		WorkspaceID:   s.opts.WorkspaceID,
		PageType:      chi.URLParam(r, "pageType"),
		TargetPersona: body.Persona,
		PersonaIDs:    body.PersonaIDs,
		BrandID:       brand,
	})
	if err != nil {
		s.log.Warn("generate failed", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	l := res.Layout
	if body.Save {
		if l, err = s.opts.Layouts.SavePageLayout(r.Context(), l); err != nil {
			s.log.Error("save layout failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to save layout")
			return
		}
	}
	resp := generateResponse{Layout: l, Source: res.Source, BelowMinimum: res.BelowMinimum, TokensUsed: res.TokensUsed}
	if res.Failure != nil {
		resp.Fallback = string(res.Failure.Reason)
	}
	writeJSON(w, http.StatusOK, resp)
}

type siteBody struct {
	PageTypes []string `json:"pageTypes"`
	Persona   string   `json:"persona"`
	Save      bool     `json:"save"`
}

func (s *Server) handleSite(w http.ResponseWriter, r *http.Request) {
	var body siteBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(body.PageTypes) == 0 {
		writeError(w, http.StatusBadRequest, "pageTypes is required")
		return
	}
	if body.Save && s.opts.Layouts == nil {
		writeError(w, http.StatusNotImplemented, "layout storage is not configured")
		return
	}

	opts := site.Options{Generator: s.opts.Generator, Logger: s.log}
	if body.Save {
		opts.Saver = s.opts.Layouts
	}
	out, err := site.NewBuilder(opts).Build(r.Context(), site.Request{
		WebsiteID:     s.opts.WebsiteID,
		WorkspaceID:   s.opts.WorkspaceID,
		PageTypes:     body.PageTypes,
		TargetPersona: body.Persona,
		BrandID:       s.opts.BrandID,
		BrandName:     s.opts.BrandName,
	})
	if err != nil {
		s.log.Error("site build failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to build site")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleLayouts(w http.ResponseWriter, r *http.Request) {
	if s.opts.Layouts == nil {
		writeError(w, http.StatusNotImplemented, "layout storage is not configured")
		return
	}
	slug := r.URL.Query().Get("slug")
	if slug == "" {
		layouts, err := s.opts.Layouts.ListPageLayouts(r.Context(), s.opts.WebsiteID)
		if err != nil {
			s.log.Error("list layouts failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to list layouts")
			return
		}
		if layouts == nil {
			layouts = []model.PageLayout{}
		}
		writeJSON(w, http.StatusOK, layouts)
		return
	}

	if !strings.HasPrefix(slug, "/") {
		slug = "/" + slug
	}
	l, err := s.opts.Layouts.GetPageLayout(r.Context(), s.opts.WebsiteID, slug)
	if err != nil {
		s.log.Error("get layout failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load layout")
		return
	}
	if l == nil {
		writeError(w, http.StatusNotFound, "layout not found")
		return
	}
	writeJSON(w, http.StatusOK, l)
}

// decodeBody reads an optional JSON body. An empty body leaves v untouched.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
