// Package site generates a set of pages for one website and derives the
// navigation and global header and footer from the finished layouts.
package site

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/v0xg/layoutgen/internal/catalog"
	"github.com/v0xg/layoutgen/internal/content"
	"github.com/v0xg/layoutgen/internal/generator"
	"github.com/v0xg/layoutgen/internal/model"
)

// Page types grouped by where they are linked from.
var (
	primaryTypes   = []string{"home", "product", "features", "solutions", "pricing"}
	secondaryTypes = []string{"blog", "resources", "careers", "docs", "changelog"}
	footerTypes    = []string{"about", "contact", "privacy", "terms", "legal", "faq"}
	// ctaTypes is the header call-to-action target, in order of preference.
	ctaTypes = []string{"demo", "contact", "pricing"}
)

const (
	headerComponent = "navbar-standard"
	footerComponent = "footer-columns"
)

// PageGenerator generates one page. *generator.Generator implements it.
type PageGenerator interface {
	Generate(ctx context.Context, req generator.Request) (*generator.Result, error)
}

// LayoutSaver persists a finished layout.
type LayoutSaver interface {
	SavePageLayout(ctx context.Context, l *model.PageLayout) (*model.PageLayout, error)
}

// Options configures a Builder. Saver is optional.
type Options struct {
	Generator PageGenerator
	Saver     LayoutSaver
	Logger    *zap.Logger
}

// Builder runs page generation once per page type, one page at a time.
type Builder struct {
	gen   PageGenerator
	saver LayoutSaver
	log   *zap.Logger
}

// NewBuilder returns a Builder.
func NewBuilder(opts Options) *Builder {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{gen: opts.Generator, saver: opts.Saver, log: log}
}

// Request describes the site to build.
type Request struct {
	WebsiteID     string
	WorkspaceID   string
	PageTypes     []string
	TargetPersona string
	PersonaIDs    []string
	BrandID       string
	// BrandName labels the header and footer.
	BrandName string
}

// NavItem is one navigation link.
type NavItem struct {
	Label    string `json:"label"`
	Href     string `json:"href"`
	PageType string `json:"pageType"`
	Title    string `json:"title"`
}

// Navigation groups the site's links.
type Navigation struct {
	Primary   []NavItem `json:"primary"`
	Secondary []NavItem `json:"secondary"`
	Footer    []NavItem `json:"footer"`
}

// GlobalComponent is a component rendered on every page.
type GlobalComponent struct {
	ID          string      `json:"id"`
	ComponentID string      `json:"componentId"`
	Content     content.Map `json:"content"`
}

// Site is the result of a build.
type Site struct {
	WebsiteID  string              `json:"websiteId"`
	Pages      []*model.PageLayout `json:"pages"`
	Navigation Navigation          `json:"navigation"`
	Header     GlobalComponent     `json:"header"`
	Footer     GlobalComponent     `json:"footer"`
	// Results holds the per-page generation details, in page order.
	Results []*generator.Result `json:"-"`
}

// Build generates every requested page type in order. Repeated page types are
// generated once.
func (b *Builder) Build(ctx context.Context, req Request) (*Site, error) {
	s := &Site{WebsiteID: req.WebsiteID}
	var done []string
	for _, raw := range req.PageTypes {
		pageType := strings.ToLower(strings.TrimSpace(raw))
		if pageType == "" || slices.Contains(done, pageType) {
			continue
		}
		done = append(done, pageType)

		res, err := b.gen.Generate(ctx, generator.Request{
			WebsiteID:     req.WebsiteID,
			WorkspaceID:   req.WorkspaceID,
			PageType:      pageType,
			TargetPersona: req.TargetPersona,
			PersonaIDs:    req.PersonaIDs,
			BrandID:       req.BrandID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to generate %s page: %w", pageType, err)
		}

		l := res.Layout
		if b.saver != nil {
			saved, err := b.saver.SavePageLayout(ctx, l)
			if err != nil {
				return nil, fmt.Errorf("failed to save %s page: %w", pageType, err)
			}
			l = saved
		}
		b.log.Debug("site page ready",
			zap.String("page_type", pageType),
			zap.String("slug", l.Slug),
			zap.Int("sections", len(l.Sections)))

		s.Pages = append(s.Pages, l)
		s.Results = append(s.Results, res)
	}

	s.Navigation = BuildNavigation(s.Pages)
	s.Header = buildHeader(req.BrandName, s.Navigation, s.Pages)
	s.Footer = buildFooter(req.BrandName, s.Navigation, s.Pages)
	return s, nil
}

// BuildNavigation groups pages into primary, secondary and footer links.
// Links follow the group's fixed order; pages outside every group are not
// linked.
func BuildNavigation(pages []*model.PageLayout) Navigation {
	return Navigation{
		Primary:   navItems(pages, primaryTypes),
		Secondary: navItems(pages, secondaryTypes),
		Footer:    navItems(pages, footerTypes),
	}
}

func navItems(pages []*model.PageLayout, types []string) []NavItem {
	var out []NavItem
	for _, t := range types {
		if p := findPage(pages, t); p != nil {
			out = append(out, NavItem{
				Label:    catalog.LabelFor(t),
				Href:     p.Slug,
				PageType: t,
				Title:    p.Metadata.Title,
			})
		}
	}
	return out
}

func findPage(pages []*model.PageLayout, pageType string) *model.PageLayout {
	for _, p := range pages {
		if p.PageType == pageType {
			return p
		}
	}
	return nil
}

func links(items []NavItem) []any {
	out := make([]any, len(items))
	for i, it := range items {
		out[i] = map[string]any{"label": it.Label, "href": it.Href, "title": it.Title}
	}
	return out
}

func buildHeader(brand string, nav Navigation, pages []*model.PageLayout) GlobalComponent {
	c := content.Map{"links": links(nav.Primary)}
	if brand != "" {
		c["brand"] = brand
	}
	for _, t := range ctaTypes {
		if p := findPage(pages, t); p != nil {
			c["ctaText"] = catalog.LabelFor(t)
			c["ctaLink"] = p.Slug
			break
		}
	}
	return GlobalComponent{ID: "global-header", ComponentID: headerComponent, Content: c}
}

func buildFooter(brand string, nav Navigation, pages []*model.PageLayout) GlobalComponent {
	var columns []any
	for _, col := range []struct {
		title string
		items []NavItem
	}{
		{"Product", nav.Primary},
		{"Resources", nav.Secondary},
		{"Company", nav.Footer},
	} {
		if len(col.items) > 0 {
			columns = append(columns, map[string]any{"title": col.title, "links": links(col.items)})
		}
	}

	c := content.Map{"links": columns}
	if brand != "" {
		c["brand"] = brand
	}
	if home := findPage(pages, "home"); home != nil && home.Metadata.Description != "" {
		c["description"] = home.Metadata.Description
	}
	return GlobalComponent{ID: "global-footer", ComponentID: footerComponent, Content: c}
}
