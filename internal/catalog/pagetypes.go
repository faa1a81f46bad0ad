package catalog

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// PageTypeConfig is the static plan for one kind of page.
type PageTypeConfig struct {
	Type                  string          `json:"type"`
	Label                 string          `json:"label"`
	Path                  string          `json:"path"`
	RequiredSections      []NarrativeRole `json:"requiredSections"`
	MinSections           int             `json:"minSections"`
	MaxSections           int             `json:"maxSections"`
	RecommendedComponents []string        `json:"recommendedComponents,omitempty"`
}

var pageTypes = map[string]PageTypeConfig{
	"home": {
		Type: "home", Label: "Home", Path: "/",
		RequiredSections:      []NarrativeRole{RoleHook, RoleProblem, RoleSolution, RoleProof, RoleAction},
		MinSections:           4,
		MaxSections:           8,
		RecommendedComponents: []string{"hero-centered", "features-grid", "testimonials-carousel", "cta-banner"},
	},
	"landing": {
		Type: "landing", Label: "Landing", Path: "/landing",
		RequiredSections:      []NarrativeRole{RoleHook, RoleProblem, RoleSolution, RoleProof, RoleAction},
		MinSections:           4,
		MaxSections:           7,
		RecommendedComponents: []string{"hero-video", "problem-statement", "how-it-works", "demo-request-form"},
	},
	"product": {
		Type: "product", Label: "Product", Path: "/product",
		RequiredSections:      []NarrativeRole{RoleHook, RoleProblem, RoleSolution, RoleProof, RoleAction},
		MinSections:           4,
		MaxSections:           8,
		RecommendedComponents: []string{"hero-split", "product-showcase", "case-study-highlight", "cta-split"},
	},
	"features": {
		Type: "features", Label: "Features", Path: "/features",
		RequiredSections:      []NarrativeRole{RoleHook, RoleSolution, RoleProof, RoleAction},
		MinSections:           3,
		MaxSections:           7,
		RecommendedComponents: []string{"hero-split", "features-alternating", "integrations-grid", "cta-banner"},
	},
	"pricing": {
		Type: "pricing", Label: "Pricing", Path: "/pricing",
		RequiredSections:      []NarrativeRole{RoleSolution, RoleAction},
		MinSections:           2,
		MaxSections:           5,
		RecommendedComponents: []string{"pricing-table", "comparison-table", "faq-accordion"},
	},
	"about": {
		Type: "about", Label: "About", Path: "/about",
		RequiredSections:      []NarrativeRole{RoleHook, RoleSolution, RoleProof},
		MinSections:           3,
		MaxSections:           6,
		RecommendedComponents: []string{"hero-minimal", "story-timeline", "team-grid"},
	},
	"contact": {
		Type: "contact", Label: "Contact", Path: "/contact",
		RequiredSections:      []NarrativeRole{RoleHook, RoleAction},
		MinSections:           2,
		MaxSections:           3,
		RecommendedComponents: []string{"hero-minimal", "contact-form"},
	},
	"blog": {
		Type: "blog", Label: "Blog", Path: "/blog",
		RequiredSections:      []NarrativeRole{RoleHook, RoleSolution, RoleAction},
		MinSections:           2,
		MaxSections:           4,
		RecommendedComponents: []string{"hero-minimal", "blog-post-grid", "newsletter-signup"},
	},
	"resources": {
		Type: "resources", Label: "Resources", Path: "/resources",
		RequiredSections:      []NarrativeRole{RoleHook, RoleSolution},
		MinSections:           2,
		MaxSections:           4,
		RecommendedComponents: []string{"hero-minimal", "blog-post-grid"},
	},
	"careers": {
		Type: "careers", Label: "Careers", Path: "/careers",
		RequiredSections:      []NarrativeRole{RoleHook, RoleSolution, RoleProof, RoleAction},
		MinSections:           3,
		MaxSections:           6,
		RecommendedComponents: []string{"hero-minimal", "job-listings", "team-grid"},
	},
	"faq": {
		Type: "faq", Label: "FAQ", Path: "/faq",
		RequiredSections:      []NarrativeRole{RoleHook, RoleProof, RoleAction},
		MinSections:           2,
		MaxSections:           4,
		RecommendedComponents: []string{"hero-minimal", "faq-accordion", "contact-form"},
	},
	"demo": {
		Type: "demo", Label: "Book a demo", Path: "/demo",
		RequiredSections:      []NarrativeRole{RoleHook, RoleProof, RoleAction},
		MinSections:           2,
		MaxSections:           4,
		RecommendedComponents: []string{"hero-split", "logo-cloud", "demo-request-form"},
	},
	"legal": {
		Type: "legal", Label: "Legal", Path: "/legal",
		MinSections:           1,
		MaxSections:           3,
		RecommendedComponents: []string{"hero-minimal", "content-rich-text"},
	},
}

// useCaseKeywords drives the use-case sub-score. Page types without an entry
// score a neutral 0.5.
var useCaseKeywords = map[string][]string{
	"home":      {"homepage", "overview", "brand", "first impression", "showcase", "social proof"},
	"landing":   {"landing", "campaign", "conversion", "signup", "lead", "problem"},
	"product":   {"product", "demo", "showcase", "feature", "walkthrough"},
	"features":  {"feature", "capabilit", "benefit", "integration", "showcase"},
	"pricing":   {"pricing", "price", "plan", "tier", "subscription", "billing"},
	"about":     {"about", "company", "team", "story", "mission", "history"},
	"contact":   {"contact", "inquiry", "support", "form", "sales"},
	"blog":      {"blog", "article", "news", "subscription", "content"},
	"resources": {"resources", "library", "article", "newsletter"},
	"careers":   {"career", "job", "hiring", "culture", "recruitment"},
	"faq":       {"question", "faq", "objection", "support"},
	"demo":      {"demo", "trial", "sales", "enterprise"},
}

// PageType returns the configuration for a page type.
func PageType(pageType string) (PageTypeConfig, bool) {
	cfg, ok := pageTypes[strings.ToLower(pageType)]
	return cfg, ok
}

// PageTypes returns every known page type name.
func PageTypes() []string {
	names := make([]string, 0, len(pageTypes))
	for name := range pageTypes {
		names = append(names, name)
	}
	return names
}

// UseCaseKeywords returns the keyword list for a page type, if any.
func UseCaseKeywords(pageType string) ([]string, bool) {
	kw, ok := useCaseKeywords[strings.ToLower(pageType)]
	return kw, ok
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// SlugFor returns the URL path for a page type. Unknown types map to a
// slugified path.
func SlugFor(pageType string) string {
	if cfg, ok := PageType(pageType); ok {
		return cfg.Path
	}
	s := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(pageType), "-"), "-")
	if s == "" {
		return "/"
	}
	return "/" + s
}

// LabelFor returns a human label for a page type.
func LabelFor(pageType string) string {
	if cfg, ok := PageType(pageType); ok {
		return cfg.Label
	}
	if pageType == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(pageType)
	return string(unicode.ToUpper(r)) + strings.ReplaceAll(pageType[size:], "-", " ")
}
