package content

import "strings"

// Defaults is placeholder content per page type, used when a workspace has
// no knowledge base.
type Defaults map[string]Map

// For returns a copy of the defaults for pageType, falling back to the
// "default" entry.
func (d Defaults) For(pageType string) Map {
	if m, ok := d[strings.ToLower(pageType)]; ok {
		return m.Clone()
	}
	if m, ok := d["default"]; ok {
		return m.Clone()
	}
	return Map{}
}

func items(field string, values ...string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = map[string]any{field: v}
	}
	return out
}

// DefaultContent returns the built-in placeholder table. Each call returns a
// fresh table so callers may modify it.
func DefaultContent() Defaults {
	return Defaults{
		"default": {
			"headline":    "Welcome",
			"subheadline": "Everything you need to know, in one place",
			"description": "Tell visitors what this page is about.",
			"ctaText":     "Get started",
			"ctaLink":     "/signup",
		},
		"home": {
			"headline":     "Ship your best work faster",
			"subheadline":  "The platform teams use to plan, build and launch",
			"ctaText":      "Start free trial",
			"ctaLink":      "/signup",
			"problems":     items("description", "Work scattered across too many tools", "Launches slip because nobody sees the whole picture"),
			"features":     items("title", "Unified workspace", "Real-time collaboration", "Built-in analytics"),
			"testimonials": items("quote", "We cut our launch time in half.", "The first tool the whole team actually uses."),
			"stats":        items("value", "10k+ teams", "99.9% uptime", "4.8/5 rating"),
		},
		"landing": {
			"headline":     "Stop losing leads to slow follow-up",
			"subheadline":  "Respond in seconds, not days",
			"ctaText":      "Book a demo",
			"problems":     items("description", "Leads go cold while they wait", "Manual routing wastes hours every week"),
			"steps":        items("description", "Connect your inbox", "Set routing rules", "Watch response times drop"),
			"testimonials": items("quote", "Response time went from hours to minutes.", "Paid for itself in the first month."),
			"fields":       []any{"name", "email", "company"},
		},
		"product": {
			"headline":    "See the product in action",
			"subheadline": "Everything your team needs, nothing it doesn't",
			"image":       "/images/product.png",
			"ctaText":     "Try it free",
			"problems":    items("description", "Spreadsheets break at scale", "Status meetings eat the week"),
			"features":    items("title", "Planning boards", "Automations", "Reporting"),
			"caseStudies": items("summary", "How a 40-person team shipped 3x more"),
		},
		"features": {
			"headline":     "Features built for how you work",
			"subheadline":  "Every capability, explained",
			"image":        "/images/features.png",
			"features":     items("title", "Planning", "Automation", "Reporting", "Permissions"),
			"integrations": items("name", "Slack", "GitHub", "Salesforce"),
			"testimonials": items("quote", "The automations alone save us a day a week.", "Setup took an afternoon."),
			"ctaText":      "Start free trial",
		},
		"pricing": {
			"headline":    "Simple, transparent pricing",
			"subheadline": "Start free, upgrade when you grow",
			"plans":       items("name", "Starter", "Pro", "Enterprise"),
			"questions":   items("question", "Can I cancel anytime?", "Do you offer discounts?", "Is there a free trial?"),
			"ctaText":     "Choose a plan",
		},
		"about": {
			"headline":    "Our story",
			"subheadline": "Why we started and where we're going",
			"description": "We build tools that make teams better at their craft.",
			"milestones":  items("description", "Founded", "First customer", "Series A"),
			"team":        items("name", "Founder", "CTO", "Head of Design"),
		},
		"contact": {
			"headline":    "Get in touch",
			"subheadline": "We usually reply within a day",
			"fields":      []any{"name", "email", "message"},
			"contactInfo": "hello@example.com",
		},
		"blog": {
			"headline":    "Blog",
			"subheadline": "Ideas, guides and product news",
			"posts":       items("title", "Getting started", "Release notes", "Customer spotlight"),
			"description": "Get new posts in your inbox.",
		},
		"resources": {
			"headline":    "Resources",
			"subheadline": "Guides, templates and webinars",
			"posts":       items("title", "Launch checklist", "Planning template"),
		},
		"careers": {
			"headline":     "Join the team",
			"subheadline":  "Help us build the future of work",
			"jobs":         items("title", "Senior Engineer", "Product Designer"),
			"team":         items("name", "Engineering", "Design", "Sales"),
			"testimonials": items("quote", "The best team I've worked with."),
			"ctaText":      "See open roles",
		},
		"faq": {
			"headline":  "Frequently asked questions",
			"questions": items("question", "How does billing work?", "Can I export my data?", "Do you offer support?"),
			"fields":    []any{"email", "question"},
		},
		"demo": {
			"headline":    "See it live",
			"subheadline": "A 20-minute walkthrough tailored to your team",
			"image":       "/images/demo.png",
			"logos":       items("name", "Acme", "Globex", "Initech", "Umbrella"),
			"fields":      []any{"name", "email", "company", "team size"},
		},
		"legal": {
			"headline":    "Terms and privacy",
			"description": "The terms that govern use of our services.",
		},
	}
}
