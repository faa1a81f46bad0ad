package catalog

// definitions is the built-in component table. Order matters: it is the
// tie-break when two components score the same.
var definitions = []ComponentDefinition{
	// Hero
	{
		ID:          "hero-centered",
		Category:    CategoryHero,
		Description: "Centered headline with supporting copy and a primary call to action",
		AI: AIMetadata{
			UseCases: []string{
				"homepage first impression",
				"product launch landing hero",
				"brand introduction headline",
				"campaign landing page opener",
			},
			ContentRequirements: ContentRequirements{
				Required: []string{"headline"},
				Optional: []string{"subheadline", "ctaText", "ctaLink", "image"},
				Constraints: map[string]SlotConstraint{
					"headline":    {MinLength: 3, MaxLength: 80},
					"subheadline": {MaxLength: 200},
				},
			},
			PersonaFit: []PersonaFit{
				{Persona: "business", Score: 0.8},
				{Persona: "startup", Score: 0.9},
				{Persona: "consumer", Score: 0.8},
				{Persona: "technical", Score: 0.6},
			},
			PositionHints: PositionHints{Preferred: PositionTop},
			NarrativeRole: RoleHook,
		},
	},
	{
		ID:          "hero-split",
		Category:    CategoryHero,
		Description: "Two-column hero with copy on one side and a product visual on the other",
		AI: AIMetadata{
			UseCases: []string{
				"product showcase with screenshot",
				"feature-led landing page",
				"saas homepage hero",
			},
			ContentRequirements: ContentRequirements{
				Required: []string{"headline", "image"},
				Optional: []string{"subheadline", "ctaText", "features"},
				Constraints: map[string]SlotConstraint{
					"headline": {MinLength: 3, MaxLength: 70},
					"features": {MaxCount: 3},
				},
			},
			PersonaFit: []PersonaFit{
				{Persona: "technical", Score: 0.8},
				{Persona: "business", Score: 0.8},
				{Persona: "developer", Score: 0.7},
			},
			PositionHints: PositionHints{Preferred: PositionTop},
			NarrativeRole: RoleHook,
		},
	},
	{
		ID:          "hero-video",
		Category:    CategoryHero,
		Description: "Full-bleed hero with a background or embedded product video",
		AI: AIMetadata{
			UseCases: []string{
				"product demo video introduction",
				"brand story homepage",
				"campaign landing with video",
			},
			ContentRequirements: ContentRequirements{
				Required: []string{"headline", "video"},
				Optional: []string{"subheadline", "ctaText"},
			},
			PersonaFit: []PersonaFit{
				{Persona: "consumer", Score: 0.9},
				{Persona: "marketing", Score: 0.8},
				{Persona: "business", Score: 0.6},
			},
			PositionHints: PositionHints{Preferred: PositionTop},
			NarrativeRole: RoleHook,
		},
	},
	{
		ID:          "hero-minimal",
		Category:    CategoryHero,
		Description: "Compact page header with a title and one line of context",
		AI: AIMetadata{
			UseCases: []string{
				"about page introduction",
				"blog and resources header",
				"careers page intro",
				"legal page title",
				"contact page header",
			},
			ContentRequirements: ContentRequirements{
				Required: []string{"headline"},
				Optional: []string{"subheadline"},
			},
			PersonaFit: []PersonaFit{
				{Persona: "developer", Score: 0.8},
				{Persona: "technical", Score: 0.8},
				{Persona: "business", Score: 0.6},
			},
			PositionHints: PositionHints{Preferred: PositionTop},
			NarrativeRole: RoleHook,
		},
	},

	// Problem framing
	{
		ID:          "problem-statement",
		Category:    CategoryContent,
		Description: "Names the audience's pain points before introducing the product",
		AI: AIMetadata{
			UseCases: []string{
				"pain point agitation",
				"landing page problem framing",
				"conversion campaign problem statement",
				"product page status quo critique",
			},
			ContentRequirements: ContentRequirements{
				Required: []string{"problems"},
				Optional: []string{"headline", "description"},
				Constraints: map[string]SlotConstraint{
					"problems": {MinCount: 2, MaxCount: 4},
				},
			},
			PersonaFit: []PersonaFit{
				{Persona: "business", Score: 0.8},
				{Persona: "executive", Score: 0.8},
				{Persona: "marketing", Score: 0.7},
			},
			PositionHints: PositionHints{
				Preferred:   PositionMiddle,
				PreferAfter: []string{"hero-centered", "hero-split", "hero-video"},
			},
			NarrativeRole: RoleProblem,
		},
	},
	{
		ID:          "before-after",
		Category:    CategoryContent,
		Description: "Side-by-side contrast of life before and after the product",
		AI: AIMetadata{
			UseCases: []string{
				"before and after comparison",
				"transformation story",
				"product benefit contrast",
			},
			ContentRequirements: ContentRequirements{
				Required: []string{"problems", "features"},
				Optional: []string{"headline"},
			},
			PersonaFit: []PersonaFit{
				{Persona: "marketing", Score: 0.9},
				{Persona: "business", Score: 0.7},
				{Persona: "consumer", Score: 0.8},
			},
			PositionHints: PositionHints{
				Preferred:  PositionMiddle,
				AvoidAfter: []string{"problem-statement"},
			},
			NarrativeRole: RoleProblem,
		},
	},

	// Solution
	{
		ID:          "features-grid",
		Category:    CategoryFeatures,
		Description: "Grid of feature cards with icon, title and short description",
		AI: AIMetadata{
			UseCases: []string{
				"feature overview grid",
				"product capabilities showcase",
				"homepage benefits summary",
			},
			ContentRequirements: ContentRequirements{
				Required: []string{"features"},
				Optional: []string{"headline", "subheadline"},
				Constraints: map[string]SlotConstraint{
					"features": {MinCount: 3, MaxCount: 9},
				},
			},
			PersonaFit: []PersonaFit{
				{Persona: "technical", Score: 0.8},
				{Persona: "business", Score: 0.8},
				{Persona: "developer", Score: 0.7},
				{Persona: "startup", Score: 0.8},
			},
			PositionHints: PositionHints{
				Preferred:   PositionMiddle,
				AvoidAfter:  []string{"features-list", "features-alternating"},
				PreferAfter: []string{"problem-statement"},
			},
			NarrativeRole: RoleSolution,
		},
	},
	{
		ID:          "features-alternating",
		Category:    CategoryFeatures,
		Description: "Alternating image and text rows, one feature per row",
		AI: AIMetadata{
			UseCases: []string{
				"detailed feature showcase with imagery",
				"product deep dive",
				"feature page benefit storytelling",
			},
			ContentRequirements: ContentRequirements{
				Required: []string{"features"},
				Optional: []string{"headline", "image"},
				Constraints: map[string]SlotConstraint{
					"features": {MinCount: 2, MaxCount: 5},
				},
			},
			PersonaFit: []PersonaFit{
				{Persona: "business", Score: 0.8},
				{Persona: "consumer", Score: 0.8},
				{Persona: "marketing", Score: 0.7},
			},
			PositionHints: PositionHints{
				Preferred:  PositionMiddle,
				AvoidAfter: []string{"features-grid", "features-list"},
			},
			NarrativeRole: RoleSolution,
		},
	},
	{
		ID:          "features-list",
		Category:    CategoryFeatures,
		Description: "Dense checklist of capabilities",
		AI: AIMetadata{
			UseCases: []string{
				"compact feature checklist",
				"technical capability list",
				"plan inclusion summary",
			},
			ContentRequirements: ContentRequirements{
				Required: []string{"features"},
				Optional: []string{"headline", "description"},
			},
			PersonaFit: []PersonaFit{
				{Persona: "developer", Score: 0.9},
				{Persona: "technical", Score: 0.9},
				{Persona: "business", Score: 0.6},
			},
			PositionHints: PositionHints{
				Preferred:  PositionMiddle,
				AvoidAfter: []string{"features-grid", "features-alternating"},
			},
			NarrativeRole: RoleSolution,
		},
	},
	{
		ID:          "how-it-works",
		Category:    CategoryContent,
		Description: "Numbered steps explaining how the product is used",
		AI: AIMetadata{
			UseCases: []string{
				"step by step product walkthrough",
				"onboarding process explanation",
				"demo flow overview",
			},
			ContentRequirements: ContentRequirements{
				Required: []string{"steps"},
				Optional: []string{"headline", "description"},
				Constraints: map[string]SlotConstraint{
					"steps": {MinCount: 3, MaxCount: 5},
				},
			},
			PersonaFit: []PersonaFit{
				{Persona: "consumer", Score: 0.8},
				{Persona: "startup", Score: 0.8},
				{Persona: "business", Score: 0.7},
			},
			PositionHints: PositionHints{Preferred: PositionMiddle},
			NarrativeRole: RoleSolution,
		},
	},
	{
		ID:          "integrations-grid",
		Category:    CategoryFeatures,
		Description: "Logo grid of supported integrations",
		AI: AIMetadata{
			UseCases: []string{
				"integration ecosystem showcase",
				"developer platform connections",
				"product compatibility overview",
			},
			ContentRequirements: ContentRequirements{
				Required: []string{"integrations"},
				Optional: []string{"headline", "description"},
			},
			PersonaFit: []PersonaFit{
				{Persona: "developer", Score: 0.9},
				{Persona: "technical", Score: 0.9},
				{Persona: "enterprise", Score: 0.7},
			},
			PositionHints: PositionHints{Preferred: PositionMiddle},
			NarrativeRole: RoleSolution,
		},
	},
	{
		ID:          "product-showcase",
		Category:    CategoryInteractive,
		Description: "Interactive product tour with hotspots over a screenshot",
		AI: AIMetadata{
			UseCases: []string{
				"interactive product tour",
				"product demo screenshots",
				"feature page visual walkthrough",
			},
			ContentRequirements: ContentRequirements{
				Required: []string{"headline", "image"},
				Optional: []string{"description", "features"},
			},
			PersonaFit: []PersonaFit{
				{Persona: "technical", Score: 0.8},
				{Persona: "consumer", Score: 0.7},
				{Persona: "startup", Score: 0.7},
			},
			PositionHints: PositionHints{
				Preferred:   PositionMiddle,
				PreferAfter: []string{"hero-centered", "hero-minimal"},
			},
			NarrativeRole: RoleSolution,
		},
	},
	{
		ID:          "comparison-table",
		Category:    CategoryContent,
		Description: "Feature matrix against alternatives or between tiers",
		AI: AIMetadata{
			UseCases: []string{
				"competitor comparison",
				"plan feature comparison matrix",
				"pricing tier differences",
			},
			ContentRequirements: ContentRequirements{
				Required: []string{"comparison"},
				Optional: []string{"headline"},
			},
			PersonaFit: []PersonaFit{
				{Persona: "business", Score: 0.8},
				{Persona: "enterprise", Score: 0.9},
				{Persona: "technical", Score: 0.7},
			},
			PositionHints: PositionHints{
				Preferred:   PositionMiddle,
				PreferAfter: []string{"pricing-table", "pricing-cards"},
			},
			NarrativeRole: RoleSolution,
		},
	},
	{
		ID:          "story-timeline",
		Category:    CategoryContent,
		Description: "Vertical timeline of company milestones",
		AI: AIMetadata{
			UseCases: []string{
				"company history story",
				"about page mission timeline",
				"brand journey",
			},
			ContentRequirements: ContentRequirements{
				Required: []string{"milestones"},
				Optional: []string{"headline", "description"},
				Constraints: map[string]SlotConstraint{
					"milestones": {MinCount: 3},
				},
			},
			PersonaFit: []PersonaFit{
				{Persona: "business", Score: 0.7},
				{Persona: "consumer", Score: 0.7},
				{Persona: "executive", Score: 0.6},
			},
			PositionHints: PositionHints{Preferred: PositionMiddle},
			NarrativeRole: RoleSolution,
		},
	},
	{
		ID:          "content-rich-text",
		Category:    CategoryContent,
		Description: "Long-form formatted text block",
		AI: AIMetadata{
			UseCases: []string{
				"legal page text",
				"blog article body",
				"policy and terms content",
				"about company story",
			},
			ContentRequirements: ContentRequirements{
				Required: []string{"description"},
				Optional: []string{"headline"},
			},
			PersonaFit: []PersonaFit{
				{Persona: "technical", Score: 0.7},
				{Persona: "developer", Score: 0.7},
			},
			PositionHints: PositionHints{Preferred: PositionAny},
			NarrativeRole: RoleSolution,
		},
	},
	{
		ID:          "blog-post-grid",
		Category:    CategoryContent,
		Description: "Card grid of recent articles",
		AI: AIMetadata{
			UseCases: []string{
				"blog index article list",
				"resources library",
				"latest news content",
			},
			ContentRequirements: ContentRequirements{
				Required: []string{"posts"},
				Optional: []string{"headline"},
			},
			PersonaFit: []PersonaFit{
				{Persona: "marketing", Score: 0.9},
				{Persona: "developer", Score: 0.7},
				{Persona: "consumer", Score: 0.7},
			},
			PositionHints: PositionHints{Preferred: PositionMiddle},
			NarrativeRole: RoleSolution,
		},
	},
	{
		ID:          "job-listings",
		Category:    CategoryContent,
		Description: "Filterable list of open roles",
		AI: AIMetadata{
			UseCases: []string{
				"careers open positions",
				"hiring job board",
				"team recruitment",
			},
			ContentRequirements: ContentRequirements{
				Required: []string{"jobs"},
				Optional: []string{"headline", "description"},
			},
			PersonaFit: []PersonaFit{
				{Persona: "developer", Score: 0.8},
				{Persona: "technical", Score: 0.7},
			},
			PositionHints: PositionHints{Preferred: PositionMiddle},
			NarrativeRole: RoleSolution,
		},
	},

	// Proof
	{
		ID:          "testimonials-carousel",
		Category:    CategorySocialProof,
		Description: "Rotating customer quotes with avatar and company",
		AI: AIMetadata{
			UseCases: []string{
				"customer testimonial showcase",
				"homepage social proof",
				"landing page trust building",
			},
			ContentRequirements: ContentRequirements{
				Required: []string{"testimonials"},
				Optional: []string{"headline"},
				Constraints: map[string]SlotConstraint{
					"testimonials": {MinCount: 2},
				},
			},
			PersonaFit: []PersonaFit{
				{Persona: "business", Score: 0.8},
				{Persona: "consumer", Score: 0.9},
				{Persona: "startup", Score: 0.7},
			},
			PositionHints: PositionHints{
				Preferred:   PositionMiddle,
				AvoidAfter:  []string{"testimonial-wall"},
				PreferAfter: []string{"features-grid", "features-alternating", "how-it-works"},
			},
			NarrativeRole: RoleProof,
		},
	},
	{
		ID:          "testimonial-wall",
		Category:    CategorySocialProof,
		Description: "Masonry wall of short testimonials",
		AI: AIMetadata{
			UseCases: []string{
				"wall of love",
				"community testimonials",
				"product reviews collection",
			},
			ContentRequirements: ContentRequirements{
				Required: []string{"testimonials"},
				Optional: []string{"headline", "stats"},
				Constraints: map[string]SlotConstraint{
					"testimonials": {MinCount: 4},
				},
			},
			PersonaFit: []PersonaFit{
				{Persona: "startup", Score: 0.9},
				{Persona: "developer", Score: 0.7},
				{Persona: "consumer", Score: 0.8},
			},
			PositionHints: PositionHints{
				Preferred:  PositionMiddle,
				AvoidAfter: []string{"testimonials-carousel"},
			},
			NarrativeRole: RoleProof,
		},
	},
	{
		ID:          "logo-cloud",
		Category:    CategorySocialProof,
		Description: "Row of customer logos",
		AI: AIMetadata{
			UseCases: []string{
				"trusted by customer logos",
				"enterprise credibility",
				"homepage brand logos",
			},
			ContentRequirements: ContentRequirements{
				Required: []string{"logos"},
				Optional: []string{"headline"},
				Constraints: map[string]SlotConstraint{
					"logos": {MinCount: 4, MaxCount: 12},
				},
			},
			PersonaFit: []PersonaFit{
				{Persona: "enterprise", Score: 0.9},
				{Persona: "business", Score: 0.9},
				{Persona: "executive", Score: 0.8},
			},
			PositionHints: PositionHints{
				Preferred:   PositionAny,
				PreferAfter: []string{"hero-centered", "hero-split", "hero-video"},
			},
			NarrativeRole: RoleProof,
		},
	},
	{
		ID:          "stats-counter",
		Category:    CategorySocialProof,
		Description: "Large animated numbers with labels",
		AI: AIMetadata{
			UseCases: []string{
				"key metrics highlight",
				"company impact numbers",
				"product results statistics",
			},
			ContentRequirements: ContentRequirements{
				Required: []string{"stats"},
				Optional: []string{"headline", "description"},
				Constraints: map[string]SlotConstraint{
					"stats": {MinCount: 2, MaxCount: 4},
				},
			},
			PersonaFit: []PersonaFit{
				{Persona: "executive", Score: 0.9},
				{Persona: "business", Score: 0.9},
				{Persona: "enterprise", Score: 0.8},
			},
			PositionHints: PositionHints{Preferred: PositionMiddle},
			NarrativeRole: RoleProof,
		},
	},
	{
		ID:          "case-study-highlight",
		Category:    CategorySocialProof,
		Description: "Featured customer story with outcome metrics",
		AI: AIMetadata{
			UseCases: []string{
				"customer success story",
				"enterprise case study",
				"results proof for buyers",
			},
			ContentRequirements: ContentRequirements{
				Required: []string{"caseStudies"},
				Optional: []string{"headline", "stats"},
			},
			PersonaFit: []PersonaFit{
				{Persona: "enterprise", Score: 0.9},
				{Persona: "executive", Score: 0.9},
				{Persona: "business", Score: 0.8},
			},
			PositionHints: PositionHints{Preferred: PositionMiddle},
			NarrativeRole: RoleProof,
		},
	},
	{
		ID:          "team-grid",
		Category:    CategoryContent,
		Description: "Photos and roles of the team",
		AI: AIMetadata{
			UseCases: []string{
				"about page team introduction",
				"company leadership",
				"careers culture people",
			},
			ContentRequirements: ContentRequirements{
				Required: []string{"team"},
				Optional: []string{"headline", "description"},
			},
			PersonaFit: []PersonaFit{
				{Persona: "business", Score: 0.7},
				{Persona: "consumer", Score: 0.7},
				{Persona: "developer", Score: 0.6},
			},
			PositionHints: PositionHints{Preferred: PositionMiddle},
			NarrativeRole: RoleProof,
		},
	},
	{
		ID:          "faq-accordion",
		Category:    CategoryContent,
		Description: "Expandable list of questions and answers",
		AI: AIMetadata{
			UseCases: []string{
				"frequently asked questions",
				"pricing objection handling",
				"support page questions",
			},
			ContentRequirements: ContentRequirements{
				Required: []string{"questions"},
				Optional: []string{"headline"},
				Constraints: map[string]SlotConstraint{
					"questions": {MinCount: 3, MaxCount: 10},
				},
			},
			PersonaFit: []PersonaFit{
				{Persona: "consumer", Score: 0.8},
				{Persona: "business", Score: 0.7},
				{Persona: "technical", Score: 0.7},
			},
			PositionHints: PositionHints{Preferred: PositionBottom},
			NarrativeRole: RoleProof,
		},
	},

	// Pricing
	{
		ID:          "pricing-table",
		Category:    CategoryPricing,
		Description: "Side-by-side plan columns with feature rows",
		AI: AIMetadata{
			UseCases: []string{
				"pricing page tier comparison",
				"subscription plan display",
				"saas pricing overview",
			},
			ContentRequirements: ContentRequirements{
				Required: []string{"plans"},
				Optional: []string{"headline", "subheadline", "ctaText"},
				Constraints: map[string]SlotConstraint{
					"plans": {MinCount: 2, MaxCount: 4},
				},
			},
			PersonaFit: []PersonaFit{
				{Persona: "business", Score: 0.9},
				{Persona: "startup", Score: 0.9},
				{Persona: "enterprise", Score: 0.7},
			},
			PositionHints: PositionHints{Preferred: PositionMiddle},
			NarrativeRole: RoleAction,
		},
	},
	{
		ID:          "pricing-cards",
		Category:    CategoryPricing,
		Description: "Plan cards with a highlighted recommended tier",
		AI: AIMetadata{
			UseCases: []string{
				"simple plan cards",
				"pricing tier selection",
				"landing page pricing",
			},
			ContentRequirements: ContentRequirements{
				Required: []string{"plans"},
				Optional: []string{"headline", "features"},
				Constraints: map[string]SlotConstraint{
					"plans": {MinCount: 1, MaxCount: 3},
				},
			},
			PersonaFit: []PersonaFit{
				{Persona: "consumer", Score: 0.9},
				{Persona: "startup", Score: 0.8},
				{Persona: "business", Score: 0.8},
			},
			PositionHints: PositionHints{Preferred: PositionMiddle},
			NarrativeRole: RoleAction,
		},
	},
	{
		ID:          "pricing-enterprise",
		Category:    CategoryPricing,
		Description: "Custom pricing block that routes to sales",
		AI: AIMetadata{
			UseCases: []string{
				"enterprise custom pricing",
				"sales contact for plan",
				"high-touch tier",
			},
			ContentRequirements: ContentRequirements{
				Required: []string{"headline", "ctaText"},
				Optional: []string{"description", "features"},
			},
			PersonaFit: []PersonaFit{
				{Persona: "enterprise", Score: 1.0},
				{Persona: "executive", Score: 0.9},
			},
			PositionHints: PositionHints{
				Preferred:   PositionBottom,
				PreferAfter: []string{"pricing-table", "pricing-cards"},
			},
			NarrativeRole: RoleAction,
		},
	},

	// Conversion
	{
		ID:          "cta-banner",
		Category:    CategoryCTA,
		Description: "Full-width closing banner with one button",
		AI: AIMetadata{
			UseCases: []string{
				"final conversion call to action",
				"signup prompt",
				"landing page closing",
			},
			ContentRequirements: ContentRequirements{
				Required: []string{"headline", "ctaText"},
				Optional: []string{"subheadline", "ctaLink"},
				Constraints: map[string]SlotConstraint{
					"ctaText": {MinLength: 2, MaxLength: 30},
				},
			},
			PersonaFit: []PersonaFit{
				{Persona: "business", Score: 0.8},
				{Persona: "startup", Score: 0.8},
				{Persona: "consumer", Score: 0.8},
			},
			PositionHints: PositionHints{
				Preferred:   PositionBottom,
				AvoidAfter:  []string{"cta-split", "newsletter-signup"},
				PreferAfter: []string{"testimonials-carousel", "stats-counter", "faq-accordion"},
			},
			NarrativeRole: RoleAction,
		},
	},
	{
		ID:          "cta-split",
		Category:    CategoryCTA,
		Description: "Closing pitch with a visual and a button",
		AI: AIMetadata{
			UseCases: []string{
				"demo request conversion",
				"product trial invitation",
				"visual closing pitch",
			},
			ContentRequirements: ContentRequirements{
				Required: []string{"headline", "ctaText", "image"},
				Optional: []string{"subheadline"},
			},
			PersonaFit: []PersonaFit{
				{Persona: "consumer", Score: 0.8},
				{Persona: "marketing", Score: 0.8},
			},
			PositionHints: PositionHints{
				Preferred:  PositionBottom,
				AvoidAfter: []string{"cta-banner"},
			},
			NarrativeRole: RoleAction,
		},
	},
	{
		ID:          "newsletter-signup",
		Category:    CategoryForms,
		Description: "Inline email capture",
		AI: AIMetadata{
			UseCases: []string{
				"blog subscription",
				"resources newsletter",
				"lead capture email",
			},
			ContentRequirements: ContentRequirements{
				Required: []string{"headline"},
				Optional: []string{"description", "fields"},
			},
			PersonaFit: []PersonaFit{
				{Persona: "marketing", Score: 0.9},
				{Persona: "consumer", Score: 0.7},
				{Persona: "developer", Score: 0.6},
			},
			PositionHints: PositionHints{Preferred: PositionBottom},
			NarrativeRole: RoleAction,
		},
	},
	{
		ID:          "contact-form",
		Category:    CategoryForms,
		Description: "Contact form with optional office details",
		AI: AIMetadata{
			UseCases: []string{
				"contact page inquiry form",
				"support request",
				"sales inquiry",
			},
			ContentRequirements: ContentRequirements{
				Required: []string{"fields"},
				Optional: []string{"headline", "description", "contactInfo"},
			},
			PersonaFit: []PersonaFit{
				{Persona: "business", Score: 0.8},
				{Persona: "enterprise", Score: 0.8},
				{Persona: "consumer", Score: 0.7},
			},
			PositionHints: PositionHints{Preferred: PositionMiddle},
			NarrativeRole: RoleAction,
		},
	},
	{
		ID:          "demo-request-form",
		Category:    CategoryForms,
		Description: "Short qualifying form to book a demo",
		AI: AIMetadata{
			UseCases: []string{
				"book a demo",
				"enterprise sales lead",
				"landing campaign conversion",
			},
			ContentRequirements: ContentRequirements{
				Required: []string{"headline", "fields"},
				Optional: []string{"description"},
			},
			PersonaFit: []PersonaFit{
				{Persona: "enterprise", Score: 0.9},
				{Persona: "executive", Score: 0.8},
				{Persona: "business", Score: 0.8},
			},
			PositionHints: PositionHints{Preferred: PositionBottom},
			NarrativeRole: RoleAction,
		},
	},

	// Global
	{
		ID:          "navbar-standard",
		Category:    CategoryNavigation,
		Description: "Site header with logo, links and a call to action",
		AI: AIMetadata{
			UseCases: []string{
				"site header navigation",
				"global menu",
			},
			ContentRequirements: ContentRequirements{
				Required: []string{"links"},
				Optional: []string{"brand", "ctaText", "ctaLink"},
			},
			PersonaFit: []PersonaFit{
				{Persona: "business", Score: 0.7},
				{Persona: "consumer", Score: 0.7},
			},
			PositionHints: PositionHints{Preferred: PositionTop},
			NarrativeRole: RoleHook,
		},
	},
	{
		ID:          "footer-columns",
		Category:    CategoryFooter,
		Description: "Multi-column footer with grouped links",
		AI: AIMetadata{
			UseCases: []string{
				"site footer links",
				"legal and contact navigation",
			},
			ContentRequirements: ContentRequirements{
				Required: []string{"links"},
				Optional: []string{"brand", "description", "contactInfo"},
			},
			PersonaFit: []PersonaFit{
				{Persona: "business", Score: 0.7},
				{Persona: "consumer", Score: 0.7},
			},
			PositionHints: PositionHints{Preferred: PositionBottom},
			NarrativeRole: RoleAction,
		},
	},
}
