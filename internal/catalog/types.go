// Package catalog holds the read-only registry of page components and the
// static per-page-type configuration used to plan layouts.
package catalog

// Category groups components by visual purpose.
type Category string

const (
	CategoryHero        Category = "hero"
	CategoryFeatures    Category = "features"
	CategorySocialProof Category = "social-proof"
	CategoryPricing     Category = "pricing"
	CategoryCTA         Category = "cta"
	CategoryContent     Category = "content"
	CategoryInteractive Category = "interactive"
	CategoryForms       Category = "forms"
	CategoryNavigation  Category = "navigation"
	CategoryFooter      Category = "footer"
)

// NarrativeRole is the storytelling function a component serves.
type NarrativeRole string

const (
	RoleHook     NarrativeRole = "hook"
	RoleProblem  NarrativeRole = "problem"
	RoleSolution NarrativeRole = "solution"
	RoleProof    NarrativeRole = "proof"
	RoleAction   NarrativeRole = "action"
)

// NarrativeRoles lists every role in canonical story order.
var NarrativeRoles = []NarrativeRole{RoleHook, RoleProblem, RoleSolution, RoleProof, RoleAction}

// Valid reports whether r is one of the five narrative roles.
func (r NarrativeRole) Valid() bool {
	for _, known := range NarrativeRoles {
		if r == known {
			return true
		}
	}
	return false
}

// Position is a component's preferred place in the page sequence.
type Position string

const (
	PositionTop    Position = "top"
	PositionMiddle Position = "middle"
	PositionBottom Position = "bottom"
	PositionAny    Position = "any"
)

// ComponentDefinition is one catalog entry.
type ComponentDefinition struct {
	ID          string     `json:"id"`
	Category    Category   `json:"category"`
	Description string     `json:"description"`
	AI          AIMetadata `json:"aiMetadata"`
}

// AIMetadata is the selection metadata scored by the planner.
type AIMetadata struct {
	UseCases            []string            `json:"useCases"`
	ContentRequirements ContentRequirements `json:"contentRequirements"`
	PersonaFit          []PersonaFit        `json:"personaFit"`
	PositionHints       PositionHints       `json:"positionHints"`
	NarrativeRole       NarrativeRole       `json:"narrativeRole"`
}

// ContentRequirements names the content slots a component consumes.
type ContentRequirements struct {
	Required    []string                  `json:"required"`
	Optional    []string                  `json:"optional,omitempty"`
	Constraints map[string]SlotConstraint `json:"constraints,omitempty"`
}

// Slots returns required then optional slot names.
func (c ContentRequirements) Slots() []string {
	out := make([]string, 0, len(c.Required)+len(c.Optional))
	out = append(out, c.Required...)
	return append(out, c.Optional...)
}

// SlotConstraint bounds a slot value. Zero means unbounded.
// Length applies to string values, Count to list values.
type SlotConstraint struct {
	MinLength int `json:"minLength,omitempty"`
	MaxLength int `json:"maxLength,omitempty"`
	MinCount  int `json:"minCount,omitempty"`
	MaxCount  int `json:"maxCount,omitempty"`
}

// PersonaFit is a static 0..1 affinity with an audience archetype.
type PersonaFit struct {
	Persona string  `json:"persona"`
	Score   float64 `json:"score"`
}

// PositionHints describe placement and adjacency preferences.
type PositionHints struct {
	Preferred   Position `json:"preferredPosition"`
	AvoidAfter  []string `json:"avoidAfter,omitempty"`
	PreferAfter []string `json:"preferAfter,omitempty"`
}
