package model

import (
	"time"

	"github.com/v0xg/layoutgen/internal/catalog"
)

// PageLayout is a generated page: ordered sections plus SEO metadata.
type PageLayout struct {
	ID               string                       `json:"id"`
	WebsiteID        string                       `json:"websiteId"`
	Slug             string                       `json:"slug"`
	PageType         string                       `json:"pageType"`
	Sections         []Section                    `json:"sections"`
	Metadata         PageMetadata                 `json:"metadata"`
	PersonaOverrides map[string][]SectionOverride `json:"personaOverrides,omitempty"`
	ConfidenceScore  float64                      `json:"confidenceScore"`
	GeneratedBy      string                       `json:"generatedBy"`
	CreatedAt        time.Time                    `json:"createdAt"`
	UpdatedAt        time.Time                    `json:"updatedAt"`
}

// Section is one placed component instance.
type Section struct {
	ID            string                `json:"id"`
	ComponentID   string                `json:"componentId"`
	ContentSlots  map[string]string     `json:"contentSlots"`
	NarrativeRole catalog.NarrativeRole `json:"narrativeRole"`
	Order         int                   `json:"order"`
	Animation     string                `json:"animation,omitempty"`
	StyleHints    map[string]string     `json:"styleHints,omitempty"`
}

// PageMetadata is the page-level SEO block.
type PageMetadata struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords,omitempty"`
}

// SectionOverride swaps the component of one section for a given persona.
type SectionOverride struct {
	SectionID   string  `json:"sectionId"`
	ComponentID string  `json:"componentId"`
	Score       float64 `json:"score"`
}

// ComponentIDs returns the component id of every section in order.
func (l *PageLayout) ComponentIDs() []string {
	ids := make([]string, len(l.Sections))
	for i, s := range l.Sections {
		ids[i] = s.ComponentID
	}
	return ids
}
