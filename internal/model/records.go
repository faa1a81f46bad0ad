// Package model defines the records consumed from external sources and the
// layout artifacts produced for persistence and rendering.
package model

import "time"

// KnowledgeItem is one knowledge-base entity for a workspace.
type KnowledgeItem struct {
	ID          string         `json:"id" yaml:"id"`
	WorkspaceID string         `json:"workspaceId" yaml:"workspace_id"`
	EntityType  string         `json:"entityType" yaml:"entity_type"`
	Content     string         `json:"content" yaml:"content"`
	Metadata    map[string]any `json:"metadata,omitempty" yaml:"metadata"`
	CreatedAt   time.Time      `json:"createdAt" yaml:"-"`
}

// Persona describes a known audience for a workspace.
type Persona struct {
	ID                 string   `json:"id" yaml:"id"`
	WorkspaceID        string   `json:"workspaceId" yaml:"workspace_id"`
	Name               string   `json:"name" yaml:"name"`
	CommunicationStyle string   `json:"communicationStyle" yaml:"communication_style"`
	Goals              []string `json:"goals,omitempty" yaml:"goals"`
	PainPoints         []string `json:"painPoints,omitempty" yaml:"pain_points"`
}

// BrandConfig is the brand identity used for voice and styling.
type BrandConfig struct {
	ID         string            `json:"id" yaml:"id"`
	Name       string            `json:"name" yaml:"name"`
	Colors     map[string]string `json:"colors,omitempty" yaml:"colors"`
	Typography map[string]string `json:"typography,omitempty" yaml:"typography"`
	Voice      BrandVoice        `json:"voice" yaml:"voice"`
}

// BrandVoice captures how copy should sound.
type BrandVoice struct {
	Tone        string   `json:"tone" yaml:"tone"`
	Formality   string   `json:"formality" yaml:"formality"`
	Personality []string `json:"personality,omitempty" yaml:"personality"`
}
