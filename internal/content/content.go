// Package content turns knowledge-base entities into the flat slot map that
// components are matched against.
package content

import (
	"strings"

	"github.com/v0xg/layoutgen/internal/model"
)

// Map is slot name to value. Values are strings, lists, or nested maps.
type Map map[string]any

// Has reports whether slot holds a non-empty value.
func (m Map) Has(slot string) bool {
	v, ok := m[slot]
	if !ok || v == nil {
		return false
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t) != ""
	case []any:
		return len(t) > 0
	case []string:
		return len(t) > 0
	case []map[string]any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	}
	return true
}

// Slots returns the names of every non-empty slot.
func (m Map) Slots() []string {
	out := make([]string, 0, len(m))
	for k := range m {
		if m.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

// String returns a scalar slot value, or "".
func (m Map) String(slot string) string {
	s, _ := m[slot].(string)
	return s
}

// Count returns the number of entries in a list slot, 1 for a present
// scalar, 0 otherwise.
func (m Map) Count(slot string) int {
	switch t := m[slot].(type) {
	case []any:
		return len(t)
	case []string:
		return len(t)
	case []map[string]any:
		return len(t)
	}
	if m.Has(slot) {
		return 1
	}
	return 0
}

// Clone returns a shallow copy.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

type slotKind int

const (
	listSlot slotKind = iota
	scalarSlot
	// cascadeSlot fills headline first, then subheadline.
	cascadeSlot
)

type rule struct {
	slot  string
	kind  slotKind
	field string
}

// rules maps entity types to slots. List entries keep the entity's metadata
// and store the entity content under field.
var rules = map[string]rule{
	"feature":      {slot: "features", field: "description"},
	"capability":   {slot: "features", field: "description"},
	"benefit":      {slot: "features", field: "description"},
	"testimonial":  {slot: "testimonials", field: "quote"},
	"review":       {slot: "testimonials", field: "quote"},
	"statistic":    {slot: "stats", field: "value"},
	"metric":       {slot: "stats", field: "value"},
	"faq":          {slot: "questions", field: "answer"},
	"question":     {slot: "questions", field: "answer"},
	"pricing":      {slot: "plans", field: "description"},
	"plan":         {slot: "plans", field: "description"},
	"problem":      {slot: "problems", field: "description"},
	"pain_point":   {slot: "problems", field: "description"},
	"step":         {slot: "steps", field: "description"},
	"integration":  {slot: "integrations", field: "name"},
	"logo":         {slot: "logos", field: "name"},
	"customer":     {slot: "logos", field: "name"},
	"team_member":  {slot: "team", field: "bio"},
	"case_study":   {slot: "caseStudies", field: "summary"},
	"milestone":    {slot: "milestones", field: "description"},
	"job":          {slot: "jobs", field: "description"},
	"post":         {slot: "posts", field: "excerpt"},
	"article":      {slot: "posts", field: "excerpt"},
	"tagline":      {slot: "headline", kind: cascadeSlot},
	"headline":     {slot: "headline", kind: cascadeSlot},
	"description":  {slot: "description", kind: scalarSlot},
	"about":        {slot: "description", kind: scalarSlot},
	"mission":      {slot: "description", kind: scalarSlot},
	"cta":          {slot: "ctaText", kind: scalarSlot},
	"image":        {slot: "image", kind: scalarSlot},
	"video":        {slot: "video", kind: scalarSlot},
	"contact_info": {slot: "contactInfo", kind: scalarSlot},
}

// Extract maps knowledge items into a content map. Unknown entity types are
// ignored. The first scalar value for a slot wins.
func Extract(items []model.KnowledgeItem) Map {
	m := make(Map)
	for _, it := range items {
		r, ok := rules[normalizeType(it.EntityType)]
		if !ok {
			continue
		}
		text := strings.TrimSpace(it.Content)

		switch r.kind {
		case scalarSlot:
			if text != "" && !m.Has(r.slot) {
				m[r.slot] = text
			}
		case cascadeSlot:
			if text == "" {
				continue
			}
			if !m.Has("headline") {
				m["headline"] = text
			} else if !m.Has("subheadline") {
				m["subheadline"] = text
			}
		default:
			entry := make(map[string]any, len(it.Metadata)+1)
			for k, v := range it.Metadata {
				entry[k] = v
			}
			if text != "" {
				entry[r.field] = text
			}
			list, _ := m[r.slot].([]any)
			m[r.slot] = append(list, entry)
		}
	}
	return m
}

func normalizeType(t string) string {
	t = strings.ToLower(strings.TrimSpace(t))
	t = strings.ReplaceAll(t, "-", "_")
	return strings.ReplaceAll(t, " ", "_")
}

// EnrichFromPersonas fills the problems slot from persona pain points when
// the knowledge base supplied none. It returns m unchanged otherwise.
func EnrichFromPersonas(m Map, personas []model.Persona) Map {
	if m.Has("problems") {
		return m
	}
	var problems []any
	seen := make(map[string]bool)
	for _, p := range personas {
		for _, pain := range p.PainPoints {
			key := strings.ToLower(strings.TrimSpace(pain))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			problems = append(problems, map[string]any{"description": pain, "persona": p.Name})
		}
	}
	if len(problems) == 0 {
		return m
	}
	out := m.Clone()
	out["problems"] = problems
	return out
}
