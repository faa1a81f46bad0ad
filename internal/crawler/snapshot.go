package crawler

import (
	"strings"

	"github.com/v0xg/layoutgen/internal/model"
)

// Snapshot is the marketing copy harvested from one page.
type Snapshot struct {
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Headline    string    `json:"headline,omitempty"`
	Subheadline string    `json:"subheadline,omitempty"`
	Blocks      []Block   `json:"blocks,omitempty"`
	Quotes      []Quote   `json:"quotes,omitempty"`
	CTAs        []string  `json:"ctas,omitempty"`
	Navigation  []NavItem `json:"navigation,omitempty"`
	IsSPA       bool      `json:"isSPA"`
}

// Block is a subheading with the paragraph that follows it.
type Block struct {
	Heading string `json:"heading"`
	Text    string `json:"text"`
}

// Quote is a blockquote and its attribution, if any.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author,omitempty"`
}

// NavItem is a navigation link
type NavItem struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// ToKnowledgeItems converts a snapshot into knowledge-base items for a
// workspace. Subheadings phrased as questions become FAQ entries, the rest
// become features.
func ToKnowledgeItems(s *Snapshot, workspaceID string) []model.KnowledgeItem {
	var items []model.KnowledgeItem
	add := func(entityType, content string, meta map[string]any) {
		content = strings.TrimSpace(content)
		if content == "" {
			return
		}
		if meta == nil {
			meta = map[string]any{}
		}
		meta["source"] = s.URL
		items = append(items, model.KnowledgeItem{
			WorkspaceID: workspaceID,
			EntityType:  entityType,
			Content:     content,
			Metadata:    meta,
		})
	}

	headline := s.Headline
	if headline == "" {
		headline = s.Title
	}
	add("headline", headline, nil)
	add("tagline", s.Subheadline, nil)
	add("description", s.Description, nil)

	seen := make(map[string]bool)
	for _, b := range s.Blocks {
		heading := strings.TrimSpace(b.Heading)
		key := strings.ToLower(heading)
		if heading == "" || seen[key] {
			continue
		}
		seen[key] = true
		if strings.HasSuffix(heading, "?") {
			add("faq", b.Text, map[string]any{"question": heading})
			continue
		}
		add("feature", b.Text, map[string]any{"title": heading})
	}

	for _, q := range s.Quotes {
		var meta map[string]any
		if q.Author != "" {
			meta = map[string]any{"author": q.Author}
		}
		add("testimonial", q.Text, meta)
	}

	if len(s.CTAs) > 0 {
		add("cta", s.CTAs[0], nil)
	}
	return items
}
