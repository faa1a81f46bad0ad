package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/v0xg/layoutgen/internal/model"
)

// AddItemParams holds parameters for adding a knowledge-base item.
type AddItemParams struct {
	WorkspaceID string
	EntityType  string
	Content     string
	Metadata    map[string]any
}

// AddKnowledgeItem stores a new item and returns it.
func (s *SQLiteStore) AddKnowledgeItem(ctx context.Context, p AddItemParams) (*model.KnowledgeItem, error) {
	if strings.TrimSpace(p.EntityType) == "" {
		return nil, fmt.Errorf("entity type is required")
	}
	meta, err := marshalJSON(p.Metadata, len(p.Metadata) == 0)
	if err != nil {
		return nil, fmt.Errorf("encode metadata: %w", err)
	}

	item := &model.KnowledgeItem{
		ID:          newID(),
		WorkspaceID: p.WorkspaceID,
		EntityType:  p.EntityType,
		Content:     p.Content,
		Metadata:    p.Metadata,
		CreatedAt:   time.Now().UTC(),
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO knowledge_items (id, workspace_id, entity_type, content, metadata, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		item.ID, item.WorkspaceID, item.EntityType, item.Content, meta, formatTime(item.CreatedAt))
	if err != nil {
		return nil, fmt.Errorf("insert knowledge item: %w", err)
	}
	return item, nil
}

// FetchKnowledgeBase returns a workspace's items, oldest first.
func (s *SQLiteStore) FetchKnowledgeBase(ctx context.Context, workspaceID string) ([]model.KnowledgeItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, workspace_id, entity_type, content, metadata, created_at
		 FROM knowledge_items WHERE workspace_id = ? ORDER BY created_at, id`, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("query knowledge items: %w", err)
	}
	defer rows.Close()

	var items []model.KnowledgeItem
	for rows.Next() {
		var (
			it        model.KnowledgeItem
			meta      sql.NullString
			createdAt string
		)
		if err := rows.Scan(&it.ID, &it.WorkspaceID, &it.EntityType, &it.Content, &meta, &createdAt); err != nil {
			return nil, fmt.Errorf("scan knowledge item: %w", err)
		}
		if err := unmarshalJSON(meta, &it.Metadata); err != nil {
			return nil, fmt.Errorf("decode metadata of %s: %w", it.ID, err)
		}
		it.CreatedAt = parseTime(createdAt)
		items = append(items, it)
	}
	return items, rows.Err()
}

// PutPersona inserts or replaces a persona. An empty id is assigned one.
func (s *SQLiteStore) PutPersona(ctx context.Context, p model.Persona) (*model.Persona, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, fmt.Errorf("persona name is required")
	}
	if p.ID == "" {
		p.ID = newID()
	}
	goals, err := marshalJSON(p.Goals, len(p.Goals) == 0)
	if err != nil {
		return nil, fmt.Errorf("encode goals: %w", err)
	}
	pains, err := marshalJSON(p.PainPoints, len(p.PainPoints) == 0)
	if err != nil {
		return nil, fmt.Errorf("encode pain points: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO personas (id, workspace_id, name, communication_style, goals, pain_points)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   workspace_id = excluded.workspace_id,
		   name = excluded.name,
		   communication_style = excluded.communication_style,
		   goals = excluded.goals,
		   pain_points = excluded.pain_points`,
		p.ID, p.WorkspaceID, p.Name, p.CommunicationStyle, goals, pains)
	if err != nil {
		return nil, fmt.Errorf("upsert persona: %w", err)
	}
	return &p, nil
}

// FetchPersonas returns the workspace personas with the given ids, or every
// persona in the workspace when ids is empty.
func (s *SQLiteStore) FetchPersonas(ctx context.Context, workspaceID string, ids []string) ([]model.Persona, error) {
	query := `SELECT id, workspace_id, name, communication_style, goals, pain_points
		FROM personas WHERE workspace_id = ?`
	args := []any{workspaceID}
	if len(ids) > 0 {
		query += ` AND id IN (?` + strings.Repeat(", ?", len(ids)-1) + `)`
		for _, id := range ids {
			args = append(args, id)
		}
	}
	query += ` ORDER BY rowid`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query personas: %w", err)
	}
	defer rows.Close()

	var out []model.Persona
	for rows.Next() {
		var (
			p            model.Persona
			goals, pains sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.WorkspaceID, &p.Name, &p.CommunicationStyle, &goals, &pains); err != nil {
			return nil, fmt.Errorf("scan persona: %w", err)
		}
		if err := unmarshalJSON(goals, &p.Goals); err != nil {
			return nil, fmt.Errorf("decode goals of %s: %w", p.ID, err)
		}
		if err := unmarshalJSON(pains, &p.PainPoints); err != nil {
			return nil, fmt.Errorf("decode pain points of %s: %w", p.ID, err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// PutBrand inserts or replaces a brand. An empty id is assigned one.
func (s *SQLiteStore) PutBrand(ctx context.Context, b model.BrandConfig) (*model.BrandConfig, error) {
	if b.ID == "" {
		b.ID = newID()
	}
	colors, err := marshalJSON(b.Colors, len(b.Colors) == 0)
	if err != nil {
		return nil, fmt.Errorf("encode colors: %w", err)
	}
	typography, err := marshalJSON(b.Typography, len(b.Typography) == 0)
	if err != nil {
		return nil, fmt.Errorf("encode typography: %w", err)
	}
	voice, err := marshalJSON(b.Voice, false)
	if err != nil {
		return nil, fmt.Errorf("encode voice: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO brands (id, name, colors, typography, voice) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name = excluded.name,
		   colors = excluded.colors,
		   typography = excluded.typography,
		   voice = excluded.voice`,
		b.ID, b.Name, colors, typography, voice)
	if err != nil {
		return nil, fmt.Errorf("upsert brand: %w", err)
	}
	return &b, nil
}

// FetchBrandConfig returns the brand, or nil when it does not exist.
func (s *SQLiteStore) FetchBrandConfig(ctx context.Context, id string) (*model.BrandConfig, error) {
	var (
		b                         model.BrandConfig
		colors, typography, voice sql.NullString
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, colors, typography, voice FROM brands WHERE id = ?`, id).
		Scan(&b.ID, &b.Name, &colors, &typography, &voice)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query brand: %w", err)
	}
	if err := unmarshalJSON(colors, &b.Colors); err != nil {
		return nil, fmt.Errorf("decode colors: %w", err)
	}
	if err := unmarshalJSON(typography, &b.Typography); err != nil {
		return nil, fmt.Errorf("decode typography: %w", err)
	}
	if err := unmarshalJSON(voice, &b.Voice); err != nil {
		return nil, fmt.Errorf("decode voice: %w", err)
	}
	return &b, nil
}
