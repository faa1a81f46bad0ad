package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/v0xg/layoutgen/internal/model"
)

// SavePageLayout upserts a layout keyed by website and slug. Replacing an
// existing page keeps its id and creation time.
func (s *SQLiteStore) SavePageLayout(ctx context.Context, l *model.PageLayout) (*model.PageLayout, error) {
	saved := *l
	if saved.ID == "" {
		saved.ID = newID()
	}
	now := time.Now().UTC()
	if saved.CreatedAt.IsZero() {
		saved.CreatedAt = now
	}
	saved.UpdatedAt = now

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var existingID, existingCreated string
	err = tx.QueryRowContext(ctx,
		`SELECT id, created_at FROM page_layouts WHERE website_id = ? AND slug = ?`,
		saved.WebsiteID, saved.Slug).Scan(&existingID, &existingCreated)
	switch {
	case err == sql.ErrNoRows:
	case err != nil:
		return nil, fmt.Errorf("lookup layout: %w", err)
	default:
		saved.ID = existingID
		saved.CreatedAt = parseTime(existingCreated)
	}

	payload, err := json.Marshal(&saved)
	if err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO page_layouts (id, website_id, slug, page_type, confidence, generated_by, payload, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(website_id, slug) DO UPDATE SET
		   page_type = excluded.page_type,
		   confidence = excluded.confidence,
		   generated_by = excluded.generated_by,
		   payload = excluded.payload,
		   updated_at = excluded.updated_at`,
		saved.ID, saved.WebsiteID, saved.Slug, saved.PageType, saved.ConfidenceScore, saved.GeneratedBy,
		string(payload), formatTime(saved.CreatedAt), formatTime(saved.UpdatedAt))
	if err != nil {
		return nil, fmt.Errorf("upsert layout: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &saved, nil
}

// GetPageLayout returns the layout for a website and slug, or nil when none
// is stored.
func (s *SQLiteStore) GetPageLayout(ctx context.Context, websiteID, slug string) (*model.PageLayout, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM page_layouts WHERE website_id = ? AND slug = ?`, websiteID, slug).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query layout: %w", err)
	}
	var l model.PageLayout
	if err := json.Unmarshal([]byte(payload), &l); err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}
	return &l, nil
}

// ListPageLayouts returns a website's layouts ordered by slug.
func (s *SQLiteStore) ListPageLayouts(ctx context.Context, websiteID string) ([]model.PageLayout, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT payload FROM page_layouts WHERE website_id = ? ORDER BY slug`, websiteID)
	if err != nil {
		return nil, fmt.Errorf("query layouts: %w", err)
	}
	defer rows.Close()

	var out []model.PageLayout
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan layout: %w", err)
		}
		var l model.PageLayout
		if err := json.Unmarshal([]byte(payload), &l); err != nil {
			return nil, fmt.Errorf("decode layout: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
