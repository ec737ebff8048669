// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"interia/internal/models"
)

// MediaStore handles free-form uploaded image metadata.
type MediaStore struct {
	db *sql.DB
}

// NewMediaStore creates a new MediaStore with the given database connection.
func NewMediaStore(db *sql.DB) *MediaStore {
	return &MediaStore{db: db}
}

const mediaColumns = `id, url, asset_id, category, section, alt_text, title, created_at`

func scanMedia(row interface{ Scan(...any) error }) (*models.Media, error) {
	m := &models.Media{}
	err := row.Scan(&m.ID, &m.URL, &m.AssetID, &m.Category, &m.Section, &m.AltText, &m.Title, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// List returns media rows, newest first. Pass category to filter, or an
// empty string for all.
func (s *MediaStore) List(category string) ([]models.Media, error) {
	query := `SELECT ` + mediaColumns + ` FROM media`
	args := []any{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	defer rows.Close()

	var items []models.Media
	for rows.Next() {
		m, err := scanMedia(rows)
		if err != nil {
			return nil, fmt.Errorf("scan media: %w", err)
		}
		items = append(items, *m)
	}
	return items, rows.Err()
}

// FindByID retrieves a media row by its UUID. Returns nil if not found.
func (s *MediaStore) FindByID(id uuid.UUID) (*models.Media, error) {
	m, err := scanMedia(s.db.QueryRow(
		`SELECT `+mediaColumns+` FROM media WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find media by id: %w", err)
	}
	return m, nil
}

// Create inserts a new media row and returns it with the generated ID.
func (s *MediaStore) Create(m *models.Media) (*models.Media, error) {
	result, err := scanMedia(s.db.QueryRow(`
		INSERT INTO media (url, asset_id, category, section, alt_text, title)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+mediaColumns,
		m.URL, m.AssetID, m.Category, m.Section, m.AltText, m.Title,
	))
	if err != nil {
		return nil, fmt.Errorf("create media: %w", err)
	}
	return result, nil
}

// Update modifies an existing media row's metadata and image reference.
func (s *MediaStore) Update(m *models.Media) error {
	_, err := s.db.Exec(`
		UPDATE media SET
			url = $1, asset_id = $2, category = $3, section = $4, alt_text = $5, title = $6
		WHERE id = $7`,
		m.URL, m.AssetID, m.Category, m.Section, m.AltText, m.Title, m.ID,
	)
	if err != nil {
		return fmt.Errorf("update media: %w", err)
	}
	return nil
}

// Delete removes a media row by ID.
func (s *MediaStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM media WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete media: %w", err)
	}
	return nil
}
