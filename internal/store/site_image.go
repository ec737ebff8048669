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

// SiteImageStore handles placed site-image database operations.
type SiteImageStore struct {
	db *sql.DB
}

// NewSiteImageStore creates a new SiteImageStore with the given database connection.
func NewSiteImageStore(db *sql.DB) *SiteImageStore {
	return &SiteImageStore{db: db}
}

// SiteImageFilter narrows List results. Zero values mean "no filter".
type SiteImageFilter struct {
	Category models.SiteImageCategory
	Section  string
	Active   *bool
}

const siteImageColumns = `id, category, section, title, image, alt_text, active, position, variant, created_at, updated_at`

func scanSiteImage(row interface{ Scan(...any) error }) (*models.SiteImage, error) {
	si := &models.SiteImage{}
	err := row.Scan(
		&si.ID, &si.Category, &si.Section, &si.Title, &si.Image,
		&si.AltText, &si.Active, &si.Position, &si.Variant,
		&si.CreatedAt, &si.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return si, nil
}

// List returns site images matching the filter, ordered by position.
func (s *SiteImageStore) List(f SiteImageFilter) ([]models.SiteImage, error) {
	query := `SELECT ` + siteImageColumns + ` FROM site_images`
	args := []any{}
	clauses := []string{}
	if f.Category != "" {
		args = append(args, f.Category)
		clauses = append(clauses, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.Section != "" {
		args = append(args, f.Section)
		clauses = append(clauses, fmt.Sprintf("section = $%d", len(args)))
	}
	if f.Active != nil {
		args = append(args, *f.Active)
		clauses = append(clauses, fmt.Sprintf("active = $%d", len(args)))
	}
	for i, c := range clauses {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += ` ORDER BY position ASC, created_at ASC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list site images: %w", err)
	}
	defer rows.Close()

	var items []models.SiteImage
	for rows.Next() {
		si, err := scanSiteImage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan site image: %w", err)
		}
		items = append(items, *si)
	}
	return items, rows.Err()
}

// FindByID retrieves a site image by its UUID. Returns nil if not found.
func (s *SiteImageStore) FindByID(id uuid.UUID) (*models.SiteImage, error) {
	si, err := scanSiteImage(s.db.QueryRow(
		`SELECT `+siteImageColumns+` FROM site_images WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find site image by id: %w", err)
	}
	return si, nil
}

// Create inserts a new site image and returns it with the generated ID.
func (s *SiteImageStore) Create(si *models.SiteImage) (*models.SiteImage, error) {
	result, err := scanSiteImage(s.db.QueryRow(`
		INSERT INTO site_images (category, section, title, image, alt_text, active, position, variant)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+siteImageColumns,
		si.Category, si.Section, si.Title, &si.Image, si.AltText,
		si.Active, si.Position, si.Variant,
	))
	if err != nil {
		return nil, fmt.Errorf("create site image: %w", err)
	}
	return result, nil
}

// Update modifies an existing site image.
func (s *SiteImageStore) Update(si *models.SiteImage) error {
	_, err := s.db.Exec(`
		UPDATE site_images SET
			category = $1, section = $2, title = $3, image = $4, alt_text = $5,
			active = $6, position = $7, variant = $8, updated_at = NOW()
		WHERE id = $9`,
		si.Category, si.Section, si.Title, &si.Image, si.AltText,
		si.Active, si.Position, si.Variant, si.ID,
	)
	if err != nil {
		return fmt.Errorf("update site image: %w", err)
	}
	return nil
}

// Delete removes a site image by ID.
func (s *SiteImageStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM site_images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete site image: %w", err)
	}
	return nil
}
