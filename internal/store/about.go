// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"interia/internal/models"
)

// AboutStore manages the singleton about-page row, pinned to id = 1 like
// site settings.
type AboutStore struct {
	db *sql.DB
}

// NewAboutStore returns a new AboutStore backed by the given database.
func NewAboutStore(db *sql.DB) *AboutStore {
	return &AboutStore{db: db}
}

// "values" is a reserved word in PostgreSQL, hence the quoting.
const aboutColumns = `title, description, mission, vision, "values", featured_image, updated_at`

func scanAbout(row interface{ Scan(...any) error }) (*models.About, error) {
	a := &models.About{}
	var img models.ImageRef
	err := row.Scan(&a.Title, &a.Description, &a.Mission, &a.Vision, &a.Values, &img, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	a.FeaturedImage = img.NullableRef()
	return a, nil
}

// Get returns the about document, creating the default row if it does not
// exist yet.
func (s *AboutStore) Get() (*models.About, error) {
	_, err := s.db.Exec(`
		INSERT INTO about (id) VALUES (1)
		ON CONFLICT (id) DO NOTHING`)
	if err != nil {
		return nil, fmt.Errorf("ensure about: %w", err)
	}

	a, err := scanAbout(s.db.QueryRow(
		`SELECT ` + aboutColumns + ` FROM about WHERE id = 1`))
	if err != nil {
		return nil, fmt.Errorf("get about: %w", err)
	}
	return a, nil
}

// Update replaces the whole about document.
func (s *AboutStore) Update(a *models.About) error {
	_, err := s.db.Exec(`
		INSERT INTO about (id, title, description, mission, vision, "values", featured_image, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			mission = EXCLUDED.mission,
			vision = EXCLUDED.vision,
			"values" = EXCLUDED."values",
			featured_image = EXCLUDED.featured_image,
			updated_at = EXCLUDED.updated_at`,
		a.Title, a.Description, a.Mission, a.Vision, a.Values, a.FeaturedImage,
	)
	if err != nil {
		return fmt.Errorf("update about: %w", err)
	}
	return nil
}
