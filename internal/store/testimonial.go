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

// TestimonialStore handles client testimonial database operations.
type TestimonialStore struct {
	db *sql.DB
}

// NewTestimonialStore creates a new TestimonialStore with the given database connection.
func NewTestimonialStore(db *sql.DB) *TestimonialStore {
	return &TestimonialStore{db: db}
}

const testimonialColumns = `id, name, occupation, content, rating, image, project_type, featured, created_at, updated_at`

func scanTestimonial(row interface{ Scan(...any) error }) (*models.Testimonial, error) {
	t := &models.Testimonial{}
	var img models.ImageRef
	err := row.Scan(
		&t.ID, &t.Name, &t.Occupation, &t.Content, &t.Rating,
		&img, &t.ProjectType, &t.Featured, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.Image = img.NullableRef()
	return t, nil
}

// List returns all testimonials, newest first.
func (s *TestimonialStore) List() ([]models.Testimonial, error) {
	rows, err := s.db.Query(`
		SELECT ` + testimonialColumns + ` FROM testimonials
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	defer rows.Close()

	var items []models.Testimonial
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		items = append(items, *t)
	}
	return items, rows.Err()
}

// FindByID retrieves a testimonial by its UUID. Returns nil if not found.
func (s *TestimonialStore) FindByID(id uuid.UUID) (*models.Testimonial, error) {
	t, err := scanTestimonial(s.db.QueryRow(
		`SELECT `+testimonialColumns+` FROM testimonials WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find testimonial by id: %w", err)
	}
	return t, nil
}

// Create inserts a new testimonial and returns it with the generated ID.
func (s *TestimonialStore) Create(t *models.Testimonial) (*models.Testimonial, error) {
	result, err := scanTestimonial(s.db.QueryRow(`
		INSERT INTO testimonials (name, occupation, content, rating, image, project_type, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+testimonialColumns,
		t.Name, t.Occupation, t.Content, t.Rating, t.Image, t.ProjectType, t.Featured,
	))
	if err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}
	return result, nil
}

// Update modifies an existing testimonial.
func (s *TestimonialStore) Update(t *models.Testimonial) error {
	_, err := s.db.Exec(`
		UPDATE testimonials SET
			name = $1, occupation = $2, content = $3, rating = $4,
			image = $5, project_type = $6, featured = $7, updated_at = NOW()
		WHERE id = $8`,
		t.Name, t.Occupation, t.Content, t.Rating, t.Image, t.ProjectType, t.Featured, t.ID,
	)
	if err != nil {
		return fmt.Errorf("update testimonial: %w", err)
	}
	return nil
}

// Delete removes a testimonial by ID.
func (s *TestimonialStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}
	return nil
}
