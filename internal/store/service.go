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

// ServiceStore handles studio service database operations.
type ServiceStore struct {
	db *sql.DB
}

// NewServiceStore creates a new ServiceStore with the given database connection.
func NewServiceStore(db *sql.DB) *ServiceStore {
	return &ServiceStore{db: db}
}

const serviceColumns = `id, title, description, icon, image, features, position, created_at, updated_at`

func scanService(row interface{ Scan(...any) error }) (*models.Service, error) {
	v := &models.Service{}
	var img models.ImageRef
	err := row.Scan(
		&v.ID, &v.Title, &v.Description, &v.Icon, &img,
		&v.Features, &v.Position, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.Image = img.NullableRef()
	return v, nil
}

// List returns all services in display position order.
func (s *ServiceStore) List() ([]models.Service, error) {
	rows, err := s.db.Query(`
		SELECT ` + serviceColumns + ` FROM services
		ORDER BY position ASC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var items []models.Service
	for rows.Next() {
		v, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		items = append(items, *v)
	}
	return items, rows.Err()
}

// FindByID retrieves a service by its UUID. Returns nil if not found.
func (s *ServiceStore) FindByID(id uuid.UUID) (*models.Service, error) {
	v, err := scanService(s.db.QueryRow(
		`SELECT `+serviceColumns+` FROM services WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find service by id: %w", err)
	}
	return v, nil
}

// Create inserts a new service and returns it with the generated ID.
func (s *ServiceStore) Create(v *models.Service) (*models.Service, error) {
	result, err := scanService(s.db.QueryRow(`
		INSERT INTO services (title, description, icon, image, features, position)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+serviceColumns,
		v.Title, v.Description, v.Icon, v.Image, v.Features, v.Position,
	))
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return result, nil
}

// Update modifies an existing service.
func (s *ServiceStore) Update(v *models.Service) error {
	_, err := s.db.Exec(`
		UPDATE services SET
			title = $1, description = $2, icon = $3, image = $4,
			features = $5, position = $6, updated_at = NOW()
		WHERE id = $7`,
		v.Title, v.Description, v.Icon, v.Image, v.Features, v.Position, v.ID,
	)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

// Delete removes a service by ID.
func (s *ServiceStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}
