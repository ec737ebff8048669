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

// CertificateStore handles accreditation database operations.
type CertificateStore struct {
	db *sql.DB
}

// NewCertificateStore creates a new CertificateStore with the given database connection.
func NewCertificateStore(db *sql.DB) *CertificateStore {
	return &CertificateStore{db: db}
}

// CertificateFilter narrows List results. Zero values mean "no filter".
type CertificateFilter struct {
	Category models.CertificateCategory
	IsActive *bool
}

const certificateColumns = `id, title, issuing_organization, issue_date, expiry_date,
	credential_id, image, category, is_active, display_order, created_at, updated_at`

func scanCertificate(row interface{ Scan(...any) error }) (*models.Certificate, error) {
	c := &models.Certificate{}
	var img models.ImageRef
	err := row.Scan(
		&c.ID, &c.Title, &c.IssuingOrganization, &c.IssueDate, &c.ExpiryDate,
		&c.CredentialID, &img, &c.Category, &c.IsActive, &c.DisplayOrder,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Image = img.NullableRef()
	return c, nil
}

// List returns certificates matching the filter, ordered by display_order
// then issue date descending.
func (s *CertificateStore) List(f CertificateFilter) ([]models.Certificate, error) {
	query := `SELECT ` + certificateColumns + ` FROM certificates`
	args := []any{}
	where := ""
	if f.Category != "" {
		args = append(args, f.Category)
		where = fmt.Sprintf(` WHERE category = $%d`, len(args))
	}
	if f.IsActive != nil {
		args = append(args, *f.IsActive)
		if where == "" {
			where = fmt.Sprintf(` WHERE is_active = $%d`, len(args))
		} else {
			where += fmt.Sprintf(` AND is_active = $%d`, len(args))
		}
	}
	query += where + ` ORDER BY display_order ASC, issue_date DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}
	defer rows.Close()

	var items []models.Certificate
	for rows.Next() {
		c, err := scanCertificate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan certificate: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// FindByID retrieves a certificate by its UUID. Returns nil if not found.
func (s *CertificateStore) FindByID(id uuid.UUID) (*models.Certificate, error) {
	c, err := scanCertificate(s.db.QueryRow(
		`SELECT `+certificateColumns+` FROM certificates WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find certificate by id: %w", err)
	}
	return c, nil
}

// Create inserts a new certificate and returns it with the generated ID.
func (s *CertificateStore) Create(c *models.Certificate) (*models.Certificate, error) {
	result, err := scanCertificate(s.db.QueryRow(`
		INSERT INTO certificates (title, issuing_organization, issue_date, expiry_date,
		                          credential_id, image, category, is_active, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+certificateColumns,
		c.Title, c.IssuingOrganization, c.IssueDate, c.ExpiryDate,
		c.CredentialID, c.Image, c.Category, c.IsActive, c.DisplayOrder,
	))
	if err != nil {
		return nil, fmt.Errorf("create certificate: %w", err)
	}
	return result, nil
}

// Update modifies an existing certificate.
func (s *CertificateStore) Update(c *models.Certificate) error {
	_, err := s.db.Exec(`
		UPDATE certificates SET
			title = $1, issuing_organization = $2, issue_date = $3, expiry_date = $4,
			credential_id = $5, image = $6, category = $7, is_active = $8,
			display_order = $9, updated_at = NOW()
		WHERE id = $10`,
		c.Title, c.IssuingOrganization, c.IssueDate, c.ExpiryDate,
		c.CredentialID, c.Image, c.Category, c.IsActive, c.DisplayOrder, c.ID,
	)
	if err != nil {
		return fmt.Errorf("update certificate: %w", err)
	}
	return nil
}

// Delete removes a certificate by ID.
func (s *CertificateStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM certificates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete certificate: %w", err)
	}
	return nil
}
