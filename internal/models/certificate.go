// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// CertificateCategory classifies a certificate for filtering and display.
type CertificateCategory string

const (
	CertificateCompany      CertificateCategory = "company"
	CertificateProfessional CertificateCategory = "professional"
	CertificateSafety       CertificateCategory = "safety"
	CertificateQuality      CertificateCategory = "quality"
	CertificateOther        CertificateCategory = "other"
)

// ValidCertificateCategory reports whether the value is a known category.
func ValidCertificateCategory(c CertificateCategory) bool {
	switch c {
	case CertificateCompany, CertificateProfessional, CertificateSafety,
		CertificateQuality, CertificateOther:
		return true
	}
	return false
}

// Certificate is a company or professional accreditation.
type Certificate struct {
	ID                  uuid.UUID           `json:"id"`
	Title               string              `json:"title"`
	IssuingOrganization string              `json:"issuing_organization"`
	IssueDate           time.Time           `json:"issue_date"`
	ExpiryDate          *time.Time          `json:"expiry_date"`
	CredentialID        *string             `json:"credential_id"`
	Image               *ImageRef           `json:"image"`
	Category            CertificateCategory `json:"category"`
	IsActive            bool                `json:"is_active"`
	DisplayOrder        int                 `json:"display_order"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

// Expired reports whether the certificate carries an expiry date in the past.
func (c *Certificate) Expired(now time.Time) bool {
	return c.ExpiryDate != nil && c.ExpiryDate.Before(now)
}
