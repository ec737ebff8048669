// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"
	"time"

	"interia/internal/models"
	"interia/internal/store"
)

type certificateRequest struct {
	Title               string                     `json:"title"`
	IssuingOrganization string                     `json:"issuing_organization"`
	IssueDate           time.Time                  `json:"issue_date"`
	ExpiryDate          *time.Time                 `json:"expiry_date"`
	CredentialID        *string                    `json:"credential_id"`
	Image               ImageInput                 `json:"image"`
	Category            models.CertificateCategory `json:"category"`
	IsActive            *bool                      `json:"is_active"`
	DisplayOrder        int                        `json:"display_order"`
}

func (req *certificateRequest) validate() string {
	if strings.TrimSpace(req.Title) == "" {
		return "Title is required"
	}
	if strings.TrimSpace(req.IssuingOrganization) == "" {
		return "Issuing organization is required"
	}
	if req.IssueDate.IsZero() {
		return "Issue date is required"
	}
	if req.Category == "" {
		req.Category = models.CertificateOther
	}
	if !models.ValidCertificateCategory(req.Category) {
		return "Unknown certificate category"
	}
	return ""
}

// ListCertificates returns certificates, optionally filtered by
// ?category= and ?isActive= (is_active also accepted).
func (h *Content) ListCertificates(w http.ResponseWriter, r *http.Request) {
	f := store.CertificateFilter{
		Category: models.CertificateCategory(r.URL.Query().Get("category")),
	}
	if f.Category != "" && !models.ValidCertificateCategory(f.Category) {
		writeError(w, http.StatusBadRequest, "Unknown certificate category", string(f.Category))
		return
	}
	active := r.URL.Query().Get("isActive")
	if active == "" {
		active = r.URL.Query().Get("is_active")
	}
	switch active {
	case "true":
		v := true
		f.IsActive = &v
	case "false":
		v := false
		f.IsActive = &v
	}

	items, err := h.stores.Certificates.List(f)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list certificates", "")
		return
	}
	writeJSON(w, http.StatusOK, emptyList(items))
}

// GetCertificate returns one certificate by ID.
func (h *Content) GetCertificate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	c, err := h.stores.Certificates.FindByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load certificate", "")
		return
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "Certificate not found", "")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// CreateCertificate creates a certificate, uploading an inline image first.
func (h *Content) CreateCertificate(w http.ResponseWriter, r *http.Request) {
	var req certificateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg, "")
		return
	}

	img, err := h.resolveImage(r.Context(), req.Image, "certificates")
	if err != nil {
		writeStorageError(w, err)
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	created, err := h.stores.Certificates.Create(&models.Certificate{
		Title:               strings.TrimSpace(req.Title),
		IssuingOrganization: strings.TrimSpace(req.IssuingOrganization),
		IssueDate:           req.IssueDate,
		ExpiryDate:          req.ExpiryDate,
		CredentialID:        req.CredentialID,
		Image:               img,
		Category:            req.Category,
		IsActive:            isActive,
		DisplayOrder:        req.DisplayOrder,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create certificate", "")
		return
	}

	h.invalidate(r.Context(), "certificates")
	writeJSON(w, http.StatusCreated, created)
}

// UpdateCertificate replaces a certificate. A replaced image's old CDN
// asset is deleted best-effort before the row is saved.
func (h *Content) UpdateCertificate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	existing, err := h.stores.Certificates.FindByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load certificate", "")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Certificate not found", "")
		return
	}

	var req certificateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg, "")
		return
	}

	img := existing.Image
	if req.Image.Provided() {
		img, err = h.resolveImage(r.Context(), req.Image, "certificates")
		if err != nil {
			writeStorageError(w, err)
			return
		}
		h.deleteReplaced(r.Context(), existing.Image, img)
	}

	existing.Title = strings.TrimSpace(req.Title)
	existing.IssuingOrganization = strings.TrimSpace(req.IssuingOrganization)
	existing.IssueDate = req.IssueDate
	existing.ExpiryDate = req.ExpiryDate
	existing.CredentialID = req.CredentialID
	existing.Image = img
	existing.Category = req.Category
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}
	existing.DisplayOrder = req.DisplayOrder

	if err := h.stores.Certificates.Update(existing); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update certificate", "")
		return
	}

	h.invalidate(r.Context(), "certificates")
	writeJSON(w, http.StatusOK, existing)
}

// DeleteCertificate removes a certificate and its CDN asset (best-effort).
func (h *Content) DeleteCertificate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	existing, err := h.stores.Certificates.FindByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load certificate", "")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Certificate not found", "")
		return
	}

	h.deleteAsset(r.Context(), existing.Image)

	if err := h.stores.Certificates.Delete(id); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete certificate", "")
		return
	}

	h.invalidate(r.Context(), "certificates")
	writeJSON(w, http.StatusOK, map[string]string{"message": "Certificate deleted"})
}
