// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"

	"interia/internal/models"
)

type testimonialRequest struct {
	Name        string     `json:"name"`
	Occupation  string     `json:"occupation"`
	Content     string     `json:"content"`
	Rating      float64    `json:"rating"`
	Image       ImageInput `json:"image"`
	ProjectType string     `json:"project_type"`
	Featured    bool       `json:"featured"`
}

func (req *testimonialRequest) validate() string {
	if strings.TrimSpace(req.Name) == "" {
		return "Name is required"
	}
	if strings.TrimSpace(req.Content) == "" {
		return "Content is required"
	}
	if !models.ValidRating(req.Rating) {
		return "Rating must be between 1 and 5"
	}
	return ""
}

// ListTestimonials returns all testimonials, newest first.
func (h *Content) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	items, err := h.stores.Testimonials.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list testimonials", "")
		return
	}
	writeJSON(w, http.StatusOK, emptyList(items))
}

// GetTestimonial returns one testimonial by ID.
func (h *Content) GetTestimonial(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	t, err := h.stores.Testimonials.FindByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load testimonial", "")
		return
	}
	if t == nil {
		writeError(w, http.StatusNotFound, "Testimonial not found", "")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// CreateTestimonial creates a testimonial. The image is optional; a data
// URI is uploaded first and the create aborts if the upload fails.
func (h *Content) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req testimonialRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg, "")
		return
	}

	img, err := h.resolveImage(r.Context(), req.Image, "testimonials")
	if err != nil {
		writeStorageError(w, err)
		return
	}

	created, err := h.stores.Testimonials.Create(&models.Testimonial{
		Name:        strings.TrimSpace(req.Name),
		Occupation:  req.Occupation,
		Content:     req.Content,
		Rating:      req.Rating,
		Image:       img,
		ProjectType: req.ProjectType,
		Featured:    req.Featured,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create testimonial", "")
		return
	}

	h.invalidate(r.Context(), "testimonials")
	writeJSON(w, http.StatusCreated, created)
}

// UpdateTestimonial replaces a testimonial. When the image changes, the old
// CDN asset is deleted best-effort before the row is saved.
func (h *Content) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	existing, err := h.stores.Testimonials.FindByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load testimonial", "")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Testimonial not found", "")
		return
	}

	var req testimonialRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg, "")
		return
	}

	img := existing.Image
	if req.Image.Provided() {
		img, err = h.resolveImage(r.Context(), req.Image, "testimonials")
		if err != nil {
			writeStorageError(w, err)
			return
		}
		h.deleteReplaced(r.Context(), existing.Image, img)
	}

	existing.Name = strings.TrimSpace(req.Name)
	existing.Occupation = req.Occupation
	existing.Content = req.Content
	existing.Rating = req.Rating
	existing.Image = img
	existing.ProjectType = req.ProjectType
	existing.Featured = req.Featured

	if err := h.stores.Testimonials.Update(existing); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update testimonial", "")
		return
	}

	h.invalidate(r.Context(), "testimonials")
	writeJSON(w, http.StatusOK, existing)
}

// DeleteTestimonial removes a testimonial and its CDN asset (best-effort).
func (h *Content) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	existing, err := h.stores.Testimonials.FindByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load testimonial", "")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Testimonial not found", "")
		return
	}

	h.deleteAsset(r.Context(), existing.Image)

	if err := h.stores.Testimonials.Delete(id); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete testimonial", "")
		return
	}

	h.invalidate(r.Context(), "testimonials")
	writeJSON(w, http.StatusOK, map[string]string{"message": "Testimonial deleted"})
}
