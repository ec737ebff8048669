// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"interia/internal/models"
)

type aboutRequest struct {
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Mission       *string           `json:"mission"`
	Vision        *string           `json:"vision"`
	Values        models.StringList `json:"values"`
	FeaturedImage ImageInput        `json:"featured_image"`
}

// GetAbout returns the singleton about document, creating the default row
// on first access.
func (h *Content) GetAbout(w http.ResponseWriter, r *http.Request) {
	a, err := h.stores.About.Get()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load about", "")
		return
	}
	if a.FeaturedImage != nil {
		opt := h.images.OptimizeRef(*a.FeaturedImage, siteWidth, siteHeight)
		a.FeaturedImage = &opt
	}
	writeJSON(w, http.StatusOK, a)
}

// UpdateAbout replaces the about document. A replaced featured image's old
// CDN asset is deleted best-effort before saving.
func (h *Content) UpdateAbout(w http.ResponseWriter, r *http.Request) {
	existing, err := h.stores.About.Get()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load about", "")
		return
	}

	var req aboutRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	img := existing.FeaturedImage
	if req.FeaturedImage.Provided() {
		img, err = h.resolveImage(r.Context(), req.FeaturedImage, "about")
		if err != nil {
			writeStorageError(w, err)
			return
		}
		h.deleteReplaced(r.Context(), existing.FeaturedImage, img)
	}

	updated := &models.About{
		Title:         req.Title,
		Description:   req.Description,
		Mission:       req.Mission,
		Vision:        req.Vision,
		Values:        req.Values,
		FeaturedImage: img,
	}
	if err := h.stores.About.Update(updated); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update about", "")
		return
	}

	h.invalidate(r.Context(), "about")
	writeJSON(w, http.StatusOK, updated)
}
