// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"interia/internal/models"
)

type mediaRequest struct {
	Image    ImageInput `json:"image"`
	Category string     `json:"category"`
	Section  *string    `json:"section"`
	AltText  *string    `json:"alt_text"`
	Title    string     `json:"title"`
}

// ListMedia returns uploaded media rows, optionally filtered by ?category=.
func (h *Content) ListMedia(w http.ResponseWriter, r *http.Request) {
	items, err := h.stores.Media.List(r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list images", "")
		return
	}
	writeJSON(w, http.StatusOK, emptyList(items))
}

// GetMedia returns one media row by ID. A non-UUID parameter is treated as
// a category tag and lists that category instead, so /api/images/hero and
// /api/images/<uuid> share one route.
func (h *Content) GetMedia(w http.ResponseWriter, r *http.Request) {
	param := chi.URLParam(r, "id")
	id, err := uuid.Parse(param)
	if err != nil {
		items, err := h.stores.Media.List(param)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to list images", "")
			return
		}
		writeJSON(w, http.StatusOK, emptyList(items))
		return
	}
	m, err := h.stores.Media.FindByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load image", "")
		return
	}
	if m == nil {
		writeError(w, http.StatusNotFound, "Image not found", "")
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// CreateMedia uploads a new ad hoc image. The payload image must be a data
// URI; the upload happens before the metadata row is written.
func (h *Content) CreateMedia(w http.ResponseWriter, r *http.Request) {
	var req mediaRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	folder := "media"
	if req.Category != "" {
		folder = "media/" + strings.TrimSpace(req.Category)
	}
	img, err := h.resolveImage(r.Context(), req.Image, folder)
	if err != nil {
		writeStorageError(w, err)
		return
	}
	if img == nil {
		writeError(w, http.StatusBadRequest, "Image is required", "")
		return
	}

	created, err := h.stores.Media.Create(&models.Media{
		URL:      img.URL,
		AssetID:  img.AssetID,
		Category: req.Category,
		Section:  req.Section,
		AltText:  req.AltText,
		Title:    req.Title,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create image", "")
		return
	}

	h.invalidate(r.Context(), "media")
	writeJSON(w, http.StatusCreated, created)
}

// UpdateMedia edits a media row. A new data URI replaces the binary: the
// old asset is deleted best-effort first.
func (h *Content) UpdateMedia(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	existing, err := h.stores.Media.FindByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load image", "")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Image not found", "")
		return
	}

	var req mediaRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Image.Provided() {
		img, err := h.resolveImage(r.Context(), req.Image, "media")
		if err != nil {
			writeStorageError(w, err)
			return
		}
		if img != nil {
			old := existing.Ref()
			h.deleteReplaced(r.Context(), &old, img)
			existing.URL = img.URL
			existing.AssetID = img.AssetID
		}
	}

	if req.Category != "" {
		existing.Category = req.Category
	}
	if req.Section != nil {
		existing.Section = req.Section
	}
	if req.AltText != nil {
		existing.AltText = req.AltText
	}
	if req.Title != "" {
		existing.Title = req.Title
	}

	if err := h.stores.Media.Update(existing); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update image", "")
		return
	}

	h.invalidate(r.Context(), "media")
	writeJSON(w, http.StatusOK, existing)
}

// DeleteMedia removes a media row and its CDN asset. Asset deletion is
// best-effort; a repeated delete of the same row stays a clean 404.
func (h *Content) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	existing, err := h.stores.Media.FindByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load image", "")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Image not found", "")
		return
	}

	ref := existing.Ref()
	h.deleteAsset(r.Context(), &ref)

	if err := h.stores.Media.Delete(id); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete image", "")
		return
	}

	h.invalidate(r.Context(), "media")
	writeJSON(w, http.StatusOK, map[string]string{"message": "Image deleted"})
}
