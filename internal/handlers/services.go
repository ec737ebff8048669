// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"

	"interia/internal/models"
)

type serviceRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Icon        *string           `json:"icon"`
	Image       ImageInput        `json:"image"`
	Features    models.StringList `json:"features"`
	Position    int               `json:"position"`
}

// ListServices returns all services in display order.
func (h *Content) ListServices(w http.ResponseWriter, r *http.Request) {
	items, err := h.stores.Services.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list services", "")
		return
	}
	writeJSON(w, http.StatusOK, emptyList(items))
}

// GetService returns one service by ID.
func (h *Content) GetService(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	v, err := h.stores.Services.FindByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load service", "")
		return
	}
	if v == nil {
		writeError(w, http.StatusNotFound, "Service not found", "")
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// CreateService creates a service offering.
func (h *Content) CreateService(w http.ResponseWriter, r *http.Request) {
	var req serviceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "Title is required", "")
		return
	}

	img, err := h.resolveImage(r.Context(), req.Image, "services")
	if err != nil {
		writeStorageError(w, err)
		return
	}

	created, err := h.stores.Services.Create(&models.Service{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Icon:        req.Icon,
		Image:       img,
		Features:    req.Features,
		Position:    req.Position,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create service", "")
		return
	}

	h.invalidate(r.Context(), "services")
	writeJSON(w, http.StatusCreated, created)
}

// UpdateService replaces a service. A replaced image's old CDN asset is
// deleted best-effort before the row is saved.
func (h *Content) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	existing, err := h.stores.Services.FindByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load service", "")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Service not found", "")
		return
	}

	var req serviceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "Title is required", "")
		return
	}

	img := existing.Image
	if req.Image.Provided() {
		img, err = h.resolveImage(r.Context(), req.Image, "services")
		if err != nil {
			writeStorageError(w, err)
			return
		}
		h.deleteReplaced(r.Context(), existing.Image, img)
	}

	existing.Title = strings.TrimSpace(req.Title)
	existing.Description = req.Description
	existing.Icon = req.Icon
	existing.Image = img
	existing.Features = req.Features
	existing.Position = req.Position

	if err := h.stores.Services.Update(existing); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update service", "")
		return
	}

	h.invalidate(r.Context(), "services")
	writeJSON(w, http.StatusOK, existing)
}

// DeleteService removes a service and its CDN asset (best-effort).
func (h *Content) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	existing, err := h.stores.Services.FindByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load service", "")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Service not found", "")
		return
	}

	h.deleteAsset(r.Context(), existing.Image)

	if err := h.stores.Services.Delete(id); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete service", "")
		return
	}

	h.invalidate(r.Context(), "services")
	writeJSON(w, http.StatusOK, map[string]string{"message": "Service deleted"})
}
