// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"

	"interia/internal/models"
)

type statRequest struct {
	Label    string  `json:"label"`
	Value    string  `json:"value"`
	Icon     *string `json:"icon"`
	Position int     `json:"position"`
}

// ListStats returns all headline stats in display order.
func (h *Content) ListStats(w http.ResponseWriter, r *http.Request) {
	items, err := h.stores.Stats.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list stats", "")
		return
	}
	writeJSON(w, http.StatusOK, emptyList(items))
}

// GetStat returns one stat by ID.
func (h *Content) GetStat(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	st, err := h.stores.Stats.FindByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load stat", "")
		return
	}
	if st == nil {
		writeError(w, http.StatusNotFound, "Stat not found", "")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// CreateStat creates a headline figure.
func (h *Content) CreateStat(w http.ResponseWriter, r *http.Request) {
	var req statRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Label) == "" || strings.TrimSpace(req.Value) == "" {
		writeError(w, http.StatusBadRequest, "Label and value are required", "")
		return
	}

	created, err := h.stores.Stats.Create(&models.Stat{
		Label:    strings.TrimSpace(req.Label),
		Value:    strings.TrimSpace(req.Value),
		Icon:     req.Icon,
		Position: req.Position,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create stat", "")
		return
	}

	h.invalidate(r.Context(), "stats")
	writeJSON(w, http.StatusCreated, created)
}

// UpdateStat replaces a stat.
func (h *Content) UpdateStat(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	existing, err := h.stores.Stats.FindByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load stat", "")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Stat not found", "")
		return
	}

	var req statRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Label) == "" || strings.TrimSpace(req.Value) == "" {
		writeError(w, http.StatusBadRequest, "Label and value are required", "")
		return
	}

	existing.Label = strings.TrimSpace(req.Label)
	existing.Value = strings.TrimSpace(req.Value)
	existing.Icon = req.Icon
	existing.Position = req.Position

	if err := h.stores.Stats.Update(existing); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update stat", "")
		return
	}

	h.invalidate(r.Context(), "stats")
	writeJSON(w, http.StatusOK, existing)
}

// DeleteStat removes a stat.
func (h *Content) DeleteStat(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	existing, err := h.stores.Stats.FindByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load stat", "")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Stat not found", "")
		return
	}

	if err := h.stores.Stats.Delete(id); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete stat", "")
		return
	}

	h.invalidate(r.Context(), "stats")
	writeJSON(w, http.StatusOK, map[string]string{"message": "Stat deleted"})
}
