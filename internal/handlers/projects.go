// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"interia/internal/models"
	"interia/internal/slug"
	"interia/internal/storage"
)

// projectRequest is the write payload for projects. Gallery entries may be
// data URIs (new uploads) or existing reference objects.
type projectRequest struct {
	Title       string            `json:"title"`
	Slug        string            `json:"slug"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Images      []json.RawMessage `json:"images"`
	Featured    bool              `json:"featured"`
}

// ListProjects returns all projects, optionally filtered by ?category=.
func (h *Content) ListProjects(w http.ResponseWriter, r *http.Request) {
	items, err := h.stores.Projects.List(r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list projects", "")
		return
	}
	writeJSON(w, http.StatusOK, emptyList(items))
}

// GetProject returns one project by UUID or slug. Slug lookup keeps public
// portfolio URLs readable.
func (h *Content) GetProject(w http.ResponseWriter, r *http.Request) {
	param := chi.URLParam(r, "id")

	var p *models.Project
	var err error
	if id, parseErr := uuid.Parse(param); parseErr == nil {
		p, err = h.stores.Projects.FindByID(id)
	} else {
		p, err = h.stores.Projects.FindBySlug(param)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load project", "")
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "Project not found", "")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// CreateProject creates a portfolio project, uploading any inline gallery
// images first. An upload failure aborts the whole create.
func (h *Content) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "Title is required", "")
		return
	}
	if req.Slug == "" {
		req.Slug = slug.Generate(req.Title)
	}

	taken, err := h.stores.Projects.SlugExists(req.Slug, uuid.Nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to check slug", "")
		return
	}
	if taken {
		writeError(w, http.StatusBadRequest, "Slug already in use", req.Slug)
		return
	}

	images, err := h.resolveGallery(r, req.Images)
	if err != nil {
		writeStorageError(w, err)
		return
	}

	created, err := h.stores.Projects.Create(&models.Project{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Category:    req.Category,
		Images:      images,
		Featured:    req.Featured,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create project", "")
		return
	}

	h.invalidate(r.Context(), "projects")
	writeJSON(w, http.StatusCreated, created)
}

// UpdateProject replaces a project. Gallery assets dropped by the edit are
// deleted from the CDN best-effort before the row is saved.
func (h *Content) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	existing, err := h.stores.Projects.FindByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load project", "")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Project not found", "")
		return
	}

	var req projectRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "Title is required", "")
		return
	}
	if req.Slug == "" {
		req.Slug = existing.Slug
	}

	taken, err := h.stores.Projects.SlugExists(req.Slug, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to check slug", "")
		return
	}
	if taken {
		writeError(w, http.StatusBadRequest, "Slug already in use", req.Slug)
		return
	}

	images, err := h.resolveGallery(r, req.Images)
	if err != nil {
		writeStorageError(w, err)
		return
	}

	// Remove assets the edit no longer references.
	kept := make(map[string]bool, len(images))
	for _, img := range images {
		kept[img.AssetID] = true
	}
	for _, old := range existing.Images {
		if old.AssetID != "" && !kept[old.AssetID] {
			h.deleteAsset(r.Context(), &models.ImageRef{URL: old.URL, AssetID: old.AssetID})
		}
	}

	existing.Title = req.Title
	existing.Slug = req.Slug
	existing.Description = req.Description
	existing.Category = req.Category
	existing.Images = images
	existing.Featured = req.Featured

	if err := h.stores.Projects.Update(existing); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update project", "")
		return
	}

	h.invalidate(r.Context(), "projects")
	writeJSON(w, http.StatusOK, existing)
}

// DeleteProject removes a project and its CDN assets. Asset deletion is
// best-effort; the row always goes.
func (h *Content) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	existing, err := h.stores.Projects.FindByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load project", "")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Project not found", "")
		return
	}

	for _, img := range existing.Images {
		if img.AssetID != "" {
			h.deleteAsset(r.Context(), &models.ImageRef{URL: img.URL, AssetID: img.AssetID})
		}
	}

	if err := h.stores.Projects.Delete(id); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete project", "")
		return
	}

	h.invalidate(r.Context(), "projects")
	writeJSON(w, http.StatusOK, map[string]string{"message": "Project deleted"})
}

// resolveGallery materializes a mixed gallery payload: each entry is either
// a data-URI string, a bare URL string, or a gallery object. Entry order
// becomes display position; the first entry is featured unless the payload
// flags another.
func (h *Content) resolveGallery(r *http.Request, raw []json.RawMessage) (models.ProjectImages, error) {
	images := make(models.ProjectImages, 0, len(raw))
	hasFeatured := false

	for i, entry := range raw {
		var s string
		if err := json.Unmarshal(entry, &s); err == nil {
			if s == "" {
				continue
			}
			if storage.IsDataURI(s) {
				if h.storage == nil {
					return nil, errNoStorage
				}
				assetID, url, err := h.storage.UploadDataURI(r.Context(), "projects", s)
				if err != nil {
					return nil, err
				}
				images = append(images, models.ProjectImage{URL: url, AssetID: assetID, Position: i})
			} else {
				images = append(images, models.ProjectImage{URL: s, Position: i})
			}
			continue
		}

		var img models.ProjectImage
		if err := json.Unmarshal(entry, &img); err != nil {
			return nil, err
		}
		if img.URL == "" && img.AssetID == "" {
			continue
		}
		img.Position = i
		if img.Featured {
			hasFeatured = true
		}
		images = append(images, img)
	}

	if !hasFeatured && len(images) > 0 {
		images[0].Featured = true
	}
	return images, nil
}
