// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"interia/internal/models"
	"interia/internal/store"
)

// Delivery dimensions per category, applied when optimizing CDN URLs.
const (
	logoWidth  = 400
	logoHeight = 400
	heroWidth  = 1920
	heroHeight = 1080
	siteWidth  = 800
	siteHeight = 600
)

type siteImageRequest struct {
	Category models.SiteImageCategory `json:"category"`
	Section  string                   `json:"section"`
	Title    string                   `json:"title"`
	Image    ImageInput               `json:"image"`
	AltText  string                   `json:"alt_text"`
	Active   *bool                    `json:"active"`
	Position int                      `json:"position"`
	Variant  models.SiteImageVariant  `json:"variant"`
}

func (req *siteImageRequest) validate() string {
	if !models.ValidSiteImageCategory(req.Category) {
		return "Unknown site image category"
	}
	if !models.ValidSiteImageVariant(req.Variant) {
		return "Unknown site image variant"
	}
	return ""
}

// deliverySize returns the optimization dimensions for a category.
func deliverySize(c models.SiteImageCategory) (int, int) {
	switch c {
	case models.SiteImageLogo:
		return logoWidth, logoHeight
	case models.SiteImageHero:
		return heroWidth, heroHeight
	default:
		return siteWidth, siteHeight
	}
}

// ListSiteImages returns placed images, optionally filtered by ?category=,
// ?section= and ?active=. Delivery URLs are rewritten with transformation
// parameters sized for the category.
func (h *Content) ListSiteImages(w http.ResponseWriter, r *http.Request) {
	f := store.SiteImageFilter{
		Category: models.SiteImageCategory(r.URL.Query().Get("category")),
		Section:  r.URL.Query().Get("section"),
	}
	if f.Category != "" && !models.ValidSiteImageCategory(f.Category) {
		writeError(w, http.StatusBadRequest, "Unknown site image category", string(f.Category))
		return
	}
	switch r.URL.Query().Get("active") {
	case "true":
		v := true
		f.Active = &v
	case "false":
		v := false
		f.Active = &v
	}

	items, err := h.stores.SiteImages.List(f)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list site images", "")
		return
	}

	for i := range items {
		wpx, hpx := deliverySize(items[i].Category)
		items[i].Image = h.images.OptimizeRef(items[i].Image, wpx, hpx)
	}
	writeJSON(w, http.StatusOK, emptyList(items))
}

// GetSiteImage returns one placed image by ID.
func (h *Content) GetSiteImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	si, err := h.stores.SiteImages.FindByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load site image", "")
		return
	}
	if si == nil {
		writeError(w, http.StatusNotFound, "Site image not found", "")
		return
	}
	wpx, hpx := deliverySize(si.Category)
	si.Image = h.images.OptimizeRef(si.Image, wpx, hpx)
	writeJSON(w, http.StatusOK, si)
}

// CreateSiteImage creates a placed image. The image payload is required.
func (h *Content) CreateSiteImage(w http.ResponseWriter, r *http.Request) {
	var req siteImageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg, "")
		return
	}

	img, err := h.resolveImage(r.Context(), req.Image, "site")
	if err != nil {
		writeStorageError(w, err)
		return
	}
	if img == nil {
		writeError(w, http.StatusBadRequest, "Image is required", "")
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	created, err := h.stores.SiteImages.Create(&models.SiteImage{
		Category: req.Category,
		Section:  req.Section,
		Title:    req.Title,
		Image:    *img,
		AltText:  req.AltText,
		Active:   active,
		Position: req.Position,
		Variant:  req.Variant,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create site image", "")
		return
	}

	h.invalidate(r.Context(), "site-images")
	writeJSON(w, http.StatusCreated, created)
}

// UpdateSiteImage replaces a placed image. A replaced asset is deleted from
// the CDN best-effort before the row is saved.
func (h *Content) UpdateSiteImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	existing, err := h.stores.SiteImages.FindByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load site image", "")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Site image not found", "")
		return
	}

	var req siteImageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg, "")
		return
	}

	img := existing.Image
	if req.Image.Provided() {
		resolved, err := h.resolveImage(r.Context(), req.Image, "site")
		if err != nil {
			writeStorageError(w, err)
			return
		}
		if resolved == nil {
			writeError(w, http.StatusBadRequest, "Image is required", "")
			return
		}
		h.deleteReplaced(r.Context(), &existing.Image, resolved)
		img = *resolved
	}

	existing.Category = req.Category
	existing.Section = req.Section
	existing.Title = req.Title
	existing.Image = img
	existing.AltText = req.AltText
	if req.Active != nil {
		existing.Active = *req.Active
	}
	existing.Position = req.Position
	existing.Variant = req.Variant

	if err := h.stores.SiteImages.Update(existing); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update site image", "")
		return
	}

	h.invalidate(r.Context(), "site-images")
	writeJSON(w, http.StatusOK, existing)
}

// DeleteSiteImage removes a placed image and its CDN asset (best-effort).
func (h *Content) DeleteSiteImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	existing, err := h.stores.SiteImages.FindByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load site image", "")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Site image not found", "")
		return
	}

	h.deleteAsset(r.Context(), &existing.Image)

	if err := h.stores.SiteImages.Delete(id); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete site image", "")
		return
	}

	h.invalidate(r.Context(), "site-images")
	writeJSON(w, http.StatusOK, map[string]string{"message": "Site image deleted"})
}
