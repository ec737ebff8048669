// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"

	"interia/internal/models"
	"interia/internal/storage"
)

type siteSettingsRequest struct {
	Logo        ImageInput        `json:"logo"`
	HeroImages  []json.RawMessage `json:"hero_images"`
	ContactInfo models.JSONMap    `json:"contact_info"`
	SocialMedia models.JSONMap    `json:"social_media"`
}

// GetSiteSettings returns the singleton settings document, creating the
// default row on first access.
func (h *Content) GetSiteSettings(w http.ResponseWriter, r *http.Request) {
	st, err := h.stores.SiteSettings.Get()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load site settings", "")
		return
	}
	if st.Logo != nil {
		opt := h.images.OptimizeRef(*st.Logo, logoWidth, logoHeight)
		st.Logo = &opt
	}
	for i := range st.HeroImages {
		st.HeroImages[i].URL = h.images.Optimized(st.HeroImages[i].URL, heroWidth, heroHeight)
	}
	writeJSON(w, http.StatusOK, st)
}

// UpdateSiteSettings replaces the settings document. Replaced logo and hero
// assets are deleted from the CDN best-effort before saving.
func (h *Content) UpdateSiteSettings(w http.ResponseWriter, r *http.Request) {
	existing, err := h.stores.SiteSettings.Get()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load site settings", "")
		return
	}

	var req siteSettingsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	logo := existing.Logo
	if req.Logo.Provided() {
		logo, err = h.resolveImage(r.Context(), req.Logo, "site")
		if err != nil {
			writeStorageError(w, err)
			return
		}
		h.deleteReplaced(r.Context(), existing.Logo, logo)
	}

	heroes := existing.HeroImages
	if req.HeroImages != nil {
		heroes, err = h.resolveHeroImages(r, req.HeroImages)
		if err != nil {
			writeStorageError(w, err)
			return
		}
		h.deleteDroppedHeroes(r, existing.HeroImages, heroes)
	}

	updated := &models.SiteSettings{
		Logo:        logo,
		HeroImages:  heroes,
		ContactInfo: existing.ContactInfo,
		SocialMedia: existing.SocialMedia,
	}
	if req.ContactInfo != nil {
		updated.ContactInfo = req.ContactInfo
	}
	if req.SocialMedia != nil {
		updated.SocialMedia = req.SocialMedia
	}

	if err := h.stores.SiteSettings.Update(updated); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update site settings", "")
		return
	}

	h.invalidate(r.Context(), "site-settings")
	writeJSON(w, http.StatusOK, updated)
}

// UpdateLogo replaces only the logo, deleting the previous CDN asset
// best-effort.
func (h *Content) UpdateLogo(w http.ResponseWriter, r *http.Request) {
	existing, err := h.stores.SiteSettings.Get()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load site settings", "")
		return
	}

	var req struct {
		Logo ImageInput `json:"logo"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	logo, err := h.resolveImage(r.Context(), req.Logo, "site")
	if err != nil {
		writeStorageError(w, err)
		return
	}
	h.deleteReplaced(r.Context(), existing.Logo, logo)

	if err := h.stores.SiteSettings.UpdateLogo(logo); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update logo", "")
		return
	}

	h.invalidate(r.Context(), "site-settings")
	writeJSON(w, http.StatusOK, map[string]any{"logo": logo})
}

// UpdateHeroImages replaces only the hero image list.
func (h *Content) UpdateHeroImages(w http.ResponseWriter, r *http.Request) {
	existing, err := h.stores.SiteSettings.Get()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load site settings", "")
		return
	}

	var req struct {
		HeroImages []json.RawMessage `json:"hero_images"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	heroes, err := h.resolveHeroImages(r, req.HeroImages)
	if err != nil {
		writeStorageError(w, err)
		return
	}
	h.deleteDroppedHeroes(r, existing.HeroImages, heroes)

	if err := h.stores.SiteSettings.UpdateHeroImages(heroes); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update hero images", "")
		return
	}

	h.invalidate(r.Context(), "site-settings")
	writeJSON(w, http.StatusOK, map[string]any{"hero_images": heroes})
}

// resolveHeroImages materializes a hero list payload of data URIs, bare
// URLs, and existing objects, in order.
func (h *Content) resolveHeroImages(r *http.Request, raw []json.RawMessage) (models.HeroImages, error) {
	heroes := make(models.HeroImages, 0, len(raw))
	for _, entry := range raw {
		var s string
		if err := json.Unmarshal(entry, &s); err == nil {
			if s == "" {
				continue
			}
			if storage.IsDataURI(s) {
				contentType, data, err := storage.DecodeDataURI(s)
				if err != nil {
					return nil, err
				}
				if h.storage == nil {
					return nil, errNoStorage
				}
				assetID, url, err := h.storage.UploadBytes(r.Context(), "site", contentType, data)
				if err != nil {
					return nil, err
				}
				heroes = append(heroes, models.HeroImage{URL: url, AssetID: assetID})
			} else {
				heroes = append(heroes, models.HeroImage{URL: s})
			}
			continue
		}

		var hi models.HeroImage
		if err := json.Unmarshal(entry, &hi); err != nil {
			return nil, err
		}
		if hi.URL == "" && hi.AssetID == "" {
			continue
		}
		heroes = append(heroes, hi)
	}
	// List order is carousel order.
	for i := range heroes {
		heroes[i].Position = i
	}
	return heroes, nil
}

// deleteDroppedHeroes removes CDN assets for hero entries that the new
// list no longer references. Best-effort.
func (h *Content) deleteDroppedHeroes(r *http.Request, old, next models.HeroImages) {
	kept := make(map[string]bool, len(next))
	for _, hi := range next {
		kept[hi.AssetID] = true
	}
	for _, hi := range old {
		if hi.AssetID != "" && !kept[hi.AssetID] {
			h.deleteAsset(r.Context(), &models.ImageRef{URL: hi.URL, AssetID: hi.AssetID})
		}
	}
}
