// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"

	"interia/internal/cache"
	"interia/internal/config"
	"interia/internal/imageurl"
	"interia/internal/mailer"
	"interia/internal/storage"
	"interia/internal/store"
)

// Stores bundles the per-entity database stores injected into Content.
type Stores struct {
	Projects     *store.ProjectStore
	Testimonials *store.TestimonialStore
	Certificates *store.CertificateStore
	Services     *store.ServiceStore
	Stats        *store.StatStore
	SiteImages   *store.SiteImageStore
	SiteSettings *store.SiteSettingStore
	About        *store.AboutStore
	Media        *store.MediaStore
	Users        *store.UserStore
}

// Content groups the entity CRUD handlers plus upload and contact.
type Content struct {
	cfg     *config.Config
	stores  *Stores
	storage *storage.Client // nil when object storage is not configured
	images  *imageurl.Builder
	mail    *mailer.Client
	cache   *cache.ResponseCache // nil when Valkey is not configured
}

// NewContent creates the Content handler group.
func NewContent(cfg *config.Config, stores *Stores, sc *storage.Client, images *imageurl.Builder, mail *mailer.Client, rc *cache.ResponseCache) *Content {
	return &Content{
		cfg:     cfg,
		stores:  stores,
		storage: sc,
		images:  images,
		mail:    mail,
		cache:   rc,
	}
}

// invalidate drops cached list/detail responses for a resource after a write.
func (h *Content) invalidate(ctx context.Context, resources ...string) {
	if h.cache == nil {
		return
	}
	for _, res := range resources {
		h.cache.Invalidate(ctx, res)
	}
}
