// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// SiteImageCategory identifies where on the public site an image is used.
type SiteImageCategory string

const (
	SiteImageHero        SiteImageCategory = "hero"
	SiteImageLogo        SiteImageCategory = "logo"
	SiteImageAbout       SiteImageCategory = "about"
	SiteImageTestimonial SiteImageCategory = "testimonial"
)

// ValidSiteImageCategory reports whether the value is a known category.
func ValidSiteImageCategory(c SiteImageCategory) bool {
	switch c {
	case SiteImageHero, SiteImageLogo, SiteImageAbout, SiteImageTestimonial:
		return true
	}
	return false
}

// SiteImageVariant selects a theme-specific image (light/dark logo).
// The empty variant means theme-independent.
type SiteImageVariant string

const (
	VariantLight SiteImageVariant = "light"
	VariantDark  SiteImageVariant = "dark"
	VariantNone  SiteImageVariant = ""
)

// ValidSiteImageVariant reports whether the value is a known variant.
func ValidSiteImageVariant(v SiteImageVariant) bool {
	return v == VariantLight || v == VariantDark || v == VariantNone
}

// SiteImage is a placed image asset on the public site (hero slides, logos,
// section illustrations), keyed by category and section.
type SiteImage struct {
	ID        uuid.UUID         `json:"id"`
	Category  SiteImageCategory `json:"category"`
	Section   string            `json:"section"`
	Title     string            `json:"title"`
	Image     ImageRef          `json:"image"`
	AltText   string            `json:"alt_text"`
	Active    bool              `json:"active"`
	Position  int               `json:"position"`
	Variant   SiteImageVariant  `json:"variant"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
