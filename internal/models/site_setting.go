// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// SiteSettings is the singleton site configuration document. Exactly one
// row exists at any time, pinned to id 1 at the storage layer.
type SiteSettings struct {
	Logo        *ImageRef  `json:"logo"`
	HeroImages  HeroImages `json:"hero_images"`
	ContactInfo JSONMap    `json:"contact_info"`
	SocialMedia JSONMap    `json:"social_media"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
