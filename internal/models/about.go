// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// About is the singleton about-page document. Exactly one row exists at any
// time, pinned to id 1 at the storage layer.
type About struct {
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Mission       *string    `json:"mission"`
	Vision        *string    `json:"vision"`
	Values        StringList `json:"values"`
	FeaturedImage *ImageRef  `json:"featured_image"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
