// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Media is an ad hoc uploaded image outside the typed entities, tagged with
// a free-form category. The binary lives on the CDN; this row is metadata.
type Media struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	AssetID   string    `json:"asset_id"`
	Category  string    `json:"category"`
	Section   *string   `json:"section"`
	AltText   *string   `json:"alt_text"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// Ref returns the media row's image reference.
func (m *Media) Ref() ImageRef {
	return ImageRef{URL: m.URL, AssetID: m.AssetID}
}
