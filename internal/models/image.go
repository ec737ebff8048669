// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ImageRef is a reference to an asset hosted on the media CDN. AssetID is
// the stable identifier used for transformations and deletion; it is empty
// for legacy external URLs that were never uploaded through the API.
type ImageRef struct {
	URL     string `json:"url"`
	AssetID string `json:"asset_id"`
}

// IsZero reports whether the reference is empty.
func (r ImageRef) IsZero() bool {
	return r.URL == "" && r.AssetID == ""
}

// Managed reports whether the asset lifecycle is owned by this service,
// i.e. the reference carries an asset id that can be deleted from storage.
func (r ImageRef) Managed() bool {
	return r.AssetID != ""
}

// Value marshals the reference for a JSONB column. A nil or zero reference
// is stored as SQL NULL. The pointer receiver lets nullable model fields be
// passed to the driver directly.
func (r *ImageRef) Value() (driver.Value, error) {
	if r == nil || r.IsZero() {
		return nil, nil
	}
	return json.Marshal(r)
}

// Scan accepts JSONB bytes or NULL. Legacy rows holding a bare string URL
// are normalized into a reference with an empty asset id.
func (r *ImageRef) Scan(src any) error {
	if src == nil {
		*r = ImageRef{}
		return nil
	}
	b, err := jsonBytes(src)
	if err != nil {
		return fmt.Errorf("scan image ref: %w", err)
	}
	if len(b) == 0 || string(b) == "null" {
		*r = ImageRef{}
		return nil
	}
	if b[0] == '"' {
		var url string
		if err := json.Unmarshal(b, &url); err != nil {
			return fmt.Errorf("scan legacy image url: %w", err)
		}
		*r = ImageRef{URL: url}
		return nil
	}
	return json.Unmarshal(b, r)
}

// NullableRef returns a pointer form for JSON responses: nil for a zero
// reference so clients see `"image": null` rather than an empty object.
func (r ImageRef) NullableRef() *ImageRef {
	if r.IsZero() {
		return nil
	}
	ref := r
	return &ref
}

// ProjectImage is one entry of a project gallery. Position drives display
// order; at most one entry should be flagged featured.
type ProjectImage struct {
	URL      string `json:"url"`
	AssetID  string `json:"asset_id"`
	Position int    `json:"position"`
	Featured bool   `json:"featured"`
}

// ProjectImages is the ordered gallery stored as a JSONB array.
type ProjectImages []ProjectImage

// Value marshals the gallery for a JSONB column. Nil encodes as an empty array.
func (p ProjectImages) Value() (driver.Value, error) {
	if p == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(p)
}

// Scan decodes a JSONB array. Legacy rows holding an array of bare string
// URLs are normalized into entries with empty asset ids.
func (p *ProjectImages) Scan(src any) error {
	if src == nil {
		*p = nil
		return nil
	}
	b, err := jsonBytes(src)
	if err != nil {
		return fmt.Errorf("scan project images: %w", err)
	}
	if len(b) == 0 || string(b) == "null" {
		*p = nil
		return nil
	}
	if err := json.Unmarshal(b, p); err == nil {
		return nil
	}
	// Legacy shape: ["https://...", "https://..."]
	var urls []string
	if err := json.Unmarshal(b, &urls); err != nil {
		return fmt.Errorf("scan project images: %w", err)
	}
	out := make(ProjectImages, 0, len(urls))
	for i, u := range urls {
		out = append(out, ProjectImage{URL: u, Position: i})
	}
	*p = out
	return nil
}

// HeroImage is one slide of the site-settings hero carousel.
type HeroImage struct {
	URL      string `json:"url"`
	AssetID  string `json:"asset_id"`
	Position int    `json:"position"`
}

// HeroImages is the ordered carousel stored as a JSONB array.
type HeroImages []HeroImage

func (h HeroImages) Value() (driver.Value, error) {
	if h == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(h)
}

func (h *HeroImages) Scan(src any) error {
	if src == nil {
		*h = nil
		return nil
	}
	b, err := jsonBytes(src)
	if err != nil {
		return fmt.Errorf("scan hero images: %w", err)
	}
	if len(b) == 0 || string(b) == "null" {
		*h = nil
		return nil
	}
	return json.Unmarshal(b, h)
}

// StringList is a JSONB-backed list of short strings (service features,
// about-page values).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = nil
		return nil
	}
	b, err := jsonBytes(src)
	if err != nil {
		return fmt.Errorf("scan string list: %w", err)
	}
	if len(b) == 0 || string(b) == "null" {
		*l = nil
		return nil
	}
	return json.Unmarshal(b, l)
}

// JSONMap is a JSONB-backed string map (contact info, social media links).
type JSONMap map[string]string

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(src any) error {
	if src == nil {
		*m = nil
		return nil
	}
	b, err := jsonBytes(src)
	if err != nil {
		return fmt.Errorf("scan json map: %w", err)
	}
	if len(b) == 0 || string(b) == "null" {
		*m = nil
		return nil
	}
	return json.Unmarshal(b, m)
}

// jsonBytes coerces driver values for JSONB columns into raw bytes.
func jsonBytes(src any) ([]byte, error) {
	switch v := src.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported type %T", src)
	}
}
