// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package imageurl derives optimized delivery URLs from stored image
// references. The CDN applies transformations encoded as a path segment
// between "/upload/" and the asset identifier, so every consumer (project
// galleries, testimonial avatars, hero slides) gets format negotiation,
// quality tuning and device-pixel-ratio scaling from one place.
//
// All functions are pure and total: malformed input is returned unchanged,
// never dropped and never an error. They run inline while building list
// responses.
package imageurl

import (
	"fmt"
	"strings"

	"interia/internal/models"
)

// uploadMarker separates the CDN prefix from the transformation and asset
// segments in a delivery URL.
const uploadMarker = "/upload/"

// DefaultWidths are the responsive breakpoints offered in srcset output.
var DefaultWidths = []int{320, 640, 1024, 1920}

// Variant is one width/URL pair of a responsive set.
type Variant struct {
	Width int    `json:"width"`
	URL   string `json:"url"`
}

// Builder produces transformation URLs. BaseURL is the delivery origin used
// when the input is a bare asset identifier rather than a full URL.
type Builder struct {
	BaseURL string
}

// New returns a Builder for the given CDN delivery origin.
func New(baseURL string) *Builder {
	return &Builder{BaseURL: strings.TrimRight(baseURL, "/")}
}

// AssetID extracts the stable asset identifier from a delivery URL: the
// path after "/upload/", with any transformation segments and version
// prefix ("v123/") stripped, and the file extension removed. A bare
// identifier (no scheme, no upload marker) is returned as-is. Returns
// ("", false) when the input cannot be parsed as a CDN URL.
func AssetID(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}

	idx := strings.Index(raw, uploadMarker)
	if idx < 0 {
		// Bare identifier: no scheme and no upload marker.
		if !strings.Contains(raw, "://") {
			return strings.TrimPrefix(raw, "/"), true
		}
		return "", false
	}

	rest := raw[idx+len(uploadMarker):]
	if rest == "" {
		return "", false
	}

	segments := strings.Split(rest, "/")

	// Skip leading transformation segments ("f_auto,q_auto,w_800,...").
	for len(segments) > 1 && strings.Contains(segments[0], ",") {
		segments = segments[1:]
	}

	// Skip a version prefix ("v1712345678").
	if len(segments) > 1 && isVersionSegment(segments[0]) {
		segments = segments[1:]
	}

	id := strings.Join(segments, "/")
	if id == "" {
		return "", false
	}

	// Strip the extension from the final segment only.
	if dot := strings.LastIndexByte(id, '.'); dot > strings.LastIndexByte(id, '/') {
		id = id[:dot]
	}
	if id == "" {
		return "", false
	}
	return id, true
}

// Optimized returns a delivery URL with automatic format/quality, fill crop
// with automatic gravity, DPR scaling, and the given dimensions. When the
// input is a full URL its own origin is reused; a bare asset identifier is
// resolved against the builder's base URL. Unparseable input is returned
// unchanged, and an empty input yields an empty string.
func (b *Builder) Optimized(raw string, width, height int) string {
	if raw == "" {
		return ""
	}

	transform := fmt.Sprintf("f_auto,q_auto,w_%d,h_%d,c_fill,g_auto,dpr_auto", width, height)

	if idx := strings.Index(raw, uploadMarker); idx >= 0 {
		id, ok := AssetID(raw)
		if !ok {
			return raw
		}
		return raw[:idx] + uploadMarker + transform + "/" + id
	}

	// Bare identifier resolved against the configured delivery origin.
	if !strings.Contains(raw, "://") && b.BaseURL != "" {
		id, ok := AssetID(raw)
		if !ok {
			return raw
		}
		return b.BaseURL + uploadMarker + transform + "/" + id
	}

	// Foreign URL: not ours to rewrite.
	return raw
}

// Responsive returns one optimized URL per candidate width, preserving the
// aspect ratio implied by the base dimensions. Widths default to
// DefaultWidths when empty. Unparseable input yields a single variant with
// the original URL so callers can still render something.
func (b *Builder) Responsive(raw string, baseWidth, baseHeight int, widths []int) []Variant {
	if raw == "" {
		return nil
	}
	if len(widths) == 0 {
		widths = DefaultWidths
	}

	out := make([]Variant, 0, len(widths))
	for _, w := range widths {
		h := scaledHeight(baseWidth, baseHeight, w)
		out = append(out, Variant{Width: w, URL: b.Optimized(raw, w, h)})
	}
	return out
}

// OptimizeRef returns a shallow copy of the reference with only the URL
// rewritten; the asset id is preserved.
func (b *Builder) OptimizeRef(ref models.ImageRef, width, height int) models.ImageRef {
	ref.URL = b.Optimized(ref.URL, width, height)
	return ref
}

// OptimizeProjectImages rewrites the URL of every gallery entry, preserving
// position and featured flags.
func (b *Builder) OptimizeProjectImages(images models.ProjectImages, width, height int) models.ProjectImages {
	if images == nil {
		return nil
	}
	out := make(models.ProjectImages, len(images))
	for i, img := range images {
		img.URL = b.Optimized(img.URL, width, height)
		out[i] = img
	}
	return out
}

// scaledHeight computes the height for a target width preserving the base
// aspect ratio. Falls back to the target width (square) when the base
// dimensions are unusable.
func scaledHeight(baseWidth, baseHeight, targetWidth int) int {
	if baseWidth <= 0 || baseHeight <= 0 {
		return targetWidth
	}
	return int(float64(targetWidth)*float64(baseHeight)/float64(baseWidth) + 0.5)
}

// isVersionSegment reports whether the segment is a version prefix: "v"
// followed by digits only.
func isVersionSegment(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
