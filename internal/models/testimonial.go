// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Rating bounds for testimonials. Half-star values are allowed.
const (
	RatingMin = 1.0
	RatingMax = 5.0
)

// Testimonial is a client review displayed on the public site.
type Testimonial struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Occupation  string    `json:"occupation"`
	Content     string    `json:"content"`
	Rating      float64   `json:"rating"`
	Image       *ImageRef `json:"image"`
	ProjectType string    `json:"project_type"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ValidRating reports whether a rating falls within the allowed range.
func ValidRating(r float64) bool {
	return r >= RatingMin && r <= RatingMax
}
