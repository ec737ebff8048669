package models

import "testing"

// TestValidRating verifies range checks including the documented edge values.
func TestValidRating(t *testing.T) {
	tests := []struct {
		name   string
		rating float64
		want   bool
	}{
		{name: "zero", rating: 0, want: false},
		{name: "just below min", rating: 0.999, want: false},
		{name: "min", rating: 1, want: true},
		{name: "half star", rating: 3.5, want: true},
		{name: "max", rating: 5, want: true},
		{name: "just above max", rating: 5.001, want: false},
		{name: "negative", rating: -1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidRating(tt.rating); got != tt.want {
				t.Errorf("ValidRating(%v) = %v, want %v", tt.rating, got, tt.want)
			}
		})
	}
}
