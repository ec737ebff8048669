package storage

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

// TestIsDataURI distinguishes inline payloads from URLs and identifiers.
func TestIsDataURI(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "png data uri", in: "data:image/png;base64,iVBORw0KGgo=", want: true},
		{name: "jpeg data uri", in: "data:image/jpeg;base64,/9j/4AAQ", want: true},
		{name: "http url", in: "https://cdn.example/upload/a.jpg", want: false},
		{name: "bare asset id", in: "projects/kitchen", want: false},
		{name: "data without base64 marker", in: "data:image/png,rawbytes", want: false},
		{name: "empty", in: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDataURI(tt.in); got != tt.want {
				t.Errorf("IsDataURI(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// TestDecodeDataURI verifies type checks, payload decoding, and size limits.
func TestDecodeDataURI(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("fake image bytes"))

	t.Run("valid png", func(t *testing.T) {
		ct, data, err := DecodeDataURI("data:image/png;base64," + payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ct != "image/png" {
			t.Errorf("content type = %q, want image/png", ct)
		}
		if string(data) != "fake image bytes" {
			t.Errorf("decoded data = %q", data)
		}
	})

	t.Run("disallowed type", func(t *testing.T) {
		if _, _, err := DecodeDataURI("data:application/pdf;base64," + payload); err == nil {
			t.Fatal("expected error for disallowed type")
		}
	})

	t.Run("invalid base64", func(t *testing.T) {
		if _, _, err := DecodeDataURI("data:image/png;base64,!!!not-base64!!!"); err == nil {
			t.Fatal("expected error for invalid base64")
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		if _, _, err := DecodeDataURI("data:image/png;base64,"); err == nil {
			t.Fatal("expected error for empty payload")
		}
	})

	t.Run("oversized payload", func(t *testing.T) {
		big := base64.StdEncoding.EncodeToString(make([]byte, maxInlineSize+1))
		if _, _, err := DecodeDataURI("data:image/png;base64," + big); err == nil {
			t.Fatal("expected error for oversized payload")
		}
	})

	t.Run("not a data uri", func(t *testing.T) {
		if _, _, err := DecodeDataURI("https://cdn.example/a.jpg"); err == nil {
			t.Fatal("expected error for plain URL")
		}
	})
}

// TestDecodeDataURIMarksClientErrors — every decode failure carries
// ErrInvalidImage so callers can answer 400 instead of an upstream status.
func TestDecodeDataURIMarksClientErrors(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("fake image bytes"))
	big := base64.StdEncoding.EncodeToString(make([]byte, maxInlineSize+1))

	tests := []struct {
		name string
		in   string
	}{
		{name: "disallowed type", in: "data:text/html;base64," + payload},
		{name: "invalid base64", in: "data:image/png;base64,!!!not-base64!!!"},
		{name: "empty payload", in: "data:image/png;base64,"},
		{name: "oversized payload", in: "data:image/png;base64," + big},
		{name: "not a data uri", in: "https://cdn.example/a.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeDataURI(tt.in)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrInvalidImage) {
				t.Errorf("error %v does not wrap ErrInvalidImage", err)
			}
		})
	}
}

// TestFileURL prefers the CDN origin and falls back to path-style bucket URLs.
func TestFileURL(t *testing.T) {
	withCDN := &Client{endpoint: "https://s3.example", bucket: "interia-media", cdnBase: "https://cdn.interia.example"}
	if got := withCDN.FileURL("projects/a"); got != "https://cdn.interia.example/upload/projects/a" {
		t.Errorf("FileURL with CDN = %q", got)
	}

	withoutCDN := &Client{endpoint: "https://s3.example", bucket: "interia-media"}
	if got := withoutCDN.FileURL("projects/a"); got != "https://s3.example/interia-media/projects/a" {
		t.Errorf("FileURL without CDN = %q", got)
	}
}

// TestNewUnconfigured returns (nil, nil) so the app can start without storage.
func TestNewUnconfigured(t *testing.T) {
	c, err := New("", "us-east-1", "", "", "bucket", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != nil {
		t.Error("expected nil client for unconfigured storage")
	}
}

// TestNewTrimsSlashes normalizes endpoint and CDN origins.
func TestNewTrimsSlashes(t *testing.T) {
	c, err := New("https://s3.example/", "us-east-1", "key", "secret", "bucket", "https://cdn.example/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c == nil {
		t.Fatal("expected client")
	}
	if strings.HasSuffix(c.endpoint, "/") || strings.HasSuffix(c.cdnBase, "/") {
		t.Errorf("origins not trimmed: endpoint=%q cdnBase=%q", c.endpoint, c.cdnBase)
	}
}
