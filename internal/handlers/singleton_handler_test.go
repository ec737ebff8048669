// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"interia/internal/models"
)

func TestGetSiteSettingsCreatesDefault(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/site-settings", nil)
	rec := httptest.NewRecorder()
	env.Content.GetSiteSettings(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var st models.SiteSettings
	if err := json.NewDecoder(rec.Body).Decode(&st); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if st.Logo != nil {
		t.Errorf("default logo = %+v, want nil", st.Logo)
	}
}

func TestUpdateSiteSettingsPartial(t *testing.T) {
	env := newTestEnv(t)

	// Set contact info only.
	body := `{"contact_info": {"email": "hello@interia.test", "phone": "+40 700 000 000"}}`
	req := httptest.NewRequest(http.MethodPut, "/api/site-settings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	env.Content.UpdateSiteSettings(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", rec.Code, rec.Body.String())
	}

	// A later update of social media must not wipe contact info.
	body = `{"social_media": {"instagram": "https://instagram.com/interia"}}`
	req = httptest.NewRequest(http.MethodPut, "/api/site-settings", strings.NewReader(body))
	rec = httptest.NewRecorder()
	env.Content.UpdateSiteSettings(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("second update status = %d: %s", rec.Code, rec.Body.String())
	}

	var st models.SiteSettings
	if err := json.NewDecoder(rec.Body).Decode(&st); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if st.ContactInfo["email"] != "hello@interia.test" {
		t.Errorf("contact_info lost across partial update: %+v", st.ContactInfo)
	}
	if st.SocialMedia["instagram"] != "https://instagram.com/interia" {
		t.Errorf("social_media = %+v", st.SocialMedia)
	}
}

func TestUpdateHeroImagesOrder(t *testing.T) {
	env := newTestEnv(t)

	body := `{"hero_images": [
		"https://example.com/hero-b.jpg",
		"https://example.com/hero-a.jpg"
	]}`
	req := httptest.NewRequest(http.MethodPut, "/api/site-settings/hero-images", strings.NewReader(body))
	rec := httptest.NewRecorder()
	env.Content.UpdateHeroImages(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		HeroImages models.HeroImages `json:"hero_images"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.HeroImages) != 2 {
		t.Fatalf("got %d hero images, want 2", len(resp.HeroImages))
	}
	for i, hi := range resp.HeroImages {
		if hi.Position != i {
			t.Errorf("hero[%d].Position = %d, want %d", i, hi.Position, i)
		}
	}
	if resp.HeroImages[0].URL != "https://example.com/hero-b.jpg" {
		t.Errorf("payload order not preserved: %+v", resp.HeroImages)
	}
}

func TestAboutRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	body := `{
		"title": "About the Studio",
		"description": "Two decades of residential design.",
		"mission": "Beautiful, livable spaces",
		"values": ["Craftsmanship", "Sustainability"]
	}`
	req := httptest.NewRequest(http.MethodPut, "/api/about", strings.NewReader(body))
	rec := httptest.NewRecorder()
	env.Content.UpdateAbout(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/about", nil)
	rec = httptest.NewRecorder()
	env.Content.GetAbout(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}

	var about models.About
	if err := json.NewDecoder(rec.Body).Decode(&about); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if about.Title != "About the Studio" {
		t.Errorf("title = %q", about.Title)
	}
	if about.Mission == nil || *about.Mission != "Beautiful, livable spaces" {
		t.Errorf("mission = %v", about.Mission)
	}
	if len(about.Values) != 2 || about.Values[0] != "Craftsmanship" {
		t.Errorf("values = %+v", about.Values)
	}
}
