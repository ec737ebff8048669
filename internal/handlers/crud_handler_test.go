package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"interia/internal/models"
)

func TestListProjectsEmptyIsArray(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/projects?category=no-such-category", nil)
	rec := httptest.NewRecorder()
	env.Content.ListProjects(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := strings.TrimSpace(rec.Body.String())
	if !strings.HasPrefix(body, "[") {
		t.Errorf("empty list body = %q, want JSON array", body)
	}
	if body == "null" {
		t.Error("empty list serialized as null")
	}
}

func TestCreateProjectValidation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "missing title", body: `{"description":"x"}`, wantStatus: http.StatusBadRequest},
		{name: "bad json", body: `{not json`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			env.Content.CreateProject(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var resp map[string]any
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if resp["message"] == "" {
				t.Error("error body missing message")
			}
		})
	}
}

func TestProjectLifecycle(t *testing.T) {
	env := newTestEnv(t)
	t.Cleanup(func() { cleanProjects(t, env.DB, "handler-loft-remodel") })

	// Create with an external image URL (no storage configured in tests).
	body := `{
		"title": "Handler Loft Remodel",
		"slug": "handler-loft-remodel",
		"category": "residential",
		"images": ["https://example.com/photos/loft.jpg"]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(body))
	rec := httptest.NewRecorder()
	env.Content.CreateProject(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var created models.Project
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if len(created.Images) != 1 || !created.Images[0].Featured {
		t.Errorf("images = %+v, want single featured entry", created.Images)
	}

	// Duplicate slug rejected.
	req = httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(body))
	rec = httptest.NewRecorder()
	env.Content.CreateProject(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("duplicate slug status = %d, want 400", rec.Code)
	}

	// Fetch by slug.
	req = withChiURLParam(httptest.NewRequest(http.MethodGet, "/api/projects/handler-loft-remodel", nil), "id", "handler-loft-remodel")
	rec = httptest.NewRecorder()
	env.Content.GetProject(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("get by slug status = %d, want 200", rec.Code)
	}

	// Delete, then delete again: the second is a clean 404, not a 500.
	req = withChiURLParam(httptest.NewRequest(http.MethodDelete, "/api/projects/"+created.ID.String(), nil), "id", created.ID.String())
	rec = httptest.NewRecorder()
	env.Content.DeleteProject(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d, want 200", rec.Code)
	}

	req = withChiURLParam(httptest.NewRequest(http.MethodDelete, "/api/projects/"+created.ID.String(), nil), "id", created.ID.String())
	rec = httptest.NewRecorder()
	env.Content.DeleteProject(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rec.Code)
	}
}

func TestCreateTestimonialWithoutImage(t *testing.T) {
	env := newTestEnv(t)
	t.Cleanup(func() { cleanTestimonials(t, env.DB, "Handler Reviewer") })

	body := `{"name": "Handler Reviewer", "content": "Wonderful team.", "rating": 4.5}`
	req := httptest.NewRequest(http.MethodPost, "/api/testimonials", strings.NewReader(body))
	rec := httptest.NewRecorder()
	env.Content.CreateTestimonial(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img, present := resp["image"]; !present || img != nil {
		t.Errorf("image = %v (present=%v), want explicit null", img, present)
	}
}

func TestCreateTestimonialRatingBounds(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name       string
		rating     string
		wantStatus int
	}{
		{name: "zero", rating: "0", wantStatus: http.StatusBadRequest},
		{name: "just below min", rating: "0.999", wantStatus: http.StatusBadRequest},
		{name: "just above max", rating: "5.001", wantStatus: http.StatusBadRequest},
		{name: "min", rating: "1", wantStatus: http.StatusCreated},
		{name: "half star", rating: "3.5", wantStatus: http.StatusCreated},
		{name: "max", rating: "5", wantStatus: http.StatusCreated},
	}

	t.Cleanup(func() { cleanTestimonials(t, env.DB, "Rating Bound") })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := `{"name": "Rating Bound", "content": "ok", "rating": ` + tt.rating + `}`
			req := httptest.NewRequest(http.MethodPost, "/api/testimonials", strings.NewReader(body))
			rec := httptest.NewRecorder()
			env.Content.CreateTestimonial(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("rating %s: status = %d, want %d", tt.rating, rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestCreateTestimonialBadImagePayload(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name  string
		image string
	}{
		{name: "disallowed type", image: `"data:text/html;base64,PGh0bWw+"`},
		{name: "invalid base64", image: `"data:image/png;base64,!!!not-base64!!!"`},
		{name: "empty payload", image: `"data:image/png;base64,"`},
		{name: "wrong field shape", image: `123`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := `{"name": "Bad Image", "content": "ok", "rating": 3, "image": ` + tt.image + `}`
			req := httptest.NewRequest(http.MethodPost, "/api/testimonials", strings.NewReader(body))
			rec := httptest.NewRecorder()
			env.Content.CreateTestimonial(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400: %s", rec.Code, rec.Body.String())
			}
			var resp map[string]any
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if resp["message"] != "Invalid image payload" {
				t.Errorf("message = %v", resp["message"])
			}
		})
	}
}

func TestListCertificatesActiveFilterParam(t *testing.T) {
	env := newTestEnv(t)
	t.Cleanup(func() { cleanCertificates(t, env.DB, "Active Cert", "Retired Cert") })

	for _, c := range []string{
		`{"title": "Active Cert", "issuing_organization": "Org", "issue_date": "2024-05-01T00:00:00Z", "is_active": true}`,
		`{"title": "Retired Cert", "issuing_organization": "Org", "issue_date": "2020-05-01T00:00:00Z", "is_active": false}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/certificates", strings.NewReader(c))
		rec := httptest.NewRecorder()
		env.Content.CreateCertificate(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("create status = %d: %s", rec.Code, rec.Body.String())
		}
	}

	// Both spellings of the active filter select the same subset.
	for _, query := range []string{"isActive=false", "is_active=false"} {
		req := httptest.NewRequest(http.MethodGet, "/api/certificates?"+query, nil)
		rec := httptest.NewRecorder()
		env.Content.ListCertificates(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d", query, rec.Code)
		}
		var items []models.Certificate
		if err := json.NewDecoder(rec.Body).Decode(&items); err != nil {
			t.Fatalf("%s: decode: %v", query, err)
		}
		for _, c := range items {
			if c.IsActive {
				t.Errorf("%s: active certificate %q in inactive listing", query, c.Title)
			}
		}
		found := false
		for _, c := range items {
			if c.Title == "Retired Cert" {
				found = true
			}
		}
		if !found {
			t.Errorf("%s: Retired Cert missing from listing", query)
		}
	}
}

func TestGetMediaByCategoryTag(t *testing.T) {
	env := newTestEnv(t)

	// A non-UUID path parameter lists the category instead of 400ing.
	req := withChiURLParam(httptest.NewRequest(http.MethodGet, "/api/images/no-such-tag", nil), "id", "no-such-tag")
	rec := httptest.NewRecorder()
	env.Content.GetMedia(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	body := strings.TrimSpace(rec.Body.String())
	if !strings.HasPrefix(body, "[") {
		t.Errorf("body = %q, want JSON array", body)
	}
}

func TestListCertificatesRejectsUnknownCategory(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/certificates?category=bogus", nil)
	rec := httptest.NewRecorder()
	env.Content.ListCertificates(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestStatLifecycle(t *testing.T) {
	env := newTestEnv(t)
	t.Cleanup(func() { cleanStats(t, env.DB, "Projects Completed") })

	body := `{"label": "Projects Completed", "value": "250+", "position": 1}`
	req := httptest.NewRequest(http.MethodPost, "/api/stats", strings.NewReader(body))
	rec := httptest.NewRecorder()
	env.Content.CreateStat(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var created models.Stat
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// The "+" suffix survives the round-trip: value is free-form text.
	if created.Value != "250+" {
		t.Errorf("value = %q, want %q", created.Value, "250+")
	}
}

func TestGetMissingReturns404(t *testing.T) {
	env := newTestEnv(t)
	missing := "0e4fdcf8-1fba-49ab-a59e-d7f2b9c0a001"

	checks := []struct {
		name string
		h    http.HandlerFunc
	}{
		{"testimonial", env.Content.GetTestimonial},
		{"certificate", env.Content.GetCertificate},
		{"service", env.Content.GetService},
		{"stat", env.Content.GetStat},
		{"site image", env.Content.GetSiteImage},
		{"media", env.Content.GetMedia},
	}

	for _, c := range checks {
		t.Run(c.name, func(t *testing.T) {
			req := withChiURLParam(httptest.NewRequest(http.MethodGet, "/x/"+missing, nil), "id", missing)
			rec := httptest.NewRecorder()
			c.h(rec, req)
			if rec.Code != http.StatusNotFound {
				t.Errorf("status = %d, want 404", rec.Code)
			}
		})
	}
}

func TestGetBadUUIDReturns400(t *testing.T) {
	env := newTestEnv(t)

	req := withChiURLParam(httptest.NewRequest(http.MethodGet, "/x/not-a-uuid", nil), "id", "not-a-uuid")
	rec := httptest.NewRecorder()
	env.Content.GetTestimonial(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
