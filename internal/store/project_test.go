package store

import (
	"testing"

	"github.com/google/uuid"

	"interia/internal/models"
)

func TestProjectCRUD(t *testing.T) {
	db := testDB(t)
	s := NewProjectStore(db)
	t.Cleanup(func() { cleanProjects(t, db, "test-coastal-villa") })

	created, err := s.Create(&models.Project{
		Title:       "Test Coastal Villa",
		Slug:        "test-coastal-villa",
		Description: "Full interior refit",
		Category:    "residential",
		Images: models.ProjectImages{
			{URL: "https://cdn.example.com/upload/projects/2026/01/abc", AssetID: "projects/2026/01/abc", Featured: true},
			{URL: "https://cdn.example.com/upload/projects/2026/01/def", AssetID: "projects/2026/01/def", Position: 1},
		},
		Featured: true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("Create returned zero ID")
	}
	if len(created.Images) != 2 {
		t.Fatalf("Create images = %d, want 2", len(created.Images))
	}

	// FindBySlug round-trips the gallery.
	found, err := s.FindBySlug("test-coastal-villa")
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	if found == nil {
		t.Fatal("FindBySlug returned nil for existing project")
	}
	if fi := found.FeaturedImage(); fi == nil || fi.AssetID != "projects/2026/01/abc" {
		t.Errorf("FeaturedImage = %+v, want featured entry", fi)
	}

	// Slug uniqueness check.
	taken, err := s.SlugExists("test-coastal-villa", uuid.Nil)
	if err != nil {
		t.Fatalf("SlugExists: %v", err)
	}
	if !taken {
		t.Error("SlugExists = false for existing slug")
	}
	taken, err = s.SlugExists("test-coastal-villa", created.ID)
	if err != nil {
		t.Fatalf("SlugExists excluding self: %v", err)
	}
	if taken {
		t.Error("SlugExists = true when excluding the owning project")
	}

	// Update replaces the gallery.
	found.Images = found.Images[:1]
	found.Featured = false
	if err := s.Update(found); err != nil {
		t.Fatalf("Update: %v", err)
	}
	after, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID after update: %v", err)
	}
	if len(after.Images) != 1 || after.Featured {
		t.Errorf("after update: images = %d featured = %v", len(after.Images), after.Featured)
	}

	if err := s.Delete(created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	gone, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID after delete: %v", err)
	}
	if gone != nil {
		t.Error("project still present after delete")
	}
}

func TestProjectFindMissing(t *testing.T) {
	db := testDB(t)
	s := NewProjectStore(db)

	p, err := s.FindByID(uuid.New())
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if p != nil {
		t.Errorf("FindByID random id = %+v, want nil", p)
	}

	p, err = s.FindBySlug("no-such-slug-ever")
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	if p != nil {
		t.Errorf("FindBySlug missing = %+v, want nil", p)
	}
}
