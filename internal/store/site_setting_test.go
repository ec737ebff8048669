package store

import (
	"sync"
	"testing"

	"interia/internal/models"
)

func TestSiteSettingsSingleton(t *testing.T) {
	db := testDB(t)
	s := NewSiteSettingStore(db)

	// First Get creates the default row.
	st, err := s.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if st == nil {
		t.Fatal("Get returned nil settings")
	}

	// Concurrent Gets converge on the single row instead of erroring.
	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Get(); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent Get: %v", err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM site_settings`).Scan(&count); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 1 {
		t.Errorf("site_settings rows = %d, want 1", count)
	}
}

func TestSiteSettingsUpdate(t *testing.T) {
	db := testDB(t)
	s := NewSiteSettingStore(db)

	if _, err := s.Get(); err != nil {
		t.Fatalf("Get: %v", err)
	}

	logo := &models.ImageRef{
		URL:     "https://cdn.example.com/upload/site/2026/01/logo",
		AssetID: "site/2026/01/logo",
	}
	if err := s.UpdateLogo(logo); err != nil {
		t.Fatalf("UpdateLogo: %v", err)
	}

	heroes := models.HeroImages{
		{URL: "https://cdn.example.com/upload/site/2026/01/hero1", AssetID: "site/2026/01/hero1"},
	}
	if err := s.UpdateHeroImages(heroes); err != nil {
		t.Fatalf("UpdateHeroImages: %v", err)
	}

	st, err := s.Get()
	if err != nil {
		t.Fatalf("Get after update: %v", err)
	}
	if st.Logo == nil || st.Logo.AssetID != "site/2026/01/logo" {
		t.Errorf("logo = %+v, want asset site/2026/01/logo", st.Logo)
	}
	if len(st.HeroImages) != 1 {
		t.Errorf("hero images = %d, want 1", len(st.HeroImages))
	}

	// Clearing the logo stores SQL NULL, read back as nil.
	if err := s.UpdateLogo(nil); err != nil {
		t.Fatalf("UpdateLogo nil: %v", err)
	}
	st, err = s.Get()
	if err != nil {
		t.Fatalf("Get after clear: %v", err)
	}
	if st.Logo != nil {
		t.Errorf("logo after clear = %+v, want nil", st.Logo)
	}
	// The hero list survives a logo-only update.
	if len(st.HeroImages) != 1 {
		t.Errorf("hero images after logo update = %d, want 1", len(st.HeroImages))
	}
}

func TestAboutSingleton(t *testing.T) {
	db := testDB(t)
	s := NewAboutStore(db)

	a, err := s.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if a == nil {
		t.Fatal("Get returned nil about")
	}

	mission := "Spaces people love living in"
	a.Title = "About the Studio"
	a.Mission = &mission
	a.Values = models.StringList{"craft", "honesty"}
	if err := s.Update(a); err != nil {
		t.Fatalf("Update: %v", err)
	}

	after, err := s.Get()
	if err != nil {
		t.Fatalf("Get after update: %v", err)
	}
	if after.Title != "About the Studio" {
		t.Errorf("title = %q", after.Title)
	}
	if after.Mission == nil || *after.Mission != mission {
		t.Errorf("mission = %v, want %q", after.Mission, mission)
	}
	if len(after.Values) != 2 {
		t.Errorf("values = %v, want 2 entries", after.Values)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM about`).Scan(&count); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 1 {
		t.Errorf("about rows = %d, want 1", count)
	}
}
