// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"interia/internal/models"
)

// SiteSettingStore manages the singleton site configuration row. The table
// is pinned to id = 1; Get creates the default row atomically so concurrent
// first reads never produce duplicates.
type SiteSettingStore struct {
	db *sql.DB
}

// NewSiteSettingStore returns a new SiteSettingStore backed by the given database.
func NewSiteSettingStore(db *sql.DB) *SiteSettingStore {
	return &SiteSettingStore{db: db}
}

const siteSettingColumns = `logo, hero_images, contact_info, social_media, updated_at`

func scanSiteSettings(row interface{ Scan(...any) error }) (*models.SiteSettings, error) {
	st := &models.SiteSettings{}
	var logo models.ImageRef
	err := row.Scan(&logo, &st.HeroImages, &st.ContactInfo, &st.SocialMedia, &st.UpdatedAt)
	if err != nil {
		return nil, err
	}
	st.Logo = logo.NullableRef()
	return st, nil
}

// Get returns the settings document, creating the default row if it does
// not exist yet. ON CONFLICT DO NOTHING makes racing creators converge on
// the same row.
func (s *SiteSettingStore) Get() (*models.SiteSettings, error) {
	_, err := s.db.Exec(`
		INSERT INTO site_settings (id) VALUES (1)
		ON CONFLICT (id) DO NOTHING`)
	if err != nil {
		return nil, fmt.Errorf("ensure site settings: %w", err)
	}

	st, err := scanSiteSettings(s.db.QueryRow(
		`SELECT ` + siteSettingColumns + ` FROM site_settings WHERE id = 1`))
	if err != nil {
		return nil, fmt.Errorf("get site settings: %w", err)
	}
	return st, nil
}

// Update replaces the whole settings document.
func (s *SiteSettingStore) Update(st *models.SiteSettings) error {
	_, err := s.db.Exec(`
		INSERT INTO site_settings (id, logo, hero_images, contact_info, social_media, updated_at)
		VALUES (1, $1, $2, $3, $4, NOW())
		ON CONFLICT (id) DO UPDATE SET
			logo = EXCLUDED.logo,
			hero_images = EXCLUDED.hero_images,
			contact_info = EXCLUDED.contact_info,
			social_media = EXCLUDED.social_media,
			updated_at = EXCLUDED.updated_at`,
		st.Logo, st.HeroImages, st.ContactInfo, st.SocialMedia,
	)
	if err != nil {
		return fmt.Errorf("update site settings: %w", err)
	}
	return nil
}

// UpdateLogo replaces only the logo field, leaving the rest untouched.
func (s *SiteSettingStore) UpdateLogo(logo *models.ImageRef) error {
	_, err := s.db.Exec(`
		INSERT INTO site_settings (id, logo, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET
			logo = EXCLUDED.logo,
			updated_at = EXCLUDED.updated_at`,
		logo,
	)
	if err != nil {
		return fmt.Errorf("update logo: %w", err)
	}
	return nil
}

// UpdateHeroImages replaces only the hero image list.
func (s *SiteSettingStore) UpdateHeroImages(images models.HeroImages) error {
	_, err := s.db.Exec(`
		INSERT INTO site_settings (id, hero_images, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET
			hero_images = EXCLUDED.hero_images,
			updated_at = EXCLUDED.updated_at`,
		images,
	)
	if err != nil {
		return fmt.Errorf("update hero images: %w", err)
	}
	return nil
}
