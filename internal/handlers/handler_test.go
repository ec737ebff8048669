// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. Tests are skipped when PostgreSQL is unavailable.
package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"interia/internal/config"
	"interia/internal/database"
	"interia/internal/imageurl"
	"interia/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "interia")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "interia")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testEnv holds all dependencies for handler integration tests. Storage,
// mail, and cache stay nil: handlers degrade to unmanaged references and
// uncached reads, which is what the tests exercise.
type testEnv struct {
	DB      *sql.DB
	Stores  *Stores
	Content *Content
}

// newTestEnv creates a test environment backed by the test database.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)

	stores := &Stores{
		Projects:     store.NewProjectStore(db),
		Testimonials: store.NewTestimonialStore(db),
		Certificates: store.NewCertificateStore(db),
		Services:     store.NewServiceStore(db),
		Stats:        store.NewStatStore(db),
		SiteImages:   store.NewSiteImageStore(db),
		SiteSettings: store.NewSiteSettingStore(db),
		About:        store.NewAboutStore(db),
		Media:        store.NewMediaStore(db),
		Users:        store.NewUserStore(db),
	}

	cfg := &config.Config{
		Env:          "testing",
		ContactEmail: "studio@interia.local",
	}

	content := NewContent(cfg, stores, nil, imageurl.New("https://cdn.interia.test"), nil, nil)

	return &testEnv{DB: db, Stores: stores, Content: content}
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// cleanProjects removes test projects by slug.
func cleanProjects(t *testing.T, db *sql.DB, slugs ...string) {
	t.Helper()
	for _, s := range slugs {
		db.Exec("DELETE FROM projects WHERE slug = $1", s)
	}
}

// cleanTestimonials removes test testimonials by name.
func cleanTestimonials(t *testing.T, db *sql.DB, names ...string) {
	t.Helper()
	for _, n := range names {
		db.Exec("DELETE FROM testimonials WHERE name = $1", n)
	}
}

// cleanCertificates removes test certificates by title.
func cleanCertificates(t *testing.T, db *sql.DB, titles ...string) {
	t.Helper()
	for _, title := range titles {
		db.Exec("DELETE FROM certificates WHERE title = $1", title)
	}
}

// cleanStats removes test stats by label.
func cleanStats(t *testing.T, db *sql.DB, labels ...string) {
	t.Helper()
	for _, l := range labels {
		db.Exec("DELETE FROM stats WHERE label = $1", l)
	}
}
