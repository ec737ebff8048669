// Package router sets up all HTTP routes and middleware chains for the
// Interia content API. Public reads are cached and open; every mutation
// sits behind an admin session.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"interia/internal/cache"
	"interia/internal/config"
	"interia/internal/handlers"
	"interia/internal/middleware"
	"interia/internal/session"
)

// Rate limits for the abuse-prone endpoints.
const (
	contactLimit  = 5
	contactWindow = time.Minute
	loginLimit    = 10
	loginWindow   = time.Minute
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(cfg *config.Config, sessionStore *session.Store, rc *cache.ResponseCache, content *handlers.Content, auth *handlers.Auth) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.LoadSession(sessionStore))

	contactLimiter := middleware.NewRateLimiter(contactLimit, contactWindow)
	loginLimiter := middleware.NewRateLimiter(loginLimit, loginWindow)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler)

		// Authentication.
		r.Route("/auth", func(r chi.Router) {
			r.With(loginLimiter.Middleware).Post("/login", auth.Login)
			r.Post("/logout", auth.Logout)
			r.Get("/google", auth.GoogleRedirect)
			r.Get("/google/callback", auth.GoogleCallback)
			r.Post("/verify-admin", auth.VerifyAdmin)

			// 2FA needs a session but not a completed one.
			r.Post("/2fa/setup", auth.TwoFASetup)
			r.Post("/2fa/verify", auth.TwoFAVerify)

			r.With(middleware.RequireAuth).Get("/profile", auth.Profile)
		})

		// Contact form — public, rate limited.
		r.With(contactLimiter.Middleware).Post("/contact", content.Contact)

		// Entity resources: public reads, admin-only writes.
		resource(r, "/projects", rc, "projects",
			content.ListProjects, content.GetProject,
			content.CreateProject, content.UpdateProject, content.DeleteProject)
		resource(r, "/testimonials", rc, "testimonials",
			content.ListTestimonials, content.GetTestimonial,
			content.CreateTestimonial, content.UpdateTestimonial, content.DeleteTestimonial)
		resource(r, "/certificates", rc, "certificates",
			content.ListCertificates, content.GetCertificate,
			content.CreateCertificate, content.UpdateCertificate, content.DeleteCertificate)
		resource(r, "/services", rc, "services",
			content.ListServices, content.GetService,
			content.CreateService, content.UpdateService, content.DeleteService)
		resource(r, "/stats", rc, "stats",
			content.ListStats, content.GetStat,
			content.CreateStat, content.UpdateStat, content.DeleteStat)
		resource(r, "/site-images", rc, "site-images",
			content.ListSiteImages, content.GetSiteImage,
			content.CreateSiteImage, content.UpdateSiteImage, content.DeleteSiteImage)
		// Ad hoc media: the {id} route doubles as list-by-category, and
		// /upload is the inline-JSON upload path creating a media row.
		r.Route("/images", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(rc.Middleware("media"))
				r.Get("/", content.ListMedia)
				r.Get("/{id}", content.GetMedia)
			})
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth, middleware.RequireAdmin)
				r.Post("/", content.CreateMedia)
				r.Post("/upload", content.CreateMedia)
				r.Put("/{id}", content.UpdateMedia)
				r.Delete("/{id}", content.DeleteMedia)
			})
		})

		// Singletons.
		r.Route("/site-settings", func(r chi.Router) {
			r.With(rc.Middleware("site-settings")).Get("/", content.GetSiteSettings)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth, middleware.RequireAdmin)
				r.Put("/", content.UpdateSiteSettings)
				r.Put("/logo", content.UpdateLogo)
				r.Put("/hero-images", content.UpdateHeroImages)
			})
		})
		r.Route("/about", func(r chi.Router) {
			r.With(rc.Middleware("about")).Get("/", content.GetAbout)
			r.With(middleware.RequireAuth, middleware.RequireAdmin).Put("/", content.UpdateAbout)
		})

		// Raw uploads — admin only.
		r.Route("/upload", func(r chi.Router) {
			r.Use(middleware.RequireAuth, middleware.RequireAdmin)
			r.Post("/", content.Upload)
			r.Delete("/*", content.DeleteUpload)
		})
	})

	return r
}

// resource wires the standard CRUD layout: cached public GETs and
// admin-gated mutations.
func resource(r chi.Router, pattern string, rc *cache.ResponseCache, name string,
	list, get, create, update, del http.HandlerFunc) {
	r.Route(pattern, func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(rc.Middleware(name))
			r.Get("/", list)
			r.Get("/{id}", get)
		})
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth, middleware.RequireAdmin)
			r.Post("/", create)
			r.Put("/{id}", update)
			r.Delete("/{id}", del)
		})
	})
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"OK"}`))
}
