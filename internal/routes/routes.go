package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dailylift/dailylift/internal/handler"
	"github.com/dailylift/dailylift/internal/middleware"
)

// SetupRoutes serves the built site from distDir plus the calculator API.
func SetupRoutes(distDir string) http.Handler {
	tools := handler.NewToolsHandler()

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogging)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(middleware.NoCache)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// ============================================================================
	// CALCULATOR API
	// ============================================================================

	r.Route("/api/tools", func(r chi.Router) {
		r.Use(middleware.RateLimit(120, time.Minute))
		r.Get("/units", tools.Units)
		r.Post("/bill", tools.Bill)
		r.Post("/bmi", tools.BMI)
		r.Post("/convert", tools.Convert)
	})

	// ============================================================================
	// STATIC SITE
	// ============================================================================

	r.Handle("/*", staticSite(distDir))

	return r
}

// staticSite serves distDir without directory listings.
func staticSite(distDir string) http.Handler {
	files := http.FileServer(http.Dir(distDir))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") && r.URL.Path != "/" {
			index := filepath.Join(distDir, filepath.FromSlash(r.URL.Path), "index.html")
			if _, err := os.Stat(index); os.IsNotExist(err) {
				http.NotFound(w, r)
				return
			}
		}
		files.ServeHTTP(w, r)
	})
}
