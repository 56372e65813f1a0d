package rest

import (
	"net/http"
	"strings"
)

// APIPrefix is the mount point of the versioned REST surface.
const APIPrefix = "/api/v1"

// Handlers bundles everything the router mounts. Metrics may be nil.
type Handlers struct {
	Health       *HealthHandler
	Catalog      *CatalogHandler
	Reservations *ReservationHandler
	Librarian    *LibrarianHandler
	Queries      *QueryHandler
	Metrics      http.Handler
	MetricsPath  string // defaults to /metrics
	// Assistant wraps the librarian routes, typically with a tighter rate limit.
	Assistant func(http.Handler) http.Handler
}

// NewRouter registers all routes on a new ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if h.Metrics != nil {
		path := h.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		mux.Handle("GET "+path, h.Metrics)
	}

	api := func(pattern string, fn http.HandlerFunc) {
		method, path, _ := strings.Cut(pattern, " ")
		mux.Handle(method+" "+APIPrefix+path, fn)
	}

	// Books
	api("GET /books", h.Catalog.ListBooks)
	api("POST /books", h.Catalog.CreateBooks)
	api("GET /books/{id}", h.Catalog.GetBook)
	api("PATCH /books/{id}", h.Catalog.UpdateBook)
	api("DELETE /books/{id}", h.Catalog.DeleteBook)
	api("POST /books/{id}/reserve", h.Reservations.Reserve)
	api("GET /books/{id}/availability", h.Librarian.Availability)

	// Categories
	api("GET /categories", h.Catalog.ListCategories)
	api("POST /categories", h.Catalog.CreateCategories)
	api("GET /categories/{id}", h.Catalog.GetCategory)
	api("PATCH /categories/{id}", h.Catalog.UpdateCategory)
	api("DELETE /categories/{id}", h.Catalog.DeleteCategory)

	// Reservations
	api("GET /reservations", h.Reservations.List)
	api("GET /reservations/{id}", h.Reservations.Get)
	api("DELETE /reservations/{id}", h.Reservations.Delete)
	api("POST /reservations/{id}/return", h.Reservations.Return)
	api("POST /reservations/{id}/cancel", h.Reservations.Cancel)
	api("POST /reservations/sweep-expired", h.Reservations.SweepExpired)

	api("GET /statistics", h.Librarian.Statistics)

	// Query log
	api("GET /queries", h.Queries.List)
	api("GET /queries/{id}", h.Queries.Get)

	// Assistant
	assistant := func(pattern string, fn http.HandlerFunc) {
		if h.Assistant == nil {
			api(pattern, fn)
			return
		}
		api(pattern, h.Assistant(fn).ServeHTTP)
	}
	assistant("POST /librarian/ask", h.Librarian.Ask)
	assistant("POST /librarian/search", h.Librarian.Search)
	assistant("GET /librarian/suggestions/{bookID}", h.Librarian.Suggestions)

	return mux
}
