package app

import (
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/library-backend/internal/config"
	"github.com/heartmarshall/library-backend/internal/metrics"
	"github.com/heartmarshall/library-backend/internal/transport/middleware"
	"github.com/heartmarshall/library-backend/internal/transport/rest"
)

// newHTTPServer assembles handlers, routes and the middleware chain. The
// returned RateLimiter must be stopped on shutdown.
func newHTTPServer(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	svc *Services,
	m *metrics.Metrics,
) (*http.Server, *middleware.RateLimiter) {
	rl := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	handlers := rest.Handlers{
		Health: rest.NewHealthHandler(pool, BuildVersion(),
			rest.WithComponentInfo("events", svc.EventsBackend),
			rest.WithComponentInfo("assistant", svc.AssistantBackend),
		),
		Catalog:      rest.NewCatalogHandler(svc.Catalog, logger),
		Reservations: rest.NewReservationHandler(svc.Reservations, logger),
		Librarian:    rest.NewLibrarianHandler(svc.Librarian, m, logger),
		Queries:      rest.NewQueryHandler(svc.QueryLog, logger),
	}
	if cfg.RateLimit.Enabled {
		handlers.Assistant = rl.Limit(cfg.RateLimit.AssistantPerMinute)
	}
	if cfg.Metrics.Enabled {
		handlers.Metrics = m.Handler()
		handlers.MetricsPath = cfg.Metrics.Path
	}

	return &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      wrapHandler(cfg, logger, rl, m, rest.NewRouter(handlers)),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}, rl
}

// wrapHandler applies the global middleware chain to the router.
func wrapHandler(
	cfg *config.Config,
	logger *slog.Logger,
	rl *middleware.RateLimiter,
	m *metrics.Metrics,
	router http.Handler,
) http.Handler {
	mws := []middleware.Middleware{
		middleware.RequestID(),
		middleware.ClientIP(cfg.Server.TrustProxy),
		middleware.Logger(logger),
		// Inside Logger so recovered panics are logged with their 500.
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.RateLimit.Enabled {
		mws = append(mws, rl.Limit(cfg.RateLimit.RequestsPerMinute))
	}
	// Innermost, so it sees the pattern the mux matched.
	mws = append(mws, middleware.Metrics(m))

	return middleware.Chain(mws...)(router)
}
