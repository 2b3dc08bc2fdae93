package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/isoshelf/pkg/domain/interfaces"
	"github.com/m-mizutani/isoshelf/pkg/utils/format"
)

// config holds internal HTTP server configuration
type config struct {
	addr      string
	formatter *format.Formatter
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithFormatter sets the formatter used for sizes and timestamps
func WithFormatter(f *format.Formatter) Option {
	return func(c *config) {
		c.formatter = f
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	catalogUC interfaces.CatalogUseCase,
	opts ...Option,
) (*Server, error) {
	// Default configuration
	cfg := &config{
		addr:      "localhost:8080",
		formatter: format.Default(),
	}

	// Apply options
	for _, opt := range opts {
		opt(cfg)
	}

	renderer, err := NewRenderer(cfg.formatter)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create renderer")
	}

	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	// Health check
	router.Get("/health", healthHandler(catalogUC))

	// Catalog
	catalogHandler := NewCatalogHandler(catalogUC, renderer, cfg.formatter)
	router.Get("/", catalogHandler.Page)
	router.Get("/files", catalogHandler.Files)
	router.Get("/api/files", catalogHandler.API)
	router.Post("/refresh", catalogHandler.Refresh)

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}

	return server, nil
}
