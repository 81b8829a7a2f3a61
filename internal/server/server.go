// Package server sets up the HTTP server, router, and all route
// definitions. It is the composition root: every repository, service and
// handler is wired together here (and only here), so the dependency graph
// of the whole application is readable in one file.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sakif/feature-workshop/internal/handler"
	"github.com/sakif/feature-workshop/internal/middleware"
	sqliteRepo "github.com/sakif/feature-workshop/internal/repository/sqlite"
	"github.com/sakif/feature-workshop/internal/service"
)

// Config holds server configuration. A struct (rather than positional
// parameters) lets main load it from env vars in one place and pass it
// around as a single value.
type Config struct {
	Port   int
	DBPath string // path to the SQLite database file, or ":memory:"
	WebDir string // optional: serve the built frontend from this directory
}

// Server owns the router and the database connection. The connection is
// closed during graceful shutdown — skipping that can leave the SQLite WAL
// unflushed.
type Server struct {
	router *chi.Mux
	config Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New creates a Server with all dependencies wired:
//
//	sqlite.DB → services (product, card, session, snapshot) → handlers → routes
//
// Each layer only receives what it needs: services get repository
// interfaces (the *DB satisfies all four), handlers get services, the
// router gets handlers.
func New(cfg Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		db:     db,
	}
	s.setupRoutes()

	return s, nil
}

// setupRoutes configures middleware and the route table.
//
// ROUTE STRUCTURE:
//
//	GET    /health                       → liveness probe
//	GET    /api/products                 → list products
//	POST   /api/products                 → create product
//	GET    /api/products/{id}            → get product
//	PUT    /api/products/{id}            → rename product
//	DELETE /api/products/{id}            → delete product (cascades)
//	GET    /api/products/{id}/cards      → list cards (creation order)
//	POST   /api/products/{id}/cards      → create card
//	PUT    /api/cards/{id}               → update card
//	DELETE /api/cards/{id}               → delete card
//	GET    /api/sessions                 → list sessions (+product names)
//	POST   /api/sessions                 → create session
//	GET    /api/sessions/{id}            → session + product name + cards
//	PUT    /api/sessions/{id}            → partial update (show_prices/budget)
//	GET    /api/products/{id}/sessions   → product's sessions
//	POST   /api/sessions/{id}/snapshot   → save exercise snapshot
//	GET    /api/sessions/{id}/snapshots  → list snapshots (+summaries)
//	GET    /*                            → static frontend (when WebDir set)
//
// MIDDLEWARE ORDER MATTERS: RealIP first (so the logger sees the real
// client address), then Recoverer (a panic still gets a log line from the
// logger outside it), then our request logger.
func (s *Server) setupRoutes() {
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))

	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// The *DB implements every repository interface, so it is passed
	// wherever an interface is expected — services never see the concrete
	// type.
	productService := service.NewProductService(s.db, s.logger)
	cardService := service.NewCardService(s.db, s.db, s.logger)
	sessionService := service.NewSessionService(s.db, s.db, s.db, s.logger)
	snapshotService := service.NewSnapshotService(s.db, s.db, s.logger)

	productHandler := handler.NewProductHandler(productService, s.logger)
	cardHandler := handler.NewCardHandler(cardService, s.logger)
	sessionHandler := handler.NewSessionHandler(sessionService, s.logger)
	snapshotHandler := handler.NewSnapshotHandler(snapshotService, s.logger)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/products", productHandler.HandleList)
		r.Post("/products", productHandler.HandleCreate)
		r.Get("/products/{id}", productHandler.HandleGet)
		r.Put("/products/{id}", productHandler.HandleUpdate)
		r.Delete("/products/{id}", productHandler.HandleDelete)

		r.Get("/products/{id}/cards", cardHandler.HandleListByProduct)
		r.Post("/products/{id}/cards", cardHandler.HandleCreate)
		r.Put("/cards/{id}", cardHandler.HandleUpdate)
		r.Delete("/cards/{id}", cardHandler.HandleDelete)

		r.Get("/sessions", sessionHandler.HandleList)
		r.Post("/sessions", sessionHandler.HandleCreate)
		r.Get("/sessions/{id}", sessionHandler.HandleGet)
		r.Put("/sessions/{id}", sessionHandler.HandleUpdate)
		r.Get("/products/{id}/sessions", sessionHandler.HandleListByProduct)

		r.Post("/sessions/{id}/snapshot", snapshotHandler.HandleCreate)
		r.Get("/sessions/{id}/snapshots", snapshotHandler.HandleList)
	})

	// Serve the built frontend when configured. The API wins on /api and
	// /health; everything else falls through to the file server.
	if s.config.WebDir != "" {
		fileServer := http.FileServer(http.Dir(s.config.WebDir))
		s.router.Handle("/*", fileServer)
	}
}

// Handler exposes the configured router — used by tests to drive the full
// stack through httptest without binding a port.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Close releases the server's database connection. Start does this itself
// on shutdown; Close exists for callers (tests) that never Start.
func (s *Server) Close() error {
	return s.db.Close()
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully: stop accepting connections, give in-flight requests 30s to
// finish, close the database (flushes the WAL, releases the file lock).
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("database", s.config.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
