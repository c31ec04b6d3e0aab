package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/blogem/permit-tracker/config"
	"github.com/blogem/permit-tracker/controllers"
	"github.com/blogem/permit-tracker/database"
	"github.com/blogem/permit-tracker/logger"
	"github.com/blogem/permit-tracker/metrics"
	appmiddleware "github.com/blogem/permit-tracker/middleware"
	"github.com/blogem/permit-tracker/repositories"
	"github.com/blogem/permit-tracker/services"
	"github.com/blogem/permit-tracker/workflow"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.Logger.Level, cfg.Logger.Format)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, zl); err != nil {
		zl.Fatal("server stopped with error", zap.Error(err))
	}
}

// run serves until ctx is cancelled, then shuts down gracefully
func run(ctx context.Context, cfg *config.Config, zl *zap.Logger) error {
	app, err := newApplication(ctx, cfg, zl)
	if err != nil {
		return err
	}
	defer app.Close()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      app.handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		zl.Info("permit tracker starting",
			zap.String("addr", srv.Addr),
			zap.String("store", cfg.Store.Name),
			zap.Bool("simulation_mode", cfg.Workflow.AccessToken == ""))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zl.Info("shutting down", zap.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// application holds the wired components of the service
type application struct {
	db      *sql.DB
	handler http.Handler
}

// newApplication opens the store and wires repositories, services and
// controllers into the HTTP handler
func newApplication(ctx context.Context, cfg *config.Config, zl *zap.Logger) (*application, error) {
	db, err := database.InitializeDatabase(cfg.Store.Name)
	if err != nil {
		return nil, err
	}

	repos := repositories.NewRepositories(db)

	if cfg.Store.SeedDemoData {
		seeded, err := repositories.SeedPermits(ctx, repos.Permit)
		if err != nil {
			db.Close()
			return nil, err
		}
		zl.Info("record store ready", zap.Int("seeded_permits", seeded))
	}

	creds := config.NewCredentials(cfg.Workflow.AccountID, cfg.Workflow.WorkflowID, cfg.Workflow.AccessToken)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	client := workflow.NewClient(workflow.Config{
		TriggerURL:         cfg.Workflow.TriggerURL,
		SubmitterEmail:     cfg.Workflow.SubmitterEmail,
		Timeout:            cfg.Workflow.Timeout,
		BreakerMaxFailures: cfg.Workflow.BreakerMaxFailures,
		BreakerTimeout:     cfg.Workflow.BreakerTimeout,
	}, creds, zl, m)

	srvs := services.NewServices(repos, client, creds, zl, m)
	ctrl := controllers.NewControllers(srvs, zl)

	r := setupRouter(ctrl, routerOptions{
		logger:         zl,
		metrics:        m,
		metricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg, DisableCompression: true}),
		limiter:        appmiddleware.NewRateLimiter(cfg.Server.RateLimitPerSecond, cfg.Server.RateLimitBurst),
		requestTimeout: cfg.Workflow.Timeout + 5*time.Second,
	})

	return &application{db: db, handler: r}, nil
}

// Close releases the store; the in-memory data is gone afterwards
func (a *application) Close() error {
	return a.db.Close()
}

type routerOptions struct {
	logger         *zap.Logger
	metrics        *metrics.Metrics
	metricsHandler http.Handler
	limiter        *appmiddleware.RateLimiter
	requestTimeout time.Duration
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, opts routerOptions) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(appmiddleware.RequestLogger(opts.logger))
	r.Use(middleware.Recoverer)
	r.Use(appmiddleware.Instrument(opts.metrics))
	r.Use(middleware.Timeout(opts.requestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(appmiddleware.Submitter)

	r.Get("/health", ctrl.Health.Check)
	r.Handle("/metrics", opts.metricsHandler)

	r.Route("/permits", func(r chi.Router) {
		r.Get("/", ctrl.Permit.Index)
		r.With(opts.limiter.Handler).Post("/", ctrl.Permit.Create)
		r.Post("/reset", ctrl.Permit.Reset)
		r.Get("/{id}", ctrl.Permit.Show)
		r.Get("/{id}/logs", ctrl.Log.ForPermit)
	})

	r.Route("/config", func(r chi.Router) {
		r.Get("/status", ctrl.Config.Status)
		r.Post("/external-workflow", ctrl.Config.Update)
		r.Post("/docusign", ctrl.Config.Update)
	})

	r.Route("/logs", func(r chi.Router) {
		r.Get("/", ctrl.Log.Index)
		r.Delete("/", ctrl.Log.Clear)
	})

	return r
}
