package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"leadintake/docs"
	"leadintake/internal/config"
	"leadintake/internal/database"
	"leadintake/internal/database/migration"
	handlers "leadintake/internal/http/handler"
	"leadintake/internal/http/middleware"
	"leadintake/internal/logger"
	appotel "leadintake/internal/otel"
	"leadintake/internal/repository/postgres"
	"leadintake/internal/service"
)

// @title Lead Intake API
// @version 1.0
// @BasePath /
func main() {
	cfg := config.Load()

	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := appotel.Init(ctx, log)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}

	// The store handle is opened before the listener and closed after it stops.
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			log.Fatal("failed to migrate database", zap.Error(err))
		}
	}

	leadRepo := postgres.NewLeadPostgres(db)
	leadSvc := service.NewLeadService(leadRepo, log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, cfg.Database.Name),
	)
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal("failed to register metrics", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		AppName:               "lead-intake",
		DisableStartupMessage: true,
		ErrorHandler:          handlers.ErrorHandler(log),
	})

	app.Use(otelfiber.Middleware())
	for _, h := range middleware.Chain(log, promMiddleware) {
		app.Use(h)
	}

	handlers.RegisterRoutes(app, db, leadSvc)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port
	listenErr := make(chan error, 1)
	go func() {
		log.Info("server_starting", zap.String("addr", addr))
		listenErr <- app.Listen(addr)
	}()

	select {
	case err := <-listenErr:
		if err != nil {
			log.Error("server stopped unexpectedly", zap.Error(err))
		}
	case <-ctx.Done():
		log.Info("shutdown_signal_received")
	}

	timeout := time.Duration(cfg.ShutdownTimeoutSec) * time.Second
	if err := app.ShutdownWithTimeout(timeout); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := shutdownTracing(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("tracing shutdown failed", zap.Error(err))
	}

	log.Info("server_stopped")
}
