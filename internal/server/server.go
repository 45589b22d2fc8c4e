package server

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"skaffolddemo/docs"
	"skaffolddemo/internal/config"
	handlers "skaffolddemo/internal/http/handler"
	"skaffolddemo/internal/http/middleware"
	"skaffolddemo/internal/service"
)

// Options carries the collaborators New wires into the app.
type Options struct {
	Logger   *zap.Logger
	Registry *prometheus.Registry
	Service  service.DemoService
	Tracing  bool
}

// New builds the Fiber app for one demo service: error handler, middleware chain and routes.
func New(cfg *config.AppConfig, opts Options) (*fiber.App, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Service == nil {
		opts.Service = service.NewDemoService()
	}

	app := fiber.New(fiber.Config{
		AppName:               cfg.ServiceName,
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(opts.Logger))
	if opts.Tracing {
		app.Use(middleware.Tracing())
	}

	if cfg.MetricsEnabled {
		reg := opts.Registry
		if reg == nil {
			reg = prometheus.NewRegistry()
		}
		prom, err := middleware.NewPrometheusMiddleware(reg, cfg.ServiceName)
		if err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
		app.Use(prom.Handler())
		app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}

	handlers.RegisterRoutes(app, cfg.ServiceName, opts.Service)

	if cfg.SwaggerEnabled {
		docs.SwaggerInfo.Title = cfg.ServiceName
		app.Get("/swagger/*", swaggerHandler(cfg.AppHost))
	}

	return app, nil
}

// swaggerHandler serves Swagger UI with the host and scheme the client actually used.
func swaggerHandler(defaultHost string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get(fiber.HeaderXForwardedProto); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}

		host := c.Get(fiber.HeaderHost)
		if host == "" {
			host = defaultHost
		}

		docs.SwaggerInfo.Host = host
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	}
}

// Run serves app on addr until ctx is cancelled, then shuts down within timeout.
func Run(ctx context.Context, app *fiber.App, addr string, timeout time.Duration, log *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("server_listening", zap.String("addr", addr))
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("server_shutting_down", zap.Duration("timeout", timeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("server_exited")
	return nil
}
