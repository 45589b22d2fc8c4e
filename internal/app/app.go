package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"skaffolddemo/internal/config"
	"skaffolddemo/internal/logger"
	"skaffolddemo/internal/otel"
	"skaffolddemo/internal/server"
	"skaffolddemo/internal/service"
)

// Run boots a demo service named serviceName and blocks until SIGINT/SIGTERM.
func Run(serviceName string) error {
	cfg := config.Load(serviceName)

	log := logger.New(cfg.LogLevel, logger.Location(cfg.Timezone)).With(zap.String("service", cfg.ServiceName))
	defer logger.Sync(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, cfg.ServiceName, log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Error("tracing_shutdown_failed", zap.Error(err))
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	fiberApp, err := server.New(cfg, server.Options{
		Logger:   log,
		Registry: reg,
		Service:  service.NewDemoService(),
		Tracing:  true,
	})
	if err != nil {
		return err
	}

	log.Info("service_starting", zap.String("addr", cfg.Addr()))

	return server.Run(ctx, fiberApp, cfg.Addr(), time.Duration(cfg.ShutdownTimeoutSec)*time.Second, log)
}
