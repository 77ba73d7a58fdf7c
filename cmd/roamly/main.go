package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/roamly/roamly/httpapp"
	"github.com/roamly/roamly/internal/api/http/handlers"
	"github.com/roamly/roamly/internal/application/service"
	"github.com/roamly/roamly/internal/clock"
	"github.com/roamly/roamly/internal/config"
	"github.com/roamly/roamly/internal/infrastructures/catalogfile"
	"github.com/roamly/roamly/internal/infrastructures/catalogfile/http/client"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.MustLoad()
	log := setupLogger(cfg.Env, cfg.Log.Level)
	defer func() {
		_ = log.Sync()
	}()

	log.Info("roamly starting",
		zap.String("http_addr", fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)),
		zap.String("catalog_url", cfg.Catalog.URL),
	)

	httpClient := &http.Client{Timeout: cfg.Catalog.Timeout}
	catalogSource := catalogfile.NewSource(client.NewClient(cfg.Catalog.URL, httpClient))
	catalogService := service.NewCatalogService(log, catalogSource)
	searchService := service.NewSearchService(log, catalogService)
	hub := clock.NewHub(log)
	viewState := handlers.NewViewState()

	router := handlers.NewRouter(
		handlers.NewSearchHandler(log, searchService, hub, viewState),
		handlers.NewClockHandler(log, hub),
		handlers.NewViewHandler(log, viewState),
	)
	app := httpapp.New(log, cfg.HTTP.Host, cfg.HTTP.Port, cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The catalog is fetched once; a failure leaves search gated on the
	// "still loading" state until the process is restarted.
	go func() {
		if err := catalogService.Load(ctx); err != nil {
			log.Error("catalog unavailable for this session", zap.Error(err))
		}
	}()

	go hub.Run(ctx, cfg.Clock.RefreshPeriod)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Run()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := app.Stop(shutdownCtx); err != nil {
			log.Error("http shutdown error", zap.Error(err))
		}
	case err := <-errCh:
		if err != nil {
			log.Error("http server stopped", zap.Error(err))
		}
	}
}

func setupLogger(env, level string) *zap.Logger {
	zapLevel := parseLogLevel(level)

	if strings.ToLower(strings.TrimSpace(env)) == "local" {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = colorLevelEncoder
		core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stdout), zapLevel)
		return zap.New(core)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return log
}

func colorLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	switch l {
	case zapcore.DebugLevel:
		enc.AppendString(color.MagentaString(l.CapitalString()))
	case zapcore.InfoLevel:
		enc.AppendString(color.BlueString(l.CapitalString()))
	case zapcore.WarnLevel:
		enc.AppendString(color.YellowString(l.CapitalString()))
	default:
		enc.AppendString(color.RedString(l.CapitalString()))
	}
}

func parseLogLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
