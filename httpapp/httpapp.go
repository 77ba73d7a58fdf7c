package httpapp

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type HTTPApp struct {
	log    *zap.Logger
	server *http.Server
}

func New(log *zap.Logger, host string, port int, readTimeout, writeTimeout time.Duration, handler http.Handler) *HTTPApp {
	addr := fmt.Sprintf("%s:%d", host, port)

	server := &http.Server{
		Addr:         addr,
		Handler:      recoveryMiddleware(log, loggingMiddleware(log, handler)),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	return &HTTPApp{
		log:    log,
		server: server,
	}
}

func (a *HTTPApp) Run() error {
	const op = "httpapp.Run"

	a.log.Info("HTTP server started", zap.String("addr", a.server.Addr))

	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (a *HTTPApp) Stop(ctx context.Context) error {
	a.log.Info("stopping HTTP server", zap.String("addr", a.server.Addr))

	return a.server.Shutdown(ctx)
}

func loggingMiddleware(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func recoveryMiddleware(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
				)
				w.WriteHeader(http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
