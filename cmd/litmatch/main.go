package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/litmatch/litmatch/internal/config"
	corpusfile "github.com/litmatch/litmatch/internal/corpus/file"
	corpusredis "github.com/litmatch/litmatch/internal/corpus/redis"
	domrec "github.com/litmatch/litmatch/internal/domain/recommend"
	"github.com/litmatch/litmatch/internal/engine"
	logpkg "github.com/litmatch/litmatch/internal/logger"
	"github.com/litmatch/litmatch/internal/metrics"
	chiTransport "github.com/litmatch/litmatch/internal/transport/chi"
	healthuc "github.com/litmatch/litmatch/internal/usecase/health"
	recommenduc "github.com/litmatch/litmatch/internal/usecase/recommend"
	"github.com/litmatch/litmatch/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting litmatch API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("corpus_driver", cfg.Corpus.Driver),
	)

	// Create corpus store based on driver
	ctx := context.Background()
	var store recommenduc.CorpusStore
	var pinger healthuc.CorpusPinger
	switch cfg.Corpus.Driver {
	case "file":
		fs := corpusfile.New(cfg.Corpus.Path)
		store, pinger = fs, fs
	case "redis":
		rs, err := corpusredis.New(corpusredis.Config{
			Addrs:     cfg.Corpus.Addrs,
			Password:  cfg.Corpus.Password,
			KeyPrefix: cfg.Corpus.KeyPrefix,
		})
		if err != nil {
			logger.Fatal("Failed to create corpus store", zap.Error(err))
		}
		defer rs.Close()
		if err := rs.WaitForReady(ctx, time.Duration(cfg.Corpus.ReadinessTimeout)*time.Second); err != nil {
			logger.Fatal("Corpus store not ready", zap.Error(err))
		}
		store, pinger = rs, rs
	default:
		logger.Fatal("Unknown corpus driver", zap.String("driver", cfg.Corpus.Driver))
	}

	// Register engine metrics explicitly (no init())
	metrics.RegisterEngineMetrics()

	tokenizer := engine.NewTokenizer(cfg.Engine.MinTokenLength, cfg.Engine.StopWords)
	recommendSvc := recommenduc.New(store, tokenizer, recommenduc.Options{
		Limits: domrec.Limits{
			Default: cfg.Limits.DefaultResults,
			Ceiling: cfg.Limits.MaxResults,
		},
		Precision: cfg.Engine.ScorePrecision,
		CacheSize: cfg.Cache.Size,
	}, logger)

	// Initial build. A failure is not fatal: the server comes up unindexed
	// and answers 503 until a rebuild succeeds.
	if err := recommendSvc.Rebuild(ctx); err != nil {
		logger.Warn("Initial index build failed, serving without an index", zap.Error(err))
	}

	healthSvc := healthuc.New(pinger, recommendSvc)

	server := chiTransport.NewServer(recommendSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)
	r.Handle("/metrics", promhttp.Handler())

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
