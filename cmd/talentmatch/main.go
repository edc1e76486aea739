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
	"go.uber.org/zap"

	"github.com/kailas-cloud/talentmatch/internal/config"
	dbRedis "github.com/kailas-cloud/talentmatch/internal/db/redis"
	"github.com/kailas-cloud/talentmatch/internal/domain"
	logpkg "github.com/kailas-cloud/talentmatch/internal/logger"
	"github.com/kailas-cloud/talentmatch/internal/metrics"
	profilerepo "github.com/kailas-cloud/talentmatch/internal/repository/profile"
	chiTransport "github.com/kailas-cloud/talentmatch/internal/transport/chi"
	geminiGen "github.com/kailas-cloud/talentmatch/internal/transport/gemini"
	openaiGen "github.com/kailas-cloud/talentmatch/internal/transport/openai"
	healthuc "github.com/kailas-cloud/talentmatch/internal/usecase/health"
	intakeuc "github.com/kailas-cloud/talentmatch/internal/usecase/intake"
	matchuc "github.com/kailas-cloud/talentmatch/internal/usecase/match"
	vectorizeuc "github.com/kailas-cloud/talentmatch/internal/usecase/vectorize"
	"github.com/kailas-cloud/talentmatch/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting talentmatch API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("db_addrs", cfg.Database.Addrs),
		zap.String("generation_provider", cfg.Generation.Provider),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Password: cfg.Database.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create vector store", zap.Error(err))
	}
	defer store.Close()

	// Wait for the vector store to be ready
	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Vector store not ready", zap.Error(err))
	}
	logger.Info("Connected to vector store")

	// Register generation metrics explicitly (no init())
	metrics.RegisterGenerationMetrics()

	gen, err := buildGenerator(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to create text generator", zap.Error(err))
	}
	logger.Info("Text generator created", zap.String("provider", cfg.Generation.Provider))

	repo := profilerepo.New(store, cfg.Storage.KeyPrefix, cfg.Index.Dimensions).
		WithHNSW(profilerepo.HNSWConfig{
			M:           cfg.Index.HNSWM,
			EFConstruct: cfg.Index.HNSWEFConstruct,
		})
	if err := repo.EnsureIndex(ctx); err != nil {
		logger.Fatal("Failed to ensure profile index", zap.Error(err))
	}

	vectorizeSvc := vectorizeuc.New(gen)
	intakeSvc := intakeuc.New(repo, vectorizeSvc, gen).
		WithMaxAnalysisLen(cfg.Matching.MaxAnalysisLen).
		WithListLimit(cfg.Index.MaxListSize)
	matchSvc := matchuc.New(repo, gen).
		WithTopK(cfg.Matching.TopK).
		WithConcurrency(cfg.Matching.Concurrency)
	healthSvc := healthuc.New(store, newGeneratorHealthChecker(gen))

	server := chiTransport.NewServer(intakeSvc, matchSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

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

// buildGenerator selects the text generation provider from config.
func buildGenerator(ctx context.Context, cfg config.Config, logger *zap.Logger) (domain.Generator, error) {
	provCfg := cfg.Generation.Providers[cfg.Generation.Provider]

	switch cfg.Generation.Provider {
	case "gemini":
		return geminiGen.NewGenerator(ctx, &geminiGen.Config{
			APIKey: provCfg.APIKey,
			Model:  provCfg.Model,
			Logger: logger,
		})
	case "openai":
		return openaiGen.NewGenerator(&openaiGen.Config{
			APIKey:  provCfg.APIKey,
			BaseURL: provCfg.BaseURL,
			Model:   provCfg.Model,
			Logger:  logger,
		}), nil
	default:
		return nil, fmt.Errorf("unknown generation provider %q", cfg.Generation.Provider)
	}
}

// generatorHealthChecker wraps domain.Generator to implement health.GeneratorChecker.
type generatorHealthChecker struct {
	gen domain.Generator
}

func newGeneratorHealthChecker(gen domain.Generator) *generatorHealthChecker {
	return &generatorHealthChecker{gen: gen}
}

func (h *generatorHealthChecker) HealthCheck(ctx context.Context) error {
	if hc, ok := h.gen.(domain.GeneratorHealthChecker); ok {
		if err := hc.HealthCheck(ctx); err != nil {
			return fmt.Errorf("generator health check: %w", err)
		}
	}
	return nil
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

			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
