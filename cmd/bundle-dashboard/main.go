package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/jcmexdev/bundle-builder/internal/bundle-service/app"
	"github.com/jcmexdev/bundle-builder/internal/bundle-service/catalog"
	"github.com/jcmexdev/bundle-builder/internal/bundle-service/snapshot"
	snapshotredis "github.com/jcmexdev/bundle-builder/internal/bundle-service/snapshot/redis"
	snapshotsqlite "github.com/jcmexdev/bundle-builder/internal/bundle-service/snapshot/sqlite"
	customerapp "github.com/jcmexdev/bundle-builder/internal/customer-service/app"
	"github.com/jcmexdev/bundle-builder/internal/dashboard-api/infra/httpx"
	"github.com/jcmexdev/bundle-builder/internal/pkg/cache"
	"github.com/jcmexdev/bundle-builder/internal/pkg/telemetry"
)

const serviceName = "bundle-dashboard"

func main() {
	telemetry.InitLogger(getEnv("LOG_LEVEL", "info"), getEnv("OTEL_SERVICE_NAME", serviceName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.SetupTracer(ctx,
		getEnv("OTEL_SERVICE_NAME", serviceName),
		getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", telemetry.TracingDisabled),
		getEnv("ENVIRONMENT", "development"),
	)
	if err != nil {
		slog.Error("failed to initialise tracer", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			slog.Error("tracer shutdown error", "error", err)
		}
	}()

	key := getEnv("STORAGE_KEY", snapshot.DefaultKey)
	repo, closeRepo, err := openRepository(ctx, getEnv("SNAPSHOT_BACKEND", "sqlite"), key)
	if err != nil {
		slog.Error("failed to open snapshot store", "error", err)
		os.Exit(1)
	}
	defer closeRepo()

	state, restored, err := snapshot.Restore(ctx, repo, key)
	if err != nil {
		slog.Warn("snapshot unreadable, starting from defaults", "key", key, "error", err)
	}
	if !restored {
		state = catalog.DefaultState()
	}
	slog.Info("store initialised", "restored", restored, "bundles", len(state.Bundles), "cart_lines", len(state.Cart))

	store := app.NewStore(state)
	saver := snapshot.NewSaver(repo, store, key)
	handler := httpx.NewHandler(store, customerapp.NewDirectory(customerapp.MockCustomers()), saver)

	addr := getEnv("HTTP_ADDR", ":8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           otelhttp.NewHandler(httpx.NewRouter(handler), "dashboard-api"),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("dashboard API running", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http shutdown error", "error", err)
	}
	slog.Info("dashboard API stopped")
}

// openRepository picks the snapshot backend. "memory" returns a nil
// repository, which the saver and Restore both treat as "nothing persisted".
func openRepository(ctx context.Context, backend, key string) (snapshot.Repository, func(), error) {
	noop := func() {}

	switch backend {
	case "memory":
		slog.Info("snapshot backend", "backend", backend)
		return nil, noop, nil

	case "redis":
		addr := getEnv("REDIS_ADDR", "localhost:6379")
		c := cache.NewRedisCache(addr, serviceName)
		if err := cache.Ping(ctx, c); err != nil {
			return nil, noop, err
		}
		slog.Info("snapshot backend", "backend", backend, "addr", addr)
		return snapshotredis.NewRepository(c), noop, nil

	case "sqlite":
		path := getEnv("SQLITE_PATH", "./data/bundles.db")
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, noop, err
		}
		repo, err := snapshotsqlite.Open(path)
		if err != nil {
			return nil, noop, err
		}

		retain, err := strconv.Atoi(getEnv("SNAPSHOT_RETAIN", "50"))
		if err != nil {
			slog.Warn("invalid SNAPSHOT_RETAIN, using 50", "error", err)
			retain = 50
		}
		pruned, err := repo.Prune(ctx, key, retain)
		if err != nil {
			slog.Warn("snapshot prune failed", "error", err)
		}
		slog.Info("snapshot backend", "backend", backend, "path", path, "pruned", pruned)

		return repo, func() {
			if err := repo.Close(); err != nil {
				slog.Error("sqlite close error", "error", err)
			}
		}, nil
	}

	return nil, noop, errors.New("unknown SNAPSHOT_BACKEND " + strconv.Quote(backend))
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
