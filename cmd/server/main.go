// Package main is the web server entry point: configuration, wiring and
// the HTTP listener lifecycle
package main

import (
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"learning-web/internal/adapters/handler"
	"learning-web/internal/adapters/repository"
	"learning-web/internal/adapters/system"
	"learning-web/internal/adapters/websocket"
	"learning-web/internal/config"
	"learning-web/internal/core/ports"
	"learning-web/internal/core/services"
)

func main() {
	// 1. Load Configuration from Environment
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Logging, optionally teed into the websocket log stream
	var logOutput io.Writer = os.Stdout
	var logHub *websocket.LogHub
	if cfg.LogStream.Secret != "" {
		logHub = websocket.NewLogHub(cfg.LogStream.Secret)
		go logHub.Run(ctx)
		logOutput = io.MultiWriter(os.Stdout, logHub)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logOutput, &slog.HandlerOptions{Level: cfg.App.LogLevel})))

	slog.Info("[1/4] Configuration loaded",
		"cache_strategy", cfg.App.CacheStrategy,
		"frontend_dir", cfg.Paths.FrontendDir,
		"dist_dir", cfg.Paths.DistDir,
		"views_dir", cfg.Paths.ViewsDir,
		"content_cache", cfg.Cache.Backend,
	)

	// 3. Content cache
	collector := system.NewCollector(cfg.Paths.FrontendDir)
	contentCache, closeCache := buildContentCache(ctx, cfg, collector)
	defer closeCache()
	slog.Info("[2/4] Content cache ready", "backend", cfg.Cache.Backend)

	// 4. Core services
	registry, err := services.NewPageRegistry(services.DefaultPages())
	if err != nil {
		log.Fatalf("Invalid page registry: %v", err)
	}
	loader := services.NewContentLoader(contentCache, cfg.Cache.TTL)
	renderer := services.NewPageRenderer(loader, cfg.Paths.ViewsDir, cfg.Paths.LayoutFile)
	resolver := services.NewStaticResolver(loader)

	// 5. HTTP handlers
	routes := handler.NewAPIHandler(collector).Routes()
	if logHub != nil {
		routes = append(routes, handler.Route{Method: http.MethodGet, Path: "/api/logs/stream", Handler: logHub.ServeWS})
	}
	dispatcher, err := handler.NewDispatcher(routes)
	if err != nil {
		log.Fatalf("Invalid API route table: %v", err)
	}
	slog.Info("[3/4] Handlers initialized",
		"pages", len(registry.Paths()),
		"api_routes", len(dispatcher.Routes()),
	)

	router := handler.NewRouter(dispatcher, registry, renderer, resolver, handler.RouterOptions{
		Strategy:     cfg.App.CacheStrategy,
		FrontendRoot: cfg.Paths.FrontendDir,
		DistRoot:     cfg.Paths.DistDir,
	})

	// 6. Start HTTP Server and wait for a shutdown signal
	server := &http.Server{
		Addr:              cfg.App.Addr(),
		Handler:           handler.WithRequestLogging(router),
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(slog.Default().Handler(), slog.LevelWarn),
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("[4/4] Server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			log.Fatalf("HTTP server failed: %v", err)
		}
	case <-ctx.Done():
	}

	slog.Info("Shutting down", "timeout", cfg.HTTP.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}

// buildContentCache selects the configured ContentCache backend.
// The returned cache is nil when caching is off.
func buildContentCache(ctx context.Context, cfg *config.Config, metrics ports.MetricsProvider) (ports.ContentCache, func()) {
	switch cfg.Cache.Backend {
	case config.ContentCacheMemory:
		cache := repository.NewMemoryContentCache()
		services.NewCacheWatchdog(cache, metrics, cfg.Cache.WatchdogInterval, cfg.Cache.MemoryThreshold).Start(ctx)
		return cache, func() {}

	case config.ContentCacheRedis:
		rdb := connectRedis(ctx, cfg.Redis, 5, 2*time.Second)
		return repository.NewRedisContentCache(rdb), func() { rdb.Close() }

	default:
		return nil, func() {}
	}
}

// connectRedis attempts to connect to Redis with retry logic
// Retries cover containers that are still starting up
func connectRedis(ctx context.Context, cfg config.RedisConfig, maxRetries int, retryDelay time.Duration) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
	})

	var err error
	for i := 1; i <= maxRetries; i++ {
		err = rdb.Ping(ctx).Err()
		if err == nil {
			return rdb
		}

		slog.Warn("Cannot ping Redis",
			"attempt", i,
			"max_attempts", maxRetries,
			"error", err,
		)

		if i < maxRetries {
			time.Sleep(retryDelay)
		}
	}

	log.Fatalf("Cannot connect to Redis after %d attempts: %v", maxRetries, err)
	return nil // unreachable
}
