package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/itemshop/storefront/internal/api/handlers"
	"github.com/itemshop/storefront/internal/api/middleware"
	"github.com/itemshop/storefront/internal/cache"
	"github.com/itemshop/storefront/internal/cart"
	"github.com/itemshop/storefront/internal/config"
	"github.com/itemshop/storefront/internal/health"
	"github.com/itemshop/storefront/internal/metrics"
	"github.com/itemshop/storefront/internal/poller"
	"github.com/itemshop/storefront/internal/ratelimit"
	service "github.com/itemshop/storefront/internal/services"
	"github.com/itemshop/storefront/internal/telemetry"
	"github.com/itemshop/storefront/pkg/commerce"
	"github.com/redis/go-redis/v9"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	tracerProvider, err := telemetry.InitTracerProvider(context.Background(), cfg.Telemetry.OTLPEndpoint)
	if err != nil {
		slog.Error("❌ Error initializing the tracer provider", "error", err.Error())
		os.Exit(1)
	}

	// Redis setup
	redisOpts, err := redis.ParseURL(cfg.RedisConnect.GetDSN())
	if err != nil {
		slog.Error("❌ Error parsing the redis DSN", "error", err.Error())
		os.Exit(1)
	}

	redisClient := redis.NewClient(redisOpts)
	catalogCache := cache.NewRedisCache(redisClient, &cfg.Cache)
	loginLimiter := ratelimit.NewRedisLimiter(redisClient, &cfg.Rate)

	defer func() {
		if err := catalogCache.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Redis connection closed")
		}
	}()

	commerceClient := commerce.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
	cartRepo := cart.NewCookieRepository()

	catalogService := service.NewCatalogService(commerceClient, catalogCache, &cfg.Cache)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartRepo, catalogService)
	sessionService := service.NewSessionService(commerceClient)
	sessionHandler := handlers.NewSessionHandler(sessionService, loginLimiter)
	checkoutService := service.NewCheckoutService(commerceClient, catalogService)
	checkoutHandler := handlers.NewCheckoutHandler(cartRepo, sessionService, checkoutService)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error building the health checks", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("upstream client initialized", slog.String("env", cfg.Env), slog.String("upstream", cfg.Upstream.BaseURL))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", catalogHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	routerMux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem())
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{id}", cartHandler.RemoveItem())
	routerMux.HandleFunc("GET /api/v1/cart/count", cartHandler.CartCount())
	routerMux.HandleFunc("GET /api/v1/session", sessionHandler.GetSession())
	routerMux.HandleFunc("POST /api/v1/session/login", sessionHandler.Login())
	routerMux.HandleFunc("POST /api/v1/session/logout", sessionHandler.Logout())
	routerMux.HandleFunc("POST /api/v1/users/signup", sessionHandler.Signup())
	routerMux.HandleFunc("POST /api/v1/checkout", checkoutHandler.Checkout())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)

	// Background catalog refresh keeps the cache warm between requests.
	catalogPoller := poller.New(catalogService, cfg.Poll.Interval)
	catalogPoller.Start(context.Background())

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	catalogPoller.Stop()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}

}
