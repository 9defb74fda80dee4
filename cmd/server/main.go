package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vedran77/quill/internal/auth"
	"github.com/vedran77/quill/internal/config"
	"github.com/vedran77/quill/internal/database"
	postgresrepo "github.com/vedran77/quill/internal/repository/postgres"
	"github.com/vedran77/quill/internal/service"
	"github.com/vedran77/quill/internal/transport/http/handlers"
	"github.com/vedran77/quill/internal/transport/http/middleware"
	"github.com/vedran77/quill/internal/transport/ws"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Database
	if err := database.RunMigrations(ctx, cfg.DatabaseDSN()); err != nil {
		logger.Error("migrations", "error", err)
		os.Exit(1)
	}

	pool, err := database.Connect(ctx, cfg.DatabaseDSN())
	if err != nil {
		logger.Error("database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	blogRepo := postgresrepo.NewBlogRepo(pool)

	// Token codec - the secret is loaded once and injected here, never read
	// from the environment at call time.
	codec := auth.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)

	// WebSocket hub for the live blog feed
	hub := ws.NewHub()
	go hub.Run()

	// Services
	authService := service.NewAuthService(userRepo, codec)
	blogService := service.NewBlogService(blogRepo, userRepo, ws.NewHubNotifier(hub))

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(authService)
	blogHandler := handlers.NewBlogHandler(blogService)

	// Identity middleware for routes that need a resolved identity
	identity := middleware.Identity(codec, userRepo)

	// Routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	// Public
	mux.HandleFunc("POST /api/login", authHandler.Login)
	mux.HandleFunc("POST /api/users", userHandler.Create)
	mux.HandleFunc("GET /api/users", userHandler.List)
	mux.HandleFunc("GET /api/blogs", blogHandler.List)
	mux.HandleFunc("GET /api/blogs/stats", blogHandler.Stats)

	// Identity-resolved
	mux.Handle("POST /api/blogs", identity(http.HandlerFunc(blogHandler.Create)))
	mux.Handle("PUT /api/blogs/{id}", identity(http.HandlerFunc(blogHandler.Update)))
	mux.Handle("DELETE /api/blogs/{id}", identity(http.HandlerFunc(blogHandler.Delete)))

	// Live feed
	mux.Handle("GET /ws", ws.ServeWS(hub, codec))

	handler := middleware.CORS(middleware.Logging(logger)(middleware.Metrics(mux)))

	server := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: handler,
	}

	go func() {
		logger.Info("starting server", "addr", cfg.ServerAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
	}
	logger.Info("server stopped")
}
