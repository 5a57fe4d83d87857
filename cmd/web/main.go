package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/minishop/minishop-go/internal/config"
	"github.com/minishop/minishop-go/internal/handler"
	"github.com/minishop/minishop-go/internal/middleware"
	"github.com/minishop/minishop-go/internal/repository"
	"github.com/minishop/minishop-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabasePath)
	if err != nil {
		slog.Error("opening database failed", "path", cfg.DatabasePath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	render, err := handler.NewRenderer()
	if err != nil {
		slog.Error("parsing templates failed", "error", err)
		os.Exit(1)
	}

	itemRepo := repository.NewItemRepository(db)
	catalogService := service.NewCatalogService(itemRepo)
	catalogHandler := handler.NewCatalogHandler(catalogService, render)

	userRepo := repository.NewUserRepository(db)
	accountService := service.NewAccountService(userRepo)
	accountHandler := handler.NewAccountHandler(
		accountService, render,
		cfg.SessionSecret, cfg.SessionExpiry, cfg.RememberExpiry,
	)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Session(cfg.SessionSecret))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/", catalogHandler.HandleIndex)
	r.Get("/contact", catalogHandler.HandleContact)
	r.Get("/support", catalogHandler.HandleSupport)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Get("/registre", accountHandler.HandleRegisterForm)
		r.Post("/registre", accountHandler.HandleRegisterSubmit)
		r.Get("/login", accountHandler.HandleLoginForm)
		r.Post("/login", accountHandler.HandleLoginSubmit)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireLogin)
		r.Get("/logout", accountHandler.HandleLogout)
		r.Get("/create", catalogHandler.HandleCreateForm)
		r.Post("/create", catalogHandler.HandleCreateSubmit)
		r.Get("/buy/{id}", catalogHandler.HandleBuy)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
