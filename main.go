package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/davidbrain001/AirBnB-clone-v3/internal/config"
	"github.com/davidbrain001/AirBnB-clone-v3/internal/db"
	"github.com/davidbrain001/AirBnB-clone-v3/internal/logger"
	"github.com/davidbrain001/AirBnB-clone-v3/internal/server"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	lg := logger.New(logger.Config{Format: cfg.LogFormat, Level: logger.ParseLevel(cfg.LogLevel)})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	connectCtx, stopConnect := context.WithTimeout(ctx, 2*time.Minute)
	d, err := db.Connect(connectCtx, cfg.DBDriver, cfg.DSN())
	stopConnect()
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer d.Close()

	if err := db.EnsureSchema(ctx, d); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}

	links := db.NewLinks(cfg.StorageMode, d)

	// Seed fixtures (optional)
	if cfg.SeedFile != "" {
		f, err := db.LoadFixtures(cfg.SeedFile)
		if err != nil {
			log.Fatalf("seed: %v", err)
		}
		if err := db.Seed(ctx, d, links, f); err != nil {
			lg.Error("seed failed", "file", cfg.SeedFile, "err", err)
		}
	}

	gin.SetMode(gin.ReleaseMode)
	r := server.New(server.Deps{DB: d, Links: links, Log: lg})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           server.WithCORS(r),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
		defer stop()
		_ = srv.Shutdown(shutdownCtx)
	}()

	lg.Info("listening", "addr", srv.Addr, "storage", cfg.StorageMode, "driver", cfg.DBDriver)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		lg.Error("server stopped", "err", err)
	}
}
