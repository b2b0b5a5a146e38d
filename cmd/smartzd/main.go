package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sfwrprogclass/MoneySmarts/internal/api"
	"github.com/sfwrprogclass/MoneySmarts/internal/config"
	"github.com/sfwrprogclass/MoneySmarts/internal/db"
	"github.com/sfwrprogclass/MoneySmarts/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadServerFromEnv()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	gameCfg, err := config.LoadGameConfig(cfg.GameFile)
	if err != nil {
		logger.Error("load game config", "err", err)
		os.Exit(1)
	}

	var st store.Store
	if cfg.DatabaseURL != "" {
		pool, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("db connect failed", "err", err)
			os.Exit(1)
		}
		defer pool.Close()

		pg := store.NewPGStore(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			logger.Error("schema init failed", "err", err)
			os.Exit(1)
		}
		st = pg
		logger.Info("using postgres save store")
	} else {
		fs, err := store.NewFileStore(cfg.SaveDir)
		if err != nil {
			logger.Error("file store init failed", "err", err)
			os.Exit(1)
		}
		st = fs
		logger.Info("using file save store")
	}

	server := api.New(cfg, gameCfg, logger, st)
	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	logger.Info("smartz api listening", "addr", cfg.Addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed", "err", err)
		os.Exit(1)
	}
}
