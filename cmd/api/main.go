package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cocktails-rolodex/cocktails-api/internal/audit"
	"github.com/cocktails-rolodex/cocktails-api/internal/config"
	dbpkg "github.com/cocktails-rolodex/cocktails-api/internal/db"
	"github.com/cocktails-rolodex/cocktails-api/internal/logger"
	"github.com/cocktails-rolodex/cocktails-api/internal/routes"
)

func main() {

	cfg := config.Load()

	zl, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		zl.Fatal("failed to connect database", zap.Error(err))
	}

	// ======================================================
	// AUDIT
	// ======================================================
	var publisher audit.Publisher
	if rdb := dbpkg.NewRedis(cfg, zl); rdb != nil {
		defer func() { _ = rdb.Close() }()
		publisher = audit.NewRedisPublisher(rdb, cfg.AuditChannel)
	}

	dispatcher := audit.NewDispatcher(audit.New(db), publisher, zl, 0)

	// ======================================================
	// HTTP
	// ======================================================
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, db, cfg, zl, dispatcher)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		zl.Info("server running", zap.String("addr", cfg.Addr()), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}

	// drain pending audit events before the database goes away
	dispatcher.Close()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
