package main

import (
	"log"
	"net/http"

	"gameshelf/internal/config"
	"gameshelf/internal/db"
	"gameshelf/internal/server"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.LogLevel == "debug" {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zapCfg.Build()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	var conn *gorm.DB
	if cfg.DatabaseURL != "" {
		conn, err = db.Open(cfg)
		if err != nil {
			logger.Fatal("database connection failed", zap.Error(err))
		}
		if err := db.Migrate(conn); err != nil {
			logger.Fatal("database migration failed", zap.Error(err))
		}
	} else {
		logger.Warn("DATABASE_URL not set, catalog runs in memory")
	}

	srv := server.New(conn, cfg, logger)
	addr := ":" + cfg.Port
	logger.Info("gameshelf listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
