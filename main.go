package main

import (
	"log"

	"microtask-backend/config"
	"microtask-backend/internal/api"
	"microtask-backend/internal/database"
	"microtask-backend/internal/gateway/stripe"
	"microtask-backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.Init(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		logger.Log.Fatal("failed to connect database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		logger.Log.Fatal("failed to migrate database", zap.Error(err))
	}

	gw := stripe.New(cfg.StripeSecretKey)

	router := api.NewRouter(cfg, db, gw)

	logger.Log.Info("server starting", zap.String("addr", cfg.Addr()))
	if err := router.Run(cfg.Addr()); err != nil {
		logger.Log.Fatal("server stopped", zap.Error(err))
	}
}
