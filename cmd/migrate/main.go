package main

import (
	"context"
	"os"

	"github.com/cl7paBka/goar-tomsk-web/config"
	"github.com/cl7paBka/goar-tomsk-web/internal/migrate"
	"github.com/cl7paBka/goar-tomsk-web/pkg/database"
	"github.com/cl7paBka/goar-tomsk-web/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}

	defer logger.Sync()

	log := logger.L()

	dbCfg := config.LoadDB(log)
	db := database.ConnectDB(&dbCfg.Config, log)
	defer database.CloseDB(db, log)

	if err := migrate.MigrateCafeDB(context.Background(), db, log, migrate.DefaultMigrateOptions()); err != nil {
		log.Fatal("Миграция не удалась", zap.Error(err))
	}

	log.Info("Миграция выполнена")
}
