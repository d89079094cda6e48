package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cl7paBka/goar-tomsk-web/config"
	_ "github.com/cl7paBka/goar-tomsk-web/docs"
	"github.com/cl7paBka/goar-tomsk-web/internal/migrate"
	"github.com/cl7paBka/goar-tomsk-web/internal/producer"
	"github.com/cl7paBka/goar-tomsk-web/internal/repository"
	"github.com/cl7paBka/goar-tomsk-web/internal/service"
	"github.com/cl7paBka/goar-tomsk-web/internal/transport/http/router"
	"github.com/cl7paBka/goar-tomsk-web/pkg/database"
	"github.com/cl7paBka/goar-tomsk-web/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// @Title Goar Cafe API
// @Version 1.0
// @Description API веб-бэкенда кафе: пользователи, каталог, заказы, платежи
// @BasePath /
func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}

	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)
	db := database.ConnectDB(&cfg.DB.Config, log)
	defer database.CloseDB(db, log)

	if err := migrate.MigrateCafeDB(context.Background(), db, log, migrate.DefaultMigrateOptions()); err != nil {
		log.Fatal("Миграция не удалась", zap.Error(err))
	}

	repos := repository.New(db)

	// Шина событий опциональна: без брокеров сервис работает без публикаций.
	var events service.EventBus
	if len(cfg.KafkaBrokers) > 0 {
		p := producer.NewOrderEventProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer p.Close()
		events = p
	}

	users := service.NewUserService(repos, log)
	catalog := service.NewCatalogService(repos, log)
	orders := service.NewOrderService(repos, events, log)

	r := router.Router(users, catalog, orders, log)

	srv := &http.Server{
		Addr:    cfg.Host + ":" + cfg.Port,
		Handler: r,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("Запуск HTTP-сервера", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP-сервер завершился с ошибкой", zap.Error(err))
		}
	}()

	<-quit
	log.Info("Остановка HTTP-сервера...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Не удалось корректно остановить сервер", zap.Error(err))
	}
	log.Info("HTTP-сервер остановлен")
}
