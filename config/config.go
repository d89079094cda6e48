package config

import (
	"os"
	"strings"

	"github.com/cl7paBka/goar-tomsk-web/pkg/database"

	"go.uber.org/zap"
)

type Config struct {
	Host        string
	Port        string
	TokenSecret string
	DB          DB

	KafkaBrokers []string
	KafkaTopic   string
}

type DB struct {
	database.Config
}

// Load читает конфигурацию из переменных окружения.
// Несекретные значения имеют дефолты, секреты (пароль БД, секрет токена) — обязательны.
func Load(log *zap.Logger) *Config {
	return &Config{
		Host:         getEnvDefault("APP_HOST", "0.0.0.0"),
		Port:         getEnvDefault("APP_PORT", "8000"),
		TokenSecret:  getEnv("SECRET_KEY", log),
		DB:           LoadDB(log),
		KafkaBrokers: splitAndTrim(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   getEnvDefault("KAFKA_TOPIC_ORDERS", "orders.events"),
	}
}

// LoadDB читает только настройки базы данных — для утилит вроде мигратора,
// которым не нужны секреты приложения.
func LoadDB(log *zap.Logger) DB {
	return DB{
		Config: database.Config{
			Host:     getEnvDefault("DATABASE_HOST", "localhost"),
			Port:     getEnvDefault("DATABASE_PORT", "5432"),
			User:     getEnvDefault("DATABASE_USER", "postgres"),
			Password: getEnv("DATABASE_PASSWORD", log),
			Name:     getEnvDefault("DATABASE_NAME", "postgres"),
			SSLMode:  getEnvDefault("DATABASE_SSLMODE", "disable"),
		},
	}
}

func getEnv(key string, log *zap.Logger) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	log.Error("Обязательная переменная окружения не установлена", zap.String("key", key))
	panic("missing required environment variable: " + key)
}

func getEnvDefault(key, def string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := []string{}
	for _, p := range strings.Split(s, ",") {
		pt := strings.TrimSpace(p)
		if pt != "" {
			parts = append(parts, pt)
		}
	}
	return parts
}
