package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyLogger   = key("logger")
	KeyMetrics  = key("metrics")
	KeyUUID     = key("uuid")
	KeyUsername = key("username")
	KeyRole     = key("role")
)

type Config struct {
	Service  Service
	Platform Platform
	Logger   Logger
	Metrics  Metrics
	Postgres Postgres
	Kafka    Kafka
	Users    Users
	Auth     Auth
	Realtime Realtime
}

type Service struct {
	Port string `env:"FORUM_SERVICE_PORT" env-default:"8080"`
	Name string `env:"FORUM_SERVICE_NAME" env-default:"forum-service"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

type Postgres struct {
	User     string `env:"FORUM_SERVICE_POSTGRES_USER"`
	Password string `env:"FORUM_SERVICE_POSTGRES_PASSWORD"`
	Database string `env:"FORUM_SERVICE_POSTGRES_DB"`
	Host     string `env:"FORUM_SERVICE_POSTGRES_HOST"`
	Port     string `env:"FORUM_SERVICE_POSTGRES_PORT"`
}

type Kafka struct {
	Host      string `env:"KAFKA_HOST"`
	Port      string `env:"KAFKA_PORT"`
	UserTopic string `env:"USER_LIFECYCLE_TOPIC"`
}

type Users struct {
	BaseURL string        `env:"USER_SERVICE_URL"`
	Timeout time.Duration `env:"USER_SERVICE_TIMEOUT" env-default:"5s"`
}

type Auth struct {
	JWTSecret string `env:"AUTH_JWT_SECRET"`
}

type Realtime struct {
	JWTSecret string `env:"REALTIME_JWT_SECRET"`
}

func MustLoad() *Config {
	cfg := &Config{}

	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		log.Fatalf("failed to read config: %v", err)
	}

	return cfg
}
