package config

import (
	"flag"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseDSN string `env:"DATABASE_URI"`
	AuthSecret  string `env:"AUTH_SECRET"`

	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Пагинация списочных ручек по умолчанию
	DefaultPageSize int `env:"DEFAULT_PAGE_SIZE"`
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "адрес сервера (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS")
	flag.IntVar(&cfg.DefaultPageSize, "page-size", cfg.DefaultPageSize, "размер страницы списков по умолчанию")

	flag.Parse()

	// Defaults
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 10
	}
	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8080"
	}

	return cfg
}
