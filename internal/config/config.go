package config

import (
	"log"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the process-level settings. JWT_SECRET and JWT_EXPIRES_IN are
// read by the auth package directly and are not mirrored here.
type Config struct {
	DatabaseURL     string `env:"DATABASE_URL"`
	HTTPPort        string `env:"HTTP_PORT" env-default:"8080"`
	LogLevel        string `env:"LOG_LEVEL" env-default:"info"`
	BrandNameUnique bool   `env:"BRAND_NAME_UNIQUE" env-default:"true"`
	ActiveSaleCap   int64  `env:"ACTIVE_SALE_CAP" env-default:"3"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("failed to read config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatalf("DATABASE_URL is empty")
	}
	return &cfg
}
