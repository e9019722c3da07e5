package config

import (
	"errors"
	"log"
	"os"
)

var ErrMissingSecret = errors.New("SHOP_JWT_SECRET must be set")

type Config struct {
	Port      string
	DBDSN     string
	JWTSecret string
	LogFile   string
}

// Load reads configuration from the environment. SHOP_JWT_SECRET has no
// default: tokens must never be signed with a key baked into the binary.
func Load() (Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = ":memory:" // credential/order store lives in memory by default
	}
	cfg := Config{
		Port:      port,
		DBDSN:     dsn,
		JWTSecret: os.Getenv("SHOP_JWT_SECRET"),
		LogFile:   os.Getenv("LOG_FILE"),
	}
	if cfg.JWTSecret == "" {
		return Config{}, ErrMissingSecret
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.LogFile)
	return cfg, nil
}
