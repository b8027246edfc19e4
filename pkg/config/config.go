package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Host string
	Port int

	// Static assets. An empty StaticDir serves the bundled copy.
	StaticDir     string
	StaticURLPath string

	LogRequests bool
}

func FromEnv() Config {
	cfg := Config{
		Host: strFromEnv("HOST", "127.0.0.1"),
		Port: intFromEnv("PORT", 5000),

		StaticDir:     os.Getenv("STATIC_DIR"),
		StaticURLPath: strFromEnv("STATIC_URL_PATH", "/static"),

		LogRequests: boolFromEnv("LOG_REQUESTS", true),
	}
	return cfg
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func intFromEnv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return def
}

func strFromEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func boolFromEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch strings.ToLower(v) {
	case "1", "t", "true", "yes", "y", "on":
		return true
	case "0", "f", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}
