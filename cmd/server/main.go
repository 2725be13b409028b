package main

import (
	"os"

	"taskboard/internal/config"
	"taskboard/internal/server"

	log "github.com/sirupsen/logrus"
)

// @title           Taskboard API
// @version         1.0
// @description     Users own columns, columns own cards, cards own comments.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	cfg := config.Load()
	logger := newLogger(cfg)

	s, err := server.Init(cfg, logger)
	if err != nil {
		logger.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}

func newLogger(cfg *config.Config) *log.Logger {
	logger := log.New()
	logger.SetOutput(os.Stdout)

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("⚠️  unknown LOG_LEVEL %q, using info", cfg.LogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.LogFormat == "json" {
		logger.SetFormatter(&log.JSONFormatter{})
	}
	return logger
}
