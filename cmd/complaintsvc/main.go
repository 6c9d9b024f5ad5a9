package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/fasalmbt/complainto/internal/app"
	"github.com/fasalmbt/complainto/internal/config"
	"github.com/fasalmbt/complainto/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.Init(logger.ConfigFromEnv())
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zl.Sync()

	if err := app.Run(cfg, zl); err != nil {
		zl.Fatal("app exited", zap.Error(err))
	}
}
