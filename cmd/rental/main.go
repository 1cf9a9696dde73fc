package main

import (
	stdLog "log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/Astemirdum/rental-service/rental/app"
	"github.com/Astemirdum/rental-service/rental/config"
)

// @title Car Rental Service
// @version 1.0
// @description Car inventory and booking API.

// @host localhost:8080
// @BasePath /api/v1

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Fatalf("load envs from .env: %v", err)
	}

	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Second * 15),
	)

	if err := app.Run(cfg); err != nil {
		stdLog.Fatalf("app run: %v", err)
	}
}
