package main

import (
	"os"

	"badum_backend/internal/app"
	"badum_backend/internal/logger"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	if err := app.Run(configPath); err != nil {
		logger.Fatal("server exited", "error", err)
	}
}
