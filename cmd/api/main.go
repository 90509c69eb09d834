package main

import (
	"fmt"
	"os"

	"battery-case/internal/api"
	"battery-case/internal/config"
	"battery-case/internal/logging"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.ServerFromEnv()
	log := logging.New(cfg.LogLevel)

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	if info, err := os.Stat(cfg.PresetDir); err == nil && info.IsDir() {
		log.Info().Str("dir", cfg.PresetDir).Msg("preset directory found")
	} else {
		log.Warn().Str("dir", cfg.PresetDir).Err(err).Msg("preset directory not found")
	}

	router := api.NewRouter(cfg, log)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().Str("addr", addr).Msg("starting API server")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
