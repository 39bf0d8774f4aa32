package main

import (
	"hotelinv/config"
	"hotelinv/di"
	"hotelinv/helper"
	"hotelinv/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Hotel Inventory API
// @version 1.0
// @description Booking ledger, availability, reporting and notification API for a small hotel.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)
	logger.WithProcess("api")

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("auto migration failed")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
