package main

import (
	"os"

	"hotelinv/config"
	"hotelinv/helper"
	"hotelinv/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	logger.InitLogger()

	if len(os.Args) < 2 {
		log.Fatal().Msg("usage: migrate up|down|step-up|drop|version")
	}

	cfg := config.Get()
	logger.SetLogLevel(cfg)
	logger.WithProcess("migrate")

	if err := helper.Runner(cfg, os.Args[1]); err != nil {
		log.Fatal().Err(err).Str("action", os.Args[1]).Msg("migration failed")
	}
}
