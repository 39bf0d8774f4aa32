package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"hotelinv/config"
	"hotelinv/di"
	"hotelinv/shared/logger"
	"hotelinv/shared/schedule"

	"github.com/rs/zerolog/log"
)

func main() {
	reportAt := flag.String("report-at", "", "send the daily status report to the hotel chat at HH:MM (application timezone)")
	flag.Parse()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)
	logger.WithProcess("bot")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	worker := di.InitializeWorker()
	defer worker.Close()

	if *reportAt != "" {
		offset, err := schedule.ParseClock(*reportAt)
		if err != nil {
			log.Fatal().Err(err).Msg("Invalid -report-at value.")
		}

		go schedule.Daily(ctx, offset, worker.Notify.SendScheduledReport)
	}

	log.Info().Msg("Starting Telegram bot.")

	if err := worker.Telegram.Listen(ctx, worker.Notify.HandleCommand); err != nil {
		log.Error().Err(err).Msg("Telegram bot stopped.")
	}
}
