package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"hotelinv/config"
	"hotelinv/di"
	"hotelinv/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)
	logger.WithProcess("notifier")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	worker := di.InitializeWorker()
	defer worker.Close()

	log.Info().Str("topic", cfg.Kafka.Topics.BookingEvents).Msg("Starting booking event notifier.")

	if err := worker.Kafka.Consume(ctx, cfg.Kafka.ConsumerGroup, cfg.Kafka.Topics.BookingEvents, worker.Notify.HandleEvent); err != nil {
		log.Error().Err(err).Msg("Notifier stopped.")
	}
}
