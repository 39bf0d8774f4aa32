package di

import (
	"context"
	"time"

	"hotelinv/config"
	"hotelinv/infras/kafka"
	"hotelinv/infras/otel"
	"hotelinv/infras/telegram"
	notifyService "hotelinv/internal/domains/notify/service"

	"github.com/rs/zerolog/log"
)

const closeTimeout = 5 * time.Second

// Worker carries what the notifier and bot processes need outside the HTTP server.
type Worker struct {
	Config   *config.Config
	Otel     otel.Otel
	Kafka    kafka.Client
	Telegram telegram.Telegram
	Notify   notifyService.Notify
}

// Close releases the Kafka connections and flushes pending spans.
func (w *Worker) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	if err := w.Kafka.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close Kafka client.")
	}

	if err := w.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces.")
	}
}
