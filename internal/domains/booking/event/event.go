package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=../mocks/event_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotelinv/config"
	"hotelinv/infras/kafka"
	"hotelinv/infras/otel"
	"hotelinv/internal/domains/booking/model"
	"hotelinv/shared/constant"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindCreated Kind = "booking.created"
	KindUpdated Kind = "booking.updated"
)

// Booking is the snapshot carried by an event.
type Booking struct {
	BookingID    string          `json:"booking_id"`
	GuestName    string          `json:"guest_name"`
	RoomType     string          `json:"room_type"`
	CheckIn      time.Time       `json:"check_in"`
	CheckOut     time.Time       `json:"check_out"`
	Status       model.Status    `json:"status"`
	TotalPayment decimal.Decimal `json:"total_payment"`
	Currency     string          `json:"currency"`
}

type BookingEvent struct {
	Kind       Kind      `json:"kind"`
	SessionID  string    `json:"session_id"`
	Booking    Booking   `json:"booking"`
	OccurredAt time.Time `json:"occurred_at"`
}

func New(kind Kind, sessionID string, b model.Booking, at time.Time) BookingEvent {
	return BookingEvent{
		Kind:      kind,
		SessionID: sessionID,
		Booking: Booking{
			BookingID:    b.BookingID,
			GuestName:    b.GuestName,
			RoomType:     b.RoomType,
			CheckIn:      b.CheckIn,
			CheckOut:     b.CheckOut,
			Status:       b.Status,
			TotalPayment: b.TotalPayment,
			Currency:     b.Currency,
		},
		OccurredAt: at,
	}
}

// Sink receives events directly when no broker is configured.
type Sink interface {
	Deliver(ctx context.Context, evt BookingEvent) error
}

type Publisher interface {
	Publish(ctx context.Context, events ...BookingEvent) (err error)
}

type publisherImpl struct {
	client kafka.Client
	topic  string
	sink   Sink
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, sink Sink, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		topic:  cfg.Kafka.Topics.BookingEvents,
		sink:   sink,
		otel:   otel,
	}
}

func (p *publisherImpl) Publish(ctx context.Context, events ...BookingEvent) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.Publish")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if len(events) == 0 {
		return nil
	}

	if p.client.Enabled() {
		messages := make([]kafka.Message, 0, len(events))
		for _, evt := range events {
			messages = append(messages, kafka.Message{Key: evt.Booking.BookingID, Value: evt})
		}

		if err = p.client.SendMessages(ctx, p.topic, messages...); err != nil {
			return fmt.Errorf("failed to publish booking events: %w", err)
		}

		return nil
	}

	if p.sink == nil {
		log.Debug().Int("count", len(events)).Msg("no event sink configured, booking events discarded")

		return nil
	}

	var errs []error
	for _, evt := range events {
		if err := p.sink.Deliver(ctx, evt); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
