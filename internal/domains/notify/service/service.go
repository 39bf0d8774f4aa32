package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotelinv/config"
	"hotelinv/infras/kafka"
	"hotelinv/infras/otel"
	"hotelinv/infras/telegram"
	"hotelinv/internal/domains/availability/engine"
	"hotelinv/internal/domains/booking/entry"
	"hotelinv/internal/domains/booking/event"
	"hotelinv/internal/domains/booking/ingest"
	"hotelinv/internal/domains/booking/model"
	"hotelinv/internal/domains/booking/repository"
	"hotelinv/internal/domains/notify/message"
	"hotelinv/internal/domains/notify/model/dto"
	"hotelinv/internal/domains/session"
	"hotelinv/shared"
	"hotelinv/shared/constant"
	"hotelinv/shared/failure"
	"hotelinv/shared/timezone"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

const (
	CommandStart      = "start"
	CommandDetailRoom = "detailroom"
)

type Notify interface {
	// Deliver sends the chat message for a booking event.
	Deliver(ctx context.Context, evt event.BookingEvent) error
	HandleEvent(ctx context.Context, msg kafkaGo.Message) error
	SendDailyStatus(ctx context.Context, req dto.SendNotificationRequest) (dto.NotificationResponse, error)
	SendRoomTypeDetails(ctx context.Context, req dto.SendNotificationRequest) (dto.NotificationResponse, error)
	HandleCommand(ctx context.Context, cmd telegram.Command) (string, error)
	SendScheduledReport(ctx context.Context) error
}

type serviceImpl struct {
	sessions *session.Registry
	repo     repository.Sheet
	telegram telegram.Telegram
	engine   engine.Engine
	cfg      *config.Config
	otel     otel.Otel
}

var _ event.Sink = (*serviceImpl)(nil)

func New(sessions *session.Registry, repo repository.Sheet, tg telegram.Telegram, cfg *config.Config, otel otel.Otel) Notify {
	return &serviceImpl{
		sessions: sessions,
		repo:     repo,
		telegram: tg,
		engine:   engine.New(cfg.Hotel.UnitsPerType, cfg.Hotel.TotalCapacity),
		cfg:      cfg,
		otel:     otel,
	}
}

// send posts text to chatID, or to the hotel channel when chatID is 0.
// It reports false without error when the bot is not configured.
func (s *serviceImpl) send(ctx context.Context, chatID int64, text string) (bool, error) {
	if !s.telegram.Enabled() {
		log.Warn().Msg("telegram is not configured, message not sent")

		return false, nil
	}

	if err := s.telegram.SendMessage(ctx, chatID, text); err != nil {
		return false, fmt.Errorf("failed to send telegram message: %w", err)
	}

	return true, nil
}

func (s *serviceImpl) Deliver(ctx context.Context, evt event.BookingEvent) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notify.Deliver")
	defer scope.End()
	defer scope.TraceIfError(&err)

	text, ok := message.ForEvent(evt)
	if !ok {
		log.Warn().Str("kind", string(evt.Kind)).Msg("no message for booking event kind")

		return nil
	}

	_, err = s.send(ctx, 0, text)

	return err
}

// HandleEvent consumes one booking event from the broker. Undecodable payloads
// are skipped so they do not block the partition.
func (s *serviceImpl) HandleEvent(ctx context.Context, msg kafkaGo.Message) error {
	evt, err := kafka.Decode[event.BookingEvent](msg)
	if err != nil {
		log.Error().Err(err).Int64("offset", msg.Offset).Msg("skipping malformed booking event")

		return nil
	}

	return s.Deliver(ctx, evt)
}

func (s *serviceImpl) day(value string) (time.Time, error) {
	if value == constant.Empty {
		return timezone.Today(), nil
	}

	d, err := shared.ParseDay(value)
	if err != nil {
		return time.Time{}, failure.BadRequest(err) // nolint:wrapcheck
	}

	return d, nil
}

func (s *serviceImpl) sessionBookings(ctx context.Context) ([]model.Booking, error) {
	sess, err := s.sessions.FromContext(ctx)
	if err != nil {
		return nil, failure.Unauthorized("session required") // nolint:wrapcheck
	}

	return sess.Ledger.All(), nil
}

func (s *serviceImpl) SendDailyStatus(ctx context.Context, req dto.SendNotificationRequest) (res dto.NotificationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notify.SendDailyStatus")
	defer scope.End()
	defer scope.TraceIfError(&err)

	day, err := s.day(req.Date)
	if err != nil {
		return res, err
	}

	bookings, err := s.sessionBookings(ctx)
	if err != nil {
		return res, err
	}

	res.Message = message.DailyStatus(day, bookings, s.engine)
	res.Sent, err = s.send(ctx, 0, res.Message)

	return res, err
}

func (s *serviceImpl) SendRoomTypeDetails(ctx context.Context, req dto.SendNotificationRequest) (res dto.NotificationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notify.SendRoomTypeDetails")
	defer scope.End()
	defer scope.TraceIfError(&err)

	day, err := s.day(req.Date)
	if err != nil {
		return res, err
	}

	bookings, err := s.sessionBookings(ctx)
	if err != nil {
		return res, err
	}

	roomTypes := entry.ValidRoomTypes(s.cfg.Hotel.RoomTypes, bookings)

	res.Message = message.RoomTypeDetails(day, bookings, roomTypes, s.engine)
	res.Sent, err = s.send(ctx, 0, res.Message)

	return res, err
}

// stored reads the active bookings of the default sheet.
func (s *serviceImpl) stored(ctx context.Context) ([]model.Booking, error) {
	rows, err := s.repo.Load(ctx, s.cfg.Hotel.DefaultSheet)
	if err != nil {
		log.Error().Err(err).Str("sheet", s.cfg.Hotel.DefaultSheet).Msg("failed to load sheet for bot")

		return nil, fmt.Errorf("failed to load sheet: %w", err)
	}

	result, err := ingest.Run(ingest.SourceSheet, ingest.FromSheet(rows))
	if err != nil {
		return nil, err
	}

	return result.Active(), nil
}

func (s *serviceImpl) HandleCommand(ctx context.Context, cmd telegram.Command) (reply string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notify.HandleCommand")
	defer scope.End()
	defer scope.TraceIfError(&err)

	log.Info().Str("command", cmd.Name).Str("from", cmd.From).Int64("chat_id", cmd.ChatID).Msg("bot command received")

	switch cmd.Name {
	case CommandStart:
		return message.Welcome(cmd.From), nil
	case CommandDetailRoom:
		if err := s.telegram.SendMessage(ctx, cmd.ChatID, message.Fetching); err != nil {
			log.Warn().Err(err).Msg("failed to acknowledge bot command")
		}

		bookings, err := s.stored(ctx)
		if err != nil || len(bookings) == 0 {
			if err != nil && !errors.Is(err, ingest.ErrEmptyBatch) {
				log.Error().Err(err).Msg("failed to read bookings for bot")
			}

			return message.NoData, nil
		}

		return message.DetailRoom(timezone.Today(), bookings, s.engine), nil
	default:
		return constant.Empty, nil
	}
}

func (s *serviceImpl) SendScheduledReport(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notify.SendScheduledReport")
	defer scope.End()
	defer scope.TraceIfError(&err)

	bookings, err := s.stored(ctx)
	if err != nil && !errors.Is(err, ingest.ErrEmptyBatch) {
		return err
	}

	text := message.NoData
	if len(bookings) > 0 {
		text = message.ScheduledReport(timezone.Today(), bookings, s.engine)
	}

	_, err = s.send(ctx, 0, text)

	return err
}
