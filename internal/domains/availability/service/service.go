package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"
	"time"

	"hotelinv/config"
	"hotelinv/infras/otel"
	"hotelinv/internal/domains/availability/engine"
	"hotelinv/internal/domains/availability/model/dto"
	"hotelinv/internal/domains/booking/entry"
	"hotelinv/internal/domains/session"
	"hotelinv/shared"
	"hotelinv/shared/cache"
	"hotelinv/shared/constant"
	"hotelinv/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheRoomTypes = "availability:room-types"
	cacheActivity  = "availability:activity"
	cacheDay       = "availability:day"
	cacheCalendar  = "availability:calendar"
)

type Availability interface {
	RoomTypes(ctx context.Context, date string) (dto.RoomTypesResponse, error)
	Activity(ctx context.Context, date string) (dto.ActivityResponse, error)
	Day(ctx context.Context, date string) (dto.DayStatusResponse, error)
	Calendar(ctx context.Context, month string) (dto.CalendarResponse, error)
}

type serviceImpl struct {
	sessions *session.Registry
	engine   engine.Engine
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(sessions *session.Registry, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Availability {
	return &serviceImpl{
		sessions: sessions,
		engine:   engine.New(cfg.Hotel.UnitsPerType, cfg.Hotel.TotalCapacity),
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// view resolves the session and serves compute from cache, keyed by the ledger version.
func view[T any](ctx context.Context, s *serviceImpl, name string, param string, compute func(sess *session.Session) T) (res T, err error) {
	sess, err := s.sessions.FromContext(ctx)
	if err != nil {
		return res, failure.Unauthorized("session required") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(constant.CacheSessionPrefix, sess.ID, name, sess.Ledger.Version(), param)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for availability")

		return res, nil
	}

	res = compute(sess)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to save availability to cache")
		}
	}()

	return res, nil
}

func parseDay(value string) (time.Time, error) {
	day, err := shared.ParseDay(value)
	if err != nil {
		return time.Time{}, failure.BadRequest(err) // nolint:wrapcheck
	}
	return day, nil
}

func (s *serviceImpl) RoomTypes(ctx context.Context, date string) (res dto.RoomTypesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.RoomTypes")
	defer scope.End()
	defer scope.TraceIfError(&err)

	day, err := parseDay(date)
	if err != nil {
		return res, err
	}

	return view(ctx, s, cacheRoomTypes, day.Format(shared.DayLayout), func(sess *session.Session) dto.RoomTypesResponse {
		bookings := sess.Ledger.All()
		roomTypes := entry.ValidRoomTypes(s.cfg.Hotel.RoomTypes, bookings)
		free := s.engine.RoomTypeAvailability(day, bookings, roomTypes)

		out := dto.RoomTypesResponse{
			Date:      day.Format(shared.DayLayout),
			RoomTypes: make([]dto.RoomTypeFree, 0, len(roomTypes)),
		}
		for _, rt := range slices.Sorted(slices.Values(roomTypes)) {
			out.RoomTypes = append(out.RoomTypes, dto.RoomTypeFree{
				RoomType:  rt,
				Available: free[rt],
				Units:     s.engine.UnitsPerType(),
			})
		}
		return out
	})
}

func (s *serviceImpl) Activity(ctx context.Context, date string) (res dto.ActivityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.Activity")
	defer scope.End()
	defer scope.TraceIfError(&err)

	day, err := parseDay(date)
	if err != nil {
		return res, err
	}

	return view(ctx, s, cacheActivity, day.Format(shared.DayLayout), func(sess *session.Session) dto.ActivityResponse {
		var out dto.ActivityResponse
		out.FromModel(s.engine.DailyActivity(day, sess.Ledger.All()))
		return out
	})
}

func (s *serviceImpl) Day(ctx context.Context, date string) (res dto.DayStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.Day")
	defer scope.End()
	defer scope.TraceIfError(&err)

	day, err := parseDay(date)
	if err != nil {
		return res, err
	}

	return view(ctx, s, cacheDay, day.Format(shared.DayLayout), func(sess *session.Session) dto.DayStatusResponse {
		var out dto.DayStatusResponse
		out.FromModel(s.engine.OverallDayStatus(day, sess.Ledger.All()))
		return out
	})
}

func (s *serviceImpl) Calendar(ctx context.Context, month string) (res dto.CalendarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.Calendar")
	defer scope.End()
	defer scope.TraceIfError(&err)

	year, m, err := shared.ParseMonth(month)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	label := fmt.Sprintf("%04d-%02d", year, int(m))

	return view(ctx, s, cacheCalendar, label, func(sess *session.Session) dto.CalendarResponse {
		out := dto.CalendarResponse{Month: label}
		for _, d := range s.engine.Calendar(year, m, sess.Ledger.All()) {
			var day dto.DayStatusResponse
			day.FromModel(d)
			out.Days = append(out.Days, day)
		}
		return out
	})
}
