package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"hotelinv/config"
	"hotelinv/infras/openai"
	"hotelinv/infras/otel"
	"hotelinv/internal/domains/availability/engine"
	"hotelinv/internal/domains/booking/entry"
	"hotelinv/internal/domains/booking/event"
	"hotelinv/internal/domains/booking/ledger"
	"hotelinv/internal/domains/booking/model"
	"hotelinv/internal/domains/booking/model/dto"
	"hotelinv/internal/domains/booking/repository"
	"hotelinv/internal/domains/session"
	"hotelinv/shared"
	"hotelinv/shared/cache"
	"hotelinv/shared/constant"
	"hotelinv/shared/failure"
	"hotelinv/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheSummary   = "booking:summary"
	cacheRoomTypes = "booking:room-types"
)

type Booking interface {
	List(ctx context.Context, req dto.ListBookingsRequest) (dto.ListBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Create(ctx context.Context, req dto.UpsertBookingRequest) (dto.BookingResponse, error)
	Update(ctx context.Context, id string, req dto.UpsertBookingRequest) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, req dto.DeleteBookingsRequest) (dto.DeleteBookingsResponse, error)
	RoomTypes(ctx context.Context) ([]string, error)
	Summary(ctx context.Context, req dto.SummaryRequest) (dto.SummaryResponse, error)
	Import(ctx context.Context, mode, fileName string, data []byte) (dto.ImportResponse, error)
	LoadDemo(ctx context.Context, mode string) (dto.ImportResponse, error)
	LoadSheet(ctx context.Context, req dto.SheetRequest) (dto.ImportResponse, error)
	SaveSheet(ctx context.Context, req dto.SheetRequest) (dto.SaveSheetResponse, error)
	ExtractImage(ctx context.Context, req dto.ExtractImageRequest) (dto.ExtractImageResponse, error)
	CommitExtracted(ctx context.Context, req dto.CommitCandidatesRequest) (dto.CommitCandidatesResponse, error)
}

type serviceImpl struct {
	sessions  *session.Registry
	repo      repository.Sheet
	publisher event.Publisher
	vision    openai.Vision
	engine    engine.Engine
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(sessions *session.Registry, repo repository.Sheet, publisher event.Publisher, vision openai.Vision,
	cfg *config.Config, cache cache.RedisCache, otel otel.Otel,
) Booking {
	return &serviceImpl{
		sessions:  sessions,
		repo:      repo,
		publisher: publisher,
		vision:    vision,
		engine:    engine.New(cfg.Hotel.UnitsPerType, cfg.Hotel.TotalCapacity),
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) session(ctx context.Context) (*session.Session, error) {
	sess, err := s.sessions.FromContext(ctx)
	if err != nil {
		return nil, failure.Unauthorized("session required") // nolint:wrapcheck
	}

	return sess, nil
}

// changed drops every cached view of the session and publishes the given events.
// Publishing failures are logged; the ledger change itself already happened.
func (s *serviceImpl) changed(ctx context.Context, sess *session.Session, events ...event.BookingEvent) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(constant.CacheSessionPrefix, sess.ID))
	}()

	if len(events) == 0 {
		return
	}

	if err := s.publisher.Publish(context.WithoutCancel(ctx), events...); err != nil {
		log.Error().Err(err).Str("session_id", sess.ID).Msg("failed to publish booking events")
	}
}

func (s *serviceImpl) List(ctx context.Context, req dto.ListBookingsRequest) (res dto.ListBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.List")
	defer scope.End()
	defer scope.TraceIfError(&err)

	sess, err := s.session(ctx)
	if err != nil {
		return res, err
	}

	type indexed struct {
		index   int
		booking model.Booking
	}

	search := strings.ToLower(strings.TrimSpace(req.Search))

	var matched []indexed
	for i, b := range sess.Ledger.All() {
		if req.Status != "" && string(b.Status) != req.Status {
			continue
		}
		if req.RoomType != "" && b.RoomType != req.RoomType {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(b.GuestName), search) &&
			!strings.Contains(strings.ToLower(b.BookingID), search) {
			continue
		}
		matched = append(matched, indexed{index: i, booking: b})
	}

	if less := sortKey(req.SortBy); less != nil {
		slices.SortStableFunc(matched, func(a, b indexed) int {
			if req.SortDir == constant.Empty || strings.EqualFold(req.SortDir, "DESC") {
				return less(b.booking, a.booking)
			}
			return less(a.booking, b.booking)
		})
	}

	limit := req.Limit
	if limit <= 0 {
		limit = constant.DefaultValueLimit
	}
	page := max(1, req.Page)

	res.TotalData = len(matched)
	res.TotalPage = shared.CalculateTotalPage(res.TotalData, limit)
	res.Bookings = make([]dto.BookingResponse, 0, limit)

	start := min((page-1)*limit, len(matched))
	end := min(start+limit, len(matched))
	for _, m := range matched[start:end] {
		var item dto.BookingResponse
		item.FromModel(m.index, m.booking)
		res.Bookings = append(res.Bookings, item)
	}

	return res, nil
}

func sortKey(field string) func(a, b model.Booking) int {
	switch field {
	case "check_in":
		return func(a, b model.Booking) int { return a.CheckIn.Compare(b.CheckIn) }
	case "check_out":
		return func(a, b model.Booking) int { return a.CheckOut.Compare(b.CheckOut) }
	case "guest_name":
		return func(a, b model.Booking) int { return strings.Compare(a.GuestName, b.GuestName) }
	case "total_payment":
		return func(a, b model.Booking) int { return a.TotalPayment.Cmp(b.TotalPayment) }
	default:
		return nil
	}
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if !model.IsBookingID(id) {
		return res, errNoBookingID
	}

	sess, err := s.session(ctx)
	if err != nil {
		return res, err
	}

	all := sess.Ledger.All()
	i := slices.IndexFunc(all, func(b model.Booking) bool { return b.BookingID == id })
	if i < 0 {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	res.FromModel(i, all[i])

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.UpsertBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	sess, err := s.session(ctx)
	if err != nil {
		return res, err
	}

	candidate, err := req.ToModel()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	now := timezone.Now()
	if candidate.BookingID == constant.Empty {
		candidate.BookingID = entry.NewID(now)
	}
	if candidate.BookingMadeOn == nil {
		today := timezone.Today()
		candidate.BookingMadeOn = &today
	}

	index := 0
	err = sess.Ledger.Transact(func(current []model.Booking) ([]model.Booking, error) {
		rules := entry.NewRules(s.engine, s.cfg.Hotel.RoomTypes, current)
		if err := rules.Check(candidate, current, constant.Empty); err != nil {
			return nil, err
		}
		if candidate.Location == constant.Empty {
			candidate.Location = entry.DefaultLocation(candidate.RoomType, current)
		}
		candidate.Recompute()
		index = len(current)

		return append(current, candidate), nil
	})
	if err != nil {
		return res, rejection(err)
	}

	log.Info().Str("session_id", sess.ID).Str("booking_id", candidate.BookingID).Msg("booking created")

	s.changed(ctx, sess, event.New(event.KindCreated, sess.ID, candidate, now))

	res.FromModel(index, candidate)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpsertBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if !model.IsBookingID(id) {
		return res, errNoBookingID
	}

	sess, err := s.session(ctx)
	if err != nil {
		return res, err
	}

	candidate, err := req.ToModel()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if candidate.BookingID == constant.Empty {
		candidate.BookingID = id
	}

	index := 0
	err = sess.Ledger.Transact(func(current []model.Booking) ([]model.Booking, error) {
		i := slices.IndexFunc(current, func(b model.Booking) bool { return b.BookingID == id })
		if i < 0 {
			return nil, ledger.ErrNotFound
		}

		original := current[i]
		if candidate.Location == constant.Empty {
			candidate.Location = original.Location
		}
		if candidate.BookingMadeOn == nil {
			candidate.BookingMadeOn = original.BookingMadeOn
		}

		rules := entry.NewRules(s.engine, s.cfg.Hotel.RoomTypes, current)
		if err := rules.Check(candidate, current, id); err != nil {
			return nil, err
		}

		candidate.Recompute()
		current[i] = candidate
		index = i

		return current, nil
	})
	if err != nil {
		return res, rejection(err)
	}

	log.Info().Str("session_id", sess.ID).Str("booking_id", id).Msg("booking updated")

	s.changed(ctx, sess, event.New(event.KindUpdated, sess.ID, candidate, timezone.Now()))

	res.FromModel(index, candidate)

	return res, nil
}

// errNoBookingID refuses the placeholder id shared by rows imported without one.
var errNoBookingID = failure.BadRequestFromString("booking has no id, address it by row index instead")

// rejection maps ledger and rule errors onto failures.
func rejection(err error) error {
	var rejected *entry.RejectedError
	switch {
	case errors.As(err, &rejected):
		return failure.Rejected("booking rejected", rejected.Reasons) // nolint:wrapcheck
	case errors.Is(err, ledger.ErrNotFound):
		return failure.NotFound(model.EntityName) // nolint:wrapcheck
	default:
		return fmt.Errorf("failed to store booking: %w", err)
	}
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if !model.IsBookingID(id) {
		return errNoBookingID
	}

	sess, err := s.session(ctx)
	if err != nil {
		return err
	}

	if sess.Ledger.DeleteByIDs(id) == 0 {
		return failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	s.changed(ctx, sess)

	return nil
}

func (s *serviceImpl) DeleteMany(ctx context.Context, req dto.DeleteBookingsRequest) (res dto.DeleteBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.DeleteMany")
	defer scope.End()
	defer scope.TraceIfError(&err)

	sess, err := s.session(ctx)
	if err != nil {
		return res, err
	}

	if len(req.IDs) > 0 {
		res.Deleted = sess.Ledger.DeleteByIDs(req.IDs...)
	} else {
		res.Deleted = sess.Ledger.DeleteAt(req.Indices...)
	}

	if res.Deleted > 0 {
		log.Info().Str("session_id", sess.ID).Int("count", res.Deleted).Msg("bookings deleted")

		s.changed(ctx, sess)
	}

	return res, nil
}

func (s *serviceImpl) RoomTypes(ctx context.Context) (res []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.RoomTypes")
	defer scope.End()
	defer scope.TraceIfError(&err)

	sess, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	cacheKey := shared.BuildCacheKey(constant.CacheSessionPrefix, sess.ID, cacheRoomTypes, sess.Ledger.Version())

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room types")

		return res, nil
	}

	res = entry.ValidRoomTypes(s.cfg.Hotel.RoomTypes, sess.Ledger.All())

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room types to cache")
		}
	}()

	return res, nil
}
