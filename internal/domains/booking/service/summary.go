package service

import (
	"cmp"
	"context"
	"slices"
	"time"

	"hotelinv/internal/domains/booking/model"
	"hotelinv/internal/domains/booking/model/dto"
	"hotelinv/shared"
	"hotelinv/shared/constant"
	"hotelinv/shared/failure"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

func (s *serviceImpl) Summary(ctx context.Context, req dto.SummaryRequest) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Summary")
	defer scope.End()
	defer scope.TraceIfError(&err)

	sess, err := s.session(ctx)
	if err != nil {
		return res, err
	}

	from, to, err := summaryRange(req)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(constant.CacheSessionPrefix, sess.ID, cacheSummary, sess.Ledger.Version(), req.From, req.To)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking summary")

		return res, nil
	}

	res = summarize(sess.Ledger.All(), from, to)
	if req.From != constant.Empty {
		res.From = &req.From
	}
	if req.To != constant.Empty {
		res.To = &req.To
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking summary to cache")
		}
	}()

	return res, nil
}

func summaryRange(req dto.SummaryRequest) (from, to *time.Time, err error) {
	if req.From != constant.Empty {
		t, err := time.Parse(shared.DayLayout, req.From)
		if err != nil {
			return nil, nil, failure.BadRequest(err) // nolint:wrapcheck
		}
		from = &t
	}
	if req.To != constant.Empty {
		t, err := time.Parse(shared.DayLayout, req.To)
		if err != nil {
			return nil, nil, failure.BadRequest(err) // nolint:wrapcheck
		}
		to = &t
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, failure.BadRequestFromString("to must not be before from") // nolint:wrapcheck
	}

	return from, to, nil
}

// summarize aggregates bookings whose check-in falls in [from, to]. Money and
// nights only count active bookings.
func summarize(bookings []model.Booking, from, to *time.Time) dto.SummaryResponse {
	var res dto.SummaryResponse

	byCollector := map[string]*dto.Breakdown{}
	byRoomType := map[string]*dto.Breakdown{}

	add := func(groups map[string]*dto.Breakdown, name string, amount decimal.Decimal) {
		g, ok := groups[name]
		if !ok {
			g = &dto.Breakdown{Name: name}
			groups[name] = g
		}
		g.Bookings++
		g.Revenue = g.Revenue.Add(amount)
	}

	for _, b := range bookings {
		if from != nil && b.CheckIn.Before(*from) {
			continue
		}
		if to != nil && b.CheckIn.After(*to) {
			continue
		}

		res.TotalBookings++
		if !b.Active() {
			continue
		}

		res.ActiveBookings++
		res.Revenue = res.Revenue.Add(b.TotalPayment)
		res.Commission = res.Commission.Add(b.Commission)
		res.Nights += b.StayDuration

		add(byCollector, b.CollectedBy, b.TotalPayment)
		add(byRoomType, b.RoomType, b.TotalPayment)
	}

	if res.Nights > 0 {
		res.AveragePerNight = res.Revenue.Div(decimal.NewFromInt(int64(res.Nights))).RoundBank(0)
	}

	res.ByCollector = sortedBreakdown(byCollector)
	res.ByRoomType = sortedBreakdown(byRoomType)

	return res
}

func sortedBreakdown(groups map[string]*dto.Breakdown) []dto.Breakdown {
	out := make([]dto.Breakdown, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}

	slices.SortFunc(out, func(a, b dto.Breakdown) int {
		if c := b.Revenue.Cmp(a.Revenue); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})

	return out
}
