package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"hotelinv/infras/openai"
	"hotelinv/internal/domains/booking/entry"
	"hotelinv/internal/domains/booking/event"
	"hotelinv/internal/domains/booking/ingest"
	"hotelinv/internal/domains/booking/model"
	"hotelinv/internal/domains/booking/model/dto"
	"hotelinv/internal/domains/booking/normalize"
	"hotelinv/shared"
	"hotelinv/shared/constant"
	"hotelinv/shared/failure"
	"hotelinv/shared/timezone"

	"github.com/rs/zerolog/log"
)

const extractInstructions = `The image shows one or more hotel reservations, usually as a table or a list.
Treat every row as a separate booking and answer with a JSON object {"bookings": [...]}.
Each booking has these keys:
- "guest_name" (string): full guest name
- "booking_id" (string): reservation number
- "is_genius_member" (boolean): true when the guest is marked Genius
- "check_in_date" (string): arrival date as YYYY-MM-DD
- "check_out_date" (string): departure date as YYYY-MM-DD
- "room_type" (string): booked room or property name
- "total_payment" (number): total price, digits only, no currency symbol or thousands separator
- "commission" (number): commission if shown
- "currency" (string): currency code such as VND or USD
- "num_nights" (number): number of nights
- "num_adults" (number): number of adults
Use null for anything that is not visible. Dates must be YYYY-MM-DD.`

// extracted is one booking as answered by the vision model. Numbers may come
// back as strings, so money and ids are decoded loosely.
type extracted struct {
	GuestName      *string `json:"guest_name"`
	BookingID      any     `json:"booking_id"`
	IsGeniusMember *bool   `json:"is_genius_member"`
	CheckIn        *string `json:"check_in_date"`
	CheckOut       *string `json:"check_out_date"`
	RoomType       *string `json:"room_type"`
	TotalPayment   any     `json:"total_payment"`
	Commission     any     `json:"commission"`
	Currency       *string `json:"currency"`
	NumNights      float64 `json:"num_nights"`
	NumAdults      float64 `json:"num_adults"`
}

var errUnreadableAnswer = errors.New("vision answer is not a booking list")

func decodeExtracted(content string) ([]extracted, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "[") {
		var list []extracted
		if err := json.Unmarshal([]byte(content), &list); err != nil {
			return nil, fmt.Errorf("%w: %w", errUnreadableAnswer, err)
		}
		return list, nil
	}

	var wrapped struct {
		Bookings []extracted `json:"bookings"`
	}
	if err := json.Unmarshal([]byte(content), &wrapped); err != nil {
		return nil, fmt.Errorf("%w: %w", errUnreadableAnswer, err)
	}
	if wrapped.Bookings != nil {
		return wrapped.Bookings, nil
	}

	var single extracted
	if err := json.Unmarshal([]byte(content), &single); err != nil {
		return nil, fmt.Errorf("%w: %w", errUnreadableAnswer, err)
	}
	if single.GuestName == nil && single.CheckIn == nil {
		return nil, errUnreadableAnswer
	}
	return []extracted{single}, nil
}

func text(p *string) string {
	if p == nil {
		return constant.Empty
	}
	return strings.TrimSpace(*p)
}

func (e extracted) candidate() dto.Candidate {
	c := dto.Candidate{
		GuestName:    text(e.GuestName),
		RoomType:     text(e.RoomType),
		TotalPayment: normalize.CleanCurrency(e.TotalPayment),
		Commission:   normalize.CleanCurrency(e.Commission),
		Currency:     strings.ToUpper(text(e.Currency)),
		NumNights:    int(e.NumNights),
		NumAdults:    int(e.NumAdults),
		Errors:       []string{},
	}

	switch id := e.BookingID.(type) {
	case nil:
	case float64:
		c.BookingID = strconv.FormatFloat(id, 'f', -1, 64)
	default:
		c.BookingID = strings.TrimSpace(fmt.Sprint(id))
	}
	if e.IsGeniusMember != nil {
		c.IsGeniusMember = *e.IsGeniusMember
	}
	if c.Currency == constant.Empty {
		c.Currency = model.DefaultCurrency
	}

	for _, d := range []struct {
		label string
		raw   *string
		dst   *string
	}{
		{label: "check-in", raw: e.CheckIn, dst: &c.CheckIn},
		{label: "check-out", raw: e.CheckOut, dst: &c.CheckOut},
	} {
		raw := text(d.raw)
		if raw == constant.Empty {
			continue
		}
		if _, err := time.Parse(shared.DayLayout, raw); err != nil {
			c.Errors = append(c.Errors, fmt.Sprintf("cannot parse %s date %q", d.label, raw))
			continue
		}
		*d.dst = raw
	}

	return c
}

func (s *serviceImpl) ExtractImage(ctx context.Context, req dto.ExtractImageRequest) (res dto.ExtractImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ExtractImage")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if _, err = s.session(ctx); err != nil {
		return res, err
	}

	content, err := s.vision.ExtractJSON(ctx, extractInstructions, req.Image)
	if err != nil {
		log.Error().Err(err).Msg("failed to extract bookings from image")

		if errors.Is(err, openai.ErrNotConfigured) {
			return res, failure.Unimplemented("image extraction") // nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to extract bookings from image: %w", err)
	}

	found, err := decodeExtracted(content)
	if err != nil {
		log.Error().Err(err).Msg("failed to decode vision answer")

		return res, failure.BadRequestFromString("could not read bookings from the image") // nolint:wrapcheck
	}

	res.Candidates = make([]dto.Candidate, 0, len(found))
	for _, e := range found {
		res.Candidates = append(res.Candidates, e.candidate())
	}

	return res, nil
}

func (s *serviceImpl) CommitExtracted(ctx context.Context, req dto.CommitCandidatesRequest) (res dto.CommitCandidatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CommitExtracted")
	defer scope.End()
	defer scope.TraceIfError(&err)

	sess, err := s.session(ctx)
	if err != nil {
		return res, err
	}

	now := timezone.Now()
	today := timezone.Today()

	var added []model.Booking
	err = sess.Ledger.Transact(func(current []model.Booking) ([]model.Booking, error) {
		taken := make(map[string]struct{}, len(current))
		for _, b := range current {
			taken[b.BookingID] = struct{}{}
		}

		skip := func(idx int, reason string) {
			res.Skipped++
			res.Reasons = append(res.Reasons, fmt.Sprintf("row %d: %s", idx+1, reason))
		}

		for idx, c := range req.Candidates {
			if len(c.Errors) > 0 {
				skip(idx, strings.Join(c.Errors, ", "))
				continue
			}
			if strings.TrimSpace(c.GuestName) == constant.Empty || c.CheckIn == constant.Empty || c.CheckOut == constant.Empty {
				skip(idx, "guest name and both dates are required")
				continue
			}

			id := strings.TrimSpace(c.BookingID)
			if id == constant.Empty {
				id = entry.NewImageID(now, idx)
			}
			if _, dup := taken[id]; dup {
				skip(idx, fmt.Sprintf("booking id %q already exists", id))
				continue
			}

			result, err := ingest.Run(ingest.SourceImage, []ingest.Row{candidateRow(c, id, today)})
			if err != nil {
				skip(idx, "check-out must be after check-in")
				continue
			}

			taken[id] = struct{}{}
			added = append(added, result.Bookings...)
		}

		return append(current, added...), nil
	})
	if err != nil {
		return res, fmt.Errorf("failed to commit extracted bookings: %w", err)
	}

	res.Added = len(added)
	if res.Added == 0 {
		return res, nil
	}

	log.Info().Str("session_id", sess.ID).Int("added", res.Added).Int("skipped", res.Skipped).Msg("extracted bookings committed")

	events := make([]event.BookingEvent, 0, len(added))
	for _, b := range added {
		events = append(events, event.New(event.KindCreated, sess.ID, b, now))
	}
	s.changed(ctx, sess, events...)

	return res, nil
}

func candidateRow(c dto.Candidate, id string, today time.Time) ingest.Row {
	row := ingest.Row{
		"booking_id":       ingest.Text(id),
		"guest_name":       ingest.Text(c.GuestName),
		"is_genius_member": ingest.Bool(c.IsGeniusMember),
		"check_in_date":    ingest.Text(c.CheckIn),
		"check_out_date":   ingest.Text(c.CheckOut),
		"total_payment":    ingest.Number(c.TotalPayment),
		"commission":       ingest.Number(c.Commission),
		"currency":         ingest.Text(c.Currency),
		"location":         ingest.Text(entry.ImageLocation),
		"booking_made_on":  ingest.Date(today),
	}
	if c.RoomType != constant.Empty {
		row["room_type"] = ingest.Text(c.RoomType)
	}
	return row
}
