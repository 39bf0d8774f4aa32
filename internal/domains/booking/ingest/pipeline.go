package ingest

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hotelinv/internal/domains/booking/model"
	"hotelinv/internal/domains/booking/normalize"

	"github.com/shopspring/decimal"
)

// ErrEmptyBatch is returned when no row of a batch survives normalization.
var ErrEmptyBatch = errors.New("no valid bookings in batch")

type Result struct {
	Bookings []model.Booking
	Dropped  int
	Warnings []string
}

// Active derives the non-cancelled subset.
func (r Result) Active() []model.Booking {
	return model.ActiveOnly(r.Bookings)
}

type record map[Field]Value

func (r record) text(f Field) string {
	v, ok := r[f]
	if !ok || v.Empty() {
		return ""
	}
	return v.String()
}

func (r record) textOr(f Field, fallback string) string {
	if s := r.text(f); s != "" {
		return s
	}
	return fallback
}

func (r record) date(f Field) (time.Time, bool) {
	v, ok := r[f]
	if !ok || v.Empty() {
		return time.Time{}, false
	}
	return normalize.ParseDate(v.Raw())
}

// money reads an amount. Ledger amounts are never negative, so a negative
// cell counts as 0.
func (r record) money(f Field) decimal.Decimal {
	v, ok := r[f]
	if !ok || v.Empty() {
		return decimal.Zero
	}
	amount := normalize.CleanCurrency(v.Raw())
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}

// Run normalizes rows from one source into bookings. Rows without a usable
// stay are dropped and counted; a batch with nothing left fails with ErrEmptyBatch.
func Run(source Source, rows []Row) (Result, error) {
	var result Result

	for _, row := range rows {
		rec := mapLabels(source, row)
		if len(rec) == 0 {
			continue
		}

		booking, ok := build(rec)
		if !ok {
			result.Dropped++
			continue
		}
		result.Bookings = append(result.Bookings, booking)
	}

	if result.Dropped > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%d bookings dropped due to invalid dates", result.Dropped))
	}

	if len(result.Bookings) == 0 {
		return result, ErrEmptyBatch
	}
	return result, nil
}

// mapLabels keeps only labels known for the source. Empty cells are left out.
// When several labels name the same field, the one ranked first in the
// source table wins.
func mapLabels(source Source, row Row) record {
	rec := make(record, len(row))
	ranks := make(map[Field]int, len(row))
	for label, value := range row {
		f, ok := lookup(source, strings.TrimSpace(label))
		if !ok || value.Empty() {
			continue
		}
		if rank, taken := ranks[f.field]; taken && rank < f.rank {
			continue
		}
		rec[f.field] = value
		ranks[f.field] = f.rank
	}
	return rec
}

func build(rec record) (model.Booking, bool) {
	checkIn, okIn := rec.date(FieldCheckIn)
	checkOut, okOut := rec.date(FieldCheckOut)
	if !okIn || !okOut || !checkOut.After(checkIn) {
		return model.Booking{}, false
	}

	b := model.Booking{
		BookingID:      rec.textOr(FieldBookingID, model.NotAvailable),
		GuestName:      rec.textOr(FieldGuestName, model.NotAvailable),
		RoomType:       rec.textOr(FieldRoomType, model.NotAvailable),
		Location:       rec.textOr(FieldLocation, model.NotAvailable),
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		Status:         model.ParseStatus(rec.text(FieldStatus)),
		TotalPayment:   rec.money(FieldTotalPayment),
		Commission:     rec.money(FieldCommission),
		Currency:       strings.ToUpper(rec.textOr(FieldCurrency, model.DefaultCurrency)),
		CollectedBy:    rec.textOr(FieldCollectedBy, model.NotAvailable),
		IsGeniusMember: false,
	}
	if v, ok := rec[FieldGeniusMember]; ok {
		b.IsGeniusMember = normalize.ParseGenius(v.Raw())
	}
	if madeOn, ok := rec.date(FieldBookingMadeOn); ok {
		b.BookingMadeOn = &madeOn
	}

	b.Recompute()
	return b, true
}
