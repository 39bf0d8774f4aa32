// Package ledger holds the in-memory booking collection of one session.
package ledger

import (
	"errors"
	"slices"
	"sync"

	"hotelinv/internal/domains/booking/model"
)

var ErrNotFound = errors.New("booking not found")

// Ledger is safe for concurrent use. Reads return copies.
type Ledger struct {
	mu       sync.RWMutex
	bookings []model.Booking
	version  uint64
}

func New(bookings ...model.Booking) *Ledger {
	l := &Ledger{}
	l.bookings = prepare(bookings)
	return l
}

func prepare(bookings []model.Booking) []model.Booking {
	out := make([]model.Booking, len(bookings))
	for i, b := range bookings {
		b.Recompute()
		out[i] = b
	}
	return out
}

// ReplaceAll swaps the whole collection, as on a fresh load.
func (l *Ledger) ReplaceAll(bookings []model.Booking) {
	prepared := prepare(bookings)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.bookings = prepared
	l.version++
}

func (l *Ledger) Append(bookings ...model.Booking) {
	if len(bookings) == 0 {
		return
	}
	prepared := prepare(bookings)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.bookings = append(l.bookings, prepared...)
	l.version++
}

// DeleteByIDs removes every booking carrying one of ids and reports how many went.
// Placeholder ids match nothing; such rows are removed with DeleteAt.
func (l *Ledger) DeleteByIDs(ids ...string) int {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if model.IsBookingID(id) {
			drop[id] = struct{}{}
		}
	}
	if len(drop) == 0 {
		return 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	before := len(l.bookings)
	l.bookings = slices.DeleteFunc(l.bookings, func(b model.Booking) bool {
		_, ok := drop[b.BookingID]
		return ok
	})
	removed := before - len(l.bookings)
	if removed > 0 {
		l.version++
	}
	return removed
}

// DeleteAt removes bookings by their position. Out of range positions are ignored.
func (l *Ledger) DeleteAt(indices ...int) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	drop := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(l.bookings) {
			drop[i] = struct{}{}
		}
	}
	if len(drop) == 0 {
		return 0
	}

	kept := make([]model.Booking, 0, len(l.bookings)-len(drop))
	for i, b := range l.bookings {
		if _, ok := drop[i]; !ok {
			kept = append(kept, b)
		}
	}
	l.bookings = kept
	l.version++
	return len(drop)
}

// Replace overwrites the booking with the given id by a full record.
func (l *Ledger) Replace(id string, booking model.Booking) error {
	if !model.IsBookingID(id) {
		return ErrNotFound
	}
	booking.Recompute()

	l.mu.Lock()
	defer l.mu.Unlock()

	i := slices.IndexFunc(l.bookings, func(b model.Booking) bool { return b.BookingID == id })
	if i < 0 {
		return ErrNotFound
	}
	l.bookings[i] = booking
	l.version++
	return nil
}

func (l *Ledger) Get(id string) (model.Booking, bool) {
	if !model.IsBookingID(id) {
		return model.Booking{}, false
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, b := range l.bookings {
		if b.BookingID == id {
			return b, true
		}
	}
	return model.Booking{}, false
}

func (l *Ledger) All() []model.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.bookings)
}

func (l *Ledger) Active() []model.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return model.ActiveOnly(l.bookings)
}

func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.bookings)
}

// Version increases on every mutation.
func (l *Ledger) Version() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.version
}

// Transact runs fn on a copy of the bookings under the write lock. The result
// replaces the collection only when fn returns no error.
func (l *Ledger) Transact(fn func(current []model.Booking) ([]model.Booking, error)) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	next, err := fn(slices.Clone(l.bookings))
	if err != nil {
		return err
	}
	l.bookings = prepare(next)
	l.version++
	return nil
}
