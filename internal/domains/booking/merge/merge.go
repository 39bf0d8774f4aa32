// Package merge folds an incoming batch of bookings into an existing ledger.
package merge

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"hotelinv/internal/domains/booking/model"
)

type Result struct {
	Bookings             []model.Booking
	Added                int
	SkippedSameGuestDate int
	SkippedGuests        []string
	SkippedDuplicateID   int
}

// Warnings renders the skip counters the way they are shown to the operator.
func (r Result) Warnings() []string {
	var out []string
	if r.SkippedSameGuestDate > 0 {
		out = append(out, fmt.Sprintf("%d bookings skipped: guest already has a booking on that check-in date (%s)",
			r.SkippedSameGuestDate, strings.Join(r.SkippedGuests, ", ")))
	}
	if r.SkippedDuplicateID > 0 {
		out = append(out, fmt.Sprintf("%d bookings skipped: booking id already present", r.SkippedDuplicateID))
	}
	return out
}

// Resolve runs two passes. The first skips incoming bookings whose guest
// already checks in on the same day in existing. The second drops later
// duplicates of a booking id, keeping the first occurrence.
func Resolve(existing, incoming []model.Booking) Result {
	var result Result

	seen := make(map[string]map[time.Time]struct{}, len(existing))
	for _, b := range existing {
		days, ok := seen[b.GuestName]
		if !ok {
			days = make(map[time.Time]struct{})
			seen[b.GuestName] = days
		}
		days[b.CheckIn] = struct{}{}
	}

	kept := make([]model.Booking, 0, len(incoming))
	var skippedNames []string
	for _, b := range incoming {
		if _, dup := seen[b.GuestName][b.CheckIn]; dup {
			result.SkippedSameGuestDate++
			skippedNames = append(skippedNames, b.GuestName)
			continue
		}
		kept = append(kept, b)
	}
	result.SkippedGuests = sortedUnique(skippedNames)

	combined := make([]model.Booking, 0, len(existing)+len(kept))
	combined = append(combined, existing...)
	combined = append(combined, kept...)

	ids := make(map[string]struct{}, len(combined))
	result.Bookings = make([]model.Booking, 0, len(combined))
	for i, b := range combined {
		if b.HasID() {
			if _, dup := ids[b.BookingID]; dup {
				result.SkippedDuplicateID++
				continue
			}
			ids[b.BookingID] = struct{}{}
		}
		result.Bookings = append(result.Bookings, b)
		if i >= len(existing) {
			result.Added++
		}
	}
	return result
}

func sortedUnique(names []string) []string {
	out := slices.Clone(names)
	slices.Sort(out)
	return slices.Compact(out)
}
