package merge_test

import (
	"testing"
	"time"

	"hotelinv/internal/domains/booking/merge"
	"hotelinv/internal/domains/booking/model"

	"github.com/stretchr/testify/assert"
)

func date(d int) time.Time {
	return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
}

func booking(id, guest string, checkIn int) model.Booking {
	return model.Booking{
		BookingID: id,
		GuestName: guest,
		RoomType:  "Deluxe",
		CheckIn:   date(checkIn),
		CheckOut:  date(checkIn + 1),
		Status:    model.StatusOK,
	}
}

func ids(bookings []model.Booking) []string {
	out := make([]string, len(bookings))
	for i, b := range bookings {
		out[i] = b.BookingID
	}
	return out
}

func TestResolve(t *testing.T) {
	existing := []model.Booking{
		booking("1", "Alice", 1),
		booking("2", "Bob", 2),
	}

	tests := []struct {
		name              string
		incoming          []model.Booking
		wantIDs           []string
		wantAdded         int
		wantSameGuestDate int
		wantGuests        []string
		wantDuplicateID   int
	}{
		{
			name:      "new bookings are appended",
			incoming:  []model.Booking{booking("3", "Carol", 3)},
			wantIDs:   []string{"1", "2", "3"},
			wantAdded: 1,
		},
		{
			name: "same guest and check-in skipped",
			incoming: []model.Booking{
				booking("9", "Bob", 2),
				booking("8", "Alice", 1),
				booking("4", "Alice", 5),
			},
			wantIDs:           []string{"1", "2", "4"},
			wantAdded:         1,
			wantSameGuestDate: 2,
			wantGuests:        []string{"Alice", "Bob"},
		},
		{
			name: "duplicate ids keep the first occurrence",
			incoming: []model.Booking{
				booking("1", "Zed", 9),
				booking("5", "Yan", 9),
				booking("5", "Xu", 10),
			},
			wantIDs:         []string{"1", "2", "5"},
			wantAdded:       1,
			wantDuplicateID: 2,
		},
		{
			name: "missing ids are not dedup keys",
			incoming: []model.Booking{
				booking("N/A", "Ann", 7),
				booking("N/A", "Ben", 8),
			},
			wantIDs:   []string{"1", "2", "N/A", "N/A"},
			wantAdded: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := merge.Resolve(existing, tt.incoming)

			assert.Equal(t, tt.wantIDs, ids(got.Bookings))
			assert.Equal(t, tt.wantAdded, got.Added)
			assert.Equal(t, tt.wantSameGuestDate, got.SkippedSameGuestDate)
			if tt.wantGuests == nil {
				assert.Empty(t, got.SkippedGuests)
			} else {
				assert.Equal(t, tt.wantGuests, got.SkippedGuests)
			}
			assert.Equal(t, tt.wantDuplicateID, got.SkippedDuplicateID)
		})
	}
}

func TestResolveIsIdempotentForTheSameBatch(t *testing.T) {
	batch := []model.Booking{
		booking("1", "Alice", 1),
		booking("2", "Bob", 2),
		booking("3", "Carol", 3),
	}

	first := merge.Resolve(nil, batch)
	second := merge.Resolve(first.Bookings, batch)

	assert.Len(t, first.Bookings, 3)
	assert.Equal(t, 3, first.Added)
	assert.Len(t, second.Bookings, 3)
	assert.Zero(t, second.Added)
	assert.Equal(t, 3, second.SkippedSameGuestDate)
}

func TestResolveLeavesInputsAlone(t *testing.T) {
	existing := []model.Booking{booking("1", "Alice", 1)}
	incoming := []model.Booking{booking("1", "Alice", 2)}

	got := merge.Resolve(existing, incoming)
	got.Bookings[0].GuestName = "changed"

	assert.Equal(t, "Alice", existing[0].GuestName)
	assert.Equal(t, 1, got.SkippedDuplicateID)
}

func TestResultWarnings(t *testing.T) {
	r := merge.Result{SkippedSameGuestDate: 2, SkippedGuests: []string{"Alice", "Bob"}, SkippedDuplicateID: 1}

	assert.Equal(t, []string{
		"2 bookings skipped: guest already has a booking on that check-in date (Alice, Bob)",
		"1 bookings skipped: booking id already present",
	}, r.Warnings())
	assert.Empty(t, merge.Result{}.Warnings())
}
