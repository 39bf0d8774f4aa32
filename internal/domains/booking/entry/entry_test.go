package entry_test

import (
	"errors"
	"testing"
	"time"

	"hotelinv/internal/domains/availability/engine"
	"hotelinv/internal/domains/booking/entry"
	"hotelinv/internal/domains/booking/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(m time.Month, d int) time.Time {
	return time.Date(2025, m, d, 0, 0, 0, 0, time.UTC)
}

func booking(id, roomType string, in, out time.Time) model.Booking {
	b := model.Booking{
		BookingID:    id,
		GuestName:    "Guest " + id,
		RoomType:     roomType,
		Location:     "Hoàn Kiếm",
		CheckIn:      in,
		CheckOut:     out,
		Status:       model.StatusOK,
		TotalPayment: decimal.NewFromInt(500000),
		Currency:     model.DefaultCurrency,
		CollectedBy:  "LOC LE",
	}
	b.Recompute()
	return b
}

func reasons(err error) []string {
	var rejected *entry.RejectedError
	if errors.As(err, &rejected) {
		return rejected.Reasons
	}
	return nil
}

func TestCheck(t *testing.T) {
	current := []model.Booking{
		booking("A", "Deluxe", day(6, 1), day(6, 3)),
		booking("B", "Deluxe", day(6, 2), day(6, 4)),
	}
	rules := entry.NewRules(engine.New(2, 3), nil, current)

	tests := []struct {
		name       string
		candidate  func() model.Booking
		originalID string
		want       []string
	}{
		{
			name:      "valid addition",
			candidate: func() model.Booking { return booking("C", "Deluxe", day(6, 3), day(6, 4)) },
		},
		{
			name: "every field defect is reported at once",
			candidate: func() model.Booking {
				b := booking("A", "Suite", day(6, 5), day(6, 5))
				b.GuestName = " "
				b.CollectedBy = ""
				b.TotalPayment = decimal.Zero
				return b
			},
			want: []string{
				"guest name is required",
				"check-out (05/06/2025) must be after check-in (05/06/2025)",
				"total payment must be greater than 0 for OK bookings",
				`room type "Suite" is not valid`,
				"collector is required",
				`booking id "A" already exists`,
			},
		},
		{
			name: "cancelled booking may have zero total",
			candidate: func() model.Booking {
				b := booking("C", "Deluxe", day(6, 1), day(6, 3))
				b.Status = model.StatusCancelled
				b.TotalPayment = decimal.Zero
				return b
			},
		},
		{
			name:      "room type full on a night",
			candidate: func() model.Booking { return booking("C", "Deluxe", day(6, 2), day(6, 3)) },
			want:      []string{`room type "Deluxe" is fully booked on 02/06/2025`},
		},
		{
			name:       "edit does not collide with itself",
			candidate:  func() model.Booking { return booking("B", "Deluxe", day(6, 2), day(6, 5)) },
			originalID: "B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rules.Check(tt.candidate(), current, tt.originalID)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, reasons(err))
		})
	}
}

func TestCheckHotelCapacity(t *testing.T) {
	current := []model.Booking{
		booking("A", "Deluxe", day(6, 1), day(6, 3)),
		booking("B", "Twin", day(6, 1), day(6, 3)),
	}
	rules := entry.NewRules(engine.New(4, 2), []string{"Suite"}, current)

	err := rules.Check(booking("C", "Suite", day(6, 2), day(6, 4)), current, "")

	assert.Equal(t, []string{"hotel already has 2 guests on 02/06/2025"}, reasons(err))
}

func TestValidRoomTypes(t *testing.T) {
	current := []model.Booking{
		booking("A", "Twin", day(6, 1), day(6, 2)),
		booking("B", model.NotAvailable, day(6, 1), day(6, 2)),
	}

	assert.Equal(t, []string{"Deluxe", "Twin"}, entry.ValidRoomTypes([]string{"Deluxe", " Twin "}, current))
	assert.Empty(t, entry.ValidRoomTypes(nil, nil))
}

func TestAnyRoomTypeWithoutCatalog(t *testing.T) {
	rules := entry.NewRules(engine.New(4, 4), nil, nil)

	assert.NoError(t, rules.Check(booking("X", "Anything", day(6, 1), day(6, 2)), nil, ""))
	assert.Equal(t, []string{`room type "" is not valid`}, reasons(rules.Check(booking("X", "", day(6, 1), day(6, 2)), nil, "")))
}

func TestNewID(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 30, 5, 0, time.UTC)

	assert.Equal(t, "MANUAL250601093005", entry.NewID(now))
	assert.Equal(t, "IMG_250601093005_2", entry.NewImageID(now, 2))
}

func TestDefaultLocation(t *testing.T) {
	current := []model.Booking{booking("A", "Deluxe", day(6, 1), day(6, 2))}

	assert.Equal(t, "Hoàn Kiếm", entry.DefaultLocation("Deluxe", current))
	assert.Equal(t, entry.UnknownLocation, entry.DefaultLocation("Twin", current))
}
