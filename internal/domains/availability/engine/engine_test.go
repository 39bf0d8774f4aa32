package engine_test

import (
	"testing"
	"time"

	"hotelinv/internal/domains/availability/engine"
	"hotelinv/internal/domains/booking/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func stay(id, guest, roomType string, in, out time.Time, status model.Status) model.Booking {
	b := model.Booking{
		BookingID:    id,
		GuestName:    guest,
		RoomType:     roomType,
		CheckIn:      in,
		CheckOut:     out,
		Status:       status,
		TotalPayment: decimal.NewFromInt(100000),
	}
	b.Recompute()
	return b
}

func TestRoomTypeAvailability(t *testing.T) {
	e := engine.New(4, 4)
	bookings := []model.Booking{
		stay("A", "Alice", "Deluxe", date(2025, 6, 1), date(2025, 6, 3), model.StatusOK),
		stay("B", "Bob", "Deluxe", date(2025, 6, 2), date(2025, 6, 4), model.StatusPending),
		stay("C", "Carol", "Deluxe", date(2025, 6, 2), date(2025, 6, 5), model.StatusCancelled),
		stay("D", "Dan", "Standard", date(2025, 6, 1), date(2025, 6, 2), model.StatusOK),
	}
	types := []string{"Deluxe", "Standard", "Suite"}

	tests := []struct {
		name string
		day  time.Time
		want map[string]int
	}{
		{name: "first night", day: date(2025, 6, 1), want: map[string]int{"Deluxe": 3, "Standard": 3, "Suite": 4}},
		{name: "overlap ignores cancelled", day: date(2025, 6, 2), want: map[string]int{"Deluxe": 2, "Standard": 4, "Suite": 4}},
		{name: "check-out day is free", day: date(2025, 6, 3), want: map[string]int{"Deluxe": 3, "Standard": 4, "Suite": 4}},
		{name: "empty day", day: date(2025, 7, 1), want: map[string]int{"Deluxe": 4, "Standard": 4, "Suite": 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.RoomTypeAvailability(tt.day, bookings, types))
		})
	}
}

func TestRoomTypeAvailabilityNeverNegative(t *testing.T) {
	e := engine.New(1, 4)
	bookings := []model.Booking{
		stay("A", "Alice", "Deluxe", date(2025, 6, 1), date(2025, 6, 3), model.StatusOK),
		stay("B", "Bob", "Deluxe", date(2025, 6, 1), date(2025, 6, 3), model.StatusOK),
	}

	got := e.RoomTypeAvailability(date(2025, 6, 1), bookings, []string{"Deluxe"})

	assert.Equal(t, 0, got["Deluxe"])
}

func TestDailyActivity(t *testing.T) {
	e := engine.New(4, 4)
	bookings := []model.Booking{
		stay("A", "Alice", "Deluxe", date(2025, 6, 1), date(2025, 6, 3), model.StatusOK),
		stay("B", "Bob", "Deluxe", date(2025, 6, 3), date(2025, 6, 4), model.StatusOK),
		stay("C", "Carol", "Suite", date(2025, 6, 3), date(2025, 6, 6), model.StatusCancelled),
		stay("D", "Dan", "Suite", date(2025, 6, 2), date(2025, 6, 5), model.StatusOK),
	}

	got := e.DailyActivity(date(2025, 6, 3), bookings)

	assert.Equal(t, date(2025, 6, 3), got.Date)
	assert.Equal(t, []model.ActivityEntry{{Name: "Bob", RoomType: "Deluxe", BookingID: "B"}}, got.CheckIn)
	assert.Equal(t, []model.ActivityEntry{{Name: "Alice", RoomType: "Deluxe", BookingID: "A"}}, got.CheckOut)
	if assert.Len(t, got.Occupied, 2) {
		assert.Equal(t, "B", got.Occupied[0].BookingID)
		assert.Equal(t, "D", got.Occupied[1].BookingID)
		assert.Equal(t, date(2025, 6, 5), got.Occupied[1].CheckOut)
		assert.True(t, decimal.NewFromInt(100000).Equal(got.Occupied[1].TotalPayment))
	}
}

func TestDailyActivityEmpty(t *testing.T) {
	got := engine.New(4, 4).DailyActivity(date(2025, 6, 3), nil)

	assert.NotNil(t, got.CheckIn)
	assert.Empty(t, got.CheckIn)
	assert.Empty(t, got.CheckOut)
	assert.Empty(t, got.Occupied)
}

func TestOverallDayStatus(t *testing.T) {
	full := []model.Booking{
		stay("1", "Alice", "Deluxe", date(2025, 6, 1), date(2025, 6, 2), model.StatusOK),
		stay("2", "Alice", "Suite", date(2025, 6, 1), date(2025, 6, 2), model.StatusOK),
		stay("3", "Bob", "Deluxe", date(2025, 6, 1), date(2025, 6, 2), model.StatusOK),
		stay("4", "Carol", "Suite", date(2025, 6, 1), date(2025, 6, 2), model.StatusPending),
	}

	tests := []struct {
		name          string
		engine        engine.Engine
		bookings      []model.Booking
		wantOccupied  int
		wantAvailable int
		wantGuests    []string
		wantLabel     string
		wantIndicator model.Indicator
	}{
		{
			name:          "no capacity configured",
			engine:        engine.New(4, 0),
			bookings:      full,
			wantGuests:    []string{},
			wantLabel:     "N/A",
			wantIndicator: model.IndicatorError,
		},
		{
			name:          "empty ledger",
			engine:        engine.New(4, 4),
			wantAvailable: 4,
			wantGuests:    []string{},
			wantLabel:     "Trống",
			wantIndicator: model.IndicatorGreenDot,
		},
		{
			name:          "partially occupied",
			engine:        engine.New(4, 4),
			bookings:      full[:1],
			wantOccupied:  1,
			wantAvailable: 3,
			wantGuests:    []string{"Alice"},
			wantLabel:     "3/4 trống",
			wantIndicator: model.IndicatorGreenDot,
		},
		{
			name:          "full house with unique guests",
			engine:        engine.New(4, 4),
			bookings:      full,
			wantOccupied:  4,
			wantAvailable: 0,
			wantGuests:    []string{"Alice", "Bob", "Carol"},
			wantLabel:     "Hết phòng",
			wantIndicator: model.IndicatorOrangeDash,
		},
		{
			name:          "overbooked clamps available",
			engine:        engine.New(4, 3),
			bookings:      full,
			wantOccupied:  4,
			wantAvailable: 0,
			wantGuests:    []string{"Alice", "Bob", "Carol"},
			wantLabel:     "Hết phòng",
			wantIndicator: model.IndicatorOrangeDash,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.engine.OverallDayStatus(date(2025, 6, 1), tt.bookings)
			assert.Equal(t, tt.wantOccupied, got.OccupiedUnits)
			assert.Equal(t, tt.wantAvailable, got.AvailableUnits)
			assert.Equal(t, tt.wantGuests, got.Guests)
			assert.Equal(t, tt.wantLabel, got.Label)
			assert.Equal(t, tt.wantIndicator, got.Indicator)
		})
	}
}

func TestQueriesAgreeOnOccupancy(t *testing.T) {
	e := engine.New(4, 8)
	types := []string{"Deluxe", "Suite"}
	bookings := []model.Booking{
		stay("1", "A", "Deluxe", date(2025, 6, 1), date(2025, 6, 4), model.StatusOK),
		stay("2", "B", "Suite", date(2025, 6, 2), date(2025, 6, 3), model.StatusOK),
		stay("3", "C", "Suite", date(2025, 6, 2), date(2025, 6, 6), model.StatusCancelled),
		stay("4", "D", "Deluxe", date(2025, 6, 3), date(2025, 6, 5), model.StatusPending),
	}

	for d := date(2025, 5, 30); d.Before(date(2025, 6, 8)); d = d.AddDate(0, 0, 1) {
		free := e.RoomTypeAvailability(d, bookings, types)
		taken := 0
		for _, rt := range types {
			taken += e.UnitsPerType() - free[rt]
		}

		status := e.OverallDayStatus(d, bookings)
		activity := e.DailyActivity(d, bookings)

		assert.Equal(t, taken, status.OccupiedUnits, d.String())
		assert.Equal(t, len(activity.Occupied), status.OccupiedUnits, d.String())
	}
}

func TestCalendar(t *testing.T) {
	e := engine.New(4, 4)
	bookings := []model.Booking{
		stay("1", "A", "Deluxe", date(2025, 2, 27), date(2025, 3, 2), model.StatusOK),
	}

	days := e.Calendar(2025, time.February, bookings)

	assert.Len(t, days, 28)
	assert.Equal(t, date(2025, 2, 1), days[0].Date)
	assert.Equal(t, "Trống", days[0].Label)
	assert.Equal(t, "3/4 trống", days[27].Label)
}

func TestStayConflicts(t *testing.T) {
	bookings := []model.Booking{
		stay("1", "A", "Deluxe", date(2025, 6, 2), date(2025, 6, 3), model.StatusOK),
		stay("2", "B", "Suite", date(2025, 6, 4), date(2025, 6, 5), model.StatusOK),
		stay("3", "C", "Deluxe", date(2025, 6, 1), date(2025, 6, 9), model.StatusCancelled),
	}

	tests := []struct {
		name      string
		engine    engine.Engine
		roomType  string
		in, out   time.Time
		excludeID string
		want      []engine.Conflict
	}{
		{
			name:     "room type sold out on second night",
			engine:   engine.New(1, 4),
			roomType: "Deluxe",
			in:       date(2025, 6, 1),
			out:      date(2025, 6, 4),
			want:     []engine.Conflict{{Kind: engine.ConflictRoomType, Date: date(2025, 6, 2)}},
		},
		{
			name:     "hotel full",
			engine:   engine.New(4, 1),
			roomType: "Deluxe",
			in:       date(2025, 6, 4),
			out:      date(2025, 6, 6),
			want:     []engine.Conflict{{Kind: engine.ConflictHotel, Date: date(2025, 6, 4)}},
		},
		{
			name:      "edit excludes itself",
			engine:    engine.New(1, 1),
			roomType:  "Deluxe",
			in:        date(2025, 6, 2),
			out:       date(2025, 6, 4),
			excludeID: "1",
		},
		{
			name:     "free",
			engine:   engine.New(4, 4),
			roomType: "Suite",
			in:       date(2025, 6, 1),
			out:      date(2025, 6, 9),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.engine.StayConflicts(tt.roomType, tt.in, tt.out, bookings, tt.excludeID)
			assert.Equal(t, tt.want, got)
		})
	}
}
