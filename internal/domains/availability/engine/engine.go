// Package engine answers capacity questions over a set of bookings.
//
// Every query shares one occupancy rule: an active booking holds one unit of
// its room type on each day d with CheckIn <= d < CheckOut. Cancelled bookings
// are ignored. The engine never mutates its input.
package engine

import (
	"fmt"
	"time"

	"hotelinv/internal/domains/booking/model"
)

const (
	LabelUnavailable = "N/A"
	LabelVacant      = "Trống"
	LabelFull        = "Hết phòng"
)

type Engine struct {
	unitsPerType  int
	totalCapacity int
}

func New(unitsPerType, totalCapacity int) Engine {
	return Engine{
		unitsPerType:  max(0, unitsPerType),
		totalCapacity: max(0, totalCapacity),
	}
}

func (e Engine) UnitsPerType() int {
	return e.unitsPerType
}

func (e Engine) TotalCapacity() int {
	return e.totalCapacity
}

func occupying(day time.Time, bookings []model.Booking) []model.Booking {
	var out []model.Booking
	for _, b := range bookings {
		if b.Active() && b.Occupies(day) {
			out = append(out, b)
		}
	}
	return out
}

// RoomTypeAvailability reports free units per room type on day.
func (e Engine) RoomTypeAvailability(day time.Time, bookings []model.Booking, roomTypes []string) map[string]int {
	counts := make(map[string]int)
	for _, b := range occupying(day, bookings) {
		counts[b.RoomType]++
	}

	free := make(map[string]int, len(roomTypes))
	for _, rt := range roomTypes {
		free[rt] = max(0, e.unitsPerType-counts[rt])
	}
	return free
}

func (e Engine) DailyActivity(day time.Time, bookings []model.Booking) model.DailyActivity {
	d := model.Day(day)
	activity := model.DailyActivity{
		Date:     d,
		CheckIn:  []model.ActivityEntry{},
		CheckOut: []model.ActivityEntry{},
		Occupied: []model.OccupiedEntry{},
	}

	for _, b := range bookings {
		if !b.Active() {
			continue
		}
		entry := model.ActivityEntry{Name: b.GuestName, RoomType: b.RoomType, BookingID: b.BookingID}
		if b.CheckIn.Equal(d) {
			activity.CheckIn = append(activity.CheckIn, entry)
		}
		if b.CheckOut.Equal(d) {
			activity.CheckOut = append(activity.CheckOut, entry)
		}
		if b.Occupies(d) {
			activity.Occupied = append(activity.Occupied, model.OccupiedEntry{
				ActivityEntry: entry,
				CheckIn:       b.CheckIn,
				CheckOut:      b.CheckOut,
				TotalPayment:  b.TotalPayment,
			})
		}
	}
	return activity
}

// OverallDayStatus summarises hotel-wide occupancy on day.
func (e Engine) OverallDayStatus(day time.Time, bookings []model.Booking) model.DayStatus {
	status := model.DayStatus{
		Date:          model.Day(day),
		TotalCapacity: e.totalCapacity,
		Guests:        []string{},
	}

	if e.totalCapacity == 0 {
		status.Label = LabelUnavailable
		status.Indicator = model.IndicatorError
		return status
	}

	seen := make(map[string]struct{})
	occupied := occupying(day, bookings)
	for _, b := range occupied {
		if _, ok := seen[b.GuestName]; ok {
			continue
		}
		seen[b.GuestName] = struct{}{}
		status.Guests = append(status.Guests, b.GuestName)
	}

	status.OccupiedUnits = len(occupied)
	status.AvailableUnits = max(0, e.totalCapacity-status.OccupiedUnits)

	switch {
	case status.AvailableUnits == e.totalCapacity:
		status.Label = LabelVacant
		status.Indicator = model.IndicatorGreenDot
	case status.AvailableUnits > 0:
		status.Label = fmt.Sprintf("%d/%d trống", status.AvailableUnits, e.totalCapacity)
		status.Indicator = model.IndicatorGreenDot
	default:
		status.Label = LabelFull
		status.Indicator = model.IndicatorOrangeDash
	}
	return status
}

// Calendar returns the day status of every day in the month.
func (e Engine) Calendar(year int, month time.Month, bookings []model.Booking) []model.DayStatus {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	var days []model.DayStatus
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		days = append(days, e.OverallDayStatus(d, bookings))
	}
	return days
}

type ConflictKind string

const (
	ConflictRoomType ConflictKind = "room_type"
	ConflictHotel    ConflictKind = "hotel"
)

type Conflict struct {
	Kind ConflictKind
	Date time.Time
}

// StayConflicts walks the nights of a prospective stay and stops at the first
// night where either the room type or the hotel has no unit left. Bookings
// with excludeID are left out, so an edit does not collide with itself.
func (e Engine) StayConflicts(roomType string, checkIn, checkOut time.Time, bookings []model.Booking, excludeID string) []Conflict {
	others := make([]model.Booking, 0, len(bookings))
	for _, b := range bookings {
		if excludeID != "" && b.BookingID == excludeID {
			continue
		}
		others = append(others, b)
	}

	for d := model.Day(checkIn); d.Before(model.Day(checkOut)); d = d.AddDate(0, 0, 1) {
		occupied := occupying(d, others)

		sameType := 0
		for _, b := range occupied {
			if b.RoomType == roomType {
				sameType++
			}
		}
		if e.unitsPerType-sameType <= 0 {
			return []Conflict{{Kind: ConflictRoomType, Date: d}}
		}
		if len(occupied) >= e.totalCapacity {
			return []Conflict{{Kind: ConflictHotel, Date: d}}
		}
	}
	return nil
}
