package dto

import (
	"hotelinv/internal/domains/booking/model"
	"hotelinv/shared"

	"github.com/shopspring/decimal"
)

type RoomTypeFree struct {
	RoomType  string `json:"room_type"`
	Available int    `json:"available"`
	Units     int    `json:"units"`
}

type RoomTypesResponse struct {
	Date      string         `json:"date"`
	RoomTypes []RoomTypeFree `json:"room_types"`
}

type ActivityEntry struct {
	Name      string `json:"name"`
	RoomType  string `json:"room_type"`
	BookingID string `json:"booking_id"`
}

type OccupiedEntry struct {
	ActivityEntry
	CheckIn      string          `json:"check_in"`
	CheckOut     string          `json:"check_out"`
	TotalPayment decimal.Decimal `json:"total_payment"`
}

type ActivityResponse struct {
	Date     string          `json:"date"`
	CheckIn  []ActivityEntry `json:"check_in"`
	CheckOut []ActivityEntry `json:"check_out"`
	Occupied []OccupiedEntry `json:"occupied"`
}

func toEntries(in []model.ActivityEntry) []ActivityEntry {
	out := make([]ActivityEntry, 0, len(in))
	for _, e := range in {
		out = append(out, ActivityEntry{Name: e.Name, RoomType: e.RoomType, BookingID: e.BookingID})
	}
	return out
}

func (r *ActivityResponse) FromModel(a model.DailyActivity) {
	r.Date = a.Date.Format(shared.DayLayout)
	r.CheckIn = toEntries(a.CheckIn)
	r.CheckOut = toEntries(a.CheckOut)
	r.Occupied = make([]OccupiedEntry, 0, len(a.Occupied))
	for _, o := range a.Occupied {
		r.Occupied = append(r.Occupied, OccupiedEntry{
			ActivityEntry: ActivityEntry{Name: o.Name, RoomType: o.RoomType, BookingID: o.BookingID},
			CheckIn:       o.CheckIn.Format(shared.DayLayout),
			CheckOut:      o.CheckOut.Format(shared.DayLayout),
			TotalPayment:  o.TotalPayment,
		})
	}
}

type DayStatusResponse struct {
	Date           string          `json:"date"`
	OccupiedUnits  int             `json:"occupied_units"`
	AvailableUnits int             `json:"available_units"`
	TotalCapacity  int             `json:"total_capacity"`
	Guests         []string        `json:"guests"`
	Label          string          `json:"label"`
	Indicator      model.Indicator `json:"indicator"`
}

func (r *DayStatusResponse) FromModel(s model.DayStatus) {
	r.Date = s.Date.Format(shared.DayLayout)
	r.OccupiedUnits = s.OccupiedUnits
	r.AvailableUnits = s.AvailableUnits
	r.TotalCapacity = s.TotalCapacity
	r.Guests = s.Guests
	r.Label = s.Label
	r.Indicator = s.Indicator
}

type CalendarResponse struct {
	Month string              `json:"month"`
	Days  []DayStatusResponse `json:"days"`
}
