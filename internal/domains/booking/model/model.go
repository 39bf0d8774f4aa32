package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "sheet_bookings"
	EntityName = "booking"

	FieldSheet    = "sheet"
	FieldPosition = "position"

	DefaultCurrency = "VND"
	NotAvailable    = "N/A"
)

type Status string

const (
	StatusOK        Status = "OK"
	StatusCancelled Status = "CANCELLED"
	StatusPending   Status = "PENDING"
)

var statusLabels = map[Status]string{
	StatusOK:        "OK",
	StatusCancelled: "Đã hủy",
	StatusPending:   "Chờ xử lý",
}

// ParseStatus maps the external status vocabulary onto Status. Anything that is
// not recognisably cancelled or pending counts as OK.
func ParseStatus(raw string) Status {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case s == "":
		return StatusOK
	case strings.Contains(s, "hủy"), strings.Contains(s, "huỷ"), strings.Contains(s, "cancel"):
		return StatusCancelled
	case strings.Contains(s, "chờ"), strings.Contains(s, "pending"):
		return StatusPending
	default:
		return StatusOK
	}
}

// Label returns the vocabulary used by exports and chat messages.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

type Booking struct {
	BookingID      string
	GuestName      string
	IsGeniusMember bool
	RoomType       string
	Location       string
	CheckIn        time.Time
	CheckOut       time.Time
	BookingMadeOn  *time.Time
	Status         Status
	TotalPayment   decimal.Decimal
	Commission     decimal.Decimal
	Currency       string
	StayDuration   int
	PricePerNight  decimal.Decimal
	CollectedBy    string
}

// Day truncates t to its calendar day in UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts whole calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}

// Recompute refreshes StayDuration and PricePerNight from the stay dates and total.
func (b *Booking) Recompute() {
	b.StayDuration = max(0, DaysBetween(b.CheckIn, b.CheckOut))
	if b.StayDuration > 0 {
		b.PricePerNight = b.TotalPayment.Div(decimal.NewFromInt(int64(b.StayDuration))).RoundBank(0)
		return
	}
	b.PricePerNight = decimal.Zero
}

func (b Booking) Active() bool {
	return b.Status != StatusCancelled
}

// Occupies reports whether the booking holds a unit on day, i.e. CheckIn <= day < CheckOut.
func (b Booking) Occupies(day time.Time) bool {
	d := Day(day)
	return !d.Before(b.CheckIn) && d.Before(b.CheckOut)
}

func (b Booking) HasID() bool {
	return IsBookingID(b.BookingID)
}

// IsBookingID reports whether id can address a single booking. Empty ids and
// the N/A placeholder are shared by every record imported without one.
func IsBookingID(id string) bool {
	id = strings.TrimSpace(id)
	return id != "" && id != NotAvailable
}

func ActiveOnly(bookings []Booking) []Booking {
	active := make([]Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Active() {
			active = append(active, b)
		}
	}
	return active
}

type ActivityEntry struct {
	Name      string
	RoomType  string
	BookingID string
}

type OccupiedEntry struct {
	ActivityEntry
	CheckIn      time.Time
	CheckOut     time.Time
	TotalPayment decimal.Decimal
}

type DailyActivity struct {
	Date     time.Time
	CheckIn  []ActivityEntry
	CheckOut []ActivityEntry
	Occupied []OccupiedEntry
}

type Indicator string

const (
	IndicatorGreenDot   Indicator = "green_dot"
	IndicatorOrangeDash Indicator = "orange_dash"
	IndicatorError      Indicator = "error"
)

type DayStatus struct {
	Date           time.Time
	OccupiedUnits  int
	AvailableUnits int
	TotalCapacity  int
	Guests         []string
	Label          string
	Indicator      Indicator
}

// SheetRow is the persisted shape of a booking in a named sheet.
type SheetRow struct {
	Sheet          string          `db:"sheet"`
	Position       int             `db:"position"`
	BookingID      string          `db:"booking_id"`
	GuestName      string          `db:"guest_name"`
	IsGeniusMember bool            `db:"is_genius_member"`
	RoomType       string          `db:"room_type"`
	Location       string          `db:"location"`
	CheckIn        time.Time       `db:"check_in"`
	CheckOut       time.Time       `db:"check_out"`
	BookingMadeOn  *time.Time      `db:"booking_made_on"`
	Status         string          `db:"status"`
	TotalPayment   decimal.Decimal `db:"total_payment"`
	Commission     decimal.Decimal `db:"commission"`
	Currency       string          `db:"currency"`
	CollectedBy    string          `db:"collected_by"`
	SavedAt        time.Time       `db:"saved_at"`
}

func ToSheetRow(sheet string, position int, b Booking, savedAt time.Time) SheetRow {
	return SheetRow{
		Sheet:          sheet,
		Position:       position,
		BookingID:      b.BookingID,
		GuestName:      b.GuestName,
		IsGeniusMember: b.IsGeniusMember,
		RoomType:       b.RoomType,
		Location:       b.Location,
		CheckIn:        b.CheckIn,
		CheckOut:       b.CheckOut,
		BookingMadeOn:  b.BookingMadeOn,
		Status:         b.Status.Label(),
		TotalPayment:   b.TotalPayment,
		Commission:     b.Commission,
		Currency:       b.Currency,
		CollectedBy:    b.CollectedBy,
		SavedAt:        savedAt,
	}
}
