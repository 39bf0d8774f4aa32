// Package export renders the ledger as downloadable files.
package export

import (
	"strconv"
	"time"

	"hotelinv/internal/domains/booking/ingest"
	"hotelinv/internal/domains/booking/model"
	"hotelinv/internal/domains/booking/normalize"
)

const (
	LabelStayDuration  = "Stay Duration"
	LabelPricePerNight = "Giá mỗi đêm"
)

// Header is the spreadsheet vocabulary followed by the derived columns, so an
// export can be imported again.
func Header() []string {
	return append(ingest.SpreadsheetHeader(), LabelStayDuration, LabelPricePerNight)
}

func phrase(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return normalize.Phrase(*t)
}

func genius(b bool) string {
	if b {
		return "Có"
	}
	return "Không"
}

// Record lays b out in Header order.
func Record(b model.Booking) []string {
	return []string{
		b.BookingID,
		b.GuestName,
		genius(b.IsGeniusMember),
		b.RoomType,
		b.Location,
		phrase(&b.CheckIn),
		phrase(&b.CheckOut),
		phrase(b.BookingMadeOn),
		b.Status.Label(),
		b.TotalPayment.StringFixed(0),
		b.Commission.StringFixed(0),
		b.Currency,
		b.CollectedBy,
		strconv.Itoa(b.StayDuration),
		b.PricePerNight.StringFixed(0),
	}
}
