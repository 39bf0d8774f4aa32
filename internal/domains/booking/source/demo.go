package source

import (
	"fmt"

	"hotelinv/internal/domains/booking/ingest"

	"github.com/shopspring/decimal"
)

type demoBooking struct {
	roomType, location, guest, genius string
	checkIn, checkOut, madeOn         string
	status                            string
	total, commission                 int64
	collector                         string
}

var demoBookings = []demoBooking{
	{"Home in Old Quarter - Night market", "Phố Cổ Hà Nội, Hoàn Kiếm, Vietnam", "Demo User Alpha", "Không",
		"ngày 22 tháng 5 năm 2025", "ngày 23 tháng 5 năm 2025", "ngày 20 tháng 5 năm 2025", "OK", 300000, 60000, "LOC LE"},
	{"Old Quarter Home- Kitchen & Balcony", "118 Phố Hàng Bạc, Hoàn Kiếm, Vietnam", "Demo User Beta", "Có",
		"ngày 23 tháng 5 năm 2025", "ngày 24 tháng 5 năm 2025", "ngày 21 tháng 5 năm 2025", "OK", 450000, 90000, "THAO LE"},
	{"Home in Old Quarter - Night market", "Phố Cổ Hà Nội, Hoàn Kiếm, Vietnam", "Demo User Alpha", "Không",
		"ngày 25 tháng 5 năm 2025", "ngày 26 tháng 5 năm 2025", "ngày 22 tháng 5 năm 2025", "Đã hủy", 200000, 40000, "LOC LE"},
	{"Old Quarter Home- Kitchen & Balcony", "118 Phố Hàng Bạc, Hoàn Kiếm, Vietnam", "Demo User Gamma", "Có",
		"ngày 26 tháng 5 năm 2025", "ngày 28 tháng 5 năm 2025", "ngày 23 tháng 5 năm 2025", "OK", 600000, 120000, "THAO LE"},
	{"Riverside Boutique Apartment", "Quận 2, TP. Hồ Chí Minh, Vietnam", "Demo User Delta", "Không",
		"ngày 1 tháng 6 năm 2025", "ngày 5 tháng 6 năm 2025", "ngày 25 tháng 5 năm 2025", "OK", 1200000, 240000, "LOC LE"},
}

// Demo returns the sample ledger shown before any real data is loaded.
func Demo() []ingest.Row {
	rows := make([]ingest.Row, 0, len(demoBookings))
	for i, d := range demoBookings {
		rows = append(rows, ingest.Row{
			ingest.LabelBookingID:     ingest.Text(fmt.Sprintf("DEMO%09d", i+1)),
			ingest.LabelRoomType:      ingest.Text(d.roomType),
			ingest.LabelLocation:      ingest.Text(d.location),
			ingest.LabelGuestName:     ingest.Text(d.guest),
			ingest.LabelGenius:        ingest.Text(d.genius),
			ingest.LabelCheckIn:       ingest.Text(d.checkIn),
			ingest.LabelCheckOut:      ingest.Text(d.checkOut),
			ingest.LabelBookingMadeOn: ingest.Text(d.madeOn),
			ingest.LabelStatus:        ingest.Text(d.status),
			ingest.LabelTotalPayment:  ingest.Number(decimal.NewFromInt(d.total)),
			ingest.LabelCommission:    ingest.Number(decimal.NewFromInt(d.commission)),
			ingest.LabelCurrency:      ingest.Text("VND"),
			ingest.LabelCollectedBy:   ingest.Text(d.collector),
		})
	}
	return rows
}
