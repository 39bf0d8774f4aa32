package export

import (
	"bytes"
	"fmt"
	"slices"
	"time"

	"hotelinv/internal/domains/availability/engine"
	"hotelinv/internal/domains/booking/model"
	"hotelinv/internal/domains/booking/normalize"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfFont       = "Arial"
	pdfLineHeight = 7.0
	pdfPageWidth  = 190.0
	dayLayout     = "02/01/2006"
)

// DailyReport is the input of the printable day sheet.
type DailyReport struct {
	Hotel       string
	Day         time.Time
	Bookings    []model.Booking
	RoomTypes   []string
	Engine      engine.Engine
	GeneratedAt time.Time
}

type column struct {
	title string
	width float64
	align string
}

type pdfWriter struct {
	*gofpdf.Fpdf
}

func (w pdfWriter) heading(text string) {
	w.Ln(3)
	w.SetFont(pdfFont, "B", 12)
	w.CellFormat(pdfPageWidth, pdfLineHeight+1, ASCII(text), "B", 1, "L", false, 0, "")
	w.Ln(1)
}

func (w pdfWriter) line(text string) {
	w.SetFont(pdfFont, "", 10)
	w.CellFormat(pdfPageWidth, pdfLineHeight, ASCII(text), "", 1, "L", false, 0, "")
}

func (w pdfWriter) table(columns []column, rows [][]string, empty string) {
	if len(rows) == 0 {
		w.SetFont(pdfFont, "I", 10)
		w.CellFormat(pdfPageWidth, pdfLineHeight, ASCII(empty), "", 1, "L", false, 0, "")
		return
	}

	w.SetFont(pdfFont, "B", 10)
	w.SetFillColor(230, 236, 245)
	for _, c := range columns {
		w.CellFormat(c.width, pdfLineHeight, ASCII(c.title), "1", 0, "C", true, 0, "")
	}
	w.Ln(-1)

	w.SetFont(pdfFont, "", 10)
	for _, row := range rows {
		for i, c := range columns {
			w.CellFormat(c.width, pdfLineHeight, ASCII(row[i]), "1", 0, c.align, false, 0, "")
		}
		w.Ln(-1)
	}
}

// DailyPDF renders occupancy, room-type availability and guest movements of one day.
func DailyPDF(r DailyReport) ([]byte, error) {
	day := model.Day(r.Day)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(ASCII(fmt.Sprintf("%s - %s", r.Hotel, day.Format(dayLayout))), false)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(pdfFont, "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Tao luc %s - Trang %d", r.GeneratedAt.Format("02/01/2006 15:04"), pdf.PageNo()),
			"", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	w := pdfWriter{pdf}

	w.SetFont(pdfFont, "B", 16)
	w.CellFormat(pdfPageWidth, 10, ASCII(fmt.Sprintf("Báo cáo %s - %s", r.Hotel, day.Format(dayLayout))), "", 1, "C", false, 0, "")

	status := r.Engine.OverallDayStatus(day, r.Bookings)
	w.heading("Tình trạng phòng tổng quan")
	w.line(fmt.Sprintf("Phòng có khách: %d / %d", status.OccupiedUnits, status.TotalCapacity))
	w.line(fmt.Sprintf("Phòng trống: %d", status.AvailableUnits))
	w.line("Trạng thái: " + status.Label)

	w.heading("Phòng trống theo loại")
	free := r.Engine.RoomTypeAvailability(day, r.Bookings, r.RoomTypes)
	roomRows := make([][]string, 0, len(r.RoomTypes))
	for _, rt := range slices.Sorted(slices.Values(r.RoomTypes)) {
		roomRows = append(roomRows, []string{rt, fmt.Sprintf("%d / %d", free[rt], r.Engine.UnitsPerType())})
	}
	w.table([]column{
		{title: "Loại phòng", width: 140, align: "L"},
		{title: "Trống", width: 50, align: "C"},
	}, roomRows, "Không có loại phòng.")

	activity := r.Engine.DailyActivity(day, r.Bookings)
	movement := []column{
		{title: "Mã ĐP", width: 45, align: "L"},
		{title: "Khách", width: 75, align: "L"},
		{title: "Loại phòng", width: 70, align: "L"},
	}

	w.heading("Khách check-in hôm nay")
	w.table(movement, entries(activity.CheckIn), "Không có khách check-in hôm nay.")

	w.heading("Khách check-out hôm nay")
	w.table(movement, entries(activity.CheckOut), "Không có khách check-out hôm nay.")

	w.heading("Khách đang lưu trú")
	staying := make([][]string, 0, len(activity.Occupied))
	for _, o := range activity.Occupied {
		staying = append(staying, []string{
			o.Name,
			o.RoomType,
			o.CheckIn.Format(dayLayout),
			o.CheckOut.Format(dayLayout),
			normalize.FormatAmount(o.TotalPayment),
		})
	}
	w.table([]column{
		{title: "Khách", width: 55, align: "L"},
		{title: "Loại phòng", width: 45, align: "L"},
		{title: "Check-in", width: 28, align: "C"},
		{title: "Check-out", width: 28, align: "C"},
		{title: "Tổng tiền", width: 34, align: "R"},
	}, staying, "Không có khách lưu trú.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render daily report: %w", err)
	}

	return buf.Bytes(), nil
}

func entries(list []model.ActivityEntry) [][]string {
	rows := make([][]string, 0, len(list))
	for _, a := range list {
		rows = append(rows, []string{a.BookingID, a.Name, a.RoomType})
	}
	return rows
}
