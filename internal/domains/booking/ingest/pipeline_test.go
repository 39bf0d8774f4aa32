package ingest_test

import (
	"testing"
	"time"

	"hotelinv/internal/domains/booking/ingest"
	"hotelinv/internal/domains/booking/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRunSpreadsheetRow(t *testing.T) {
	rows := []ingest.Row{
		{
			"Ngày đến":          ingest.Text("ngày 26 tháng 5 năm 2025"),
			"Ngày đi":           ingest.Text("ngày 28 tháng 5 năm 2025"),
			"Được đặt vào":      ingest.Text("ngày 23 tháng 5 năm 2025"),
			"Tên chỗ nghỉ":      ingest.Text("Old Quarter Home- Kitchen & Balcony"),
			"Tên người đặt":     ingest.Text("Demo User Gamma"),
			"Thành viên Genius": ingest.Text("Có"),
			"Tình trạng":        ingest.Text("OK"),
			"Tổng thanh toán":   ingest.Text("600.000"),
			"Hoa hồng":          ingest.Float(120000),
			"Số đặt phòng":      ingest.Text("DEMO000000004"),
			"Cột lạ":            ingest.Text("ignored"),
		},
	}

	result, err := ingest.Run(ingest.SourceSpreadsheet, rows)

	assert.NoError(t, err)
	assert.Zero(t, result.Dropped)
	assert.Empty(t, result.Warnings)
	if assert.Len(t, result.Bookings, 1) {
		b := result.Bookings[0]
		assert.Equal(t, "DEMO000000004", b.BookingID)
		assert.Equal(t, "Demo User Gamma", b.GuestName)
		assert.True(t, b.IsGeniusMember)
		assert.Equal(t, date(2025, 5, 26), b.CheckIn)
		assert.Equal(t, date(2025, 5, 28), b.CheckOut)
		if assert.NotNil(t, b.BookingMadeOn) {
			assert.Equal(t, date(2025, 5, 23), *b.BookingMadeOn)
		}
		assert.Equal(t, 2, b.StayDuration)
		assert.True(t, decimal.NewFromInt(600000).Equal(b.TotalPayment))
		assert.True(t, decimal.NewFromInt(300000).Equal(b.PricePerNight))
		assert.True(t, decimal.NewFromInt(120000).Equal(b.Commission))
		assert.Equal(t, "VND", b.Currency)
		assert.Equal(t, "N/A", b.Location)
		assert.Equal(t, "N/A", b.CollectedBy)
		assert.Equal(t, model.StatusOK, b.Status)
	}
}

func TestRunDropsRowsWithInvalidDates(t *testing.T) {
	rows := []ingest.Row{
		{"Ngày đến": ingest.Text("2025-06-01"), "Ngày đi": ingest.Text("2025-06-03"), "Tên người đặt": ingest.Text("A")},
		{"Ngày đến": ingest.Text("ngày 31 tháng 2 năm 2025"), "Ngày đi": ingest.Text("2025-06-03"), "Tên người đặt": ingest.Text("B")},
		{"Ngày đi": ingest.Text("2025-06-03"), "Tên người đặt": ingest.Text("C")},
		{"Ngày đến": ingest.Text("2025-06-03"), "Ngày đi": ingest.Text("2025-06-03"), "Tên người đặt": ingest.Text("D")},
		{"Cột lạ": ingest.Text("only unknown labels")},
		{},
	}

	result, err := ingest.Run(ingest.SourceSpreadsheet, rows)

	assert.NoError(t, err)
	assert.Len(t, result.Bookings, 1)
	assert.Equal(t, 3, result.Dropped)
	assert.Equal(t, []string{"3 bookings dropped due to invalid dates"}, result.Warnings)
	assert.Equal(t, len(rows)-2, len(result.Bookings)+result.Dropped)
}

func TestRunEmptyBatch(t *testing.T) {
	tests := []struct {
		name        string
		rows        []ingest.Row
		wantDropped int
	}{
		{name: "no rows", rows: nil},
		{
			name:        "all rows invalid",
			rows:        []ingest.Row{{"Ngày đến": ingest.Text("abc"), "Ngày đi": ingest.Text("2025-01-02")}},
			wantDropped: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ingest.Run(ingest.SourceSpreadsheet, tt.rows)
			assert.ErrorIs(t, err, ingest.ErrEmptyBatch)
			assert.Empty(t, result.Bookings)
			assert.Equal(t, tt.wantDropped, result.Dropped)
		})
	}
}

func TestRunActiveSubset(t *testing.T) {
	rows := []ingest.Row{
		{"check_in": ingest.Date(date(2025, 5, 22)), "check_out": ingest.Date(date(2025, 5, 23)), "status": ingest.Text("OK")},
		{"check_in": ingest.Date(date(2025, 5, 25)), "check_out": ingest.Date(date(2025, 5, 26)), "status": ingest.Text("Đã hủy")},
		{"check_in": ingest.Date(date(2025, 5, 25)), "check_out": ingest.Date(date(2025, 5, 26)), "status": ingest.Text("Chờ xử lý")},
	}

	result, err := ingest.Run(ingest.SourceSheet, rows)

	assert.NoError(t, err)
	assert.Len(t, result.Bookings, 3)
	active := result.Active()
	assert.Len(t, active, 2)
	for _, b := range active {
		assert.NotEqual(t, model.StatusCancelled, b.Status)
	}
}

func TestRunHTMLAndImageLabels(t *testing.T) {
	htmlRows := []ingest.Row{{
		"Nhận phòng":      ingest.Text("2025-07-01"),
		"Ngày đi":         ingest.Text("2025-07-04"),
		"Phòng":           ingest.Text("Riverside Boutique Apartment"),
		"Giá":             ingest.Text("VND 1.500.000"),
		"Mã số đặt phòng": ingest.Text("4455667788"),
	}}

	result, err := ingest.Run(ingest.SourceHTML, htmlRows)
	assert.NoError(t, err)
	if assert.Len(t, result.Bookings, 1) {
		b := result.Bookings[0]
		assert.Equal(t, "Riverside Boutique Apartment", b.RoomType)
		assert.Equal(t, "4455667788", b.BookingID)
		assert.True(t, decimal.NewFromInt(500000).Equal(b.PricePerNight))
	}

	imageRows := []ingest.Row{{
		"guest_name":     ingest.Text("Tran Thi B"),
		"check_in_date":  ingest.Text("2025-07-10"),
		"check_out_date": ingest.Text("2025-07-11"),
		"num_adults":     ingest.Float(2),
		"currency":       ingest.Text("usd"),
	}}

	result, err = ingest.Run(ingest.SourceImage, imageRows)
	assert.NoError(t, err)
	if assert.Len(t, result.Bookings, 1) {
		assert.Equal(t, "Tran Thi B", result.Bookings[0].GuestName)
		assert.Equal(t, "USD", result.Bookings[0].Currency)
	}
}

func TestRunPrefersPrimaryLabelOverAlias(t *testing.T) {
	row := ingest.Row{
		"Nhận phòng":      ingest.Text("2025-06-02"),
		"Ngày đến":        ingest.Text("2025-06-01"),
		"Ngày đi":         ingest.Text("2025-06-04"),
		"Giá":             ingest.Text("999"),
		"Tổng thanh toán": ingest.Text("300"),
		"Phòng":           ingest.Text("Studio"),
		"Tên chỗ nghỉ":    ingest.Text("Deluxe"),
	}

	for range 100 {
		result, err := ingest.Run(ingest.SourceHTML, []ingest.Row{row})

		assert.NoError(t, err)
		if assert.Len(t, result.Bookings, 1) {
			b := result.Bookings[0]
			assert.Equal(t, date(2025, 6, 1), b.CheckIn)
			assert.Equal(t, "300", b.TotalPayment.String())
			assert.Equal(t, "Deluxe", b.RoomType)
		}
	}
}

func TestRunFallsBackToAliasWhenPrimaryIsEmpty(t *testing.T) {
	row := ingest.Row{
		"Ngày đến":   ingest.Text(""),
		"Nhận phòng": ingest.Text("2025-06-02"),
		"Ngày đi":    ingest.Text("2025-06-04"),
	}

	result, err := ingest.Run(ingest.SourceHTML, []ingest.Row{row})

	assert.NoError(t, err)
	if assert.Len(t, result.Bookings, 1) {
		assert.Equal(t, date(2025, 6, 2), result.Bookings[0].CheckIn)
	}
}

func TestRunClampsNegativeAmounts(t *testing.T) {
	row := ingest.Row{
		"Ngày đến":        ingest.Text("2025-06-01"),
		"Ngày đi":         ingest.Text("2025-06-03"),
		"Tổng thanh toán": ingest.Text("-1.234"),
		"Hoa hồng":        ingest.Float(-50),
	}

	result, err := ingest.Run(ingest.SourceSpreadsheet, []ingest.Row{row})

	assert.NoError(t, err)
	if assert.Len(t, result.Bookings, 1) {
		b := result.Bookings[0]
		assert.True(t, b.TotalPayment.IsZero())
		assert.True(t, b.Commission.IsZero())
		assert.True(t, b.PricePerNight.IsZero())
	}
}

func TestLookupUnknownSource(t *testing.T) {
	_, ok := ingest.Lookup(ingest.Source("fax"), "Ngày đến")
	assert.False(t, ok)

	f, ok := ingest.Lookup(ingest.SourcePDF, "Nhận phòng")
	assert.True(t, ok)
	assert.Equal(t, ingest.FieldCheckIn, f)
}

func TestFromSheetReloadsThroughPipeline(t *testing.T) {
	madeOn := date(2025, 5, 20)
	stored := model.Booking{
		BookingID:     "S1",
		GuestName:     "Le Van C",
		RoomType:      "Deluxe",
		Location:      "Hoàn Kiếm",
		CheckIn:       date(2025, 6, 1),
		CheckOut:      date(2025, 6, 4),
		BookingMadeOn: &madeOn,
		Status:        model.StatusPending,
		TotalPayment:  decimal.NewFromInt(900000),
		Commission:    decimal.NewFromInt(90000),
		Currency:      "VND",
		CollectedBy:   "THAO LE",
	}
	row := model.ToSheetRow("bookings", 0, stored, time.Now())

	result, err := ingest.Run(ingest.SourceSheet, ingest.FromSheet([]model.SheetRow{row}))

	assert.NoError(t, err)
	if assert.Len(t, result.Bookings, 1) {
		b := result.Bookings[0]
		assert.Equal(t, model.StatusPending, b.Status)
		assert.Equal(t, 3, b.StayDuration)
		assert.Equal(t, "300000", b.PricePerNight.String())
		assert.Equal(t, madeOn, *b.BookingMadeOn)
		assert.Equal(t, "THAO LE", b.CollectedBy)
	}
}
