package source_test

import (
	"testing"
	"time"

	"hotelinv/internal/domains/booking/ingest"
	"hotelinv/internal/domains/booking/model"
	"hotelinv/internal/domains/booking/source"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		want    source.Format
		wantErr bool
	}{
		{name: "xlsx", file: "Bookings.XLSX", want: source.FormatXLSX},
		{name: "csv", file: "export.csv", want: source.FormatCSV},
		{name: "htm", file: "reservations.htm", want: source.FormatHTML},
		{name: "pdf", file: "list.pdf", want: source.FormatPDF},
		{name: "unknown", file: "notes.txt", wantErr: true},
		{name: "no extension", file: "bookings", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := source.Detect(tt.file)
			if tt.wantErr {
				assert.ErrorIs(t, err, source.ErrUnsupportedFormat)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCSV(t *testing.T) {
	data := []byte("\ufeffSố đặt phòng,Tên người đặt,Ngày đến,Ngày đi,Tổng thanh toán\n" +
		"123,Nguyen Van A,ngày 1 tháng 6 năm 2025,ngày 3 tháng 6 năm 2025,\"1.200.000\"\n" +
		",,,,\n" +
		"124,Tran Thi B,02/06/2025,04/06/2025,800000\n")

	src, rows, err := source.Parse("bookings.csv", data)

	assert.NoError(t, err)
	assert.Equal(t, ingest.SourceSpreadsheet, src)
	if assert.Len(t, rows, 2) {
		assert.Equal(t, "123", rows[0][ingest.LabelBookingID].String())
		assert.Equal(t, "1.200.000", rows[0][ingest.LabelTotalPayment].String())
		assert.Equal(t, "Tran Thi B", rows[1][ingest.LabelGuestName].String())
	}

	result, err := ingest.Run(src, rows)
	assert.NoError(t, err)
	assert.Len(t, result.Bookings, 2)
}

func TestParseCSVHeaderOnly(t *testing.T) {
	_, err := source.ParseCSV([]byte("Số đặt phòng,Tên người đặt\n"))

	assert.ErrorIs(t, err, source.ErrNoRows)
}

func TestParseXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	assert.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Số đặt phòng", "Tên người đặt", "Ngày đến", "Ngày đi", "Tổng thanh toán"}))
	assert.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"A1", "Le Van C", "ngày 10 tháng 7 năm 2025", "ngày 12 tháng 7 năm 2025", 500000}))
	assert.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"A2", "Pham D", 45848, 45850, 700000}))

	buf, err := f.WriteToBuffer()
	assert.NoError(t, err)

	rows, err := source.ParseXLSX(buf.Bytes())

	assert.NoError(t, err)
	if assert.Len(t, rows, 2) {
		assert.Equal(t, ingest.KindText, rows[0][ingest.LabelCheckIn].Kind())
		assert.Equal(t, ingest.KindDate, rows[1][ingest.LabelCheckIn].Kind())
		assert.Equal(t, "2025-07-10", rows[1][ingest.LabelCheckIn].String())
	}

	result, err := ingest.Run(ingest.SourceSpreadsheet, rows)
	assert.NoError(t, err)
	if assert.Len(t, result.Bookings, 2) {
		assert.Equal(t, 2, result.Bookings[1].StayDuration)
	}
}

func TestParseXLSXInvalid(t *testing.T) {
	_, err := source.ParseXLSX([]byte("not a workbook"))

	assert.Error(t, err)
}

const reservationTableHTML = `<html><body>
<table class="cdd0659f86">
<thead><tr><th>Tên khách</th><th>Nhận phòng</th><th>Ngày đi</th><th>Phòng</th><th>Giá</th><th>Mã số đặt phòng</th><th>Tình trạng</th></tr></thead>
<tbody>
<tr>
<td><a>Nguyen Van A</a><div>Genius</div><div>2 người lớn</div></td>
<td><span>ngày 1 tháng 6 năm 2025</span></td>
<td>ngày 3 tháng 6 năm 2025</td>
<td><div>Deluxe Double</div><div>1 phòng</div></td>
<td>VND 1.500.000</td>
<td>4455667788</td>
<td>OK</td>
</tr>
<tr>
<td>Tran Thi B<br>1 khách</td>
<td>ngày 2 tháng 6 năm 2025</td>
<td>ngày 4 tháng 6 năm 2025</td>
<td>Standard Twin</td>
<td>VND 900.000</td>
<td>4455667799</td>
<td>Đã hủy</td>
</tr>
</tbody>
</table>
</body></html>`

func TestParseHTMLReservationTable(t *testing.T) {
	src, rows, err := source.Parse("export.html", []byte(reservationTableHTML))

	assert.NoError(t, err)
	assert.Equal(t, ingest.SourceHTML, src)
	if !assert.Len(t, rows, 2) {
		return
	}
	assert.Equal(t, "Nguyen Van A", rows[0]["Tên khách"].String())
	assert.Equal(t, "Có", rows[0][ingest.LabelGenius].String())
	assert.Equal(t, "Deluxe Double", rows[0]["Phòng"].String())
	assert.Equal(t, "Tran Thi B", rows[1]["Tên khách"].String())
	assert.Equal(t, "Không", rows[1][ingest.LabelGenius].String())

	result, err := ingest.Run(src, rows)
	assert.NoError(t, err)
	if assert.Len(t, result.Bookings, 2) {
		b := result.Bookings[0]
		assert.Equal(t, "4455667788", b.BookingID)
		assert.Equal(t, "Deluxe Double", b.RoomType)
		assert.Equal(t, "1500000", b.TotalPayment.String())
		assert.Equal(t, "VND", b.Currency)
		assert.Equal(t, model.StatusCancelled, result.Bookings[1].Status)
	}
}

const listTableHTML = `<html><body>
<table>
<tbody>
<tr class="bui-table__row">
<td data-heading="Tên khách"><a href="#"><span>Le   Van C</span></a> Genius</td>
<td data-heading="Nhận phòng"><span>5 tháng 6 2025</span></td>
<td data-heading="Ngày đi"><span>7 tháng 6 2025</span></td>
<td data-heading="Phòng"><span>Family Suite</span></td>
<td data-heading="Giá"><span>VND 2.000.000</span></td>
<td data-heading="Mã số đặt phòng"><a href="#"><span>998877</span></a></td>
<td data-heading="Tình trạng"><span>OK</span></td>
<td>no heading</td>
</tr>
</tbody>
</table>
</body></html>`

func TestParseHTMLListTable(t *testing.T) {
	rows, err := source.ParseHTML([]byte(listTableHTML))

	assert.NoError(t, err)
	if assert.Len(t, rows, 1) {
		row := rows[0]
		assert.Equal(t, "Le Van C", row["Tên khách"].String())
		assert.Equal(t, "Có", row[ingest.LabelGenius].String())
		assert.Equal(t, "998877", row["Mã số đặt phòng"].String())
		assert.Equal(t, "Family Suite", row["Phòng"].String())
		assert.Len(t, row, 8)
	}
}

func TestParseHTMLListTableGeniusBadgeAnyCase(t *testing.T) {
	page := `<table><tbody>
<tr class="bui-table__row">
<td data-heading="Tên khách">Tran Thi D GENIUS</td>
<td data-heading="Nhận phòng"><span>5 tháng 6 2025</span></td>
<td data-heading="Ngày đi"><span>7 tháng 6 2025</span></td>
</tr>
<tr class="bui-table__row">
<td data-heading="Tên khách">genius Pham Van E</td>
<td data-heading="Nhận phòng"><span>8 tháng 6 2025</span></td>
<td data-heading="Ngày đi"><span>9 tháng 6 2025</span></td>
</tr>
</tbody></table>`

	rows, err := source.ParseHTML([]byte(page))

	assert.NoError(t, err)
	if assert.Len(t, rows, 2) {
		assert.Equal(t, "Tran Thi D", rows[0]["Tên khách"].String())
		assert.Equal(t, "Có", rows[0][ingest.LabelGenius].String())
		assert.Equal(t, "Pham Van E", rows[1]["Tên khách"].String())
		assert.Equal(t, "Có", rows[1][ingest.LabelGenius].String())
	}
}

func TestParseHTMLGenericTable(t *testing.T) {
	page := `<table>
<tr><td>Số đặt phòng</td><td>Ngày đến</td><td>Ngày đi</td></tr>
<tr><td>X1</td><td>ngày 1 tháng 8 năm 2025</td><td>ngày 2 tháng 8 năm 2025</td></tr>
</table>`

	rows, err := source.ParseHTML([]byte(page))

	assert.NoError(t, err)
	if assert.Len(t, rows, 1) {
		assert.Equal(t, "X1", rows[0]["Số đặt phòng"].String())
	}
}

func TestParseHTMLWithoutTable(t *testing.T) {
	_, err := source.ParseHTML([]byte("<html><body><p>nothing</p></body></html>"))

	assert.ErrorIs(t, err, source.ErrNoTable)
}

func TestParsePDFText(t *testing.T) {
	text := "Danh sách đặt phòng\n" +
		`"101","Deluxe Room","Nguyen Van A Genius 2 người lớn","ngày 1 tháng 6 năm 2025","ngày 3 tháng 6 năm 2025","OK","VND 1.000.000","VND 150.000","5566","ngày 20 tháng 5 năm 2025"` + "\n" +
		`"102","Twin Room","Tran B 1 khách","ngày 2 tháng 6 năm 2025","ngày 5 tháng 6 năm 2025","Đã hủy","VND 600.000"` + "\n" +
		`"short","line"` + "\n" +
		"Trang 1/1\n"

	rows := source.ParsePDFText(text)

	if !assert.Len(t, rows, 2) {
		return
	}
	assert.Equal(t, "Nguyen Van A", rows[0]["Tên khách"].String())
	assert.Equal(t, "Có", rows[0][ingest.LabelGenius].String())
	assert.Equal(t, source.PDFLocation, rows[0][ingest.LabelLocation].String())
	assert.Equal(t, "Tran B", rows[1]["Tên khách"].String())
	assert.Equal(t, "Không", rows[1][ingest.LabelGenius].String())

	result, err := ingest.Run(ingest.SourcePDF, rows)
	assert.NoError(t, err)
	if assert.Len(t, result.Bookings, 2) {
		assert.Equal(t, "5566", result.Bookings[0].BookingID)
		assert.Equal(t, "Deluxe Room", result.Bookings[0].RoomType)
		assert.Equal(t, source.PDFLocation, result.Bookings[0].Location)
		assert.Equal(t, model.NotAvailable, result.Bookings[1].BookingID)
	}
}

func TestParsePDFInvalid(t *testing.T) {
	_, err := source.ParsePDF([]byte("%PDF-broken"))

	assert.Error(t, err)
}

func TestDemo(t *testing.T) {
	result, err := ingest.Run(ingest.SourceSpreadsheet, source.Demo())

	assert.NoError(t, err)
	if !assert.Len(t, result.Bookings, 5) {
		return
	}
	assert.Equal(t, "DEMO000000001", result.Bookings[0].BookingID)
	assert.Equal(t, "DEMO000000005", result.Bookings[4].BookingID)
	assert.Equal(t, model.StatusCancelled, result.Bookings[2].Status)
	assert.Len(t, result.Active(), 4)
	assert.Equal(t, "THAO LE", result.Bookings[1].CollectedBy)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), result.Bookings[4].CheckIn)
	assert.Equal(t, 4, result.Bookings[4].StayDuration)
	assert.Equal(t, "300000", result.Bookings[4].PricePerNight.String())
}
