package source

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"hotelinv/internal/domains/booking/ingest"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog/log"
)

// PDFLocation marks bookings whose location cannot be read from a PDF export.
const PDFLocation = "N/A (từ PDF)"

// Column order of the quoted rows in the reservation PDF export.
var pdfColumns = []string{
	"ID chỗ nghỉ",
	"Tên chỗ nghỉ",
	"Tên khách",
	"Nhận phòng",
	"Ngày đi",
	"Tình trạng",
	"Tổng thanh toán",
	"Hoa hồng",
	"Số đặt phòng",
	"Được đặt vào",
}

var pdfPartySizes = []string{"1 khách", "2 khách", "2 người lớn"}

func ParsePDF(data []byte) ([]ingest.Row, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}

	var text strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			log.Warn().Err(err).Int("page", i).Msg("failed to extract text from pdf page")
			continue
		}
		text.WriteString(content)
		text.WriteByte('\n')
	}

	if strings.TrimSpace(text.String()) == "" {
		return nil, fmt.Errorf("%w: pdf has no extractable text", ErrNoRows)
	}

	rows := ParsePDFText(text.String())
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	return rows, nil
}

// ParsePDFText picks the quoted comma-separated booking lines out of extracted PDF text.
func ParsePDFText(text string) []ingest.Row {
	minSeparators := len(pdfColumns) - 5
	minFields, maxFields := len(pdfColumns)-3, len(pdfColumns)+2

	var rows []ingest.Row
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.ReplaceAll(line, "\r", ""))
		if !strings.HasPrefix(line, `"`) || strings.Count(line, `","`) < minSeparators {
			continue
		}

		fields, err := csv.NewReader(strings.NewReader(line)).Read()
		if err != nil {
			log.Debug().Err(err).Msg("skipping malformed pdf line")
			continue
		}
		if len(fields) < minFields || len(fields) > maxFields {
			continue
		}

		row := ingest.Row{}
		for i, column := range pdfColumns {
			if i >= len(fields) {
				break
			}
			if v := strings.TrimSpace(strings.ReplaceAll(fields[i], "\n", " ")); v != "" {
				row[column] = ingest.Text(v)
			}
		}

		if guest, ok := row["Tên khách"]; ok {
			name, genius := pdfGuest(guest.String())
			row["Tên khách"] = ingest.Text(name)
			row[ingest.LabelGenius] = ingest.Bool(genius)
		}
		row[ingest.LabelLocation] = ingest.Text(PDFLocation)

		rows = append(rows, row)
	}

	return rows
}

func pdfGuest(cell string) (string, bool) {
	name, _, genius := strings.Cut(cell, "Genius")
	for _, marker := range pdfPartySizes {
		name = strings.ReplaceAll(name, marker, "")
	}
	return strings.TrimSpace(name), genius
}
