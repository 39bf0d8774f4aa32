package source

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"hotelinv/internal/domains/booking/ingest"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// Excel serials outside this window are treated as plain numbers, not dates.
const (
	minDateSerial = 20000
	maxDateSerial = 80000
)

var dateLabels = map[string]struct{}{
	ingest.LabelCheckIn:       {},
	ingest.LabelCheckOut:      {},
	ingest.LabelBookingMadeOn: {},
}

// ParseXLSX reads the first worksheet, taking the first row as the header.
func ParseXLSX(data []byte) ([]ingest.Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close workbook")
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoRows
	}

	records, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %q: %w", sheets[0], err)
	}

	return tableRows(records, spreadsheetCell)
}

func spreadsheetCell(label, value string) ingest.Value {
	if _, ok := dateLabels[label]; !ok {
		return ingest.Text(value)
	}

	serial, err := strconv.ParseFloat(value, 64)
	if err != nil || serial < minDateSerial || serial > maxDateSerial {
		return ingest.Text(value)
	}

	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return ingest.Text(value)
	}

	return ingest.Date(t)
}

func ParseCSV(data []byte) ([]ingest.Row, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte("\ufeff"))))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	return tableRows(records, func(_, value string) ingest.Value {
		return ingest.Text(value)
	})
}
