package export

import (
	"fmt"

	"hotelinv/internal/domains/booking/model"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const sheetName = "BookingManager"

func XLSX(bookings []model.Booking) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close workbook")
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("failed to name worksheet: %w", err)
	}

	if err := writeRow(f, 1, Header()); err != nil {
		return nil, err
	}
	for i, b := range bookings {
		if err := writeRow(f, i+2, Record(b)); err != nil {
			return nil, err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(Header()), 1)
		_ = f.SetCellStyle(sheetName, "A1", last, bold)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to address row %d: %w", row, err)
	}

	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}

	if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}
