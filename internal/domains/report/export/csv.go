package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"hotelinv/internal/domains/booking/model"
)

// utf8BOM lets spreadsheet applications detect the encoding of Vietnamese text.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func CSV(bookings []model.Booking) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(Header()); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, b := range bookings {
		if err := w.Write(Record(b)); err != nil {
			return nil, fmt.Errorf("failed to write booking %s: %w", b.BookingID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}
