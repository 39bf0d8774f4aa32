package source

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"hotelinv/internal/domains/booking/ingest"
)

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrNoTable           = errors.New("no booking table found")
	ErrNoRows            = errors.New("no booking rows found")
)

// Detect picks the parser from the file extension.
func Detect(fileName string) (Format, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".csv":
		return FormatCSV, nil
	case ".html", ".htm":
		return FormatHTML, nil
	case ".pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, fileName)
	}
}

// Parse reads an uploaded export into raw rows tagged with their label vocabulary.
func Parse(fileName string, data []byte) (ingest.Source, []ingest.Row, error) {
	format, err := Detect(fileName)
	if err != nil {
		return "", nil, err
	}

	var rows []ingest.Row

	switch format {
	case FormatXLSX:
		rows, err = ParseXLSX(data)
		return ingest.SourceSpreadsheet, rows, err
	case FormatCSV:
		rows, err = ParseCSV(data)
		return ingest.SourceSpreadsheet, rows, err
	case FormatHTML:
		rows, err = ParseHTML(data)
		return ingest.SourceHTML, rows, err
	default:
		rows, err = ParsePDF(data)
		return ingest.SourcePDF, rows, err
	}
}

func tableRows(records [][]string, cell func(label, value string) ingest.Value) ([]ingest.Row, error) {
	if len(records) < 2 {
		return nil, ErrNoRows
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	rows := make([]ingest.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(ingest.Row, len(header))
		for i, value := range record {
			if i >= len(header) || header[i] == "" {
				continue
			}
			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}
			row[header[i]] = cell(header[i], value)
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}

	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	return rows, nil
}
