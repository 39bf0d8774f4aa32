package dto

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// File is a rendered export ready to be streamed to the client.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

type DailyReportRequest struct {
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type UploadReportRequest struct {
	Format string `json:"format" validate:"required,oneof=csv xlsx pdf"`
	Date   string `json:"date"   validate:"omitempty,datetime=2006-01-02"`
}

type UploadReportResponse struct {
	FileName string `json:"file_name"`
	URL      string `json:"url"`
}

type AlertsRequest struct {
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type Alert struct {
	Level   string `json:"level"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type AlertsResponse struct {
	Date   string  `json:"date"`
	Alerts []Alert `json:"alerts"`
}
