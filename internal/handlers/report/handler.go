package report

import (
	"net/http"

	"hotelinv/infras/otel"
	"hotelinv/internal/domains/report/model/dto"
	"hotelinv/internal/domains/report/service"
	"hotelinv/shared/constant"
	"hotelinv/shared/validator"
	"hotelinv/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/bookings.csv", handler.DownloadCSV)
		routerGroup.Get("/bookings.xlsx", handler.DownloadXLSX)
		routerGroup.Get("/daily.pdf", handler.DownloadDailyPDF)
		routerGroup.Post("/upload", handler.Upload)
		routerGroup.Get("/alerts", handler.GetAlerts)
	})
}

// DownloadCSV exports the session ledger.
// @Summary Export bookings as CSV
// @Description The file uses the import column labels so it can be loaded back.
// @Tags Report
// @Produce text/csv
// @Success 200 {file} file "DanhSachDatPhong_YYYYMMDD.csv"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/reports/bookings.csv [get]
// @Security BearerAuth
func (handler *Handler) DownloadCSV(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DownloadCSV")
	defer scope.End()

	file, err := handler.service.BookingsCSV(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export csv")

		response.WithError(w, err)

		return
	}

	response.WithFile(w, file.Name, file.ContentType, file.Data)
}

// DownloadXLSX exports the session ledger as a workbook.
// @Summary Export bookings as Excel
// @Tags Report
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "DanhSachDatPhong_YYYYMMDD.xlsx"
// @Failure 400 {object} response.Error
// @Router /v1/reports/bookings.xlsx [get]
// @Security BearerAuth
func (handler *Handler) DownloadXLSX(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DownloadXLSX")
	defer scope.End()

	file, err := handler.service.BookingsXLSX(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export xlsx")

		response.WithError(w, err)

		return
	}

	response.WithFile(w, file.Name, file.ContentType, file.Data)
}

// DownloadDailyPDF renders the daily report.
// @Summary Daily PDF report
// @Tags Report
// @Produce application/pdf
// @Param date query string false "Day (YYYY-MM-DD), today when empty"
// @Success 200 {file} file "BaoCaoNgay_YYYYMMDD.pdf"
// @Failure 400 {object} response.Error
// @Router /v1/reports/daily.pdf [get]
// @Security BearerAuth
func (handler *Handler) DownloadDailyPDF(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DownloadDailyPDF")
	defer scope.End()

	req := dto.DailyReportRequest{Date: r.URL.Query().Get(constant.RequestParamDate)}
	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	file, err := handler.service.DailyPDF(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to render daily report")

		response.WithError(w, err)

		return
	}

	response.WithFile(w, file.Name, file.ContentType, file.Data)
}

// Upload stores a rendered report in object storage.
// @Summary Upload a report
// @Tags Report
// @Accept json
// @Produce json
// @Param request body dto.UploadReportRequest true "Format and day"
// @Success 200 {object} response.Data[dto.UploadReportResponse] "Public URL"
// @Failure 400 {object} response.Error
// @Failure 501 {object} response.Error
// @Router /v1/reports/upload [post]
// @Security BearerAuth
func (handler *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadReport")
	defer scope.End()

	req := dto.UploadReportRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Upload(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("format", req.Format).Msg("failed to upload report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Report uploaded to " + res.URL)

	response.WithJSON(w, http.StatusOK, res)
}

// GetAlerts lists tomorrow's low-availability warnings.
// @Summary Quick alerts
// @Tags Report
// @Produce json
// @Param date query string false "Day (YYYY-MM-DD), today when empty"
// @Success 200 {object} response.Data[dto.AlertsResponse] "Alerts"
// @Failure 400 {object} response.Error
// @Router /v1/reports/alerts [get]
// @Security BearerAuth
func (handler *Handler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAlerts")
	defer scope.End()

	req := dto.AlertsRequest{Date: r.URL.Query().Get(constant.RequestParamDate)}
	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Alerts(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
