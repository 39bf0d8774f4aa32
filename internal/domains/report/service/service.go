package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotelinv/config"
	"hotelinv/infras/otel"
	"hotelinv/infras/s3"
	"hotelinv/internal/domains/availability/engine"
	"hotelinv/internal/domains/booking/entry"
	"hotelinv/internal/domains/booking/model"
	"hotelinv/internal/domains/report/export"
	"hotelinv/internal/domains/report/model/dto"
	"hotelinv/internal/domains/session"
	"hotelinv/shared"
	"hotelinv/shared/constant"
	"hotelinv/shared/failure"
	"hotelinv/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	uploadDirectory = "reports"
	filePrefix      = "DanhSachDatPhong"
	dailyPrefix     = "BaoCaoNgay"

	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

type Report interface {
	BookingsCSV(ctx context.Context) (dto.File, error)
	BookingsXLSX(ctx context.Context) (dto.File, error)
	DailyPDF(ctx context.Context, req dto.DailyReportRequest) (dto.File, error)
	Upload(ctx context.Context, req dto.UploadReportRequest) (dto.UploadReportResponse, error)
	Alerts(ctx context.Context, req dto.AlertsRequest) (dto.AlertsResponse, error)
}

type serviceImpl struct {
	sessions *session.Registry
	storage  s3.S3
	engine   engine.Engine
	cfg      *config.Config
	otel     otel.Otel
}

func New(sessions *session.Registry, storage s3.S3, cfg *config.Config, otel otel.Otel) Report {
	return &serviceImpl{
		sessions: sessions,
		storage:  storage,
		engine:   engine.New(cfg.Hotel.UnitsPerType, cfg.Hotel.TotalCapacity),
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) bookings(ctx context.Context) ([]model.Booking, error) {
	sess, err := s.sessions.FromContext(ctx)
	if err != nil {
		return nil, failure.Unauthorized("session required") // nolint:wrapcheck
	}

	bookings := sess.Ledger.All()
	if len(bookings) == 0 {
		return nil, failure.BadRequestFromString("no bookings to export") // nolint:wrapcheck
	}

	return bookings, nil
}

func (s *serviceImpl) day(value string) (time.Time, error) {
	if value == constant.Empty {
		return timezone.Today(), nil
	}

	d, err := shared.ParseDay(value)
	if err != nil {
		return time.Time{}, failure.BadRequest(err) // nolint:wrapcheck
	}

	return d, nil
}

func (s *serviceImpl) BookingsCSV(ctx context.Context) (res dto.File, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.BookingsCSV")
	defer scope.End()
	defer scope.TraceIfError(&err)

	bookings, err := s.bookings(ctx)
	if err != nil {
		return res, err
	}

	data, err := export.CSV(bookings)
	if err != nil {
		log.Error().Err(err).Msg("failed to export bookings as csv")

		return res, fmt.Errorf("failed to export bookings: %w", err)
	}

	return dto.File{
		Name:        fmt.Sprintf("%s_%s.csv", filePrefix, timezone.Now().Format("20060102")),
		ContentType: contentTypeCSV,
		Data:        data,
	}, nil
}

func (s *serviceImpl) BookingsXLSX(ctx context.Context) (res dto.File, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.BookingsXLSX")
	defer scope.End()
	defer scope.TraceIfError(&err)

	bookings, err := s.bookings(ctx)
	if err != nil {
		return res, err
	}

	data, err := export.XLSX(bookings)
	if err != nil {
		log.Error().Err(err).Msg("failed to export bookings as xlsx")

		return res, fmt.Errorf("failed to export bookings: %w", err)
	}

	return dto.File{
		Name:        fmt.Sprintf("%s_%s.xlsx", filePrefix, timezone.Now().Format("20060102")),
		ContentType: contentTypeXLSX,
		Data:        data,
	}, nil
}

func (s *serviceImpl) DailyPDF(ctx context.Context, req dto.DailyReportRequest) (res dto.File, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.DailyPDF")
	defer scope.End()
	defer scope.TraceIfError(&err)

	day, err := s.day(req.Date)
	if err != nil {
		return res, err
	}

	bookings, err := s.bookings(ctx)
	if err != nil {
		return res, err
	}

	data, err := export.DailyPDF(export.DailyReport{
		Hotel:       s.cfg.App.Name,
		Day:         day,
		Bookings:    bookings,
		RoomTypes:   entry.ValidRoomTypes(s.cfg.Hotel.RoomTypes, bookings),
		Engine:      s.engine,
		GeneratedAt: timezone.Now(),
	})
	if err != nil {
		log.Error().Err(err).Str("date", day.Format(shared.DayLayout)).Msg("failed to render daily report")

		return res, fmt.Errorf("failed to render daily report: %w", err)
	}

	return dto.File{
		Name:        fmt.Sprintf("%s_%s.pdf", dailyPrefix, day.Format("20060102")),
		ContentType: contentTypePDF,
		Data:        data,
	}, nil
}

func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadReportRequest) (res dto.UploadReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.Upload")
	defer scope.End()
	defer scope.TraceIfError(&err)

	var file dto.File

	switch req.Format {
	case dto.FormatCSV:
		file, err = s.BookingsCSV(ctx)
	case dto.FormatXLSX:
		file, err = s.BookingsXLSX(ctx)
	case dto.FormatPDF:
		file, err = s.DailyPDF(ctx, dto.DailyReportRequest{Date: req.Date})
	default:
		return res, failure.BadRequestFromString("unsupported report format " + req.Format) // nolint:wrapcheck
	}

	if err != nil {
		return res, err
	}

	directory := uploadDirectory + "/" + timezone.Now().Format(shared.DayLayout)

	url, err := s.storage.UploadFileBytes(ctx, directory, file.Name, file.ContentType, file.Data)
	if err != nil {
		if errors.Is(err, s3.ErrNotConfigured) {
			return res, failure.Unimplemented("report upload") // nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to upload report: %w", err)
	}

	res.FileName = file.Name
	res.URL = url

	return res, nil
}

func (s *serviceImpl) Alerts(ctx context.Context, req dto.AlertsRequest) (res dto.AlertsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.Alerts")
	defer scope.End()
	defer scope.TraceIfError(&err)

	day, err := s.day(req.Date)
	if err != nil {
		return res, err
	}

	sess, err := s.sessions.FromContext(ctx)
	if err != nil {
		return res, failure.Unauthorized("session required") // nolint:wrapcheck
	}

	bookings := sess.Ledger.All()
	roomTypes := entry.ValidRoomTypes(s.cfg.Hotel.RoomTypes, bookings)

	res.Date = day.Format(shared.DayLayout)
	res.Alerts = alerts(s.engine, day, bookings, roomTypes)

	return res, nil
}
