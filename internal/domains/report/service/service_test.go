package service_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"hotelinv/config"
	"hotelinv/infras/otel/mocks"
	"hotelinv/infras/s3"
	s3Mocks "hotelinv/infras/s3/mocks"
	"hotelinv/internal/domains/booking/model"
	"hotelinv/internal/domains/report/model/dto"
	"hotelinv/internal/domains/report/service"
	"hotelinv/internal/domains/session"
	"hotelinv/shared/constant"
	"hotelinv/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func day(d int) time.Time {
	return time.Date(2025, time.August, d, 0, 0, 0, 0, time.UTC)
}

func booking(id, roomType string, in, out int, status model.Status) model.Booking {
	b := model.Booking{
		BookingID:    id,
		GuestName:    "Guest " + id,
		RoomType:     roomType,
		CheckIn:      day(in),
		CheckOut:     day(out),
		Status:       status,
		TotalPayment: decimal.NewFromInt(1000000),
		Currency:     "VND",
		CollectedBy:  "LOC LE",
	}
	b.Recompute()
	return b
}

func setup(t *testing.T, ctrl *gomock.Controller) (service.Report, *s3Mocks.MockS3, context.Context) {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Name = "Loc Le Hotel"
	cfg.Hotel.UnitsPerType = 2
	cfg.Hotel.TotalCapacity = 3

	registry := session.NewRegistry(cfg)
	sess := registry.Resume("report", "user-1")
	sess.Ledger.ReplaceAll([]model.Booking{
		booking("A", "Deluxe", 10, 12, model.StatusOK),
		booking("B", "Deluxe", 11, 13, model.StatusOK),
		booking("C", "Twin", 11, 12, model.StatusOK),
		booking("D", "Twin", 9, 11, model.StatusCancelled),
	})

	storage := s3Mocks.NewMockS3(ctrl)
	ctx := context.WithValue(context.Background(), constant.ContextKeySessionID, "report")

	return service.New(registry, storage, cfg, mocks.NewOtel()), storage, ctx
}

func TestReportService_BookingsCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, ctx := setup(t, ctrl)

	file, err := svc.BookingsCSV(ctx)

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(file.Name, "DanhSachDatPhong_"))
	assert.True(t, strings.HasSuffix(file.Name, ".csv"))
	assert.Equal(t, 5, bytes.Count(file.Data, []byte("\n")))

	_, err = svc.BookingsCSV(context.Background())
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
}

func TestReportService_EmptyLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := setup(t, ctrl)
	empty := context.WithValue(context.Background(), constant.ContextKeySessionID, "fresh")

	_, err := svc.BookingsXLSX(empty)

	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestReportService_DailyPDF(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, ctx := setup(t, ctrl)

	t.Run("renders the requested day", func(t *testing.T) {
		file, err := svc.DailyPDF(ctx, dto.DailyReportRequest{Date: "2025-08-11"})

		assert.NoError(t, err)
		assert.Equal(t, "BaoCaoNgay_20250811.pdf", file.Name)
		assert.Equal(t, "application/pdf", file.ContentType)
		assert.True(t, bytes.HasPrefix(file.Data, []byte("%PDF-")))
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := svc.DailyPDF(ctx, dto.DailyReportRequest{Date: "11-08-2025"})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestReportService_Upload(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.UploadReportRequest
		setup    func(storage *s3Mocks.MockS3)
		wantCode int
		wantURL  string
	}{
		{
			name: "xlsx uploaded",
			req:  dto.UploadReportRequest{Format: dto.FormatXLSX},
			setup: func(storage *s3Mocks.MockS3) {
				storage.EXPECT().
					UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, directory, name, contentType string, _ []byte) (string, error) {
						assert.True(t, strings.HasPrefix(directory, "reports/"))
						assert.True(t, strings.HasSuffix(name, ".xlsx"))
						assert.Contains(t, contentType, "spreadsheetml")
						return "https://cdn.example.com/" + directory + "/" + name, nil
					})
			},
			wantURL: "https://cdn.example.com/reports/",
		},
		{
			name: "storage not configured",
			req:  dto.UploadReportRequest{Format: dto.FormatCSV},
			setup: func(storage *s3Mocks.MockS3) {
				storage.EXPECT().
					UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", s3.ErrNotConfigured)
			},
			wantCode: http.StatusNotImplemented,
		},
		{
			name: "storage failure",
			req:  dto.UploadReportRequest{Format: dto.FormatPDF, Date: "2025-08-11"},
			setup: func(storage *s3Mocks.MockS3) {
				storage.EXPECT().
					UploadFileBytes(gomock.Any(), gomock.Any(), "BaoCaoNgay_20250811.pdf", "application/pdf", gomock.Any()).
					Return("", errors.New("bucket gone"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name:     "unknown format",
			req:      dto.UploadReportRequest{Format: "docx"},
			setup:    func(storage *s3Mocks.MockS3) {},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, storage, ctx := setup(t, ctrl)
			tt.setup(storage)

			res, err := svc.Upload(ctx, tt.req)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				return
			}
			assert.NoError(t, err)
			assert.True(t, strings.HasPrefix(res.URL, tt.wantURL))
			assert.True(t, strings.HasSuffix(res.URL, res.FileName))
		})
	}
}

func TestReportService_Alerts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, ctx := setup(t, ctrl)

	res, err := svc.Alerts(ctx, dto.AlertsRequest{Date: "2025-08-10"})

	assert.NoError(t, err)
	assert.Equal(t, "2025-08-10", res.Date)
	assert.Equal(t, []dto.Alert{
		{Level: service.LevelCritical, Subject: "Deluxe", Message: "HẾT PHÒNG ngày mai!"},
		{Level: service.LevelWarning, Subject: "Twin", Message: "Chỉ còn 1 phòng (1 đơn vị) ngày mai."},
		{Level: service.LevelInfo, Subject: "check-in", Message: "1 check-in hôm nay."},
		{Level: service.LevelCritical, Subject: "TOÀN KHÁCH SẠN", Message: "HẾT PHÒNG ngày mai!"},
	}, res.Alerts)
}
