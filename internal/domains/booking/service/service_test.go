package service_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"hotelinv/config"
	openaiMocks "hotelinv/infras/openai/mocks"
	"hotelinv/infras/otel/mocks"
	"hotelinv/internal/domains/booking/event"
	bookingMocks "hotelinv/internal/domains/booking/mocks"
	"hotelinv/internal/domains/booking/model"
	"hotelinv/internal/domains/booking/model/dto"
	"hotelinv/internal/domains/booking/service"
	"hotelinv/internal/domains/session"
	cacheMocks "hotelinv/shared/cache/mocks"
	"hotelinv/shared/constant"
	"hotelinv/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc       service.Booking
	repo      *bookingMocks.MockSheet
	publisher *bookingMocks.MockPublisher
	vision    *openaiMocks.MockVision
	cache     *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T, ctrl *gomock.Controller, tune ...func(cfg *config.Config)) fixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Hotel.UnitsPerType = 4
	cfg.Hotel.TotalCapacity = 4
	cfg.Hotel.RoomTypes = []string{"Deluxe", "Twin"}
	cfg.Hotel.DefaultSheet = "bookings"
	cfg.Hotel.SessionIdleMinutes = 60
	for _, fn := range tune {
		fn(cfg)
	}

	f := fixture{
		repo:      bookingMocks.NewMockSheet(ctrl),
		publisher: bookingMocks.NewMockPublisher(ctrl),
		vision:    openaiMocks.NewMockVision(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(session.NewRegistry(cfg), f.repo, f.publisher, f.vision, cfg, f.cache, mocks.NewOtel())

	return f
}

func sessionCtx(id string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeySessionID, id)
	return context.WithValue(ctx, constant.ContextKeyUserID, "user-1")
}

func upsert(id, guest, roomType, checkIn, checkOut string) dto.UpsertBookingRequest {
	return dto.UpsertBookingRequest{
		BookingID:    id,
		GuestName:    guest,
		RoomType:     roomType,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		TotalPayment: decimal.NewFromInt(1500000),
		CollectedBy:  "LOC LE",
	}
}

const bookingsCSV = "Số đặt phòng,Tên người đặt,Tên chỗ nghỉ,Vị trí,Ngày đến,Ngày đi,Tình trạng,Tổng thanh toán,Tiền tệ,Người thu tiền\n" +
	"B-1,Nguyen Van A,Deluxe,Hoàn Kiếm,ngày 10 tháng 7 năm 2025,ngày 12 tháng 7 năm 2025,OK,2000000,VND,LOC LE\n" +
	"B-2,Tran Thi B,Twin,Hoàn Kiếm,ngày 11 tháng 7 năm 2025,ngày 14 tháng 7 năm 2025,Đã hủy,3000000,VND,THAO LE\n" +
	"B-3,Le Van C,Twin,Hoàn Kiếm,ngày 12 tháng 7 năm 2025,ngày 11 tháng 7 năm 2025,OK,900000,VND,THAO LE\n"

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.UpsertBookingRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "successful creation",
			ctx:  sessionCtx("create-ok"),
			req:  upsert("", "Nguyen Van A", "Deluxe", "2025-07-10", "2025-07-12"),
			setupMock: func(f fixture) {
				f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, events ...event.BookingEvent) error {
						assert.Len(t, events, 1)
						assert.Equal(t, event.KindCreated, events[0].Kind)
						return nil
					})
			},
		},
		{
			name:      "every broken rule is reported",
			ctx:       sessionCtx("create-rejected"),
			req:       dto.UpsertBookingRequest{CheckIn: "2025-07-12", CheckOut: "2025-07-10", RoomType: "Suite"},
			setupMock: func(fixture) {},
			wantCode:  http.StatusUnprocessableEntity,
		},
		{
			name:      "missing session",
			ctx:       context.Background(),
			req:       upsert("", "Nguyen Van A", "Deluxe", "2025-07-10", "2025-07-12"),
			setupMock: func(fixture) {},
			wantCode:  http.StatusUnauthorized,
		},
		{
			name: "event failure does not undo the booking",
			ctx:  sessionCtx("create-event-down"),
			req:  upsert("B-9", "Nguyen Van A", "Deluxe", "2025-07-10", "2025-07-12"),
			setupMock: func(f fixture) {
				f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, ctrl)
			tt.setupMock(f)

			res, err := f.svc.Create(tt.ctx, tt.req)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, 2, res.StayDuration)
			assert.Equal(t, "750000", res.PricePerNight.String())
			assert.Equal(t, "N/A (Chưa xác định)", res.Location)
			assert.Equal(t, model.StatusOK, res.Status)
		})
	}
}

func TestBookingService_CreateReportsAllReasons(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)

	_, err := f.svc.Create(sessionCtx("reasons"), dto.UpsertBookingRequest{
		CheckIn:  "2025-07-12",
		CheckOut: "2025-07-10",
		RoomType: "Suite",
	})

	reasons := failure.GetDetails(err)
	assert.Len(t, reasons, 5)
	assert.Contains(t, reasons, "guest name is required")
	assert.Contains(t, reasons, "collector is required")
}

func TestBookingService_CreateRespectsRoomTypeUnits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl, func(cfg *config.Config) { cfg.Hotel.UnitsPerType = 1 })
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	ctx := sessionCtx("units")

	_, err := f.svc.Create(ctx, upsert("A-1", "Guest One", "Deluxe", "2025-07-10", "2025-07-12"))
	assert.NoError(t, err)

	_, err = f.svc.Create(ctx, upsert("A-2", "Guest Two", "Deluxe", "2025-07-11", "2025-07-13"))
	assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	assert.Equal(t, []string{`room type "Deluxe" is fully booked on 11/07/2025`}, failure.GetDetails(err))

	_, err = f.svc.Create(ctx, upsert("A-3", "Guest Three", "Deluxe", "2025-07-12", "2025-07-13"))
	assert.NoError(t, err)
}

func TestBookingService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl, func(cfg *config.Config) { cfg.Hotel.UnitsPerType = 1 })
	ctx := sessionCtx("update")

	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
	_, err := f.svc.Create(ctx, upsert("U-1", "Guest One", "Deluxe", "2025-07-10", "2025-07-12"))
	assert.NoError(t, err)

	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, events ...event.BookingEvent) error {
			assert.Equal(t, event.KindUpdated, events[0].Kind)
			return nil
		})

	// the booking's own nights do not count against it
	req := upsert("", "Guest One Renamed", "Deluxe", "2025-07-11", "2025-07-14")
	res, err := f.svc.Update(ctx, "U-1", req)
	assert.NoError(t, err)
	assert.Equal(t, "U-1", res.BookingID)
	assert.Equal(t, "Guest One Renamed", res.GuestName)
	assert.Equal(t, 3, res.StayDuration)

	_, err = f.svc.Update(ctx, "missing", req)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestBookingService_ImportModes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	ctx := sessionCtx("import")

	res, err := f.svc.Import(ctx, dto.ImportModeReplace, "bookings.csv", []byte(bookingsCSV))
	assert.NoError(t, err)
	assert.Equal(t, 2, res.Loaded)
	assert.Equal(t, 1, res.Dropped)
	assert.Equal(t, 2, res.Total)

	res, err = f.svc.Import(ctx, dto.ImportModeMerge, "bookings.csv", []byte(bookingsCSV))
	assert.NoError(t, err)
	assert.Equal(t, 0, res.Added)
	assert.Equal(t, 2, res.SkippedSameGuestDate)
	assert.Equal(t, []string{"Nguyen Van A", "Tran Thi B"}, res.SkippedGuests)
	assert.Equal(t, 2, res.Total)

	_, err = f.svc.Import(ctx, "append", "bookings.csv", []byte(bookingsCSV))
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	_, err = f.svc.Import(ctx, dto.ImportModeReplace, "bookings.xls", []byte("x"))
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestBookingService_ListAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	ctx := sessionCtx("list")

	_, err := f.svc.LoadDemo(ctx, constant.Empty)
	assert.NoError(t, err)

	all, err := f.svc.List(ctx, dto.ListBookingsRequest{})
	assert.NoError(t, err)
	assert.Equal(t, 5, all.TotalData)
	assert.Equal(t, 1, all.TotalPage)

	cancelled, err := f.svc.List(ctx, dto.ListBookingsRequest{Status: string(model.StatusCancelled)})
	assert.NoError(t, err)
	assert.Equal(t, 1, cancelled.TotalData)

	paged, err := f.svc.List(ctx, dto.ListBookingsRequest{})
	assert.NoError(t, err)
	assert.Equal(t, 0, paged.Bookings[0].Index)

	got, err := f.svc.Get(ctx, "DEMO000000002")
	assert.NoError(t, err)
	assert.Equal(t, 1, got.Index)

	deleted, err := f.svc.DeleteMany(ctx, dto.DeleteBookingsRequest{Indices: []int{0, 1, 42}})
	assert.NoError(t, err)
	assert.Equal(t, 2, deleted.Deleted)

	assert.NoError(t, f.svc.Delete(ctx, "DEMO000000003"))
	assert.Equal(t, http.StatusNotFound, failure.GetCode(f.svc.Delete(ctx, "DEMO000000003")))

	rest, err := f.svc.List(ctx, dto.ListBookingsRequest{})
	assert.NoError(t, err)
	assert.Equal(t, 2, rest.TotalData)
}

func TestBookingService_PlaceholderIDIsNotAddressable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	ctx := sessionCtx("placeholder-id")

	csv := "Tên người đặt,Tên chỗ nghỉ,Ngày đến,Ngày đi,Tổng thanh toán\n" +
		"Nguyen Van A,Deluxe,2025-07-10,2025-07-12,2000000\n" +
		"Tran Thi B,Twin,2025-07-11,2025-07-13,3000000\n"
	_, err := f.svc.Import(ctx, dto.ImportModeReplace, "bookings.csv", []byte(csv))
	assert.NoError(t, err)

	for _, id := range []string{model.NotAvailable, " "} {
		_, err = f.svc.Get(ctx, id)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

		_, err = f.svc.Update(ctx, id, upsert("", "Le Van C", "Deluxe", "2025-07-10", "2025-07-12"))
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(f.svc.Delete(ctx, id)))
	}

	deleted, err := f.svc.DeleteMany(ctx, dto.DeleteBookingsRequest{IDs: []string{model.NotAvailable}})
	assert.NoError(t, err)
	assert.Zero(t, deleted.Deleted)

	all, err := f.svc.List(ctx, dto.ListBookingsRequest{})
	assert.NoError(t, err)
	assert.Equal(t, 2, all.TotalData)
}

func TestBookingService_SaveAndLoadSheet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	ctx := sessionCtx("sheet")

	_, err := f.svc.SaveSheet(ctx, dto.SheetRequest{})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	_, err = f.svc.LoadDemo(ctx, dto.ImportModeReplace)
	assert.NoError(t, err)

	var stored []model.SheetRow
	f.repo.EXPECT().Save(gomock.Any(), "bookings", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, rows []model.SheetRow) error {
			stored = rows
			return nil
		})

	saved, err := f.svc.SaveSheet(ctx, dto.SheetRequest{})
	assert.NoError(t, err)
	assert.Equal(t, 5, saved.Saved)
	assert.Equal(t, 4, stored[4].Position)

	other := sessionCtx("sheet-reader")
	f.repo.EXPECT().Load(gomock.Any(), "bookings").Return(stored, nil)

	loaded, err := f.svc.LoadSheet(other, dto.SheetRequest{})
	assert.NoError(t, err)
	assert.Equal(t, 5, loaded.Total)

	demo, err := f.svc.Get(other, "DEMO000000003")
	assert.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, demo.Status)

	f.repo.EXPECT().Load(gomock.Any(), "archive").Return(nil, nil)
	_, err = f.svc.LoadSheet(other, dto.SheetRequest{Sheet: "archive"})
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	f.repo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
	_, err = f.svc.SaveSheet(ctx, dto.SheetRequest{Sheet: "archive"})
	assert.Error(t, err)
}

func TestBookingService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	ctx := sessionCtx("summary")

	_, err := f.svc.Import(ctx, dto.ImportModeReplace, "bookings.csv", []byte(bookingsCSV))
	assert.NoError(t, err)

	res, err := f.svc.Summary(ctx, dto.SummaryRequest{})
	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalBookings)
	assert.Equal(t, 1, res.ActiveBookings)
	assert.Equal(t, "2000000", res.Revenue.String())
	assert.Equal(t, 2, res.Nights)
	assert.Equal(t, "1000000", res.AveragePerNight.String())
	assert.Equal(t, "LOC LE", res.ByCollector[0].Name)

	res, err = f.svc.Summary(ctx, dto.SummaryRequest{From: "2025-07-11"})
	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalBookings)
	assert.Equal(t, 0, res.ActiveBookings)

	_, err = f.svc.Summary(ctx, dto.SummaryRequest{From: "2025-07-11", To: "2025-07-01"})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestBookingService_RoomTypes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	ctx := sessionCtx("room-types")

	_, err := f.svc.LoadDemo(ctx, dto.ImportModeReplace)
	assert.NoError(t, err)

	types, err := f.svc.RoomTypes(ctx)
	assert.NoError(t, err)
	assert.Contains(t, types, "Deluxe")
	assert.Contains(t, types, "Twin")
	assert.Greater(t, len(types), 2)
}

func TestBookingService_ExtractImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		answer    string
		answerErr error
		wantCount int
		wantErr   bool
	}{
		{
			name: "wrapped list",
			answer: `{"bookings": [
				{"guest_name": "Nguyen Van A", "booking_id": 5012345678, "check_in_date": "2025-07-10",
				 "check_out_date": "2025-07-12", "room_type": "Deluxe", "total_payment": "1.500.000", "currency": null},
				{"guest_name": "Tran Thi B", "check_in_date": "10/07/2025", "check_out_date": "2025-07-12"}
			]}`,
			wantCount: 2,
		},
		{
			name:      "bare array in a code fence",
			answer:    "```json\n[{\"guest_name\": \"Le Van C\", \"check_in_date\": \"2025-07-10\"}]\n```",
			wantCount: 1,
		},
		{
			name:    "not json",
			answer:  "sorry, I cannot read this image",
			wantErr: true,
		},
		{
			name:      "vision failure",
			answerErr: errors.New("timeout"),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, ctrl)
			f.vision.EXPECT().ExtractJSON(gomock.Any(), gomock.Any(), "data:image/png;base64,AAAA").Return(tt.answer, tt.answerErr)

			res, err := f.svc.ExtractImage(sessionCtx("extract"), dto.ExtractImageRequest{Image: "data:image/png;base64,AAAA"})

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, res.Candidates, tt.wantCount)
		})
	}
}

func TestBookingService_ExtractImageCandidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	f.vision.EXPECT().ExtractJSON(gomock.Any(), gomock.Any(), gomock.Any()).Return(`{"bookings": [
		{"guest_name": "Nguyen Van A", "booking_id": 5012345678, "check_in_date": "2025-07-10",
		 "check_out_date": "2025-07-12", "total_payment": "1.500.000"},
		{"guest_name": "Tran Thi B", "check_in_date": "10/07/2025", "check_out_date": "2025-07-12"}
	]}`, nil)

	res, err := f.svc.ExtractImage(sessionCtx("extract-candidates"), dto.ExtractImageRequest{Image: "data:image/png;base64,AAAA"})
	assert.NoError(t, err)

	first := res.Candidates[0]
	assert.Equal(t, "5012345678", first.BookingID)
	assert.Equal(t, "1500000", first.TotalPayment.String())
	assert.Equal(t, "VND", first.Currency)
	assert.Empty(t, first.Errors)

	second := res.Candidates[1]
	assert.Len(t, second.Errors, 1)
	assert.True(t, strings.HasPrefix(second.Errors[0], "cannot parse check-in date"))
}

func TestBookingService_CommitExtracted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	ctx := sessionCtx("commit")

	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	res, err := f.svc.CommitExtracted(ctx, dto.CommitCandidatesRequest{Candidates: []dto.Candidate{
		{GuestName: "Nguyen Van A", BookingID: "IMG-1", CheckIn: "2025-07-10", CheckOut: "2025-07-12", RoomType: "Deluxe", TotalPayment: decimal.NewFromInt(1000000), Currency: "VND"},
		{GuestName: "Tran Thi B", CheckIn: "2025-07-10", CheckOut: "2025-07-11", TotalPayment: decimal.NewFromInt(500000), Currency: "VND"},
		{GuestName: "Duplicate", BookingID: "IMG-1", CheckIn: "2025-07-10", CheckOut: "2025-07-12"},
		{GuestName: "No Dates"},
		{GuestName: "Broken", CheckIn: "2025-07-10", CheckOut: "2025-07-12", Errors: []string{"cannot parse"}},
		{GuestName: "Backwards", CheckIn: "2025-07-12", CheckOut: "2025-07-10"},
	}})
	assert.NoError(t, err)
	assert.Equal(t, 2, res.Added)
	assert.Equal(t, 4, res.Skipped)
	assert.Len(t, res.Reasons, 4)

	list, err := f.svc.List(ctx, dto.ListBookingsRequest{})
	assert.NoError(t, err)
	assert.Equal(t, 2, list.TotalData)

	second := list.Bookings[1]
	assert.True(t, strings.HasPrefix(second.BookingID, "IMG_"))
	assert.True(t, strings.HasSuffix(second.BookingID, "_1"))
	assert.Equal(t, "N/A (từ ảnh)", second.Location)
	assert.Equal(t, model.NotAvailable, second.RoomType)
	assert.Equal(t, "500000", second.PricePerNight.String())
}
