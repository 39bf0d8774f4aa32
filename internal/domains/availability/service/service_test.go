package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"hotelinv/config"
	"hotelinv/infras/otel/mocks"
	"hotelinv/internal/domains/availability/model/dto"
	"hotelinv/internal/domains/availability/service"
	"hotelinv/internal/domains/booking/model"
	"hotelinv/internal/domains/session"
	cacheMocks "hotelinv/shared/cache/mocks"
	"hotelinv/shared/constant"
	"hotelinv/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func day(m time.Month, d int) time.Time {
	return time.Date(2025, m, d, 0, 0, 0, 0, time.UTC)
}

func booking(id, guest, roomType string, in, out time.Time, status model.Status) model.Booking {
	return model.Booking{
		BookingID:    id,
		GuestName:    guest,
		RoomType:     roomType,
		CheckIn:      in,
		CheckOut:     out,
		Status:       status,
		TotalPayment: decimal.NewFromInt(1000000),
		Currency:     "VND",
	}
}

func setup(t *testing.T, ctrl *gomock.Controller) (service.Availability, *cacheMocks.MockRedisCache, context.Context) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Hotel.UnitsPerType = 2
	cfg.Hotel.TotalCapacity = 3
	cfg.Hotel.RoomTypes = []string{"Twin", "Deluxe"}

	registry := session.NewRegistry(cfg)
	sess := registry.Resume("availability", "user-1")
	sess.Ledger.ReplaceAll([]model.Booking{
		booking("A", "Nguyen Van A", "Deluxe", day(7, 10), day(7, 12), model.StatusOK),
		booking("B", "Tran Thi B", "Deluxe", day(7, 11), day(7, 13), model.StatusOK),
		booking("C", "Le Van C", "Twin", day(7, 11), day(7, 12), model.StatusOK),
		booking("D", "Pham Thi D", "Twin", day(7, 11), day(7, 15), model.StatusCancelled),
	})

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	ctx := context.WithValue(context.Background(), constant.ContextKeySessionID, "availability")

	return service.New(registry, cfg, mockCache, mocks.NewOtel()), mockCache, ctx
}

func cacheMiss(mockCache *cacheMocks.MockRedisCache) {
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestAvailabilityService_RoomTypes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCache, ctx := setup(t, ctrl)
	cacheMiss(mockCache)

	res, err := svc.RoomTypes(ctx, "2025-07-11")
	assert.NoError(t, err)
	assert.Equal(t, "2025-07-11", res.Date)
	assert.Equal(t, []dto.RoomTypeFree{
		{RoomType: "Deluxe", Available: 0, Units: 2},
		{RoomType: "Twin", Available: 1, Units: 2},
	}, res.RoomTypes)
}

func TestAvailabilityService_Day(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		date      string
		setupMock func(mockCache *cacheMocks.MockRedisCache)
		want      dto.DayStatusResponse
		wantCode  int
	}{
		{
			name:      "hotel full",
			date:      "2025-07-11",
			setupMock: cacheMiss,
			want: dto.DayStatusResponse{
				Date:           "2025-07-11",
				OccupiedUnits:  3,
				AvailableUnits: 0,
				TotalCapacity:  3,
				Guests:         []string{"Nguyen Van A", "Tran Thi B", "Le Van C"},
				Label:          "Hết phòng",
				Indicator:      model.IndicatorOrangeDash,
			},
		},
		{
			name: "served from cache",
			date: "2025-07-20",
			setupMock: func(mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, v any) error {
						*(v.(*dto.DayStatusResponse)) = dto.DayStatusResponse{Date: "2025-07-20", Label: "cached"}
						return nil
					})
			},
			want: dto.DayStatusResponse{Date: "2025-07-20", Label: "cached"},
		},
		{
			name:      "invalid date",
			date:      "11/07/2025",
			setupMock: func(*cacheMocks.MockRedisCache) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockCache, ctx := setup(t, ctrl)
			tt.setupMock(mockCache)

			res, err := svc.Day(ctx, tt.date)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, res)
		})
	}
}

func TestAvailabilityService_Activity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCache, ctx := setup(t, ctrl)
	cacheMiss(mockCache)

	res, err := svc.Activity(ctx, "2025-07-12")
	assert.NoError(t, err)
	assert.Len(t, res.CheckIn, 0)
	assert.Len(t, res.CheckOut, 2)
	assert.Len(t, res.Occupied, 1)
	assert.Equal(t, "B", res.Occupied[0].BookingID)
	assert.Equal(t, "2025-07-13", res.Occupied[0].CheckOut)
}

func TestAvailabilityService_Calendar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCache, ctx := setup(t, ctrl)
	cacheMiss(mockCache)

	res, err := svc.Calendar(ctx, "2025-07")
	assert.NoError(t, err)
	assert.Equal(t, "2025-07", res.Month)
	assert.Len(t, res.Days, 31)
	assert.Equal(t, "Trống", res.Days[0].Label)
	assert.Equal(t, "2/3 trống", res.Days[9].Label)
	assert.Equal(t, "Hết phòng", res.Days[10].Label)

	_, err = svc.Calendar(ctx, "July")
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestAvailabilityService_RequiresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := setup(t, ctrl)

	_, err := svc.Day(context.Background(), "2025-07-11")
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
}
