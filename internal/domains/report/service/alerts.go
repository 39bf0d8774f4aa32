package service

import (
	"fmt"
	"slices"
	"time"

	"hotelinv/internal/domains/availability/engine"
	"hotelinv/internal/domains/booking/model"
	"hotelinv/internal/domains/report/model/dto"
)

const (
	LevelCritical = "critical"
	LevelWarning  = "warning"
	LevelNotice   = "notice"
	LevelInfo     = "info"

	hotelSubject = "TOÀN KHÁCH SẠN"
)

// alerts flags tomorrow's scarce room types and today's guest movements.
func alerts(e engine.Engine, day time.Time, bookings []model.Booking, roomTypes []string) []dto.Alert {
	out := []dto.Alert{}
	if len(model.ActiveOnly(bookings)) == 0 || len(roomTypes) == 0 {
		return out
	}

	tomorrow := day.AddDate(0, 0, 1)

	free := e.RoomTypeAvailability(tomorrow, bookings, roomTypes)
	for _, rt := range slices.Sorted(slices.Values(roomTypes)) {
		switch n := free[rt]; {
		case n == 0:
			out = append(out, dto.Alert{Level: LevelCritical, Subject: rt, Message: "HẾT PHÒNG ngày mai!"})
		case n == 1:
			out = append(out, dto.Alert{Level: LevelWarning, Subject: rt, Message: "Chỉ còn 1 phòng (1 đơn vị) ngày mai."})
		case n < e.UnitsPerType():
			out = append(out, dto.Alert{Level: LevelNotice, Subject: rt, Message: fmt.Sprintf("Còn %d phòng ngày mai.", n)})
		}
	}

	activity := e.DailyActivity(day, bookings)
	if n := len(activity.CheckIn); n > 0 {
		out = append(out, dto.Alert{Level: LevelInfo, Subject: "check-in", Message: fmt.Sprintf("%d check-in hôm nay.", n)})
	}
	if n := len(activity.CheckOut); n > 0 {
		out = append(out, dto.Alert{Level: LevelInfo, Subject: "check-out", Message: fmt.Sprintf("%d check-out hôm nay.", n)})
	}

	switch e.OverallDayStatus(tomorrow, bookings).AvailableUnits {
	case 0:
		out = append(out, dto.Alert{Level: LevelCritical, Subject: hotelSubject, Message: "HẾT PHÒNG ngày mai!"})
	case 1:
		out = append(out, dto.Alert{Level: LevelWarning, Subject: hotelSubject, Message: "Chỉ còn 1 phòng TRỐNG ngày mai."})
	}

	return out
}
