// Package message composes the chat texts sent to the hotel channel.
package message

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"hotelinv/internal/domains/availability/engine"
	"hotelinv/internal/domains/booking/event"
	"hotelinv/internal/domains/booking/model"
	"hotelinv/internal/domains/booking/normalize"

	"github.com/shopspring/decimal"
)

const (
	dayLayout    = "02/01/2006"
	paymentUnit  = "VND"
	fallbackText = "N/A"
)

func day(t time.Time) string {
	return t.Format(dayLayout)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return fallbackText
	}
	return s
}

func BookingCreated(b event.Booking) string {
	lines := []string{
		"📢 Đặt phòng MỚI!",
		"👤 Khách: " + b.GuestName,
		"🏠 Phòng: " + b.RoomType,
		"📅 Check-in: " + day(b.CheckIn),
		"📅 Check-out: " + day(b.CheckOut),
		fmt.Sprintf("💰 Tổng TT: %s %s", normalize.FormatAmount(b.TotalPayment), b.Currency),
		"🆔 Mã ĐP: " + b.BookingID,
	}
	return strings.Join(lines, "\n")
}

func BookingUpdated(b event.Booking) string {
	lines := []string{
		"✏️ Đặt phòng ĐƯỢC CẬP NHẬT!",
		"🆔 Mã ĐP: " + b.BookingID,
		"👤 Khách: " + b.GuestName,
		"🏠 Phòng: " + b.RoomType,
		"📅 Check-in: " + day(b.CheckIn),
		"📅 Check-out: " + day(b.CheckOut),
		fmt.Sprintf("💰 Tổng TT: %s %s", normalize.FormatAmount(b.TotalPayment), b.Currency),
		"ℹ️ Trạng thái: " + b.Status.Label(),
	}
	return strings.Join(lines, "\n")
}

// ForEvent picks the template matching the event kind. Unknown kinds yield false.
func ForEvent(evt event.BookingEvent) (string, bool) {
	switch evt.Kind {
	case event.KindCreated:
		return BookingCreated(evt.Booking), true
	case event.KindUpdated:
		return BookingUpdated(evt.Booking), true
	default:
		return "", false
	}
}

// DailyStatus reports hotel occupancy and the check-ins and check-outs of today.
func DailyStatus(today time.Time, bookings []model.Booking, e engine.Engine) string {
	parts := []string{fmt.Sprintf("📢 Cập nhật Khách sạn - %s 📢\n", day(today))}

	if len(model.ActiveOnly(bookings)) == 0 {
		parts = append(parts, "Không có dữ liệu đặt phòng để tạo báo cáo.")
		return strings.Join(parts, "\n")
	}

	status := e.OverallDayStatus(today, bookings)
	parts = append(parts,
		"🏨 Tình trạng Phòng Tổng quan:",
		fmt.Sprintf("- Tổng số phòng có khách: %d / %d", status.OccupiedUnits, e.TotalCapacity()),
		fmt.Sprintf("- Phòng trống: %d\n", status.AvailableUnits),
	)

	activity := e.DailyActivity(today, bookings)

	parts = append(parts, "➡️ Khách Check-in Hôm Nay:")
	if len(activity.CheckIn) == 0 {
		parts = append(parts, "Không có khách check-in hôm nay.")
	}
	for _, a := range activity.CheckIn {
		parts = append(parts, fmt.Sprintf("- %s (%s) - Mã ĐP: %s", orNA(a.Name), orNA(a.RoomType), orNA(a.BookingID)))
	}

	parts = append(parts, "", "⬅️ Khách Check-out Hôm Nay:")
	if len(activity.CheckOut) == 0 {
		parts = append(parts, "Không có khách check-out hôm nay.")
	}
	for _, a := range activity.CheckOut {
		parts = append(parts, fmt.Sprintf("- %s (%s) - Mã ĐP: %s", orNA(a.Name), orNA(a.RoomType), orNA(a.BookingID)))
	}

	return strings.Join(parts, "\n")
}

// RoomTypeDetails lists free units per room type, sorted by name.
func RoomTypeDetails(today time.Time, bookings []model.Booking, roomTypes []string, e engine.Engine) string {
	parts := []string{fmt.Sprintf("🏡 Chi Tiết Tình Trạng Loại Phòng - %s 🏡\n", day(today))}

	if len(model.ActiveOnly(bookings)) == 0 || len(roomTypes) == 0 {
		parts = append(parts, "Không có dữ liệu đặt phòng hoặc loại phòng để tạo báo cáo chi tiết.")
		return strings.Join(parts, "\n")
	}

	free := e.RoomTypeAvailability(today, bookings, roomTypes)
	for _, rt := range slices.Sorted(slices.Values(roomTypes)) {
		parts = append(parts, fmt.Sprintf("- %s: %d/%d trống", rt, free[rt], e.UnitsPerType()))
	}

	return strings.Join(parts, "\n")
}

type reportStyle struct {
	header     string
	totalLabel string
	roomsLabel string
	freeFormat string
}

var (
	commandStyle = reportStyle{
		header:     "📢 Cập nhật Khách sạn - %s 📢\n",
		totalLabel: "Tổng thu từ khách check-in: %s %s\n",
		roomsLabel: "🏡 Tình trạng phòng hôm nay:",
		freeFormat: "- Số phòng trống: %d/%d",
	}
	scheduledStyle = reportStyle{
		header:     "📢 Khách sạn Hôm Nay (Báo cáo Tự động) - %s 📢\n",
		totalLabel: "💰 Tổng thu từ khách check-in: %s %s\n",
		roomsLabel: "🏡 Tình trạng phòng tổng quan hôm nay:",
		freeFormat: "- Số phòng trống: %d / %d",
	}
)

// DetailRoom answers the /detailroom bot command.
func DetailRoom(today time.Time, bookings []model.Booking, e engine.Engine) string {
	return detail(commandStyle, today, bookings, e)
}

// ScheduledReport is the unsolicited variant of DetailRoom pushed by the bot.
func ScheduledReport(today time.Time, bookings []model.Booking, e engine.Engine) string {
	return detail(scheduledStyle, today, bookings, e)
}

func detail(style reportStyle, today time.Time, bookings []model.Booking, e engine.Engine) string {
	d := model.Day(today)
	parts := []string{fmt.Sprintf(style.header, day(d))}

	total := decimal.Zero

	parts = append(parts, "➡️ Khách Check-in Hôm Nay:")
	checkIns := 0
	for _, b := range bookings {
		if !b.Active() || !b.CheckIn.Equal(d) {
			continue
		}
		checkIns++
		total = total.Add(b.TotalPayment)
		parts = append(parts, fmt.Sprintf("- %s (%s) - Thu: %s %s",
			orNA(b.GuestName), orNA(b.RoomType), normalize.FormatAmount(b.TotalPayment), paymentUnit))
	}
	if checkIns == 0 {
		parts = append(parts, "Không có khách check-in hôm nay.")
	}
	parts = append(parts, fmt.Sprintf(style.totalLabel, normalize.FormatAmount(total), paymentUnit))

	parts = append(parts, "⬅️ Khách Check-out Hôm Nay:")
	checkOuts := 0
	for _, b := range bookings {
		if !b.Active() || !b.CheckOut.Equal(d) {
			continue
		}
		checkOuts++
		parts = append(parts, fmt.Sprintf("- %s (%s)", orNA(b.GuestName), orNA(b.RoomType)))
	}
	if checkOuts == 0 {
		parts = append(parts, "Không có khách check-out hôm nay.")
	}
	parts = append(parts, "")

	status := e.OverallDayStatus(d, bookings)
	parts = append(parts, style.roomsLabel, fmt.Sprintf(style.freeFormat, status.AvailableUnits, e.TotalCapacity()))

	return strings.Join(parts, "\n")
}

func Welcome(user string) string {
	if user == "" {
		user = "bạn"
	}
	return "Chào " + user + "! 👋\n\n" +
		"Tôi là Bot Quản Lý Khách Sạn của bạn.\n" +
		"Gửi lệnh /detailroom để xem tình trạng phòng trống tổng thể, cùng với thông tin khách check-in/out hôm nay.\n\n" +
		"Lưu ý: Dữ liệu được lấy từ kho đặt phòng đã lưu."
}

const (
	Fetching = "Đang lấy thông tin đặt phòng, vui lòng đợi..."
	NoData   = "Xin lỗi, không thể lấy dữ liệu đặt phòng hoặc không có đặt phòng nào đang hoạt động."
)
