package entry

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"hotelinv/internal/domains/availability/engine"
	"hotelinv/internal/domains/booking/model"
	"hotelinv/internal/domains/booking/normalize"
)

const (
	ManualIDPrefix  = "MANUAL"
	ImageIDPrefix   = "IMG_"
	UnknownLocation = "N/A (Chưa xác định)"
	ImageLocation   = "N/A (từ ảnh)"

	idStampLayout = "060102150405"
	messageLayout = "02/01/2006"
)

// RejectedError carries every reason a manual booking was refused.
type RejectedError struct {
	Reasons []string
}

func (e *RejectedError) Error() string {
	return "booking rejected: " + strings.Join(e.Reasons, "; ")
}

// Rules validates manual additions and edits against the current ledger.
type Rules struct {
	engine    engine.Engine
	roomTypes []string
}

// NewRules accepts the room types configured for the hotel together with those
// already present in the ledger. With neither, any non-empty room type passes.
func NewRules(e engine.Engine, configured []string, current []model.Booking) Rules {
	return Rules{engine: e, roomTypes: ValidRoomTypes(configured, current)}
}

func ValidRoomTypes(configured []string, current []model.Booking) []string {
	all := slices.Clone(configured)
	for _, b := range current {
		if b.RoomType != model.NotAvailable {
			all = append(all, b.RoomType)
		}
	}
	return normalize.CleanRoomTypeList(all)
}

// Check returns the reasons candidate cannot be stored. originalID names the
// booking being edited and is empty for an addition.
func (r Rules) Check(candidate model.Booking, current []model.Booking, originalID string) error {
	var reasons []string

	if strings.TrimSpace(candidate.GuestName) == "" {
		reasons = append(reasons, "guest name is required")
	}
	if !candidate.CheckOut.After(candidate.CheckIn) {
		reasons = append(reasons, fmt.Sprintf("check-out (%s) must be after check-in (%s)",
			candidate.CheckOut.Format(messageLayout), candidate.CheckIn.Format(messageLayout)))
	}
	if candidate.Status == model.StatusOK && !candidate.TotalPayment.IsPositive() {
		reasons = append(reasons, "total payment must be greater than 0 for OK bookings")
	}
	if !r.validRoomType(candidate.RoomType) {
		reasons = append(reasons, fmt.Sprintf("room type %q is not valid", candidate.RoomType))
	}
	if strings.TrimSpace(candidate.CollectedBy) == "" {
		reasons = append(reasons, "collector is required")
	}
	if candidate.BookingID != originalID && idTaken(candidate.BookingID, current) {
		reasons = append(reasons, fmt.Sprintf("booking id %q already exists", candidate.BookingID))
	}

	if len(reasons) == 0 && candidate.Status == model.StatusOK {
		for _, c := range r.engine.StayConflicts(candidate.RoomType, candidate.CheckIn, candidate.CheckOut, current, originalID) {
			reasons = append(reasons, conflictReason(c, candidate.RoomType, r.engine.TotalCapacity()))
		}
	}

	if len(reasons) > 0 {
		return &RejectedError{Reasons: reasons}
	}
	return nil
}

func (r Rules) validRoomType(roomType string) bool {
	roomType = strings.TrimSpace(roomType)
	if roomType == "" {
		return false
	}
	if len(r.roomTypes) == 0 {
		return true
	}
	return slices.Contains(r.roomTypes, roomType)
}

func idTaken(id string, current []model.Booking) bool {
	return slices.ContainsFunc(current, func(b model.Booking) bool {
		return b.BookingID == id
	})
}

func conflictReason(c engine.Conflict, roomType string, capacity int) string {
	day := c.Date.Format(messageLayout)
	if c.Kind == engine.ConflictRoomType {
		return fmt.Sprintf("room type %q is fully booked on %s", roomType, day)
	}
	return fmt.Sprintf("hotel already has %d guests on %s", capacity, day)
}

// NewID builds the default id of a manual booking.
func NewID(now time.Time) string {
	return ManualIDPrefix + now.Format(idStampLayout)
}

// NewImageID builds the default id of the idx-th booking read from a screenshot.
func NewImageID(now time.Time, idx int) string {
	return fmt.Sprintf("%s%s_%d", ImageIDPrefix, now.Format(idStampLayout), idx)
}

// DefaultLocation reuses the location of a booking of the same room type.
func DefaultLocation(roomType string, current []model.Booking) string {
	for _, b := range current {
		if b.RoomType == roomType && b.Location != "" && b.Location != model.NotAvailable {
			return b.Location
		}
	}
	return UnknownLocation
}
