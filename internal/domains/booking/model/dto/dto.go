package dto

import (
	"fmt"
	"strings"
	"time"

	"hotelinv/internal/domains/booking/merge"
	"hotelinv/internal/domains/booking/model"
	"hotelinv/internal/domains/booking/normalize"
	"hotelinv/shared"
	gDto "hotelinv/shared/dto"

	"github.com/shopspring/decimal"
)

const (
	ImportModeReplace = "replace"
	ImportModeMerge   = "merge"
)

type BookingResponse struct {
	Index          int             `json:"index"`
	BookingID      string          `json:"booking_id"`
	GuestName      string          `json:"guest_name"`
	IsGeniusMember bool            `json:"is_genius_member"`
	RoomType       string          `json:"room_type"`
	Location       string          `json:"location"`
	CheckIn        string          `json:"check_in"`
	CheckOut       string          `json:"check_out"`
	CheckInText    string          `json:"check_in_text"`
	CheckOutText   string          `json:"check_out_text"`
	BookingMadeOn  *string         `json:"booking_made_on"`
	Status         model.Status    `json:"status"`
	StatusLabel    string          `json:"status_label"`
	TotalPayment   decimal.Decimal `json:"total_payment"`
	Commission     decimal.Decimal `json:"commission"`
	Currency       string          `json:"currency"`
	StayDuration   int             `json:"stay_duration"`
	PricePerNight  decimal.Decimal `json:"price_per_night"`
	CollectedBy    string          `json:"collected_by"`
}

func (r *BookingResponse) FromModel(index int, b model.Booking) {
	r.Index = index
	r.BookingID = b.BookingID
	r.GuestName = b.GuestName
	r.IsGeniusMember = b.IsGeniusMember
	r.RoomType = b.RoomType
	r.Location = b.Location
	r.CheckIn = b.CheckIn.Format(shared.DayLayout)
	r.CheckOut = b.CheckOut.Format(shared.DayLayout)
	r.CheckInText = normalize.Phrase(b.CheckIn)
	r.CheckOutText = normalize.Phrase(b.CheckOut)
	if b.BookingMadeOn != nil {
		madeOn := b.BookingMadeOn.Format(shared.DayLayout)
		r.BookingMadeOn = &madeOn
	}
	r.Status = b.Status
	r.StatusLabel = b.Status.Label()
	r.TotalPayment = b.TotalPayment
	r.Commission = b.Commission
	r.Currency = b.Currency
	r.StayDuration = b.StayDuration
	r.PricePerNight = b.PricePerNight
	r.CollectedBy = b.CollectedBy
}

// UpsertBookingRequest is the manual add/edit form. Business rules are checked
// by the service so that every violation is reported together.
type UpsertBookingRequest struct {
	BookingID      string          `json:"booking_id"      validate:"omitempty,max=64"`
	GuestName      string          `json:"guest_name"      validate:"max=200"`
	IsGeniusMember bool            `json:"is_genius_member"`
	RoomType       string          `json:"room_type"       validate:"max=200"`
	Location       string          `json:"location"        validate:"omitempty,max=300"`
	CheckIn        string          `json:"check_in"        validate:"required,datetime=2006-01-02"`
	CheckOut       string          `json:"check_out"       validate:"required,datetime=2006-01-02"`
	BookingMadeOn  string          `json:"booking_made_on" validate:"omitempty,datetime=2006-01-02"`
	Status         string          `json:"status"          validate:"omitempty,max=50"`
	TotalPayment   decimal.Decimal `json:"total_payment"`
	Commission     decimal.Decimal `json:"commission"`
	Currency       string          `json:"currency"        validate:"omitempty,max=10"`
	CollectedBy    string          `json:"collected_by"    validate:"max=100"`
}

func (u *UpsertBookingRequest) ToModel() (model.Booking, error) {
	checkIn, err := time.Parse(shared.DayLayout, u.CheckIn)
	if err != nil {
		return model.Booking{}, fmt.Errorf("invalid check_in: %w", err)
	}

	checkOut, err := time.Parse(shared.DayLayout, u.CheckOut)
	if err != nil {
		return model.Booking{}, fmt.Errorf("invalid check_out: %w", err)
	}

	b := model.Booking{
		BookingID:      strings.TrimSpace(u.BookingID),
		GuestName:      strings.TrimSpace(u.GuestName),
		IsGeniusMember: u.IsGeniusMember,
		RoomType:       strings.TrimSpace(u.RoomType),
		Location:       strings.TrimSpace(u.Location),
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		Status:         model.ParseStatus(u.Status),
		TotalPayment:   u.TotalPayment,
		Commission:     u.Commission,
		Currency:       strings.ToUpper(strings.TrimSpace(u.Currency)),
		CollectedBy:    strings.TrimSpace(u.CollectedBy),
	}

	if u.BookingMadeOn != "" {
		madeOn, err := time.Parse(shared.DayLayout, u.BookingMadeOn)
		if err != nil {
			return model.Booking{}, fmt.Errorf("invalid booking_made_on: %w", err)
		}
		b.BookingMadeOn = &madeOn
	}

	if b.Currency == "" {
		b.Currency = model.DefaultCurrency
	}

	return b, nil
}

type ListBookingsRequest struct {
	gDto.QueryParams
	Status   string `json:"status"    validate:"omitempty,oneof=OK CANCELLED PENDING"`
	RoomType string `json:"room_type"`
	Search   string `json:"search"    validate:"omitempty,max=100"`
}

type ListBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

type DeleteBookingsRequest struct {
	IDs     []string `json:"ids"     validate:"required_without=Indices"`
	Indices []int    `json:"indices" validate:"required_without=IDs,dive,gte=0"`
}

type DeleteBookingsResponse struct {
	Deleted int `json:"deleted"`
}

type SummaryRequest struct {
	From string `json:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `json:"to"   validate:"omitempty,datetime=2006-01-02"`
}

type Breakdown struct {
	Name     string          `json:"name"`
	Bookings int             `json:"bookings"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type SummaryResponse struct {
	From            *string         `json:"from"`
	To              *string         `json:"to"`
	TotalBookings   int             `json:"total_bookings"`
	ActiveBookings  int             `json:"active_bookings"`
	Revenue         decimal.Decimal `json:"revenue"`
	Commission      decimal.Decimal `json:"commission"`
	Nights          int             `json:"nights"`
	AveragePerNight decimal.Decimal `json:"average_per_night"`
	ByCollector     []Breakdown     `json:"by_collector"`
	ByRoomType      []Breakdown     `json:"by_room_type"`
}

type ImportResponse struct {
	Mode                 string   `json:"mode"`
	Loaded               int      `json:"loaded"`
	Dropped              int      `json:"dropped"`
	Added                int      `json:"added"`
	SkippedSameGuestDate int      `json:"skipped_same_guest_date"`
	SkippedGuests        []string `json:"skipped_guests"`
	SkippedDuplicateID   int      `json:"skipped_duplicate_id"`
	Total                int      `json:"total"`
	Warnings             []string `json:"warnings"`
}

func (r *ImportResponse) FromMerge(m merge.Result) {
	r.Added = m.Added
	r.SkippedSameGuestDate = m.SkippedSameGuestDate
	r.SkippedGuests = m.SkippedGuests
	r.SkippedDuplicateID = m.SkippedDuplicateID
	r.Warnings = append(r.Warnings, m.Warnings()...)
}

type SheetRequest struct {
	Sheet string `json:"sheet" validate:"omitempty,max=100"`
}

type SaveSheetResponse struct {
	Sheet string `json:"sheet"`
	Saved int    `json:"saved"`
}

type ExtractImageRequest struct {
	Image string `json:"image" validate:"required,mimetypes=image/png image/jpeg image/webp,maxfilesize=10"`
}

// Candidate is one booking read from a screenshot, before it is committed.
type Candidate struct {
	GuestName      string          `json:"guest_name"`
	BookingID      string          `json:"booking_id"`
	IsGeniusMember bool            `json:"is_genius_member"`
	CheckIn        string          `json:"check_in_date"`
	CheckOut       string          `json:"check_out_date"`
	RoomType       string          `json:"room_type"`
	TotalPayment   decimal.Decimal `json:"total_payment"`
	Commission     decimal.Decimal `json:"commission"`
	Currency       string          `json:"currency"`
	NumNights      int             `json:"num_nights"`
	NumAdults      int             `json:"num_adults"`
	Errors         []string        `json:"errors"`
}

type ExtractImageResponse struct {
	Candidates []Candidate `json:"candidates"`
}

type CommitCandidatesRequest struct {
	Candidates []Candidate `json:"candidates" validate:"required,min=1"`
}

type CommitCandidatesResponse struct {
	Added   int      `json:"added"`
	Skipped int      `json:"skipped"`
	Reasons []string `json:"reasons"`
}
