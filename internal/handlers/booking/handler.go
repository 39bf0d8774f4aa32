package booking

import (
	"fmt"
	"io"
	"net/http"

	"hotelinv/config"
	"hotelinv/infras/otel"
	"hotelinv/internal/domains/booking/model/dto"
	"hotelinv/internal/domains/booking/service"
	"hotelinv/shared/constant"
	"hotelinv/shared/failure"
	"hotelinv/shared/validator"
	"hotelinv/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const bytesPerMB = 1 << 20

type Handler struct {
	service service.Booking
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Booking, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Delete("/", handler.DeleteBookings)
		routerGroup.Get("/room-types", handler.GetRoomTypes)
		routerGroup.Get("/summary", handler.GetSummary)
		routerGroup.Post("/import", handler.ImportFile)
		routerGroup.Post("/demo", handler.LoadDemo)
		routerGroup.Post("/sheet/load", handler.LoadSheet)
		routerGroup.Post("/sheet/save", handler.SaveSheet)
		routerGroup.Post("/extract", handler.ExtractImage)
		routerGroup.Post("/extract/commit", handler.CommitExtracted)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Put("/{id}", handler.UpdateBooking)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
	})
}

// GetBookings lists the session ledger.
// @Summary List bookings
// @Description List the bookings of the caller's session with filters and pagination. Index is the ledger row.
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (OK, CANCELLED, PENDING)"
// @Param room_type query string false "Filter by room type"
// @Param search query string false "Search guest name or booking id"
// @Success 200 {object} response.Data[dto.ListBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	req := dto.ListBookingsRequest{}
	req.FromRequest(r, true)
	req.Status = r.URL.Query().Get(constant.RequestParamStatus)
	req.RoomType = r.URL.Query().Get(constant.RequestParamRoomType)
	req.Search = r.URL.Query().Get(constant.RequestParamSearch)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	bookings, err := handler.service.List(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID returns one booking.
// @Summary Get a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// CreateBooking adds a booking from the manual form.
// @Summary Create a booking
// @Description Every rule violation is reported together in the error details.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.UpsertBookingRequest true "Booking form"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.UpsertBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, booking)
}

// UpdateBooking edits a booking in place.
// @Summary Update a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpsertBookingRequest true "Booking form"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/bookings/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpsertBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// DeleteBooking removes one booking.
// @Summary Delete a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Booking deleted successfully")
}

// DeleteBookings removes several bookings by id or by ledger row.
// @Summary Delete bookings
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.DeleteBookingsRequest true "Ids or row indices"
// @Success 200 {object} response.Data[dto.DeleteBookingsResponse] "Deleted count"
// @Failure 400 {object} response.Error
// @Router /v1/bookings [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBookings")
	defer scope.End()

	req := dto.DeleteBookingsRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.DeleteMany(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetRoomTypes lists the valid room types.
// @Summary List room types
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[[]string] "Room types"
// @Router /v1/bookings/room-types [get]
// @Security BearerAuth
func (handler *Handler) GetRoomTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypes")
	defer scope.End()

	roomTypes, err := handler.service.RoomTypes(ctx)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, roomTypes)
}

// GetSummary returns dashboard totals.
// @Summary Booking summary
// @Description Counts, revenue, commission and nights, with per-collector and per-room-type breakdowns, over an optional check-in range.
// @Tags Booking
// @Produce json
// @Param from query string false "Check-in from (YYYY-MM-DD)"
// @Param to query string false "Check-in to (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.SummaryResponse] "Summary"
// @Failure 400 {object} response.Error
// @Router /v1/bookings/summary [get]
// @Security BearerAuth
func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	req := dto.SummaryRequest{
		From: r.URL.Query().Get(constant.RequestParamFrom),
		To:   r.URL.Query().Get(constant.RequestParamTo),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Summary(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to summarize bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ImportFile loads bookings from an uploaded file.
// @Summary Import a booking file
// @Description Accepts xlsx, csv, html and pdf exports. Mode replace swaps the ledger, merge skips duplicates.
// @Tags Booking
// @Accept multipart/form-data
// @Produce json
// @Param mode query string false "replace or merge" default(replace)
// @Param file formData file true "Booking file"
// @Success 200 {object} response.Data[dto.ImportResponse] "Import result"
// @Failure 400 {object} response.Error
// @Failure 413 {object} response.Error
// @Router /v1/bookings/import [post]
// @Security BearerAuth
func (handler *Handler) ImportFile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ImportFile")
	defer scope.End()

	maxBytes := handler.cfg.Hotel.MaxUploadMB * bytesPerMB
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, failure.BadRequest(err))

		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequest(fmt.Errorf("failed to read %s: %w", fileHeader.Filename, err)))

		return
	}

	mode := r.URL.Query().Get(constant.RequestParamMode)
	if mode == constant.Empty {
		mode = dto.ImportModeReplace
	}

	res, err := handler.service.Import(ctx, mode, fileHeader.Filename, data)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("file", fileHeader.Filename).Msg("failed to import bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent(fmt.Sprintf("Imported %d bookings from %s", res.Loaded, fileHeader.Filename))

	response.WithJSON(w, http.StatusOK, res)
}

// LoadDemo loads the demo bookings.
// @Summary Load demo data
// @Tags Booking
// @Produce json
// @Param mode query string false "replace or merge" default(replace)
// @Success 200 {object} response.Data[dto.ImportResponse] "Import result"
// @Failure 400 {object} response.Error
// @Router /v1/bookings/demo [post]
// @Security BearerAuth
func (handler *Handler) LoadDemo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".LoadDemo")
	defer scope.End()

	res, err := handler.service.LoadDemo(ctx, r.URL.Query().Get(constant.RequestParamMode))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// sheetRequest reads an optional body; the default sheet is used when it is absent.
func sheetRequest(r *http.Request) (dto.SheetRequest, error) {
	req := dto.SheetRequest{}

	if r.ContentLength == 0 {
		return req, validator.ValidateStruct(&req)
	}

	return req, validator.Validate(r.Body, &req)
}

// LoadSheet replaces the session ledger with a stored sheet.
// @Summary Load a stored sheet
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.SheetRequest false "Sheet name"
// @Success 200 {object} response.Data[dto.ImportResponse] "Import result"
// @Failure 400 {object} response.Error
// @Router /v1/bookings/sheet/load [post]
// @Security BearerAuth
func (handler *Handler) LoadSheet(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".LoadSheet")
	defer scope.End()

	req, err := sheetRequest(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.LoadSheet(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("sheet", req.Sheet).Msg("failed to load sheet")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SaveSheet stores the session ledger as a sheet.
// @Summary Save the ledger to a sheet
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.SheetRequest false "Sheet name"
// @Success 200 {object} response.Data[dto.SaveSheetResponse] "Saved rows"
// @Failure 400 {object} response.Error
// @Router /v1/bookings/sheet/save [post]
// @Security BearerAuth
func (handler *Handler) SaveSheet(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveSheet")
	defer scope.End()

	req, err := sheetRequest(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.SaveSheet(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("sheet", req.Sheet).Msg("failed to save sheet")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ExtractImage reads booking candidates from a screenshot.
// @Summary Extract bookings from an image
// @Description The image is a base64 data URI. Nothing is added to the ledger until the candidates are committed.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.ExtractImageRequest true "Image"
// @Success 200 {object} response.Data[dto.ExtractImageResponse] "Candidates"
// @Failure 400 {object} response.Error
// @Failure 501 {object} response.Error
// @Router /v1/bookings/extract [post]
// @Security BearerAuth
func (handler *Handler) ExtractImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExtractImage")
	defer scope.End()

	req := dto.ExtractImageRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.ExtractImage(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to extract bookings from image")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CommitExtracted adds reviewed candidates to the ledger.
// @Summary Commit extracted bookings
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CommitCandidatesRequest true "Candidates"
// @Success 200 {object} response.Data[dto.CommitCandidatesResponse] "Commit result"
// @Failure 400 {object} response.Error
// @Router /v1/bookings/extract/commit [post]
// @Security BearerAuth
func (handler *Handler) CommitExtracted(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CommitExtracted")
	defer scope.End()

	req := dto.CommitCandidatesRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CommitExtracted(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to commit extracted bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
