package availability

import (
	"net/http"

	"hotelinv/infras/otel"
	"hotelinv/internal/domains/availability/service"
	"hotelinv/shared/constant"
	"hotelinv/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Get("/room-types", handler.GetRoomTypes)
		routerGroup.Get("/activity", handler.GetActivity)
		routerGroup.Get("/day", handler.GetDay)
		routerGroup.Get("/calendar", handler.GetCalendar)
	})
}

// GetRoomTypes returns free units per room type on a day.
// @Summary Free units per room type
// @Tags Availability
// @Produce json
// @Param date query string false "Day (YYYY-MM-DD), today when empty"
// @Success 200 {object} response.Data[dto.RoomTypesResponse] "Availability"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/availability/room-types [get]
// @Security BearerAuth
func (handler *Handler) GetRoomTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypeAvailability")
	defer scope.End()

	res, err := handler.service.RoomTypes(ctx, r.URL.Query().Get(constant.RequestParamDate))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room type availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetActivity returns the check-ins, check-outs and stays of a day.
// @Summary Daily activity
// @Tags Availability
// @Produce json
// @Param date query string false "Day (YYYY-MM-DD), today when empty"
// @Success 200 {object} response.Data[dto.ActivityResponse] "Activity"
// @Failure 400 {object} response.Error
// @Router /v1/availability/activity [get]
// @Security BearerAuth
func (handler *Handler) GetActivity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActivity")
	defer scope.End()

	res, err := handler.service.Activity(ctx, r.URL.Query().Get(constant.RequestParamDate))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get daily activity")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetDay returns the hotel-wide status of a day.
// @Summary Day status
// @Tags Availability
// @Produce json
// @Param date query string false "Day (YYYY-MM-DD), today when empty"
// @Success 200 {object} response.Data[dto.DayStatusResponse] "Day status"
// @Failure 400 {object} response.Error
// @Router /v1/availability/day [get]
// @Security BearerAuth
func (handler *Handler) GetDay(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDay")
	defer scope.End()

	res, err := handler.service.Day(ctx, r.URL.Query().Get(constant.RequestParamDate))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get day status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetCalendar returns the day status of every day in a month.
// @Summary Month calendar
// @Tags Availability
// @Produce json
// @Param month query string false "Month (YYYY-MM), current month when empty"
// @Success 200 {object} response.Data[dto.CalendarResponse] "Calendar"
// @Failure 400 {object} response.Error
// @Router /v1/availability/calendar [get]
// @Security BearerAuth
func (handler *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCalendar")
	defer scope.End()

	res, err := handler.service.Calendar(ctx, r.URL.Query().Get(constant.RequestParamMonth))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get calendar")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
