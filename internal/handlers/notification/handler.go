package notification

import (
	"net/http"

	"hotelinv/infras/otel"
	"hotelinv/internal/domains/notify/model/dto"
	"hotelinv/internal/domains/notify/service"
	"hotelinv/shared/constant"
	"hotelinv/shared/validator"
	"hotelinv/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Notify
	otel    otel.Otel
}

func New(service service.Notify, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/notifications", func(routerGroup chi.Router) {
		routerGroup.Post("/daily", handler.SendDailyStatus)
		routerGroup.Post("/room-types", handler.SendRoomTypeDetails)
	})
}

func request(r *http.Request) (dto.SendNotificationRequest, error) {
	req := dto.SendNotificationRequest{}

	if r.ContentLength == 0 {
		return req, validator.ValidateStruct(&req)
	}

	return req, validator.Validate(r.Body, &req)
}

// SendDailyStatus posts the daily hotel update to the hotel chat.
// @Summary Send the daily status
// @Description Sent is false when no chat is configured; the composed message is returned either way.
// @Tags Notification
// @Accept json
// @Produce json
// @Param request body dto.SendNotificationRequest false "Day"
// @Success 200 {object} response.Data[dto.NotificationResponse] "Message"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/notifications/daily [post]
// @Security BearerAuth
func (handler *Handler) SendDailyStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendDailyStatus")
	defer scope.End()

	req, err := request(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.SendDailyStatus(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send daily status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SendRoomTypeDetails posts free units per room type to the hotel chat.
// @Summary Send room type details
// @Tags Notification
// @Accept json
// @Produce json
// @Param request body dto.SendNotificationRequest false "Day"
// @Success 200 {object} response.Data[dto.NotificationResponse] "Message"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/notifications/room-types [post]
// @Security BearerAuth
func (handler *Handler) SendRoomTypeDetails(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendRoomTypeDetails")
	defer scope.End()

	req, err := request(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.SendRoomTypeDetails(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send room type details")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
