package template

import (
	"net/http"

	"hotelinv/infras/otel"
	"hotelinv/internal/domains/template/model/dto"
	"hotelinv/internal/domains/template/service"
	"hotelinv/shared/constant"
	"hotelinv/shared/validator"
	"hotelinv/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Template
	otel    otel.Otel
}

func New(service service.Template, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/templates", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetTemplates)
		routerGroup.Put("/", handler.ReplaceTemplates)
		routerGroup.Get("/text", handler.GetTemplateText)
		routerGroup.Post("/messages", handler.UpsertMessage)
		routerGroup.Delete("/messages", handler.DeleteMessage)
		routerGroup.Post("/reset", handler.ResetTemplates)
	})
}

// GetTemplates lists the message templates by category.
// @Summary List message templates
// @Tags Template
// @Produce json
// @Success 200 {object} response.Data[dto.TemplatesResponse] "Templates"
// @Failure 500 {object} response.Error
// @Router /v1/templates [get]
// @Security BearerAuth
func (handler *Handler) GetTemplates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTemplates")
	defer scope.End()

	res, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list templates")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetTemplateText renders the templates in the template file format.
// @Summary Download templates as text
// @Tags Template
// @Produce plain
// @Success 200 {string} string "Template file"
// @Failure 500 {object} response.Error
// @Router /v1/templates/text [get]
// @Security BearerAuth
func (handler *Handler) GetTemplateText(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTemplateText")
	defer scope.End()

	text, err := handler.service.Text(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to render templates")

		response.WithError(w, err)

		return
	}

	response.WithText(w, http.StatusOK, text)
}

// ReplaceTemplates swaps every template for the parsed content of a template file.
// @Summary Replace all templates
// @Tags Template
// @Accept json
// @Produce json
// @Param request body dto.ReplaceTemplatesRequest true "Template file content"
// @Success 200 {object} response.Data[dto.TemplatesResponse] "Templates"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/templates [put]
// @Security BearerAuth
func (handler *Handler) ReplaceTemplates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReplaceTemplates")
	defer scope.End()

	req := dto.ReplaceTemplatesRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Replace(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to replace templates")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Templates replaced")

	response.WithJSON(w, http.StatusOK, res)
}

// UpsertMessage adds or overwrites one labelled message.
// @Summary Add or update a message
// @Tags Template
// @Accept json
// @Produce json
// @Param request body dto.UpsertTemplateRequest true "Message"
// @Success 200 {object} response.Data[dto.TemplatesResponse] "Templates"
// @Failure 400 {object} response.Error
// @Router /v1/templates/messages [post]
// @Security BearerAuth
func (handler *Handler) UpsertMessage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpsertMessage")
	defer scope.End()

	req := dto.UpsertTemplateRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Upsert(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("category", req.Category).Msg("failed to upsert template")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteMessage removes a message, or a whole category when no label is given.
// @Summary Delete a message or category
// @Tags Template
// @Accept json
// @Produce json
// @Param request body dto.DeleteTemplateRequest true "Category and label"
// @Success 200 {object} response.Message "Template deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/templates/messages [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMessage")
	defer scope.End()

	req := dto.DeleteTemplateRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("category", req.Category).Msg("failed to delete template")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Template deleted successfully")
}

// ResetTemplates restores the built-in templates.
// @Summary Reset templates
// @Tags Template
// @Produce json
// @Success 200 {object} response.Data[dto.TemplatesResponse] "Templates"
// @Failure 500 {object} response.Error
// @Router /v1/templates/reset [post]
// @Security BearerAuth
func (handler *Handler) ResetTemplates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResetTemplates")
	defer scope.End()

	res, err := handler.service.Reset(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reset templates")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
