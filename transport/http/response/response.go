package response

import (
	"encoding/json"
	"mime"
	"net/http"
	"strconv"

	"hotelinv/shared/constant"
	"hotelinv/shared/failure"
	"hotelinv/shared/logger"
)

// Data wraps a successful payload.
type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

// Error is the body of every failed request. Details lists each reason a
// submitted booking was refused.
type Error struct {
	Error   *string  `json:"error,omitempty"`
	Details []string `json:"details,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

func WithMessage(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, Message{Message: &message})
}

func WithJSON(w http.ResponseWriter, code int, payload any) {
	writeJSON(w, code, Data[any]{Data: &payload})
}

// WithError renders err with the status it carries, 500 for plain errors.
func WithError(w http.ResponseWriter, err error) {
	msg := err.Error()

	writeJSON(w, failure.GetCode(err), Error{Error: &msg, Details: failure.GetDetails(err)})
}

// WithFile sends data as an attachment named fileName.
func WithFile(w http.ResponseWriter, fileName, contentType string, data []byte) {
	header := w.Header()
	header.Set(constant.RequestHeaderContentType, contentType)
	header.Set(constant.ResponseHeaderContentDisposition, mime.FormatMediaType("attachment", map[string]string{"filename": fileName}))
	header.Set(constant.ResponseHeaderContentLength, strconv.Itoa(len(data)))

	write(w, http.StatusOK, data)
}

func WithText(w http.ResponseWriter, code int, text string) {
	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeText)

	write(w, code, []byte(text))
}

func WithRequestLimitExceeded(w http.ResponseWriter) {
	WithMessage(w, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(w http.ResponseWriter) {
	WithMessage(w, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(w http.ResponseWriter) {
	WithMessage(w, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		w.WriteHeader(http.StatusInternalServerError)

		return
	}

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	write(w, code, body)
}

func write(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
