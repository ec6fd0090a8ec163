package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rpupo63/corporate-site-backend/errs"
	"github.com/rs/zerolog"
)

const maxResponseSize = 10 * 1024 * 1024

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	r.WriteJSONWithStatus(w, http.StatusOK, data)
}

func (r Responder) WriteJSONWithStatus(w http.ResponseWriter, status int, data any) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if len(jsonData) > maxResponseSize {
		r.logger.Error().
			Int("responseSize", len(jsonData)).
			Int("maxSize", maxResponseSize).
			Msg("response too large")
		jsonData, _ = json.Marshal(ErrorResponse{Error: "Response too large", Status: "error"})
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteError renders err as an ErrorResponse. Client errors carry their message
// and field; anything else is logged in full and answered with a generic 500.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) || apiErr.IsServerFault() {
		event := r.logger.Error()
		if apiErr != nil {
			event = event.Str("error", apiErr.GetFullError())
		} else {
			event = event.Err(err)
		}
		event.Msg("request failed")

		status := http.StatusInternalServerError
		message := "Internal server error"
		if apiErr != nil && apiErr.StatusCode == http.StatusServiceUnavailable {
			status = http.StatusServiceUnavailable
			message = "Service unavailable"
		}
		r.WriteJSONWithStatus(w, status, ErrorResponse{Error: message, Status: "error"})
		return
	}

	message := apiErr.Details
	if message == "" {
		message = apiErr.Error()
	}
	r.WriteJSONWithStatus(w, apiErr.StatusCode, ErrorResponse{
		Error:  message,
		Status: "error",
		Field:  apiErr.Field,
	})
}
