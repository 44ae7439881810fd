package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"

	"github.com/ewilliams-labs/lumiya/internal/core/domain"
)

const (
	statusSuccess = "success"
	statusError   = "error"

	maxBodyBytes = 1 << 20
)

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("rest: failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Status: statusError, Message: message})
}

// writeFailure maps a service error to the error envelope. Validation errors
// are 400, everything else is 500 and reported to Sentry.
func writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	var validation *domain.ValidationError
	if errors.As(err, &validation) {
		writeError(w, http.StatusBadRequest, validation.Message)
		return
	}

	logrus.WithError(err).
		WithField("request_id", RequestIDFrom(r.Context())).
		Error("rest: request failed")
	if hub := sentry.GetHubFromContext(r.Context()); hub != nil {
		hub.CaptureException(err)
	}

	message := err.Error()
	var upstream *domain.UpstreamError
	if errors.As(err, &upstream) {
		message = upstream.Error()
	}
	writeError(w, http.StatusInternalServerError, message)
}

var errNullBody = errors.New("request body is null")

// decodeJSON reads a JSON object into v, capped at maxBodyBytes. A literal
// null body is an error rather than a zero value.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return err
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return errNullBody
	}
	return json.Unmarshal(raw, v)
}
