package server

import (
	"encoding/json"
	"errors"
	"net/http"

	ddnserrors "github.com/qdm12/ddns-scheduler/internal/errors"
)

type errJSONWrapper struct {
	Error string `json:"error"`
}

func httpError(w http.ResponseWriter, status int, errString string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if errString == "" {
		errString = http.StatusText(status)
	}
	body := errJSONWrapper{Error: errString}
	_ = json.NewEncoder(w).Encode(body)
}

func errorToStatus(err error) (status int) {
	switch {
	case errors.Is(err, ddnserrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ddnserrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ddnserrors.ErrBusy):
		return http.StatusConflict
	case errors.Is(err, ddnserrors.ErrProbeUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, ddnserrors.ErrProvider):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// handleError writes the error response matching err, and logs
// it if it is not caused by the client request.
func (h *handlers) handleError(w http.ResponseWriter, err error) {
	status := errorToStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.Error(err.Error())
	}
	httpError(w, status, err.Error())
}
