package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	ddnserrors "github.com/qdm12/ddns-scheduler/internal/errors"
)

const maxBodySize = 1 << 16

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) (err error) {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	decoder.DisallowUnknownFields()
	err = decoder.Decode(v)
	if err != nil {
		return fmt.Errorf("%w: decoding JSON body: %w", ddnserrors.ErrValidation, err)
	}
	return nil
}

func (h *handlers) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		h.logger.Debug("encoding JSON response: " + err.Error())
	}
}
