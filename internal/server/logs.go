package server

import (
	"fmt"
	"net/http"
	"strconv"

	ddnserrors "github.com/qdm12/ddns-scheduler/internal/errors"
	"github.com/qdm12/ddns-scheduler/internal/eventlog"
)

type logsResponse struct {
	Logs  []eventlog.Entry `json:"logs"`
	Index int              `json:"index"`
}

// getLogs returns the log entries from the since query parameter index,
// and the index to use as since in the next request.
func (h *handlers) getLogs(w http.ResponseWriter, r *http.Request) {
	since := 0
	if sinceString := r.URL.Query().Get("since"); sinceString != "" {
		var err error
		since, err = strconv.Atoi(sinceString)
		if err != nil {
			err = fmt.Errorf("%w: since query parameter: %w", ddnserrors.ErrValidation, err)
			h.handleError(w, err)
			return
		}
	}

	entries, index := h.eventLog.Since(since)
	if entries == nil {
		entries = []eventlog.Entry{}
	}
	h.respondJSON(w, http.StatusOK, logsResponse{Logs: entries, Index: index})
}
