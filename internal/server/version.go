package server

import (
	"net/http"
)

type versionResponse struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"buildDate"`
	Full    string `json:"fullVersion"`
}

func (h *handlers) getVersion(w http.ResponseWriter, _ *http.Request) {
	h.respondJSON(w, http.StatusOK, versionResponse{
		Version: h.buildInfo.Version,
		Commit:  h.buildInfo.Commit,
		Date:    h.buildInfo.Date,
		Full:    h.buildInfo.VersionString(),
	})
}
