package server

import (
	"fmt"
	"net/http"

	ddnserrors "github.com/qdm12/ddns-scheduler/internal/errors"
	"github.com/qdm12/ddns-scheduler/internal/probe"
)

func (h *handlers) getProbes(w http.ResponseWriter, _ *http.Request) {
	h.respondJSON(w, http.StatusOK, nonNilResults(h.pool.Snapshot()))
}

func (h *handlers) refreshProbes(w http.ResponseWriter, r *http.Request) {
	results := h.pool.RefreshAll(r.Context())
	h.respondJSON(w, http.StatusOK, nonNilResults(results))
}

type addProbeRequest struct {
	URL string `json:"url"`
}

func (h *handlers) addProbe(w http.ResponseWriter, r *http.Request) {
	var request addProbeRequest
	err := decodeJSON(w, r, &request)
	if err != nil {
		h.handleError(w, err)
		return
	}

	added, err := h.pool.AddCustom(request.URL)
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.logger.Info("custom probe " + added.URL + " added")
	h.respondJSON(w, http.StatusCreated, added)
}

type addLocalProbeRequest struct {
	Interface string       `json:"interface"`
	IPType    probe.IPType `json:"ipType"`
}

func (h *handlers) addLocalProbe(w http.ResponseWriter, r *http.Request) {
	var request addLocalProbeRequest
	err := decodeJSON(w, r, &request)
	if err != nil {
		h.handleError(w, err)
		return
	}

	added, err := h.pool.AddLocal(request.Interface, request.IPType)
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.logger.Info("local probe " + added.URL + " added")
	h.respondJSON(w, http.StatusCreated, added)
}

type interfacesResponse struct {
	Interfaces []probe.Interface `json:"interfaces"`
}

func (h *handlers) listInterfaces(w http.ResponseWriter, _ *http.Request) {
	interfaces, err := h.pool.Interfaces()
	if err != nil {
		h.handleError(w, err)
		return
	}
	if interfaces == nil {
		interfaces = []probe.Interface{}
	}
	h.respondJSON(w, http.StatusOK, interfacesResponse{Interfaces: interfaces})
}

func (h *handlers) removeProbe(w http.ResponseWriter, r *http.Request) {
	rawURL := r.URL.Query().Get("url")
	if rawURL == "" {
		err := fmt.Errorf("%w: url query parameter is empty", ddnserrors.ErrValidation)
		h.handleError(w, err)
		return
	}

	err := h.pool.RemoveCustom(rawURL)
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.logger.Info("probe " + rawURL + " removed")
	w.WriteHeader(http.StatusNoContent)
}

func nonNilResults(results []probe.Result) []probe.Result {
	if results == nil {
		return []probe.Result{}
	}
	return results
}
