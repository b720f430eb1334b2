package server

import (
	"net/http"

	"github.com/qdm12/ddns-scheduler/internal/provider"
)

type credentialsRequest struct {
	Provider  string `json:"provider"`
	SecretID  string `json:"secretId"`
	SecretKey string `json:"secretKey"`
}

func (c credentialsRequest) credentials() provider.Credentials {
	return provider.Credentials{
		Provider:  c.Provider,
		SecretID:  c.SecretID,
		SecretKey: c.SecretKey,
	}
}

type domainsResponse struct {
	Domains []string `json:"domains"`
}

func (h *handlers) listDomains(w http.ResponseWriter, r *http.Request) {
	var request credentialsRequest
	err := decodeJSON(w, r, &request)
	if err != nil {
		h.handleError(w, err)
		return
	}

	domains, err := h.scheduler.ListDomains(r.Context(), request.credentials())
	if err != nil {
		h.handleError(w, err)
		return
	}
	if domains == nil {
		domains = []string{}
	}
	h.respondJSON(w, http.StatusOK, domainsResponse{Domains: domains})
}

type updateRecordRequest struct {
	credentialsRequest
	Domain    string `json:"domain"`
	Subdomain string `json:"subdomain"`
	IP        string `json:"ip"`
}

func (h *handlers) updateRecord(w http.ResponseWriter, r *http.Request) {
	var request updateRecordRequest
	err := decodeJSON(w, r, &request)
	if err != nil {
		h.handleError(w, err)
		return
	}

	err = h.scheduler.UpdateRecord(r.Context(), request.credentials(),
		request.Domain, request.Subdomain, request.IP)
	if err != nil {
		h.handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
