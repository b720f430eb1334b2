package probe

import (
	"time"
)

type Type string

const (
	TypeBuiltin Type = "builtin"
	TypeCustom  Type = "custom"
	TypeLocal   Type = "local"
)

type IPType string

const (
	IPv4 IPType = "ipv4"
	IPv6 IPType = "ipv6"
)

// Probe is an IP detection endpoint. Its URL identifies it and
// uses one of the http, https, dns or local schemes.
type Probe struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Type   Type   `json:"type"`
	IPType IPType `json:"ipType"`
}

type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Result is the outcome of querying a probe once.
type Result struct {
	Name   string    `json:"name"`
	URL    string    `json:"url"`
	Type   Type      `json:"type"`
	IPType IPType    `json:"ipType"`
	Status Status    `json:"status"`
	IP     string    `json:"ip"`
	Error  string    `json:"error,omitempty"`
	Time   time.Time `json:"time"`
}

func newResult(probe Probe, ip string, err error, now time.Time) Result {
	result := Result{
		Name:   probe.Name,
		URL:    probe.URL,
		Type:   probe.Type,
		IPType: probe.IPType,
		Status: StatusSuccess,
		IP:     ip,
		Time:   now,
	}
	if err != nil {
		result.Status = StatusFailed
		result.IP = ""
		result.Error = err.Error()
	}
	return result
}
