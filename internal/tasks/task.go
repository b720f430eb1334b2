package tasks

import (
	"fmt"
	"time"

	ddnserrors "github.com/qdm12/ddns-scheduler/internal/errors"
	"github.com/qdm12/ddns-scheduler/internal/provider"
)

type Status string

const (
	StatusStopped Status = "stopped"
	StatusRunning Status = "running"
	StatusError   Status = "error"
)

// Task binds a domain record to a provider account, an IP probe
// and a refresh interval in seconds.
type Task struct {
	ID             string    `json:"id"`
	Provider       string    `json:"provider"`
	SecretID       string    `json:"secretId"`
	SecretKey      string    `json:"secretKey"`
	Domain         string    `json:"domain"`
	Subdomain      string    `json:"subdomain"`
	FullDomain     string    `json:"fullDomain"`
	IPServiceURL   string    `json:"ipServiceUrl"`
	IPServiceName  string    `json:"ipServiceName"`
	Interval       int       `json:"interval"`
	Enabled        bool      `json:"enabled"`
	Status         Status    `json:"status"`
	LastIP         string    `json:"lastIp"`
	LastUpdateTime time.Time `json:"lastUpdateTime"`
	LastError      string    `json:"lastError"`
	CreatedAt      time.Time `json:"createdAt"`
}

type Settings struct {
	Provider      string
	SecretID      string
	SecretKey     string
	Domain        string
	Subdomain     string
	IPServiceURL  string
	IPServiceName string
	Interval      int
}

// Validate returns an error wrapping the validation error
// sentinel if any of the settings is not valid.
func (s Settings) Validate() (err error) {
	err = s.validate()
	if err != nil {
		return fmt.Errorf("%w: %w", ddnserrors.ErrValidation, err)
	}
	return nil
}

func (s Settings) validate() (err error) {
	err = provider.ValidateName(s.Provider)
	if err != nil {
		return err
	}

	err = CheckDomain(s.Domain)
	if err != nil {
		return fmt.Errorf("domain: %w", err)
	}

	err = CheckSubdomain(s.Subdomain)
	if err != nil {
		return fmt.Errorf("subdomain: %w", err)
	}

	return validateOperational(s.Interval, s.IPServiceURL)
}

func (t Task) Period() time.Duration {
	return time.Duration(t.Interval) * time.Second
}

func (t Task) Credentials() provider.Credentials {
	return provider.Credentials{
		Provider:  t.Provider,
		SecretID:  t.SecretID,
		SecretKey: t.SecretKey,
	}
}

func (t Task) String() string {
	return fmt.Sprintf("%s (%s, %s)", t.FullDomain, t.ID, t.Provider)
}

// StatusAfterSuccess returns the status a task takes once
// a cycle succeeded, depending on whether it is enabled.
func (t Task) StatusAfterSuccess() Status {
	if t.Enabled {
		return StatusRunning
	}
	return StatusStopped
}

// validate checks a task read back from storage.
func (t Task) validate() (err error) {
	switch {
	case t.ID == "":
		return fmt.Errorf("%w", ErrIDEmpty)
	case t.FullDomain != BuildDomainName(t.Subdomain, t.Domain):
		return fmt.Errorf("%w: %q does not match subdomain %q and domain %q",
			ErrFullDomainMismatch, t.FullDomain, t.Subdomain, t.Domain)
	}

	switch t.Status {
	case StatusStopped, StatusRunning, StatusError:
	default:
		return fmt.Errorf("%w: %q", ErrStatusUnknown, t.Status)
	}

	settings := Settings{
		Provider:      t.Provider,
		SecretID:      t.SecretID,
		SecretKey:     t.SecretKey,
		Domain:        t.Domain,
		Subdomain:     t.Subdomain,
		IPServiceURL:  t.IPServiceURL,
		IPServiceName: t.IPServiceName,
		Interval:      t.Interval,
	}
	return settings.validate()
}
