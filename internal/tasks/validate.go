package tasks

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strings"

	ddnserrors "github.com/qdm12/ddns-scheduler/internal/errors"
)

var (
	ErrIDEmpty             = errors.New("task ID is empty")
	ErrFullDomainMismatch  = errors.New("full domain does not match")
	ErrStatusUnknown       = errors.New("task status is unknown")
	ErrIntervalNotPositive = errors.New("interval is not a positive number of seconds")
	ErrIntervalTooLarge    = errors.New("interval is too large")
	ErrIPServiceURLEmpty   = errors.New("IP service URL is empty")
	ErrIPServiceURLScheme  = errors.New("IP service URL scheme is not supported")
	ErrIPServiceURLHost    = errors.New("IP service URL host is empty")
	// ErrIPServiceURLInterface is for local URLs without interface name.
	ErrIPServiceURLInterface = errors.New("IP service URL interface is empty")
)

// ValidateEdit checks the parameters a task edit can change.
func ValidateEdit(interval int, ipServiceURL string) (err error) {
	err = validateOperational(interval, ipServiceURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ddnserrors.ErrValidation, err)
	}
	return nil
}

func validateOperational(interval int, ipServiceURL string) (err error) {
	const maxInterval = math.MaxInt32
	switch {
	case interval <= 0:
		return fmt.Errorf("%w: %d", ErrIntervalNotPositive, interval)
	case interval > maxInterval:
		return fmt.Errorf("%w: %d seconds exceeds the maximum of %d seconds",
			ErrIntervalTooLarge, interval, maxInterval)
	case ipServiceURL == "":
		return fmt.Errorf("%w", ErrIPServiceURLEmpty)
	}

	u, err := url.Parse(ipServiceURL)
	if err != nil {
		return fmt.Errorf("parsing IP service URL: %w", err)
	}

	switch u.Scheme {
	case "http", "https", "dns":
		if u.Host == "" {
			return fmt.Errorf("%w: %s", ErrIPServiceURLHost, ipServiceURL)
		}
	case "local":
		if strings.Trim(u.Path, "/") == "" {
			return fmt.Errorf("%w: %s", ErrIPServiceURLInterface, ipServiceURL)
		}
	default:
		return fmt.Errorf("%w: %q", ErrIPServiceURLScheme, u.Scheme)
	}

	return nil
}
