package probe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/netip"
)

var (
	ErrBadHTTPStatus = errors.New("bad HTTP status")
	ErrNoIPFound     = errors.New("no IP address found")
	ErrTooManyIPs    = errors.New("too many IP addresses")
	ErrIPMalformed   = errors.New("IP address malformed")
)

func fetchHTTP(ctx context.Context, client *http.Client, url string, ipType IPType) (
	publicIP netip.Addr, err error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return publicIP, fmt.Errorf("creating request: %w", err)
	}
	request.Header.Set("User-Agent", "curl/7.64.1")
	request.Header.Set("Accept", "text/plain")

	response, err := client.Do(request)
	if err != nil {
		return publicIP, err
	}

	b, err := io.ReadAll(response.Body)
	if err != nil {
		_ = response.Body.Close()
		return publicIP, fmt.Errorf("reading response body: %w", err)
	}

	err = response.Body.Close()
	if err != nil {
		return publicIP, fmt.Errorf("closing response body: %w", err)
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return publicIP, fmt.Errorf("%w: %d %s", ErrBadHTTPStatus,
			response.StatusCode, http.StatusText(response.StatusCode))
	}

	return extractIP(string(b), ipType)
}
