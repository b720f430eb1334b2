package probe

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/miekg/dns"
	"github.com/qdm12/gosettings"
)

type Settings struct {
	// Client is the HTTP client used by http and https probes.
	// It defaults to a client without timeout, since each
	// probe query is bounded by Timeout.
	Client *http.Client
	// DNSClient is used by dns probes and defaults to a *dns.Client.
	DNSClient DNSClient
	// Interfaces lists the network interfaces for local probes.
	// It defaults to the interfaces of this machine.
	Interfaces InterfaceLister
	// Store persists custom and local probes. It can be left nil.
	Store Store
	// DNSEnabled adds the built-in dns probes. It defaults to true.
	DNSEnabled *bool
	// Timeout bounds a single query of a probe. It defaults to 5s.
	Timeout time.Duration
	// CacheTTL is how long a successful result is reused by Lookup.
	// It defaults to 30s.
	CacheTTL time.Duration
	// Parallelism is the maximum number of probes queried
	// concurrently by RefreshAll. It defaults to 10.
	Parallelism int
	// Tries is the number of attempts of a probe by Lookup.
	// It defaults to 3.
	Tries int
	// RetryMinDelay and RetryMaxDelay bound the backoff delay
	// between two attempts. They default to 200ms and 2s.
	RetryMinDelay time.Duration
	RetryMaxDelay time.Duration
	Logger        Logger
	TimeNow       func() time.Time
}

func (s *Settings) SetDefaults() {
	if s.Client == nil {
		s.Client = &http.Client{}
	}
	s.DNSClient = gosettings.DefaultComparable[DNSClient](s.DNSClient, &dns.Client{Net: "udp"})
	s.Interfaces = gosettings.DefaultComparable[InterfaceLister](s.Interfaces, &systemInterfaces{})
	s.DNSEnabled = gosettings.DefaultPointer(s.DNSEnabled, true)
	const defaultTimeout = 5 * time.Second
	s.Timeout = gosettings.DefaultComparable(s.Timeout, defaultTimeout)
	const defaultCacheTTL = 30 * time.Second
	s.CacheTTL = gosettings.DefaultComparable(s.CacheTTL, defaultCacheTTL)
	const defaultParallelism = 10
	s.Parallelism = gosettings.DefaultComparable(s.Parallelism, defaultParallelism)
	const defaultTries = 3
	s.Tries = gosettings.DefaultComparable(s.Tries, defaultTries)
	const defaultRetryMinDelay, defaultRetryMaxDelay = 200 * time.Millisecond, 2 * time.Second
	s.RetryMinDelay = gosettings.DefaultComparable(s.RetryMinDelay, defaultRetryMinDelay)
	s.RetryMaxDelay = gosettings.DefaultComparable(s.RetryMaxDelay, defaultRetryMaxDelay)
	s.Logger = gosettings.DefaultComparable[Logger](s.Logger, &noopLogger{})
	if s.TimeNow == nil {
		s.TimeNow = time.Now
	}
}

var (
	ErrParallelismTooLow = errors.New("parallelism is too low")
	ErrTriesTooLow       = errors.New("number of tries is too low")
	ErrRetryDelays       = errors.New("retry delays are not valid")
)

func (s Settings) Validate() (err error) {
	switch {
	case s.Parallelism < 1:
		return fmt.Errorf("%w: %d must be at least 1", ErrParallelismTooLow, s.Parallelism)
	case s.Tries < 1:
		return fmt.Errorf("%w: %d must be at least 1", ErrTriesTooLow, s.Tries)
	case s.RetryMinDelay > s.RetryMaxDelay:
		return fmt.Errorf("%w: minimum %s is larger than maximum %s",
			ErrRetryDelays, s.RetryMinDelay, s.RetryMaxDelay)
	}
	return nil
}

type noopLogger struct{}

func (l *noopLogger) Debug(_ string) {}
func (l *noopLogger) Info(_ string)  {}
func (l *noopLogger) Warn(_ string)  {}
func (l *noopLogger) Error(_ string) {}
