package provider

import (
	"time"

	"github.com/qdm12/gosettings"
)

type Settings struct {
	// TTL is the time to live of created records.
	// It defaults to 10 minutes.
	TTL time.Duration
	// Timeout is the maximum duration of a single gateway operation.
	// It defaults to 20 seconds.
	Timeout time.Duration
	Logger  Logger
}

func (s *Settings) SetDefaults() {
	const defaultTTL = 600 * time.Second
	s.TTL = gosettings.DefaultComparable(s.TTL, defaultTTL)
	const defaultTimeout = 20 * time.Second
	s.Timeout = gosettings.DefaultComparable(s.Timeout, defaultTimeout)
	s.Logger = gosettings.DefaultComparable[Logger](s.Logger, &noopLogger{})
}

type noopLogger struct{}

func (l *noopLogger) Debug(_ string) {}
