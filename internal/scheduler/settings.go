package scheduler

import (
	"errors"
	"fmt"
	"time"

	"github.com/qdm12/gosettings"
)

type Settings struct {
	Store    Store
	Pool     IPLookuper
	Gateway  Gateway
	EventLog EventLog
	// Resolver is used to check the published record before
	// skipping an update. It can be left nil to never skip.
	Resolver Resolver
	// Notifier can be left nil.
	Notifier Notifier
	// DriftCheck allows timer cycles to skip the provider call when
	// the IP address did not change and the record resolves to it.
	// It defaults to true.
	DriftCheck *bool
	Logger     Logger
	TimeNow    func() time.Time
}

func (s *Settings) SetDefaults() {
	s.Notifier = gosettings.DefaultComparable[Notifier](s.Notifier, &noopNotifier{})
	s.DriftCheck = gosettings.DefaultPointer(s.DriftCheck, true)
	s.Logger = gosettings.DefaultComparable[Logger](s.Logger, &noopLogger{})
	if s.TimeNow == nil {
		s.TimeNow = time.Now
	}
}

var ErrDependencyMissing = errors.New("dependency is missing")

func (s Settings) Validate() (err error) {
	dependencies := []struct {
		name    string
		missing bool
	}{
		{name: "store", missing: s.Store == nil},
		{name: "pool", missing: s.Pool == nil},
		{name: "gateway", missing: s.Gateway == nil},
		{name: "event log", missing: s.EventLog == nil},
	}
	for _, dependency := range dependencies {
		if dependency.missing {
			return fmt.Errorf("%w: %s", ErrDependencyMissing, dependency.name)
		}
	}
	return nil
}

type noopNotifier struct{}

func (n *noopNotifier) Notify(_ string) {}

type noopLogger struct{}

func (l *noopLogger) Debug(_ string) {}
func (l *noopLogger) Info(_ string)  {}
func (l *noopLogger) Warn(_ string)  {}
func (l *noopLogger) Error(_ string) {}
