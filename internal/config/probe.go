package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Probe struct {
	Timeout       time.Duration
	CacheTTL      time.Duration
	Parallelism   int
	RefreshPeriod *time.Duration
	DNSEnabled    *bool
}

func (p *Probe) setDefaults() {
	const defaultTimeout = 5 * time.Second
	p.Timeout = gosettings.DefaultComparable(p.Timeout, defaultTimeout)
	const defaultCacheTTL = 30 * time.Second
	p.CacheTTL = gosettings.DefaultComparable(p.CacheTTL, defaultCacheTTL)
	const defaultParallelism = 10
	p.Parallelism = gosettings.DefaultComparable(p.Parallelism, defaultParallelism)
	p.RefreshPeriod = gosettings.DefaultPointer(p.RefreshPeriod, 0)
	p.DNSEnabled = gosettings.DefaultPointer(p.DNSEnabled, true)
}

var (
	ErrParallelismTooLow   = errors.New("parallelism is too low")
	ErrRefreshPeriodTooLow = errors.New("refresh period is too low")
)

func (p Probe) Validate() (err error) {
	const minTimeout = 100 * time.Millisecond
	if p.Timeout < minTimeout {
		return fmt.Errorf("%w: %s is below the minimum %s",
			ErrTimeoutTooLow, p.Timeout, minTimeout)
	}

	if p.Parallelism < 1 {
		return fmt.Errorf("%w: %d must be at least 1",
			ErrParallelismTooLow, p.Parallelism)
	}

	const minRefreshPeriod = 10 * time.Second
	if *p.RefreshPeriod != 0 && *p.RefreshPeriod < minRefreshPeriod {
		return fmt.Errorf("%w: %s is below the minimum %s",
			ErrRefreshPeriodTooLow, *p.RefreshPeriod, minRefreshPeriod)
	}

	return nil
}

func (p Probe) String() string {
	return p.toLinesNode().String()
}

func (p Probe) toLinesNode() *gotree.Node {
	node := gotree.New("IP probes")
	node.Appendf("Timeout: %s", p.Timeout)
	node.Appendf("Cache TTL: %s", p.CacheTTL)
	node.Appendf("Parallelism: %d", p.Parallelism)
	if *p.RefreshPeriod == 0 {
		node.Appendf("Periodic refresh: disabled")
	} else {
		node.Appendf("Periodic refresh: every %s", *p.RefreshPeriod)
	}
	node.Appendf("DNS probes: %s", gosettings.BoolToYesNo(p.DNSEnabled))
	return node
}

func (p *Probe) read(r *reader.Reader, warner Warner) (err error) {
	p.Timeout, err = r.Duration("PROBE_TIMEOUT")
	if err != nil {
		return err
	}

	p.CacheTTL, err = r.Duration("PROBE_CACHE_TTL")
	if err != nil {
		return err
	}

	p.Parallelism, err = r.Int("PROBE_PARALLELISM")
	if err != nil {
		return err
	}

	p.RefreshPeriod, err = readRefreshPeriod(r, warner)
	if err != nil {
		return err
	}

	p.DNSEnabled, err = r.BoolPtr("PROBE_DNS_ENABLED")
	return err
}

func readRefreshPeriod(r *reader.Reader, warner Warner) (period *time.Duration, err error) {
	period, err = r.DurationPtr("PROBE_REFRESH_PERIOD")
	if err != nil || period != nil {
		return period, err
	}

	delayString := r.Get("DELAY")
	if delayString == nil {
		return nil, nil
	}
	warnDeprecated(warner, "DELAY", "PROBE_REFRESH_PERIOD")

	// DELAY used to be an integer number of seconds
	delaySeconds, err := strconv.Atoi(*delayString)
	if err == nil {
		delay := time.Duration(delaySeconds) * time.Second
		return &delay, nil
	}

	delay, err := time.ParseDuration(*delayString)
	if err != nil {
		return nil, fmt.Errorf("DELAY: %w", err)
	}
	return &delay, nil
}
