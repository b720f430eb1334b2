package probe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/netip"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jpillora/backoff"
	ddnserrors "github.com/qdm12/ddns-scheduler/internal/errors"
	"github.com/sourcegraph/conc/pool"
)

// Pool holds the configured probes and the latest result of each of them.
type Pool struct {
	// mutex guards probes and serializes snapshot replacements.
	mutex    sync.Mutex
	probes   []Probe
	snapshot atomic.Pointer[[]Result]

	httpClient  *http.Client
	dnsClient   DNSClient
	interfaces  InterfaceLister
	store       Store
	timeout     time.Duration
	cacheTTL    time.Duration
	parallelism int
	tries       int
	retryMin    time.Duration
	retryMax    time.Duration
	logger      Logger
	timeNow     func() time.Time
}

func New(settings Settings) (p *Pool, err error) {
	settings.SetDefaults()
	err = settings.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	probes := builtinProbes(*settings.DNSEnabled)
	if settings.Store != nil {
		customProbes, err := settings.Store.LoadProbes()
		if err != nil {
			return nil, fmt.Errorf("loading custom probes: %w", err)
		}
		for _, probe := range customProbes {
			if indexOf(probes, probe.URL) >= 0 {
				continue
			}
			if probe.Type != TypeLocal {
				probe.Type = TypeCustom
			}
			probes = append(probes, probe)
		}
	}

	p = &Pool{
		probes:      probes,
		httpClient:  makeLogClient(settings.Client, settings.Logger),
		dnsClient:   settings.DNSClient,
		interfaces:  settings.Interfaces,
		store:       settings.Store,
		timeout:     settings.Timeout,
		cacheTTL:    settings.CacheTTL,
		parallelism: settings.Parallelism,
		tries:       settings.Tries,
		retryMin:    settings.RetryMinDelay,
		retryMax:    settings.RetryMaxDelay,
		logger:      settings.Logger,
		timeNow:     settings.TimeNow,
	}
	p.snapshot.Store(&[]Result{})
	return p, nil
}

// List returns the configured probes, built-in probes first.
func (p *Pool) List() (probes []Probe) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	probes = make([]Probe, len(p.probes))
	copy(probes, p.probes)
	return probes
}

// Snapshot returns the last computed results without querying any probe.
func (p *Pool) Snapshot() (results []Result) {
	snapshot := *p.snapshot.Load()
	results = make([]Result, len(snapshot))
	copy(results, snapshot)
	return results
}

// RefreshAll queries every configured probe concurrently, merges
// the results into the snapshot and returns the snapshot.
// A failing probe does not prevent other probes from being queried.
// A result stored by Lookup during the refresh is kept if it is newer.
func (p *Pool) RefreshAll(ctx context.Context) (results []Result) {
	probes := p.List()
	results = make([]Result, len(probes))

	workers := pool.New().WithMaxGoroutines(p.parallelism)
	for i, probe := range probes {
		i, probe := i, probe
		workers.Go(func() {
			results[i] = p.query(ctx, probe)
		})
	}
	workers.Wait()

	p.mutex.Lock()
	defer p.mutex.Unlock()
	current := *p.snapshot.Load()
	kept := make([]Result, 0, len(p.probes))
	for _, probe := range p.probes {
		result, found := findResult(results, probe.URL)
		existing, existingFound := findResult(current, probe.URL)
		switch {
		case found && existingFound && existing.Time.After(result.Time):
			result = existing
		case !found && existingFound:
			// probe added during the refresh
			result = existing
		case !found:
			continue
		}
		kept = append(kept, result)
	}
	p.snapshot.Store(&kept)

	results = make([]Result, len(kept))
	copy(results, kept)
	return results
}

var (
	ErrURLScheme    = errors.New("URL scheme must be http or https")
	ErrURLHostEmpty = errors.New("URL host is empty")
	ErrDuplicate    = errors.New("probe already exists")
	ErrNotCustom    = errors.New("probe is not a custom or local probe")
)

// AddCustom adds a custom http or https probe. It does not query it.
func (p *Pool) AddCustom(rawURL string) (probe Probe, err error) {
	u, err := url.Parse(rawURL)
	switch {
	case err != nil:
		return probe, fmt.Errorf("%w: parsing URL: %w", ddnserrors.ErrValidation, err)
	case u.Scheme != "http" && u.Scheme != "https":
		return probe, fmt.Errorf("%w: %w: %q", ddnserrors.ErrValidation, ErrURLScheme, rawURL)
	case u.Host == "":
		return probe, fmt.Errorf("%w: %w: %q", ddnserrors.ErrValidation, ErrURLHostEmpty, rawURL)
	}

	probe = Probe{
		Name:   "custom",
		URL:    rawURL,
		Type:   TypeCustom,
		IPType: IPv4,
	}
	return p.add(probe)
}

// AddLocal adds a probe reading the address of the given network
// interface for the IP type. It does not query it.
func (p *Pool) AddLocal(interfaceName string, ipType IPType) (probe Probe, err error) {
	switch {
	case interfaceName == "":
		return probe, fmt.Errorf("%w: %w", ddnserrors.ErrValidation, ErrInterfaceNameEmpty)
	case strings.ContainsAny(interfaceName, "/?#"):
		return probe, fmt.Errorf("%w: %w: %q", ddnserrors.ErrValidation,
			ErrInterfaceNameMalformed, interfaceName)
	case ipType != IPv4 && ipType != IPv6:
		return probe, fmt.Errorf("%w: %w: %q must be one of %s, %s",
			ddnserrors.ErrValidation, ErrIPTypeUnknown, ipType, IPv4, IPv6)
	}

	probe = Probe{
		Name:   interfaceName + " (local)",
		URL:    makeLocalURL(interfaceName, ipType),
		Type:   TypeLocal,
		IPType: ipType,
	}
	return p.add(probe)
}

func (p *Pool) add(probe Probe) (added Probe, err error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if indexOf(p.probes, probe.URL) >= 0 {
		return Probe{}, fmt.Errorf("%w: %w: %s", ddnserrors.ErrValidation, ErrDuplicate, probe.URL)
	}

	if p.store != nil {
		err = p.store.PutProbe(probe)
		if err != nil {
			return Probe{}, fmt.Errorf("storing probe: %w", err)
		}
	}

	p.probes = append(p.probes, probe)
	return probe, nil
}

// Interfaces lists the network interfaces usable by local probes.
func (p *Pool) Interfaces() (interfaces []Interface, err error) {
	return p.interfaces.ListInterfaces()
}

// RemoveCustom removes a custom or local probe and its result from the snapshot.
func (p *Pool) RemoveCustom(rawURL string) (err error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	index := indexOf(p.probes, rawURL)
	switch {
	case index < 0:
		return fmt.Errorf("%w: probe %s", ddnserrors.ErrNotFound, rawURL)
	case p.probes[index].Type != TypeCustom && p.probes[index].Type != TypeLocal:
		return fmt.Errorf("%w: %w: %s", ddnserrors.ErrValidation, ErrNotCustom, rawURL)
	}

	if p.store != nil {
		err = p.store.DeleteProbe(rawURL)
		if err != nil {
			return fmt.Errorf("deleting stored probe: %w", err)
		}
	}

	p.probes = append(p.probes[:index], p.probes[index+1:]...)

	snapshot := *p.snapshot.Load()
	kept := make([]Result, 0, len(snapshot))
	for _, result := range snapshot {
		if result.URL != rawURL {
			kept = append(kept, result)
		}
	}
	p.snapshot.Store(&kept)
	return nil
}

// Lookup returns the IP address obtained from the probe with the given URL.
// A recent enough successful result is reused, otherwise only this probe
// is queried. A failure of this probe is never compensated by another probe.
func (p *Pool) Lookup(ctx context.Context, rawURL string) (ip netip.Addr, err error) {
	p.mutex.Lock()
	index := indexOf(p.probes, rawURL)
	var probe Probe
	if index >= 0 {
		probe = p.probes[index]
	}
	p.mutex.Unlock()

	if index < 0 {
		return ip, fmt.Errorf("%w: probe %s is not configured",
			ddnserrors.ErrProbeUnavailable, rawURL)
	}

	if result, ok := p.cached(rawURL); ok {
		ip, err = netip.ParseAddr(result.IP)
		if err == nil {
			return ip, nil
		}
	}

	result := p.queryWithRetries(ctx, probe)
	p.merge(result)

	if result.Status != StatusSuccess {
		return ip, fmt.Errorf("%w: %s (%s): %s",
			ddnserrors.ErrProbeUnavailable, probe.Name, probe.URL, result.Error)
	}

	ip, err = netip.ParseAddr(result.IP)
	if err != nil {
		return ip, fmt.Errorf("%w: %s: %w", ddnserrors.ErrProbeUnavailable, probe.Name, err)
	}
	return ip, nil
}

func (p *Pool) cached(rawURL string) (result Result, ok bool) {
	for _, result := range *p.snapshot.Load() {
		if result.URL != rawURL {
			continue
		}
		fresh := p.timeNow().Sub(result.Time) < p.cacheTTL
		return result, result.Status == StatusSuccess && fresh
	}
	return result, false
}

// merge replaces or appends the result in a copy of the snapshot.
func (p *Pool) merge(result Result) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if indexOf(p.probes, result.URL) < 0 {
		return // probe removed while being queried
	}

	snapshot := *p.snapshot.Load()
	merged := make([]Result, len(snapshot), len(snapshot)+1)
	copy(merged, snapshot)
	for i := range merged {
		if merged[i].URL == result.URL {
			merged[i] = result
			p.snapshot.Store(&merged)
			return
		}
	}
	merged = append(merged, result)
	p.snapshot.Store(&merged)
}

func (p *Pool) queryWithRetries(ctx context.Context, probe Probe) (result Result) {
	retryBackoff := &backoff.Backoff{
		Min:    p.retryMin,
		Max:    p.retryMax,
		Factor: 2, //nolint:gomnd
		Jitter: true,
	}

	for try := 1; ; try++ {
		result = p.query(ctx, probe)
		if result.Status == StatusSuccess {
			if try > 1 {
				p.logger.Info("probe " + probe.Name + " succeeded after " +
					strconv.Itoa(try) + " tries")
			}
			return result
		} else if try == p.tries {
			return result
		}

		delay := retryBackoff.Duration()
		p.logger.Debug("probe " + probe.Name + ": try " + strconv.Itoa(try) + " of " +
			strconv.Itoa(p.tries) + " failed: " + result.Error + "; retrying in " + delay.String())

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return result
		case <-timer.C:
		}
	}
}

// query queries the probe once within the probe timeout.
func (p *Pool) query(ctx context.Context, probe Probe) (result Result) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var ip netip.Addr
	var err error
	u, err := url.Parse(probe.URL)
	if err == nil {
		switch u.Scheme {
		case "http", "https":
			ip, err = fetchHTTP(ctx, p.httpClient, probe.URL, probe.IPType)
		case "dns":
			ip, err = fetchDNS(ctx, p.dnsClient, probe.URL, probe.IPType)
		case "local":
			ip, err = fetchLocal(p.interfaces, probe.URL, probe.IPType)
		default:
			err = fmt.Errorf("%w: %q", ErrURLScheme, u.Scheme)
		}
	}

	ipString := ""
	if err == nil {
		ipString = ip.String()
	}
	return newResult(probe, ipString, err, p.timeNow())
}

func findResult(results []Result, rawURL string) (result Result, ok bool) {
	for _, result := range results {
		if result.URL == rawURL {
			return result, true
		}
	}
	return result, false
}

func indexOf(probes []Probe, rawURL string) int {
	for i, probe := range probes {
		if probe.URL == rawURL {
			return i
		}
	}
	return -1
}
