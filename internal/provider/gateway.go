package provider

import (
	"context"
	"fmt"
	"net/netip"
	"sort"
	"strings"
	"time"

	"github.com/libdns/libdns"
	ddnserrors "github.com/qdm12/ddns-scheduler/internal/errors"
)

const (
	recordTypeA    = "A"
	recordTypeAAAA = "AAAA"
)

// Gateway is a uniform synchronous interface to the supported
// DNS providers.
type Gateway struct {
	newClient func(credentials Credentials) (Client, error)
	ttl       time.Duration
	timeout   time.Duration
	logger    Logger
}

func New(settings Settings) *Gateway {
	settings.SetDefaults()
	return &Gateway{
		newClient: newLibdnsClient,
		ttl:       settings.TTL,
		timeout:   settings.Timeout,
		logger:    settings.Logger,
	}
}

func (g *Gateway) client(credentials Credentials) (client Client, err error) {
	client, err = g.newClient(credentials)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ddnserrors.ErrValidation, err)
	}
	return client, nil
}

// CreateOrUpdateRecord sets the A or AAAA record, depending on the IP
// address family, of the subdomain of domain to the given IP address.
// The subdomain "@" designates the domain itself.
func (g *Gateway) CreateOrUpdateRecord(ctx context.Context, credentials Credentials,
	domain, subdomain string, ip netip.Addr) (err error) {
	if !ip.IsValid() {
		return fmt.Errorf("%w: IP address is not set", ddnserrors.ErrValidation)
	}

	client, err := g.client(credentials)
	if err != nil {
		return err
	}

	ip = ip.Unmap()
	recordType := recordTypeA
	if ip.Is6() {
		recordType = recordTypeAAAA
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	zone := toZone(domain)
	record := libdns.Address{
		Name: subdomain,
		TTL:  g.ttl,
		IP:   ip,
	}
	g.logger.Debug(fmt.Sprintf("setting %s record %s in zone %s to %s",
		recordType, subdomain, zone, ip))
	_, err = client.SetRecords(ctx, zone, []libdns.Record{record})
	if err != nil {
		return fmt.Errorf("%w: setting %s record %s in zone %s: %w",
			ddnserrors.ErrProvider, recordType, subdomain, zone, err)
	}
	return nil
}

// DeleteRecord deletes the A and AAAA records of the subdomain of domain.
// It succeeds if no such record exists.
func (g *Gateway) DeleteRecord(ctx context.Context, credentials Credentials,
	domain, subdomain string) (err error) {
	client, err := g.client(credentials)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	zone := toZone(domain)
	records, err := client.GetRecords(ctx, zone)
	if err != nil {
		return fmt.Errorf("%w: getting records of zone %s: %w",
			ddnserrors.ErrProvider, zone, err)
	}

	var toDelete []libdns.Record
	for _, record := range records {
		rr := record.RR()
		if !sameName(rr.Name, subdomain) {
			continue
		}
		switch rr.Type {
		case recordTypeA, recordTypeAAAA:
			toDelete = append(toDelete, record)
		}
	}

	if len(toDelete) == 0 {
		g.logger.Debug(fmt.Sprintf("no address record %s found in zone %s", subdomain, zone))
		return nil
	}

	_, err = client.DeleteRecords(ctx, zone, toDelete)
	if err != nil {
		return fmt.Errorf("%w: deleting %d record(s) %s in zone %s: %w",
			ddnserrors.ErrProvider, len(toDelete), subdomain, zone, err)
	}
	return nil
}

// ListDomains returns the domain names managed by the account.
func (g *Gateway) ListDomains(ctx context.Context, credentials Credentials) (
	domains []string, err error) {
	client, err := g.client(credentials)
	if err != nil {
		return nil, err
	}

	lister, ok := client.(libdns.ZoneLister)
	if !ok {
		return nil, fmt.Errorf("%w: listing domains is not supported by %s",
			ddnserrors.ErrProvider, credentials.Provider)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	zones, err := lister.ListZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: listing zones: %w", ddnserrors.ErrProvider, err)
	}

	domains = make([]string, len(zones))
	for i, zone := range zones {
		domains[i] = strings.TrimSuffix(zone.Name, ".")
	}
	sort.Strings(domains)
	return domains, nil
}

func toZone(domain string) string {
	return strings.TrimSuffix(domain, ".") + "."
}

func sameName(recordName, subdomain string) bool {
	if recordName == "" {
		recordName = "@"
	}
	return strings.EqualFold(recordName, subdomain)
}
