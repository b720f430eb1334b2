package probe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/miekg/dns"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . DNSClient

// DNSClient is the DNS exchange capability needed by dns probes.
// It is implemented by *dns.Client.
type DNSClient interface {
	ExchangeContext(ctx context.Context, m *dns.Msg, a string) (r *dns.Msg, rtt time.Duration, err error)
}

var (
	ErrDNSURLMalformed      = errors.New("DNS probe URL is malformed")
	ErrAnswerNotReceived    = errors.New("response answer not received")
	ErrResponseCode         = errors.New("response code is not success")
	ErrAnswerTypeUnexpected = errors.New("answer type is not expected")
	ErrTXTRecordEmpty       = errors.New("TXT record is empty")
)

type dnsQuery struct {
	nameserver string
	fqdn       string
	qType      uint16
	qClass     uint16
}

// parseDNSURL parses URLs of the form
// dns://<nameserver[:port]>/<fqdn>?type=<TXT|A|AAAA>&class=<IN|CH>.
func parseDNSURL(rawURL string, ipType IPType) (query dnsQuery, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return query, fmt.Errorf("%w: %w", ErrDNSURLMalformed, err)
	}

	query.nameserver = u.Host
	if _, _, err := net.SplitHostPort(query.nameserver); err != nil {
		query.nameserver = net.JoinHostPort(strings.Trim(u.Host, "[]"), "53")
	}

	name := strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || name == "" {
		return query, fmt.Errorf("%w: %s", ErrDNSURLMalformed, rawURL)
	}
	query.fqdn = dns.Fqdn(name)

	query.qType = dns.TypeA
	if ipType == IPv6 {
		query.qType = dns.TypeAAAA
	}
	if typeString := u.Query().Get("type"); typeString != "" {
		qType, ok := dns.StringToType[strings.ToUpper(typeString)]
		if !ok {
			return query, fmt.Errorf("%w: unknown type %q", ErrDNSURLMalformed, typeString)
		}
		query.qType = qType
	}

	query.qClass = dns.ClassINET
	if classString := u.Query().Get("class"); classString != "" {
		qClass, ok := dns.StringToClass[strings.ToUpper(classString)]
		if !ok {
			return query, fmt.Errorf("%w: unknown class %q", ErrDNSURLMalformed, classString)
		}
		query.qClass = qClass
	}

	return query, nil
}

func fetchDNS(ctx context.Context, client DNSClient, rawURL string, ipType IPType) (
	publicIP netip.Addr, err error) {
	query, err := parseDNSURL(rawURL, ipType)
	if err != nil {
		return publicIP, err
	}

	message := new(dns.Msg)
	message.SetQuestion(query.fqdn, query.qType)
	message.Question[0].Qclass = query.qClass

	response, _, err := client.ExchangeContext(ctx, message, query.nameserver)
	if err != nil {
		return publicIP, err
	}

	if response.Rcode != dns.RcodeSuccess {
		return publicIP, fmt.Errorf("%w: %s", ErrResponseCode, dns.RcodeToString[response.Rcode])
	} else if len(response.Answer) == 0 {
		return publicIP, fmt.Errorf("%w", ErrAnswerNotReceived)
	}

	ips := make([]netip.Addr, 0, len(response.Answer))
	for _, answer := range response.Answer {
		answerIPs, err := answerToIPs(answer, ipType)
		if err != nil {
			return publicIP, fmt.Errorf("handling answer: %w", err)
		}
		for _, ip := range answerIPs {
			if !slices.Contains(ips, ip) {
				ips = append(ips, ip)
			}
		}
	}

	switch len(ips) {
	case 0:
		return publicIP, fmt.Errorf("%w: for %s", ErrNoIPFound, ipType)
	case 1:
		return ips[0], nil
	default:
		return publicIP, fmt.Errorf("%w: found %d %s addresses instead of a single one",
			ErrTooManyIPs, len(ips), ipType)
	}
}

func answerToIPs(answer dns.RR, ipType IPType) (ips []netip.Addr, err error) {
	var candidates []string
	switch record := answer.(type) {
	case *dns.TXT:
		if len(record.Txt) == 0 {
			return nil, fmt.Errorf("%w", ErrTXTRecordEmpty)
		}
		candidates = record.Txt
	case *dns.A:
		candidates = []string{record.A.String()}
	case *dns.AAAA:
		candidates = []string{record.AAAA.String()}
	default:
		return nil, fmt.Errorf("%w: %T", ErrAnswerTypeUnexpected, answer)
	}

	for _, candidate := range candidates {
		ip, err := netip.ParseAddr(strings.TrimSpace(candidate))
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrIPMalformed, candidate)
		}
		ip = ip.Unmap()
		if (ipType == IPv4) != ip.Is4() {
			continue
		}
		ips = append(ips, ip)
	}
	return ips, nil
}
