package probe

import (
	"fmt"
	"net/netip"
	"strings"
)

// extractIP finds the single distinct IP address of the given type in s.
// Addresses must be separated by characters outside the address alphabet.
func extractIP(s string, ipType IPType) (ip netip.Addr, err error) {
	ips := extractIPs(s, ipType)
	switch len(ips) {
	case 0:
		return netip.Addr{}, fmt.Errorf("%w: for %s", ErrNoIPFound, ipType)
	case 1:
		return ips[0], nil
	default:
		return netip.Addr{}, fmt.Errorf("%w: found %d %s addresses instead of a single one",
			ErrTooManyIPs, len(ips), ipType)
	}
}

func extractIPs(text string, ipType IPType) (ips []netip.Addr) {
	alphabet := "0123456789."
	if ipType == IPv6 {
		alphabet = "0123456789abcdefABCDEF:"
	}

	seen := make(map[netip.Addr]struct{})
	for _, candidate := range strings.FieldsFunc(text, func(r rune) bool {
		return !strings.ContainsRune(alphabet, r)
	}) {
		ip, err := netip.ParseAddr(candidate)
		if err != nil {
			continue
		}
		ip = ip.Unmap()
		if ip.Is4() != (ipType == IPv4) {
			continue
		}
		if _, ok := seen[ip]; ok {
			continue
		}
		seen[ip] = struct{}{}
		ips = append(ips, ip)
	}
	return ips
}
