package probe

import (
	"errors"
	"fmt"
	"net"
	"net/netip"
	"net/url"
	"strings"
)

// Interface is a network interface of this machine with its usable addresses.
type Interface struct {
	Name string       `json:"name"`
	IPv4 []netip.Addr `json:"ipv4"`
	IPv6 []netip.Addr `json:"ipv6"`
}

// InterfaceLister lists the network interfaces usable by local probes.
type InterfaceLister interface {
	ListInterfaces() (interfaces []Interface, err error)
}

type systemInterfaces struct{}

// ListInterfaces returns the interfaces which are up, not loopback
// and have at least one address which is not link-local.
func (s *systemInterfaces) ListInterfaces() (interfaces []Interface, err error) {
	netInterfaces, err := net.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("listing network interfaces: %w", err)
	}

	interfaces = make([]Interface, 0, len(netInterfaces))
	for _, netInterface := range netInterfaces {
		if netInterface.Flags&net.FlagLoopback != 0 ||
			netInterface.Flags&net.FlagUp == 0 {
			continue
		}

		addresses, err := netInterface.Addrs()
		if err != nil {
			return nil, fmt.Errorf("listing addresses of interface %s: %w",
				netInterface.Name, err)
		}

		iface := newInterface(netInterface.Name, addresses)
		if len(iface.IPv4) == 0 && len(iface.IPv6) == 0 {
			continue
		}
		interfaces = append(interfaces, iface)
	}
	return interfaces, nil
}

func newInterface(name string, addresses []net.Addr) (iface Interface) {
	iface.Name = name
	iface.IPv4 = []netip.Addr{}
	iface.IPv6 = []netip.Addr{}
	for _, address := range addresses {
		var ip net.IP
		switch typed := address.(type) {
		case *net.IPNet:
			ip = typed.IP
		case *net.IPAddr:
			ip = typed.IP
		default:
			continue
		}

		addr, ok := netip.AddrFromSlice(ip)
		if !ok {
			continue
		}
		addr = addr.Unmap().WithZone("")
		switch {
		case addr.IsLoopback(), addr.IsUnspecified(),
			addr.IsLinkLocalUnicast(), addr.IsLinkLocalMulticast():
			continue
		case addr.Is4():
			iface.IPv4 = append(iface.IPv4, addr)
		default:
			iface.IPv6 = append(iface.IPv6, addr)
		}
	}
	return iface
}

var (
	ErrInterfaceNameEmpty     = errors.New("interface name is empty")
	ErrInterfaceNameMalformed = errors.New("interface name is malformed")
	ErrInterfaceNotFound      = errors.New("network interface not found")
	ErrIPTypeUnknown          = errors.New("IP type is unknown")
)

// makeLocalURL returns the URL identifying the local probe
// of the interface for the IP type, for example local:///eth0?ipType=ipv6.
func makeLocalURL(interfaceName string, ipType IPType) string {
	u := url.URL{
		Scheme:   "local",
		Path:     "/" + interfaceName,
		RawQuery: "ipType=" + string(ipType),
	}
	return u.String()
}

func parseLocalURL(rawURL string) (interfaceName string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing URL: %w", err)
	}
	interfaceName = strings.TrimPrefix(u.Path, "/")
	if interfaceName == "" {
		return "", fmt.Errorf("%w: %s", ErrInterfaceNameEmpty, rawURL)
	}
	return interfaceName, nil
}

// fetchLocal returns the address of the interface for the IP type.
// A public address is preferred over a private one.
func fetchLocal(lister InterfaceLister, rawURL string, ipType IPType) (
	ip netip.Addr, err error,
) {
	interfaceName, err := parseLocalURL(rawURL)
	if err != nil {
		return ip, err
	}

	interfaces, err := lister.ListInterfaces()
	if err != nil {
		return ip, err
	}

	for _, iface := range interfaces {
		if iface.Name != interfaceName {
			continue
		}
		return selectInterfaceIP(iface, ipType)
	}
	return ip, fmt.Errorf("%w: %s", ErrInterfaceNotFound, interfaceName)
}

func selectInterfaceIP(iface Interface, ipType IPType) (ip netip.Addr, err error) {
	candidates := iface.IPv4
	if ipType == IPv6 {
		candidates = iface.IPv6
	}
	if len(candidates) == 0 {
		return ip, fmt.Errorf("%w: for %s on interface %s",
			ErrNoIPFound, ipType, iface.Name)
	}

	for _, candidate := range candidates {
		if !candidate.IsPrivate() {
			return candidate, nil
		}
	}
	return candidates[0], nil
}
