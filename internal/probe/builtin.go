package probe

func builtinHTTPProbes() []Probe {
	return []Probe{
		{Name: "Amazon", URL: "http://checkip.amazonaws.com", IPType: IPv4},
		{Name: "icanhazip", URL: "https://ipv4.icanhazip.com", IPType: IPv4},
		{Name: "ifconfig.me", URL: "https://ifconfig.me/ip", IPType: IPv4},
		{Name: "ipinfo.io", URL: "https://ipinfo.io/ip", IPType: IPv4},
		{Name: "ident.me", URL: "https://v4.ident.me", IPType: IPv4},
		{Name: "wtfismyip", URL: "https://wtfismyip.com/text", IPType: IPv4},
		{Name: "ipip.net", URL: "https://myip.ipip.net/ip", IPType: IPv4},
		{Name: "icanhazip-v6", URL: "https://ipv6.icanhazip.com", IPType: IPv6},
		{Name: "ident.me-v6", URL: "https://v6.ident.me", IPType: IPv6},
		{Name: "ifconfig.co-v6", URL: "https://ifconfig.co/ip", IPType: IPv6},
		{Name: "ip.sb-v6", URL: "https://api-ipv6.ip.sb/ip", IPType: IPv6},
		{Name: "ipv6-test", URL: "https://v6.ipv6-test.com/api/myip.php", IPType: IPv6},
	}
}

// Only the name servers of these providers echo back the client address.
func builtinDNSProbes() []Probe {
	return []Probe{
		{Name: "cloudflare-dns", URL: "dns://1.1.1.1:53/whoami.cloudflare?type=TXT&class=CH", IPType: IPv4},
		{Name: "opendns", URL: "dns://208.67.222.222:53/myip.opendns.com?type=A", IPType: IPv4},
		{Name: "cloudflare-dns-v6", URL: "dns://[2606:4700:4700::1111]:53/whoami.cloudflare?type=TXT&class=CH", IPType: IPv6},
		{Name: "opendns-v6", URL: "dns://[2620:119:35::35]:53/myip.opendns.com?type=AAAA", IPType: IPv6},
	}
}

func builtinProbes(dnsEnabled bool) (probes []Probe) {
	probes = builtinHTTPProbes()
	if dnsEnabled {
		probes = append(probes, builtinDNSProbes()...)
	}
	for i := range probes {
		probes[i].Type = TypeBuiltin
	}
	return probes
}
