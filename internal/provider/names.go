package provider

import (
	"errors"
	"fmt"
	"strings"
)

const (
	TencentCloud = "tencentcloud"
	AliDNS       = "alidns"
	Cloudflare   = "cloudflare"
	HuaweiCloud  = "huaweicloud"
)

func ListNames() []string {
	return []string{
		TencentCloud,
		AliDNS,
		Cloudflare,
		HuaweiCloud,
	}
}

var ErrNameUnknown = errors.New("DNS provider is unknown")

// ValidateName returns an error if the provider name is not
// one of the supported providers or one of their aliases.
func ValidateName(name string) (err error) {
	_, err = canonicalName(name)
	return err
}

func canonicalName(name string) (canonical string, err error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "dnspod", "tencent":
		return TencentCloud, nil
	case "aliyun":
		return AliDNS, nil
	case "huawei":
		return HuaweiCloud, nil
	}

	for _, known := range ListNames() {
		if name == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: %q must be one of %s",
		ErrNameUnknown, name, strings.Join(ListNames(), ", "))
}
