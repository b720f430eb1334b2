package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/libdns/alidns"
	"github.com/libdns/cloudflare"
	"github.com/libdns/huaweicloud"
	"github.com/libdns/libdns"
	"github.com/libdns/tencentcloud"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Client

// Client is the subset of the libdns interfaces the gateway needs
// from a DNS provider.
type Client interface {
	GetRecords(ctx context.Context, zone string) ([]libdns.Record, error)
	SetRecords(ctx context.Context, zone string, records []libdns.Record) ([]libdns.Record, error)
	DeleteRecords(ctx context.Context, zone string, records []libdns.Record) ([]libdns.Record, error)
}

// Credentials identify an account at a DNS provider.
// They are opaque to everything except the provider client.
type Credentials struct {
	Provider  string
	SecretID  string
	SecretKey string
}

var (
	ErrSecretIDEmpty       = errors.New("secret ID is empty")
	ErrSecretKeyEmpty      = errors.New("secret key is empty")
	ErrRecordsNotSupported = errors.New("provider does not support record management")
)

func newLibdnsClient(credentials Credentials) (client Client, err error) {
	name, err := canonicalName(credentials.Provider)
	if err != nil {
		return nil, err
	}

	if credentials.SecretKey == "" {
		return nil, fmt.Errorf("%w", ErrSecretKeyEmpty)
	}

	var provider any
	var config map[string]string
	switch name {
	case TencentCloud:
		provider = new(tencentcloud.Provider)
		config = map[string]string{
			"secret_id":  credentials.SecretID,
			"secret_key": credentials.SecretKey,
		}
	case AliDNS:
		provider = new(alidns.Provider)
		config = map[string]string{
			"access_key_id":     credentials.SecretID,
			"access_key_secret": credentials.SecretKey,
		}
	case HuaweiCloud:
		provider = new(huaweicloud.Provider)
		config = map[string]string{
			"access_key_id":     credentials.SecretID,
			"secret_access_key": credentials.SecretKey,
		}
	case Cloudflare:
		provider = new(cloudflare.Provider)
		config = map[string]string{
			"api_token": credentials.SecretKey,
		}
	}

	if name != Cloudflare && credentials.SecretID == "" {
		return nil, fmt.Errorf("%w", ErrSecretIDEmpty)
	}

	b, err := json.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("encoding %s configuration: %w", name, err)
	}
	err = json.Unmarshal(b, provider)
	if err != nil {
		return nil, fmt.Errorf("decoding %s configuration: %w", name, err)
	}

	client, ok := provider.(Client)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRecordsNotSupported, name)
	}
	return client, nil
}
