// Package resolver creates the DNS resolver used to check which IP
// addresses the domain of a task currently resolves to.
package resolver

import (
	"context"
	"fmt"
	"net"
	"time"
)

// New returns the system resolver if no address is set, and otherwise
// a Go resolver sending all its queries to the address.
func New(settings Settings) (resolver *net.Resolver, err error) {
	settings.setDefaults()
	err = settings.validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	if *settings.Address == "" {
		return net.DefaultResolver, nil
	}

	return &net.Resolver{
		PreferGo: true,
		Dial:     makeDial(*settings.Address, settings.Timeout),
	}, nil
}

type dialFunc func(ctx context.Context, network, address string) (net.Conn, error)

// makeDial returns a dial function ignoring the server address
// picked by the Go resolver and using the given address instead.
func makeDial(serverAddress string, timeout time.Duration) dialFunc {
	dialer := &net.Dialer{Timeout: timeout}
	return func(ctx context.Context, network, _ string) (net.Conn, error) {
		return dialer.DialContext(ctx, network, serverAddress)
	}
}
