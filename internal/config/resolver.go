package config

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

// Resolver configures the DNS resolver used for drift checks
// and for the health of tasks.
type Resolver struct {
	// Address is the host:port of the DNS server. The empty
	// string selects the system resolver.
	Address *string
	Timeout time.Duration
}

func (r *Resolver) setDefaults() {
	r.Address = gosettings.DefaultPointer(r.Address, "")
	const defaultTimeout = 5 * time.Second
	r.Timeout = gosettings.DefaultComparable(r.Timeout, defaultTimeout)
}

var (
	ErrAddressHostEmpty = errors.New("address host is empty")
	ErrAddressPortEmpty = errors.New("address port is empty")
	ErrTimeoutTooLow    = errors.New("timeout is too low")
)

func (r Resolver) Validate() (err error) {
	const minTimeout = 100 * time.Millisecond
	if r.Timeout < minTimeout {
		return fmt.Errorf("%w: %s must be at least %s",
			ErrTimeoutTooLow, r.Timeout, minTimeout)
	}

	if *r.Address == "" {
		return nil
	}

	host, port, err := net.SplitHostPort(*r.Address)
	switch {
	case err != nil:
		return fmt.Errorf("address: %w", err)
	case host == "":
		return fmt.Errorf("%w: %s", ErrAddressHostEmpty, *r.Address)
	case port == "":
		return fmt.Errorf("%w: %s", ErrAddressPortEmpty, *r.Address)
	}
	return nil
}

func (r Resolver) String() string {
	return r.toLinesNode().String()
}

func (r Resolver) toLinesNode() *gotree.Node {
	node := gotree.New("Resolver")
	if *r.Address == "" {
		node.Appendf("Address: system resolver")
	} else {
		node.Appendf("Address: %s", *r.Address)
	}
	node.Appendf("Timeout: %s", r.Timeout)
	return node
}

func (r *Resolver) read(reader *reader.Reader) (err error) {
	address := reader.Get("RESOLVER_ADDRESS")
	if address != nil {
		withPort := withDefaultDNSPort(*address)
		address = &withPort
	}
	r.Address = address

	r.Timeout, err = reader.Duration("RESOLVER_TIMEOUT")
	return err
}

// withDefaultDNSPort appends port 53 to an address without port.
func withDefaultDNSPort(address string) string {
	if address == "" {
		return address
	}
	_, _, err := net.SplitHostPort(address)
	if err == nil {
		return address
	}
	return net.JoinHostPort(address, "53")
}
