// Package publicip obtains the current public IP address of the
// machine, either over HTTPS from IP echo services or over DNS
// from resolvers echoing the client address.
package publicip

import (
	"context"
	"errors"
	"net/http"
	"net/netip"
	"sync/atomic"
)

type subFetcher interface {
	IP(ctx context.Context) (publicIP netip.Addr, err error)
}

type Fetcher struct {
	fetchers []subFetcher
	// Cycling effect if both HTTP and DNS are enabled.
	counter *uint32 // 32 bit for 32 bit systems
}

type DNSSettings struct {
	Enabled   bool
	Providers []DNSProvider
}

type HTTPSettings struct {
	Enabled bool
	Client  *http.Client
	URLs    []string
}

var ErrNoFetchTypeSpecified = errors.New("at least one fetcher type must be specified")

func NewFetcher(dnsSettings DNSSettings, httpSettings HTTPSettings) (
	f *Fetcher, err error) {
	f = &Fetcher{
		counter: new(uint32),
	}

	if dnsSettings.Enabled {
		subFetcher, err := newDNSFetcher(dnsSettings.Providers)
		if err != nil {
			return nil, err
		}
		f.fetchers = append(f.fetchers, subFetcher)
	}

	if httpSettings.Enabled {
		f.fetchers = append(f.fetchers,
			newHTTPFetcher(httpSettings.Client, httpSettings.URLs))
	}

	if len(f.fetchers) == 0 {
		return nil, ErrNoFetchTypeSpecified
	}

	return f, nil
}

func (f *Fetcher) IP(ctx context.Context) (publicIP netip.Addr, err error) {
	return f.getSubFetcher().IP(ctx)
}

func (f *Fetcher) getSubFetcher() subFetcher { //nolint:ireturn
	fetcher := f.fetchers[0]
	if len(f.fetchers) > 1 { // cycling effect
		index := int(atomic.AddUint32(f.counter, 1)) % len(f.fetchers)
		fetcher = f.fetchers[index]
	}
	return fetcher
}
