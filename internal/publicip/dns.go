package publicip

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"sync/atomic"
	"time"

	"github.com/miekg/dns"
)

type DNSProvider string

const (
	Cloudflare DNSProvider = "cloudflare"
	OpenDNS    DNSProvider = "opendns"
)

func ListDNSProviders() []DNSProvider {
	return []DNSProvider{Cloudflare, OpenDNS}
}

var ErrUnknownDNSProvider = errors.New("unknown public IP echo DNS provider")

func ValidateDNSProvider(provider DNSProvider) error {
	for _, possible := range ListDNSProviders() {
		if provider == possible {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownDNSProvider, provider)
}

type dnsProviderData struct {
	nameserver string
	fqdn       string
	class      dns.Class
	qType      dns.Type
}

func (p DNSProvider) data() dnsProviderData {
	switch p {
	case Cloudflare:
		return dnsProviderData{
			nameserver: "1.1.1.1:53",
			fqdn:       "whoami.cloudflare.",
			class:      dns.ClassCHAOS,
			qType:      dns.Type(dns.TypeTXT),
		}
	case OpenDNS:
		return dnsProviderData{
			nameserver: "208.67.222.222:53",
			fqdn:       "myip.opendns.com.",
			class:      dns.ClassINET,
			qType:      dns.Type(dns.TypeANY),
		}
	}
	panic(`provider unknown: "` + string(p) + `"`)
}

// exchanger is implemented by *dns.Client and mocked in tests.
type exchanger interface {
	ExchangeContext(ctx context.Context, m *dns.Msg, address string) (
		r *dns.Msg, rtt time.Duration, err error)
}

type dnsFetcher struct {
	client    exchanger
	providers []DNSProvider
	counter   *uint32
}

func newDNSFetcher(providers []DNSProvider) (f *dnsFetcher, err error) {
	if len(providers) == 0 {
		providers = ListDNSProviders()
	}
	for _, provider := range providers {
		err = ValidateDNSProvider(provider)
		if err != nil {
			return nil, err
		}
	}

	const timeout = 3 * time.Second
	return &dnsFetcher{
		client:    &dns.Client{Timeout: timeout},
		providers: providers,
		counter:   new(uint32),
	}, nil
}

func (f *dnsFetcher) IP(ctx context.Context) (publicIP netip.Addr, err error) {
	index := int(atomic.AddUint32(f.counter, 1)) % len(f.providers)
	provider := f.providers[index]

	publicIP, err = fetchDNS(ctx, f.client, provider.data())
	if err != nil {
		return netip.Addr{}, fmt.Errorf("fetching public IP from %s: %w",
			provider, err)
	}
	return publicIP, nil
}

func fetchDNS(ctx context.Context, client exchanger, data dnsProviderData) (
	publicIP netip.Addr, err error) {
	message := new(dns.Msg)
	message.SetQuestion(data.fqdn, uint16(data.qType))
	message.Question[0].Qclass = uint16(data.class)

	response, _, err := client.ExchangeContext(ctx, message, data.nameserver)
	if err != nil {
		return netip.Addr{}, err
	}

	for _, rr := range response.Answer {
		switch typed := rr.(type) {
		case *dns.TXT:
			for _, txt := range typed.Txt {
				publicIP, err = netip.ParseAddr(txt)
				if err == nil {
					return publicIP, nil
				}
			}
		case *dns.A:
			return netip.AddrFrom4([4]byte(typed.A.To4())), nil
		case *dns.AAAA:
			return netip.AddrFrom16([16]byte(typed.AAAA.To16())), nil
		}
	}

	return netip.Addr{}, fmt.Errorf("%w: in %d answer records",
		ErrNoIPFound, len(response.Answer))
}
