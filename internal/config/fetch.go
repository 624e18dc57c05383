package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ipget/ipget/internal/publicip"
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

const all = "all"

type Fetch struct {
	// HTTP enables fetching the public IP over HTTPS
	// from IP echo services.
	HTTP *bool
	// DNS enables fetching the public IP over DNS.
	DNS *bool
	// DNSProviders are the DNS echo providers to cycle through.
	DNSProviders []publicip.DNSProvider
	// HTTPProviders are the IP echo service URLs to cycle
	// through; leaving it empty uses a built-in rotation.
	HTTPProviders []string
	// Timeout applies to a single HTTP fetch.
	Timeout time.Duration
}

var ErrFetcherInvalid = errors.New("invalid fetcher specified")

func (f *Fetch) read(r *reader.Reader) (err error) {
	fetchersCSV := r.CSV("IPGET_FETCHERS")
	for i, field := range fetchersCSV {
		switch strings.ToLower(field) {
		case all:
			f.HTTP = boolPtr(true)
			f.DNS = boolPtr(true)
		case "http":
			f.HTTP = boolPtr(true)
		case "dns":
			f.DNS = boolPtr(true)
		default:
			return fmt.Errorf("%w: %q at position %d of %d",
				ErrFetcherInvalid, field, i+1, len(fetchersCSV))
		}
	}

	dnsProvidersCSV := r.CSV("IPGET_DNS_PROVIDERS")
	for _, field := range dnsProvidersCSV {
		if field == all {
			f.DNSProviders = publicip.ListDNSProviders()
			break
		}
		f.DNSProviders = append(f.DNSProviders,
			publicip.DNSProvider(strings.ToLower(field)))
	}

	httpProvidersCSV := r.CSV("IPGET_HTTP_PROVIDERS",
		reader.ForceLowercase(false))
	for _, field := range httpProvidersCSV {
		if strings.EqualFold(field, all) {
			f.HTTPProviders = nil // built-in rotation
			break
		}
		f.HTTPProviders = append(f.HTTPProviders, field)
	}

	f.Timeout, err = r.Duration("IPGET_HTTP_TIMEOUT")
	return err
}

func (f *Fetch) setDefaults() {
	f.HTTP = gosettings.DefaultPointer(f.HTTP, true)
	f.DNS = gosettings.DefaultPointer(f.DNS, true)
	f.DNSProviders = gosettings.DefaultSlice(f.DNSProviders,
		publicip.ListDNSProviders())
	const defaultTimeout = 10 * time.Second
	f.Timeout = gosettings.DefaultComparable(f.Timeout, defaultTimeout)
}

var (
	ErrNoFetcherEnabled    = errors.New("no fetcher is enabled")
	ErrHTTPProviderInvalid = errors.New("HTTP provider URL is invalid")
)

func (f Fetch) Validate() (err error) {
	if !*f.HTTP && !*f.DNS {
		return ErrNoFetcherEnabled
	}

	for _, provider := range f.DNSProviders {
		err = publicip.ValidateDNSProvider(provider)
		if err != nil {
			return err
		}
	}

	for _, provider := range f.HTTPProviders {
		u, err := url.Parse(provider)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrHTTPProviderInvalid, provider)
		} else if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("%w: %s: scheme must be http or https",
				ErrHTTPProviderInvalid, provider)
		}
	}

	return nil
}

func (f Fetch) String() string {
	return f.toLinesNode().String()
}

func (f Fetch) toLinesNode() *gotree.Node {
	node := gotree.New("Public IP fetch")
	node.Appendf("HTTP enabled: %t", *f.HTTP)
	node.Appendf("DNS enabled: %t", *f.DNS)
	if *f.DNS {
		childNode := node.Appendf("DNS providers")
		for _, provider := range f.DNSProviders {
			childNode.Appendf(string(provider))
		}
	}
	if *f.HTTP && len(f.HTTPProviders) > 0 {
		childNode := node.Appendf("HTTP providers")
		for _, provider := range f.HTTPProviders {
			childNode.Appendf(provider)
		}
	}
	node.Appendf("HTTP timeout: %s", f.Timeout)
	return node
}

func boolPtr(b bool) *bool { return &b }
