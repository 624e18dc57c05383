package publicip

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/netip"
	"regexp"
	"strings"
	"sync/atomic"
)

type httpFetcher struct {
	client *http.Client
	urls   []string
	// Cycle through the echo service URLs to spread the load
	// and avoid rate limits.
	counter *uint32
}

func defaultHTTPURLs() []string {
	return []string{
		"https://api.ipify.org",
		"https://ifconfig.me/ip",
		"https://ipinfo.io/ip",
		"https://checkip.amazonaws.com",
	}
}

func newHTTPFetcher(client *http.Client, urls []string) *httpFetcher {
	if len(urls) == 0 {
		urls = defaultHTTPURLs()
	}
	return &httpFetcher{
		client:  client,
		urls:    urls,
		counter: new(uint32),
	}
}

var (
	ErrNoIPFound      = errors.New("no IP address found")
	ErrBadStatusCode  = errors.New("bad HTTP status code")
	ErrResponseTooBig = errors.New("response is too big")
)

var ipv4Regex = regexp.MustCompile(`(([0-9]|[1-9][0-9]|1[0-9]{2}|2[0-4][0-9]|25[0-5])\.){3}(25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9][0-9]|[0-9])`) //nolint:lll

func (f *httpFetcher) IP(ctx context.Context) (publicIP netip.Addr, err error) {
	index := int(atomic.AddUint32(f.counter, 1)) % len(f.urls)
	url := f.urls[index]

	publicIP, err = fetchHTTP(ctx, f.client, url)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("fetching public IP from %s: %w", url, err)
	}
	return publicIP, nil
}

func fetchHTTP(ctx context.Context, client *http.Client, url string) (
	publicIP netip.Addr, err error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return netip.Addr{}, err
	}

	response, err := client.Do(request)
	if err != nil {
		return netip.Addr{}, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return netip.Addr{}, fmt.Errorf("%w: %d %s",
			ErrBadStatusCode, response.StatusCode, response.Status)
	}

	const maxBodySize = 64 * 1024
	b, err := io.ReadAll(io.LimitReader(response.Body, maxBodySize+1))
	if err != nil {
		return netip.Addr{}, err
	} else if len(b) > maxBodySize {
		return netip.Addr{}, fmt.Errorf("%w: more than %d bytes",
			ErrResponseTooBig, maxBodySize)
	}

	return extractIP(string(b))
}

// extractIP parses the body as a single address and falls back
// to searching for an IPv4 address, since some echo services
// wrap the address in HTML.
func extractIP(body string) (publicIP netip.Addr, err error) {
	publicIP, err = netip.ParseAddr(strings.TrimSpace(body))
	if err == nil {
		return publicIP, nil
	}

	ipv4String := ipv4Regex.FindString(body)
	if ipv4String == "" {
		return netip.Addr{}, ErrNoIPFound
	}
	return netip.ParseAddr(ipv4String)
}
