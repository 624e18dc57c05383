package publicip

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_extractIP(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		body       string
		publicIP   netip.Addr
		errMessage string
	}{
		"plain_ipv4": {
			body:     "55.55.55.55",
			publicIP: netip.AddrFrom4([4]byte{55, 55, 55, 55}),
		},
		"ipv4_with_newline": {
			body:     "55.55.55.55\n",
			publicIP: netip.AddrFrom4([4]byte{55, 55, 55, 55}),
		},
		"ipv6": {
			body:     "::1",
			publicIP: netip.MustParseAddr("::1"),
		},
		"ipv4_in_html": {
			body:     "<html><body>Your IP is 55.55.55.55</body></html>",
			publicIP: netip.AddrFrom4([4]byte{55, 55, 55, 55}),
		},
		"no_ip": {
			body:       "hello world",
			errMessage: "no IP address found",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			publicIP, err := extractIP(testCase.body)

			if testCase.errMessage != "" {
				assert.EqualError(t, err, testCase.errMessage)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testCase.publicIP, publicIP)
			}
		})
	}
}

func Test_httpFetcher_IP(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("55.55.55.55\n"))
		}))
	t.Cleanup(server.Close)

	fetcher := newHTTPFetcher(server.Client(), []string{server.URL})

	publicIP, err := fetcher.IP(ctx)

	require.NoError(t, err)
	assert.Equal(t, netip.AddrFrom4([4]byte{55, 55, 55, 55}), publicIP)
}

func Test_httpFetcher_IP_bad_status(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
	t.Cleanup(server.Close)

	fetcher := newHTTPFetcher(server.Client(), []string{server.URL})

	_, err := fetcher.IP(ctx)

	assert.ErrorIs(t, err, ErrBadStatusCode)
}
