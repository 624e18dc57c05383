package config

import (
	"testing"
	"time"

	"github.com/ipget/ipget/internal/publicip"
	"github.com/stretchr/testify/assert"
)

func Test_Fetch_Validate(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		fetch      Fetch
		errMessage string
	}{
		"defaults": {
			fetch: Fetch{
				HTTP:         boolPtr(true),
				DNS:          boolPtr(true),
				DNSProviders: publicip.ListDNSProviders(),
				Timeout:      10 * time.Second,
			},
		},
		"nothing_enabled": {
			fetch: Fetch{
				HTTP: boolPtr(false),
				DNS:  boolPtr(false),
			},
			errMessage: "no fetcher is enabled",
		},
		"bad_dns_provider": {
			fetch: Fetch{
				HTTP:         boolPtr(false),
				DNS:          boolPtr(true),
				DNSProviders: []publicip.DNSProvider{"google"},
			},
			errMessage: "unknown public IP echo DNS provider: google",
		},
		"custom_http_provider": {
			fetch: Fetch{
				HTTP:          boolPtr(true),
				DNS:           boolPtr(false),
				HTTPProviders: []string{"https://ip.example.com"},
			},
		},
		"bad_http_provider_scheme": {
			fetch: Fetch{
				HTTP:          boolPtr(true),
				DNS:           boolPtr(false),
				HTTPProviders: []string{"ftp://ip.example.com"},
			},
			errMessage: "HTTP provider URL is invalid: " +
				"ftp://ip.example.com: scheme must be http or https",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := testCase.fetch.Validate()

			if testCase.errMessage != "" {
				assert.EqualError(t, err, testCase.errMessage)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_Tracker_Validate(t *testing.T) {
	t.Parallel()

	tracker := Tracker{Period: time.Second}
	err := tracker.Validate()
	assert.ErrorIs(t, err, ErrPeriodTooSmall)

	tracker = Tracker{Period: time.Minute}
	assert.NoError(t, tracker.Validate())
}
