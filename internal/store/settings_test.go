package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func uint16Ptr(n uint16) *uint16 { return &n }

func Test_MySQLSettings_validate(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		settings   MySQLSettings
		errMessage string
	}{
		"all_set": {
			settings: MySQLSettings{
				Username: "ipget",
				Password: "secret",
				Host:     "db.example.com",
				Port:     uint16Ptr(3306),
				Database: "ipget",
			},
		},
		"all_missing": {
			settings: MySQLSettings{},
			errMessage: "configuration error: IPGET_MYSQL_USERNAME, " +
				"IPGET_MYSQL_PASSWORD, IPGET_MYSQL_HOST, " +
				"IPGET_MYSQL_PORT, IPGET_MYSQL_DATABASE",
		},
		"username_and_port_missing": {
			settings: MySQLSettings{
				Password: "secret",
				Host:     "db.example.com",
				Database: "ipget",
			},
			errMessage: "configuration error: IPGET_MYSQL_USERNAME, " +
				"IPGET_MYSQL_PORT",
		},
		"empty_strings_count_as_missing": {
			settings: MySQLSettings{
				Username: "ipget",
				Password: "",
				Host:     "db.example.com",
				Port:     uint16Ptr(3306),
				Database: "",
			},
			errMessage: "configuration error: IPGET_MYSQL_PASSWORD, " +
				"IPGET_MYSQL_DATABASE",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := testCase.settings.validate()

			if testCase.errMessage != "" {
				assert.EqualError(t, err, testCase.errMessage)
				configErr := new(ConfigurationError)
				assert.ErrorAs(t, err, &configErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_SQLiteSettings_setDefaults(t *testing.T) {
	t.Parallel()

	settings := SQLiteSettings{}
	settings.setDefaults()
	assert.Equal(t, "/app/public_ip.db", settings.Path)

	settings = SQLiteSettings{Path: "/data/observations.db"}
	settings.setDefaults()
	assert.Equal(t, "/data/observations.db", settings.Path)
}
