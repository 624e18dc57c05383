package store

import (
	"path/filepath"
	"testing"

	"github.com/qdm12/gosettings/reader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debug(_ string) {}
func (noopLogger) Info(_ string)  {}
func (noopLogger) Error(_ string) {}

func Test_New_sqlite(t *testing.T) {
	// Cannot be parallel due to t.Setenv.
	dbPath := filepath.Join(t.TempDir(), "public_ip.db")
	t.Setenv("IPGET_SQLITE_DATABASE", dbPath)

	for _, dbType := range []string{"sqlite", "SQLite", "SQLITE"} {
		store, err := New(dbType, reader.New(reader.Settings{}), noopLogger{})

		require.NoError(t, err)
		assert.Equal(t, "public_ip.db", store.String())
		assert.NoError(t, store.Close())
	}
}

func Test_New_mysql_missing_settings(t *testing.T) {
	// Cannot be parallel due to t.Setenv.
	t.Setenv("IPGET_MYSQL_USERNAME", "ipget")
	t.Setenv("IPGET_MYSQL_HOST", "db.example.com")

	store, err := New("mysql", reader.New(reader.Settings{}), noopLogger{})

	assert.Nil(t, store)
	configErr := new(ConfigurationError)
	require.ErrorAs(t, err, &configErr)
	assert.ErrorContains(t, err, "IPGET_MYSQL_PASSWORD")
	assert.ErrorContains(t, err, "IPGET_MYSQL_PORT")
	assert.ErrorContains(t, err, "IPGET_MYSQL_DATABASE")
	assert.NotContains(t, err.Error(), "IPGET_MYSQL_USERNAME")
	assert.NotContains(t, err.Error(), "IPGET_MYSQL_HOST")
}

func Test_New_unknown_type(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		dbType string
	}{
		"empty":    {dbType: ""},
		"postgres": {dbType: "postgres"},
		"garbage":  {dbType: "x y z"},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			store, err := New(testCase.dbType,
				reader.New(reader.Settings{}), noopLogger{})

			assert.Nil(t, store)
			configErr := new(ConfigurationError)
			require.ErrorAs(t, err, &configErr)
			assert.EqualError(t, err, "configuration error: IPGET_DB_TYPE")
		})
	}
}
