// Package store persists public IP observations to a relational
// backend, either a local SQLite file or a MySQL server, and reads
// the most recent observation back.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/qdm12/gosettings/reader"
)

const tableName = "public_ip_address"

type Store interface {
	fmt.Stringer
	// Write inserts one observation row and returns its
	// newly assigned id.
	Write(ctx context.Context, t time.Time, address string) (id int64, err error)
	// ReadLatest returns the row with the greatest time,
	// or nil if the table is empty.
	ReadLatest(ctx context.Context) (record *Record, err error)
	Close() error
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Error(s string)
}

// New reads the settings for the backend matching dbType and
// constructs the corresponding store, creating the observations
// table if it does not exist yet. dbType is case insensitive and
// must be "mysql" or "sqlite"; any other value, including the
// empty string, is a configuration error naming IPGET_DB_TYPE.
// Configuration errors are logged here and returned unchanged.
func New(dbType string, reader *reader.Reader, logger Logger) (
	store Store, err error) {
	logger.Debug("requested database type is " + strings.ToLower(dbType))
	switch strings.ToLower(dbType) {
	case "mysql":
		var settings MySQLSettings
		err = settings.read(reader)
		if err != nil {
			return nil, fmt.Errorf("reading mysql settings: %w", err)
		}
		store, err = NewMySQL(settings, logger)
	case "sqlite":
		var settings SQLiteSettings
		settings.read(reader)
		store, err = NewSQLite(settings, logger)
	default:
		err = &ConfigurationError{Settings: []string{"IPGET_DB_TYPE"}}
	}

	configErr := new(ConfigurationError)
	if errors.As(err, &configErr) {
		logger.Error("creating " + strings.ToLower(dbType) +
			" store: " + configErr.Error())
	}

	return store, err
}
