package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// sqlStore holds the database/sql logic shared by both backends.
// Each backend provides its opened handle, a human readable
// descriptor of the target, its table inspection query and its
// CREATE TABLE statement.
type sqlStore struct {
	db               *sql.DB
	descriptor       string
	hasTableQuery    string
	createTableQuery string
	createdTable     bool
	logger           Logger
}

// String returns the human readable descriptor of the
// storage target, for logs only.
func (s *sqlStore) String() string {
	return s.descriptor
}

func (s *sqlStore) Close() error {
	return s.db.Close()
}

// CreatedTable returns true if the construction of the store
// created the observations table, and false if it already existed.
func (s *sqlStore) CreatedTable() bool {
	return s.createdTable
}

// ensureTable creates the observations table if an inspection
// shows it absent. Checked, not forced, so construction stays
// idempotent across process restarts.
func (s *sqlStore) ensureTable() (err error) {
	var count int
	err = s.db.QueryRow(s.hasTableQuery, tableName).Scan(&count)
	if err != nil {
		return fmt.Errorf("inspecting table %s: %w", tableName, err)
	}

	if count > 0 {
		s.logger.Debug("table " + tableName + " already exists in " + s.descriptor)
		return nil
	}

	s.logger.Info("table " + tableName + " does not exist, creating")
	_, err = s.db.Exec(s.createTableQuery)
	if err != nil {
		return fmt.Errorf("creating table %s: %w", tableName, err)
	}
	s.createdTable = true
	return nil
}

func (s *sqlStore) Write(ctx context.Context, t time.Time, address string) (
	id int64, err error) {
	s.logger.Info("adding row to table " + tableName + " in " + s.descriptor)
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		"INSERT INTO "+tableName+" (time, ip_address) VALUES (?, ?);",
		t, address)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("inserting row: %w", err)
	}

	id, err = result.LastInsertId()
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("getting new row id: %w", err)
	}

	err = tx.Commit()
	if err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}

	s.logger.Debug("committed new row with id " + strconv.FormatInt(id, 10))
	return id, nil
}

func (s *sqlStore) ReadLatest(ctx context.Context) (record *Record, err error) {
	s.logger.Debug("retrieving most recent IP from " + s.descriptor)
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}

	row := tx.QueryRowContext(ctx,
		"SELECT ID, time, ip_address FROM "+tableName+
			" ORDER BY time DESC LIMIT 1;")

	record = new(Record)
	// ip_address is a nullable column, see the schema note
	// above sqliteCreateTable.
	var address sql.NullString
	err = row.Scan(&record.ID, &record.Time, &address)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		err = tx.Commit()
		if err != nil {
			return nil, fmt.Errorf("committing transaction: %w", err)
		}
		return nil, nil
	case err != nil:
		_ = tx.Rollback()
		return nil, fmt.Errorf("selecting latest row: %w", err)
	}
	record.Address = address.String

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}
	return record, nil
}
