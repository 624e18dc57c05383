package store

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // sqlite3 database/sql driver
)

// SQLite is the file backed Store variant.
type SQLite struct {
	sqlStore
}

// The ip_address column stays nullable on purpose: the domain
// treats it as required but existing rows may carry a NULL, so
// the schema laxity is preserved rather than silently tightened.
const sqliteCreateTable = `CREATE TABLE ` + tableName + ` (
	ID INTEGER PRIMARY KEY AUTOINCREMENT,
	time DATETIME NOT NULL,
	ip_address VARCHAR(80)
);`

// NewSQLite opens the database file at the settings path,
// defaulting it if empty, and ensures the observations table
// exists.
func NewSQLite(settings SQLiteSettings, logger Logger) (store *SQLite, err error) {
	settings.setDefaults()

	logger.Debug("opening sqlite database file " + settings.Path)
	db, err := sql.Open("sqlite3", settings.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	store = &SQLite{
		sqlStore: sqlStore{
			db:         db,
			descriptor: filepath.Base(settings.Path),
			hasTableQuery: "SELECT COUNT(*) FROM sqlite_master " +
				"WHERE type = 'table' AND name = ?;",
			createTableQuery: sqliteCreateTable,
			logger:           logger,
		},
	}

	err = store.ensureTable()
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}
