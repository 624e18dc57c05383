package store

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/go-sql-driver/mysql"
)

// MySQL is the server backed Store variant.
type MySQL struct {
	sqlStore
}

// Same nullable ip_address laxity as the sqlite schema.
const mysqlCreateTable = `CREATE TABLE ` + tableName + ` (
	ID INT NOT NULL AUTO_INCREMENT,
	time DATETIME NOT NULL,
	ip_address VARCHAR(80),
	PRIMARY KEY (ID)
);`

// NewMySQL validates the given settings, opens a connection
// handle to the server and ensures the observations table
// exists. Connectivity errors surface from the eager table
// inspection since opening the handle alone does not dial.
func NewMySQL(settings MySQLSettings, logger Logger) (store *MySQL, err error) {
	err = settings.validate()
	if err != nil {
		return nil, err
	}

	config := mysql.NewConfig()
	config.User = settings.Username
	config.Passwd = settings.Password
	config.Net = "tcp"
	config.Addr = settings.Host + ":" + strconv.Itoa(int(*settings.Port))
	config.DBName = settings.Database
	config.ParseTime = true // scan DATETIME columns into time.Time

	logger.Debug("connecting to mysql server at " + config.Addr)
	db, err := sql.Open("mysql", config.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("opening mysql database: %w", err)
	}

	store = &MySQL{
		sqlStore: sqlStore{
			db:         db,
			descriptor: settings.Database + " on " + config.Addr,
			hasTableQuery: "SELECT COUNT(*) FROM information_schema.tables " +
				"WHERE table_schema = DATABASE() AND table_name = ?;",
			createTableQuery: mysqlCreateTable,
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
