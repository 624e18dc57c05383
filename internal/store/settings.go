package store

import (
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

// MySQLSettings are the connection settings for the server
// backed variant. Every field is required.
type MySQLSettings struct {
	Username string
	Password string
	Host     string
	Port     *uint16
	Database string
}

func (s *MySQLSettings) read(r *reader.Reader) (err error) {
	s.Username = r.String("IPGET_MYSQL_USERNAME", reader.ForceLowercase(false))
	s.Password = r.String("IPGET_MYSQL_PASSWORD", reader.ForceLowercase(false))
	s.Host = r.String("IPGET_MYSQL_HOST", reader.ForceLowercase(false))
	s.Port, err = r.Uint16Ptr("IPGET_MYSQL_PORT")
	if err != nil {
		return err
	}
	s.Database = r.String("IPGET_MYSQL_DATABASE", reader.ForceLowercase(false))
	return nil
}

// validate returns a *ConfigurationError listing every missing
// required setting, not only the first one found.
func (s MySQLSettings) validate() (err error) {
	requiredSettings := []struct {
		set    bool
		envKey string
	}{
		{s.Username != "", "IPGET_MYSQL_USERNAME"},
		{s.Password != "", "IPGET_MYSQL_PASSWORD"},
		{s.Host != "", "IPGET_MYSQL_HOST"},
		{s.Port != nil, "IPGET_MYSQL_PORT"},
		{s.Database != "", "IPGET_MYSQL_DATABASE"},
	}

	var missingSettings []string
	for _, required := range requiredSettings {
		if !required.set {
			missingSettings = append(missingSettings, required.envKey)
		}
	}
	if len(missingSettings) > 0 {
		return &ConfigurationError{Settings: missingSettings}
	}
	return nil
}

func (s MySQLSettings) String() string {
	return s.toLinesNode().String()
}

func (s MySQLSettings) toLinesNode() *gotree.Node {
	node := gotree.New("MySQL database")
	node.Appendf("Host: %s", s.Host)
	if s.Port != nil {
		node.Appendf("Port: %d", *s.Port)
	}
	node.Appendf("Username: %s", s.Username)
	node.Appendf("Database: %s", s.Database)
	return node
}

// SQLiteSettings are the settings for the file backed variant.
// The path cannot be missing since it defaults to a well known
// location.
type SQLiteSettings struct {
	Path string
}

func (s *SQLiteSettings) read(r *reader.Reader) {
	s.Path = r.String("IPGET_SQLITE_DATABASE", reader.ForceLowercase(false))
}

func (s *SQLiteSettings) setDefaults() {
	s.Path = gosettings.DefaultComparable(s.Path, "/app/public_ip.db")
}

func (s SQLiteSettings) String() string {
	return s.toLinesNode().String()
}

func (s SQLiteSettings) toLinesNode() *gotree.Node {
	node := gotree.New("SQLite database")
	node.Appendf("File path: %s", s.Path)
	return node
}
