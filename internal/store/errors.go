package store

import "strings"

// ConfigurationError is returned when required settings are
// missing or when the backend type selector is not recognized.
// Its message lists every offending setting name, comma separated.
type ConfigurationError struct {
	Settings []string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + strings.Join(e.Settings, ", ")
}
