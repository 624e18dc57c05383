package config

import (
	"testing"

	"github.com/qdm12/log"
	"github.com/stretchr/testify/assert"
)

func Test_parseLogLevel(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		s          string
		level      log.Level
		errMessage string
	}{
		"empty": {
			s: "",
			errMessage: `log level is unknown: "" is not valid and ` +
				"can be one of debug, info, warning or error",
		},
		"invalid": {
			s: "trace",
			errMessage: `log level is unknown: "trace" is not valid and ` +
				"can be one of debug, info, warning or error",
		},
		"debug": {
			s:     "debug",
			level: log.LevelDebug,
		},
		"info_mixed_case": {
			s:     "InFo",
			level: log.LevelInfo,
		},
		"warning": {
			s:     "warning",
			level: log.LevelWarn,
		},
		"error": {
			s:     "error",
			level: log.LevelError,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			level, err := parseLogLevel(testCase.s)

			if testCase.errMessage != "" {
				assert.EqualError(t, err, testCase.errMessage)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testCase.level, level)
			}
		})
	}
}
