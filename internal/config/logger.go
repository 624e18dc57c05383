package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
	"github.com/qdm12/log"
)

type Logger struct {
	Caller bool
	Level  *log.Level
}

var ErrLogCallerNotValid = errors.New("LOG_CALLER value is not valid")

func (l *Logger) read(r *reader.Reader) (err error) {
	callerString := r.String("LOG_CALLER")
	switch callerString {
	case "", "hidden":
	case "short":
		l.Caller = true
	default:
		return fmt.Errorf("%w: "+
			`%q must be one of "", "hidden" or "short"`,
			ErrLogCallerNotValid, callerString)
	}

	levelString := r.String("LOG_LEVEL")
	if levelString != "" {
		level, err := parseLogLevel(levelString)
		if err != nil {
			return fmt.Errorf("environment variable LOG_LEVEL: %w", err)
		}
		l.Level = &level
	}

	return nil
}

func (l *Logger) setDefaults() {
	l.Level = gosettings.DefaultPointer(l.Level, log.LevelInfo)
}

func (l Logger) Validate() (err error) {
	return nil
}

func (l Logger) ToOptions() (options []log.Option) {
	options = append(options, log.SetLevel(*l.Level))
	if l.Caller {
		options = append(options,
			log.SetCallerFile(true), log.SetCallerLine(true))
	}
	return options
}

func (l Logger) String() string {
	return l.toLinesNode().String()
}

func (l Logger) toLinesNode() *gotree.Node {
	node := gotree.New("Logger")
	node.Appendf("Level: %s", *l.Level)
	node.Appendf("Caller: %t", l.Caller)
	return node
}

var ErrLogLevelUnknown = errors.New("log level is unknown")

func parseLogLevel(s string) (level log.Level, err error) {
	switch strings.ToLower(s) {
	case "debug":
		return log.LevelDebug, nil
	case "info":
		return log.LevelInfo, nil
	case "warning":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	default:
		return level, fmt.Errorf(
			"%w: %q is not valid and can be one of debug, info, warning or error",
			ErrLogLevelUnknown, s)
	}
}
