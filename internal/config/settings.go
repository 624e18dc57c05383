// Package config reads, defaults and validates all the program
// settings from environment variables.
package config

import (
	"fmt"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Settings struct {
	Tracker  Tracker
	Fetch    Fetch
	Server   Server
	Health   Health
	Logger   Logger
	Shoutrrr Shoutrrr
}

func (s *Settings) Read(r *reader.Reader) (err error) {
	err = s.Tracker.read(r)
	if err != nil {
		return fmt.Errorf("tracker settings: %w", err)
	}

	err = s.Fetch.read(r)
	if err != nil {
		return fmt.Errorf("fetch settings: %w", err)
	}

	err = s.Server.read(r)
	if err != nil {
		return fmt.Errorf("server settings: %w", err)
	}

	s.Health.Read(r)
	s.Shoutrrr.read(r)

	err = s.Logger.read(r)
	if err != nil {
		return fmt.Errorf("logger settings: %w", err)
	}

	return nil
}

func (s *Settings) SetDefaults() {
	s.Tracker.setDefaults()
	s.Fetch.setDefaults()
	s.Server.setDefaults()
	s.Health.SetDefaults()
	s.Logger.setDefaults()
	s.Shoutrrr.setDefaults()
}

func (s Settings) Validate() (err error) {
	type validator interface {
		Validate() (err error)
	}
	toValidate := map[string]validator{
		"tracker":  &s.Tracker,
		"fetch":    &s.Fetch,
		"server":   &s.Server,
		"health":   &s.Health,
		"logger":   &s.Logger,
		"shoutrrr": &s.Shoutrrr,
	}

	for name, v := range toValidate {
		err = v.Validate()
		if err != nil {
			return fmt.Errorf("%s settings: %w", name, err)
		}
	}

	return nil
}

func (s Settings) String() string {
	return s.toLinesNode().String()
}

func (s Settings) toLinesNode() *gotree.Node {
	node := gotree.New("Settings")
	node.AppendNode(s.Tracker.toLinesNode())
	node.AppendNode(s.Fetch.toLinesNode())
	node.AppendNode(s.Server.toLinesNode())
	node.AppendNode(s.Health.toLinesNode())
	node.AppendNode(s.Logger.toLinesNode())
	node.AppendNode(s.Shoutrrr.toLinesNode())
	return node
}
