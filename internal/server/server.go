// Package server serves the recorded public IP data over a
// small JSON API.
package server

import (
	"github.com/qdm12/goservices/httpserver"
)

type Logger interface {
	Info(s string)
	Warn(s string)
	Error(s string)
}

func New(address string, logger Logger, db LatestReader,
	version string) (server *httpserver.Server, err error) {
	name := "server"
	return httpserver.New(httpserver.Settings{
		Handler: newHandler(logger, db, version),
		Name:    &name,
		Address: &address,
		Logger:  logger,
	})
}
