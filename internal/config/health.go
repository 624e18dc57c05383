package config

import (
	"fmt"
	"os"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosettings/validate"
	"github.com/qdm12/gotree"
)

type Health struct {
	// ServerAddress is the listening address for the
	// internal healthcheck server.
	ServerAddress *string
	// HealthchecksioBaseURL is the base URL for
	// healthchecks.io pings.
	HealthchecksioBaseURL string
	// HealthchecksioUUID is the healthchecks.io check UUID;
	// pings are disabled when left empty.
	HealthchecksioUUID *string
}

func (h *Health) Read(r *reader.Reader) {
	h.ServerAddress = r.Get("HEALTH_SERVER_ADDRESS")
	h.HealthchecksioBaseURL = r.String("HEALTHCHECKSIO_BASE_URL",
		reader.ForceLowercase(false))
	h.HealthchecksioUUID = r.Get("HEALTHCHECKSIO_UUID",
		reader.ForceLowercase(false))
}

func (h *Health) SetDefaults() {
	h.ServerAddress = gosettings.DefaultPointer(h.ServerAddress, "127.0.0.1:9999")
	h.HealthchecksioBaseURL = gosettings.DefaultComparable(
		h.HealthchecksioBaseURL, "https://hc-ping.com")
	h.HealthchecksioUUID = gosettings.DefaultPointer(h.HealthchecksioUUID, "")
}

func (h Health) Validate() (err error) {
	err = validate.ListeningAddress(*h.ServerAddress, os.Getuid())
	if err != nil {
		return fmt.Errorf("server listening address: %w", err)
	}
	return nil
}

func (h Health) String() string {
	return h.toLinesNode().String()
}

func (h Health) toLinesNode() *gotree.Node {
	node := gotree.New("Health")
	node.Appendf("Server listening address: %s", *h.ServerAddress)
	if *h.HealthchecksioUUID != "" {
		node.Appendf("Healthchecks.io base URL: %s", h.HealthchecksioBaseURL)
	}
	return node
}
