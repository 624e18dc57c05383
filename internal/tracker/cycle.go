package tracker

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ipget/ipget/internal/healthchecksio"
)

// cycle fetches the current public IP address and persists one
// observation row. Fetch failures are transient so they are
// logged and pinged as failures without stopping the service;
// database errors are critical and returned.
func (s *Service) cycle(ctx context.Context) (err error) {
	publicIP, err := s.fetcher.IP(ctx)
	if err != nil {
		s.logger.Error(err.Error())
		s.pingHealthchecksio(ctx, healthchecksio.Fail)
		return nil
	}
	address := publicIP.String()

	latest, err := s.store.ReadLatest(ctx)
	if err != nil {
		return fmt.Errorf("reading latest observation: %w", err)
	}

	now := s.timeNow()
	id, err := s.store.Write(ctx, now, address)
	if err != nil {
		return fmt.Errorf("writing observation: %w", err)
	}
	s.logger.Debug("recorded observation " + strconv.FormatInt(id, 10) +
		" with address " + address)

	switch {
	case latest == nil:
		message := "First public IP address recorded: " + address
		s.logger.Info(message)
		s.notifier.Notify(message)
	case latest.Address != address:
		message := "Public IP address changed from " +
			latest.Address + " to " + address
		s.logger.Info(message)
		s.notifier.Notify(message)
	default:
		s.logger.Debug("public IP address is still " + address)
	}

	s.pingHealthchecksio(ctx, healthchecksio.Ok)
	return nil
}

func (s *Service) pingHealthchecksio(ctx context.Context,
	state healthchecksio.State) {
	err := s.hioClient.Ping(ctx, state)
	if err != nil {
		s.logger.Warn("pinging healthchecks.io: " + err.Error())
	}
}
