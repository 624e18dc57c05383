// Package tracker periodically obtains the current public IP
// address and persists one observation row per check.
package tracker

import (
	"context"
	"time"
)

type Service struct {
	// Injected fields
	period    time.Duration
	store     Store
	fetcher   PublicIPFetcher
	notifier  Notifier
	hioClient HealthchecksIOClient
	logger    Logger
	timeNow   func() time.Time

	// Internal fields
	stopCh chan<- struct{}
	done   <-chan struct{}
}

func New(store Store, fetcher PublicIPFetcher, period time.Duration,
	notifier Notifier, hioClient HealthchecksIOClient,
	logger Logger, timeNow func() time.Time) *Service {
	return &Service{
		period:    period,
		store:     store,
		fetcher:   fetcher,
		notifier:  notifier,
		hioClient: hioClient,
		logger:    logger,
		timeNow:   timeNow,
	}
}

func (s *Service) String() string {
	return "tracker"
}

func (s *Service) Start(ctx context.Context) (runError <-chan error, startErr error) {
	ready := make(chan struct{})
	runErrorCh := make(chan error)
	stopCh := make(chan struct{})
	s.stopCh = stopCh
	done := make(chan struct{})
	s.done = done
	go s.run(ready, runErrorCh, stopCh, done)
	select {
	case <-ready:
	case <-ctx.Done():
		return nil, s.Stop()
	}
	return runErrorCh, nil
}

func (s *Service) run(ready chan<- struct{}, runError chan<- error,
	stopCh <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	s.logger.Info("checking the public IP address every " + s.period.String())
	timer := time.NewTimer(s.period)
	close(ready)

	// First check runs immediately on start.
	for {
		err := s.cycle(context.Background())
		if err != nil {
			_ = timer.Stop()
			runError <- err
			return
		}

		select {
		case <-timer.C:
			timer.Reset(s.period)
		case <-stopCh:
			_ = timer.Stop()
			return
		}
	}
}

func (s *Service) Stop() (err error) {
	close(s.stopCh)
	<-s.done
	return nil
}
