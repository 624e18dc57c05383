// Package noop provides a service doing nothing, standing in
// for services the user disabled so the services sequence keeps
// its fixed start and stop ordering.
package noop

import "context"

type Service struct {
	name string
}

// New creates a no-op service named after the service
// it replaces.
func New(name string) *Service {
	return &Service{
		name: name,
	}
}

func (s *Service) String() string {
	return s.name + " (no-op)"
}

func (s *Service) Start(_ context.Context) (_ <-chan error, _ error) {
	return nil, nil //nolint:nilnil
}

func (s *Service) Stop() (stopErr error) {
	return nil
}
