package engine

import (
	"github.com/charmbracelet/log"

	"github.com/lixenwraith/lanesim/status"
)

// Option configures optional collaborators of a Simulation
type Option func(*Simulation)

// WithLogger routes engine logs to logger, the default discards them
func WithLogger(logger *log.Logger) Option {
	return func(s *Simulation) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRegistry publishes run metrics into r after every step
func WithRegistry(r *status.Registry) Option {
	return func(s *Simulation) {
		s.registry = r
	}
}

// WithListener subscribes l to engine events
func WithListener(l Listener) Option {
	return func(s *Simulation) {
		if l != nil {
			s.listeners = append(s.listeners, l)
		}
	}
}
