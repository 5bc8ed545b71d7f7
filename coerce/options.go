package coerce

import (
	"github.com/viant/coercly/coerce/config"
	"github.com/viant/x"
)

// Option customises a service before it is initialised.
type Option func(*Service)

// WithConfig supplies the service configuration.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithModules registers modules with the service registry. Registration
// alone loads nothing; modules load on first demand or through preload
// patterns.
func WithModules(modules ...*Module) Option {
	return func(s *Service) {
		s.modules = append(s.modules, modules...)
	}
}

// WithTypes adopts ecosystem types into the service registry.
func WithTypes(types ...*x.Type) Option {
	return func(s *Service) {
		s.adopted = append(s.adopted, types...)
	}
}

// WithRegistry shares a previously built registry instead of creating one.
func WithRegistry(registry *Registry) Option {
	return func(s *Service) {
		s.registry = registry
	}
}

// WithPreload loads every registered module matching one of the patterns
// during New, in addition to patterns named by the configuration.
func WithPreload(patterns ...string) Option {
	return func(s *Service) {
		s.preload = append(s.preload, patterns...)
	}
}
