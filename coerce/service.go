package coerce

import (
	"github.com/viant/coercly/coerce/config"
	"github.com/viant/x"
)

// Service is the coercion entry point: a registry of declared capabilities,
// a caching resolver bound to it, and a default helper namespace. Build one
// with New and share it by reference; there is no package level instance.
type Service struct {
	config   *config.Config
	registry *Registry
	resolver *Resolver
	helpers  *Namespace

	modules []*Module
	adopted []*x.Type
	preload []string
}

// New creates a coercion service configured by the supplied options.
func New(options ...Option) (*Service, error) {
	ret := &Service{}
	for _, option := range options {
		option(ret)
	}
	if err := ret.init(); err != nil {
		return nil, err
	}
	return ret, nil
}

// Config returns the service configuration.
func (s *Service) Config() *config.Config { return s.config }

// Registry returns the capability registry the service resolves against.
func (s *Service) Registry() *Registry { return s.registry }

// Resolver returns the resolution cache owned by the service.
func (s *Service) Resolver() *Resolver { return s.resolver }

// Helpers returns the service scoped helper namespace. Helpers declared in
// the configuration are installed here during New.
func (s *Service) Helpers() *Namespace { return s.helpers }

// Stats reports resolver activity.
func (s *Service) Stats() Stats { return s.resolver.Stats() }
