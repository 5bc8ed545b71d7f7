package coerce

import (
	"github.com/viant/coercly/coerce/config"
)

func (s *Service) init() error {
	s.initDefaults()
	if err := s.config.Validate(); err != nil {
		return configf("invalid configuration: %w", err)
	}
	if err := s.registry.Register(s.modules...); err != nil {
		return err
	}
	if err := s.registry.Adopt(s.adopted...); err != nil {
		return err
	}
	for _, external := range s.config.Externals {
		if err := s.registry.DeclareExternal(external.Source, external.Target, external.Module, external.Function); err != nil {
			return err
		}
	}
	patterns := append([]string{}, s.config.Preload...)
	patterns = append(patterns, s.preload...)
	if err := s.registry.LoadMatching(patterns...); err != nil {
		return err
	}
	s.resolver = NewResolver(s.registry)
	s.helpers = newNamespace(s, "")
	for _, helper := range s.config.Helpers {
		if err := s.helpers.Install(helper.Name, helper.Target); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) initDefaults() {
	if s.config == nil {
		s.config = &config.Config{}
	}
	if s.registry == nil {
		s.registry = NewRegistry()
	}
}
