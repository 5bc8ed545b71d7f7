package config

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Config is the declarative startup model of a coercion service. Every
// section is optional; an empty config yields a service whose modules all
// load lazily and whose helpers are installed in code.
type Config struct {
	// Preload lists module name patterns ("*", "examples/" or an exact
	// name) to load during service construction.
	Preload []string `yaml:"preload,omitempty" json:"preload,omitempty"`
	// Externals declare cross module conversions by name only.
	Externals []*External `yaml:"externals,omitempty" json:"externals,omitempty"`
	// Helpers are installed into the service helper namespace on startup.
	Helpers []*Helper `yaml:"helpers,omitempty" json:"helpers,omitempty"`
	// Probes drive the probe command; the service itself ignores them.
	Probes []*Probe `yaml:"probes,omitempty" json:"probes,omitempty"`
}

// External binds a (source, target) type pair to a function exported by a
// module. The exporting module loads when the conversion first runs.
type External struct {
	Source   string `yaml:"source" json:"source"`
	Target   string `yaml:"target" json:"target"`
	Module   string `yaml:"module" json:"module"`
	Function string `yaml:"function" json:"function"`
}

// Helper names a coercion helper and the type it produces.
type Helper struct {
	Name   string `yaml:"name" json:"name"`
	Target string `yaml:"target" json:"target"`
}

// Probe is one scripted coercion attempt: build a source value from the
// inline document and coerce it to the target type.
type Probe struct {
	Source string `yaml:"source" json:"source"`
	Target string `yaml:"target" json:"target"`
	Value  any    `yaml:"value,omitempty" json:"value,omitempty"`
}

// Load reads and parses a configuration document. The location accepts any
// URL scheme the afs service understands, a plain file path included.
func Load(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", URL, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", URL, err)
	}
	return &cfg, nil
}

// Validate checks structural completeness of the configuration. Name syntax
// and registry consistency are left to the service that applies it.
func (c *Config) Validate() error {
	for i, external := range c.Externals {
		if external == nil {
			return fmt.Errorf("externals[%d]: empty declaration", i)
		}
		if external.Source == "" || external.Target == "" {
			return fmt.Errorf("externals[%d]: source and target are required", i)
		}
		if external.Module == "" || external.Function == "" {
			return fmt.Errorf("externals[%d]: module and function are required", i)
		}
	}
	for i, helper := range c.Helpers {
		if helper == nil {
			return fmt.Errorf("helpers[%d]: empty declaration", i)
		}
		if helper.Name == "" || helper.Target == "" {
			return fmt.Errorf("helpers[%d]: name and target are required", i)
		}
	}
	for i, probe := range c.Probes {
		if probe == nil {
			return fmt.Errorf("probes[%d]: empty declaration", i)
		}
		if probe.Source == "" || probe.Target == "" {
			return fmt.Errorf("probes[%d]: source and target are required", i)
		}
	}
	return nil
}
