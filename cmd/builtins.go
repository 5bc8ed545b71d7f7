package cmd

import (
	"github.com/viant/coercly/coerce"
	"github.com/viant/coercly/examples/bridge"
	"github.com/viant/coercly/examples/geom"
	"github.com/viant/coercly/examples/svg"
)

// builtinModules returns the demonstration modules every CLI invocation
// registers.  Registration alone is cheap; whether a module actually loads
// is decided by the preload patterns and by demand.
func builtinModules() []*coerce.Module {
	return []*coerce.Module{
		geom.Module(),
		svg.Module(),
		bridge.Module(),
	}
}
