package cmd

// Options is the root for the CLI.  Struct tags are interpreted by
// github.com/jessevdk/go-flags which is the same library used by other Viant
// CLIs (e.g. Agently).
type Options struct {
	Config string `short:"f" long:"config" description:"coercion service configuration YAML/JSON path"`

	ListTypes   *ListTypesCmd   `command:"list-types"   description:"List registered types"`
	ListModules *ListModulesCmd `command:"list-modules" description:"List registered modules and their load state"`
	Conversions *ConversionsCmd `command:"conversions"  description:"List conversions declared by loaded modules"`
	Externals   *ExternalsCmd   `command:"externals"    description:"List declared external conversions"`
	Resolve     *ResolveCmd     `command:"resolve"      description:"Resolve how a source type converts to a target type"`
	Coerce      *CoerceCmd      `command:"coerce"       description:"Coerce a value into a target type"`
	Probe       *ProbeCmd       `command:"probe"        description:"Run scripted coercion probes from the configuration"`
	Version     *VersionCmd     `command:"version"      description:"Show build fingerprints"`
}

// Init instantiates the sub-command referenced by the first positional argument
// so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "list-types":
		o.ListTypes = &ListTypesCmd{}
	case "list-modules":
		o.ListModules = &ListModulesCmd{}
	case "conversions":
		o.Conversions = &ConversionsCmd{}
	case "externals":
		o.Externals = &ExternalsCmd{}
	case "resolve":
		o.Resolve = &ResolveCmd{}
	case "coerce":
		o.Coerce = &CoerceCmd{}
	case "probe":
		o.Probe = &ProbeCmd{}
	case "version":
		o.Version = &VersionCmd{}
	}
}
