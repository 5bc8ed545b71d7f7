package coerce

import (
	"reflect"

	"github.com/viant/coercly/internal/conv"
)

// Module groups related type and conversion declarations under a slash
// separated name, e.g. "examples/geom". Declarations are recorded when the
// module value is built but take effect only once the module is loaded;
// modules load lazily and at most once.
type Module struct {
	name     string
	requires []string
	types    []typeDecl
	steps    []func(r *Registry, m *Module) error
}

type typeDecl struct {
	name  string
	rtype reflect.Type
}

// NewModule returns an empty module with the supplied name.
func NewModule(name string) *Module {
	return &Module{name: name}
}

// Name returns the module name.
func (m *Module) Name() string { return m.name }

// Requires records modules that must be loaded before this one. The loader
// resolves requirements first and fails on dependency cycles.
func (m *Module) Requires(names ...string) *Module {
	m.requires = append(m.requires, names...)
	return m
}

// Provides returns the dotted type names the module declares.
func (m *Module) Provides() []string {
	var result []string
	for _, decl := range m.types {
		result = append(result, decl.name)
	}
	return result
}

// Declare records type T under the given dotted name.
func Declare[T any](m *Module, name string) {
	m.types = append(m.types, typeDecl{name: name, rtype: typeFor[T]()})
}

// Push declares that values of S convert themselves into T. The conversion
// is addressed by the conventional "as_<target>" method identity.
func Push[S, T any](m *Module, fn func(S) T) {
	m.steps = append(m.steps, func(r *Registry, _ *Module) error {
		return r.addPush(typeFor[S](), typeFor[T](), adapt(fn))
	})
}

// Pull declares that T builds itself from values of S. The conversion is
// addressed by the conventional "from_<source>" constructor identity.
func Pull[T, S any](m *Module, fn func(S) T) {
	m.steps = append(m.steps, func(r *Registry, _ *Module) error {
		return r.addPull(typeFor[T](), typeFor[S](), adapt(fn))
	})
}

// Export publishes fn as a named conversion function on the module, the
// invocation target of external declarations.
func Export[S, T any](m *Module, name string, fn func(S) T) {
	m.steps = append(m.steps, func(r *Registry, mod *Module) error {
		return r.addExport(mod.name, name, typeFor[S](), typeFor[T](), adapt(fn))
	})
}

// External declares that source converts to target through a function
// exported by another module. Only names are recorded here; the exporting
// module loads when the conversion first runs.
func External(m *Module, source, target, module, function string) {
	m.steps = append(m.steps, func(r *Registry, _ *Module) error {
		return r.DeclareExternal(source, target, module, function)
	})
}

// PushAdapter is the dynamic variant of Push for types whose Go shape is not
// known at compile time. Both names must be declared before the adapter.
func PushAdapter(m *Module, source, target string, fn Adapter) {
	m.steps = append(m.steps, func(r *Registry, _ *Module) error {
		return r.addPushNamed(source, target, fn)
	})
}

// PullAdapter is the dynamic variant of Pull.
func PullAdapter(m *Module, target, source string, fn Adapter) {
	m.steps = append(m.steps, func(r *Registry, _ *Module) error {
		return r.addPullNamed(target, source, fn)
	})
}

// ExportAdapter is the dynamic variant of Export.
func ExportAdapter(m *Module, name, source, target string, fn Adapter) {
	m.steps = append(m.steps, func(r *Registry, mod *Module) error {
		return r.addExportNamed(mod.name, name, source, target, fn)
	})
}

// adapt bridges a typed conversion function into an Adapter. An input the
// function cannot accept yields a miss rather than an error.
func adapt[S, T any](fn func(S) T) Adapter {
	want := typeFor[S]()
	return func(value any) (any, error) {
		in, ok := conv.Assign(value, want)
		if !ok {
			return nil, nil
		}
		return fn(in.Interface().(S)), nil
	}
}
