package coerce

import (
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/viant/coercly/coerce/ident"
	"github.com/viant/coercly/coerce/matcher"
	"github.com/viant/coercly/internal/syncmap"
	"github.com/viant/x"
)

// Registry is the explicit capability index of the host type system: named
// types backed by a viant/x registry, modules with lazy load-once semantics,
// and the conversions those modules declare. A Registry is built once by the
// embedding application and shared by reference; all state is guarded for
// concurrent use.
type Registry struct {
	xreg      *x.Registry
	types     *syncmap.Map[ident.Name, *Type]
	byReflect *syncmap.Map[reflect.Type, *Type]
	modules   *syncmap.Map[string, *moduleEntry]
	provides  *syncmap.Map[ident.Name, string]
	externals *syncmap.Map[Pair, *ExternalRef]
}

type moduleEntry struct {
	module  *Module
	mu      sync.Mutex
	done    bool
	err     error
	exports map[string]*Conversion
}

// ModuleInfo is a point-in-time snapshot of one registered module.
type ModuleInfo struct {
	Name     string
	Loaded   bool
	Err      error
	Provides []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		xreg:      x.NewRegistry(),
		types:     syncmap.New[ident.Name, *Type](),
		byReflect: syncmap.New[reflect.Type, *Type](),
		modules:   syncmap.New[string, *moduleEntry](),
		provides:  syncmap.New[ident.Name, string](),
		externals: syncmap.New[Pair, *ExternalRef](),
	}
}

// Register makes modules known to the registry without loading them. Module
// names and the type names they provide must be unique.
func (r *Registry) Register(modules ...*Module) error {
	for _, m := range modules {
		if m == nil || m.name == "" {
			return configf("module requires a name")
		}
		for _, decl := range m.types {
			name, err := ident.Parse(decl.name)
			if err != nil {
				return configf("module %q: %w", m.name, err)
			}
			if owner, ok := r.provides.Lookup(name); ok && owner != m.name {
				return configf("type %q already provided by module %q", name, owner)
			}
		}
		entry := &moduleEntry{module: m, exports: map[string]*Conversion{}}
		if _, exists := r.modules.LoadOrStore(m.name, entry); exists {
			return configf("module %q already registered", m.name)
		}
		for _, decl := range m.types {
			r.provides.Set(ident.Name(decl.name), m.name)
		}
	}
	return nil
}

// Adopt registers ecosystem types directly, without a providing module or
// conversion capabilities. Adopted types can still serve as conversion
// sources and as external conversion endpoints.
func (r *Registry) Adopt(types ...*x.Type) error {
	for _, t := range types {
		if t == nil || t.Type == nil {
			return configf("adopted type requires a backing reflect type")
		}
		name, err := ident.Parse(t.Name)
		if err != nil {
			return configf("adopted type: %w", err)
		}
		if err := r.addTypeEntry(name, "", t.Type, t); err != nil {
			return err
		}
	}
	return nil
}

// Load applies the declarations of a registered module. Loading happens at
// most once; a failure is cached and returned unchanged on every repeated
// attempt.
func (r *Registry) Load(name string) error {
	return r.load(name, nil)
}

func (r *Registry) load(name string, stack []string) error {
	for _, frame := range stack {
		if frame == name {
			return configf("module dependency cycle: %s", strings.Join(append(stack, name), " -> "))
		}
	}
	entry, ok := r.modules.Lookup(name)
	if !ok {
		return configf("unknown module %q", name)
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.done {
		return entry.err
	}
	entry.done = true
	entry.err = r.apply(entry, append(stack, name))
	return entry.err
}

func (r *Registry) apply(entry *moduleEntry, stack []string) error {
	m := entry.module
	for _, required := range m.requires {
		if err := r.load(required, stack); err != nil {
			return configf("module %q requires %q: %w", m.name, required, err)
		}
	}
	for _, decl := range m.types {
		if err := r.addTypeEntry(ident.Name(decl.name), m.name, decl.rtype, nil); err != nil {
			return err
		}
	}
	for _, step := range m.steps {
		if err := step(r, m); err != nil {
			return err
		}
	}
	return nil
}

// LoadMatching loads every registered module whose name satisfies at least
// one pattern.
func (r *Registry) LoadMatching(patterns ...string) error {
	if len(patterns) == 0 {
		return nil
	}
	names := r.modules.Keys()
	sort.Strings(names)
	for _, name := range names {
		if !matcher.Any(patterns, name) {
			continue
		}
		if err := r.Load(name); err != nil {
			return err
		}
	}
	return nil
}

// Ensure returns the named type, loading its providing module on demand.
func (r *Registry) Ensure(name ident.Name) (*Type, error) {
	if t, ok := r.types.Lookup(name); ok {
		return t, nil
	}
	owner, ok := r.provides.Lookup(name)
	if !ok {
		return nil, configf("no registered module provides type %q", name)
	}
	if err := r.Load(owner); err != nil {
		return nil, err
	}
	t, ok := r.types.Lookup(name)
	if !ok {
		return nil, configf("module %q did not register type %q", owner, name)
	}
	return t, nil
}

// LookupType returns an already registered type.
func (r *Registry) LookupType(name ident.Name) (*Type, bool) {
	return r.types.Lookup(name)
}

// TypeOf returns the registered type of value, unwrapping one pointer level.
func (r *Registry) TypeOf(value any) (*Type, bool) {
	if value == nil {
		return nil, false
	}
	rt := reflect.TypeOf(value)
	if t, ok := r.byReflect.Lookup(rt); ok {
		return t, true
	}
	if rt.Kind() == reflect.Pointer {
		return r.byReflect.Lookup(rt.Elem())
	}
	return nil, false
}

// Types returns all registered types sorted by name.
func (r *Registry) Types() []*Type {
	result := r.types.List()
	sort.Slice(result, func(i, j int) bool { return result[i].name < result[j].name })
	return result
}

// Modules returns a snapshot of all registered modules sorted by name.
func (r *Registry) Modules() []ModuleInfo {
	names := r.modules.Keys()
	sort.Strings(names)
	var result []ModuleInfo
	for _, name := range names {
		entry, ok := r.modules.Lookup(name)
		if !ok {
			continue
		}
		entry.mu.Lock()
		info := ModuleInfo{Name: name, Loaded: entry.done && entry.err == nil, Err: entry.err, Provides: entry.module.Provides()}
		entry.mu.Unlock()
		result = append(result, info)
	}
	return result
}

// Conversions returns every conversion declared by loaded modules: pushes,
// pulls and module exports, sorted by source then target.
func (r *Registry) Conversions() []*Conversion {
	var result []*Conversion
	for _, t := range r.Types() {
		result = append(result, t.Pushes()...)
		result = append(result, t.Pulls()...)
	}
	for _, name := range r.modules.Keys() {
		entry, ok := r.modules.Lookup(name)
		if !ok {
			continue
		}
		entry.mu.Lock()
		if entry.done && entry.err == nil {
			for _, c := range entry.exports {
				result = append(result, c)
			}
		}
		entry.mu.Unlock()
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Source != result[j].Source {
			return result[i].Source < result[j].Source
		}
		if result[i].Target != result[j].Target {
			return result[i].Target < result[j].Target
		}
		return result[i].Method < result[j].Method
	})
	return result
}

// XTypes exposes the canonical name to type index for ecosystem interop.
func (r *Registry) XTypes() *x.Registry { return r.xreg }

func (r *Registry) addTypeEntry(name ident.Name, module string, rtype reflect.Type, xtype *x.Type) error {
	if xtype == nil {
		xtype = x.NewType(rtype, x.WithName(string(name)))
	}
	t := newType(name, module, rtype, xtype)
	if _, exists := r.types.LoadOrStore(name, t); exists {
		return configf("type %q already registered", name)
	}
	if existing, exists := r.byReflect.LoadOrStore(rtype, t); exists {
		r.types.Delete(name)
		return configf("reflect type %v already registered as %q", rtype, existing.Name())
	}
	r.xreg.Register(xtype)
	return nil
}

func (r *Registry) typeByReflect(rt reflect.Type) (*Type, error) {
	if t, ok := r.byReflect.Lookup(rt); ok {
		return t, nil
	}
	if rt.Kind() == reflect.Pointer {
		if t, ok := r.byReflect.Lookup(rt.Elem()); ok {
			return t, nil
		}
	}
	return nil, configf("reflect type %v is not declared", rt)
}

func (r *Registry) lookupDeclared(name string) (*Type, error) {
	parsed, err := ident.Parse(name)
	if err != nil {
		return nil, configf("conversion endpoint: %w", err)
	}
	t, ok := r.types.Lookup(parsed)
	if !ok {
		return nil, configf("type %q must be declared before its conversions", parsed)
	}
	return t, nil
}

func (r *Registry) addPush(source, target reflect.Type, adapter Adapter) error {
	src, err := r.typeByReflect(source)
	if err != nil {
		return err
	}
	dst, err := r.typeByReflect(target)
	if err != nil {
		return err
	}
	return r.registerPush(src, dst, adapter)
}

func (r *Registry) addPushNamed(source, target string, adapter Adapter) error {
	src, err := r.lookupDeclared(source)
	if err != nil {
		return err
	}
	dst, err := r.lookupDeclared(target)
	if err != nil {
		return err
	}
	return r.registerPush(src, dst, adapter)
}

func (r *Registry) registerPush(src, dst *Type, adapter Adapter) error {
	c := &Conversion{
		Kind:    HintPush,
		Method:  ident.PushMethod(dst.Name()),
		Source:  src.Name(),
		Target:  dst.Name(),
		adapter: adapter,
	}
	if _, exists := src.push.LoadOrStore(dst.Name(), c); exists {
		return configf("push conversion %q -> %q already declared", src.Name(), dst.Name())
	}
	return nil
}

func (r *Registry) addPull(target, source reflect.Type, adapter Adapter) error {
	dst, err := r.typeByReflect(target)
	if err != nil {
		return err
	}
	src, err := r.typeByReflect(source)
	if err != nil {
		return err
	}
	return r.registerPull(dst, src, adapter)
}

func (r *Registry) addPullNamed(target, source string, adapter Adapter) error {
	dst, err := r.lookupDeclared(target)
	if err != nil {
		return err
	}
	src, err := r.lookupDeclared(source)
	if err != nil {
		return err
	}
	return r.registerPull(dst, src, adapter)
}

func (r *Registry) registerPull(dst, src *Type, adapter Adapter) error {
	c := &Conversion{
		Kind:    HintPull,
		Method:  ident.PullMethod(src.Name()),
		Source:  src.Name(),
		Target:  dst.Name(),
		adapter: adapter,
	}
	if _, exists := dst.pull.LoadOrStore(src.Name(), c); exists {
		return configf("pull conversion %q -> %q already declared", src.Name(), dst.Name())
	}
	return nil
}

func (r *Registry) addExport(module, name string, source, target reflect.Type, adapter Adapter) error {
	src, err := r.typeByReflect(source)
	if err != nil {
		return err
	}
	dst, err := r.typeByReflect(target)
	if err != nil {
		return err
	}
	return r.registerExport(module, name, src, dst, adapter)
}

func (r *Registry) addExportNamed(module, name, source, target string, adapter Adapter) error {
	src, err := r.lookupDeclared(source)
	if err != nil {
		return err
	}
	dst, err := r.lookupDeclared(target)
	if err != nil {
		return err
	}
	return r.registerExport(module, name, src, dst, adapter)
}

func (r *Registry) registerExport(module, name string, src, dst *Type, adapter Adapter) error {
	if !ident.ValidIdentifier(name) {
		return configf("invalid export name %q", name)
	}
	entry, ok := r.modules.Lookup(module)
	if !ok {
		return configf("unknown module %q", module)
	}
	if _, exists := entry.exports[name]; exists {
		return configf("module %q already exports %q", module, name)
	}
	entry.exports[name] = &Conversion{
		Kind:    HintExternal,
		Method:  name,
		Source:  src.Name(),
		Target:  dst.Name(),
		adapter: adapter,
	}
	return nil
}

// Export returns a conversion function published by a module, loading the
// module on demand.
func (r *Registry) Export(module, function string) (*Conversion, error) {
	if err := r.Load(module); err != nil {
		return nil, err
	}
	entry, ok := r.modules.Lookup(module)
	if !ok {
		return nil, configf("unknown module %q", module)
	}
	c, ok := entry.exports[function]
	if !ok {
		return nil, configf("module %q does not export %q", module, function)
	}
	return c, nil
}

// DeclareExternal seeds an external conversion for the (source, target)
// pair. The declaration records names only; nothing loads until the
// conversion first runs.
func (r *Registry) DeclareExternal(source, target, module, function string) error {
	src, err := ident.Parse(source)
	if err != nil {
		return configf("external source: %w", err)
	}
	dst, err := ident.Parse(target)
	if err != nil {
		return configf("external target: %w", err)
	}
	if module == "" {
		return configf("external conversion %s -> %s requires a module", src, dst)
	}
	if !ident.ValidIdentifier(function) {
		return configf("invalid external function name %q", function)
	}
	ref := &ExternalRef{registry: r, Pair: Pair{Source: src, Target: dst}, Module: module, Function: function}
	if _, exists := r.externals.LoadOrStore(ref.Pair, ref); exists {
		return configf("external conversion %s already declared", ref.Pair)
	}
	return nil
}

// ExternalFor returns the external conversion declared for the pair.
func (r *Registry) ExternalFor(pair Pair) (*ExternalRef, bool) {
	return r.externals.Lookup(pair)
}

// Externals lists all declared external conversions.
func (r *Registry) Externals() []*ExternalRef {
	result := r.externals.List()
	sort.Slice(result, func(i, j int) bool { return result[i].Pair.String() < result[j].Pair.String() })
	return result
}

// ExternalRef binds a type pair to a conversion function exported by another
// module.
type ExternalRef struct {
	registry *Registry
	Pair     Pair
	Module   string
	Function string
}

// Invoke loads the exporting module on demand, looks up the export and runs
// it. A missing export or one that disagrees with the declared pair is a
// configuration error.
func (e *ExternalRef) Invoke(value any) (any, error) {
	c, err := e.registry.Export(e.Module, e.Function)
	if err != nil {
		return nil, err
	}
	if c.Source != e.Pair.Source || c.Target != e.Pair.Target {
		return nil, configf("export %s.%s converts %q -> %q, external declaration expects %q -> %q",
			e.Module, e.Function, c.Source, c.Target, e.Pair.Source, e.Pair.Target)
	}
	return c.Invoke(value)
}
