package coerce

import (
	"reflect"

	"github.com/viant/coercly/coerce/ident"
	"github.com/viant/coercly/internal/conv"
	"github.com/viant/coercly/internal/syncmap"
	"github.com/viant/x"
)

// Adapter executes a registered conversion against an untyped value. A nil
// result without an error is treated as a miss by the coercer.
type Adapter func(value any) (any, error)

// Conversion is a single registered capability converting values of Source
// into values of Target.
type Conversion struct {
	Kind    HintKind
	Method  string
	Source  ident.Name
	Target  ident.Name
	adapter Adapter
}

// Invoke runs the conversion.
func (c *Conversion) Invoke(value any) (any, error) {
	return c.adapter(value)
}

// Type describes a registered host type together with the conversions it
// declares.
type Type struct {
	name   ident.Name
	module string
	rtype  reflect.Type
	xtype  *x.Type
	push   *syncmap.Map[ident.Name, *Conversion]
	pull   *syncmap.Map[ident.Name, *Conversion]
}

func newType(name ident.Name, module string, rtype reflect.Type, xtype *x.Type) *Type {
	return &Type{
		name:   name,
		module: module,
		rtype:  rtype,
		xtype:  xtype,
		push:   syncmap.New[ident.Name, *Conversion](),
		pull:   syncmap.New[ident.Name, *Conversion](),
	}
}

// Name returns the canonical dotted identifier of the type.
func (t *Type) Name() ident.Name { return t.name }

// Module returns the name of the module that declared the type, empty for
// adopted types.
func (t *Type) Module() string { return t.module }

// ReflectType returns the Go type backing the declaration.
func (t *Type) ReflectType() reflect.Type { return t.rtype }

// XType returns the ecosystem registry entry backing the declaration.
func (t *Type) XType() *x.Type { return t.xtype }

// Instance reports whether value already satisfies the type: an identical or
// assignable runtime type, or a pointer to one. Interface satisfaction is
// the subtype relation.
func (t *Type) Instance(value any) bool {
	return conv.Satisfies(value, t.rtype)
}

// PushTo returns the declared conversion producing target from this type.
func (t *Type) PushTo(target ident.Name) (*Conversion, bool) {
	return t.push.Lookup(target)
}

// PullFrom returns the declared conversion building this type from source.
func (t *Type) PullFrom(source ident.Name) (*Conversion, bool) {
	return t.pull.Lookup(source)
}

// Pushes lists all conversions this type can produce.
func (t *Type) Pushes() []*Conversion { return t.push.List() }

// Pulls lists all conversions this type can consume.
func (t *Type) Pulls() []*Conversion { return t.pull.List() }

func typeFor[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
