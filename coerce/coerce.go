package coerce

import (
	"github.com/viant/coercly/coerce/ident"
	"github.com/viant/coercly/internal/conv"
)

// Helper is a coercion closure bound to a fixed target type. The flag
// reports whether the result is an instance of that target.
type Helper func(value any) (any, bool, error)

// Coerce attempts to convert value into an instance of the named target
// type. The returned flag reports whether the result is such an instance;
// false with a nil error is an ordinary miss. Errors are reserved for
// configuration problems: a malformed name, an unknown or unloadable target
// module, or a broken external declaration.
//
// A value that already satisfies the target, directly or through interface
// subtyping, is returned unchanged. Nil values and values of unregistered
// types miss without probing. Everything else goes through the resolver and
// its cached hint, and a conversion result that is not an instance of the
// target is discarded as a miss.
func (s *Service) Coerce(target string, value any) (any, bool, error) {
	name, err := ident.Parse(target)
	if err != nil {
		return nil, false, configf("coercion target: %w", err)
	}
	t, err := s.registry.Ensure(name)
	if err != nil {
		return nil, false, err
	}
	if conv.IsNil(value) {
		return nil, false, nil
	}
	src, ok := s.registry.TypeOf(value)
	if !ok {
		return nil, false, nil
	}
	if t.Instance(value) {
		return value, true, nil
	}
	hint := s.resolver.Resolve(src.Name(), t.Name())
	if !hint.Exists() {
		return nil, false, nil
	}
	out, err := hint.invoke(value)
	if err != nil {
		return nil, false, err
	}
	if out == nil || !t.Instance(out) {
		return nil, false, nil
	}
	return out, true, nil
}

// From returns a coercion helper bound to the named target type. The name is
// validated and the providing module loaded eagerly, so a misconfigured
// target fails here rather than at first call.
func (s *Service) From(target string) (Helper, error) {
	name, err := ident.Parse(target)
	if err != nil {
		return nil, configf("coercion target: %w", err)
	}
	if _, err := s.registry.Ensure(name); err != nil {
		return nil, err
	}
	return func(value any) (any, bool, error) {
		return s.Coerce(string(name), value)
	}, nil
}

// Resolve reports how source would convert to target without running the
// conversion. Both endpoints are ensured first so the answer reflects their
// declared capabilities.
func (s *Service) Resolve(source, target string) (Hint, error) {
	src, err := ident.Parse(source)
	if err != nil {
		return Hint{}, configf("resolution source: %w", err)
	}
	dst, err := ident.Parse(target)
	if err != nil {
		return Hint{}, configf("resolution target: %w", err)
	}
	if _, err := s.registry.Ensure(src); err != nil {
		return Hint{}, err
	}
	if _, err := s.registry.Ensure(dst); err != nil {
		return Hint{}, err
	}
	return s.resolver.Resolve(src, dst), nil
}

// As coerces value into T, deriving the target name from T's registration.
// T must already be registered, typically through a preloaded module.
func As[T any](s *Service, value any) (T, bool, error) {
	var zero T
	t, err := s.registry.typeByReflect(typeFor[T]())
	if err != nil {
		return zero, false, err
	}
	out, ok, err := s.Coerce(string(t.Name()), value)
	if err != nil || !ok {
		return zero, false, err
	}
	rv, ok := conv.Assign(out, typeFor[T]())
	if !ok {
		return zero, false, nil
	}
	return rv.Interface().(T), true, nil
}

// For returns a typed coercion closure for T. The type lookup happens once,
// up front; a T outside the registry fails here.
func For[T any](s *Service) (func(value any) (T, bool, error), error) {
	if _, err := s.registry.typeByReflect(typeFor[T]()); err != nil {
		return nil, err
	}
	return func(value any) (T, bool, error) {
		return As[T](s, value)
	}, nil
}
