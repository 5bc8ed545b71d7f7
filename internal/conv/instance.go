package conv

import "reflect"

// Satisfies reports whether value is already an instance of the target type:
// its runtime type is identical or assignable (which covers interface
// satisfaction, the subtype relation of the host type system), or it is a
// pointer whose element type satisfies the target. A value-typed input never
// satisfies a pointer target since that would require copying.
func Satisfies(value any, target reflect.Type) bool {
	if value == nil || target == nil {
		return false
	}
	t := reflect.TypeOf(value)
	if t.AssignableTo(target) {
		return true
	}
	return t.Kind() == reflect.Pointer && t.Elem().AssignableTo(target)
}

// Assign normalizes value to the shape a conversion input expects and reports
// whether the adaptation succeeded. Besides direct assignability it bridges
// the pointer/value mismatch in both directions: a pointer input is
// dereferenced for a value parameter, a value input is copied onto the heap
// for a pointer parameter.
func Assign(value any, want reflect.Type) (reflect.Value, bool) {
	if value == nil || want == nil {
		return reflect.Value{}, false
	}
	v := reflect.ValueOf(value)
	t := v.Type()
	switch {
	case t.AssignableTo(want):
		return v, true
	case t.Kind() == reflect.Pointer && t.Elem().AssignableTo(want):
		if v.IsNil() {
			return reflect.Value{}, false
		}
		return v.Elem(), true
	case want.Kind() == reflect.Pointer && t.AssignableTo(want.Elem()):
		ptr := reflect.New(want.Elem())
		ptr.Elem().Set(v)
		return ptr, true
	}
	return reflect.Value{}, false
}

// IsNil reports whether value is nil either directly or through a nil-able
// runtime kind (pointer, map, slice, interface, func, chan).
func IsNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
