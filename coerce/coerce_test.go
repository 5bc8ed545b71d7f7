package coerce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCoerceIdentity verifies the identity short-circuit: values that
// already satisfy the target come back unchanged, interface satisfaction and
// pointers included.
func TestCoerceIdentity(t *testing.T) {
	svc := newTestService(t, WithPreload("test/units"))

	value := meters{Value: 12}
	out, ok, err := svc.Coerce("units.Meters", value)
	require.NoError(t, err)
	require.True(t, ok)
	assert.EqualValues(t, value, out)

	// meters satisfies the distance interface, so no conversion runs.
	out, ok, err = svc.Coerce("units.Distance", value)
	require.NoError(t, err)
	require.True(t, ok)
	assert.EqualValues(t, value, out)

	// A pointer to an instance is an instance.
	ptr := &meters{Value: 3}
	out, ok, err = svc.Coerce("units.Meters", ptr)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Same(t, ptr, out)

	// feet does not implement distance and declares no conversion to it.
	_, ok, err = svc.Coerce("units.Distance", feet{Value: 1})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCoercePush(t *testing.T) {
	svc := newTestService(t, WithPreload("test/units"))

	out, ok, err := svc.Coerce("units.Feet", meters{Value: 2})
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 6.56168, out.(feet).Value, 1e-5)

	// Pointer input adapts to the value-typed conversion function.
	out, ok, err = svc.Coerce("units.Feet", &meters{Value: 1})
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 3.28084, out.(feet).Value, 1e-5)
}

func TestCoercePull(t *testing.T) {
	svc := newTestService(t, WithPreload("test/units"))

	out, ok, err := svc.Coerce("units.Yards", meters{Value: 100})
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 109.361, out.(yards).Value, 1e-3)
}

// TestCoerceExternalLazyLoad drives a conversion through an external
// declaration and checks that the exporting module loads only when the
// conversion actually runs.
func TestCoerceExternalLazyLoad(t *testing.T) {
	svc := newTestService(t, WithPreload("test/units", "test/glue"))

	assert.False(t, moduleLoaded(t, svc, "test/imperial"))

	out, ok, err := svc.Coerce("units.Inches", meters{Value: 1})
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 39.3701, out.(inches).Value, 1e-4)

	assert.True(t, moduleLoaded(t, svc, "test/imperial"))
}

// TestCoerceMisses enumerates inputs that miss without error: nil values,
// nil pointers and values of types no module declares.
func TestCoerceMisses(t *testing.T) {
	svc := newTestService(t, WithPreload("test/units"))

	testCases := []struct {
		name  string
		value any
	}{
		{name: "nil", value: nil},
		{name: "typed nil pointer", value: (*meters)(nil)},
		{name: "unregistered struct", value: fathoms{Value: 1}},
		{name: "plain int", value: 42},
		{name: "plain string", value: "meters"},
		{name: "map", value: map[string]any{"value": 1}},
	}

	for _, tc := range testCases {
		out, ok, err := svc.Coerce("units.Feet", tc.value)
		assert.NoError(t, err, tc.name)
		assert.False(t, ok, tc.name)
		assert.Nil(t, out, tc.name)
	}

	// A registered source without any conversion path misses too.
	out, ok, err := svc.Coerce("units.Meters", feet{Value: 1})
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, out)
}

// TestCoerceResultValidation runs conversions whose adapters misbehave: a
// result of the wrong type and a nil result are soft misses, an adapter
// error is surfaced as a plain error.
func TestCoerceResultValidation(t *testing.T) {
	svc, err := New(WithModules(unitsModule(), imperialModule(), glueModule(), rogueModule()), WithPreload("*"))
	require.NoError(t, err)

	out, ok, err := svc.Coerce("units.Meters", rogue{})
	assert.NoError(t, err)
	assert.False(t, ok, "wrong-typed result must not count as coercion")
	assert.Nil(t, out)

	out, ok, err = svc.Coerce("units.Feet", rogue{})
	assert.NoError(t, err)
	assert.False(t, ok, "nil result must not count as coercion")
	assert.Nil(t, out)

	_, ok, err = svc.Coerce("units.Yards", rogue{})
	require.Error(t, err)
	assert.False(t, ok)
	assert.False(t, IsConfigError(err), "adapter failures are not configuration errors")
}

// TestCoerceConfigErrors covers the error class: malformed names and targets
// without a provider are reported immediately, not as misses.
func TestCoerceConfigErrors(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.Coerce("units..Feet", meters{Value: 1})
	require.Error(t, err)
	assert.True(t, IsConfigError(err))

	_, _, err = svc.Coerce("", meters{Value: 1})
	require.Error(t, err)
	assert.True(t, IsConfigError(err))

	_, _, err = svc.Coerce("units.Nowhere", meters{Value: 1})
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

// TestCoerceEnsuresTarget verifies demand loading through the coercion
// entry point itself: naming a type is enough to load its module.
func TestCoerceEnsuresTarget(t *testing.T) {
	svc := newTestService(t)

	assert.False(t, moduleLoaded(t, svc, "test/units"))

	out, ok, err := svc.Coerce("units.Feet", meters{Value: 1})
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 3.28084, out.(feet).Value, 1e-5)

	assert.True(t, moduleLoaded(t, svc, "test/units"))
}

func TestFrom(t *testing.T) {
	svc := newTestService(t)

	toFeet, err := svc.From("units.Feet")
	require.NoError(t, err)
	assert.True(t, moduleLoaded(t, svc, "test/units"), "From loads the target module eagerly")

	out, ok, err := toFeet(meters{Value: 2})
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 6.56168, out.(feet).Value, 1e-5)

	_, ok, err = toFeet("not a unit")
	require.NoError(t, err)
	assert.False(t, ok)

	// Misconfigured targets fail at construction, not at first call.
	_, err = svc.From("units.Nowhere")
	require.Error(t, err)
	assert.True(t, IsConfigError(err))

	_, err = svc.From("units..Feet")
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestAs(t *testing.T) {
	svc := newTestService(t, WithPreload("test/units"))

	out, ok, err := As[feet](svc, meters{Value: 2})
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 6.56168, out.Value, 1e-5)

	// Identity through the typed entry point.
	d, ok, err := As[distance](svc, meters{Value: 5})
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 5, d.Meters(), 1e-9)

	// A miss leaves the zero value.
	out, ok, err = As[feet](svc, "nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.EqualValues(t, feet{}, out)

	// Types outside the registry are configuration errors.
	_, _, err = As[fathoms](svc, meters{Value: 1})
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestFor(t *testing.T) {
	svc := newTestService(t, WithPreload("test/units"))

	toFeet, err := For[feet](svc)
	require.NoError(t, err)

	out, ok, err := toFeet(meters{Value: 1})
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 3.28084, out.Value, 1e-5)

	_, err = For[fathoms](svc)
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

// TestSharedRegistry builds two services over one registry: modules loaded
// through the first are visible to the second, while resolution caches stay
// per service.
func TestSharedRegistry(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(unitsModule(), imperialModule(), glueModule()))

	first, err := New(WithRegistry(registry), WithPreload("*"))
	require.NoError(t, err)
	second, err := New(WithRegistry(registry))
	require.NoError(t, err)

	out, ok, err := second.Coerce("units.Feet", meters{Value: 1})
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 3.28084, out.(feet).Value, 1e-5)

	assert.EqualValues(t, 0, first.Stats().Probes)
	assert.EqualValues(t, 1, second.Stats().Probes)
	assert.NotSame(t, first.Resolver(), second.Resolver())
	assert.Same(t, first.Registry(), second.Registry())
}
