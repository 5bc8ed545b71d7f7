package coerce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/coercly/coerce/config"
)

// TestNamespaceInstallForms covers the three accepted installation forms and
// every rejected shape.
func TestNamespaceInstallForms(t *testing.T) {
	svc := newTestService(t)

	anonymous, err := svc.NamespaceFor("")
	require.NoError(t, err)
	require.NoError(t, anonymous.Install("coerce"))

	// "from" needs an owner type to bind against.
	err = anonymous.Install("from")
	require.Error(t, err)
	assert.True(t, IsConfigError(err))

	owned, err := svc.NamespaceFor("units.Feet")
	require.NoError(t, err)
	assert.EqualValues(t, "units.Feet", owned.Owner())
	require.NoError(t, owned.Install("from"))
	require.NoError(t, owned.Install("as_feet", "units.Feet"))

	testCases := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: nil},
		{name: "unknown single export", args: []string{"bogus"}},
		{name: "dotted helper name", args: []string{"bad.name", "units.Feet"}},
		{name: "malformed target", args: []string{"h", "units..Bad"}},
		{name: "too many arguments", args: []string{"a", "b", "c"}},
	}
	for _, tc := range testCases {
		err := owned.Install(tc.args...)
		require.Error(t, err, tc.name)
		assert.True(t, IsConfigError(err), tc.name)
	}

	// Helper names are first come, first served.
	err = owned.Install("from")
	require.Error(t, err)
	assert.True(t, IsConfigError(err))

	assert.EqualValues(t, []string{"as_feet", "from"}, owned.Names())

	// A malformed owner is rejected up front.
	_, err = svc.NamespaceFor("units..Feet")
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestNamespaceCall(t *testing.T) {
	svc := newTestService(t)

	ns, err := svc.NamespaceFor("units.Feet")
	require.NoError(t, err)
	require.NoError(t, ns.Install("coerce"))
	require.NoError(t, ns.Install("from"))

	// The generic helper routes (target, value).
	out, ok, err := ns.Call("coerce", "units.Yards", meters{Value: 100})
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 109.361, out.(yards).Value, 1e-3)

	// The bound helper takes the value alone.
	out, ok, err = ns.Call("from", meters{Value: 1})
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 3.28084, out.(feet).Value, 1e-5)

	// Arity and argument shape are enforced.
	_, _, err = ns.Call("coerce", meters{Value: 1})
	require.Error(t, err)
	assert.True(t, IsConfigError(err))

	_, _, err = ns.Call("coerce", 42, meters{Value: 1})
	require.Error(t, err)
	assert.True(t, IsConfigError(err))

	_, _, err = ns.Call("from", meters{Value: 1}, meters{Value: 2})
	require.Error(t, err)
	assert.True(t, IsConfigError(err))

	_, _, err = ns.Call("missing", meters{Value: 1})
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

// TestNamespaceLazyTarget verifies that installation validates syntax only;
// the target module loads when the helper first runs.
func TestNamespaceLazyTarget(t *testing.T) {
	svc := newTestService(t)

	ns, err := svc.NamespaceFor("")
	require.NoError(t, err)
	require.NoError(t, ns.Install("mi", "units.Miles"))
	assert.False(t, moduleLoaded(t, svc, "test/imperial"))

	helper, ok := ns.Helper("mi")
	require.True(t, ok)
	out, ok, err := helper(meters{Value: 3218.688})
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 2.0, out.(miles).Value, 1e-9)
	assert.True(t, moduleLoaded(t, svc, "test/imperial"))

	// A target no module provides surfaces at call time.
	require.NoError(t, ns.Install("zz", "units.Nowhere"))
	_, _, err = ns.Call("zz", meters{Value: 1})
	require.Error(t, err)
	assert.True(t, IsConfigError(err))

	// Generic helpers are not addressable through Helper.
	require.NoError(t, ns.Install("coerce"))
	_, ok = ns.Helper("coerce")
	assert.False(t, ok)
}

// TestServiceHelpersFromConfig installs helpers declared in configuration
// during New and rejects malformed declarations there.
func TestServiceHelpersFromConfig(t *testing.T) {
	cfg := &config.Config{
		Helpers: []*config.Helper{
			{Name: "ft", Target: "units.Feet"},
			{Name: "coerce", Target: "units.Feet"},
		},
	}
	svc, err := New(WithConfig(cfg), WithModules(unitsModule(), imperialModule(), glueModule()))
	require.NoError(t, err)

	out, ok, err := svc.Helpers().Call("ft", meters{Value: 1})
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 3.28084, out.(feet).Value, 1e-5)

	// Config helpers are plain named installs, so "coerce" is just a name.
	out, ok, err = svc.Helpers().Call("coerce", meters{Value: 2})
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 6.56168, out.(feet).Value, 1e-5)

	bad := &config.Config{Helpers: []*config.Helper{{Name: "no.dots", Target: "units.Feet"}}}
	_, err = New(WithConfig(bad), WithModules(unitsModule()))
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}
