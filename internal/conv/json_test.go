package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	// Round-trip a loosely decoded document into a struct.
	var p point
	err := Convert(map[string]interface{}{"x": 1.5, "y": 2.5}, &p)
	require.NoError(t, err)
	assert.EqualValues(t, point{X: 1.5, Y: 2.5}, p)

	// Assignable input takes the fast path.
	var q point
	err = Convert(point{X: 7}, &q)
	require.NoError(t, err)
	assert.EqualValues(t, point{X: 7}, q)

	// Nil input leaves the zero value untouched.
	var r point
	require.NoError(t, Convert(nil, &r))
	assert.EqualValues(t, point{}, r)

	// Destination must be a non-nil pointer.
	assert.Error(t, Convert(point{}, nil))
	assert.Error(t, Convert(point{}, point{}))
	assert.Error(t, Convert(point{}, (*point)(nil)))
}
