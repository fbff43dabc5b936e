package register

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetRoundtrip(t *testing.T) {
	r := New(nil)

	Set(r, "x", 123)
	Set(r, "pi", 3.14)
	Set(r, "label", "Great_Lake")
	Set(r, "flag", true)

	got, err := Get[int](r, "x")
	require.NoError(t, err)
	assert.Equal(t, 123, got)

	f, err := Get[float64](r, "pi")
	require.NoError(t, err)
	assert.Equal(t, 3.14, f)

	s, err := Get[string](r, "label")
	require.NoError(t, err)
	assert.Equal(t, "Great_Lake", s)

	b, err := Get[bool](r, "flag")
	require.NoError(t, err)
	assert.True(t, b)
}

func TestGetMissingKey(t *testing.T) {
	r := New(nil)
	Set(r, "x", 1)

	_, err := Get[int](r, "y")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestGetWrongTypeIsNotFound(t *testing.T) {
	r := New(nil)
	Set(r, "x", 123)

	// No store for float64 exists at all.
	_, err := Get[float64](r, "x")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	// A float64 store exists but does not own "x".
	Set(r, "other", 1.0)
	_, err = Get[float64](r, "x")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestHasKey(t *testing.T) {
	r := New(nil)
	assert.False(t, r.HasKey("x"))

	Set(r, "x", 1)
	assert.True(t, r.HasKey("x"))
	assert.False(t, r.HasKey("y"))
}

func TestStringRouting(t *testing.T) {
	r := New(nil)
	Set(r, "x", 1)

	require.NoError(t, r.SetString("x", "42"))

	raw, err := r.GetString("x")
	require.NoError(t, err)
	assert.Equal(t, "42", raw)

	// Keys without a recorded type cannot stage strings.
	err = r.SetString("unknown", "1")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	_, err = r.GetString("unknown")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	// A typed key with nothing staged has no string either.
	Set(r, "bare", 7)
	_, err = r.GetString("bare")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestSetWithDefaultStagesString(t *testing.T) {
	r := New(nil)
	SetWithDefault(r, "x", 1, "42")

	raw, err := r.GetString("x")
	require.NoError(t, err)
	assert.Equal(t, "42", raw)

	require.NoError(t, r.Reset())
	got, err := Get[int](r, "x")
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

// Re-setting a key under a different type repoints the type index to the new
// store and leaves a stale entry behind in the old one. Last Set wins for
// type routing; this pins the behavior rather than endorsing it.
func TestSetRepointsTypeIndex(t *testing.T) {
	r := New(nil)

	Set(r, "x", 123)
	Set(r, "x", "now a string")

	name, ok := r.TypeName("x")
	require.True(t, ok)
	assert.Equal(t, "string", name)

	s, err := Get[string](r, "x")
	require.NoError(t, err)
	assert.Equal(t, "now a string", s)

	// The orphaned int entry is still reachable through a typed Get.
	stale, err := Get[int](r, "x")
	require.NoError(t, err)
	assert.Equal(t, 123, stale)

	// String routing follows the index to the new store.
	require.NoError(t, r.SetString("x", "rerouted"))
	raw, err := r.GetString("x")
	require.NoError(t, err)
	assert.Equal(t, "rerouted", raw)
}

func TestClear(t *testing.T) {
	r := New(nil)
	Set(r, "x", 1)
	r.AddVoidCallback("init", func() { t.Fatal("callback survived Clear") })

	r.Clear()

	assert.False(t, r.HasKey("x"))
	_, err := Get[int](r, "x")
	assert.True(t, IsNotFound(err))
	r.DoVoidCallbacks("init")

	// The register stays usable after Clear.
	Set(r, "x", 2)
	got, err := Get[int](r, "x")
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestResetIsRepeatable(t *testing.T) {
	r := New(nil)
	SetWithDefault(r, "x", 0, "7")

	require.NoError(t, r.Reset())
	require.NoError(t, r.Reset())

	got, err := Get[int](r, "x")
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}
