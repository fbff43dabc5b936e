package register

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/simwire/simwire/internal/simtime"
)

func TestVoidCallbackOrdering(t *testing.T) {
	r := New(nil)

	var calls []string
	r.AddVoidCallback("init", func() { calls = append(calls, "A") })
	r.AddVoidCallback("init", func() { calls = append(calls, "B") })
	r.AddVoidCallback("init", func() { calls = append(calls, "C") })
	r.AddVoidCallback("other", func() { calls = append(calls, "X") })

	r.DoVoidCallbacks("init")
	assert.Equal(t, []string{"A", "B", "C"}, calls)

	r.DoVoidCallbacks("unsubscribed")
	assert.Equal(t, []string{"A", "B", "C"}, calls)
}

func TestTimeCallbacksReceiveTimestamp(t *testing.T) {
	r := New(nil)
	when := simtime.Date(2005, time.January, 1)

	var got []simtime.Time
	r.AddTimeCallback("Initialise", func(ts simtime.Time) { got = append(got, ts) })
	r.AddTimeCallback("Initialise", func(ts simtime.Time) { got = append(got, ts) })

	r.DoTimeCallbacks("Initialise", when)

	assert.Len(t, got, 2)
	for _, ts := range got {
		assert.True(t, ts.Equal(when))
	}
}

// The two callback namespaces never collide, even for the same name.
func TestCallbackNamespacesAreDisjoint(t *testing.T) {
	r := New(nil)

	voidCalls := 0
	timeCalls := 0
	r.AddVoidCallback("tick", func() { voidCalls++ })
	r.AddTimeCallback("tick", func(simtime.Time) { timeCalls++ })

	r.DoVoidCallbacks("tick")
	assert.Equal(t, 1, voidCalls)
	assert.Equal(t, 0, timeCalls)

	r.DoTimeCallbacks("tick", simtime.Date(2005, time.January, 1))
	assert.Equal(t, 1, voidCalls)
	assert.Equal(t, 1, timeCalls)
}
