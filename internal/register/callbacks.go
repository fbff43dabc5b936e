package register

import "github.com/simwire/simwire/internal/simtime"

// The callback bus: two disjoint namespaces of named subscriber groups, one
// for argument-less callbacks and one for time-stamped callbacks. The same
// name may exist in both without colliding. Dispatch is synchronous, in
// subscription order. Subscribers must not mutate the group being dispatched.

// AddVoidCallback appends an argument-less subscriber to the named group.
func (r *Registry) AddVoidCallback(name string, fn func()) {
	r.voidCallbacks[name] = append(r.voidCallbacks[name], fn)
}

// AddTimeCallback appends a time-stamped subscriber to the named group.
func (r *Registry) AddTimeCallback(name string, fn func(simtime.Time)) {
	r.timeCallbacks[name] = append(r.timeCallbacks[name], fn)
}

// DoVoidCallbacks invokes every subscriber in the named group, in the order
// they subscribed.
func (r *Registry) DoVoidCallbacks(name string) {
	fns := r.voidCallbacks[name]
	r.logger.Debug("Dispatching void callbacks.", "name", name, "subscribers", len(fns))
	for _, fn := range fns {
		fn()
	}
}

// DoTimeCallbacks invokes every subscriber in the named group with the given
// timestamp, in the order they subscribed.
func (r *Registry) DoTimeCallbacks(name string, t simtime.Time) {
	fns := r.timeCallbacks[name]
	r.logger.Debug("Dispatching time callbacks.", "name", name, "subscribers", len(fns), "time", t.String())
	for _, fn := range fns {
		fn(t)
	}
}
