/*
Package register implements the object register: the run-time wiring layer
that lets statically typed simulation objects be created, named, connected
and configured from externally supplied text.

The Registry owns one typed store per distinct Go type, created lazily on
first use. Each store holds a key -> value map plus a parallel key -> string
map of staged literals. Staged strings are converted into final typed values
in a single Reset pass after a configuration load, which is also when
instance references ("spillway") and reference sequences ("[mersey, forth]")
are resolved against already-wired instances.

Because Go methods cannot take type parameters, the typed operations are
package-level generic functions over a *Registry (Set, Get, SetInstance,
FindInstance, RegisterMember, RegisterConverter). The concrete element type
of a store never escapes the store itself; everything the Registry needs
from a store it reaches through a small capability interface.

The Registry also carries two disjoint named callback tables (argument-less
and time-stamped) dispatched synchronously in subscription order.

A Registry is not safe for concurrent use. All mutation belongs to the
single-threaded model-construction phase, and Reset re-enters the Registry
through reference resolution, so callers must not share one across
goroutines without external coordination.
*/
package register
