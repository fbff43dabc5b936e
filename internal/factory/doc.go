/*
Package factory maps class names to maker functions so that objects can be
constructed, wired into the register and configured from text sections.

A Maker builds one instance: it constructs the object, calls
register.SetInstance to wire it in, then stages every supplied field literal
against the instance's member keys. NewMaker produces the standard maker for
any Entity type from its constructor; classes with unusual construction
needs can register a hand-written Maker instead.

The Factory panics on duplicate class registration, which is a programmer
error, and returns UnknownClassError for classes no maker was registered
for, which is a configuration error.
*/
package factory
