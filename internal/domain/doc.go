/*
Package domain provides the built-in model classes: storages, channels and
power stations. Each class implements register.Entity, self-registers its
member fields (as pointers, so the Reset pass configures the objects in
place), exposes a bookkeeping accessor under the function namespace, and
subscribes to the Initialise callback group.

The package also exports Module, which registers a maker for every class so
the application can install the whole model in one call.
*/
package domain
