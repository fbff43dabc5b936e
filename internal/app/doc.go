// Package app wires the register, factory, configuration loader and logger
// into a runnable application and owns the load -> reset -> initialise
// lifecycle.
package app
