package factory

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/simwire/simwire/internal/regkey"
	"github.com/simwire/simwire/internal/register"
)

// Maker builds one instance of its class: construct, wire into the register,
// stage the supplied field literals.
type Maker func(className, instanceName string, r *register.Registry, fields map[string]string) error

// Module is implemented by packages that contribute a set of makers, so the
// application can register whole domains in one call.
type Module interface {
	Register(f *Factory)
}

// Factory dispatches class names to registered makers against a single
// register.
type Factory struct {
	reg         *register.Registry
	makers      map[string]Maker
	baseClasses map[string]string
	logger      *slog.Logger
}

// New creates a Factory building into the given register.
func New(reg *register.Registry, logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{
		reg:         reg,
		makers:      make(map[string]Maker),
		baseClasses: make(map[string]string),
		logger:      logger,
	}
}

// Register returns the register this factory builds into.
func (f *Factory) Register() *register.Registry {
	return f.reg
}

// AddMaker registers a maker under a class name. Registering the same class
// twice is a programmer error.
func (f *Factory) AddMaker(className string, m Maker) {
	if _, exists := f.makers[className]; exists {
		panic(fmt.Sprintf("maker for class %q already registered", className))
	}
	f.logger.Debug("Registering maker.", "class", className)
	f.makers[className] = m
}

// AddMakerWithBase registers a maker and records the class's base class.
// The relationship is bookkeeping only; no dispatch behavior depends on it.
func (f *Factory) AddMakerWithBase(className string, m Maker, baseClassName string) {
	f.AddMaker(className, m)
	f.baseClasses[className] = baseClassName
}

// BaseClass returns the recorded base class for a class name, if any.
func (f *Factory) BaseClass(className string) (string, bool) {
	base, ok := f.baseClasses[className]
	return base, ok
}

// Classes returns the registered class names, sorted.
func (f *Factory) Classes() []string {
	names := make([]string, 0, len(f.makers))
	for name := range f.makers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Make constructs and wires one instance of the named class, staging the
// supplied field literals for the next Reset pass. The register is left
// untouched when the class is unknown or a name fails validation.
func (f *Factory) Make(className, instanceName string, fields map[string]string) error {
	if err := regkey.ValidateName(className); err != nil {
		return err
	}
	if err := regkey.ValidateName(instanceName); err != nil {
		return err
	}

	m, ok := f.makers[className]
	if !ok {
		return &UnknownClassError{Class: className}
	}

	f.logger.Debug("Making instance.", "class", className, "instance", instanceName, "fields", len(fields))
	return m(className, instanceName, f.reg, fields)
}

// NewMaker returns the standard maker for an Entity type: construct with the
// instance name, wire via SetInstance, then stage every field literal under
// the instance's member keys. A staging failure is annotated with the field
// and class and returned as a MemberAssignmentError; the already-wired
// instance stays in the register.
func NewMaker[T register.Entity](construct func(instanceName string) T) Maker {
	return func(className, instanceName string, r *register.Registry, fields map[string]string) error {
		inst := construct(instanceName)
		if err := register.SetInstance(r, inst); err != nil {
			return err
		}

		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			key := regkey.Member(className, instanceName, name)
			if err := r.SetString(key, fields[name]); err != nil {
				return &MemberAssignmentError{Class: className, Field: name, Err: err}
			}
		}
		return nil
	}
}
