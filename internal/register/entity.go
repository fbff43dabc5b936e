package register

import (
	"github.com/simwire/simwire/internal/regkey"
)

// Entity is the capability interface every domain object implements to take
// part in instance wiring. ClassName must be callable on the zero value of
// the implementing type (for pointer receivers: on a nil pointer), because
// FindInstance needs the class name before any instance exists.
//
// Register is the object's self-registration hook: SetInstance calls it
// after wiring the instance in, and it is expected to expose the object's
// member fields under further keys via RegisterMember. Self-registration may
// itself call SetInstance on nested objects; no depth limit is enforced.
type Entity interface {
	ClassName() string
	Name() string
	Register(r *Registry) error
}

// SetInstance wires an instance into the register under the key
// ClassName.InstanceName and invokes the instance's self-registration.
// Staged literals of the instance's pointer type resolve by instance name
// during Reset; that rule holds for every Entity pointer type, wired or not.
func SetInstance[T Entity](r *Registry, inst T) error {
	className := inst.ClassName()
	name := inst.Name()
	if err := regkey.ValidateName(className); err != nil {
		return err
	}
	if err := regkey.ValidateName(name); err != nil {
		return err
	}

	key := regkey.Instance(className, name)
	Set(r, key, inst)
	r.logger.Debug("Wired instance.", "key", key)

	return inst.Register(r)
}

// FindInstance returns the instance of T registered under the given
// instance name.
func FindInstance[T Entity](r *Registry, name string) (T, error) {
	var zero T
	return Get[T](r, regkey.Instance(zero.ClassName(), name))
}

// RegisterMember stores a member value under the three-part key
// owner.ClassName().owner.Name().fieldName.
func RegisterMember[T any](r *Registry, owner Entity, fieldName string, val T) error {
	if err := regkey.ValidateName(fieldName); err != nil {
		return err
	}
	Set(r, regkey.Member(owner.ClassName(), owner.Name(), fieldName), val)
	return nil
}

// RegisterMemberWithDefault stores a member value and stages its default
// literal for the next Reset pass.
func RegisterMemberWithDefault[T any](r *Registry, owner Entity, fieldName string, val T, def string) error {
	if err := regkey.ValidateName(fieldName); err != nil {
		return err
	}
	SetWithDefault(r, regkey.Member(owner.ClassName(), owner.Name(), fieldName), val, def)
	return nil
}
