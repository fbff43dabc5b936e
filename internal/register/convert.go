package register

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/simwire/simwire/internal/regkey"
)

// converterFunc converts a staged literal into a value of the type it is
// registered under. The returned value must be assignable to that type.
type converterFunc func(r *Registry, raw string) (any, error)

// RegisterConverter installs a custom conversion for type T, overriding the
// built-in rules. The calendar collaborator is wired in this way.
func RegisterConverter[T any](r *Registry, fn func(*Registry, string) (T, error)) {
	t := typeOf[T]()
	r.converters[t] = func(r *Registry, raw string) (any, error) {
		return fn(r, raw)
	}
	r.logger.Debug("Registered converter.", "type", t.String())
}

// resetValue produces the replacement for a stored value from its staged
// literal. Values registered as pointers (the usual form for member fields)
// are written through, so the owning object observes the new value; the
// stored pointer itself is returned unchanged. Everything else is converted
// fresh.
func resetValue(r *Registry, t reflect.Type, cur any, raw string) (any, error) {
	if fn, ok := r.converters[t]; ok {
		return fn(r, raw)
	}

	if t.Kind() == reflect.Pointer {
		if e, ok := reflect.Zero(t).Interface().(Entity); ok {
			return r.resolveInstance(t, e.ClassName(), raw)
		}
		pv := reflect.ValueOf(cur)
		if pv.IsNil() {
			return nil, &ConversionError{Value: raw, Type: t.String(), Reason: "target pointer is nil"}
		}
		ev, err := r.convert(t.Elem(), raw)
		if err != nil {
			return nil, err
		}
		pv.Elem().Set(reflect.ValueOf(ev))
		return cur, nil
	}

	return r.convert(t, raw)
}

// convert dispatches on the target type: a registered custom converter wins,
// then the lexical rules by kind, with sequences converting their elements
// recursively.
func (r *Registry) convert(t reflect.Type, raw string) (any, error) {
	if fn, ok := r.converters[t]; ok {
		return fn(r, raw)
	}

	out := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.String:
		out.SetString(raw)

	case reflect.Bool:
		b, err := parseBool(raw)
		if err != nil {
			return nil, err
		}
		out.SetBool(b)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, t.Bits())
		if err != nil {
			return nil, &ConversionError{Value: raw, Type: t.String()}
		}
		out.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, t.Bits())
		if err != nil {
			return nil, &ConversionError{Value: raw, Type: t.String()}
		}
		out.SetUint(n)

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), t.Bits())
		if err != nil {
			return nil, &ConversionError{Value: raw, Type: t.String()}
		}
		out.SetFloat(f)

	case reflect.Pointer:
		if e, ok := reflect.Zero(t).Interface().(Entity); ok {
			return r.resolveInstance(t, e.ClassName(), raw)
		}
		ev, err := r.convert(t.Elem(), raw)
		if err != nil {
			return nil, err
		}
		p := reflect.New(t.Elem())
		p.Elem().Set(reflect.ValueOf(ev))
		out.Set(p)

	case reflect.Slice:
		elems, err := r.splitList(raw)
		if err != nil {
			return nil, err
		}
		seq := reflect.MakeSlice(t, 0, len(elems))
		for _, elem := range elems {
			ev, err := r.convert(t.Elem(), elem)
			if err != nil {
				return nil, err
			}
			seq = reflect.Append(seq, reflect.ValueOf(ev))
		}
		out.Set(seq)

	default:
		return nil, &ConversionError{Value: raw, Type: t.String(), Reason: "no conversion rule for this type"}
	}

	return out.Interface(), nil
}

// resolveInstance treats a staged literal as an instance name and resolves
// it against wired entries of the class. An unresolvable name is a missing
// key, whether the named instance is absent or no instance of the class was
// ever wired.
func (r *Registry) resolveInstance(t reflect.Type, className, raw string) (any, error) {
	key := regkey.Instance(className, strings.TrimSpace(raw))
	st, ok := r.stores[t]
	if !ok {
		return nil, &KeyNotFoundError{Key: key}
	}
	v, ok := st.getAny(key)
	if !ok {
		return nil, &KeyNotFoundError{Key: key}
	}
	return v, nil
}

// parseBool matches the boolean literal vocabulary, case-insensitively.
func parseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "yes", "y":
		return true, nil
	case "false", "no", "n":
		return false, nil
	}
	return false, &ConversionError{Value: raw, Type: "bool"}
}

// splitList breaks a bracket-delimited sequence literal into its element
// literals. Empty brackets yield no elements.
func (r *Registry) splitList(raw string) ([]string, error) {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) < 2 || trimmed[0] != '[' || trimmed[len(trimmed)-1] != ']' {
		return nil, &ConversionError{Value: raw, Type: "sequence", Reason: "expected a bracket-delimited list"}
	}
	inner := trimmed[1 : len(trimmed)-1]
	return strings.FieldsFunc(inner, func(c rune) bool {
		return strings.ContainsRune(r.listSeps, c)
	}), nil
}
