package register

import "sort"

// store is the capability boundary between the Registry and one typed store.
// The concrete element type stays behind this interface; string staging and
// the Reset pass are the only operations the Registry drives without knowing
// the type.
type store interface {
	getAny(key string) (any, bool)
	getString(key string) (string, bool)
	setString(key, s string)
	reset(r *Registry) error
}

// typedStore holds every registered value of a single type, together with
// the staged string literals awaiting the next Reset pass.
type typedStore[T any] struct {
	data       map[string]T
	stringData map[string]string
}

func newTypedStore[T any]() *typedStore[T] {
	return &typedStore[T]{
		data:       make(map[string]T),
		stringData: make(map[string]string),
	}
}

func (s *typedStore[T]) get(key string) (T, bool) {
	v, ok := s.data[key]
	return v, ok
}

// getAny is the type-erased lookup used by instance reference resolution,
// which works from a reflect.Type rather than a type parameter.
func (s *typedStore[T]) getAny(key string) (any, bool) {
	v, ok := s.data[key]
	return v, ok
}

// set stores a value. If def is non-nil the literal is also staged, so the
// field is immediately usable and still revisable by Reset.
func (s *typedStore[T]) set(key string, v T, def *string) {
	s.data[key] = v
	if def != nil {
		s.stringData[key] = *def
	}
}

func (s *typedStore[T]) getString(key string) (string, bool) {
	raw, ok := s.stringData[key]
	return raw, ok
}

func (s *typedStore[T]) setString(key, raw string) {
	s.stringData[key] = raw
}

// reset overwrites the stored value for every staged key by converting its
// literal. Staged keys are visited in sorted order so failures are
// deterministic; the first error aborts the pass.
func (s *typedStore[T]) reset(r *Registry) error {
	keys := make([]string, 0, len(s.stringData))
	for key := range s.stringData {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		raw := s.stringData[key]
		cur, ok := s.data[key]
		if !ok {
			return &KeyNotFoundError{Key: key}
		}
		r.logger.Debug("Resetting value from staged string.", "key", key, "value", raw)
		v, err := resetValue(r, typeOf[T](), cur, raw)
		if err != nil {
			return err
		}
		s.data[key] = v.(T)
	}
	return nil
}
