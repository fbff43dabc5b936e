package register

import (
	"log/slog"
	"reflect"
	"sort"

	"github.com/simwire/simwire/internal/simtime"
)

// defaultListSeps are the characters that separate elements of a bracketed
// sequence literal. The configuration reader may override them through
// SetListSeparators.
const defaultListSeps = ", \t\r\n"

// Registry is the root object of the wiring layer. It owns one typed store
// per distinct Go type, an index from key to the owning type, the custom
// converter table, and the two named callback tables.
//
// Keys are unique per Registry, not per store: TypeNames records which store
// currently owns each key, and string-routed operations (SetString,
// GetString) go through it.
type Registry struct {
	stores     map[reflect.Type]store
	typeNames  map[string]reflect.Type
	converters map[reflect.Type]converterFunc
	listSeps   string

	voidCallbacks map[string][]func()
	timeCallbacks map[string][]func(simtime.Time)

	logger *slog.Logger
}

// New creates an empty Registry logging through the given sink. A nil logger
// falls back to slog.Default.
func New(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		stores:        make(map[reflect.Type]store),
		typeNames:     make(map[string]reflect.Type),
		converters:    make(map[reflect.Type]converterFunc),
		listSeps:      defaultListSeps,
		voidCallbacks: make(map[string][]func()),
		timeCallbacks: make(map[string][]func(simtime.Time)),
		logger:        logger,
	}
}

// SetListSeparators replaces the separator character set used when parsing
// bracketed sequence literals.
func (r *Registry) SetListSeparators(seps string) {
	r.listSeps = seps
}

// HasKey reports whether the key is present in the register, regardless of
// the type it is stored under.
func (r *Registry) HasKey(key string) bool {
	_, ok := r.typeNames[key]
	return ok
}

// TypeName returns the name of the type the key is currently stored under.
func (r *Registry) TypeName(key string) (string, bool) {
	t, ok := r.typeNames[key]
	if !ok {
		return "", false
	}
	return t.String(), true
}

// storeForKey routes a key through the type index to its owning store.
func (r *Registry) storeForKey(key string) (store, error) {
	t, ok := r.typeNames[key]
	if !ok {
		return nil, &KeyNotFoundError{Key: key}
	}
	return r.stores[t], nil
}

// GetString returns the staged string literal for the key.
func (r *Registry) GetString(key string) (string, error) {
	s, err := r.storeForKey(key)
	if err != nil {
		return "", err
	}
	raw, ok := s.getString(key)
	if !ok {
		return "", &KeyNotFoundError{Key: key}
	}
	return raw, nil
}

// SetString stages a string literal against an existing key. The value it
// denotes is applied by the next Reset pass.
func (r *Registry) SetString(key, raw string) error {
	s, err := r.storeForKey(key)
	if err != nil {
		return err
	}
	s.setString(key, raw)
	return nil
}

// Reset converts every staged string in every store into its final typed
// value. Store iteration order is fixed but immaterial: conversion only
// overwrites already-stored values, and instance references resolve against
// entries wired by Set, never against another store's pending strings.
// Re-running Reset with the same staged strings re-applies the same
// conversions.
func (r *Registry) Reset() error {
	types := make([]reflect.Type, 0, len(r.stores))
	for t := range r.stores {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].String() < types[j].String() })

	for _, t := range types {
		if err := r.stores[t].reset(r); err != nil {
			return err
		}
	}
	r.logger.Debug("Register reset complete.", "stores", len(types))
	return nil
}

// Clear wipes every store, the type index and both callback tables. The
// converter table survives: converters are wiring installed at construction
// time, not configuration data.
func (r *Registry) Clear() {
	r.stores = make(map[reflect.Type]store)
	r.typeNames = make(map[string]reflect.Type)
	r.voidCallbacks = make(map[string][]func())
	r.timeCallbacks = make(map[string][]func(simtime.Time))
	r.logger.Debug("Register cleared.")
}

// typeOf returns the reflect.Type identity for T.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// storeFor resolves the typed store for T, creating it on first use when
// create is set.
func storeFor[T any](r *Registry, create bool) (*typedStore[T], bool) {
	t := typeOf[T]()
	if s, ok := r.stores[t]; ok {
		return s.(*typedStore[T]), true
	}
	if !create {
		return nil, false
	}
	s := newTypedStore[T]()
	r.stores[t] = s
	r.logger.Debug("Created typed store.", "type", t.String())
	return s, true
}

// Set stores a value under the key and records the key's type in the index.
// Re-setting an existing key under a different type repoints the index to
// the new store; the old store keeps a stale, unreachable entry (last Set
// wins for type routing).
func Set[T any](r *Registry, key string, val T) {
	s, _ := storeFor[T](r, true)
	s.set(key, val, nil)
	r.typeNames[key] = typeOf[T]()
}

// SetWithDefault stores a value and stages its default literal in one step,
// as if Set then SetString had been called.
func SetWithDefault[T any](r *Registry, key string, val T, def string) {
	s, _ := storeFor[T](r, true)
	s.set(key, val, &def)
	r.typeNames[key] = typeOf[T]()
}

// Get returns the value stored under the key with type T. Requesting a key
// under the wrong type fails with ErrNotFound rather than coercing.
func Get[T any](r *Registry, key string) (T, error) {
	var zero T
	s, ok := storeFor[T](r, false)
	if !ok {
		return zero, &StoreNotFoundError{Type: typeOf[T]().String()}
	}
	v, ok := s.get(key)
	if !ok {
		return zero, &KeyNotFoundError{Key: key}
	}
	return v, nil
}
