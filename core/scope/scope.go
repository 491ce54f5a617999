package scope

import (
	"fmt"
	"reflect"
	"sync"
)

type entry struct {
	typ     reflect.Type
	value   any
	factory func() any
}

// Scope is a type-keyed service registry with parent chaining. An application
// registers services on a root scope; the dispatch layer derives a child per
// request so request-scoped registrations never leak between requests.
// Resolution is flat per-type lookup: no dependency graph is constructed.
// Safe for concurrent use.
type Scope struct {
	mu      sync.RWMutex
	parent  *Scope
	entries []entry
	index   map[reflect.Type]int
}

// New creates an empty root scope.
func New() *Scope {
	return &Scope{index: make(map[reflect.Type]int)}
}

// Child creates a scope that falls back to s for types it does not hold.
func (s *Scope) Child() *Scope {
	c := New()
	c.parent = s
	return c
}

// Register stores value as a singleton under the type T. T may be an
// interface type to register an implementation under its contract:
//
//	scope.Register[UserStore](s, newMemoryStore())
//
// Registering the same type again replaces the previous entry.
func Register[T any](s *Scope, value T) {
	s.put(reflect.TypeFor[T](), entry{value: value})
}

// Provide stores a transient factory under the type T. The factory runs on
// every resolution, so each consumer receives a fresh value.
func Provide[T any](s *Scope, factory func() T) {
	s.put(reflect.TypeFor[T](), entry{factory: func() any { return factory() }})
}

func (s *Scope) put(t reflect.Type, e entry) {
	e.typ = t
	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.index[t]; ok {
		s.entries[i] = e
		return
	}
	s.index[t] = len(s.entries)
	s.entries = append(s.entries, e)
}

// ResolveType returns the value registered under t. Lookup order: exact type
// in this scope, exact type up the parent chain, then an assignability scan
// in registration order (matching implementations of interface types),
// nearest scope first. Returns ErrNotRegistered when nothing matches.
func (s *Scope) ResolveType(t reflect.Type) (any, error) {
	for cur := s; cur != nil; cur = cur.parent {
		if e, ok := cur.lookup(t); ok {
			return materialize(e), nil
		}
	}
	for cur := s; cur != nil; cur = cur.parent {
		if e, ok := cur.scan(t); ok {
			return materialize(e), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotRegistered, t)
}

func (s *Scope) lookup(t reflect.Type) (entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i, ok := s.index[t]; ok {
		return s.entries[i], true
	}
	return entry{}, false
}

func (s *Scope) scan(t reflect.Type) (entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.typ.AssignableTo(t) {
			return e, true
		}
	}
	return entry{}, false
}

// materialize runs outside the scope's lock so factories may resolve their
// own dependencies from the same scope.
func materialize(e entry) any {
	if e.factory != nil {
		return e.factory()
	}
	return e.value
}

// Resolve returns the value registered under the type T.
func Resolve[T any](s *Scope) (T, error) {
	v, err := s.ResolveType(reflect.TypeFor[T]())
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
