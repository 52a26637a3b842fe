package effect

import (
	"fmt"
	"sort"
)

// Registry maps effect IDs to factories. It is filled at start-up and only
// read afterwards.
type Registry struct {
	factories map[ID]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[ID]Factory)}
}

// Register binds id to f, replacing any earlier binding.
// It panics if id is None or f is nil.
func (r *Registry) Register(id ID, f Factory) {
	if id == None {
		panic("effect: Register of None")
	}
	if f == nil {
		panic("effect: Register of nil factory for " + id.String())
	}
	r.factories[id] = f
}

// Has reports whether id resolves.
func (r *Registry) Has(id ID) bool {
	_, ok := r.factories[id]
	return ok
}

// Resolve builds the effect bound to id. A missing binding, a nil effect
// or a panicking factory is a *ResolutionError.
func (r *Registry) Resolve(id ID, env Env) (e Effect, err error) {
	f, ok := r.factories[id]
	if !ok {
		return nil, &ResolutionError{ID: id}
	}
	defer func() {
		if v := recover(); v != nil {
			e, err = nil, &ResolutionError{ID: id, Err: fmt.Errorf("panic: %v", v)}
		}
	}()
	if e = f(env); e == nil {
		return nil, &ResolutionError{ID: id}
	}
	return e, nil
}

// IDs lists the registered IDs in ascending order.
func (r *Registry) IDs() []ID {
	ids := make([]ID, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
