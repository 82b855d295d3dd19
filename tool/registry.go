package tool

import (
	"fmt"
	"slices"
	"sync"
)

// Factory creates a tool bound to env.
type Factory func(env Env) Tool

var (
	registryMu sync.RWMutex
	factories  = make(map[Kind]Factory)
)

func init() {
	Register(KindSelect, NewSelect)
	Register(KindTranslate, NewTranslate)
	Register(KindRotate, NewRotate)
	Register(KindScale, NewScale)
	Register(KindScrub, NewScrub)
}

// Register installs the factory for kind.
//
// Register panics if factory is nil or kind is already registered, so
// conflicting registrations surface during program initialization.
func Register(kind Kind, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("tool: Register factory is nil")
	}
	if _, dup := factories[kind]; dup {
		panic("tool: Register called twice for " + kind.String())
	}
	factories[kind] = factory
}

// Unregister removes the factory for kind. It is a no-op for unknown kinds.
func Unregister(kind Kind) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, kind)
}

// New creates an idle tool of the given kind.
func New(kind Kind, env Env) (Tool, error) {
	registryMu.RLock()
	factory, ok := factories[kind]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return factory(env), nil
}

// MustNew is like New but panics on error.
func MustNew(kind Kind, env Env) Tool {
	t, err := New(kind, env)
	if err != nil {
		panic(err)
	}
	return t
}

// Kinds returns the registered kinds in ascending order.
func Kinds() []Kind {
	registryMu.RLock()
	defer registryMu.RUnlock()

	kinds := make([]Kind, 0, len(factories))
	for k := range factories {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// IsRegistered reports whether kind has a factory.
func IsRegistered(kind Kind) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[kind]
	return ok
}
