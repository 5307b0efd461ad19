package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

var (
	ErrNoEngine            = errors.New("no channel engine is linked into this binary")
	ErrEngineNotRegistered = errors.New("channel engine is not registered")
	ErrAmbiguousEngine     = errors.New("several channel engines are linked, one has to be configured")
)

// Factory creates an engine keeping its key material under dataDir.
type Factory func(dataDir string, logger *slog.Logger) (Engine, error)

var (
	factoriesMu sync.RWMutex
	factories   = make(map[string]Factory)
)

// Register makes an engine implementation available by name. It is meant to be
// called from the init function of the implementing package and panics if name
// is registered twice.
func Register(name string, factory Factory) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()

	if factory == nil {
		panic("engine: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("engine: Register called twice for " + name)
	}

	factories[name] = factory
}

func Registered() []string {
	factoriesMu.RLock()
	defer factoriesMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Open creates the engine registered under name. An empty name selects the only
// registered engine.
func Open(name string, dataDir string, logger *slog.Logger) (Engine, error) {
	factoriesMu.RLock()
	factory, found := factories[name]
	count := len(factories)
	var only Factory
	if name == "" && count == 1 {
		for _, f := range factories {
			only = f
		}
	}
	factoriesMu.RUnlock()

	switch {
	case count == 0:
		return nil, ErrNoEngine
	case name == "" && only == nil:
		return nil, fmt.Errorf("%w: %v", ErrAmbiguousEngine, Registered())
	case name == "":
		factory = only
	case !found:
		return nil, fmt.Errorf("%w: %s", ErrEngineNotRegistered, name)
	}

	return factory(dataDir, logger)
}
