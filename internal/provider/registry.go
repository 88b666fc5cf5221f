package provider

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// Factory constructs a provider from its settings map.
type Factory func(logger *slog.Logger, settings map[string]string) (Provider, error)

var (
	mu        sync.Mutex
	factories = make(map[string]Factory)
)

// Register is called by provider packages in their init() to
// self-register. Duplicate names panic: that is a wiring bug.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("provider: %q already registered", name))
	}
	factories[name] = f
}

// New looks up the named provider factory and invokes it.
func New(name string, logger *slog.Logger, settings map[string]string) (Provider, error) {
	mu.Lock()
	f, ok := factories[name]
	mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("unsupported provider %q (registered: %v)", name, Names())
	}
	return f(logger, settings)
}

// Names returns the registered provider names, sorted.
func Names() []string {
	mu.Lock()
	defer mu.Unlock()
	names := make([]string, 0, len(factories))
	for n := range factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
