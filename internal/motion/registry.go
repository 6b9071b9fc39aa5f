package motion

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
)

// Options carries construction parameters shared by all source factories.
type Options struct {
	// BridgeAddr is the listen address for network-backed sources.
	BridgeAddr string

	// Logger receives source lifecycle events. May be nil.
	Logger *log.Logger
}

// SourceInfo contains metadata about a registered source.
type SourceInfo struct {
	ID          string
	Description string
}

// Factory is a function that creates a new instance of a source.
type Factory func(Options) (Source, error)

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a source factory to the registry.
// Typically called from a source's init() function.
// Panics if a source with the same ID is already registered.
func Register(id, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("motion: source %q already registered", id))
	}

	factories[id] = f
	descriptions[id] = description
}

// List returns information about all registered sources, sorted by ID.
func List() []SourceInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SourceInfo, 0, len(factories))
	for id := range factories {
		result = append(result, SourceInfo{
			ID:          id,
			Description: descriptions[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new source by its ID.
// Returns an error if the source ID is not registered.
func Create(id string, opts Options) (Source, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("motion: unknown source %q", id)
	}

	return f(opts)
}

// Exists checks if a source with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
