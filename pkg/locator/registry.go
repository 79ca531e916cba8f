package locator

import (
	_ "embed"
	"os"
	"sync"

	"github.com/jzx17/uiwait/pkg/types"
)

//go:embed navigation.yml
var defaultCatalog []byte

// The catalog is process-wide: parsed once on first use and read-only for
// the remainder of the run. Reload is an interactive-development escape
// hatch and must be enabled explicitly.
var registry struct {
	once        sync.Once
	mu          sync.RWMutex
	root        *Component
	err         error
	allowReload bool
}

// Root returns the process-wide catalog, parsing the embedded document on
// first call.
func Root() (*Component, error) {
	registry.once.Do(func() {
		root, err := Parse(defaultCatalog)
		registry.mu.Lock()
		registry.root, registry.err = root, err
		registry.mu.Unlock()
	})

	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.root, registry.err
}

// EnableReload permits catalog reloads for the rest of the process. Called
// once during session configuration.
func EnableReload() {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.allowReload = true
}

// Reload replaces the process-wide catalog from a file on disk. It fails
// with types.ErrReloadDisabled unless EnableReload was called.
func Reload(path string) error {
	registry.mu.RLock()
	allowed := registry.allowReload
	registry.mu.RUnlock()
	if !allowed {
		return types.ErrReloadDisabled
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	root, err := Parse(data)
	if err != nil {
		return err
	}

	// make sure the once is spent so Root never overwrites the reload
	_, _ = Root()

	registry.mu.Lock()
	registry.root, registry.err = root, nil
	registry.mu.Unlock()
	return nil
}
