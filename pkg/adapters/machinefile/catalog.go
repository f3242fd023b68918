package machinefile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Catalog is a named set of machine definitions held in memory.
type Catalog struct {
	mu   sync.RWMutex
	defs map[string]*Definition
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{defs: make(map[string]*Definition)}
}

// LoadDir parses every *.yaml, *.yml and *.json file of dir into a catalog.
// Entries are keyed by file name without extension. The first broken file
// aborts the load.
func LoadDir(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read machine directory: %w", err)
	}

	c := NewCatalog()
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		switch strings.ToLower(ext) {
		case ".yaml", ".yml", ".json":
		default:
			continue
		}
		def, err := Load(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		c.Add(strings.TrimSuffix(e.Name(), ext), def)
	}
	return c, nil
}

// Add registers def under name, replacing any previous entry.
func (c *Catalog) Add(name string, def *Definition) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.defs[name] = def
}

// Get returns the definition registered under name.
func (c *Catalog) Get(name string) (*Definition, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	def, ok := c.defs[name]
	if !ok {
		return nil, fmt.Errorf("machine not found: %s", name)
	}
	return def, nil
}

// List returns all names in sorted order.
func (c *Catalog) List() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.defs))
	for k := range c.defs {
		keys = append(keys, k)
	}
	sort.Strings(keys) // Deterministic order
	return keys
}
