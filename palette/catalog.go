package palette

import (
	"math/rand/v2"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/gogpu/sketch/mathx"
)

// Catalog is a set of palettes looked up by name. Names match
// case-insensitively using Unicode case folding, so "Sea", "SEA" and "sea"
// refer to the same palette.
//
// Catalog is safe for concurrent use.
type Catalog struct {
	mu    sync.RWMutex
	byKey map[string]Palette
	keys  []string // insertion order
}

// NewCatalog creates a catalog holding ps.
func NewCatalog(ps ...Palette) *Catalog {
	c := &Catalog{byKey: make(map[string]Palette, len(ps))}
	for _, p := range ps {
		c.Add(p)
	}
	return c
}

// key folds name for lookup. Casers are stateful, so each call gets its own.
func key(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// Add stores p, replacing any palette with the same folded name.
func (c *Catalog) Add(p Palette) {
	k := key(p.Name)
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.byKey[k]; !exists {
		c.keys = append(c.keys, k)
	}
	c.byKey[k] = p
}

// Lookup returns the palette registered under name.
func (c *Catalog) Lookup(name string) (Palette, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.byKey[key(name)]
	return p, ok
}

// Names returns the palette names in insertion order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, len(c.keys))
	for i, k := range c.keys {
		names[i] = c.byKey[k].Name
	}
	return names
}

// Len returns the number of palettes.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.keys)
}

// Random returns a uniformly chosen palette. ok is false when the catalog
// is empty.
func (c *Catalog) Random(r *rand.Rand) (Palette, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	k, ok := mathx.Choose(r, c.keys)
	if !ok {
		return Palette{}, false
	}
	return c.byKey[k], true
}

// LoadJSON parses a palette collection (see ParseJSON) and adds every valid
// palette. It returns the number added together with any per-entry errors.
func (c *Catalog) LoadJSON(data []byte) (int, error) {
	ps, err := ParseJSON(data)
	for _, p := range ps {
		c.Add(p)
	}
	return len(ps), err
}

// Builtin returns a new catalog with the palettes shipped with the library.
func Builtin() *Catalog {
	return NewCatalog(
		MustNew("Sea", "#264653", "#2a9d8f", "#e9c46a", "#f4a261", "#e76f51").
			WithBackground(mustHex("#f1faee")),
		MustNew("Ink", "#1b1b1e", "#373f51", "#58a4b0", "#a9bcd0", "#d8dbe2").
			WithBackground(mustHex("#f4f4f9")).
			WithStroke(mustHex("#1b1b1e")),
		MustNew("Bauhaus", "#d62828", "#f77f00", "#fcbf49", "#003049").
			WithBackground(mustHex("#eae2b7")).
			WithStroke(mustHex("#003049")),
		MustNew("Candy", "#ff99c8", "#fcf6bd", "#d0f4de", "#a9def9", "#e4c1f9").
			WithBackground(mustHex("#ffffff")),
		MustNew("Mono", "#000000", "#333333", "#666666", "#999999", "#cccccc").
			WithBackground(mustHex("#ffffff")).
			WithStroke(mustHex("#000000")),
	)
}
