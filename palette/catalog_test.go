package palette

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/mathx"
)

func TestCatalogLookupFoldsCase(t *testing.T) {
	c := NewCatalog(MustNew("Straße", "#fff"), MustNew("Sea", "#000"))

	for _, name := range []string{"Sea", "SEA", "sea", " sea "} {
		if _, ok := c.Lookup(name); !ok {
			t.Errorf("Lookup(%q) not found", name)
		}
	}
	if _, ok := c.Lookup("STRASSE"); !ok {
		t.Error("Lookup should apply full Unicode case folding")
	}
	if _, ok := c.Lookup("lake"); ok {
		t.Error("Lookup(lake) reported ok")
	}
}

func TestCatalogAddReplaces(t *testing.T) {
	c := NewCatalog(MustNew("a", "#fff"), MustNew("b", "#000"))
	c.Add(MustNew("A", "#f00"))

	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	p, _ := c.Lookup("a")
	if p.At(0) != gg.Red {
		t.Error("Add did not replace the palette")
	}
	if got := c.Names(); !slices.Equal(got, []string{"A", "b"}) {
		t.Errorf("Names() = %v, want [A b]", got)
	}
}

func TestCatalogRandom(t *testing.T) {
	if _, ok := NewCatalog().Random(nil); ok {
		t.Error("Random on empty catalog reported ok")
	}
	c := Builtin()
	r := mathx.NewRand(1)
	names := c.Names()
	for range 20 {
		p, ok := c.Random(r)
		if !ok || !slices.Contains(names, p.Name) {
			t.Fatalf("Random() = (%q, %v)", p.Name, ok)
		}
	}
}

func TestBuiltin(t *testing.T) {
	c := Builtin()
	if c.Len() == 0 {
		t.Fatal("Builtin() is empty")
	}
	for _, name := range c.Names() {
		p, _ := c.Lookup(name)
		if p.Len() == 0 {
			t.Errorf("builtin palette %q has no colors", name)
		}
		if p.Background == nil {
			t.Errorf("builtin palette %q has no background", name)
		}
	}
	// Each call returns an independent catalog.
	c.Add(MustNew("extra", "#fff"))
	if _, ok := Builtin().Lookup("extra"); ok {
		t.Error("Builtin() catalogs share state")
	}
}

func TestCatalogLoadJSON(t *testing.T) {
	c := NewCatalog()
	n, err := c.LoadJSON([]byte(`[
		{"name": "dusk", "colors": ["#2b2d42", "#8d99ae"]},
		{"name": "broken", "colors": ["#xyz"]}
	]`))
	if n != 1 {
		t.Errorf("LoadJSON added %d, want 1", n)
	}
	if !errors.Is(err, sketch.ErrInvalidHexColor) {
		t.Errorf("LoadJSON error = %v, want ErrInvalidHexColor", err)
	}
	if _, ok := c.Lookup("Dusk"); !ok {
		t.Error("dusk not added")
	}
}
