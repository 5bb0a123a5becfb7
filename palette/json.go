package palette

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/gogpu/sketch"
)

// ErrInvalidJSON is returned when palette data is not a JSON array.
var ErrInvalidJSON = errors.New("palette: data is not a JSON array of palettes")

// ParseJSON parses a palette collection of the form
//
//	[
//	  {"name": "sea", "colors": ["#264653", "#2a9d8f"], "background": "#f1faee", "stroke": "#000"},
//	  ...
//	]
//
// "background" and "stroke" are optional. Entries with a missing name, no
// colors or an invalid color are skipped; the palettes that did parse are
// returned together with an error joining one failure per skipped entry.
func ParseJSON(data []byte) ([]Palette, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, ErrInvalidJSON
	}

	var (
		out  []Palette
		errs []error
	)
	for i, entry := range root.Array() {
		p, err := parseEntry(entry)
		if err != nil {
			errs = append(errs, fmt.Errorf("entry %d: %w", i, err))
			continue
		}
		out = append(out, p)
	}
	return out, errors.Join(errs...)
}

func parseEntry(entry gjson.Result) (Palette, error) {
	if !entry.IsObject() {
		return Palette{}, errors.New("palette: entry is not an object")
	}
	name := entry.Get("name").String()
	if name == "" {
		return Palette{}, errors.New("palette: missing name")
	}

	var hexes []string
	for _, c := range entry.Get("colors").Array() {
		hexes = append(hexes, c.String())
	}
	p, err := New(name, hexes...)
	if err != nil {
		return Palette{}, err
	}

	if bg := entry.Get("background"); bg.Exists() {
		c, err := sketch.ParseHexColor(bg.String())
		if err != nil {
			return Palette{}, fmt.Errorf("palette %q background: %w", name, err)
		}
		p.Background = &c
	}
	if st := entry.Get("stroke"); st.Exists() {
		c, err := sketch.ParseHexColor(st.String())
		if err != nil {
			return Palette{}, fmt.Errorf("palette %q stroke: %w", name, err)
		}
		p.Stroke = &c
	}
	return p, nil
}
