package palette

import (
	"github.com/mmuldo/colormatch/colorspace"
	"github.com/pkg/errors"
	"sync"
)

// Entry is a named palette color with its cached Lab value.
type Entry struct {
	Name string
	RGB  colorspace.RGB
	Lab  colorspace.Lab
}

// Hex returns the entry's color as "#rrggbb".
func (e Entry) Hex() string { return e.RGB.Hex() }

// Palette is an immutable set of entries ordered by name.
type Palette struct {
	conv    colorspace.Converter
	entries []Entry
	byName  map[string]int
}

// Build flattens root and converts every color once with conv. A nil conv
// selects colorspace.CIE. Any malformed color fails the whole build.
func Build(root Node, conv colorspace.Converter) (*Palette, error) {
	if conv == nil {
		conv = colorspace.CIE{}
	}

	colors, e := Flatten(root)
	if e != nil {
		return nil, e
	}

	p := &Palette{
		conv:    conv,
		entries: make([]Entry, len(colors)),
		byName:  make(map[string]int, len(colors)),
	}
	for i, c := range colors {
		rgb, e := colorspace.ParseHex(c.Hex)
		if e != nil {
			return nil, errors.Wrapf(ErrInvalidPaletteEntry, "%s: %v", c.Name, e)
		}
		p.entries[i] = Entry{c.Name, rgb, conv.Lab(rgb)}
		p.byName[c.Name] = i
	}

	return p, nil
}

// Len returns the number of entries.
func (p *Palette) Len() int {
	if p == nil {
		return 0
	}
	return len(p.entries)
}

// At returns the i'th entry in name order.
func (p *Palette) At(i int) Entry { return p.entries[i] }

// Entries returns a copy of all entries in name order.
func (p *Palette) Entries() []Entry {
	return append([]Entry(nil), p.entries...)
}

// Lookup returns the entry with the given name.
func (p *Palette) Lookup(name string) (Entry, bool) {
	i, ok := p.byName[name]
	if !ok {
		return Entry{}, false
	}
	return p.entries[i], true
}

// Converter returns the converter the entries were built with; query colors
// must go through the same one.
func (p *Palette) Converter() colorspace.Converter { return p.conv }

// Index builds a palette on first use and keeps it for its lifetime.
type Index struct {
	source Node
	conv   colorspace.Converter

	once    sync.Once
	palette *Palette
	err     error
}

// NewIndex returns an Index that will build source with conv.
func NewIndex(source Node, conv colorspace.Converter) *Index {
	return &Index{source: source, conv: conv}
}

// Palette returns the memoized palette, building it on the first call.
// A build error is memoized as well.
func (x *Index) Palette() (*Palette, error) {
	x.once.Do(func() {
		x.palette, x.err = Build(x.source, x.conv)
	})
	return x.palette, x.err
}
