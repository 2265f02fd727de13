package palette

import (
	"github.com/mmuldo/colormatch/colorspace"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestFlatten(t *testing.T) {
	colors, err := Flatten(Group{
		"white": Leaf("#fff"),
		"red": Group{
			"500": Leaf("#ef4444"),
			"50":  Leaf("#fef2f2"),
		},
		"brand": Group{
			"primary": Group{
				"dark":  Leaf("#111111"),
				"light": Leaf("#eeeeee"),
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []Color{
		{"brand-primary-dark", "#111111"},
		{"brand-primary-light", "#eeeeee"},
		{"red-50", "#fef2f2"},
		{"red-500", "#ef4444"},
		{"white", "#fff"},
	}, colors)
}

func TestFlatten_invalid(t *testing.T) {
	for name, root := range map[string]Node{
		"leaf root":  Leaf("#fff"),
		"nil root":   nil,
		"empty key":  Group{"": Leaf("#fff")},
		"nil member": Group{"red": nil},
		"duplicate": Group{
			"red-500": Leaf("#ef4444"),
			"red":     Group{"500": Leaf("#ef4444")},
		},
		"duplicate ignoring case": Group{
			"Red": Leaf("#ff0000"),
			"red": Leaf("#00ff00"),
		},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Flatten(root)
			require.Error(t, err)
			assert.Equal(t, ErrInvalidPaletteEntry, errors.Cause(err))
		})
	}
}

func TestGroup_Without(t *testing.T) {
	g := Group{"sky": Leaf("#0ea5e9"), "lightblue": Leaf("#0ea5e9"), "red": Leaf("#ef4444")}
	out := g.Without("lightBlue", "missing")
	assert.Equal(t, Group{"sky": Leaf("#0ea5e9"), "red": Leaf("#ef4444")}, out)
	assert.Len(t, g, 3, "receiver untouched")
}

func TestBuild(t *testing.T) {
	p, err := Build(Group{
		"black": Leaf("#000"),
		"red":   Group{"500": Leaf("#EF4444")},
	}, nil)
	require.NoError(t, err)
	require.Equal(t, 2, p.Len())
	assert.Equal(t, colorspace.CIE{}, p.Converter())

	e, ok := p.Lookup("red-500")
	require.True(t, ok)
	assert.Equal(t, "#ef4444", e.Hex())
	assert.Equal(t, colorspace.ToLab(colorspace.RGB{R: 0xef, G: 0x44, B: 0x44}), e.Lab)

	assert.Equal(t, "black", p.At(0).Name)
	assert.Equal(t, "red-500", p.At(1).Name)

	_, ok = p.Lookup("red-600")
	assert.False(t, ok)

	entries := p.Entries()
	entries[0].Name = "mutated"
	assert.Equal(t, "black", p.At(0).Name)
}

func TestBuild_invalidHex(t *testing.T) {
	_, err := Build(Group{
		"ok":  Leaf("#000000"),
		"bad": Group{"500": Leaf("#ef44a")},
	}, nil)
	require.Error(t, err)
	assert.Equal(t, ErrInvalidPaletteEntry, errors.Cause(err))
	assert.Contains(t, err.Error(), "bad-500")

	_, err = Build(Group{"currentColor": Leaf("currentColor")}, nil)
	assert.Equal(t, ErrInvalidPaletteEntry, errors.Cause(err))
}

func TestBuild_idempotent(t *testing.T) {
	a, err := Build(Tailwind(), nil)
	require.NoError(t, err)
	b, err := Build(Tailwind(), nil)
	require.NoError(t, err)
	assert.Equal(t, a.Entries(), b.Entries())
}

func TestTailwind(t *testing.T) {
	p, err := Build(Tailwind().Without(DeprecatedTailwind...), colorspace.CIE{})
	require.NoError(t, err)
	assert.Equal(t, 22*11+2, p.Len())

	for name, hex := range map[string]string{
		"black":      "#000000",
		"white":      "#ffffff",
		"red-500":    "#ef4444",
		"slate-950":  "#020617",
		"sky-50":     "#f0f9ff",
		"neutral-50": "#fafafa",
	} {
		e, ok := p.Lookup(name)
		if assert.True(t, ok, name) {
			assert.Equal(t, hex, e.Hex(), name)
		}
	}
	_, ok := p.Lookup("lightBlue-500")
	assert.False(t, ok)

	all, err := Build(Tailwind(), nil)
	require.NoError(t, err)
	assert.Equal(t, 27*11+2, all.Len())
	e, ok := all.Lookup("lightBlue-500")
	require.True(t, ok)
	assert.Equal(t, "#0ea5e9", e.Hex())
}

func TestIndex(t *testing.T) {
	x := NewIndex(Tailwind(), nil)

	var wg sync.WaitGroup
	got := make([]*Palette, 16)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := x.Palette()
			assert.NoError(t, err)
			got[i] = p
		}(i)
	}
	wg.Wait()

	for _, p := range got {
		assert.True(t, p == got[0], "same palette instance")
	}
}

func TestIndex_error(t *testing.T) {
	x := NewIndex(Group{"bad": Leaf("nope")}, nil)
	_, err1 := x.Palette()
	_, err2 := x.Palette()
	assert.Equal(t, ErrInvalidPaletteEntry, errors.Cause(err1))
	assert.True(t, err1 == err2, "error memoized")
}

func TestFromMap(t *testing.T) {
	g, err := FromMap(map[string]interface{}{
		"black": "#000",
		"red": map[string]interface{}{
			"500": "#ef4444",
		},
		"blue": map[interface{}]interface{}{
			500: "#3b82f6",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, Group{
		"black": Leaf("#000"),
		"red":   Group{"500": Leaf("#ef4444")},
		"blue":  Group{"500": Leaf("#3b82f6")},
	}, g)

	_, err = FromMap(map[string]interface{}{"red": 500})
	assert.Equal(t, ErrInvalidPaletteEntry, errors.Cause(err))
}

func TestLoadFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "palette")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, ioutil.WriteFile(path, []byte(body), 0644))
		return path
	}

	g, err := LoadFile(write("brand.json", `{
  "ink": "#111827",
  "brandBlue": {"light": "#93c5fd", "dark": "#1e3a8a"}
}`))
	require.NoError(t, err)

	p, err := Build(g, nil)
	require.NoError(t, err)
	require.Equal(t, 3, p.Len())
	e, ok := p.Lookup("brandBlue-dark")
	require.True(t, ok)
	assert.Equal(t, "#1e3a8a", e.Hex())
	e, ok = p.Lookup("brandBlue-light")
	require.True(t, ok, "key case is kept")
	assert.Equal(t, "#93c5fd", e.Hex())
	_, ok = p.Lookup("brandblue-light")
	assert.False(t, ok)

	g, err = LoadFile(write("brand.yaml", "ink: '#111827'\nbrandBlue:\n  light: '#93c5fd'\n  500: '#3b82f6'\n"))
	require.NoError(t, err)
	p, err = Build(g, nil)
	require.NoError(t, err)
	e, ok = p.Lookup("brandBlue-500")
	require.True(t, ok)
	assert.Equal(t, "#3b82f6", e.Hex())

	// dots are part of the name, not a nesting separator
	g, err = LoadFile(write("dotted.json", `{"gray.500": "#6b7280", "gray": {"500": "#000000"}}`))
	require.NoError(t, err)
	p, err = Build(g, nil)
	require.NoError(t, err)
	require.Equal(t, 2, p.Len())
	e, ok = p.Lookup("gray.500")
	require.True(t, ok)
	assert.Equal(t, "#6b7280", e.Hex())
	e, ok = p.Lookup("gray-500")
	require.True(t, ok)
	assert.Equal(t, "#000000", e.Hex())

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	for name, body := range map[string]string{
		"case.json":   `{"Red": "#ff0000", "red": "#00ff00"}`,
		"nested.json": `{"gray": {"A": "#000000", "a": "#ffffff"}}`,
		"list.json":   `["#ff0000"]`,
		"scalar.yaml": `just a string`,
		"null.json":   `{"ink": null}`,
		"broken.json": `{"ink": `,
	} {
		path := write(name, body)
		t.Run(name, func(t *testing.T) {
			g, err := LoadFile(path)
			if err == nil {
				_, err = Build(g, nil)
			}
			require.Error(t, err)
			assert.Equal(t, ErrInvalidPaletteEntry, errors.Cause(err))
		})
	}
}
