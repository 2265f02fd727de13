package palette

import (
	"github.com/pkg/errors"
	"sort"
	"strings"
)

// ErrInvalidPaletteEntry is the cause of every error caused by malformed
// palette source data.
var ErrInvalidPaletteEntry = errors.New("invalid palette entry")

// Separator joins the keys of nested groups into a color name.
const Separator = "-"

// Node is either a Leaf or a Group.
type Node interface {
	isNode()
}

// Leaf is a single hex color.
type Leaf string

// Group maps names to nested nodes, e.g. a color family to its shades.
type Group map[string]Node

func (Leaf) isNode()  {}
func (Group) isNode() {}

// Without returns a shallow copy of g minus the named members. Names are
// matched case-insensitively.
func (g Group) Without(names ...string) Group {
	out := make(Group, len(g))
	for k, v := range g {
		out[k] = v
	}
	for k := range out {
		for _, name := range names {
			if strings.EqualFold(k, name) {
				delete(out, k)
			}
		}
	}
	return out
}

// Color is a flattened palette member before conversion.
type Color struct {
	Name string
	Hex  string
}

// Flatten walks root and returns every leaf, named by its joined key path,
// sorted by name. The root itself must be a Group, and names must be unique
// ignoring case.
func Flatten(root Node) ([]Color, error) {
	g, ok := root.(Group)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidPaletteEntry, "palette root must be a group, got %T", root)
	}

	var colors []Color
	if e := flatten(g, "", &colors); e != nil {
		return nil, e
	}
	sort.Slice(colors, func(i, j int) bool { return colors[i].Name < colors[j].Name })

	// names differing only in case are ambiguous to Without and lookups
	seen := make(map[string]string, len(colors))
	for _, c := range colors {
		folded := strings.ToLower(c.Name)
		if prev, dup := seen[folded]; dup {
			return nil, errors.Wrapf(ErrInvalidPaletteEntry, "duplicate color name %q (also %q)", c.Name, prev)
		}
		seen[folded] = c.Name
	}
	return colors, nil
}

func flatten(g Group, prefix string, out *[]Color) error {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if k == "" {
			return errors.Wrapf(ErrInvalidPaletteEntry, "empty name under %q", prefix)
		}
		name := k
		if prefix != "" {
			name = prefix + Separator + k
		}

		switch v := g[k].(type) {
		case Leaf:
			*out = append(*out, Color{name, string(v)})
		case Group:
			if e := flatten(v, name, out); e != nil {
				return e
			}
		default:
			return errors.Wrapf(ErrInvalidPaletteEntry, "%s: unsupported node %T", name, v)
		}
	}
	return nil
}
