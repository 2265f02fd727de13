package palette

import (
	"fmt"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
	"io/ioutil"
)

// FromMap converts decoded JSON/YAML data into a Group. Values must be hex
// strings or nested maps.
func FromMap(m map[string]interface{}) (Group, error) {
	g := make(Group, len(m))
	for k, v := range m {
		n, e := toNode(k, v)
		if e != nil {
			return nil, e
		}
		g[k] = n
	}
	return g, nil
}

func toNode(name string, v interface{}) (Node, error) {
	switch v := v.(type) {
	case string:
		return Leaf(v), nil
	case map[string]interface{}:
		g, e := FromMap(v)
		if e != nil {
			return nil, e
		}
		return g, nil
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(v))
		for k, vv := range v {
			ks := fmt.Sprint(k)
			if _, dup := m[ks]; dup {
				return nil, errors.Wrapf(ErrInvalidPaletteEntry, "%s: duplicate key %q", name, ks)
			}
			m[ks] = vv
		}
		g, e := FromMap(m)
		if e != nil {
			return nil, e
		}
		return g, nil
	default:
		return nil, errors.Wrapf(ErrInvalidPaletteEntry, "%s: want hex string or group, got %T", name, v)
	}
}

// LoadFile reads a JSON or YAML palette file. Keys are kept exactly as
// written.
func LoadFile(path string) (Group, error) {
	b, e := ioutil.ReadFile(path)
	if e != nil {
		return nil, errors.Wrapf(e, "reading palette %s", path)
	}

	var raw interface{}
	if e := yaml.Unmarshal(b, &raw); e != nil {
		return nil, errors.Wrapf(ErrInvalidPaletteEntry, "%s: %v", path, e)
	}

	n, e := toNode(path, raw)
	if e != nil {
		return nil, e
	}
	g, ok := n.(Group)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidPaletteEntry, "%s: palette root must be a mapping", path)
	}
	return g, nil
}
