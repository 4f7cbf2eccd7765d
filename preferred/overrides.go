package preferred

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Override forces the choice of entry for a headword. Empty fields match any
// entry.
type Override struct {
	Pinyin      string `yaml:"pinyin"`
	Traditional string `yaml:"trad"`
}

// Overrides maps "headword" or "headword category" to an Override.
type Overrides map[string]Override

// Key builds the Overrides key for a headword and optional category.
func Key(simp, category string) string {
	if category == "" {
		return simp
	}
	return simp + " " + category
}

// LoadOverrides decodes a YAML mapping such as
//
//	干:
//	  pinyin: gan4
//	  trad: 幹
//	得 verb:
//	  pinyin: de2
//
// An empty document yields an empty table.
func LoadOverrides(r io.Reader) (Overrides, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Overrides{}, nil
		}
		return nil, fmt.Errorf("decode overrides: %w", err)
	}
	if len(doc.Content) == 0 {
		return Overrides{}, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("overrides: line %d: expected a mapping", root.Line)
	}

	overrides := make(Overrides, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("overrides: line %d: key is not a string", key.Line)
		}
		if val.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("overrides: line %d: value for %q is not a mapping", val.Line, key.Value)
		}
		for j := 1; j < len(val.Content); j += 2 {
			if val.Content[j].Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("overrides: line %d: field of %q is not a string", val.Content[j].Line, key.Value)
			}
		}
		var o Override
		if err := val.Decode(&o); err != nil {
			return nil, fmt.Errorf("overrides: %q: %w", key.Value, err)
		}
		overrides[key.Value] = o
	}
	return overrides, nil
}

// LoadOverridesFile reads an override table from path.
func LoadOverridesFile(path string) (Overrides, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open overrides: %w", err)
	}
	defer f.Close()
	return LoadOverrides(f)
}
