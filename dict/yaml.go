package dict

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads a dictionary from YAML: a mapping of category name to a
// list of entries. Category order in the file is preserved, which is why
// the document is decoded through yaml.Node rather than a Go map.
func LoadYAML(r io.Reader) (*Dictionary, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("failed to decode dictionary: %w", err)
	}

	doc := &root
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) != 1 {
			return nil, fmt.Errorf("dictionary document must hold a single mapping")
		}
		doc = doc.Content[0]
	}
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("dictionary document must be a mapping of category to entries")
	}

	categories := make([]Category, 0, len(doc.Content)/2)
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, val := doc.Content[i], doc.Content[i+1]

		var name string
		if err := key.Decode(&name); err != nil {
			return nil, fmt.Errorf("invalid category name at line %d: %w", key.Line, err)
		}

		var entries []string
		switch val.Kind {
		case yaml.SequenceNode:
			if err := val.Decode(&entries); err != nil {
				return nil, fmt.Errorf("invalid entries for category %q: %w", name, err)
			}
		case yaml.ScalarNode:
			var single string
			if err := val.Decode(&single); err != nil {
				return nil, fmt.Errorf("invalid entry for category %q: %w", name, err)
			}
			entries = []string{single}
		default:
			return nil, fmt.Errorf("category %q must hold an entry list", name)
		}

		categories = append(categories, Category{Name: name, Entries: entries})
	}

	return New(categories...)
}

// LoadYAMLFile reads a dictionary from a YAML file.
func LoadYAMLFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary file: %w", err)
	}
	defer f.Close()
	return LoadYAML(f)
}
