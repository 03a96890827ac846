package dict

import (
	"fmt"
	"strings"
)

// Category is a named, ordered list of dictionary entries.
type Category struct {
	Name    string
	Entries []string
}

// Dictionary is an ordered set of categories. Category order and entry
// order are preserved through flattening.
type Dictionary struct {
	categories []Category
}

// New creates a dictionary from categories. Category names must be unique.
func New(categories ...Category) (*Dictionary, error) {
	seen := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		if _, dup := seen[c.Name]; dup {
			return nil, fmt.Errorf("duplicate category %q", c.Name)
		}
		seen[c.Name] = struct{}{}
	}
	return &Dictionary{categories: categories}, nil
}

// Len returns the number of categories.
func (d *Dictionary) Len() int { return len(d.categories) }

// Categories returns the ordered category names.
func (d *Dictionary) Categories() []string {
	out := make([]string, len(d.categories))
	for i, c := range d.categories {
		out[i] = c.Name
	}
	return out
}

// Entries returns the entries of a category, or nil if absent.
func (d *Dictionary) Entries(name string) []string {
	for _, c := range d.categories {
		if c.Name == name {
			return append([]string(nil), c.Entries...)
		}
	}
	return nil
}

// Flatten returns all entries across categories in order, with whitespace
// runs inside multi-token entries replaced by concat, so a two-word entry
// matches a single concatenated feature label.
func (d *Dictionary) Flatten(concat string) []string {
	var out []string
	for _, c := range d.categories {
		for _, e := range c.Entries {
			out = append(out, strings.Join(strings.Fields(e), concat))
		}
	}
	return out
}
