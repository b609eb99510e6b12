package nictag

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const header = "NAME\tMACADDRESS\tLINK\tTYPE\n"

// Table maps tag names to tags.
type Table map[string]*Tag

// Add inserts the tag, replacing any previous tag with the same name.
func (t Table) Add(tag *Tag) {
	t[tag.Name] = tag
}

// WriteTo writes the tab-separated report: a header row and one row per tag.
// Row order follows map iteration and is not stable.
func (t Table) WriteTo(w io.Writer) (int64, error) {
	var total int64

	n, err := io.WriteString(w, header)
	total += int64(n)
	if err != nil {
		return total, err
	}

	for _, tag := range t {
		n, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", tag.Name, tag.MacAddress, tag.Link, tag.Type)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// WriteYAML writes the table as a YAML mapping keyed by tag name.
func (t Table) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(map[string]*Tag(t)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}
