// Package loader reads JSON or YAML documents into the generic tree form
// the differ consumes. YAML is a superset of JSON, so a single decoder
// serves both; unlike encoding/json it also keeps integers as ints, which
// the differ's type tags rely on.
package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads and decodes one document from path.
func LoadFile(path string) (interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a JSON or YAML document from raw bytes.
func Parse(data []byte) (interface{}, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
