package manifest

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads and parses a custom elements manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes manifest JSON. Malformed JSON is an error; tolerated shape
// deviations are handled by the schema types.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest JSON: %w", err)
	}
	return &m, nil
}
