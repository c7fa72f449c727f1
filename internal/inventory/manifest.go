package inventory

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML manifest into an item tree.
func Parse(b []byte) (*Item, error) {
	var root Item
	if err := yaml.Unmarshal(b, &root); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if root.Name == "" {
		return nil, fmt.Errorf("parse manifest: top-level item has no name")
	}
	return &root, nil
}

// Load reads and parses a YAML manifest file.
func Load(path string) (*Item, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Encode renders the tree as YAML.
func Encode(root *Item) ([]byte, error) {
	return yaml.Marshal(root)
}

// Save writes the tree back to a YAML manifest file.
func Save(path string, root *Item) error {
	b, err := Encode(root)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// EncodeJSON pretty-prints the tree as JSON for humans or pipelines.
func EncodeJSON(w io.Writer, root *Item) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(root)
}

// DecodeJSON reads a JSON-encoded tree, useful for ingestion tests.
func DecodeJSON(r io.Reader) (*Item, error) {
	var root Item
	if err := json.NewDecoder(r).Decode(&root); err != nil {
		return nil, err
	}
	return &root, nil
}
