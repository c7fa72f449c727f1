package holdall

import (
	"io"

	"github.com/holdall/holdall/internal/inventory"
)

// MarshalManifest pretty-prints a tree as JSON for humans or pipelines.
func MarshalManifest(w io.Writer, root *Item) error {
	return inventory.EncodeJSON(w, root)
}

// UnmarshalManifest decodes a JSON tree, useful for ingestion tests.
func UnmarshalManifest(r io.Reader) (*Item, error) {
	return inventory.DecodeJSON(r)
}
