package fingerprint

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Ledger maps manifest paths (relative to the directory it lives in) to
// their last recorded fingerprints.
type Ledger struct {
	Entries map[string]string `json:"entries"`
}

func defaultPath(dir string) string {
	// Prefer storing the ledger under .git to avoid accidental commits;
	// fall back to the directory itself.
	gitDir := filepath.Join(dir, ".git")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		return filepath.Join(gitDir, "holdallprint.json")
	}
	return filepath.Join(dir, ".holdallprint.json")
}

// Load reads the ledger for dir, returning an empty one when missing.
func Load(dir string) (Ledger, error) {
	var l Ledger
	b, err := os.ReadFile(defaultPath(dir))
	if err != nil {
		return Ledger{Entries: map[string]string{}}, err
	}
	if err := json.Unmarshal(b, &l); err != nil {
		return Ledger{Entries: map[string]string{}}, err
	}
	if l.Entries == nil {
		l.Entries = map[string]string{}
	}
	return l, nil
}

// Save writes the ledger for dir.
func Save(dir string, l Ledger) error {
	if l.Entries == nil {
		return errors.New("empty ledger")
	}
	b, _ := json.MarshalIndent(l, "", "  ")
	return os.WriteFile(defaultPath(dir), b, 0644)
}
