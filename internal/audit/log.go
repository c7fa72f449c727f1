// Package audit keeps a JSONL log of manifest edits so removals can be
// reviewed after the fact.
package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// EditRecord is one removal operation applied to a manifest.
type EditRecord struct {
	Timestamp   time.Time `json:"timestamp"`
	Manifest    string    `json:"manifest"`
	Fingerprint string    `json:"fingerprint"` // tree fingerprint after the edit
	Removed     []string  `json:"removed"`     // node paths, in discovery order
	Limit       int       `json:"limit,omitempty"`
	DryRun      bool      `json:"dry_run,omitempty"`
}

// Log appends edit records to a JSONL file next to the manifest, preferring
// .git to keep the log out of commits.
type Log struct {
	logPath string
}

// NewLog returns the edit log for the directory holding the manifest.
func NewLog(dir string) *Log {
	gitDir := filepath.Join(dir, ".git")
	logPath := filepath.Join(dir, ".holdall_audit.jsonl")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		logPath = filepath.Join(gitDir, "holdall_audit.jsonl")
	}
	return &Log{logPath: logPath}
}

// Append writes one record to the log, creating the file on first use.
func (l *Log) Append(r EditRecord) error {
	f, err := os.OpenFile(l.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()
	b, err := json.Marshal(r)
	if err != nil {
		return err
	}
	if _, err := f.Write(append(b, '\n')); err != nil {
		return err
	}
	return nil
}

// History loads all records, oldest first. Malformed lines are skipped.
func (l *Log) History() ([]EditRecord, error) {
	f, err := os.Open(l.logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	var records []EditRecord
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var record EditRecord
		if err := json.Unmarshal(line, &record); err != nil {
			continue
		}
		records = append(records, record)
	}
	return records, sc.Err()
}
