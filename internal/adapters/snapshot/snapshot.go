// Package snapshot implements the SnapshotStore secondary port with one
// JSON document per entity kind. Writes are atomic (temp file + rename)
// and loads are all-or-nothing: a version, kind, or count mismatch rejects
// the whole file.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// FormatVersion is bumped whenever the envelope or any record layout
// changes shape. Older or newer snapshots are rejected outright rather
// than decoded into the wrong struct layout.
const FormatVersion = 1

// envelope wraps a collection's records with enough metadata to refuse a
// file that was not written for this layout.
type envelope struct {
	FormatVersion int             `json:"format_version"`
	Kind          string          `json:"kind"`
	Count         int             `json:"count"`
	Records       json.RawMessage `json:"records"`
}

// FileStore reads and writes snapshots under a single directory, one
// <kind>.json file per entity kind.
type FileStore struct {
	dir string
	log *logrus.Logger
}

// NewFileStore creates a snapshot store rooted at dir, creating it if
// needed.
func NewFileStore(dir string, log *logrus.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	return &FileStore{dir: dir, log: log}, nil
}

func (s *FileStore) path(kind string) string {
	return filepath.Join(s.dir, kind+".json")
}

// Save writes all records of one kind. The write goes through a temp file
// in the same directory so a crash never leaves a half-written snapshot
// behind.
func (s *FileStore) Save(kind string, count int, records any) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode %s records: %w", kind, err)
	}

	data, err := json.MarshalIndent(envelope{
		FormatVersion: FormatVersion,
		Kind:          kind,
		Count:         count,
		Records:       raw,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s snapshot: %w", kind, err)
	}

	tmp, err := os.CreateTemp(s.dir, kind+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s snapshot: %w", kind, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close %s snapshot: %w", kind, err)
	}

	if err := os.Rename(tmpName, s.path(kind)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s snapshot: %w", kind, err)
	}

	s.log.WithFields(logrus.Fields{"kind": kind, "count": count}).Debug("snapshot written")
	return nil
}

// Load reads all records of one kind into out and returns the stored
// count. A missing file is an error; partial loads never happen.
func (s *FileStore) Load(kind string, out any) (int, error) {
	data, err := os.ReadFile(s.path(kind))
	if err != nil {
		return 0, fmt.Errorf("failed to read %s snapshot: %w", kind, err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return 0, fmt.Errorf("failed to decode %s snapshot: %w", kind, err)
	}

	if env.FormatVersion != FormatVersion {
		return 0, fmt.Errorf("%s snapshot has format version %d, want %d", kind, env.FormatVersion, FormatVersion)
	}
	if env.Kind != kind {
		return 0, fmt.Errorf("snapshot kind is %q, want %q", env.Kind, kind)
	}

	// The count is checked against the actual record array before any
	// typed decode, so a truncated or hand-edited file fails loudly.
	var rawRecords []json.RawMessage
	if err := json.Unmarshal(env.Records, &rawRecords); err != nil {
		return 0, fmt.Errorf("failed to decode %s records: %w", kind, err)
	}
	if len(rawRecords) != env.Count {
		return 0, fmt.Errorf("%s snapshot declares %d records but holds %d", kind, env.Count, len(rawRecords))
	}

	if err := json.Unmarshal(env.Records, out); err != nil {
		return 0, fmt.Errorf("failed to decode %s records: %w", kind, err)
	}
	return env.Count, nil
}
