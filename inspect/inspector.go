// Package inspect dumps the container's geometry and pan state as JSON so
// tests and scripts can follow a running session without reading the screen.
package inspect

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// EnvVar turns inspection on when set to "1".
const EnvVar = "SIDENAV_INSPECT"

// Introspectable is implemented by components that can describe themselves.
type Introspectable interface {
	InspectNode() *Node
}

// DefaultPath is where snapshots go unless a Writer is given another path.
func DefaultPath() string {
	return filepath.Join(os.TempDir(), "sidenav-inspect.json")
}

// Enabled reports whether SIDENAV_INSPECT=1 is set.
func Enabled() bool {
	return os.Getenv(EnvVar) == "1"
}

// Writer writes snapshots to one file, skipping frames whose content did
// not change. A nil Writer discards everything.
type Writer struct {
	path string
	last []byte
}

// NewWriter creates a writer for path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// FromEnv returns a writer at DefaultPath when inspection is enabled, else nil.
func FromEnv() *Writer {
	if !Enabled() {
		return nil
	}
	return NewWriter(DefaultPath())
}

// Path returns the output file, or "" for a nil writer.
func (w *Writer) Path() string {
	if w == nil {
		return ""
	}
	return w.path
}

// Write stores s unless it matches the previous snapshot apart from its
// timestamp.
func (w *Writer) Write(s *Snapshot) error {
	if w == nil {
		return nil
	}
	key, err := json.Marshal(s.withoutTimestamp())
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if bytes.Equal(key, w.last) {
		return nil
	}
	if err := WriteSnapshotToPath(s, w.path); err != nil {
		return err
	}
	w.last = key
	return nil
}

// WriteSnapshotToPath writes s as indented JSON. The file is replaced
// atomically so readers never see a partial snapshot.
func WriteSnapshotToPath(s *Snapshot, path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".inspect-*.json")
	if err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}
