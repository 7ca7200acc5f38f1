package mirror

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlpianPPLG/workvibe/internal/models"
)

// FileMirror keeps the snapshot in a single JSON file. This is the default
// backend: one small blob, no server to run.
type FileMirror struct {
	path string
}

func NewFile(path string) *FileMirror {
	return &FileMirror{path: path}
}

func (f *FileMirror) Load(_ context.Context) ([]models.Member, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read roster snapshot: %w", err)
	}
	return DecodeSnapshot(data)
}

// Save writes the whole snapshot atomically: a temp file in the same
// directory, then a rename over the slot. A torn write never leaves a
// half-written snapshot behind.
func (f *FileMirror) Save(_ context.Context, members []models.Member) error {
	data, err := EncodeSnapshot(members)
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".roster-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close snapshot: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

func (f *FileMirror) Close() {}
