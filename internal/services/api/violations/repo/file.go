package repo

import (
	"bytes"
	"context"
	"os"

	"figurefriday/internal/core/violation"
	perr "figurefriday/internal/platform/errors"
	"figurefriday/internal/platform/store"
)

// File reads the JSON snapshot from disk
type File struct{ path string }

// NewFile returns a repo reading path
func NewFile(path string) *File { return &File{path: path} }

// Load decodes and validates the whole snapshot; the version hashes the raw bytes
func (f *File) Load(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	b, err := os.ReadFile(f.path)
	if err != nil {
		return Snapshot{}, perr.Wrapf(err, perr.ErrorCodeUnavailable, "violations: read %s", f.path)
	}
	items, err := violation.DecodeSnapshot(bytes.NewReader(b))
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Items: items, Version: store.ContentVersion("violations", b)}, nil
}
