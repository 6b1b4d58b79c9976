package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Writer places rendered files under a base directory. Every file is
// written to a temp sibling and renamed so readers never see a partial page.
type Writer struct {
	basePath string
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string) *Writer {
	return &Writer{basePath: basePath}
}

// BasePath exposes the writer root path.
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteFile stores data at the slash-separated rel path. Identical content
// already on disk is left untouched; changed reports whether a write happened.
func (w *Writer) WriteFile(rel string, data []byte) (changed bool, err error) {
	if w == nil {
		return false, fmt.Errorf("snapshot writer not configured")
	}
	if rel == "" {
		return false, fmt.Errorf("path required")
	}
	target := filepath.Join(w.basePath, filepath.FromSlash(rel))
	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return false, err
	}
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return false, err
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return false, err
	}
	return true, nil
}

// WriteManifest stores m as manifest.json.
func (w *Writer) WriteManifest(m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.WriteFile(ManifestFile, data)
	return err
}
