package blueprint

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/SoroushXYZ/Bit-by-Bit/pkg/errors"
)

// Encode writes the blueprint as indented JSON. The output can be re-read
// with [Decode] for round-trip processing.
func Encode(b *Blueprint, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "encode blueprint")
	}
	return nil
}

// Decode reads a blueprint from JSON.
func Decode(r io.Reader) (*Blueprint, error) {
	var b Blueprint
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidBlueprint, err, "decode blueprint")
	}
	return &b, nil
}

// WriteFile saves the blueprint to path, creating parent directories as
// needed.
func WriteFile(b *Blueprint, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "create output directory %s", dir)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create blueprint file %s", path)
	}
	defer f.Close()

	if err := Encode(b, f); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "close blueprint file %s", path)
	}
	return nil
}

// ReadFile loads a blueprint from path.
func ReadFile(path string) (*Blueprint, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "blueprint file %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open blueprint file %s", path)
	}
	defer f.Close()
	return Decode(f)
}
