package indexer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"recipe-viewer/core/partition"
	"recipe-viewer/core/validation"
	"recipe-viewer/feature/recipes/models"

	"github.com/klauspost/compress/gzip"
)

// Load reads and validates the raw dump at path. Nothing is written.
func Load(path string) (*models.Dump, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceMissing, path)
		}
		return nil, fmt.Errorf("open dump: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSourceMalformed, path, err)
		}
		defer zr.Close()
		r = zr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceMalformed, path, err)
	}

	var dump models.Dump
	if err := json.Unmarshal(data, &dump); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceMalformed, path, err)
	}
	var raw models.DumpSections
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceMalformed, path, err)
	}
	dump.Raw = &raw
	if err := Validate(&dump); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceMalformed, path, err)
	}
	return &dump, nil
}

// Validate checks the structural expectations of a decoded dump.
func Validate(dump *models.Dump) error {
	if err := validation.New().Struct(dump); err != nil {
		return err
	}
	for name := range dump.Recipemaps {
		if !partition.SafeMapName(name) {
			return fmt.Errorf("recipe map name %q cannot be used as a partition name", name)
		}
		if name == "manifest" {
			return fmt.Errorf("recipe map name %q collides with the manifest", name)
		}
	}
	return nil
}
