package partition

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Stage collects artifacts in a scratch directory beside the target and swaps them into
// place on Commit. Until then the previous dataset at the target is untouched.
type Stage struct {
	dir       string
	target    string
	removeAll func(string) error
}

// NewStage creates a staging directory next to target.
func NewStage(target string) (*Stage, error) {
	target = filepath.Clean(target)
	parent := filepath.Dir(target)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return nil, fmt.Errorf("create output parent: %w", err)
	}
	dir := filepath.Join(parent, "."+filepath.Base(target)+".staging-"+uuid.NewString())
	if err := os.Mkdir(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create staging dir: %w", err)
	}
	return &Stage{dir: dir, target: target, removeAll: os.RemoveAll}, nil
}

// Dir returns the staging directory.
func (s *Stage) Dir() string {
	return s.dir
}

// Write encodes v into the staged artifact file.
func (s *Stage) Write(artifact string, v any) error {
	p := filepath.Join(s.dir, filepath.FromSlash(FileName(artifact)))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.Create(p)
	if err != nil {
		return err
	}
	if err := Encode(f, v); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", artifact, err)
	}
	return f.Close()
}

// Commit replaces the target with the staged directory. Once the swap succeeds the new
// dataset is live; a previous dataset that cannot be removed is logged and left behind.
func (s *Stage) Commit(logger *zap.Logger) error {
	var backup string
	if _, err := os.Stat(s.target); err == nil {
		backup = filepath.Join(filepath.Dir(s.target), "."+filepath.Base(s.target)+".old-"+uuid.NewString())
		if err := os.Rename(s.target, backup); err != nil {
			return fmt.Errorf("move previous output aside: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := os.Rename(s.dir, s.target); err != nil {
		if backup != "" {
			_ = os.Rename(backup, s.target)
		}
		return fmt.Errorf("swap staging into place: %w", err)
	}

	if backup != "" {
		if err := s.removeAll(backup); err != nil {
			logger.Warn("Failed to remove previous dataset",
				zap.String("dir", backup),
				zap.String("target", s.target),
				zap.Error(err),
			)
		}
	}
	return nil
}

// Discard removes the staging directory. It is a no-op after a successful Commit.
func (s *Stage) Discard() error {
	if _, err := os.Stat(s.dir); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return os.RemoveAll(s.dir)
}
