package partition

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"recipe-viewer/core/storage"

	"github.com/minio/minio-go/v7"
)

// ErrNotFound is returned when an artifact does not exist in the source.
var ErrNotFound = errors.New("artifact not found")

// Source serves dataset artifacts by name.
type Source interface {
	// Open returns the compressed artifact stream. Missing artifacts wrap ErrNotFound.
	Open(ctx context.Context, artifact string) (io.ReadCloser, error)
	// List returns the artifact names found under dir, sorted.
	List(ctx context.Context, dir string) ([]string, error)
}

// Fetch opens an artifact and decodes it into v.
func Fetch(ctx context.Context, src Source, artifact string, v any) error {
	rc, err := src.Open(ctx, artifact)
	if err != nil {
		return err
	}
	defer rc.Close()

	if err := Decode(rc, v); err != nil {
		return fmt.Errorf("%s: %w", artifact, err)
	}
	return nil
}

// NewSource builds the Source selected by cfg. client may be nil for local sources.
func NewSource(cfg Config, client storage.Client, bucket string) (Source, error) {
	switch cfg.Source {
	case SourceLocal, "":
		return &DirSource{Dir: cfg.Dir}, nil
	case SourceBucket:
		if client == nil {
			return nil, errors.New("bucket source requires a storage client")
		}
		return &BucketSource{Client: client, Bucket: bucket, Prefix: cfg.Prefix}, nil
	default:
		return nil, fmt.Errorf("unknown partition source %q", cfg.Source)
	}
}

// DirSource reads artifacts from a built dataset directory.
type DirSource struct {
	Dir string
}

func (s *DirSource) Open(ctx context.Context, artifact string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Join(s.Dir, filepath.FromSlash(FileName(artifact))))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", artifact, ErrNotFound)
		}
		return nil, err
	}
	return f, nil
}

func (s *DirSource) List(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(filepath.Join(s.Dir, filepath.FromSlash(dir)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if name, ok := TrimExt(e.Name()); ok {
			names = append(names, path.Join(dir, name))
		}
	}
	sort.Strings(names)
	return names, nil
}

// BucketSource reads artifacts from object storage under Prefix.
type BucketSource struct {
	Client storage.Client
	Bucket string
	Prefix string
}

func (s *BucketSource) key(artifact string) string {
	return path.Join(s.Prefix, FileName(artifact))
}

func (s *BucketSource) Open(ctx context.Context, artifact string) (io.ReadCloser, error) {
	rc, err := s.Client.GetObject(ctx, s.Bucket, s.key(artifact), minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("%s: %w", artifact, ErrNotFound)
		}
		return nil, fmt.Errorf("get %s: %w", artifact, err)
	}
	return rc, nil
}

func (s *BucketSource) List(ctx context.Context, dir string) ([]string, error) {
	prefix := path.Join(s.Prefix, dir) + "/"
	var names []string
	for obj := range s.Client.ListObjects(ctx, s.Bucket, minio.ListObjectsOptions{Prefix: prefix}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list %s: %w", prefix, obj.Err)
		}
		rel := strings.TrimPrefix(obj.Key, prefix)
		if strings.Contains(rel, "/") {
			continue
		}
		if name, ok := TrimExt(rel); ok {
			names = append(names, path.Join(dir, name))
		}
	}
	sort.Strings(names)
	return names, nil
}
