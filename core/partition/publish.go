package partition

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"recipe-viewer/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// PublishOptions controls an upload of a built dataset directory.
type PublishOptions struct {
	// Dir is the built dataset directory.
	Dir string
	// Bucket is the destination bucket, created when missing.
	Bucket string
	// Prefix is prepended to every object key.
	Prefix string
	// Prune removes objects under Prefix that are not part of the dataset.
	Prune bool
	// Workers bounds concurrent uploads.
	Workers int
}

// PublishResult summarises a publish run.
type PublishResult struct {
	Uploaded int      `json:"uploaded"`
	Pruned   []string `json:"pruned,omitempty"`
}

// Publish uploads every artifact in opts.Dir to object storage.
func Publish(ctx context.Context, client storage.Client, opts PublishOptions, logger *zap.Logger) (*PublishResult, error) {
	// 1. Ensure the bucket exists
	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", opts.Bucket, err)
		}
		logger.Info("Created bucket", zap.String("bucket", opts.Bucket))
	}

	// 2. Collect local artifacts
	var files []string
	err = filepath.WalkDir(opts.Dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, Ext) {
			rel, err := filepath.Rel(opts.Dir, p)
			if err != nil {
				return err
			}
			files = append(files, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", opts.Dir, err)
	}

	// 3. Upload concurrently
	workers := opts.Workers
	if workers <= 0 {
		workers = 4
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, rel := range files {
		g.Go(func() error {
			return upload(gctx, client, opts, rel)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	result := &PublishResult{Uploaded: len(files)}
	logger.Info("Uploaded dataset", zap.Int("artifacts", len(files)), zap.String("bucket", opts.Bucket))

	// 4. Prune stale objects
	if opts.Prune {
		keep := make(map[string]struct{}, len(files))
		for _, rel := range files {
			keep[path.Join(opts.Prefix, rel)] = struct{}{}
		}
		listPrefix := ""
		if opts.Prefix != "" {
			listPrefix = strings.TrimSuffix(opts.Prefix, "/") + "/"
		}
		for obj := range client.ListObjects(ctx, opts.Bucket, minio.ListObjectsOptions{Prefix: listPrefix, Recursive: true}) {
			if obj.Err != nil {
				return result, fmt.Errorf("failed to list %s: %w", listPrefix, obj.Err)
			}
			if _, ok := keep[obj.Key]; ok {
				continue
			}
			if err := client.RemoveObject(ctx, opts.Bucket, obj.Key, minio.RemoveObjectOptions{}); err != nil {
				logger.Error("Failed to prune object", zap.String("key", obj.Key), zap.Error(err))
				return result, err
			}
			result.Pruned = append(result.Pruned, obj.Key)
		}
		if len(result.Pruned) > 0 {
			logger.Info("Pruned stale objects", zap.Int("count", len(result.Pruned)))
		}
	}

	return result, nil
}

func upload(ctx context.Context, client storage.Client, opts PublishOptions, rel string) error {
	f, err := os.Open(filepath.Join(opts.Dir, filepath.FromSlash(rel)))
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	key := path.Join(opts.Prefix, rel)
	_, err = client.PutObject(ctx, opts.Bucket, key, f, info.Size(), minio.PutObjectOptions{
		ContentType: "application/gzip",
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}
