package checks

import (
	"context"
	"fmt"
	"strings"

	"recipe-viewer/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// BucketReport describes whether a published dataset location exists.
type BucketReport struct {
	Bucket       string `json:"bucket"`
	Prefix       string `json:"prefix"`
	BucketExists bool   `json:"bucket_exists"`
	// Populated is true when at least one object lives under Prefix.
	Populated bool `json:"populated"`
}

// CheckBucket reports whether the bucket exists and holds anything under prefix.
func CheckBucket(ctx context.Context, client storage.Client, bucket, prefix string) (*BucketReport, error) {
	report := &BucketReport{Bucket: bucket, Prefix: prefix}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	report.BucketExists = exists
	if !exists {
		return report, nil
	}

	listPrefix := ""
	if prefix != "" {
		listPrefix = strings.TrimSuffix(prefix, "/") + "/"
	}
	opts := minio.ListObjectsOptions{
		Prefix:    listPrefix,
		Recursive: false,
		MaxKeys:   1,
	}

	// Cancelling stops the listing goroutine after the first object.
	listCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	for obj := range client.ListObjects(listCtx, bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", prefix, obj.Err)
		}
		report.Populated = true
		break
	}
	return report, nil
}

// FixBucket creates the bucket when it is missing.
func FixBucket(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger) error {
	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		logger.Error("Failed to create bucket", zap.String("bucket", bucket), zap.Error(err))
		return err
	}
	logger.Info("Created missing bucket", zap.String("bucket", bucket))
	return nil
}
