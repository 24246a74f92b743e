// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so published recipe datasets can live in AWS S3 or a
// self-hosted MinIO instance. The indexer's publish step uploads artifacts through it,
// and the partition package reads them back on demand.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easy to
// mock storage interactions in unit tests (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: verify or create the dataset bucket.
//   - PutObject: upload a compressed artifact.
//   - GetObject: retrieve an artifact as a stream (missing keys fail eagerly).
//   - ListObjects: list artifacts under a prefix.
//   - RemoveObject: prune artifacts that are no longer part of a dataset.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
