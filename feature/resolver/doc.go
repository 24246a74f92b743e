// Package resolver loads recipe partitions on demand and turns recipe references into
// full recipes.
//
// A Resolver owns its partition cache and in-flight table; construct one per process and
// share it. Partitions are fetched through a partition.Source, decoded once, and kept
// for the Resolver's lifetime. At most one fetch per partition is in flight: concurrent
// callers wait on the same singleflight call and observe the same data.
//
// Failures are returned wrapped in ErrPartitionFetch and are not cached.
package resolver
