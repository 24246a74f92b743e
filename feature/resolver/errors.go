package resolver

import "errors"

// ErrPartitionFetch wraps any failure to retrieve, decompress or decode a partition.
// Nothing is cached for a failed partition, so the next call retries it.
var ErrPartitionFetch = errors.New("partition fetch failed")
