package recipes_test

import (
	"context"
	"io"
	"sync"

	"recipe-viewer/core/partition"
)

type openCounter struct {
	partition.Source

	mu    sync.Mutex
	opens map[string]int
}

func (o *openCounter) Open(ctx context.Context, artifact string) (io.ReadCloser, error) {
	o.mu.Lock()
	o.opens[artifact]++
	o.mu.Unlock()
	return o.Source.Open(ctx, artifact)
}

func (o *openCounter) count(artifact string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.opens[artifact]
}
