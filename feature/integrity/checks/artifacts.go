package checks

import (
	"context"
	"errors"
	"fmt"

	"recipe-viewer/core/partition"
)

// CheckArtifacts returns the required artifacts missing from a dataset.
func CheckArtifacts(ctx context.Context, src partition.Source) ([]string, error) {
	var missing []string
	for _, artifact := range partition.Required {
		rc, err := src.Open(ctx, artifact)
		if err != nil {
			if errors.Is(err, partition.ErrNotFound) {
				missing = append(missing, artifact)
				continue
			}
			return nil, fmt.Errorf("failed to open %s: %w", artifact, err)
		}
		_ = rc.Close()
	}
	return missing, nil
}
