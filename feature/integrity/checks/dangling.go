package checks

import (
	"context"

	"recipe-viewer/core/partition"
	"recipe-viewer/feature/indexer"
)

// DanglingReport lists index references that resolve to no recipe in a built dataset.
type DanglingReport struct {
	Checked   int               `json:"checked"`
	Anomalies []indexer.Anomaly `json:"anomalies"`
}

// ScanDangling verifies both indexes of a dataset against the recipes it holds.
func ScanDangling(ctx context.Context, src partition.Source) (*DanglingReport, error) {
	checked, anomalies, err := indexer.ScanDataset(ctx, src)
	if err != nil {
		return nil, err
	}
	if anomalies == nil {
		anomalies = []indexer.Anomaly{}
	}
	return &DanglingReport{Checked: checked, Anomalies: anomalies}, nil
}
