package checks

import (
	"context"
	"fmt"
	"sort"

	"recipe-viewer/core/partition"
	"recipe-viewer/feature/recipes/models"

	"golang.org/x/sync/errgroup"
)

// MapResult is the presence of one recipe map across the dataset's three views of it.
type MapResult struct {
	Name string `json:"name"`
	// InManifest is true when recipemaps/manifest lists the map.
	InManifest bool `json:"in_manifest"`
	// PartitionPresent is true when the map's partition file exists.
	PartitionPresent bool `json:"partition_present"`
	// References counts index references pointing into the map.
	References int `json:"references"`
}

// Consistent reports whether the map is usable: listed, stored, and (if referenced) both.
func (r MapResult) Consistent() bool {
	return r.InManifest && r.PartitionPresent
}

// MapReport reconciles the manifest, the stored partitions and the index references.
type MapReport struct {
	Matched bool        `json:"matched"`
	Maps    []MapResult `json:"maps"`
}

// Inconsistent returns the maps that are not Consistent.
func (r *MapReport) Inconsistent() []MapResult {
	var out []MapResult
	for _, m := range r.Maps {
		if !m.Consistent() {
			out = append(out, m)
		}
	}
	return out
}

// ReconcileMaps loads the three map views concurrently and reports every map seen in any.
func ReconcileMaps(ctx context.Context, src partition.Source) (*MapReport, error) {
	var (
		manifest   models.Manifest
		partitions []string
		itemIndex  models.RecipeIndex
		fluidIndex models.RecipeIndex
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return partition.Fetch(gctx, src, partition.Manifest, &manifest)
	})
	g.Go(func() error {
		names, err := src.List(gctx, partition.MapsDir)
		partitions = names
		return err
	})
	g.Go(func() error {
		return partition.Fetch(gctx, src, partition.ItemIndex, &itemIndex)
	})
	g.Go(func() error {
		return partition.Fetch(gctx, src, partition.FluidIndex, &fluidIndex)
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load map views: %w", err)
	}

	manifestSet := make(map[string]struct{}, len(manifest.Maps))
	for _, name := range manifest.Maps {
		manifestSet[name] = struct{}{}
	}
	partitionSet := make(map[string]struct{}, len(partitions))
	for _, artifact := range partitions {
		if name, ok := partition.MapName(artifact); ok {
			partitionSet[name] = struct{}{}
		}
	}
	refs := make(map[string]int)
	countMachineRefs(itemIndex, refs)
	countMachineRefs(fluidIndex, refs)

	union := buildUnion(manifestSet, partitionSet, refs)
	report := &MapReport{Matched: true, Maps: make([]MapResult, 0, len(union))}
	for name := range union {
		_, inManifest := manifestSet[name]
		_, present := partitionSet[name]
		result := MapResult{
			Name:             name,
			InManifest:       inManifest,
			PartitionPresent: present,
			References:       refs[name],
		}
		if !result.Consistent() {
			report.Matched = false
		}
		report.Maps = append(report.Maps, result)
	}

	// Sort results by name for deterministic output
	sort.Slice(report.Maps, func(i, j int) bool {
		return report.Maps[i].Name < report.Maps[j].Name
	})
	return report, nil
}

func countMachineRefs(idx models.RecipeIndex, counts map[string]int) {
	for _, entry := range idx {
		for _, refs := range [][]models.RecipeRef{entry.AsInput, entry.AsOutput} {
			for _, ref := range refs {
				if ref.Type == models.KindMachine {
					counts[ref.Map]++
				}
			}
		}
	}
}

func buildUnion(manifest, partitions map[string]struct{}, refs map[string]int) map[string]struct{} {
	union := make(map[string]struct{}, len(manifest))
	for name := range manifest {
		union[name] = struct{}{}
	}
	for name := range partitions {
		union[name] = struct{}{}
	}
	for name := range refs {
		union[name] = struct{}{}
	}
	return union
}
