package indexer

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"recipe-viewer/core/partition"
	"recipe-viewer/feature/recipes/models"
)

// Bounds records the size of every recipe collection of a dataset.
type Bounds struct {
	Crafting int
	Smelting int
	Maps     map[string]int
}

// MeasureDataset reads the recipe collection sizes of a built dataset. Recipes are
// counted, not decoded.
func MeasureDataset(ctx context.Context, src partition.Source) (Bounds, error) {
	var crafting, smelting []json.RawMessage
	var manifest models.Manifest
	for artifact, dst := range map[string]any{
		partition.Crafting: &crafting,
		partition.Smelting: &smelting,
		partition.Manifest: &manifest,
	} {
		if err := partition.Fetch(ctx, src, artifact, dst); err != nil {
			return Bounds{}, fmt.Errorf("failed to load %s: %w", artifact, err)
		}
	}

	b := Bounds{
		Crafting: len(crafting),
		Smelting: len(smelting),
		Maps:     make(map[string]int, len(manifest.Maps)),
	}
	for _, name := range manifest.Maps {
		var m struct {
			Recipes []json.RawMessage `json:"recipes"`
		}
		if err := partition.Fetch(ctx, src, partition.MapArtifact(name), &m); err != nil {
			return Bounds{}, fmt.Errorf("failed to load map %s: %w", name, err)
		}
		b.Maps[name] = len(m.Recipes)
	}
	return b, nil
}

// ScanDataset verifies the indexes of a built dataset against the recipe collections
// stored beside them. checked is the number of references examined.
func ScanDataset(ctx context.Context, src partition.Source) (checked int, anomalies []Anomaly, err error) {
	var idx models.Indexes
	if err := partition.Fetch(ctx, src, partition.ItemIndex, &idx.Items); err != nil {
		return 0, nil, fmt.Errorf("failed to load %s: %w", partition.ItemIndex, err)
	}
	if err := partition.Fetch(ctx, src, partition.FluidIndex, &idx.Fluids); err != nil {
		return 0, nil, fmt.Errorf("failed to load %s: %w", partition.FluidIndex, err)
	}
	bounds, err := MeasureDataset(ctx, src)
	if err != nil {
		return 0, nil, err
	}
	return idx.Items.RefCount() + idx.Fluids.RefCount(), Verify(&idx, bounds), nil
}

// Anomaly is an index reference with no recipe behind it.
type Anomaly struct {
	Index  string           `json:"index"`
	Key    string           `json:"key"`
	Side   string           `json:"side"`
	Ref    models.RecipeRef `json:"ref"`
	Reason string           `json:"reason"`
}

func (a Anomaly) String() string {
	return fmt.Sprintf("%s[%s].%s -> %s#%d%s: %s", a.Index, a.Key, a.Side, a.Ref.Type, a.Ref.Index, mapSuffix(a.Ref), a.Reason)
}

func mapSuffix(ref models.RecipeRef) string {
	if ref.Map == "" {
		return ""
	}
	return "@" + ref.Map
}

// Verify scans both indexes for references that do not resolve within bounds.
// Results are ordered by index, key and side.
func Verify(idx *models.Indexes, bounds Bounds) []Anomaly {
	var out []Anomaly
	out = append(out, verifyIndex("items", idx.Items, bounds)...)
	out = append(out, verifyIndex("fluids", idx.Fluids, bounds)...)
	return out
}

func verifyIndex(name string, idx models.RecipeIndex, bounds Bounds) []Anomaly {
	keys := make([]string, 0, len(idx))
	for k := range idx {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out []Anomaly
	for _, key := range keys {
		entry := idx[key]
		for _, side := range []struct {
			name string
			refs []models.RecipeRef
		}{{"asInput", entry.AsInput}, {"asOutput", entry.AsOutput}} {
			for _, ref := range side.refs {
				if reason := bounds.check(ref); reason != "" {
					out = append(out, Anomaly{Index: name, Key: key, Side: side.name, Ref: ref, Reason: reason})
				}
			}
		}
	}
	return out
}

func (b Bounds) check(ref models.RecipeRef) string {
	var size int
	switch ref.Type {
	case models.KindCrafting:
		size = b.Crafting
	case models.KindSmelting:
		size = b.Smelting
	case models.KindMachine:
		n, ok := b.Maps[ref.Map]
		if !ok {
			return "unknown recipe map"
		}
		size = n
	default:
		return "unknown recipe kind"
	}
	if ref.Index < 0 || ref.Index >= size {
		return fmt.Sprintf("position out of range (size %d)", size)
	}
	return ""
}
