package partition

import (
	"path"
	"strings"
)

// Ext is the file suffix shared by every artifact.
const Ext = ".json.gz"

// Artifact names, relative to the dataset root and without Ext.
const (
	Items        = "items"
	Fluids       = "fluids"
	OreDict      = "oreDict"
	Crafting     = "crafting"
	Smelting     = "smelting"
	Machines     = "machines"
	Metadata     = "metadata"
	MapsDir      = "recipemaps"
	Manifest     = MapsDir + "/manifest"
	ItemIndex    = "indexes/recipe-index-items"
	FluidIndex   = "indexes/recipe-index-fluids"
	SearchItems  = "indexes/search-items"
	SearchFluids = "indexes/search-fluids"
)

// Required lists the artifacts every complete dataset carries besides its map partitions.
var Required = []string{
	Items, Fluids, OreDict, Crafting, Smelting, Machines, Metadata,
	Manifest, ItemIndex, FluidIndex, SearchItems, SearchFluids,
}

// MapArtifact returns the artifact name of a recipe-map partition.
func MapArtifact(mapName string) string {
	return MapsDir + "/" + mapName
}

// MapName extracts the map name from a recipe-map artifact, reporting false for any
// other artifact (including the manifest).
func MapName(artifact string) (string, bool) {
	dir, name := path.Split(artifact)
	if dir != MapsDir+"/" || name == "" || artifact == Manifest {
		return "", false
	}
	return name, true
}

// FileName appends Ext to an artifact name.
func FileName(artifact string) string {
	return artifact + Ext
}

// TrimExt is the inverse of FileName. ok is false when name does not carry Ext.
func TrimExt(name string) (string, bool) {
	if !strings.HasSuffix(name, Ext) {
		return "", false
	}
	return strings.TrimSuffix(name, Ext), true
}

// SafeMapName reports whether a recipe-map name can be used as a single path segment.
func SafeMapName(name string) bool {
	if name == "" || name == "." || strings.Contains(name, "..") {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}
