// Package partition reads and writes the compressed artifacts of a recipe dataset.
//
// A built dataset is a directory (or bucket prefix) of gzip-compressed JSON files: the
// entity tables, the crafting and smelting tables, one partition per recipe map under
// recipemaps/, the manifest, metadata and the recipe and search indexes under indexes/.
// Artifacts are addressed by name without the ".json.gz" suffix, e.g. "recipemaps/Macerator".
//
// # Sources
//
// DirSource serves a local output directory and BucketSource serves the same layout from
// S3/MinIO through core/storage. Both report missing artifacts with ErrNotFound.
//
// # Writing
//
// Stage writes a full dataset beside its final location and swaps it in atomically, so a
// failed build never leaves a partial dataset behind. Publish uploads a built directory.
package partition
