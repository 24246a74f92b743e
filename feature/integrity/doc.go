// Package integrity provides health checks for a built recipe dataset.
//
// # Checks Provided
//
//   - Artifacts: Every required artifact (items, fluids, indexes, manifest, ...) is present.
//   - Maps: The recipe map manifest, the stored map partitions and the maps referenced by
//     the recipe indexes agree with each other.
//   - Dangling: Every index reference resolves to a recipe within its collection.
//   - Catalog: The catalog database tables match their models (requires a database).
//   - Bucket: The publish bucket exists and holds objects under the dataset prefix
//     (requires object storage).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all configured checks.
//   - GET /integrity/artifacts : Runs the artifacts check.
//   - GET /integrity/maps : Runs the map reconciliation.
//   - GET /integrity/dangling : Runs the dangling reference scan.
//   - GET /integrity/catalog : Runs the catalog schema check.
//   - GET /integrity/bucket : Runs the bucket check (supports ?fix=true).
package integrity
