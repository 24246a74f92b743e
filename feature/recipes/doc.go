// Package recipes implements the recipe query feature.
//
// The Service composes identity keying, the recipe indexes and the lazy resolver to
// answer "which recipes consume X" and "which recipes produce X" for items and fluids.
// Item lookups merge the exact variant's entry with the resource's wildcard entry
// (variant 32767); a lookup of the wildcard variant itself returns only the wildcard
// entry. Entities without an index entry yield empty lists, never an error.
//
// # Components
//
//   - Service: the query facade used by the HTTP handler and the CLI.
//   - Handler: HTTP endpoints. Partition fetch failures answer 503 with
//     {"status":"unavailable"} so they stay distinguishable from "no recipes".
//   - Feature: registers the handler with the loader.Manager.
//
// # HTTP Endpoints
//
//   - GET /recipes/item?resource=minecraft:planks&variant=1
//   - GET /recipes/item/describe?resource=minecraft:planks&variant=1
//   - GET /recipes/fluid?name=water
package recipes
