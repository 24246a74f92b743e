// Package catalog keeps a relational copy of the dataset's item and fluid lists for
// filtered search.
//
// Rows are derived from built artifacts (items, fluids, oreDict and both recipe indexes)
// and replaced wholesale by Sync. Each row carries the entity's ore dictionary names and
// its used-in / produced-by recipe counts.
//
// # HTTP Endpoints
//
//   - GET /catalog/items : Item search (q, mod, rarity, limit, offset).
//   - GET /catalog/fluids : Fluid search (q, min_temp, max_temp, limit, offset).
package catalog
