// Package indexer is the offline step that turns a raw recipe dump into a static dataset.
//
// Run loads the dump (failing with ErrSourceMissing or ErrSourceMalformed before any
// output is written), builds the item and fluid recipe indexes, scans them for dangling
// references and writes every artifact into a staging directory that replaces the
// previous dataset only once all writes succeed.
//
// # Indexing rules
//
//   - Smelting: input item as input, output item as output.
//   - Crafting: declared output as output; every valid alternative of every ingredient
//     (shaped keymaps in sorted key order) and any ingredient fluid as input.
//   - Machine: item stacks and fluid stacks of every input slot as input; plain and
//     chanced item and fluid outputs as output. The ref carries the map name.
//
// A recipe naming the same entity in two slots is recorded once per side.
package indexer
