// Package identity derives the canonical lookup keys for items and fluids.
//
// Items are identified by a namespaced resource ID ("<namespace>:<name>") and an
// integer variant ID. The canonical key is "<resourceId>:<variantId>". Variant 32767
// is the wildcard variant: a recipe slot declared with it accepts any variant of the
// resource. The wildcard key is stored as its own entry and is never folded into the
// concrete variants; expanding it is a lookup-time concern.
//
// Fluids are identified by their unlocalized name, which is already a unique string.
//
// # Usage
//
//	key := identity.ItemKey("minecraft:wool", 14)  // "minecraft:wool:14"
//	any := identity.ItemKey("minecraft:wool", identity.WildcardVariant)
//	res, variant, err := identity.ParseItemKey(key)
package identity
