package identity

import (
	"fmt"
	"strconv"
	"strings"
)

// WildcardVariant is the variant ID that matches every variant of a resource.
const WildcardVariant = 32767

// ItemKey returns the canonical key for an item identity.
func ItemKey(resourceID string, variantID int) string {
	return resourceID + ":" + strconv.Itoa(variantID)
}

// IsWildcard reports whether the variant ID is the wildcard variant.
func IsWildcard(variantID int) bool {
	return variantID == WildcardVariant
}

// FluidKey returns the canonical key for a fluid identity.
func FluidKey(unlocalizedName string) string {
	return unlocalizedName
}

// ParseItemKey splits an item key back into its resource and variant.
// The variant is everything after the last colon, so namespaced resources survive.
func ParseItemKey(key string) (string, int, error) {
	idx := strings.LastIndex(key, ":")
	if idx <= 0 || idx == len(key)-1 {
		return "", 0, fmt.Errorf("invalid item key %q", key)
	}
	variant, err := strconv.Atoi(key[idx+1:])
	if err != nil {
		return "", 0, fmt.Errorf("invalid variant in item key %q: %w", key, err)
	}
	return key[:idx], variant, nil
}
