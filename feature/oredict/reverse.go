package oredict

import (
	"recipe-viewer/feature/recipes/models"
)

// Reverse maps every item key listed in the dictionary to the alias groups naming it.
// Groups are visited in source order; names are neither sorted nor deduplicated.
func Reverse(dict *models.OreDict) map[string][]string {
	out := make(map[string][]string)
	if dict == nil {
		return out
	}
	for _, name := range dict.Names {
		for _, stack := range dict.Groups[name] {
			key := stack.Key()
			out[key] = append(out[key], name)
		}
	}
	return out
}
