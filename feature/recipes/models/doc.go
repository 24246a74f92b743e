// Package models defines the recipe dataset shapes shared by the indexer, the resolver
// and the query service.
//
// Recipes are closed, typed variants: CraftingRecipe (shaped or shapeless body, narrowed
// when decoded), SmeltingRecipe and MachineRecipe all implement Recipe. RecipeRef points
// at a recipe by kind, position and (for machine recipes) map name; RecipeIndex maps an
// item or fluid key to the refs that consume and produce it.
package models
