package indexer

import (
	"sort"

	"recipe-viewer/feature/recipes/models"
)

// BuildIndexes scans every recipe once and returns the item and fluid indexes.
//
// Items are keyed by their exact (resource, damage) pair; a wildcard damage stays under
// its own key. Slots without a resource (or fluids without a name) are skipped.
func BuildIndexes(dump *models.Dump) *models.Indexes {
	b := &builder{
		items:  models.RecipeIndex{},
		fluids: models.RecipeIndex{},
	}

	for i := range dump.Smelting {
		b.smelting(i, &dump.Smelting[i])
	}
	for i := range dump.Crafting {
		b.crafting(i, &dump.Crafting[i])
	}
	for _, name := range SortedMapNames(dump.Recipemaps) {
		recipes := dump.Recipemaps[name].Recipes
		for i := range recipes {
			b.machine(models.MachineRef(name, i), &recipes[i])
		}
	}

	return &models.Indexes{Items: b.items, Fluids: b.fluids}
}

// SortedMapNames returns the recipe map names in ascending order.
func SortedMapNames(maps map[string]models.RecipeMap) []string {
	names := make([]string, 0, len(maps))
	for name := range maps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type builder struct {
	items  models.RecipeIndex
	fluids models.RecipeIndex
}

func (b *builder) itemIn(s *models.ItemStack, ref models.RecipeRef) {
	if s != nil && s.Resource != "" {
		b.items.AddInput(s.Key(), ref)
	}
}

func (b *builder) itemOut(s *models.ItemStack, ref models.RecipeRef) {
	if s != nil && s.Resource != "" {
		b.items.AddOutput(s.Key(), ref)
	}
}

func (b *builder) fluidIn(s *models.FluidStack, ref models.RecipeRef) {
	if s != nil && s.UnlocalizedName != "" {
		b.fluids.AddInput(s.Key(), ref)
	}
}

func (b *builder) fluidOut(s *models.FluidStack, ref models.RecipeRef) {
	if s != nil && s.UnlocalizedName != "" {
		b.fluids.AddOutput(s.Key(), ref)
	}
}

func (b *builder) smelting(i int, r *models.SmeltingRecipe) {
	ref := models.SmeltingRef(i)
	b.itemIn(r.Input, ref)
	b.itemOut(r.Output, ref)
}

func (b *builder) crafting(i int, r *models.CraftingRecipe) {
	ref := models.CraftingRef(i)
	b.itemOut(r.Output, ref)
	for _, ing := range r.Ingredients() {
		// Every alternative gets the ref so a lookup of any of them finds the recipe.
		for j := range ing.ValidInputs {
			b.itemIn(&ing.ValidInputs[j], ref)
		}
		b.fluidIn(ing.Fluid, ref)
	}
}

func (b *builder) machine(ref models.RecipeRef, r *models.MachineRecipe) {
	for _, slots := range [][]models.RecipeInput{r.Inputs, r.InputsFluid} {
		for _, in := range slots {
			for j := range in.InputStacks {
				b.itemIn(&in.InputStacks[j], ref)
			}
			b.fluidIn(in.InputFluidStack, ref)
		}
	}
	for j := range r.Outputs {
		b.itemOut(&r.Outputs[j], ref)
	}
	for j := range r.ChancedOutputs {
		b.itemOut(&r.ChancedOutputs[j].ItemStack, ref)
	}
	for j := range r.FluidOutputs {
		b.fluidOut(&r.FluidOutputs[j], ref)
	}
	for j := range r.ChancedFluidOutputs {
		b.fluidOut(&r.ChancedFluidOutputs[j].FluidStack, ref)
	}
}
