package indexer

import "recipe-viewer/feature/recipes/models"

func searchItems(items []models.Item) []models.SearchItem {
	out := make([]models.SearchItem, len(items))
	for i, item := range items {
		out[i] = models.SearchItem{
			ID:             i,
			DisplayName:    item.DisplayName,
			Resource:       item.Resource,
			TranslationKey: item.TranslationKey,
			Rarity:         item.Rarity,
		}
	}
	return out
}

func searchFluids(fluids []models.Fluid) []models.SearchFluid {
	out := make([]models.SearchFluid, len(fluids))
	for i, f := range fluids {
		out[i] = models.SearchFluid{
			ID:                   i,
			FluidName:            f.FluidName,
			FluidLocalizedName:   f.FluidLocalizedName,
			FluidUnlocalizedName: f.FluidUnlocalizedName,
		}
	}
	return out
}

// StatsOf counts the collections of a dump.
func StatsOf(dump *models.Dump) models.Stats {
	s := models.Stats{
		Items:      len(dump.Items),
		Fluids:     len(dump.Fluids),
		Recipemaps: len(dump.Recipemaps),
		Crafting:   len(dump.Crafting),
		Smelting:   len(dump.Smelting),
		Machines:   len(dump.Machines),
		OreDict:    dump.OreDict.Len(),
	}
	for _, m := range dump.Recipemaps {
		s.MachineRecipes += len(m.Recipes)
	}
	return s
}
