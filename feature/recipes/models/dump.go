package models

import "encoding/json"

// Dump is the raw export the indexer consumes. Every collection is required; an
// empty collection is fine, an absent one is not.
type Dump struct {
	Items      []Item               `json:"items" validate:"required"`
	Fluids     []Fluid              `json:"fluids" validate:"required"`
	OreDict    *OreDict             `json:"oreDict" validate:"required"`
	Recipemaps map[string]RecipeMap `json:"recipemaps" validate:"required"`
	Crafting   []CraftingRecipe     `json:"crafting" validate:"required"`
	Smelting   []SmeltingRecipe     `json:"smelting" validate:"required"`
	Machines   map[string]Machine   `json:"gtMTEs" validate:"required"`

	// Raw keeps the source bytes of each collection when the dump was read from disk.
	Raw *DumpSections `json:"-"`
}

// DumpSections holds the undecoded collections of a dump. Fields the models do not
// name survive in these bytes.
type DumpSections struct {
	Items      json.RawMessage            `json:"items"`
	Fluids     json.RawMessage            `json:"fluids"`
	OreDict    json.RawMessage            `json:"oreDict"`
	Recipemaps map[string]json.RawMessage `json:"recipemaps"`
	Crafting   json.RawMessage            `json:"crafting"`
	Smelting   json.RawMessage            `json:"smelting"`
	Machines   json.RawMessage            `json:"gtMTEs"`
}

// Manifest enumerates the recipe-map partitions of a dataset.
type Manifest struct {
	Count int      `json:"count"`
	Maps  []string `json:"maps"`
}

// Stats are the summary counts recorded in the dataset metadata.
type Stats struct {
	Items          int `json:"items"`
	Fluids         int `json:"fluids"`
	Recipemaps     int `json:"recipemaps"`
	Crafting       int `json:"crafting"`
	Smelting       int `json:"smelting"`
	Machines       int `json:"machines"`
	OreDict        int `json:"oreDict"`
	MachineRecipes int `json:"machineRecipes"`
}

// Metadata describes a built dataset.
type Metadata struct {
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
	Stats     Stats  `json:"stats"`
}

// SearchItem is one row of the item search index.
type SearchItem struct {
	ID             int    `json:"id"`
	DisplayName    string `json:"displayName"`
	Resource       string `json:"resource"`
	TranslationKey string `json:"translationKey"`
	Rarity         string `json:"rarity"`
}

// SearchFluid is one row of the fluid search index.
type SearchFluid struct {
	ID                   int    `json:"id"`
	FluidName            string `json:"fluidName"`
	FluidLocalizedName   string `json:"fluidLocalizedName"`
	FluidUnlocalizedName string `json:"fluidUnlocalizedName"`
}
