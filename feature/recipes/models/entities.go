package models

import "strings"

// Item is one entry of the dump's item list.
type Item struct {
	ItemStack
	TranslationKey     string `json:"translationKey,omitempty"`
	MaxDamage          int    `json:"maxDamage"`
	RepairCost         int    `json:"repairCost"`
	HasSubtypes        bool   `json:"hasSubtypes"`
	MaxStackSize       int    `json:"maxStackSize"`
	Rarity             string `json:"rarity,omitempty"`
	ItemClass          string `json:"itemClass,omitempty"`
	ItemTranslationKey string `json:"itemTranslationKey,omitempty"`
}

// Mod returns the namespace part of the resource id ("gregtech" for "gregtech:meta_item_1").
func (i Item) Mod() string {
	return ModOf(i.Resource)
}

// ModOf returns the namespace prefix of a resource id, or "" when it has none.
func ModOf(resource string) string {
	if idx := strings.Index(resource, ":"); idx > 0 {
		return resource[:idx]
	}
	return ""
}

// Fluid is one entry of the dump's fluid list.
type Fluid struct {
	FluidName            string `json:"fluidName"`
	FluidUnlocalizedName string `json:"fluidUnlocalizedName"`
	FluidLocalizedName   string `json:"fluidLocalizedName"`
	FluidColor           int    `json:"fluidColor"`
	FluidDensity         int    `json:"fluidDensity"`
	FluidRarity          string `json:"fluidRarity,omitempty"`
	FluidViscosity       int    `json:"fluidViscosity"`
	FluidLuminosity      int    `json:"fluidLuminosity"`
	FluidTemperature     int    `json:"fluidTemperature"`
}

// Key returns the canonical fluid key.
func (f Fluid) Key() string {
	return f.FluidUnlocalizedName
}

// Machine describes a machine entity (the dump's gtMTEs map values).
type Machine struct {
	Class                     string `json:"class"`
	MetaName                  string `json:"metaName"`
	IsController              bool   `json:"isController"`
	Tier                      *int   `json:"tier,omitempty"`
	RecipemapName             string `json:"recipemapName,omitempty"`
	Workable                  string `json:"workable,omitempty"`
	WorkableParallelLogicType string `json:"workableParallelLogicType,omitempty"`
}
