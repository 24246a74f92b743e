package models

import (
	"encoding/json"

	"recipe-viewer/core/identity"
)

// ItemStack is an item reference embedded in recipes and the ore dictionary.
type ItemStack struct {
	Type        string          `json:"type,omitempty"`
	Resource    string          `json:"resource,omitempty"`
	DisplayName string          `json:"displayName,omitempty"`
	Count       *int            `json:"count,omitempty"`
	ItemDamage  *int            `json:"itemDamage,omitempty"`
	Metadata    *int            `json:"metadata,omitempty"`
	NBT         json.RawMessage `json:"nbt,omitempty"`
}

// Int returns a pointer to v, for building stacks in code.
func Int(v int) *int {
	return &v
}

// Variant returns the damage value, 0 when the dump left it out.
func (s ItemStack) Variant() int {
	if s.ItemDamage == nil {
		return 0
	}
	return *s.ItemDamage
}

// Size returns the stack size, 1 when the dump left it out.
func (s ItemStack) Size() int {
	if s.Count == nil {
		return 1
	}
	return *s.Count
}

// Key returns the canonical item key.
func (s ItemStack) Key() string {
	return identity.ItemKey(s.Resource, s.Variant())
}

// ChancedOutput is a bonus item output. Chance is in the dump's own units (1/10000).
type ChancedOutput struct {
	ItemStack
	Chance       int `json:"chance"`
	BoostPerTier int `json:"boostPerTier,omitempty"`
}

// FluidStack is a fluid amount embedded in recipes.
type FluidStack struct {
	Type            string `json:"type,omitempty"`
	LocalizedName   string `json:"localizedName,omitempty"`
	UnlocalizedName string `json:"unlocalizedName,omitempty"`
	Amount          int    `json:"amount"`
}

// Key returns the canonical fluid key.
func (s FluidStack) Key() string {
	return identity.FluidKey(s.UnlocalizedName)
}

// ChancedFluidOutput is a bonus fluid output.
type ChancedFluidOutput struct {
	FluidStack
	Chance       int `json:"chance"`
	BoostPerTier int `json:"boostPerTier,omitempty"`
}
