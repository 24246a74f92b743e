package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// RecipeKind names the collection a recipe lives in.
type RecipeKind string

const (
	KindCrafting RecipeKind = "crafting"
	KindSmelting RecipeKind = "smelting"
	KindMachine  RecipeKind = "machine"
)

// Crafting recipe types as they appear in the dump.
const (
	CraftingShaped       = "shaped"
	CraftingShapeless    = "shapeless"
	CraftingShapelessOre = "shapelessOre"
	CraftingUnknown      = "unknown"
)

// Recipe is implemented by the three recipe shapes.
type Recipe interface {
	Kind() RecipeKind
}

// Ingredient is one crafting slot: any of ValidInputs satisfies it.
type Ingredient struct {
	Class       string      `json:"class,omitempty"`
	ValidInputs []ItemStack `json:"validInputs"`
	Fluid       *FluidStack `json:"fluid,omitempty"`
}

type ShapedRecipe struct {
	Keymap map[string]Ingredient `json:"keymap"`
	Shape  []string              `json:"shape"`
}

type ShapelessRecipe struct {
	Ingredients []Ingredient `json:"ingredients"`
}

// CraftingRecipe is a hand-crafting recipe. At most one of Shaped and Shapeless is set.
// A body that fits neither shape is kept verbatim in Body.
type CraftingRecipe struct {
	ID           string
	IsDynamic    bool
	Class        string
	Group        string
	RegistryName string
	Type         string
	Shaped       *ShapedRecipe
	Shapeless    *ShapelessRecipe
	Body         json.RawMessage
	Output       *ItemStack
}

type craftingWire struct {
	ID           string          `json:"id"`
	IsDynamic    bool            `json:"isDynamic"`
	Class        string          `json:"class"`
	Group        string          `json:"group"`
	RegistryName string          `json:"registryName"`
	Type         string          `json:"type"`
	Recipe       json.RawMessage `json:"recipe"`
	Output       *ItemStack      `json:"output,omitempty"`
}

func (r *CraftingRecipe) Kind() RecipeKind { return KindCrafting }

// UnmarshalJSON narrows the recipe body by its declared type. Recipes typed "unknown"
// are narrowed by shape when they carry a body anyway.
func (r *CraftingRecipe) UnmarshalJSON(data []byte) error {
	var w craftingWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*r = CraftingRecipe{
		ID:           w.ID,
		IsDynamic:    w.IsDynamic,
		Class:        w.Class,
		Group:        w.Group,
		RegistryName: w.RegistryName,
		Type:         w.Type,
		Output:       w.Output,
	}

	body := bytes.TrimSpace(w.Recipe)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil
	}

	var shape struct {
		Keymap      json.RawMessage `json:"keymap"`
		Ingredients json.RawMessage `json:"ingredients"`
	}
	if err := json.Unmarshal(body, &shape); err != nil {
		return fmt.Errorf("crafting recipe %q: %w", w.ID, err)
	}

	switch {
	case w.Type == CraftingShaped, w.Type != CraftingShapeless && w.Type != CraftingShapelessOre && shape.Keymap != nil:
		var shaped ShapedRecipe
		if err := json.Unmarshal(body, &shaped); err != nil {
			return fmt.Errorf("shaped recipe %q: %w", w.ID, err)
		}
		r.Shaped = &shaped
	case w.Type == CraftingShapeless, w.Type == CraftingShapelessOre, shape.Ingredients != nil:
		var shapeless ShapelessRecipe
		if err := json.Unmarshal(body, &shapeless); err != nil {
			return fmt.Errorf("shapeless recipe %q: %w", w.ID, err)
		}
		r.Shapeless = &shapeless
	default:
		r.Body = append(json.RawMessage(nil), body...)
	}
	return nil
}

// MarshalJSON writes the recipe back in the dump's {type, recipe} layout.
func (r CraftingRecipe) MarshalJSON() ([]byte, error) {
	w := craftingWire{
		ID:           r.ID,
		IsDynamic:    r.IsDynamic,
		Class:        r.Class,
		Group:        r.Group,
		RegistryName: r.RegistryName,
		Type:         r.Type,
		Output:       r.Output,
		Recipe:       json.RawMessage("null"),
	}
	var (
		body []byte
		err  error
	)
	switch {
	case r.Shaped != nil:
		body, err = json.Marshal(r.Shaped)
	case r.Shapeless != nil:
		body, err = json.Marshal(r.Shapeless)
	case len(r.Body) > 0:
		body = r.Body
	}
	if err != nil {
		return nil, err
	}
	if body != nil {
		w.Recipe = body
	}
	return json.Marshal(w)
}

// Ingredients returns the recipe's slots. Shaped keymaps are visited in sorted key order.
func (r *CraftingRecipe) Ingredients() []Ingredient {
	switch {
	case r.Shaped != nil:
		keys := make([]string, 0, len(r.Shaped.Keymap))
		for k := range r.Shaped.Keymap {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]Ingredient, 0, len(keys))
		for _, k := range keys {
			out = append(out, r.Shaped.Keymap[k])
		}
		return out
	case r.Shapeless != nil:
		return r.Shapeless.Ingredients
	}
	return nil
}

// SmeltingRecipe is a furnace recipe.
type SmeltingRecipe struct {
	Input  *ItemStack `json:"input"`
	Output *ItemStack `json:"output"`
}

func (r *SmeltingRecipe) Kind() RecipeKind { return KindSmelting }

// RecipeInput is one machine input slot. OreDict is an index into the ore dictionary
// keys, or -1.
type RecipeInput struct {
	Class           string      `json:"class,omitempty"`
	Amount          int         `json:"amount"`
	OreDict         int         `json:"oreDict"`
	SortingOrder    int         `json:"sortingOrder"`
	NonConsumable   bool        `json:"nonConsumable"`
	InputStacks     []ItemStack `json:"inputStacks"`
	InputFluidStack *FluidStack `json:"inputFluidStack"`
}

type RecipeProperty struct {
	PropertyKey        string `json:"propertyKey"`
	PropertyClass      string `json:"propertyClass"`
	PropertyHash       int64  `json:"propertyHash"`
	PropertyValueClass string `json:"propertyValueClass"`
}

// MachineRecipe is one recipe of a machine recipe map.
type MachineRecipe struct {
	Class                  string               `json:"class,omitempty"`
	EUt                    int                  `json:"EUt"`
	Duration               int                  `json:"duration"`
	IsCTRecipe             bool                 `json:"isCTRecipe"`
	PropertyCount          int                  `json:"propertyCount"`
	UnhiddenPropertyCount  int                  `json:"unhiddenPropertyCount"`
	Properties             []RecipeProperty     `json:"properties"`
	CategoryName           string               `json:"categoryName,omitempty"`
	CategoryTranslationKey string               `json:"categoryTranslationKey,omitempty"`
	CategoryUniqueID       int64                `json:"categoryUniqueID"`
	CategoryModID          string               `json:"categoryModID,omitempty"`
	Inputs                 []RecipeInput        `json:"inputs"`
	InputsFluid            []RecipeInput        `json:"inputsFluid"`
	Outputs                []ItemStack          `json:"outputs"`
	FluidOutputs           []FluidStack         `json:"fluidOutputs"`
	ChancedOutputs         []ChancedOutput      `json:"chancedOutputs,omitempty"`
	ChancedFluidOutputs    []ChancedFluidOutput `json:"chancedFluidOutputs,omitempty"`
}

func (r *MachineRecipe) Kind() RecipeKind { return KindMachine }

// RecipeMap is a named partition of machine recipes.
type RecipeMap struct {
	TranslationKey  string          `json:"translationKey"`
	Sound           *string         `json:"sound"`
	MaxFluidInputs  int             `json:"maxFluidInputs"`
	MaxInputs       int             `json:"maxInputs"`
	MaxOutputs      int             `json:"maxOutputs"`
	MaxFluidOutputs int             `json:"maxFluidOutputs"`
	UnlocalizedName string          `json:"unlocalizedName"`
	Recipes         []MachineRecipe `json:"recipes"`
}

// DisplayName returns the map's unlocalized name, falling back to its key.
func (m *RecipeMap) DisplayName(key string) string {
	if m.UnlocalizedName != "" {
		return m.UnlocalizedName
	}
	return key
}
