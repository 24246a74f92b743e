package models

// RecipeRef points at a recipe by collection and position. Map is set only for
// machine recipes. Equal fields mean the same recipe.
type RecipeRef struct {
	Type  RecipeKind `json:"type"`
	Index int        `json:"index"`
	Map   string     `json:"map,omitempty"`
}

func CraftingRef(index int) RecipeRef { return RecipeRef{Type: KindCrafting, Index: index} }
func SmeltingRef(index int) RecipeRef { return RecipeRef{Type: KindSmelting, Index: index} }
func MachineRef(mapName string, index int) RecipeRef {
	return RecipeRef{Type: KindMachine, Index: index, Map: mapName}
}

// IndexEntry lists the recipes consuming and producing one item or fluid.
type IndexEntry struct {
	AsInput  []RecipeRef `json:"asInput"`
	AsOutput []RecipeRef `json:"asOutput"`
}

// RecipeIndex maps an item or fluid key to its entry.
type RecipeIndex map[string]*IndexEntry

// Lookup returns the entry for key, or nil.
func (idx RecipeIndex) Lookup(key string) *IndexEntry {
	if idx == nil {
		return nil
	}
	return idx[key]
}

func (idx RecipeIndex) entry(key string) *IndexEntry {
	e, ok := idx[key]
	if !ok {
		e = &IndexEntry{AsInput: []RecipeRef{}, AsOutput: []RecipeRef{}}
		idx[key] = e
	}
	return e
}

// AddInput records ref as consuming key. A ref already recorded last for the same
// key is not repeated, so one recipe naming an entity in two slots yields one ref.
func (idx RecipeIndex) AddInput(key string, ref RecipeRef) {
	e := idx.entry(key)
	e.AsInput = appendOnce(e.AsInput, ref)
}

// AddOutput records ref as producing key, with the same repeat rule as AddInput.
func (idx RecipeIndex) AddOutput(key string, ref RecipeRef) {
	e := idx.entry(key)
	e.AsOutput = appendOnce(e.AsOutput, ref)
}

// RefCount returns the number of references on both sides of every entry.
func (idx RecipeIndex) RefCount() int {
	n := 0
	for _, e := range idx {
		n += len(e.AsInput) + len(e.AsOutput)
	}
	return n
}

// Refs are appended in recipe order, so a repeat can only be the last element.
func appendOnce(refs []RecipeRef, ref RecipeRef) []RecipeRef {
	if n := len(refs); n > 0 && refs[n-1] == ref {
		return refs
	}
	return append(refs, ref)
}

// Indexes holds both recipe indexes of a dataset.
type Indexes struct {
	Items  RecipeIndex
	Fluids RecipeIndex
}

// LoadedRecipe is a resolved reference. MapName is set for machine recipes.
type LoadedRecipe struct {
	Ref     RecipeRef `json:"ref"`
	Recipe  Recipe    `json:"recipe"`
	MapName string    `json:"mapName,omitempty"`
}

// RecipesResult splits resolved recipes by the side the entity appears on.
type RecipesResult struct {
	AsInput  []LoadedRecipe `json:"asInput"`
	AsOutput []LoadedRecipe `json:"asOutput"`
}

// EmptyResult returns a result with non-nil empty lists.
func EmptyResult() *RecipesResult {
	return &RecipesResult{AsInput: []LoadedRecipe{}, AsOutput: []LoadedRecipe{}}
}

// ItemDescription summarises an item for link previews.
type ItemDescription struct {
	Key        string   `json:"key"`
	OreDict    []string `json:"oreDict"`
	UsedIn     int      `json:"usedIn"`
	ProducedBy int      `json:"producedBy"`
}
