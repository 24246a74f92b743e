package oredict_test

import (
	"encoding/json"
	"testing"

	"recipe-viewer/feature/oredict"
	"recipe-viewer/feature/recipes/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverse(t *testing.T) {
	raw := `{
		"plankWood": [{"resource":"minecraft:planks","itemDamage":0},{"resource":"minecraft:planks","itemDamage":1}],
		"blockWood": [{"resource":"minecraft:planks"}],
		"dyeRed":    [{"resource":"minecraft:dye","itemDamage":1}],
		"anyPlank":  [{"resource":"minecraft:planks","itemDamage":32767}]
	}`
	var dict models.OreDict
	require.NoError(t, json.Unmarshal([]byte(raw), &dict))

	got := oredict.Reverse(&dict)

	assert.Equal(t, []string{"plankWood", "blockWood"}, got["minecraft:planks:0"], "encounter order, missing damage is 0")
	assert.Equal(t, []string{"plankWood"}, got["minecraft:planks:1"])
	assert.Equal(t, []string{"dyeRed"}, got["minecraft:dye:1"])
	assert.Equal(t, []string{"anyPlank"}, got["minecraft:planks:32767"])
	assert.Len(t, got, 4)
}

func TestReverse_NoDedup(t *testing.T) {
	dict := models.NewOreDict()
	dict.Add("ingotIron", models.ItemStack{Resource: "minecraft:iron_ingot"}, models.ItemStack{Resource: "minecraft:iron_ingot"})

	got := oredict.Reverse(dict)
	assert.Equal(t, []string{"ingotIron", "ingotIron"}, got["minecraft:iron_ingot:0"])
}

func TestReverse_Empty(t *testing.T) {
	assert.Empty(t, oredict.Reverse(nil))
	assert.Empty(t, oredict.Reverse(models.NewOreDict()))
}
