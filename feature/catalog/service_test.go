package catalog_test

import (
	"context"
	"path/filepath"
	"testing"

	"recipe-viewer/core/database"
	"recipe-viewer/core/partition"
	"recipe-viewer/feature/catalog"
	"recipe-viewer/feature/indexer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// buildDataset indexes the shared fixture dump into a temp dir.
func buildDataset(t *testing.T) string {
	t.Helper()
	out := filepath.Join(t.TempDir(), "data")
	_, err := indexer.New(zap.NewNop()).Run(context.Background(), indexer.Options{
		DumpPath:  filepath.Join("..", "indexer", "testdata", "recipedump.json"),
		OutputDir: out,
	})
	require.NoError(t, err)
	return out
}

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	return db
}

func syncedService(t *testing.T) *catalog.Service {
	t.Helper()
	svc := catalog.NewService(openDB(t), zap.NewNop())
	require.NoError(t, svc.Migrate())
	_, err := svc.Sync(context.Background(), &partition.DirSource{Dir: buildDataset(t)})
	require.NoError(t, err)
	return svc
}

func TestSync(t *testing.T) {
	ctx := context.Background()
	svc := catalog.NewService(openDB(t), zap.NewNop())
	require.NoError(t, svc.Migrate())
	src := &partition.DirSource{Dir: buildDataset(t)}

	res, err := svc.Sync(ctx, src)
	require.NoError(t, err)
	assert.Equal(t, 9, res.Items)
	assert.Equal(t, 2, res.Fluids)

	// A second sync replaces rather than duplicates.
	_, err = svc.Sync(ctx, src)
	require.NoError(t, err)
	_, total, err := svc.SearchItems(ctx, catalog.ItemFilter{}, catalog.Page{})
	require.NoError(t, err)
	assert.EqualValues(t, 9, total)
}

func TestSync_MissingArtifact(t *testing.T) {
	svc := catalog.NewService(openDB(t), zap.NewNop())
	require.NoError(t, svc.Migrate())

	_, err := svc.Sync(context.Background(), &partition.DirSource{Dir: t.TempDir()})
	assert.ErrorIs(t, err, partition.ErrNotFound)
}

func TestSearchItems(t *testing.T) {
	ctx := context.Background()
	svc := syncedService(t)

	tests := []struct {
		name   string
		filter catalog.ItemFilter
		want   []string
	}{
		{"Query", catalog.ItemFilter{Query: "IRON"}, []string{"minecraft:iron_ingot:0", "minecraft:iron_ore:0", "gregtech:meta_dust:2", "gregtech:meta_dust:3"}},
		{"QueryMatchesResource", catalog.ItemFilter{Query: "planks"}, []string{"minecraft:planks:0", "minecraft:planks:1"}},
		{"Mod", catalog.ItemFilter{Mod: "gregtech"}, []string{"gregtech:meta_dust:2", "gregtech:meta_dust:3"}},
		{"Rarity", catalog.ItemFilter{Rarity: "UNCOMMON", Query: "tiny"}, []string{"gregtech:meta_dust:3"}},
		{"NoMatch", catalog.ItemFilter{Query: "diamond"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, total, err := svc.SearchItems(ctx, tt.filter, catalog.Page{})
			require.NoError(t, err)
			var keys []string
			for _, r := range rows {
				keys = append(keys, r.ItemKey)
			}
			assert.Equal(t, tt.want, keys)
			assert.EqualValues(t, len(tt.want), total)
		})
	}
}

func TestSearchItems_Page(t *testing.T) {
	svc := syncedService(t)

	rows, total, err := svc.SearchItems(context.Background(), catalog.ItemFilter{}, catalog.Page{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 9, total)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Position)
	assert.Equal(t, "Oak Planks", rows[0].DisplayName)
}

func TestSearchItems_Counts(t *testing.T) {
	svc := syncedService(t)

	rows, _, err := svc.SearchItems(context.Background(), catalog.ItemFilter{}, catalog.Page{})
	require.NoError(t, err)
	byKey := make(map[string]catalog.ItemRow, len(rows))
	for _, r := range rows {
		byKey[r.ItemKey] = r
	}

	dust := byKey["gregtech:meta_dust:2"]
	assert.Equal(t, "gregtech", dust.Mod)
	assert.Equal(t, "dustIron", dust.OreDict)
	assert.Equal(t, 2, dust.UsedIn)
	assert.Equal(t, 1, dust.ProducedBy)

	ingot := byKey["minecraft:iron_ingot:0"]
	assert.Equal(t, 0, ingot.UsedIn)
	assert.Equal(t, 2, ingot.ProducedBy)

	// Only recipes keyed on the wildcard variant use white wool.
	wool := byKey["minecraft:wool:0"]
	assert.Equal(t, 1, wool.UsedIn)
}

func TestSearchFluids(t *testing.T) {
	ctx := context.Background()
	svc := syncedService(t)

	rows, total, err := svc.SearchFluids(ctx, catalog.FluidFilter{Query: "mud"}, catalog.Page{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "gregtech.mud", rows[0].FluidUnlocalizedName)
	assert.Equal(t, 1, rows[0].UsedIn)
	assert.Equal(t, 1, rows[0].ProducedBy)

	minTemp := 296
	rows, _, err = svc.SearchFluids(ctx, catalog.FluidFilter{MinTemperature: &minTemp}, catalog.Page{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "water", rows[0].FluidUnlocalizedName)

	maxTemp := 296
	rows, _, err = svc.SearchFluids(ctx, catalog.FluidFilter{MaxTemperature: &maxTemp}, catalog.Page{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "gregtech.mud", rows[0].FluidUnlocalizedName)
}
