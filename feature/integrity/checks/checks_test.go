package checks

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"recipe-viewer/core/database"
	"recipe-viewer/core/partition"
	"recipe-viewer/core/storage/mocks"
	"recipe-viewer/feature/catalog"
	"recipe-viewer/feature/indexer"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func buildDataset(t *testing.T) string {
	t.Helper()
	out := filepath.Join(t.TempDir(), "data")
	_, err := indexer.New(zap.NewNop()).Run(context.Background(), indexer.Options{
		DumpPath:  filepath.Join("..", "..", "indexer", "testdata", "recipedump.json"),
		OutputDir: out,
	})
	require.NoError(t, err)
	return out
}

func artifactPath(dir, artifact string) string {
	return filepath.Join(dir, filepath.FromSlash(partition.FileName(artifact)))
}

func writeArtifact(t *testing.T, dir, artifact string, v any) {
	t.Helper()
	f, err := os.Create(artifactPath(dir, artifact))
	require.NoError(t, err)
	require.NoError(t, partition.Encode(f, v))
	require.NoError(t, f.Close())
}

type brokenSource struct{}

func (brokenSource) Open(context.Context, string) (io.ReadCloser, error) {
	return nil, errors.New("connection reset")
}

func (brokenSource) List(context.Context, string) ([]string, error) {
	return nil, errors.New("connection reset")
}

func TestCheckArtifacts(t *testing.T) {
	ctx := context.Background()

	t.Run("Complete", func(t *testing.T) {
		missing, err := CheckArtifacts(ctx, &partition.DirSource{Dir: buildDataset(t)})
		require.NoError(t, err)
		assert.Empty(t, missing)
	})

	t.Run("Missing", func(t *testing.T) {
		dir := buildDataset(t)
		require.NoError(t, os.Remove(artifactPath(dir, partition.Items)))
		require.NoError(t, os.Remove(artifactPath(dir, partition.SearchFluids)))

		missing, err := CheckArtifacts(ctx, &partition.DirSource{Dir: dir})
		require.NoError(t, err)
		assert.Equal(t, []string{partition.Items, partition.SearchFluids}, missing)
	})

	t.Run("SourceError", func(t *testing.T) {
		_, err := CheckArtifacts(ctx, brokenSource{})
		assert.ErrorContains(t, err, "connection reset")
	})
}

func TestReconcileMaps(t *testing.T) {
	ctx := context.Background()

	t.Run("Consistent", func(t *testing.T) {
		report, err := ReconcileMaps(ctx, &partition.DirSource{Dir: buildDataset(t)})
		require.NoError(t, err)
		assert.True(t, report.Matched)
		assert.Equal(t, []MapResult{
			{Name: "Macerator", InManifest: true, PartitionPresent: true, References: 3},
			{Name: "Mixer", InManifest: true, PartitionPresent: true, References: 5},
		}, report.Maps)
		assert.Empty(t, report.Inconsistent())
	})

	t.Run("MissingPartitionAndOrphan", func(t *testing.T) {
		dir := buildDataset(t)
		require.NoError(t, os.Remove(artifactPath(dir, partition.MapArtifact("Mixer"))))
		writeArtifact(t, dir, partition.MapArtifact("Orphan"), map[string]any{"recipes": []any{}})

		report, err := ReconcileMaps(ctx, &partition.DirSource{Dir: dir})
		require.NoError(t, err)
		assert.False(t, report.Matched)
		assert.Equal(t, []MapResult{
			{Name: "Mixer", InManifest: true, PartitionPresent: false, References: 5},
			{Name: "Orphan", InManifest: false, PartitionPresent: true},
		}, report.Inconsistent())
	})

	t.Run("SourceError", func(t *testing.T) {
		_, err := ReconcileMaps(ctx, brokenSource{})
		assert.Error(t, err)
	})
}

func TestScanDangling(t *testing.T) {
	ctx := context.Background()

	t.Run("Clean", func(t *testing.T) {
		report, err := ScanDangling(ctx, &partition.DirSource{Dir: buildDataset(t)})
		require.NoError(t, err)
		assert.Positive(t, report.Checked)
		assert.Empty(t, report.Anomalies)
	})

	t.Run("TruncatedCrafting", func(t *testing.T) {
		dir := buildDataset(t)
		writeArtifact(t, dir, partition.Crafting, []any{})

		report, err := ScanDangling(ctx, &partition.DirSource{Dir: dir})
		require.NoError(t, err)
		require.NotEmpty(t, report.Anomalies)
		for _, a := range report.Anomalies {
			assert.Equal(t, "crafting", string(a.Ref.Type))
			assert.Equal(t, "position out of range (size 0)", a.Reason)
		}
	})

	t.Run("MissingMap", func(t *testing.T) {
		dir := buildDataset(t)
		require.NoError(t, os.Remove(artifactPath(dir, partition.MapArtifact("Macerator"))))

		_, err := ScanDangling(ctx, &partition.DirSource{Dir: dir})
		assert.ErrorIs(t, err, partition.ErrNotFound)
	})
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestCheckCatalogSchema(t *testing.T) {
	t.Run("NilDB", func(t *testing.T) {
		report, err := CheckCatalogSchema(nil)
		assert.Error(t, err)
		assert.Nil(t, report)
	})

	t.Run("Migrated", func(t *testing.T) {
		db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)
		require.NoError(t, catalog.NewService(db, zap.NewNop()).Migrate())

		report, err := CheckCatalogSchema(db)
		require.NoError(t, err)
		assert.True(t, report.Matched, report.Errors)
		assert.Equal(t, "ok", report.Tables["catalog_items"].Status)
		assert.Equal(t, "ok", report.Tables["catalog_fluids"].Status)
	})

	t.Run("NotMigrated", func(t *testing.T) {
		db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)

		report, err := CheckCatalogSchema(db)
		require.NoError(t, err)
		assert.False(t, report.Matched)
		assert.Len(t, report.Errors, 2)
	})

	t.Run("MySQLMissingColumn", func(t *testing.T) {
		db, mock := setupMockDB(t)

		items := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
		for _, col := range []string{"position", "item_key", "resource", "variant", "display_name", "translation_key", "mod_name", "rarity", "used_in", "produced_by"} {
			items.AddRow(col, "varchar(255)", "YES", "", nil, "")
		}
		mock.ExpectQuery("SHOW COLUMNS FROM `catalog_items`").WillReturnRows(items)

		fluids := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
			AddRow("position", "bigint", "NO", "PRI", nil, "").
			AddRow("fluid_unlocalized_name", "varchar(255)", "YES", "", nil, "").
			AddRow("fluid_name", "varchar(255)", "YES", "", nil, "").
			AddRow("fluid_localized_name", "varchar(255)", "YES", "", nil, "").
			AddRow("temperature", "bigint", "YES", "", nil, "").
			AddRow("used_in", "bigint", "YES", "", nil, "").
			AddRow("produced_by", "bigint", "YES", "", nil, "")
		mock.ExpectQuery("SHOW COLUMNS FROM `catalog_fluids`").WillReturnRows(fluids)

		report, err := CheckCatalogSchema(db)
		require.NoError(t, err)
		assert.False(t, report.Matched)
		assert.Equal(t, []string{"ore_dict"}, report.Tables["catalog_items"].MissingColumns)
		assert.Equal(t, "ok", report.Tables["catalog_fluids"].Status)
	})

	t.Run("MySQLTypeMismatch", func(t *testing.T) {
		db, mock := setupMockDB(t)

		items := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
		for _, col := range []string{"position", "item_key", "resource", "variant", "display_name", "translation_key", "mod_name", "rarity", "used_in", "produced_by"} {
			items.AddRow(col, "varchar(255)", "YES", "", nil, "")
		}
		items.AddRow("ore_dict", "varchar(64)", "YES", "", nil, "")
		mock.ExpectQuery("SHOW COLUMNS FROM `catalog_items`").WillReturnRows(items)
		mock.ExpectQuery("SHOW COLUMNS FROM `catalog_fluids`").WillReturnError(errors.New("table missing"))

		report, err := CheckCatalogSchema(db)
		require.NoError(t, err)
		assert.False(t, report.Matched)
		assert.Equal(t, []string{"ore_dict: expected text, got varchar(64)"}, report.Tables["catalog_items"].TypeMismatches)
		assert.Len(t, report.Errors, 1)
	})
}

func TestCheckBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("BucketMissing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "recipes").Return(false, nil)

		report, err := CheckBucket(ctx, client, "recipes", "gtnh")
		require.NoError(t, err)
		assert.False(t, report.BucketExists)
		assert.False(t, report.Populated)
		client.AssertNotCalled(t, "ListObjects", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Populated", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "recipes").Return(true, nil)
		ch := make(chan minio.ObjectInfo, 1)
		ch <- minio.ObjectInfo{Key: "gtnh/items.json.gz"}
		close(ch)
		client.On("ListObjects", mock.Anything, "recipes", mock.MatchedBy(func(o minio.ListObjectsOptions) bool {
			return o.Prefix == "gtnh/"
		})).Return((<-chan minio.ObjectInfo)(ch))

		report, err := CheckBucket(ctx, client, "recipes", "gtnh")
		require.NoError(t, err)
		assert.True(t, report.BucketExists)
		assert.True(t, report.Populated)
	})

	t.Run("Error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "recipes").Return(false, errors.New("denied"))

		_, err := CheckBucket(ctx, client, "recipes", "")
		assert.ErrorContains(t, err, "denied")
	})
}

func TestFixBucket(t *testing.T) {
	client := new(mocks.Client)
	client.On("MakeBucket", mock.Anything, "recipes", mock.Anything).Return(nil)

	assert.NoError(t, FixBucket(context.Background(), client, "recipes", zap.NewNop()))
	client.AssertExpectations(t)
}
