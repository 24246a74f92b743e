package integrity

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"recipe-viewer/core/database"
	"recipe-viewer/core/loader"
	"recipe-viewer/core/partition"
	"recipe-viewer/core/storage/mocks"
	"recipe-viewer/feature/catalog"
	"recipe-viewer/feature/indexer"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

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

func migratedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, catalog.NewService(db, zap.NewNop()).Migrate())
	return db
}

func setupTestApp(t *testing.T, svc *Service) *fiber.App {
	t.Helper()
	app := fiber.New()
	mgr := loader.NewManager()
	mgr.Register(NewFeature(svc))
	loaded, err := mgr.LoadAll(app)
	require.NoError(t, err)
	require.Equal(t, []string{"integrity"}, loaded)
	return app
}

func doGet(t *testing.T, app *fiber.App, target string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil), -1)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestRunAll(t *testing.T) {
	ctx := context.Background()

	t.Run("LocalOnly", func(t *testing.T) {
		svc := NewService(&partition.DirSource{Dir: buildDataset(t)}, nil, "", "", nil, zap.NewNop())
		report := svc.RunAll(ctx)

		assert.Contains(t, report, "artifacts")
		assert.Contains(t, report, "maps")
		assert.Contains(t, report, "dangling")
		assert.NotContains(t, report, "catalog")
		assert.NotContains(t, report, "bucket")
	})

	t.Run("Everything", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "recipes").Return(false, nil)
		svc := NewService(&partition.DirSource{Dir: buildDataset(t)}, client, "recipes", "gtnh", migratedDB(t), zap.NewNop())

		report := svc.RunAll(ctx)
		assert.Contains(t, report, "catalog")
		assert.Contains(t, report, "bucket")
	})

	t.Run("EmptyDataset", func(t *testing.T) {
		svc := NewService(&partition.DirSource{Dir: t.TempDir()}, nil, "", "", nil, zap.NewNop())
		report := svc.RunAll(ctx)

		artifacts := report["artifacts"].(map[string]any)
		assert.Equal(t, "ok", artifacts["status"])
		assert.Len(t, artifacts["missing"], len(partition.Required))
		assert.Equal(t, "error", report["maps"].(map[string]any)["status"])
		assert.Equal(t, "error", report["dangling"].(map[string]any)["status"])
	})
}

func TestService_Unconfigured(t *testing.T) {
	svc := NewService(&partition.DirSource{Dir: t.TempDir()}, nil, "", "", nil, zap.NewNop())

	_, err := svc.CheckCatalog()
	assert.ErrorIs(t, err, ErrNoDatabase)
	_, err = svc.CheckBucket(context.Background())
	assert.ErrorIs(t, err, ErrNoStorage)
	assert.ErrorIs(t, svc.FixBucket(context.Background()), ErrNoStorage)
}

func TestHandleArtifactsCheck(t *testing.T) {
	dir := buildDataset(t)
	require.NoError(t, os.Remove(filepath.Join(dir, partition.FileName(partition.Metadata))))
	app := setupTestApp(t, NewService(&partition.DirSource{Dir: dir}, nil, "", "", nil, zap.NewNop()))

	status, body := doGet(t, app, "/integrity/artifacts")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "checked", body["status"])
	assert.Equal(t, []any{partition.Metadata}, body["missing"])
}

func TestHandleMapsAndDangling(t *testing.T) {
	app := setupTestApp(t, NewService(&partition.DirSource{Dir: buildDataset(t)}, nil, "", "", nil, zap.NewNop()))

	status, body := doGet(t, app, "/integrity/maps")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["matched"])
	assert.Len(t, body["maps"], 2)

	status, body = doGet(t, app, "/integrity/dangling")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []any{}, body["anomalies"])
}

func TestHandleMapsCheck_Error(t *testing.T) {
	app := setupTestApp(t, NewService(&partition.DirSource{Dir: t.TempDir()}, nil, "", "", nil, zap.NewNop()))

	status, body := doGet(t, app, "/integrity/maps")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.NotEmpty(t, body["error"])
}

func TestHandleCatalogCheck(t *testing.T) {
	t.Run("NotConfigured", func(t *testing.T) {
		app := setupTestApp(t, NewService(&partition.DirSource{}, nil, "", "", nil, zap.NewNop()))
		status, _ := doGet(t, app, "/integrity/catalog")
		assert.Equal(t, fiber.StatusServiceUnavailable, status)
	})

	t.Run("Matched", func(t *testing.T) {
		app := setupTestApp(t, NewService(&partition.DirSource{}, nil, "", "", migratedDB(t), zap.NewNop()))
		status, body := doGet(t, app, "/integrity/catalog")
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, true, body["matched"])
	})
}

func TestHandleBucketCheck(t *testing.T) {
	t.Run("Fix", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "recipes").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "recipes", mock.Anything).Return(nil)
		app := setupTestApp(t, NewService(&partition.DirSource{}, client, "recipes", "", nil, zap.NewNop()))

		status, body := doGet(t, app, "/integrity/bucket?fix=true")
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, "fixed", body["status"])
		client.AssertExpectations(t)
	})

	t.Run("CheckOnly", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "recipes").Return(false, nil)
		app := setupTestApp(t, NewService(&partition.DirSource{}, client, "recipes", "", nil, zap.NewNop()))

		status, body := doGet(t, app, "/integrity/bucket")
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, false, body["bucket_exists"])
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHandleIntegrityCheck(t *testing.T) {
	app := setupTestApp(t, NewService(&partition.DirSource{Dir: buildDataset(t)}, nil, "", "", nil, zap.NewNop()))

	status, body := doGet(t, app, "/integrity")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "artifacts")
	assert.Contains(t, body, "dangling")
}
