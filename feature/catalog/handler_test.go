package catalog_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"recipe-viewer/feature/catalog"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func doGet(t *testing.T, app *fiber.App, target string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return resp.StatusCode, out
}

func TestHandler(t *testing.T) {
	app := fiber.New()
	catalog.NewHandler(syncedService(t)).RegisterRoutes(app)

	t.Run("Items", func(t *testing.T) {
		status, body := doGet(t, app, "/catalog/items?mod=minecraft&limit=3")
		assert.Equal(t, fiber.StatusOK, status)
		assert.EqualValues(t, 7, body["total"])
		assert.EqualValues(t, 3, body["limit"])
		assert.Len(t, body["results"], 3)
	})

	t.Run("EmptyResults", func(t *testing.T) {
		status, body := doGet(t, app, "/catalog/items?q=diamond")
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, []any{}, body["results"])
	})

	t.Run("Fluids", func(t *testing.T) {
		status, body := doGet(t, app, "/catalog/fluids?min_temp=296")
		assert.Equal(t, fiber.StatusOK, status)
		assert.EqualValues(t, 1, body["total"])
	})

	t.Run("BadLimit", func(t *testing.T) {
		status, body := doGet(t, app, "/catalog/items?limit=ten")
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "limit must be an integer", body["error"])
	})

	t.Run("BadTemperature", func(t *testing.T) {
		status, _ := doGet(t, app, "/catalog/fluids?max_temp=hot")
		assert.Equal(t, fiber.StatusBadRequest, status)
	})
}

func TestFeature(t *testing.T) {
	disabled := catalog.NewFeature(nil, zap.NewNop())
	assert.Equal(t, "catalog", disabled.Name())
	assert.False(t, disabled.IsEnabled())

	enabled := catalog.NewFeature(openDB(t), zap.NewNop())
	assert.True(t, enabled.IsEnabled())
	assert.NoError(t, enabled.Load(fiber.New()))
}
