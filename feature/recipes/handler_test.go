package recipes_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"recipe-viewer/core/loader"
	"recipe-viewer/feature/recipes"
	"recipe-viewer/feature/resolver"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newApp(t *testing.T, fake *fakeResolver) *fiber.App {
	t.Helper()
	app := fiber.New()
	mgr := loader.NewManager()
	mgr.Register(recipes.NewFeature(fake, zap.NewNop()))
	_, err := mgr.LoadAll(app)
	require.NoError(t, err)
	return app
}

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

func TestHandleItemRecipes(t *testing.T) {
	app := newApp(t, wildcardFixture())

	t.Run("OK", func(t *testing.T) {
		status, body := doGet(t, app, "/recipes/item?resource=mod:wool&variant=14")
		assert.Equal(t, fiber.StatusOK, status)
		assert.Len(t, body["asInput"], 3)
		assert.Len(t, body["asOutput"], 1)
	})

	t.Run("DefaultVariant", func(t *testing.T) {
		status, body := doGet(t, app, "/recipes/item?resource=mod:unknown")
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, []any{}, body["asInput"])
		assert.Equal(t, []any{}, body["asOutput"])
	})

	t.Run("MissingResource", func(t *testing.T) {
		status, body := doGet(t, app, "/recipes/item")
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "resource or key is required", body["error"])
	})

	t.Run("ByKey", func(t *testing.T) {
		status, body := doGet(t, app, "/recipes/item?key=mod:wool:14")
		assert.Equal(t, fiber.StatusOK, status)
		assert.Len(t, body["asInput"], 3)
	})

	t.Run("BadKey", func(t *testing.T) {
		status, _ := doGet(t, app, "/recipes/item?key=wool")
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("BadVariant", func(t *testing.T) {
		status, _ := doGet(t, app, "/recipes/item?resource=mod:wool&variant=abc")
		assert.Equal(t, fiber.StatusBadRequest, status)
	})
}

func TestHandleFluidRecipes(t *testing.T) {
	app := newApp(t, wildcardFixture())

	status, body := doGet(t, app, "/recipes/fluid?name=water")
	assert.Equal(t, fiber.StatusOK, status)
	require.Len(t, body["asInput"], 1)
	first := body["asInput"].([]any)[0].(map[string]any)
	assert.Equal(t, map[string]any{"type": "machine", "index": float64(0), "map": "Mixer"}, first["ref"])

	status, _ = doGet(t, app, "/recipes/fluid")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestHandleDescribeItem(t *testing.T) {
	app := newApp(t, wildcardFixture())

	status, body := doGet(t, app, "/recipes/item/describe?resource=mod:wool&variant=14")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "mod:wool:14", body["key"])
	assert.Equal(t, []any{"blockWool", "woolRed"}, body["oreDict"])
	assert.Equal(t, float64(3), body["usedIn"])
}

func TestHandlers_Unavailable(t *testing.T) {
	fake := wildcardFixture()
	fake.err = fmt.Errorf("%w: crafting: connection refused", resolver.ErrPartitionFetch)
	app := newApp(t, fake)

	for _, target := range []string{
		"/recipes/item?resource=mod:wool",
		"/recipes/fluid?name=water",
		"/recipes/item/describe?resource=mod:wool",
	} {
		status, body := doGet(t, app, target)
		assert.Equal(t, fiber.StatusServiceUnavailable, status, target)
		assert.Equal(t, "unavailable", body["status"])
		assert.Contains(t, body["error"], "connection refused")
	}
}

func TestHandlers_InternalError(t *testing.T) {
	fake := wildcardFixture()
	fake.err = fmt.Errorf("unexpected")
	app := newApp(t, fake)

	status, body := doGet(t, app, "/recipes/fluid?name=water")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Nil(t, body["status"])
}

func TestFeature(t *testing.T) {
	f := recipes.NewFeature(wildcardFixture(), zap.NewNop())
	assert.Equal(t, "recipes", f.Name())
	assert.True(t, f.IsEnabled())
	assert.NotNil(t, f.Service())
}
