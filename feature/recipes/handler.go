package recipes

import (
	"errors"
	"strconv"

	"recipe-viewer/core/identity"
	"recipe-viewer/core/logger"
	"recipe-viewer/feature/resolver"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for recipe lookups.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the recipe routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/recipes")
	group.Get("/item", h.HandleItemRecipes)
	group.Get("/item/describe", h.HandleDescribeItem)
	group.Get("/fluid", h.HandleFluidRecipes)
}

// HandleItemRecipes returns the recipes using and producing an item.
// @Summary Recipes For Item
// @Description Lists recipes consuming and producing an item, including recipes recorded for the resource's wildcard variant.
// @Tags recipes
// @Produce json
// @Param resource query string false "Resource id (e.g. 'minecraft:planks')"
// @Param variant query int false "Variant (item damage), defaults to 0"
// @Param key query string false "Item key (e.g. 'minecraft:planks:1'), instead of resource and variant"
// @Success 200 {object} models.RecipesResult "Recipes"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 503 {object} map[string]string "Recipes Unavailable"
// @Router /recipes/item [get]
func (h *Handler) HandleItemRecipes(c *fiber.Ctx) error {
	resource, variant, err := itemParams(c)
	if err != nil {
		return badRequest(c, err)
	}

	result, err := h.service.RecipesForItem(c.Context(), resource, variant)
	if err != nil {
		return h.failure(c, "Item recipe lookup failed", err)
	}
	return c.JSON(result)
}

// HandleFluidRecipes returns the recipes using and producing a fluid.
// @Summary Recipes For Fluid
// @Description Lists recipes consuming and producing a fluid.
// @Tags recipes
// @Produce json
// @Param name query string true "Unlocalized fluid name (e.g. 'water')"
// @Success 200 {object} models.RecipesResult "Recipes"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 503 {object} map[string]string "Recipes Unavailable"
// @Router /recipes/fluid [get]
func (h *Handler) HandleFluidRecipes(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return badRequest(c, errors.New("name is required"))
	}

	result, err := h.service.RecipesForFluid(c.Context(), name)
	if err != nil {
		return h.failure(c, "Fluid recipe lookup failed", err)
	}
	return c.JSON(result)
}

// HandleDescribeItem returns link-preview data for an item.
// @Summary Describe Item
// @Description Returns the ore dictionary groups of an item and its used-in / produced-by counts.
// @Tags recipes
// @Produce json
// @Param resource query string false "Resource id"
// @Param variant query int false "Variant (item damage), defaults to 0"
// @Param key query string false "Item key, instead of resource and variant"
// @Success 200 {object} models.ItemDescription "Description"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 503 {object} map[string]string "Recipes Unavailable"
// @Router /recipes/item/describe [get]
func (h *Handler) HandleDescribeItem(c *fiber.Ctx) error {
	resource, variant, err := itemParams(c)
	if err != nil {
		return badRequest(c, err)
	}

	desc, err := h.service.DescribeItem(c.Context(), resource, variant)
	if err != nil {
		return h.failure(c, "Item description failed", err)
	}
	return c.JSON(desc)
}

// itemParams reads either a full item key or a resource with an optional variant.
func itemParams(c *fiber.Ctx) (string, int, error) {
	if key := c.Query("key"); key != "" {
		return identity.ParseItemKey(key)
	}
	resource := c.Query("resource")
	if resource == "" {
		return "", 0, errors.New("resource or key is required")
	}
	variant := 0
	if raw := c.Query("variant"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return "", 0, errors.New("variant must be an integer")
		}
		variant = v
	}
	return resource, variant, nil
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// failure maps fetch failures to 503 so clients can tell "unavailable" from "no recipes".
func (h *Handler) failure(c *fiber.Ctx, msg string, err error) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Error(msg, zap.Error(err))

	if errors.Is(err, resolver.ErrPartitionFetch) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
			"error":  err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
