package catalog

import (
	"errors"
	"strconv"

	"recipe-viewer/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SearchResponse wraps one page of search results.
type SearchResponse[T any] struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	Results []T   `json:"results"`
}

// Handler handles HTTP requests for catalog search.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Get("/items", h.HandleSearchItems)
	group.Get("/fluids", h.HandleSearchFluids)
}

// HandleSearchItems searches the item catalog.
// @Summary Search Items
// @Description Searches items by display name or resource id, optionally filtered by mod and rarity.
// @Tags catalog
// @Produce json
// @Param q query string false "Text query"
// @Param mod query string false "Mod namespace (e.g. 'gregtech')"
// @Param rarity query string false "Rarity"
// @Param limit query int false "Page size (default 50, max 500)"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{} "Items"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/items [get]
func (h *Handler) HandleSearchItems(c *fiber.Ctx) error {
	page, err := pageParams(c)
	if err != nil {
		return badRequest(c, err)
	}

	filter := ItemFilter{Query: c.Query("q"), Mod: c.Query("mod"), Rarity: c.Query("rarity")}
	rows, total, err := h.service.SearchItems(c.Context(), filter, page)
	if err != nil {
		return h.failure(c, "Item search failed", err)
	}
	page = page.normalize()
	return c.JSON(SearchResponse[ItemRow]{Total: total, Limit: page.Limit, Offset: page.Offset, Results: nonNil(rows)})
}

// HandleSearchFluids searches the fluid catalog.
// @Summary Search Fluids
// @Description Searches fluids by name, optionally bounded by temperature.
// @Tags catalog
// @Produce json
// @Param q query string false "Text query"
// @Param min_temp query int false "Minimum temperature"
// @Param max_temp query int false "Maximum temperature"
// @Param limit query int false "Page size (default 50, max 500)"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{} "Fluids"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/fluids [get]
func (h *Handler) HandleSearchFluids(c *fiber.Ctx) error {
	page, err := pageParams(c)
	if err != nil {
		return badRequest(c, err)
	}

	filter := FluidFilter{Query: c.Query("q")}
	if filter.MinTemperature, err = optionalInt(c, "min_temp"); err != nil {
		return badRequest(c, err)
	}
	if filter.MaxTemperature, err = optionalInt(c, "max_temp"); err != nil {
		return badRequest(c, err)
	}

	rows, total, err := h.service.SearchFluids(c.Context(), filter, page)
	if err != nil {
		return h.failure(c, "Fluid search failed", err)
	}
	page = page.normalize()
	return c.JSON(SearchResponse[FluidRow]{Total: total, Limit: page.Limit, Offset: page.Offset, Results: nonNil(rows)})
}

func pageParams(c *fiber.Ctx) (Page, error) {
	var p Page
	limit, err := optionalInt(c, "limit")
	if err != nil {
		return p, err
	}
	offset, err := optionalInt(c, "offset")
	if err != nil {
		return p, err
	}
	if limit != nil {
		p.Limit = *limit
	}
	if offset != nil {
		p.Offset = *offset
	}
	return p, nil
}

func optionalInt(c *fiber.Ctx, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.New(name + " must be an integer")
	}
	return &v, nil
}

func nonNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func (h *Handler) failure(c *fiber.Ctx, msg string, err error) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
