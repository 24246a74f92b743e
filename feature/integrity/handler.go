package integrity

import (
	"errors"

	"recipe-viewer/core/logger"
	"recipe-viewer/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = checks.SchemaReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/artifacts", h.HandleArtifactsCheck)
	group.Get("/maps", h.HandleMapsCheck)
	group.Get("/dangling", h.HandleDanglingCheck)
	group.Get("/catalog", h.HandleCatalogCheck)
	group.Get("/bucket", h.HandleBucketCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs every configured integrity check (Artifacts, Maps, Dangling, Catalog, Bucket). Loads every recipe map, so it may take a while.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	return c.JSON(h.service.RunAll(c.Context()))
}

// HandleArtifactsCheck checks the required artifacts.
// @Summary Check Artifacts
// @Description Verify that every required dataset artifact is present.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Artifacts Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/artifacts [get]
func (h *Handler) HandleArtifactsCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	missing, err := h.service.CheckArtifacts(c.Context())
	if err != nil {
		l.Error("Artifacts check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if len(missing) > 0 {
		l.Warn("Missing artifacts detected", zap.Strings("missing", missing))
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": nonNil(missing),
	})
}

// HandleMapsCheck reconciles recipe maps.
// @Summary Reconcile Recipe Maps
// @Description Compares the recipe map manifest, the stored map partitions and the maps referenced by the indexes.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.MapReport "Maps Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/maps [get]
func (h *Handler) HandleMapsCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.ReconcileMaps(c.Context())
	if err != nil {
		l.Error("Map reconciliation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleDanglingCheck scans the indexes for dangling references.
// @Summary Scan Dangling References
// @Description Reports index references whose recipe collection, map or position does not exist.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.DanglingReport "Dangling Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/dangling [get]
func (h *Handler) HandleDanglingCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting dangling reference scan")

	report, err := h.service.ScanDangling(c.Context())
	if err != nil {
		l.Error("Dangling reference scan failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Dangling reference scan completed",
		zap.Int("checked", report.Checked),
		zap.Int("anomalies", len(report.Anomalies)))

	return c.JSON(report)
}

// HandleCatalogCheck checks the catalog schema.
// @Summary Check Catalog Schema
// @Description Checks if the catalog database tables match the expected models.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport "Catalog Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 503 {object} map[string]string "Not Configured"
// @Router /integrity/catalog [get]
func (h *Handler) HandleCatalogCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckCatalog()
	if err != nil {
		return h.failure(c, l, "Catalog schema check failed", err)
	}
	return c.JSON(report)
}

// HandleBucketCheck checks and optionally fixes the publish bucket.
// @Summary Check Bucket
// @Description Checks that the publish bucket exists and holds objects under the dataset prefix. Optionally creates the bucket.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create the bucket if missing"
// @Success 200 {object} checks.BucketReport "Bucket Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 503 {object} map[string]string "Not Configured"
// @Router /integrity/bucket [get]
func (h *Handler) HandleBucketCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	report, err := h.service.CheckBucket(c.Context())
	if err != nil {
		return h.failure(c, l, "Bucket check failed", err)
	}

	if !report.BucketExists && fix {
		l.Info("Attempting to create missing bucket")
		if err := h.service.FixBucket(c.Context()); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to create bucket",
				"details": err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"status": "fixed",
			"bucket": report.Bucket,
		})
	}

	return c.JSON(report)
}

func (h *Handler) failure(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	if errors.Is(err, ErrNoDatabase) || errors.Is(err, ErrNoStorage) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	l.Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
