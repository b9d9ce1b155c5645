package http

import (
	"context"

	"github.com/corlin/wvsee/internal/dashboard/domain/model"
	"github.com/corlin/wvsee/internal/dashboard/usecase"
	"github.com/corlin/wvsee/internal/shared/contextkeys"
	"github.com/corlin/wvsee/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
)

// CollectionHandler exposes the dashboard's REST API over the vector
// database: catalog listing, per-collection row data and collection deletion.
type CollectionHandler struct {
	CatalogUC usecase.CatalogUsecaseInterface
	Log       logger.Logger
}

// NewCollectionHandler creates a handler backed by the catalog usecase.
func NewCollectionHandler(catalogUC usecase.CatalogUsecaseInterface, log logger.Logger) *CollectionHandler {
	return &CollectionHandler{
		CatalogUC: catalogUC,
		Log:       log.WithComponent("http-handler"),
	}
}

// RegisterRoutes registers the dashboard API routes.
func (h *CollectionHandler) RegisterRoutes(router fiber.Router) {
	api := router.Group("/api")
	api.Get("/collections", h.ListCollections)
	api.Get("/collection/:name?", h.GetCollectionData)
	api.Delete("/collection/:name?", h.DeleteCollection)
}

// ListCollections serves the catalog the dashboard page renders on load.
func (h *CollectionHandler) ListCollections(c *fiber.Ctx) error {
	h.Log.Debug("Listing collections via HTTP")

	collections, err := h.CatalogUC.GetCollections(c.UserContext())
	if err != nil {
		h.Log.Error("Failed to list collections", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to list collections",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"collections": collections,
		"count":       len(collections),
	})
}

// GetCollectionData serves all rows of one collection. The property list is
// looked up from the catalog first; an unknown name is a 404.
func (h *CollectionHandler) GetCollectionData(c *fiber.Ctx) error {
	name := c.Params("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Collection name is required",
		})
	}

	sort, ok := parseSortDirective(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "sortOrder must be asc or desc",
		})
	}

	ctx := context.WithValue(c.UserContext(), contextkeys.CollectionKey, name)
	h.Log.Debug("Getting collection data via HTTP", "collection", name)

	collections, err := h.CatalogUC.GetCollections(ctx)
	if err != nil {
		h.Log.Error("Failed to look up collection", "collection", name, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to fetch collection",
			"details": err.Error(),
		})
	}

	info := findCollection(collections, name)
	if info == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Collection not found",
		})
	}

	rows, err := h.CatalogUC.GetCollectionData(ctx, usecase.GetCollectionDataRequest{
		Collection: name,
		Properties: info.PropertyNames(),
		Sort:       sort,
	})
	if err != nil {
		h.Log.Error("Failed to fetch collection data", "collection", name, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to fetch collection data",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"data": rows,
	})
}

// DeleteCollection removes one collection from the database.
func (h *CollectionHandler) DeleteCollection(c *fiber.Ctx) error {
	name := c.Params("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Collection name is required",
		})
	}

	h.Log.Debug("Deleting collection via HTTP", "collection", name)

	err := h.CatalogUC.DeleteCollection(c.UserContext(), usecase.DeleteCollectionRequest{
		Collection: name,
	})
	if err != nil {
		h.Log.Error("Failed to delete collection", "collection", name, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to delete collection",
			"details": err.Error(),
		})
	}

	h.Log.Info("Collection deleted via HTTP", "collection", name)
	return c.JSON(fiber.Map{
		"success": true,
	})
}

// Health reports whether the vector database answers its readiness probe.
func (h *CollectionHandler) Health(c *fiber.Ctx) error {
	if err := h.CatalogUC.CheckReady(c.UserContext()); err != nil {
		h.Log.Error("Health check failed", "error", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "UNHEALTHY",
			"error":  err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status": "HEALTHY",
	})
}

// parseSortDirective reads the optional sortProperty/sortOrder query
// parameters. The second return value is false when sortOrder carries a value
// outside the query grammar.
func parseSortDirective(c *fiber.Ctx) (*model.SortDirective, bool) {
	property := c.Query("sortProperty")
	order := c.Query("sortOrder")

	if property == "" && order == "" {
		return nil, true
	}
	if property == "" {
		// An order without a property cannot be applied; ignore it.
		return nil, true
	}
	if order == "" {
		order = model.SortAscending
	}

	sort := &model.SortDirective{Property: property, Order: order}
	if !sort.IsValid() {
		return nil, false
	}
	return sort, true
}

func findCollection(collections []model.CollectionInfo, name string) *model.CollectionInfo {
	for i := range collections {
		if collections[i].Name == name {
			return &collections[i]
		}
	}
	return nil
}
