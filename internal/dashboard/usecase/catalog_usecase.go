package usecase

import (
	"context"
	"fmt"

	"github.com/corlin/wvsee/internal/dashboard/adapter/weaviate"
	"github.com/corlin/wvsee/internal/dashboard/domain/client"
	"github.com/corlin/wvsee/internal/dashboard/domain/model"
	apperrors "github.com/corlin/wvsee/internal/shared/errors"
	"github.com/corlin/wvsee/internal/shared/logger"

	"golang.org/x/sync/errgroup"
)

// maxCountConcurrency bounds the fan-out of per-class aggregate queries so a
// schema with many classes cannot flood the database.
const maxCountConcurrency = 8

// CatalogUsecase implements the collection catalog operations on top of the
// vector database client.
type CatalogUsecase struct {
	db     client.VectorDBClient
	logger logger.Logger
}

// NewCatalogUsecase creates a catalog usecase with the given client.
func NewCatalogUsecase(db client.VectorDBClient, log logger.Logger) *CatalogUsecase {
	return &CatalogUsecase{
		db:     db,
		logger: log.WithComponent("catalog-usecase"),
	}
}

// GetCollections assembles one CollectionInfo per declared class. The schema
// fetch is the only hard dependency: if it fails, no partial result is
// returned. Counts are fetched concurrently (bounded) and each class keeps
// its position from the schema's declaration order.
func (uc *CatalogUsecase) GetCollections(ctx context.Context) ([]model.CollectionInfo, error) {
	schema, err := uc.db.GetSchema(ctx)
	if err != nil {
		uc.logger.Error("Failed to fetch schema", "error", err)
		return nil, fmt.Errorf("failed to fetch schema: %w", err)
	}

	collections := make([]model.CollectionInfo, len(schema.Classes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxCountConcurrency)
	for i, class := range schema.Classes {
		g.Go(func() error {
			collections[i] = model.CollectionInfo{
				Name:        class.Class,
				Description: class.Description,
				Count:       uc.GetObjectCount(gctx, class.Class),
				Properties:  class.Properties,
			}
			return nil
		})
	}
	// Count failures are masked per class, so the group never errors.
	_ = g.Wait()

	uc.logger.Debug("Collections assembled", "count", len(collections))
	return collections, nil
}

// GetObjectCount fetches the object count of one class via an aggregate
// query. Any failure, from transport errors to an unexpected envelope shape,
// is masked to zero: the catalog listing stays usable even when a single
// class's aggregate query fails. The failure is still logged.
func (uc *CatalogUsecase) GetObjectCount(ctx context.Context, collection string) int64 {
	resp, err := uc.db.ExecuteQuery(ctx, weaviate.BuildAggregateQuery(collection))
	if err != nil {
		uc.logger.Warn("Object count query failed, reporting zero",
			"collection", collection, "error", err)
		return 0
	}

	if resp.Data == nil || resp.Data.Aggregate == nil {
		uc.logger.Warn("Aggregate response missing data envelope, reporting zero",
			"collection", collection)
		return 0
	}

	buckets := resp.Data.Aggregate[collection]
	if len(buckets) == 0 {
		uc.logger.Warn("Aggregate response has no buckets, reporting zero",
			"collection", collection)
		return 0
	}

	return buckets[0].Meta.Count
}

// GetCollectionData fetches all rows of one collection. A response that lacks
// the data.Get envelope is an error; a present envelope without the class key
// is an empty collection.
func (uc *CatalogUsecase) GetCollectionData(ctx context.Context, req GetCollectionDataRequest) ([]model.CollectionData, error) {
	if req.Collection == "" {
		return nil, apperrors.ErrMissingCollectionName
	}

	query := weaviate.BuildGetQuery(req.Collection, req.Properties, req.Sort)
	resp, err := uc.db.ExecuteQuery(ctx, query)
	if err != nil {
		uc.logger.Error("Failed to fetch collection data",
			"collection", req.Collection, "error", err)
		return nil, fmt.Errorf("failed to fetch collection data: %w", err)
	}

	if resp.Data == nil || resp.Data.Get == nil {
		uc.logger.Error("Get response missing data envelope", "collection", req.Collection)
		return nil, fmt.Errorf("collection %s: %w", req.Collection, apperrors.ErrMalformedResponse)
	}

	rows, ok := resp.Data.Get[req.Collection]
	if !ok {
		return []model.CollectionData{}, nil
	}
	return rows, nil
}

// DeleteCollection removes one collection via the database's native
// class-delete primitive.
func (uc *CatalogUsecase) DeleteCollection(ctx context.Context, req DeleteCollectionRequest) error {
	if req.Collection == "" {
		return apperrors.ErrMissingCollectionName
	}

	uc.logger.Info("Deleting collection", "collection", req.Collection)
	if err := uc.db.DeleteClass(ctx, req.Collection); err != nil {
		uc.logger.Error("Failed to delete collection",
			"collection", req.Collection, "error", err)
		return fmt.Errorf("failed to delete collection: %w", err)
	}

	uc.logger.Info("Collection deleted", "collection", req.Collection)
	return nil
}

// CheckReady reports whether the database answers its readiness probe.
func (uc *CatalogUsecase) CheckReady(ctx context.Context) error {
	return uc.db.Ready(ctx)
}
