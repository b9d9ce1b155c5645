package usecase

import (
	"context"

	"github.com/corlin/wvsee/internal/dashboard/domain/model"
)

// CatalogUsecaseInterface is the application-facing contract consumed by the
// HTTP layer.
type CatalogUsecaseInterface interface {
	// GetCollections returns one CollectionInfo per declared class, in schema
	// declaration order. Schema failures propagate; per-class count failures
	// are masked to zero.
	GetCollections(ctx context.Context) ([]model.CollectionInfo, error)

	// GetObjectCount returns the object count of one class, or zero when the
	// aggregate query fails for any reason.
	GetObjectCount(ctx context.Context, collection string) int64

	// GetCollectionData returns all rows of one collection.
	GetCollectionData(ctx context.Context, req GetCollectionDataRequest) ([]model.CollectionData, error)

	// DeleteCollection removes one collection from the database.
	DeleteCollection(ctx context.Context, req DeleteCollectionRequest) error

	// CheckReady reports whether the database is reachable and ready.
	CheckReady(ctx context.Context) error
}
