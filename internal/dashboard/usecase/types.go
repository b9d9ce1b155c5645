package usecase

import "github.com/corlin/wvsee/internal/dashboard/domain/model"

// GetCollectionDataRequest fetches all rows of one collection. Properties
// lists the fields to request; Sort is optional.
type GetCollectionDataRequest struct {
	Collection string
	Properties []string
	Sort       *model.SortDirective
}

// DeleteCollectionRequest removes one collection.
type DeleteCollectionRequest struct {
	Collection string
}
