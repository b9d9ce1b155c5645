package client

import (
	"context"

	"github.com/corlin/wvsee/internal/dashboard/domain/model"
)

// VectorDBClient is the outbound port to the vector database. The weaviate
// adapter implements it; usecases depend only on this interface.
type VectorDBClient interface {
	// ExecuteQuery posts a GraphQL query string and returns the decoded envelope.
	ExecuteQuery(ctx context.Context, query string) (*model.GraphQLResponse, error)

	// GetSchema returns the declared classes and their properties.
	GetSchema(ctx context.Context) (*model.Schema, error)

	// DeleteClass removes a class and all of its objects.
	DeleteClass(ctx context.Context, class string) error

	// Ready probes the database's readiness endpoint.
	Ready(ctx context.Context) error
}
