package contextkeys

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKey_String(t *testing.T) {
	key := contextKey("testKey")
	assert.Equal(t, "wvsee context key testKey", key.String())
}

func TestContextKeys_Usage(t *testing.T) {
	ctx := context.Background()
	ctx = context.WithValue(ctx, RequestIDKey, "req-456")
	ctx = context.WithValue(ctx, CollectionKey, "Article")
	ctx = context.WithValue(ctx, ComponentKey, "weaviate-client")
	ctx = context.WithValue(ctx, OperationKey, "get-collections")

	assert.Equal(t, "req-456", ctx.Value(RequestIDKey))
	assert.Equal(t, "Article", ctx.Value(CollectionKey))
	assert.Equal(t, "weaviate-client", ctx.Value(ComponentKey))
	assert.Equal(t, "get-collections", ctx.Value(OperationKey))
}
