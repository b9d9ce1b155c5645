package contextkeys

// contextKey is an unexported type to prevent collisions with context keys defined in
// other packages.
type contextKey string

// String makes contextKey satisfy the Stringer interface to assist with debugging.
func (c contextKey) String() string {
	return "wvsee context key " + string(c)
}

// RequestIDKey is the key for the per-request ID in context.Context
const RequestIDKey = contextKey("requestID")

// CollectionKey is the key for the collection (class) name in context.Context
const CollectionKey = contextKey("collection")

// ComponentKey is the key for the originating component in context.Context
const ComponentKey = contextKey("component")

// OperationKey is the key for the current operation in context.Context
const OperationKey = contextKey("operation")
