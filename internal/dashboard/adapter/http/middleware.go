package http

import (
	"context"

	"github.com/corlin/wvsee/internal/shared/contextkeys"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderRequestID is the header carrying the per-request identifier.
const HeaderRequestID = "X-Request-ID"

// RequestIDMiddleware assigns every request an ID, echoes it in the response
// header and stores it in the user context so log lines can be correlated.
// A client-supplied ID is kept as-is.
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(HeaderRequestID, requestID)
		c.SetUserContext(context.WithValue(c.UserContext(), contextkeys.RequestIDKey, requestID))

		return c.Next()
	}
}
