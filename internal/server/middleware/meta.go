// Package middleware provides HTTP server middleware components.
package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rise-and-shine/filevault/internal/meta"
	"github.com/rise-and-shine/filevault/internal/server"
)

// NewMetaInjectMW creates a middleware that injects metadata into the request context.
//
// This middleware assigns a request ID to each incoming request (reusing the
// X-Request-Id header when the caller provides one), collects the client IP
// and user agent, and injects them into the request context using the meta
// package. The request ID is echoed back in the response headers.
func NewMetaInjectMW(serviceName string) server.Middleware {
	return server.Middleware{
		Priority: 700,
		Handler: func(c *fiber.Ctx) error {
			requestID := c.Get(fiber.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			metaData := map[meta.ContextKey]string{
				meta.RequestID:   requestID,
				meta.IPAddress:   c.IP(),
				meta.UserAgent:   c.Get(fiber.HeaderUserAgent),
				meta.ServiceName: serviceName,
			}

			ctx := meta.InjectMetaToContext(c.UserContext(), metaData)
			c.SetUserContext(ctx)
			c.Set(fiber.HeaderXRequestID, requestID)

			return c.Next()
		},
	}
}
