package handler

import (
	"context"
	"errors"
	"time"

	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

// storeTimeout bounds every store call made on behalf of a request.
const storeTimeout = 5 * time.Second

func requestContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), storeTimeout)
}

// respondError handles the taxonomy tail shared by every handler: validation
// details go back verbatim, timeouts are retryable 503s, and everything else
// is the caller-supplied generic message. Endpoint-specific cases (404s,
// 409s, 401s) are handled at the call sites where the wording matters.
func respondError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Storage temporarily unavailable, retry later"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fallback})
	}
}
