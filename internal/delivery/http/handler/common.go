package handler

import (
	"strings"

	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/domain/user"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func currentUser(c fiber.Ctx) (user.User, error) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return user.User{}, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return u, nil
}

// uuidParam parses a path parameter; malformed ids are reported as notFound.
func uuidParam(c fiber.Ctx, name, notFound string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusNotFound, notFound, nil, err)
	}
	return id, nil
}

func badRequest(msg string, cause error) error {
	return middleware.NewAppError(fiber.StatusBadRequest, msg, nil, cause)
}

func internalError(cause error) error {
	return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, cause)
}
