package v1

import (
	"skill-swap/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

// Handlers carries everything mounted under /api/v1. Protect is the auth
// guard applied to every group except the public auth routes.
type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Match        *handler.MatchHandler
	Invite       *handler.InviteHandler
	Message      *handler.MessageHandler
	Notification *handler.NotificationHandler

	Protect fiber.Handler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"), h.Protect)
	}

	RegisterUsers(r, h)
	RegisterConnections(r, h)
}

func protected(r fiber.Router, prefix string, guard fiber.Handler) fiber.Router {
	if guard == nil {
		return r.Group(prefix)
	}
	return r.Group(prefix, guard)
}
