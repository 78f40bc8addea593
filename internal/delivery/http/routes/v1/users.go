package v1

import (
	"github.com/gofiber/fiber/v3"
)

func RegisterUsers(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.User != nil {
		h.User.RegisterRoutes(protected(r, "/users", h.Protect))
	}
	if h.Match != nil {
		h.Match.RegisterRoutes(protected(r, "/matches", h.Protect))
	}
}
