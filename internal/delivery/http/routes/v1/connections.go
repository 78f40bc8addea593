package v1

import (
	"github.com/gofiber/fiber/v3"
)

// RegisterConnections mounts the invite ledger and the features that sit
// on top of it: messaging and notifications.
func RegisterConnections(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Invite != nil {
		h.Invite.RegisterRoutes(protected(r, "/invites", h.Protect))
	}
	if h.Message != nil {
		h.Message.RegisterRoutes(protected(r, "/messages", h.Protect))
	}
	if h.Notification != nil {
		h.Notification.RegisterRoutes(protected(r, "/notifications", h.Protect))
	}
}
