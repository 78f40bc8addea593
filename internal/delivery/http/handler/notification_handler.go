package handler

import (
	"context"
	"errors"

	"skill-swap/internal/delivery/http/dto"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/domain/notification"
	"skill-swap/internal/pkg/response"
	ucnotification "skill-swap/internal/usecase/notification"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type NotificationUsecase interface {
	ListUnread(ctx context.Context, userID uuid.UUID) ([]notification.Notification, error)
	MarkRead(ctx context.Context, invoker, id uuid.UUID) error
}

type NotificationHandler struct {
	uc NotificationUsecase
}

func NewNotificationHandler(uc NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

func (h *NotificationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.ListUnread)
	r.Put("/:notificationId/read", h.MarkRead)
}

func (h *NotificationHandler) ListUnread(c fiber.Ctx) error {
	me, err := currentUser(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListUnread(c.Context(), me.ID)
	if err != nil {
		return internalError(err)
	}
	return response.OK(c, dto.NewNotificationResponses(items))
}

func (h *NotificationHandler) MarkRead(c fiber.Ctx) error {
	me, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "notificationId", "Notification not found")
	if err != nil {
		return err
	}

	if err := h.uc.MarkRead(c.Context(), me.ID, id); err != nil {
		switch {
		case errors.Is(err, ucnotification.ErrNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "Notification not found", nil, err)
		case errors.Is(err, ucnotification.ErrForbidden):
			return middleware.NewAppError(fiber.StatusForbidden, "Unauthorized", nil, err)
		default:
			return internalError(err)
		}
	}
	return response.Success(c, fiber.StatusOK, "Notification marked as read", nil)
}
