package handler

import (
	"context"
	"errors"
	"strings"

	"skill-swap/internal/delivery/http/dto"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/domain/invite"
	"skill-swap/internal/domain/user"
	"skill-swap/internal/pkg/response"
	ucinvite "skill-swap/internal/usecase/invite"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type InviteUsecase interface {
	SendInvite(ctx context.Context, sender user.User, receiverID uuid.UUID) (invite.Invite, error)
	ListPendingInvites(ctx context.Context, receiver user.User) ([]invite.Invite, error)
	AcceptInvite(ctx context.Context, invoker user.User, inviteID uuid.UUID) (invite.Invite, error)
}

type InviteHandler struct {
	uc InviteUsecase
}

func NewInviteHandler(uc InviteUsecase) *InviteHandler {
	return &InviteHandler{uc: uc}
}

func (h *InviteHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/send", h.Send)
	r.Get("/", h.ListPending)
	r.Post("/accept/:inviteId", h.Accept)
}

func (h *InviteHandler) Send(c fiber.Ctx) error {
	me, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.SendInviteRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}
	receiverID, err := uuid.Parse(strings.TrimSpace(req.ReceiverID))
	if err != nil {
		return badRequest("Invalid receiverId", err)
	}

	inv, err := h.uc.SendInvite(c.Context(), me, receiverID)
	if err != nil {
		return mapInviteUsecaseError(err)
	}
	return response.Created(c, "Invite sent", dto.NewInviteResponse(inv))
}

func (h *InviteHandler) ListPending(c fiber.Ctx) error {
	me, err := currentUser(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListPendingInvites(c.Context(), me)
	if err != nil {
		return mapInviteUsecaseError(err)
	}
	return response.OK(c, dto.NewInviteResponses(items))
}

func (h *InviteHandler) Accept(c fiber.Ctx) error {
	me, err := currentUser(c)
	if err != nil {
		return err
	}
	inviteID, err := uuidParam(c, "inviteId", "Invite not found")
	if err != nil {
		return err
	}

	inv, err := h.uc.AcceptInvite(c.Context(), me, inviteID)
	if err != nil {
		return mapInviteUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Invite accepted successfully", dto.NewInviteResponse(inv))
}

func mapInviteUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ucinvite.ErrInvalidInput), errors.Is(err, invite.ErrSelfInvite):
		return badRequest(err.Error(), err)
	case errors.Is(err, ucinvite.ErrReceiverNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Receiver not found", nil, err)
	case errors.Is(err, invite.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Invite not found", nil, err)
	case errors.Is(err, invite.ErrNotReceiver):
		return middleware.NewAppError(fiber.StatusForbidden, "Unauthorized", nil, err)
	case errors.Is(err, invite.ErrDuplicate):
		return middleware.NewAppError(fiber.StatusConflict, "Invite already sent", nil, err)
	case errors.Is(err, invite.ErrAlreadyAccepted):
		return middleware.NewAppError(fiber.StatusConflict, "Invite already accepted", nil, err)
	default:
		return internalError(err)
	}
}
