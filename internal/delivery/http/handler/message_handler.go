package handler

import (
	"context"
	"errors"
	"strings"

	"skill-swap/internal/delivery/http/dto"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/domain/message"
	"skill-swap/internal/pkg/response"
	ucmessage "skill-swap/internal/usecase/message"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MessageUsecase interface {
	Send(ctx context.Context, senderID, receiverID uuid.UUID, content string) (message.Message, error)
	ListBetween(ctx context.Context, a, b uuid.UUID) ([]message.Message, error)
	ListUnreadRecent(ctx context.Context, userID uuid.UUID, limit int) ([]message.Message, error)
	MarkRead(ctx context.Context, invoker, messageID uuid.UUID) error
}

type MessageHandler struct {
	uc    MessageUsecase
	peers MatchUsecase
}

func NewMessageHandler(uc MessageUsecase, peers MatchUsecase) *MessageHandler {
	return &MessageHandler{uc: uc, peers: peers}
}

// RegisterRoutes mounts the static paths before "/:userId" so they are
// not captured by the parameter.
func (h *MessageHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/send", h.Send)
	r.Get("/recent/all", h.RecentUnread)
	r.Get("/connections/all", h.Connections)
	r.Put("/:messageId/read", h.MarkRead)
	r.Get("/:userId", h.Conversation)
}

func (h *MessageHandler) Send(c fiber.Ctx) error {
	me, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.SendMessageRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}
	receiverID, err := uuid.Parse(strings.TrimSpace(req.ReceiverID))
	if err != nil {
		return badRequest("Missing receiverId or content", err)
	}

	m, err := h.uc.Send(c.Context(), me.ID, receiverID, req.Content)
	if err != nil {
		return mapMessageUsecaseError(err)
	}
	return response.Created(c, "Message sent", dto.NewMessageResponse(m))
}

func (h *MessageHandler) Conversation(c fiber.Ctx) error {
	me, err := currentUser(c)
	if err != nil {
		return err
	}
	otherID, err := uuidParam(c, "userId", "User not found")
	if err != nil {
		return err
	}

	items, err := h.uc.ListBetween(c.Context(), me.ID, otherID)
	if err != nil {
		return mapMessageUsecaseError(err)
	}
	return response.OK(c, dto.NewMessageResponses(items))
}

func (h *MessageHandler) RecentUnread(c fiber.Ctx) error {
	me, err := currentUser(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListUnreadRecent(c.Context(), me.ID, ucmessage.DefaultRecentLimit)
	if err != nil {
		return mapMessageUsecaseError(err)
	}
	return response.OK(c, dto.NewMessageResponses(items))
}

func (h *MessageHandler) MarkRead(c fiber.Ctx) error {
	me, err := currentUser(c)
	if err != nil {
		return err
	}
	messageID, err := uuidParam(c, "messageId", "Message not found")
	if err != nil {
		return err
	}

	if err := h.uc.MarkRead(c.Context(), me.ID, messageID); err != nil {
		return mapMessageUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Message marked as read", nil)
}

func (h *MessageHandler) Connections(c fiber.Ctx) error {
	me, err := currentUser(c)
	if err != nil {
		return err
	}

	peers, err := h.peers.ComputeConnectedPeers(c.Context(), me)
	if err != nil {
		return internalError(err)
	}

	out := make([]dto.PeerResponse, 0, len(peers))
	for _, p := range peers {
		out = append(out, dto.PeerResponse{ID: p.ID, Name: p.Name, Email: p.Email})
	}
	return response.OK(c, out)
}

func mapMessageUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ucmessage.ErrInvalidInput):
		return badRequest("Missing receiverId or content", err)
	case errors.Is(err, ucmessage.ErrReceiverNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Receiver not found", nil, err)
	case errors.Is(err, ucmessage.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Message not found", nil, err)
	case errors.Is(err, ucmessage.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Unauthorized", nil, err)
	default:
		return internalError(err)
	}
}
