package handler

import (
	"context"

	"skill-swap/internal/delivery/http/dto"
	"skill-swap/internal/domain/user"
	"skill-swap/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type MatchUsecase interface {
	ComputeMatchCandidates(ctx context.Context, u user.User) ([]user.User, error)
	ComputeConnectedPeers(ctx context.Context, u user.User) ([]user.User, error)
}

type MatchHandler struct {
	uc MatchUsecase
}

func NewMatchHandler(uc MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.ListMatches)
}

func (h *MatchHandler) ListMatches(c fiber.Ctx) error {
	me, err := currentUser(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ComputeMatchCandidates(c.Context(), me)
	if err != nil {
		return internalError(err)
	}
	return response.OK(c, dto.NewUserResponses(items))
}
