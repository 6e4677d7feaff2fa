package handler

import (
	"log/slog"
	"net/http"

	"flatradar/internal/delivery/http/response"
	"flatradar/internal/domain/entity"
	"flatradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ScoreHandlerParams holds dependencies for ScoreHandler, injected by Fx.
type ScoreHandlerParams struct {
	fx.In

	ScoringUC usecase.ScoringUsecase
	Logger    *slog.Logger
}

// ScoreHandler exposes the scoring engine for operator debugging: a listing
// and a criteria block in, a full score result with audit trail out.
type ScoreHandler struct {
	scoringUC usecase.ScoringUsecase
	logger    *slog.Logger
}

// NewScoreHandler is the constructor for ScoreHandler
func NewScoreHandler(params ScoreHandlerParams) *ScoreHandler {
	return &ScoreHandler{
		scoringUC: params.ScoringUC,
		logger:    params.Logger,
	}
}

// ScoreRequest represents the request body for a debug scoring run
type ScoreRequest struct {
	Listing  *entity.Listing      `json:"listing" validate:"required"`
	Criteria *entity.UserCriteria `json:"criteria" validate:"required"`
}

// Score evaluates one listing against one criteria block without touching
// persistence or dispatch.
func (h *ScoreHandler) Score(c echo.Context) error {
	var req ScoreRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid scoring input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result := h.scoringUC.Score(req.Listing, req.Criteria)

	return response.Success(c, http.StatusOK, result, "Listing scored")
}
