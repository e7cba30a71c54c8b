package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"faucet/backend/internal/service"
)

type ScoreHandler struct {
	scores service.ScoreService
}

type scoreResponse struct {
	Address            string  `json:"address"`
	Score              float64 `json:"score"`
	PassingScore       bool    `json:"passingScore"`
	Threshold          string  `json:"threshold,omitempty"`
	LastScoreTimestamp string  `json:"lastScoreTimestamp,omitempty"`
}

func NewScoreHandler(scores service.ScoreService) *ScoreHandler {
	return &ScoreHandler{scores: scores}
}

func (h *ScoreHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/score/:address", h.Get)
}

func (h *ScoreHandler) Get(c echo.Context) error {
	score, err := h.scores.Check(c.Request().Context(), addressParam(c, "address"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, scoreResponse{
		Address:            score.Address,
		Score:              score.Score,
		PassingScore:       score.PassingScore,
		Threshold:          score.Threshold,
		LastScoreTimestamp: score.LastScoreTimestamp,
	})
}
