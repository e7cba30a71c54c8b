package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"faucet/backend/internal/service"
)

type RateLimitHandler struct {
	rates service.RateLimitService
}

type rateLimitStatusResponse struct {
	IsRateLimited bool   `json:"isRateLimited"`
	NextClaimTime *int64 `json:"nextClaimTime"`
	RemainingTime int64  `json:"remainingTime"`
}

func NewRateLimitHandler(rates service.RateLimitService) *RateLimitHandler {
	return &RateLimitHandler{rates: rates}
}

func (h *RateLimitHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/rate-limit/:address", h.Get)
}

func (h *RateLimitHandler) Get(c echo.Context) error {
	networkID := strings.TrimSpace(c.QueryParam("networkId"))
	status, err := h.rates.Status(c.Request().Context(), addressParam(c, "address"), networkID)
	if err != nil {
		return writeServiceError(c, err)
	}

	response := rateLimitStatusResponse{
		IsRateLimited: !status.CanClaim,
		RemainingTime: status.Remaining.Milliseconds(),
	}
	if !status.CanClaim {
		response.NextClaimTime = epochMillisPtr(status.NextClaimAt)
	}
	return c.JSON(http.StatusOK, response)
}
