package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"faucet/backend/internal/logger"
	"faucet/backend/internal/service"
)

type errorResponse struct {
	Message string `json:"message"`
}

type rateLimitedResponse struct {
	Message       string `json:"message"`
	NextClaimTime int64  `json:"nextClaimTime"`
	RemainingTime int64  `json:"remainingTime"`
}

func writeError(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Message: message})
}

// writeServiceError maps service errors to HTTP responses. Disbursement
// infrastructure failures are all 503: the user did nothing wrong and may
// retry, which re-runs every upstream check.
func writeServiceError(c echo.Context, err error) error {
	var (
		scoreErr *service.InsufficientScoreError
		netErr   *service.NetworkDisabledError
		rateErr  *service.RateLimitedError
	)
	switch {
	case errors.Is(err, service.ErrInvalidAddress):
		return writeError(c, http.StatusBadRequest, "Invalid wallet address")
	case errors.Is(err, service.ErrUnknownNetwork):
		return writeError(c, http.StatusBadRequest, "Unknown network")
	case errors.As(err, &netErr):
		// A disabled network is a client-side selection problem, not a
		// permission one.
		return writeError(c, http.StatusBadRequest, fmt.Sprintf("%s faucet is currently disabled", netErr.Network))
	case errors.As(err, &scoreErr):
		return writeError(c, http.StatusForbidden,
			fmt.Sprintf("Insufficient Gitcoin Passport score. Minimum required: %g", scoreErr.Minimum))
	case errors.Is(err, service.ErrScoreNotFound):
		return writeError(c, http.StatusNotFound, "No Passport found for this address")
	case errors.As(err, &rateErr):
		return c.JSON(http.StatusTooManyRequests, rateLimitedResponse{
			Message:       fmt.Sprintf("Rate limited. You can claim again on %s", rateErr.Network),
			NextClaimTime: rateErr.NextClaimAt.UnixMilli(),
			RemainingTime: rateErr.Remaining.Milliseconds(),
		})
	case errors.Is(err, service.ErrOracleUnauthorized):
		return writeError(c, http.StatusInternalServerError, "Score service is misconfigured")
	case errors.Is(err, service.ErrOracleUnavailable):
		return writeError(c, http.StatusServiceUnavailable, "Score service is currently unavailable")
	case errors.Is(err, service.ErrFaucetEmpty):
		return writeError(c, http.StatusServiceUnavailable, "Faucet wallet has insufficient funds")
	case errors.Is(err, service.ErrFaucetNotConfigured):
		return writeError(c, http.StatusServiceUnavailable, "Faucet is not configured for this network")
	case errors.Is(err, service.ErrConfirmTimeout):
		return writeError(c, http.StatusServiceUnavailable, "Transaction was submitted but not confirmed in time")
	case errors.Is(err, service.ErrChainUnreachable):
		return writeError(c, http.StatusServiceUnavailable, "Network RPC is currently unavailable")
	case errors.Is(err, service.ErrStorageUnavailable):
		return writeError(c, http.StatusInternalServerError, "internal error")
	default:
		logger.Error("unhandled service error", "error", err)
		return writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func epochMillisPtr(t time.Time) *int64 {
	if t.IsZero() {
		return nil
	}
	millis := t.UnixMilli()
	return &millis
}
