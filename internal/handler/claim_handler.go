package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"faucet/backend/internal/model"
	"faucet/backend/internal/service"
)

type ClaimHandler struct {
	claims service.ClaimService
}

// passportScore in the body is accepted for compatibility with older
// clients but never trusted: the score is always re-checked server-side.
type claimRequest struct {
	WalletAddress string  `json:"walletAddress"`
	NetworkID     string  `json:"networkId"`
	PassportScore float64 `json:"passportScore"`
}

type claimResponse struct {
	Success     bool   `json:"success"`
	TxHash      string `json:"txHash"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	BlockNumber uint64 `json:"blockNumber"`
	GasUsed     uint64 `json:"gasUsed"`
	Network     string `json:"network"`
	ExplorerURL string `json:"explorerUrl"`
}

type claimHistoryResponse struct {
	ID            string `json:"id"`
	NetworkID     string `json:"networkId"`
	Amount        string `json:"amount"`
	TxHash        string `json:"txHash"`
	PassportScore string `json:"passportScore,omitempty"`
	BlockNumber   uint64 `json:"blockNumber"`
	GasUsed       uint64 `json:"gasUsed"`
	ClaimedAt     string `json:"claimedAt"`
}

func NewClaimHandler(claims service.ClaimService) *ClaimHandler {
	return &ClaimHandler{claims: claims}
}

func (h *ClaimHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/claim", h.Claim)
	g.GET("/claims/:address", h.History)
}

func (h *ClaimHandler) Claim(c echo.Context) error {
	var req claimRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "Invalid request body")
	}
	networkID := strings.TrimSpace(req.NetworkID)
	if networkID == "" {
		return writeError(c, http.StatusBadRequest, "Unknown network")
	}

	result, err := h.claims.Claim(c.Request().Context(), strings.TrimSpace(req.WalletAddress), networkID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, claimResponse{
		Success:     true,
		TxHash:      result.TxHash,
		Amount:      result.Amount,
		Currency:    result.Currency,
		BlockNumber: result.BlockNumber,
		GasUsed:     result.GasUsed,
		Network:     result.Network.Name,
		ExplorerURL: result.ExplorerTxURL(),
	})
}

func (h *ClaimHandler) History(c echo.Context) error {
	claims, err := h.claims.History(c.Request().Context(), addressParam(c, "address"))
	if err != nil {
		return writeServiceError(c, err)
	}
	response := make([]claimHistoryResponse, 0, len(claims))
	for _, claim := range claims {
		response = append(response, toClaimHistoryResponse(claim))
	}
	return c.JSON(http.StatusOK, response)
}

func toClaimHistoryResponse(claim model.FaucetClaim) claimHistoryResponse {
	return claimHistoryResponse{
		ID:            claim.ID,
		NetworkID:     claim.NetworkID,
		Amount:        claim.Amount,
		TxHash:        claim.TxHash,
		PassportScore: claim.PassportScore,
		BlockNumber:   claim.BlockNumber,
		GasUsed:       claim.GasUsed,
		ClaimedAt:     claim.ClaimedAt.UTC().Format(time.RFC3339),
	}
}
