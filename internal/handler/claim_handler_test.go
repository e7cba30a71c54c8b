package handler_test

import (
	"net/http"
	"testing"
	"time"

	"faucet/backend/internal/handler"
	"faucet/backend/internal/model"
	"faucet/backend/internal/service"
	"faucet/backend/internal/service/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClaimHandler_Claim(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	claims := mock.NewMockClaimService(ctrl)
	claims.EXPECT().Claim(gomock.Any(), testWallet, "base-sepolia").Return(service.ClaimResult{
		TxHash:      "0xdeadbeef",
		Amount:      "0.001",
		Currency:    "ETH",
		BlockNumber: 12345,
		GasUsed:     21000,
		Network: model.NetworkConfig{
			ID:          "base-sepolia",
			Name:        "Base Sepolia",
			ExplorerURL: "https://sepolia.basescan.org",
		},
		Recorded: true,
	}, nil)

	e := newTestEcho()
	req := newJSONRequest(http.MethodPost, "/api/claim", map[string]any{
		"walletAddress": testWallet,
		"networkId":     "base-sepolia",
		"passportScore": 12.0,
	})
	c, rec := newTestContext(e, req)

	require.NoError(t, handler.NewClaimHandler(claims).Claim(c))

	var resp handler.ClaimResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.True(t, resp.Success)
	require.Equal(t, "0xdeadbeef", resp.TxHash)
	require.Equal(t, "0.001", resp.Amount)
	require.Equal(t, "ETH", resp.Currency)
	require.Equal(t, uint64(12345), resp.BlockNumber)
	require.Equal(t, "Base Sepolia", resp.Network)
	require.Equal(t, "https://sepolia.basescan.org/tx/0xdeadbeef", resp.ExplorerURL)
}

func TestClaimHandler_Claim_BadBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	claims := mock.NewMockClaimService(ctrl)

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequestRaw(http.MethodPost, "/api/claim", "{not json"))

	require.NoError(t, handler.NewClaimHandler(claims).Claim(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClaimHandler_Claim_MissingNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	claims := mock.NewMockClaimService(ctrl)

	e := newTestEcho()
	req := newJSONRequest(http.MethodPost, "/api/claim", map[string]any{"walletAddress": testWallet})
	c, rec := newTestContext(e, req)

	require.NoError(t, handler.NewClaimHandler(claims).Claim(c))

	var resp map[string]string
	assertJSONResponse(t, rec, http.StatusBadRequest, &resp)
	require.Equal(t, "Unknown network", resp["message"])
}

func TestClaimHandler_Claim_RateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	claims := mock.NewMockClaimService(ctrl)
	claims.EXPECT().Claim(gomock.Any(), testWallet, "base-sepolia").
		Return(service.ClaimResult{}, &service.RateLimitedError{
			Network:     "Base Sepolia",
			NextClaimAt: time.Now().Add(time.Hour),
			Remaining:   time.Hour,
		})

	e := newTestEcho()
	req := newJSONRequest(http.MethodPost, "/api/claim", map[string]any{
		"walletAddress": testWallet,
		"networkId":     "base-sepolia",
	})
	c, rec := newTestContext(e, req)

	require.NoError(t, handler.NewClaimHandler(claims).Claim(c))

	var resp handler.RateLimitedResponse
	assertJSONResponse(t, rec, http.StatusTooManyRequests, &resp)
	require.Greater(t, resp.RemainingTime, int64(0))
}

func TestClaimHandler_Claim_InsufficientScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	claims := mock.NewMockClaimService(ctrl)
	claims.EXPECT().Claim(gomock.Any(), testWallet, "base-sepolia").
		Return(service.ClaimResult{}, &service.InsufficientScoreError{Score: 3, Minimum: 10})

	e := newTestEcho()
	req := newJSONRequest(http.MethodPost, "/api/claim", map[string]any{
		"walletAddress": testWallet,
		"networkId":     "base-sepolia",
	})
	c, rec := newTestContext(e, req)

	require.NoError(t, handler.NewClaimHandler(claims).Claim(c))

	var resp map[string]string
	assertJSONResponse(t, rec, http.StatusForbidden, &resp)
	require.Equal(t, "Insufficient Gitcoin Passport score. Minimum required: 10", resp["message"])
}

func TestClaimHandler_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	claimedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	claims := mock.NewMockClaimService(ctrl)
	claims.EXPECT().History(gomock.Any(), testWallet).Return([]model.FaucetClaim{
		{
			ID:            "claim-1",
			WalletAddress: testWallet,
			NetworkID:     "base-sepolia",
			Amount:        "0.001",
			TxHash:        "0x1",
			PassportScore: "15",
			BlockNumber:   7,
			GasUsed:       21000,
			IsSuccessful:  true,
			ClaimedAt:     claimedAt,
		},
	}, nil)

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodGet, "/api/claims/"+testWallet, nil))
	setPathParams(c, map[string]string{"address": testWallet})

	require.NoError(t, handler.NewClaimHandler(claims).History(c))

	var resp []handler.ClaimHistoryResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Len(t, resp, 1)
	require.Equal(t, "claim-1", resp[0].ID)
	require.Equal(t, "2025-06-01T12:00:00Z", resp[0].ClaimedAt)
}
