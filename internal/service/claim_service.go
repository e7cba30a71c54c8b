//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"faucet/backend/internal/chain"
	"faucet/backend/internal/logger"
	"faucet/backend/internal/model"
	"faucet/backend/internal/repository"
)

// ClaimService runs the full claim pipeline: validate the request, check the
// wallet's reputation score, reserve the rate-limit window, disburse
// on-chain, record the claim and commit the window.
type ClaimService interface {
	Claim(ctx context.Context, walletAddress string, networkID string) (ClaimResult, error)
	History(ctx context.Context, walletAddress string) ([]model.FaucetClaim, error)
}

// ClaimResult is the outcome of a confirmed disbursement. Recorded is false
// when the transfer confirmed but the ledger write failed and was queued for
// reconciliation.
type ClaimResult struct {
	TxHash        string
	Amount        string
	Currency      string
	BlockNumber   uint64
	GasUsed       uint64
	Network       model.NetworkConfig
	PassportScore float64
	Recorded      bool
}

// ExplorerTxURL returns the block-explorer link for the transaction.
func (r ClaimResult) ExplorerTxURL() string {
	if r.Network.ExplorerURL == "" {
		return ""
	}
	return r.Network.ExplorerURL + "/tx/" + r.TxHash
}

type claimService struct {
	networks  NetworkRegistry
	scores    ScoreService
	rates     RateLimitService
	disburser Disburser
	claims    repository.ClaimRepository
	journal   *ReconcileJournal
	minScore  float64
	now       func() time.Time
}

func NewClaimService(
	networks NetworkRegistry,
	scores ScoreService,
	rates RateLimitService,
	disburser Disburser,
	claims repository.ClaimRepository,
	journal *ReconcileJournal,
	minScore float64,
) ClaimService {
	return &claimService{
		networks:  networks,
		scores:    scores,
		rates:     rates,
		disburser: disburser,
		claims:    claims,
		journal:   journal,
		minScore:  minScore,
		now:       time.Now,
	}
}

func (s *claimService) Claim(ctx context.Context, walletAddress string, networkID string) (ClaimResult, error) {
	if !common.IsHexAddress(walletAddress) {
		return ClaimResult{}, ErrInvalidAddress
	}

	network, ok := s.networks.GetByID(networkID)
	if !ok {
		return ClaimResult{}, ErrUnknownNetwork
	}
	if !network.IsActive {
		return ClaimResult{}, &NetworkDisabledError{Network: network.Name}
	}

	// The score comes from the oracle on every claim. Scores supplied by
	// the caller are never trusted.
	score, err := s.scores.Check(ctx, walletAddress)
	if err != nil {
		return ClaimResult{}, err
	}
	if score.Score < s.minScore {
		return ClaimResult{}, &InsufficientScoreError{Score: score.Score, Minimum: s.minScore}
	}

	now := s.now().UTC()
	if err := s.rates.CheckAndReserve(ctx, walletAddress, network, now); err != nil {
		return ClaimResult{}, err
	}

	receipt, err := s.disburser.Send(ctx, walletAddress, network)
	if err != nil {
		// No transaction landed, so the wallet keeps its turn.
		if releaseErr := s.rates.Release(ctx, walletAddress, network.ID); releaseErr != nil {
			logger.Error("failed to release rate-limit reservation",
				"wallet", walletAddress, "network", network.ID, "error", releaseErr)
		}
		return ClaimResult{}, mapDisburseError(err)
	}

	claimedAt := s.now().UTC()
	claim := model.FaucetClaim{
		ID:            uuid.NewString(),
		WalletAddress: walletAddress,
		NetworkID:     network.ID,
		Amount:        network.FaucetAmount,
		TxHash:        receipt.TxHash,
		PassportScore: strconv.FormatFloat(score.Score, 'f', -1, 64),
		BlockNumber:   receipt.BlockNumber,
		GasUsed:       receipt.GasUsed,
		IsSuccessful:  true,
		ClaimedAt:     claimedAt,
	}

	result := ClaimResult{
		TxHash:        receipt.TxHash,
		Amount:        network.FaucetAmount,
		Currency:      network.NativeCurrency,
		BlockNumber:   receipt.BlockNumber,
		GasUsed:       receipt.GasUsed,
		Network:       network,
		PassportScore: score.Score,
		Recorded:      true,
	}

	// The transfer is confirmed on-chain at this point. A ledger failure
	// must not turn a disbursed claim into a client-visible error.
	if err := s.claims.Create(ctx, claim); err != nil {
		logger.Error("claim confirmed but ledger write failed",
			"claimId", claim.ID, "txHash", claim.TxHash, "error", err)
		s.journal.Enqueue(claim)
		result.Recorded = false
	}

	if err := s.rates.Commit(ctx, walletAddress, network.ID, claimedAt); err != nil {
		// The reservation still holds the window; the ledger backstop
		// covers the store once it expires.
		logger.Warn("failed to commit rate-limit window",
			"wallet", walletAddress, "network", network.ID, "error", err)
	}

	logger.Info("claim disbursed",
		"wallet", walletAddress, "network", network.ID,
		"txHash", receipt.TxHash, "amount", network.FaucetAmount, "score", score.Score)
	return result, nil
}

func (s *claimService) History(ctx context.Context, walletAddress string) ([]model.FaucetClaim, error) {
	if !common.IsHexAddress(walletAddress) {
		return nil, ErrInvalidAddress
	}
	claims, err := s.claims.ListByAddress(ctx, walletAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: list claims: %v", ErrStorageUnavailable, err)
	}
	return claims, nil
}

func mapDisburseError(err error) error {
	switch {
	case errors.Is(err, chain.ErrInsufficientFunds):
		return fmt.Errorf("%w: %v", ErrFaucetEmpty, err)
	case errors.Is(err, chain.ErrSigningKeyMissing):
		return fmt.Errorf("%w: %v", ErrFaucetNotConfigured, err)
	case errors.Is(err, chain.ErrConfirmationTimeout):
		return fmt.Errorf("%w: %v", ErrConfirmTimeout, err)
	case errors.Is(err, chain.ErrNetworkUnreachable):
		return fmt.Errorf("%w: %v", ErrChainUnreachable, err)
	default:
		return fmt.Errorf("%w: %v", ErrChainUnreachable, err)
	}
}
