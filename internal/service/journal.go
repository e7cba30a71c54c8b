package service

import (
	"context"
	"sync"

	"faucet/backend/internal/logger"
	"faucet/backend/internal/model"
	"faucet/backend/internal/repository"
)

// ReconcileJournal holds confirmed disbursements whose ledger write failed.
// The money moved on-chain, so the claim must not be lost; a background pass
// retries the append until it sticks.
type ReconcileJournal struct {
	mu      sync.Mutex
	pending []model.FaucetClaim
}

func NewReconcileJournal() *ReconcileJournal {
	return &ReconcileJournal{}
}

func (j *ReconcileJournal) Enqueue(claim model.FaucetClaim) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.pending = append(j.pending, claim)
	logger.Warn("claim queued for reconciliation",
		"claimId", claim.ID, "txHash", claim.TxHash, "pending", len(j.pending))
}

func (j *ReconcileJournal) Pending() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.pending)
}

// Flush retries every pending ledger append. Claims that still fail stay
// queued for the next pass; the error of the last failure is returned.
func (j *ReconcileJournal) Flush(ctx context.Context, claims repository.ClaimRepository) error {
	j.mu.Lock()
	batch := j.pending
	j.pending = nil
	j.mu.Unlock()

	var lastErr error
	var retry []model.FaucetClaim
	for _, claim := range batch {
		if err := claims.Create(ctx, claim); err != nil {
			lastErr = err
			retry = append(retry, claim)
			continue
		}
		logger.Info("reconciled claim recorded", "claimId", claim.ID, "txHash", claim.TxHash)
	}

	if len(retry) > 0 {
		j.mu.Lock()
		j.pending = append(retry, j.pending...)
		j.mu.Unlock()
	}
	return lastErr
}
