//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"faucet/backend/internal/model"
)

// ClaimRepository is the append-only ledger of successful disbursements.
type ClaimRepository interface {
	Create(ctx context.Context, claim model.FaucetClaim) error
	LastByAddress(ctx context.Context, walletAddress string) (*model.FaucetClaim, error)
	LastByAddressAndNetwork(ctx context.Context, walletAddress string, networkID string) (*model.FaucetClaim, error)
	ListByAddress(ctx context.Context, walletAddress string) ([]model.FaucetClaim, error)
}

type claimRepository struct {
	db *sql.DB
}

// NewClaimRepository creates a sqlite-backed claim ledger.
func NewClaimRepository(db *sql.DB) ClaimRepository {
	return &claimRepository{db: db}
}

const claimColumns = `id, wallet_address, network_id, amount, tx_hash, passport_score, block_number, gas_used, is_successful, claimed_at`

// Create appends a claim record. Wallet addresses are stored lower-cased.
func (r *claimRepository) Create(ctx context.Context, claim model.FaucetClaim) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO faucet_claims (`+claimColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		claim.ID,
		strings.ToLower(claim.WalletAddress),
		claim.NetworkID,
		claim.Amount,
		claim.TxHash,
		claim.PassportScore,
		claim.BlockNumber,
		claim.GasUsed,
		boolToInt(claim.IsSuccessful),
		claim.ClaimedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert claim: %w", err)
	}
	return nil
}

// LastByAddress returns the most recent claim for a wallet on any network,
// or nil when the wallet has never claimed.
func (r *claimRepository) LastByAddress(ctx context.Context, walletAddress string) (*model.FaucetClaim, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+claimColumns+` FROM faucet_claims
		WHERE wallet_address = ?
		ORDER BY claimed_at DESC LIMIT 1
	`, strings.ToLower(walletAddress))
	return scanClaim(row)
}

// LastByAddressAndNetwork returns the most recent claim for a (wallet, network)
// pair, or nil when none exists.
func (r *claimRepository) LastByAddressAndNetwork(ctx context.Context, walletAddress string, networkID string) (*model.FaucetClaim, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+claimColumns+` FROM faucet_claims
		WHERE wallet_address = ? AND network_id = ?
		ORDER BY claimed_at DESC LIMIT 1
	`, strings.ToLower(walletAddress), networkID)
	return scanClaim(row)
}

// ListByAddress returns all claims for a wallet, newest first.
func (r *claimRepository) ListByAddress(ctx context.Context, walletAddress string) ([]model.FaucetClaim, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+claimColumns+` FROM faucet_claims
		WHERE wallet_address = ?
		ORDER BY claimed_at DESC
	`, strings.ToLower(walletAddress))
	if err != nil {
		return nil, fmt.Errorf("query claims: %w", err)
	}
	defer rows.Close()

	var claims []model.FaucetClaim
	for rows.Next() {
		claim, err := scanClaimRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		claims = append(claims, claim)
	}
	return claims, rows.Err()
}

func scanClaim(row *sql.Row) (*model.FaucetClaim, error) {
	claim, err := scanClaimRow(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &claim, nil
}

func scanClaimRow(scan func(dest ...any) error) (model.FaucetClaim, error) {
	var (
		claim         model.FaucetClaim
		passportScore sql.NullString
		successful    int
		claimedAt     string
	)
	if err := scan(
		&claim.ID,
		&claim.WalletAddress,
		&claim.NetworkID,
		&claim.Amount,
		&claim.TxHash,
		&passportScore,
		&claim.BlockNumber,
		&claim.GasUsed,
		&successful,
		&claimedAt,
	); err != nil {
		return model.FaucetClaim{}, err
	}
	claim.PassportScore = passportScore.String
	claim.IsSuccessful = successful != 0
	claim.ClaimedAt, _ = time.Parse(time.RFC3339Nano, claimedAt)
	return claim, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
