package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	"faucet/backend/internal/db"
	"faucet/backend/internal/model"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// NewTestDB creates an in-memory sqlite database with all migrations applied.
// Shared-cache mode keeps the database alive across pool connections; the
// per-test name avoids collisions between parallel tests.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbName := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name(), time.Now().UnixNano())
	database, err := sql.Open("sqlite", dbName)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		database.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		database.Close()
	})

	return database
}

// SeedClaim inserts a claim row and returns its ID.
func SeedClaim(t *testing.T, db *sql.DB, claim model.FaucetClaim) string {
	t.Helper()

	if claim.ID == "" {
		claim.ID = uuid.NewString()
	}
	if claim.ClaimedAt.IsZero() {
		claim.ClaimedAt = time.Now().UTC()
	}
	if claim.Amount == "" {
		claim.Amount = "0.001"
	}

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO faucet_claims (id, wallet_address, network_id, amount, tx_hash, passport_score, block_number, gas_used, is_successful, claimed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, 1, ?)`,
		claim.ID, strings.ToLower(claim.WalletAddress), claim.NetworkID, claim.Amount, claim.TxHash,
		claim.PassportScore, claim.BlockNumber, claim.GasUsed,
		claim.ClaimedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		t.Fatalf("failed to seed claim: %v", err)
	}

	return claim.ID
}
