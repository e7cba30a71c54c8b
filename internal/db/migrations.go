package db

import (
	"database/sql"
	"fmt"
)

// Base schema matches the first deployed version of the claims table
// (single-network faucet); later columns arrive via incremental migrations.
const baseSchema = `
CREATE TABLE IF NOT EXISTS faucet_claims (
  id TEXT PRIMARY KEY,
  wallet_address TEXT NOT NULL,
  amount TEXT NOT NULL,
  tx_hash TEXT NOT NULL,
  passport_score TEXT,
  is_successful INTEGER NOT NULL DEFAULT 1,
  claimed_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_faucet_claims_wallet ON faucet_claims(wallet_address);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: per-network claims.
	exists, err := hasColumn(db, "faucet_claims", "network_id")
	if err != nil {
		return fmt.Errorf("check network_id column: %w", err)
	}
	if !exists {
		if _, err := db.Exec(`ALTER TABLE faucet_claims ADD COLUMN network_id TEXT NOT NULL DEFAULT 'base-sepolia'`); err != nil {
			return fmt.Errorf("add network_id column: %w", err)
		}
	}

	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_faucet_claims_wallet_network ON faucet_claims(wallet_address, network_id)`); err != nil {
		return fmt.Errorf("create idx_faucet_claims_wallet_network: %w", err)
	}

	// Migration 2: transaction proof columns.
	exists, err = hasColumn(db, "faucet_claims", "block_number")
	if err != nil {
		return fmt.Errorf("check block_number column: %w", err)
	}
	if !exists {
		if _, err := db.Exec(`ALTER TABLE faucet_claims ADD COLUMN block_number INTEGER NOT NULL DEFAULT 0`); err != nil {
			return fmt.Errorf("add block_number column: %w", err)
		}
	}

	exists, err = hasColumn(db, "faucet_claims", "gas_used")
	if err != nil {
		return fmt.Errorf("check gas_used column: %w", err)
	}
	if !exists {
		if _, err := db.Exec(`ALTER TABLE faucet_claims ADD COLUMN gas_used INTEGER NOT NULL DEFAULT 0`); err != nil {
			return fmt.Errorf("add gas_used column: %w", err)
		}
	}

	// Migration 3: ordering index for last-claim lookups.
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_faucet_claims_claimed_at ON faucet_claims(claimed_at)`); err != nil {
		return fmt.Errorf("create idx_faucet_claims_claimed_at: %w", err)
	}

	return nil
}

func hasColumn(db *sql.DB, table string, column string) (bool, error) {
	var count int
	if err := db.QueryRow(
		fmt.Sprintf(`SELECT COUNT(*) FROM pragma_table_info('%s') WHERE name = ?`, table),
		column,
	).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
