package db_test

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"faucet/backend/internal/db"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newMemoryDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	database, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestMigrate(t *testing.T) {
	database := newMemoryDB(t)
	require.NoError(t, db.Migrate(database))

	columns := map[string]bool{}
	rows, err := database.Query(`SELECT name FROM pragma_table_info('faucet_claims')`)
	require.NoError(t, err)
	defer rows.Close()
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		columns[name] = true
	}
	require.NoError(t, rows.Err())

	for _, want := range []string{
		"id", "wallet_address", "network_id", "amount", "tx_hash",
		"passport_score", "block_number", "gas_used", "is_successful", "claimed_at",
	} {
		require.True(t, columns[want], "missing column %s", want)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	database := newMemoryDB(t)
	require.NoError(t, db.Migrate(database))
	require.NoError(t, db.Migrate(database))
}

func TestMigrate_UpgradesLegacySchema(t *testing.T) {
	database := newMemoryDB(t)

	// Single-network era schema without network_id or proof columns.
	_, err := database.Exec(`
		CREATE TABLE faucet_claims (
			id TEXT PRIMARY KEY,
			wallet_address TEXT NOT NULL,
			amount TEXT NOT NULL,
			tx_hash TEXT NOT NULL,
			passport_score TEXT,
			is_successful INTEGER NOT NULL DEFAULT 1,
			claimed_at TEXT NOT NULL
		)
	`)
	require.NoError(t, err)

	_, err = database.Exec(
		`INSERT INTO faucet_claims (id, wallet_address, amount, tx_hash, claimed_at) VALUES (?, ?, ?, ?, ?)`,
		"legacy-1", "0xabc", "0.001", "0xdead", time.Now().UTC().Format(time.RFC3339Nano),
	)
	require.NoError(t, err)

	require.NoError(t, db.Migrate(database))

	var networkID string
	err = database.QueryRow(`SELECT network_id FROM faucet_claims WHERE id = 'legacy-1'`).Scan(&networkID)
	require.NoError(t, err)
	require.Equal(t, "base-sepolia", networkID)
}
