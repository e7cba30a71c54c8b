package model

import "time"

// FaucetClaim is the durable record of one successful disbursement.
// Records are append-only: created once a transaction is confirmed on-chain,
// never mutated, never deleted.
type FaucetClaim struct {
	ID            string
	WalletAddress string
	NetworkID     string
	Amount        string
	TxHash        string
	PassportScore string
	BlockNumber   uint64
	GasUsed       uint64
	IsSuccessful  bool
	ClaimedAt     time.Time
}

// Receipt is the on-chain proof a disbursement confirmed.
type Receipt struct {
	TxHash      string
	BlockNumber uint64
	GasUsed     uint64
}
