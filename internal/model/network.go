package model

// NetworkConfig describes one supported testnet. Entries are immutable for
// the process lifetime; SigningKeyRef points at a secret, never the key.
type NetworkConfig struct {
	ID             string
	ChainID        int64
	Name           string
	RPCURL         string
	ExplorerURL    string
	NativeCurrency string
	IconURL        string
	FaucetAmount   string
	IsActive       bool
	SigningKeyRef  string
}
