// Package registry holds the static catalog of supported testnets.
// The catalog is validated once at startup and read-only afterwards.
package registry

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"faucet/backend/internal/model"
)

type Registry struct {
	networks []model.NetworkConfig
	byID     map[string]model.NetworkConfig
	byChain  map[int64]model.NetworkConfig
}

// Load builds the registry from the embedded defaults, or from the JSON
// catalog at file when non-empty. It fails fast on an empty catalog,
// duplicate chain IDs, missing RPC URLs, or non-positive faucet amounts.
func Load(file string) (*Registry, error) {
	networks := defaultNetworks()
	if file != "" {
		loaded, err := readCatalog(file)
		if err != nil {
			return nil, err
		}
		networks = loaded
	}
	return New(networks)
}

func New(networks []model.NetworkConfig) (*Registry, error) {
	if len(networks) == 0 {
		return nil, fmt.Errorf("network catalog is empty")
	}

	byID := make(map[string]model.NetworkConfig, len(networks))
	byChain := make(map[int64]model.NetworkConfig, len(networks))
	for _, network := range networks {
		if network.ID == "" {
			return nil, fmt.Errorf("network with chain id %d has no id", network.ChainID)
		}
		if network.RPCURL == "" {
			return nil, fmt.Errorf("network %s has no rpc url", network.ID)
		}
		if _, dup := byID[network.ID]; dup {
			return nil, fmt.Errorf("duplicate network id %s", network.ID)
		}
		if _, dup := byChain[network.ChainID]; dup {
			return nil, fmt.Errorf("duplicate chain id %d", network.ChainID)
		}
		amount, err := decimal.NewFromString(network.FaucetAmount)
		if err != nil {
			return nil, fmt.Errorf("network %s: parse faucet amount %q: %w", network.ID, network.FaucetAmount, err)
		}
		if !amount.IsPositive() {
			return nil, fmt.Errorf("network %s: faucet amount %s is not positive", network.ID, network.FaucetAmount)
		}
		byID[network.ID] = network
		byChain[network.ChainID] = network
	}

	return &Registry{networks: networks, byID: byID, byChain: byChain}, nil
}

// ListActive returns the active networks in catalog order.
func (r *Registry) ListActive() []model.NetworkConfig {
	active := make([]model.NetworkConfig, 0, len(r.networks))
	for _, network := range r.networks {
		if network.IsActive {
			active = append(active, network)
		}
	}
	return active
}

func (r *Registry) GetByID(id string) (model.NetworkConfig, bool) {
	network, ok := r.byID[id]
	return network, ok
}

func (r *Registry) GetByChainID(chainID int64) (model.NetworkConfig, bool) {
	network, ok := r.byChain[chainID]
	return network, ok
}

// SigningKeyRef returns the opaque key-lookup reference for a chain.
func (r *Registry) SigningKeyRef(chainID int64) (string, bool) {
	network, ok := r.byChain[chainID]
	if !ok {
		return "", false
	}
	return network.SigningKeyRef, true
}

type catalogEntry struct {
	ID             string `json:"id"`
	ChainID        int64  `json:"chainId"`
	Name           string `json:"name"`
	RPCURL         string `json:"rpcUrl"`
	ExplorerURL    string `json:"explorerUrl"`
	NativeCurrency string `json:"nativeCurrency"`
	IconURL        string `json:"iconUrl"`
	FaucetAmount   string `json:"faucetAmount"`
	IsActive       bool   `json:"isActive"`
	SigningKeyRef  string `json:"signingKeyRef"`
}

func readCatalog(file string) ([]model.NetworkConfig, error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read network catalog: %w", err)
	}
	var entries []catalogEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse network catalog: %w", err)
	}
	networks := make([]model.NetworkConfig, 0, len(entries))
	for _, entry := range entries {
		networks = append(networks, model.NetworkConfig{
			ID:             entry.ID,
			ChainID:        entry.ChainID,
			Name:           entry.Name,
			RPCURL:         entry.RPCURL,
			ExplorerURL:    entry.ExplorerURL,
			NativeCurrency: entry.NativeCurrency,
			IconURL:        entry.IconURL,
			FaucetAmount:   entry.FaucetAmount,
			IsActive:       entry.IsActive,
			SigningKeyRef:  entry.SigningKeyRef,
		})
	}
	return networks, nil
}

func defaultNetworks() []model.NetworkConfig {
	return []model.NetworkConfig{
		{
			ID:             "base-sepolia",
			ChainID:        84532,
			Name:           "Base Sepolia",
			RPCURL:         "https://sepolia.base.org",
			ExplorerURL:    "https://sepolia.basescan.org",
			NativeCurrency: "ETH",
			IconURL:        "/icons/base.svg",
			FaucetAmount:   "0.001",
			IsActive:       true,
			SigningKeyRef:  "BASE_SEPOLIA",
		},
		{
			ID:             "ethereum-sepolia",
			ChainID:        11155111,
			Name:           "Ethereum Sepolia",
			RPCURL:         "https://ethereum-sepolia-rpc.publicnode.com",
			ExplorerURL:    "https://sepolia.etherscan.io",
			NativeCurrency: "ETH",
			IconURL:        "/icons/ethereum.svg",
			FaucetAmount:   "0.001",
			IsActive:       true,
			SigningKeyRef:  "ETHEREUM_SEPOLIA",
		},
		{
			ID:             "arbitrum-sepolia",
			ChainID:        421614,
			Name:           "Arbitrum Sepolia",
			RPCURL:         "https://sepolia-rollup.arbitrum.io/rpc",
			ExplorerURL:    "https://sepolia.arbiscan.io",
			NativeCurrency: "ETH",
			IconURL:        "/icons/arbitrum.svg",
			FaucetAmount:   "0.001",
			IsActive:       true,
			SigningKeyRef:  "ARBITRUM_SEPOLIA",
		},
		{
			ID:             "optimism-sepolia",
			ChainID:        11155420,
			Name:           "Optimism Sepolia",
			RPCURL:         "https://sepolia.optimism.io",
			ExplorerURL:    "https://sepolia-optimism.etherscan.io",
			NativeCurrency: "ETH",
			IconURL:        "/icons/optimism.svg",
			FaucetAmount:   "0.001",
			IsActive:       true,
			SigningKeyRef:  "OPTIMISM_SEPOLIA",
		},
	}
}
