// Package chain submits faucet disbursements to EVM testnets.
package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"faucet/backend/internal/logger"
	"faucet/backend/internal/model"
)

var (
	ErrInsufficientFunds   = errors.New("faucet wallet has insufficient funds")
	ErrNetworkUnreachable  = errors.New("network rpc unreachable")
	ErrSigningKeyMissing   = errors.New("signing key missing")
	ErrConfirmationTimeout = errors.New("transaction confirmation timed out")
)

const transferGasLimit = 21000

// EVMDisburser signs and submits native-currency transfers.
//
// Submission is serialized per chain: the faucet key is a single
// nonce-bearing identity on each network, so two in-flight transactions on
// the same chain must be ordered. Waiting for the receipt happens outside
// the lock.
type EVMDisburser struct {
	keys           KeyResolver
	confirmTimeout time.Duration
	pollInterval   time.Duration

	mu       sync.Mutex
	clients  map[string]*ethclient.Client
	submitMu map[int64]*sync.Mutex
}

func NewEVMDisburser(keys KeyResolver, confirmTimeout time.Duration) *EVMDisburser {
	return &EVMDisburser{
		keys:           keys,
		confirmTimeout: confirmTimeout,
		pollInterval:   2 * time.Second,
		clients:        make(map[string]*ethclient.Client),
		submitMu:       make(map[int64]*sync.Mutex),
	}
}

// Send transfers exactly network.FaucetAmount to the recipient and blocks
// until the transaction is confirmed. At most one transaction is ever
// submitted per invocation; a confirmation timeout is surfaced, never
// retried here, because the transaction may still land.
func (d *EVMDisburser) Send(ctx context.Context, to string, network model.NetworkConfig) (model.Receipt, error) {
	key, err := d.keys.Resolve(network.SigningKeyRef)
	if err != nil {
		return model.Receipt{}, err
	}

	amount, err := ParseEther(network.FaucetAmount)
	if err != nil {
		return model.Receipt{}, fmt.Errorf("network %s: %w", network.ID, err)
	}

	client, err := d.client(ctx, network)
	if err != nil {
		return model.Receipt{}, err
	}

	signed, err := d.submit(ctx, client, key, common.HexToAddress(to), amount, network)
	if err != nil {
		return model.Receipt{}, err
	}

	receipt, err := d.waitConfirmed(ctx, client, signed.Hash())
	if err != nil {
		return model.Receipt{}, err
	}

	return model.Receipt{
		TxHash:      signed.Hash().Hex(),
		BlockNumber: receipt.BlockNumber.Uint64(),
		GasUsed:     receipt.GasUsed,
	}, nil
}

func (d *EVMDisburser) submit(
	ctx context.Context,
	client *ethclient.Client,
	key *ecdsa.PrivateKey,
	to common.Address,
	amount *big.Int,
	network model.NetworkConfig,
) (*types.Transaction, error) {
	lock := d.submitLock(network.ChainID)
	lock.Lock()
	defer lock.Unlock()

	from := crypto.PubkeyToAddress(key.PublicKey)
	nonce, err := client.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("%w: pending nonce: %v", ErrNetworkUnreachable, err)
	}

	tipCap, err := client.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: suggest gas tip: %v", ErrNetworkUnreachable, err)
	}
	head, err := client.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: latest header: %v", ErrNetworkUnreachable, err)
	}
	maxFee := feeCap(tipCap, head.BaseFee)

	chainID := big.NewInt(network.ChainID)
	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     nonce,
		GasTipCap: tipCap,
		GasFeeCap: maxFee,
		Gas:       transferGasLimit,
		To:        &to,
		Value:     amount,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), key)
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}

	if err := client.SendTransaction(ctx, signed); err != nil {
		return nil, classifySendError(err)
	}

	logger.Info("disbursement submitted",
		"network", network.ID, "to", to.Hex(), "txHash", signed.Hash().Hex(), "nonce", nonce)
	return signed, nil
}

// waitConfirmed polls for the receipt under a deadline separate from any
// transport timeout on the underlying client.
func (d *EVMDisburser) waitConfirmed(ctx context.Context, client *ethclient.Client, txHash common.Hash) (*types.Receipt, error) {
	deadline := time.NewTimer(d.confirmTimeout)
	defer deadline.Stop()
	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := client.TransactionReceipt(ctx, txHash)
		if err == nil && receipt != nil {
			return receipt, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrConfirmationTimeout, ctx.Err())
		case <-deadline.C:
			return nil, fmt.Errorf("%w: tx %s not confirmed after %s", ErrConfirmationTimeout, txHash.Hex(), d.confirmTimeout)
		case <-ticker.C:
		}
	}
}

func (d *EVMDisburser) client(ctx context.Context, network model.NetworkConfig) (*ethclient.Client, error) {
	d.mu.Lock()
	if client, ok := d.clients[network.ID]; ok {
		d.mu.Unlock()
		return client, nil
	}
	d.mu.Unlock()

	client, err := ethclient.DialContext(ctx, network.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %v", ErrNetworkUnreachable, network.RPCURL, err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if existing, ok := d.clients[network.ID]; ok {
		client.Close()
		return existing, nil
	}
	d.clients[network.ID] = client
	return client, nil
}

func (d *EVMDisburser) submitLock(chainID int64) *sync.Mutex {
	d.mu.Lock()
	defer d.mu.Unlock()
	lock, ok := d.submitMu[chainID]
	if !ok {
		lock = &sync.Mutex{}
		d.submitMu[chainID] = lock
	}
	return lock
}

// Close releases all cached RPC clients.
func (d *EVMDisburser) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, client := range d.clients {
		client.Close()
	}
	d.clients = make(map[string]*ethclient.Client)
}

// feeCap computes the max fee as tip + 2*baseFee. A chain that has not
// activated EIP-1559 reports a nil base fee in its headers; the tip alone is
// the cap there.
func feeCap(tipCap *big.Int, baseFee *big.Int) *big.Int {
	if baseFee == nil {
		return new(big.Int).Set(tipCap)
	}
	return new(big.Int).Add(tipCap, new(big.Int).Mul(baseFee, big.NewInt(2)))
}

// classifySendError maps node errors to the disburser taxonomy. Nodes report
// balance problems in their error text; everything else at submit time is
// treated as an unreachable or misbehaving endpoint.
func classifySendError(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "insufficient funds") {
		return fmt.Errorf("%w: %v", ErrInsufficientFunds, err)
	}
	return fmt.Errorf("%w: send transaction: %v", ErrNetworkUnreachable, err)
}
