package service

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidAddress      = errors.New("invalid wallet address")
	ErrUnknownNetwork      = errors.New("unknown network")
	ErrScoreNotFound       = errors.New("no passport found")
	ErrOracleUnavailable   = errors.New("score provider unavailable")
	ErrOracleUnauthorized  = errors.New("score provider rejected credentials")
	ErrFaucetEmpty         = errors.New("faucet wallet has insufficient funds")
	ErrFaucetNotConfigured = errors.New("faucet signing key not configured")
	ErrChainUnreachable    = errors.New("network rpc unreachable")
	ErrConfirmTimeout      = errors.New("transaction confirmation timed out")
	ErrStorageUnavailable  = errors.New("storage unavailable")
)

// InsufficientScoreError carries the threshold the caller failed to meet.
type InsufficientScoreError struct {
	Score   float64
	Minimum float64
}

func (e *InsufficientScoreError) Error() string {
	return fmt.Sprintf("insufficient passport score: have %.2f, minimum required: %g", e.Score, e.Minimum)
}

// NetworkDisabledError names a network that exists but is not dispensing.
type NetworkDisabledError struct {
	Network string
}

func (e *NetworkDisabledError) Error() string {
	return fmt.Sprintf("%s faucet is currently disabled", e.Network)
}

// RateLimitedError reports when the wallet may claim again.
type RateLimitedError struct {
	Network     string
	NextClaimAt time.Time
	Remaining   time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited on %s until %s", e.Network, e.NextClaimAt.UTC().Format(time.RFC3339))
}
