//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"time"

	"faucet/backend/internal/model"
)

// ScoreProvider is the external reputation oracle.
type ScoreProvider interface {
	Score(ctx context.Context, address string) (model.PassportScore, error)
}

// RateStore is the shared record of recent claims, keyed per wallet and
// network. Reserve is atomic: exactly one concurrent caller wins a free key.
type RateStore interface {
	Last(ctx context.Context, key string) (time.Time, bool, error)
	Reserve(ctx context.Context, key string, at time.Time, window time.Duration) (bool, time.Time, error)
	Commit(ctx context.Context, key string, at time.Time, window time.Duration) error
	Release(ctx context.Context, key string) error
}

// Disburser submits one on-chain transfer and waits for confirmation.
type Disburser interface {
	Send(ctx context.Context, to string, network model.NetworkConfig) (model.Receipt, error)
}

// NetworkRegistry is the read-only catalog of supported testnets.
type NetworkRegistry interface {
	ListActive() []model.NetworkConfig
	GetByID(id string) (model.NetworkConfig, bool)
}
