//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"faucet/backend/internal/model"
	"faucet/backend/internal/repository"
)

// RateLimitService enforces one claim per wallet per network per window.
//
// The store is the fast path and the reservation mechanism; the claim ledger
// is the durable backstop, consulted so a store restart cannot reopen the
// window early. A reservation taken here must end in exactly one of Commit
// or Release.
type RateLimitService interface {
	Status(ctx context.Context, address string, networkID string) (RateStatus, error)
	CheckAndReserve(ctx context.Context, address string, network model.NetworkConfig, now time.Time) error
	Commit(ctx context.Context, address string, networkID string, at time.Time) error
	Release(ctx context.Context, address string, networkID string) error
}

// RateStatus describes whether a wallet may claim right now.
type RateStatus struct {
	CanClaim    bool
	HasClaimed  bool
	LastClaimAt time.Time
	NextClaimAt time.Time
	Remaining   time.Duration
}

type rateLimitService struct {
	store  RateStore
	claims repository.ClaimRepository
	window time.Duration
	now    func() time.Time
}

func NewRateLimitService(store RateStore, claims repository.ClaimRepository, window time.Duration) RateLimitService {
	return &rateLimitService{store: store, claims: claims, window: window, now: time.Now}
}

func rateKey(address string, networkID string) string {
	return "faucet:" + strings.ToLower(address) + ":" + networkID
}

func (s *rateLimitService) Status(ctx context.Context, address string, networkID string) (RateStatus, error) {
	if !common.IsHexAddress(address) {
		return RateStatus{}, ErrInvalidAddress
	}

	last, found, err := s.lastClaim(ctx, address, networkID)
	if err != nil {
		return RateStatus{}, err
	}
	if !found {
		return RateStatus{CanClaim: true}, nil
	}

	status := RateStatus{
		HasClaimed:  true,
		LastClaimAt: last,
		NextClaimAt: last.Add(s.window),
	}
	now := s.now()
	if now.Before(status.NextClaimAt) {
		status.Remaining = status.NextClaimAt.Sub(now)
	} else {
		status.CanClaim = true
	}
	return status, nil
}

func (s *rateLimitService) CheckAndReserve(ctx context.Context, address string, network model.NetworkConfig, now time.Time) error {
	// The ledger check covers claims the store no longer remembers.
	recorded, err := s.claims.LastByAddressAndNetwork(ctx, address, network.ID)
	if err != nil {
		return fmt.Errorf("%w: last claim lookup: %v", ErrStorageUnavailable, err)
	}
	if recorded != nil {
		if next := recorded.ClaimedAt.Add(s.window); now.Before(next) {
			return &RateLimitedError{
				Network:     network.Name,
				NextClaimAt: next,
				Remaining:   next.Sub(now),
			}
		}
	}

	ok, existing, err := s.store.Reserve(ctx, rateKey(address, network.ID), now, s.window)
	if err != nil {
		return fmt.Errorf("%w: reserve: %v", ErrStorageUnavailable, err)
	}
	if !ok {
		next := existing.Add(s.window)
		remaining := next.Sub(now)
		if remaining < 0 {
			remaining = 0
		}
		return &RateLimitedError{
			Network:     network.Name,
			NextClaimAt: next,
			Remaining:   remaining,
		}
	}
	return nil
}

func (s *rateLimitService) Commit(ctx context.Context, address string, networkID string, at time.Time) error {
	return s.store.Commit(ctx, rateKey(address, networkID), at, s.window)
}

func (s *rateLimitService) Release(ctx context.Context, address string, networkID string) error {
	return s.store.Release(ctx, rateKey(address, networkID))
}

// lastClaim prefers the store and falls back to the ledger. With an empty
// networkID it reports the wallet's most recent claim on any network.
func (s *rateLimitService) lastClaim(ctx context.Context, address string, networkID string) (time.Time, bool, error) {
	if networkID != "" {
		last, found, err := s.store.Last(ctx, rateKey(address, networkID))
		if err != nil {
			return time.Time{}, false, fmt.Errorf("%w: rate store lookup: %v", ErrStorageUnavailable, err)
		}
		if found {
			return last, true, nil
		}
	}

	var (
		recorded *model.FaucetClaim
		err      error
	)
	if networkID == "" {
		recorded, err = s.claims.LastByAddress(ctx, address)
	} else {
		recorded, err = s.claims.LastByAddressAndNetwork(ctx, address, networkID)
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: last claim lookup: %v", ErrStorageUnavailable, err)
	}
	if recorded == nil {
		return time.Time{}, false, nil
	}
	return recorded.ClaimedAt, true, nil
}
