//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"faucet/backend/internal/model"
	"faucet/backend/internal/passport"
)

// ScoreService fetches the reputation score for a wallet. It owns address
// validation and the mapping of provider errors onto service errors, so the
// rest of the code never sees provider internals.
type ScoreService interface {
	Check(ctx context.Context, address string) (model.PassportScore, error)
}

type scoreService struct {
	provider ScoreProvider
}

func NewScoreService(provider ScoreProvider) ScoreService {
	return &scoreService{provider: provider}
}

func (s *scoreService) Check(ctx context.Context, address string) (model.PassportScore, error) {
	if !common.IsHexAddress(address) {
		return model.PassportScore{}, ErrInvalidAddress
	}

	score, err := s.provider.Score(ctx, address)
	if err != nil {
		switch {
		case errors.Is(err, passport.ErrNoScore):
			return model.PassportScore{}, ErrScoreNotFound
		case errors.Is(err, passport.ErrUnauthorized):
			return model.PassportScore{}, fmt.Errorf("%w: %v", ErrOracleUnauthorized, err)
		default:
			return model.PassportScore{}, fmt.Errorf("%w: %v", ErrOracleUnavailable, err)
		}
	}
	return score, nil
}
