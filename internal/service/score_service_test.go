package service_test

import (
	"context"
	"errors"
	"testing"

	"faucet/backend/internal/model"
	"faucet/backend/internal/passport"
	"faucet/backend/internal/service"
	"faucet/backend/internal/service/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const wallet = "0x1111111111111111111111111111111111111111"

func TestScoreService_Check(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mock.NewMockScoreProvider(ctrl)
	svc := service.NewScoreService(provider)

	provider.EXPECT().Score(gomock.Any(), wallet).Return(model.PassportScore{
		Address: wallet,
		Score:   23.5,
	}, nil)

	score, err := svc.Check(context.Background(), wallet)
	require.NoError(t, err)
	require.Equal(t, 23.5, score.Score)
}

func TestScoreService_Check_InvalidAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mock.NewMockScoreProvider(ctrl)
	svc := service.NewScoreService(provider)

	_, err := svc.Check(context.Background(), "not-an-address")
	require.ErrorIs(t, err, service.ErrInvalidAddress)
}

func TestScoreService_Check_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		provider error
		want     error
	}{
		{name: "no passport", provider: passport.ErrNoScore, want: service.ErrScoreNotFound},
		{name: "bad credentials", provider: passport.ErrUnauthorized, want: service.ErrOracleUnauthorized},
		{name: "provider down", provider: passport.ErrUnavailable, want: service.ErrOracleUnavailable},
		{name: "unexpected error", provider: errors.New("boom"), want: service.ErrOracleUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			provider := mock.NewMockScoreProvider(ctrl)
			provider.EXPECT().Score(gomock.Any(), wallet).Return(model.PassportScore{}, tt.provider)

			_, err := service.NewScoreService(provider).Check(context.Background(), wallet)
			require.ErrorIs(t, err, tt.want)
		})
	}
}
