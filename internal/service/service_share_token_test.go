package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/legacykeep/legacy-vault/internal/logger"
	"github.com/legacykeep/legacy-vault/internal/mock"
	"github.com/legacykeep/legacy-vault/models"
)

func newTestShareTokenSvc(t *testing.T, ctrl *gomock.Controller) (ShareTokenService, *mock.MockShareTokenRepository) {
	t.Helper()
	repo := mock.NewMockShareTokenRepository(ctrl)
	svc := NewShareTokenService(repo, logger.NewLogger("test"))
	return svc, repo
}

func TestInvalidateShareTokenEncryption_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestShareTokenSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().InvalidateRecoverable(ctx, int64(7)).Return(int64(2), nil)

	result := svc.InvalidateShareTokenEncryption(ctx, 7)

	assert.True(t, result.Success)
	assert.Equal(t, int64(2), result.AffectedCount)
}

func TestInvalidateShareTokenEncryption_NoGrants(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestShareTokenSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().InvalidateRecoverable(ctx, int64(7)).Return(int64(0), nil)

	result := svc.InvalidateShareTokenEncryption(ctx, 7)

	// Zero affected tokens is still a success: there was nothing to clear.
	assert.True(t, result.Success)
	assert.Equal(t, int64(0), result.AffectedCount)
}

func TestInvalidateShareTokenEncryption_DegradesOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestShareTokenSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().InvalidateRecoverable(ctx, int64(7)).Return(int64(0), errors.New("connection refused"))

	result := svc.InvalidateShareTokenEncryption(ctx, 7)

	assert.False(t, result.Success)
	assert.Equal(t, int64(0), result.AffectedCount)
}

func TestCountAffectedShareTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestShareTokenSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().CountRecoverable(ctx, int64(7)).Return(int64(3), nil)

	count, err := svc.CountAffectedShareTokens(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestCountAffectedShareTokens_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestShareTokenSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().CountRecoverable(ctx, int64(7)).Return(int64(0), errors.New("connection refused"))

	count, err := svc.CountAffectedShareTokens(ctx, 7)
	require.Error(t, err)
	assert.Equal(t, int64(0), count)
}

func TestListActiveGrants(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestShareTokenSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().ListActiveGrants(ctx, int64(7)).
		Return([]models.ShareToken{{ID: "grant", UserID: 7, IsActive: true}}, nil)

	tokens, err := svc.ListActiveGrants(ctx, 7)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "grant", tokens[0].ID)
}

func TestCreateGrant_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestShareTokenSvc(t, ctrl)
	ctx := context.Background()

	wrapped := "wrapped-blob"
	tests := []struct {
		name  string
		token models.ShareToken
	}{
		{name: "missing id", token: models.ShareToken{UserID: 7}},
		{name: "missing user", token: models.ShareToken{ID: "grant"}},
		{name: "recovery material without pin salt", token: models.ShareToken{ID: "grant", UserID: 7, EncryptedRecoveryKey: &wrapped}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateGrant(ctx, tt.token)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestCreateGrant_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestShareTokenSvc(t, ctrl)
	ctx := context.Background()

	wrapped := "wrapped-blob"
	token := models.ShareToken{ID: "grant", UserID: 7, EncryptedRecoveryKey: &wrapped, PinSalt: "pin-salt"}

	stored := token
	stored.IsActive = true
	repo.EXPECT().CreateGrant(ctx, token).Return(stored, nil)

	created, err := svc.CreateGrant(ctx, token)
	require.NoError(t, err)
	assert.True(t, created.IsActive)
}
