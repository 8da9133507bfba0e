package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/legacykeep/legacy-vault/internal/crypto"
	"github.com/legacykeep/legacy-vault/internal/logger"
	"github.com/legacykeep/legacy-vault/internal/mock"
	"github.com/legacykeep/legacy-vault/internal/store"
	"github.com/legacykeep/legacy-vault/models"
)

// validRecord builds a record whose blobs are real ciphertext so the
// service's IsEncryptedValue gate lets it through.
func validRecord(t *testing.T, userID int64) models.VaultRecord {
	t.Helper()
	cipher := crypto.NewVaultCipher()

	salt, err := cipher.GenerateSalt()
	require.NoError(t, err)
	blob, err := cipher.Encrypt(map[string]string{"note": "x"}, "pw", salt)
	require.NoError(t, err)
	verifier, err := cipher.CreatePasswordVerifier("pw", salt)
	require.NoError(t, err)

	keeper := crypto.NewRecoveryKeeper()
	key, err := keeper.GenerateRecoveryKey()
	require.NoError(t, err)
	recovery, err := keeper.EncryptPassword("pw", key)
	require.NoError(t, err)

	return models.VaultRecord{
		UserID:                    userID,
		PasswordSalt:              salt,
		EncryptedVault:            blob,
		PasswordVerifier:          verifier,
		EncryptedPasswordRecovery: recovery,
	}
}

func newTestVaultSvc(t *testing.T, ctrl *gomock.Controller) (VaultService, *mock.MockVaultRepository) {
	t.Helper()
	repo := mock.NewMockVaultRepository(ctrl)
	svc := NewVaultService(repo, crypto.NewVaultCipher(), logger.NewLogger("test"))
	return svc, repo
}

func TestPutVault_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestVaultSvc(t, ctrl)
	ctx := context.Background()
	record := validRecord(t, 7)

	repo.EXPECT().SaveVault(ctx, record).Return(record, nil)

	saved, err := svc.PutVault(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, record.EncryptedVault, saved.EncryptedVault)
}

func TestPutVault_RejectsPlaintextBlobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	record := validRecord(t, 7)
	record.EncryptedVault = "my bank password is hunter2"

	_, err := svc.PutVault(ctx, record)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestPutVault_RejectsMissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	record := validRecord(t, 7)
	record.PasswordSalt = ""
	_, err := svc.PutVault(ctx, record)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	record = validRecord(t, 0)
	_, err = svc.PutVault(ctx, record)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestGetVault_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().GetVault(ctx, int64(7)).Return(models.VaultRecord{}, store.ErrVaultNotFound)

	_, err := svc.GetVault(ctx, 7)
	assert.ErrorIs(t, err, store.ErrVaultNotFound)
}

func TestRotateVault_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestVaultSvc(t, ctrl)
	ctx := context.Background()
	record := validRecord(t, 7)

	repo.EXPECT().RotateVault(ctx, record).Return(record, int64(2), nil)

	result, err := svc.RotateVault(ctx, record)
	require.NoError(t, err)
	assert.True(t, result.Invalidation.Success)
	assert.Equal(t, int64(2), result.Invalidation.AffectedCount)
}

func TestRotateVault_RepositoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestVaultSvc(t, ctrl)
	ctx := context.Background()
	record := validRecord(t, 7)

	repo.EXPECT().RotateVault(ctx, record).
		Return(models.VaultRecord{}, int64(0), errors.New("deadlock detected"))

	_, err := svc.RotateVault(ctx, record)
	require.Error(t, err)
}
