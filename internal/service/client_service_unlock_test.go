package service

import (
	"context"
	"errors"
	"path/filepath"
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

func newTestUnlockSvc(t *testing.T, ctrl *gomock.Controller, cache *store.ClientVaultCache) (ClientUnlockService, *mock.MockServerAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientUnlockService(
		mockAdapter,
		cache,
		crypto.NewVaultCipher(),
		crypto.NewRecoveryKeeper(),
		logger.NewLogger("test"),
	)
	return svc, mockAdapter
}

// recordWithKey builds a record and returns the formatted recovery key too.
func recordWithKey(t *testing.T, password string, payload any) (models.VaultRecord, string) {
	t.Helper()
	keeper := crypto.NewRecoveryKeeper()
	record := clientRecord(t, password, payload)

	key, err := keeper.GenerateRecoveryKey()
	require.NoError(t, err)
	record.EncryptedPasswordRecovery, err = keeper.EncryptPassword(password, key)
	require.NoError(t, err)

	return record, keeper.FormatRecoveryKey(key)
}

func TestUnlockWithPassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestUnlockSvc(t, ctrl, nil)
	ctx := context.Background()

	record := clientRecord(t, "account password", map[string]string{"note": "deeds in the safe"})
	mockAdapter.EXPECT().FetchVault(ctx).Return(record, nil)

	var payload map[string]string
	require.NoError(t, svc.UnlockWithPassword(ctx, "account password", &payload))
	assert.Equal(t, "deeds in the safe", payload["note"])
}

func TestUnlockWithPassword_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestUnlockSvc(t, ctrl, nil)
	ctx := context.Background()

	record := clientRecord(t, "account password", map[string]string{})
	mockAdapter.EXPECT().FetchVault(ctx).Return(record, nil)

	var payload map[string]string
	err := svc.UnlockWithPassword(ctx, "guess", &payload)
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestRecoverWithKey_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestUnlockSvc(t, ctrl, nil)
	ctx := context.Background()

	record, displayKey := recordWithKey(t, "account password", map[string]string{"note": "letters to the kids"})
	mockAdapter.EXPECT().FetchVault(ctx).Return(record, nil)

	var payload map[string]string
	password, err := svc.RecoverWithKey(ctx, "  "+displayKey+"\n", &payload)
	require.NoError(t, err)
	assert.Equal(t, "account password", password)
	assert.Equal(t, "letters to the kids", payload["note"])
}

func TestRecoverWithKey_WrongKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestUnlockSvc(t, ctrl, nil)
	ctx := context.Background()

	record, _ := recordWithKey(t, "account password", map[string]string{})
	mockAdapter.EXPECT().FetchVault(ctx).Return(record, nil)

	keeper := crypto.NewRecoveryKeeper()
	otherKey, err := keeper.GenerateRecoveryKey()
	require.NoError(t, err)

	var payload map[string]string
	_, err = svc.RecoverWithKey(ctx, keeper.FormatRecoveryKey(otherKey), &payload)
	assert.ErrorIs(t, err, crypto.ErrAuthenticationFailed)
}

func TestRecoverWithKey_MalformedKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestUnlockSvc(t, ctrl, nil)

	var payload map[string]string
	_, err := svc.RecoverWithKey(context.Background(), "abcd-efgh", &payload)
	assert.ErrorIs(t, err, crypto.ErrMalformedRecoveryKey)
}

func TestRecoverWithKey_NoRecoveryBlob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestUnlockSvc(t, ctrl, nil)
	ctx := context.Background()

	record, displayKey := recordWithKey(t, "account password", map[string]string{})
	record.EncryptedPasswordRecovery = ""
	mockAdapter.EXPECT().FetchVault(ctx).Return(record, nil)

	var payload map[string]string
	_, err := svc.RecoverWithKey(ctx, displayKey, &payload)
	assert.ErrorIs(t, err, ErrNoRecoveryBlob)
}

func TestUnlock_OfflineFallbackToCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cache, err := store.NewClientVaultCache(ctx, filepath.Join(t.TempDir(), "cache.db"), logger.NewLogger("test"))
	require.NoError(t, err)
	defer cache.Close()

	record := clientRecord(t, "account password", map[string]string{"note": "offline copy"})
	require.NoError(t, cache.PutVault(ctx, record))

	svc, mockAdapter := newTestUnlockSvc(t, ctrl, cache)
	mockAdapter.EXPECT().FetchVault(ctx).Return(models.VaultRecord{}, errors.New("no route to host"))
	mockAdapter.EXPECT().UserID().Return(record.UserID, nil).AnyTimes()

	var payload map[string]string
	require.NoError(t, svc.UnlockWithPassword(ctx, "account password", &payload))
	assert.Equal(t, "offline copy", payload["note"])
}

func TestUnlock_NoServerNoCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestUnlockSvc(t, ctrl, nil)
	ctx := context.Background()

	mockAdapter.EXPECT().FetchVault(ctx).Return(models.VaultRecord{}, errors.New("no route to host"))

	var payload map[string]string
	err := svc.UnlockWithPassword(ctx, "account password", &payload)
	assert.ErrorIs(t, err, ErrVaultUnavailable)
}
