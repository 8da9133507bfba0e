package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/legacykeep/legacy-vault/internal/config"
	"github.com/legacykeep/legacy-vault/internal/logger"
	"github.com/legacykeep/legacy-vault/internal/mock/servicemock"
	"github.com/legacykeep/legacy-vault/internal/service"
	"github.com/legacykeep/legacy-vault/internal/store"
	"github.com/legacykeep/legacy-vault/models"
)

const (
	testSignKey = "handler-test-sign-key"
	testIssuer  = "legacykeep-idp"
)

func newTestHandler(t *testing.T, ctrl *gomock.Controller) (*Handler, *servicemock.MockVaultService, *servicemock.MockShareTokenService) {
	t.Helper()

	vaultSvc := servicemock.NewMockVaultService(ctrl)
	tokenSvc := servicemock.NewMockShareTokenService(ctrl)
	services := &service.Services{
		VaultService:      vaultSvc,
		ShareTokenService: tokenSvc,
	}

	h := NewHandler(services, config.Auth{TokenSignKey: testSignKey, TokenIssuer: testIssuer}, logger.NewLogger("test"))
	return h, vaultSvc, tokenSvc
}

func bearerToken(t *testing.T, subject string) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    testIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSignKey))
	require.NoError(t, err)
	return "Bearer " + signed
}

func doRequest(h *Handler, method, path, auth string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func TestAuth_MissingHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)
	rec := doRequest(h, http.MethodGet, "/api/vault/", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)
	rec := doRequest(h, http.MethodGet, "/api/vault/", "Bearer not.a.token", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetVault_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, vaultSvc, _ := newTestHandler(t, ctrl)
	record := models.VaultRecord{PasswordSalt: "salt", EncryptedVault: "blob"}
	vaultSvc.EXPECT().GetVault(gomock.Any(), int64(42)).Return(record, nil)

	rec := doRequest(h, http.MethodGet, "/api/vault/", bearerToken(t, "42"), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.VaultRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "blob", got.EncryptedVault)
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

func TestGetVault_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, vaultSvc, _ := newTestHandler(t, ctrl)
	vaultSvc.EXPECT().GetVault(gomock.Any(), int64(42)).Return(models.VaultRecord{}, store.ErrVaultNotFound)

	rec := doRequest(h, http.MethodGet, "/api/vault/", bearerToken(t, "42"), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPutVault_SetsOwnerFromToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, vaultSvc, _ := newTestHandler(t, ctrl)

	// The body claims user 999; the verified token must win.
	body, _ := json.Marshal(map[string]any{"user_id": 999, "encrypted_vault": "blob"})
	vaultSvc.EXPECT().PutVault(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, record models.VaultRecord) (models.VaultRecord, error) {
			assert.Equal(t, int64(42), record.UserID)
			return record, nil
		})

	rec := doRequest(h, http.MethodPut, "/api/vault/", bearerToken(t, "42"), body)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPutVault_InvalidRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, vaultSvc, _ := newTestHandler(t, ctrl)
	vaultSvc.EXPECT().PutVault(gomock.Any(), gomock.Any()).
		Return(models.VaultRecord{}, service.ErrInvalidDataProvided)

	rec := doRequest(h, http.MethodPut, "/api/vault/", bearerToken(t, "42"), []byte(`{}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRotateVault_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, vaultSvc, _ := newTestHandler(t, ctrl)
	vaultSvc.EXPECT().RotateVault(gomock.Any(), gomock.Any()).
		Return(models.RotationResult{
			Invalidation: models.InvalidationResult{Success: true, AffectedCount: 2},
		}, nil)

	rec := doRequest(h, http.MethodPost, "/api/vault/rotate", bearerToken(t, "42"), []byte(`{"encrypted_vault":"blob"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	var result models.RotationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, int64(2), result.Invalidation.AffectedCount)
}

func TestListShareGrants_EmptyIsJSONArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, tokenSvc := newTestHandler(t, ctrl)
	tokenSvc.EXPECT().ListActiveGrants(gomock.Any(), int64(42)).Return(nil, nil)

	rec := doRequest(h, http.MethodGet, "/api/share-tokens/", bearerToken(t, "42"), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestAffectedShareTokens_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, tokenSvc := newTestHandler(t, ctrl)
	tokenSvc.EXPECT().CountAffectedShareTokens(gomock.Any(), int64(42)).Return(int64(3), nil)

	rec := doRequest(h, http.MethodGet, "/api/share-tokens/affected", bearerToken(t, "42"), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var preview models.AffectedTokensPreview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &preview))
	assert.Equal(t, int64(3), preview.AffectedCount)
}

func TestInvalidateShareTokens_DegradedResultStillOK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, tokenSvc := newTestHandler(t, ctrl)
	tokenSvc.EXPECT().InvalidateShareTokenEncryption(gomock.Any(), int64(42)).
		Return(models.InvalidationResult{Success: false, AffectedCount: 0})

	rec := doRequest(h, http.MethodPost, "/api/share-tokens/invalidate", bearerToken(t, "42"), nil)

	// The outcome travels in the body, not the status code.
	require.Equal(t, http.StatusOK, rec.Code)
	var result models.InvalidationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.Equal(t, int64(0), result.AffectedCount)
}

func TestCreateShareGrant_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, tokenSvc := newTestHandler(t, ctrl)
	tokenSvc.EXPECT().CreateGrant(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, token models.ShareToken) (models.ShareToken, error) {
			assert.Equal(t, int64(42), token.UserID)
			token.IsActive = true
			return token, nil
		})

	body := []byte(`{"id":"grant-id","pin_salt":"salt","encrypted_recovery_key":"wrapped"}`)
	rec := doRequest(h, http.MethodPost, "/api/share-tokens/", bearerToken(t, "42"), body)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateShareGrant_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, tokenSvc := newTestHandler(t, ctrl)
	tokenSvc.EXPECT().CreateGrant(gomock.Any(), gomock.Any()).
		Return(models.ShareToken{}, store.ErrGrantAlreadyExists)

	rec := doRequest(h, http.MethodPost, "/api/share-tokens/", bearerToken(t, "42"), []byte(`{"id":"dup"}`))
	assert.Equal(t, http.StatusConflict, rec.Code)
}
