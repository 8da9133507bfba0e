package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legacykeep/legacy-vault/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a := NewHTTPServerAdapter(HTTPClientConfig{BaseURL: serverURL})
	a.SetToken("test-token")
	return a.(*httpServerAdapter)
}

func TestFetchVault_Success(t *testing.T) {
	record := models.VaultRecord{
		PasswordSalt:              "salt",
		EncryptedVault:            "vault-blob",
		PasswordVerifier:          "verifier-blob",
		EncryptedPasswordRecovery: "recovery-blob",
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/vault/", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(record)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.FetchVault(context.Background())

	require.NoError(t, err)
	assert.Equal(t, record.EncryptedVault, got.EncryptedVault)
	assert.Equal(t, record.PasswordSalt, got.PasswordSalt)
}

func TestFetchVault_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.FetchVault(context.Background())

	assert.ErrorIs(t, err, ErrVaultNotFound)
}

func TestFetchVault_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.FetchVault(context.Background())

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestPushVault_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/vault/", r.URL.Path)

		var record models.VaultRecord
		require.NoError(t, json.NewDecoder(r.Body).Decode(&record))
		assert.Equal(t, "new-blob", record.EncryptedVault)

		_ = json.NewEncoder(w).Encode(record)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	saved, err := a.PushVault(context.Background(), models.VaultRecord{EncryptedVault: "new-blob"})

	require.NoError(t, err)
	assert.Equal(t, "new-blob", saved.EncryptedVault)
}

func TestRotateVault_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/vault/rotate", r.URL.Path)

		result := models.RotationResult{
			Vault:        models.VaultRecord{EncryptedVault: "rotated-blob"},
			Invalidation: models.InvalidationResult{Success: true, AffectedCount: 2},
		}
		_ = json.NewEncoder(w).Encode(result)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	result, err := a.RotateVault(context.Background(), models.VaultRecord{EncryptedVault: "rotated-blob"})

	require.NoError(t, err)
	assert.True(t, result.Invalidation.Success)
	assert.Equal(t, int64(2), result.Invalidation.AffectedCount)
}

func TestCountAffectedShareTokens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/share-tokens/affected", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.AffectedTokensPreview{AffectedCount: 3})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	count, err := a.CountAffectedShareTokens(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestInvalidateShareTokenEncryption(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/share-tokens/invalidate", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.InvalidationResult{Success: true, AffectedCount: 1})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	result, err := a.InvalidateShareTokenEncryption(context.Background())

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, int64(1), result.AffectedCount)
}

func TestCreateShareGrant(t *testing.T) {
	wrapped := "pin-wrapped-blob"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/share-tokens/", r.URL.Path)

		var token models.ShareToken
		require.NoError(t, json.NewDecoder(r.Body).Decode(&token))
		token.IsActive = true
		_ = json.NewEncoder(w).Encode(token)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	created, err := a.CreateShareGrant(context.Background(), models.ShareToken{
		ID:                   "grant-id",
		EncryptedRecoveryKey: &wrapped,
		PinSalt:              "pin-salt",
	})

	require.NoError(t, err)
	assert.True(t, created.IsActive)
	require.NotNil(t, created.EncryptedRecoveryKey)
	assert.Equal(t, wrapped, *created.EncryptedRecoveryKey)
}

func TestUserID_FromToken(t *testing.T) {
	// The adapter reads the sub claim without verifying the signature, so any
	// signing key works here; the server is the one that verifies.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "42"})
	signed, err := token.SignedString([]byte("not-the-server-key"))
	require.NoError(t, err)

	a := NewHTTPServerAdapter(HTTPClientConfig{})
	a.SetToken(signed)

	id, err := a.UserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}
