package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSignKey = "unit-test-sign-key"

func issueToken(t *testing.T, claims jwt.RegisteredClaims, key string) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return signed
}

func TestValidateAndParseJWTToken(t *testing.T) {
	signed := issueToken(t, jwt.RegisteredClaims{
		Subject:   "42",
		Issuer:    "legacykeep-idp",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}, testSignKey)

	token, err := ValidateAndParseJWTToken(signed, testSignKey, "legacykeep-idp")
	require.NoError(t, err)
	assert.Equal(t, int64(42), token.UserID)
	assert.Equal(t, signed, token.String())
}

func TestValidateAndParseJWTToken_Rejections(t *testing.T) {
	valid := jwt.RegisteredClaims{
		Subject:   "42",
		Issuer:    "legacykeep-idp",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	tests := []struct {
		name   string
		signed string
		issuer string
	}{
		{
			name:   "wrong sign key",
			signed: issueToken(t, valid, "other-key"),
			issuer: "legacykeep-idp",
		},
		{
			name: "expired",
			signed: issueToken(t, jwt.RegisteredClaims{
				Subject:   "42",
				Issuer:    "legacykeep-idp",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			}, testSignKey),
			issuer: "legacykeep-idp",
		},
		{
			name:   "wrong issuer",
			signed: issueToken(t, valid, testSignKey),
			issuer: "someone-else",
		},
		{
			name: "non-numeric subject",
			signed: issueToken(t, jwt.RegisteredClaims{
				Subject:   "not-a-number",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			}, testSignKey),
		},
		{
			name:   "garbage",
			signed: "not.a.jwt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.signed, testSignKey, tt.issuer)
			assert.ErrorIs(t, err, ErrInvalidJWTToken)
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	for _, header := range []string{"", "Bearer ", "Basic abc", "abc.def.ghi"} {
		_, err := ParseBearerToken(header)
		assert.ErrorIs(t, err, ErrNoBearerToken, "header %q", header)
	}
}
