package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/legacykeep/legacy-vault/models"
)

var (
	ErrInvalidJWTToken      = errors.New("invalid JWT token")
	ErrNoBearerToken        = errors.New("no bearer token in Authorization header")
	ErrUnexpectedSignMethod = errors.New("unexpected token signing method")
)

// ValidateAndParseJWTToken verifies the compact JWS string against the
// identity provider's HMAC key and, if issuer is non-empty, the expected
// "iss" claim. It returns the parsed token with the UserID claim resolved.
func ValidateAndParseJWTToken(signedToken, signKey, issuer string) (*models.Token, error) {
	claims := &jwt.RegisteredClaims{}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	parsed, err := jwt.ParseWithClaims(signedToken, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnexpectedSignMethod, t.Header["alg"])
		}
		return []byte(signKey), nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJWTToken, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidJWTToken
	}

	token := &models.Token{
		Token:            parsed,
		RegisteredClaims: *claims,
		SignedString:     signedToken,
	}

	userID, err := token.GetUserID()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJWTToken, err)
	}
	token.UserID = userID

	return token, nil
}

// ParseBearerToken extracts the compact JWS string from an
// "Authorization: Bearer <token>" header value.
func ParseBearerToken(authHeader string) (string, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authHeader, prefix) {
		return "", ErrNoBearerToken
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, prefix))
	if token == "" {
		return "", ErrNoBearerToken
	}
	return token, nil
}
