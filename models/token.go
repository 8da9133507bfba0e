package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT bearer token issued by the external identity provider.
//
// This subsystem never issues tokens; it only verifies them at the HTTP
// boundary. The embedded [jwt.Token] gives access to low-level parsing and
// [jwt.RegisteredClaims] to the standard claim set.
type Token struct {
	// Token is the underlying parsed JWT. Excluded from JSON because only
	// the compact string form is meaningful outside the process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim,
	// cached to avoid repeated string-to-int parsing.
	UserID int64 `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" claim and
// parses it as a base-10 int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
