// Package http implements the HTTP transport layer of the vault server.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, and tracing concerns are all
// handled at this layer before requests are forwarded to the service layer.
package http

import (
	"net/http"

	"github.com/legacykeep/legacy-vault/internal/logger"
	"github.com/legacykeep/legacy-vault/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// verifies it against the identity provider's sign key and expected issuer,
// and on success stores the authenticated user's ID in the request
// context under [utils.UserIDCtxKey] before delegating to the next handler.
//
// The vault server never issues tokens; every rejection is HTTP 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		token, err := utils.ValidateAndParseJWTToken(tokenString, h.tokenSignKey, h.tokenIssuer)
		if err != nil {
			log.Err(err).Msg("error occurred during token verification")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the authenticated user's ID in the context so that
		// downstream handlers can retrieve it without re-parsing the token.
		ctx := utils.SetUserIDToContext(r.Context(), token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
