package utils

import (
	"context"
	"errors"
)

type ctxKey string

// UserIDCtxKey carries the authenticated user's ID through a request context.
const UserIDCtxKey ctxKey = "user-id"

var ErrNoUserIDInContext = errors.New("no user id found in context")

// GetUserIDFromContext extracts the authenticated user's ID placed into the
// context by the auth middleware.
func GetUserIDFromContext(ctx context.Context) (int64, error) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	if !ok {
		return 0, ErrNoUserIDInContext
	}
	return userID, nil
}

// SetUserIDToContext returns a child context carrying the user's ID.
func SetUserIDToContext(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}
