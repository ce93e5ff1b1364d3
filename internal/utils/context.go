package utils

import (
	"context"
)

// contextKey is a private type for context keys so that values set here
// cannot collide with string keys from other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey holds the authenticated user's id (int64).
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext returns the authenticated user id and whether it was
// present with the expected type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
