package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()

	_, ok := GetUserIDFromContext(ctx)
	assert.False(t, ok)

	ctx = context.WithValue(ctx, UserIDCtxKey, int64(9))

	id, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(9), id)
	assert.Equal(t, "userID", UserIDCtxKey.String())
}
