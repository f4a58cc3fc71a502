package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserIDContext(t *testing.T) {
	ctx := WithUserID(context.Background(), "u-1")

	userID, ok := GetUserID(ctx)
	assert.True(t, ok)
	assert.Equal(t, "u-1", userID)
}

func TestGetUserID_Missing(t *testing.T) {
	userID, ok := GetUserID(context.Background())
	assert.False(t, ok)
	assert.Empty(t, userID)
}
