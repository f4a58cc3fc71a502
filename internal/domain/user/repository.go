package user

import (
	"context"
)

// Repository persists users. Create must fail with ErrExists when the
// username is already taken; the uniqueness check is a single atomic write
// (unique index), not a separate read.
type Repository interface {
	Create(ctx context.Context, username, passwordHash string) (User, error)
	FindByUsername(ctx context.Context, username string) (User, error)
}
