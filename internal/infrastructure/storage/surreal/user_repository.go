package surreal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"
	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/user"
)

const usersTable = "users"

// userDoc is the stored shape of a user record.
type userDoc struct {
	ID           *models.RecordID `json:"id,omitempty"`
	Username     string           `json:"username"`
	PasswordHash string           `json:"passwordHash"`
	CreatedAt    time.Time        `json:"createdAt"`
}

func (d *userDoc) toDomain() user.User {
	return user.User{
		ID:           recordIDString(d.ID),
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
	}
}

// recordIDString extracts the bare id part of a RecordID (a uuid string in
// this schema).
func recordIDString(rid *models.RecordID) string {
	if rid == nil {
		return ""
	}
	if s, ok := rid.ID.(string); ok {
		return s
	}
	return fmt.Sprint(rid.ID)
}

type UserRepository struct {
	db  *surrealdb.DB
	log *slog.Logger
}

func NewUserRepository(db *surrealdb.DB, log *slog.Logger) *UserRepository {
	return &UserRepository{
		db:  db,
		log: log.With("component", "surreal_user_repository"),
	}
}

func (r *UserRepository) Create(ctx context.Context, username, passwordHash string) (user.User, error) {
	rid := models.RecordID{Table: usersTable, ID: uuid.NewString()}
	doc := userDoc{
		ID:           &rid,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}

	created, err := surrealdb.Create[userDoc](ctx, r.db, usersTable, doc)
	if err != nil {
		if isUniqueIndexViolation(err) {
			return user.User{}, user.ErrExists
		}
		r.log.Error("failed to create user", "username", username, "error", err)
		return user.User{}, fmt.Errorf("create user: %w", err)
	}

	return created.toDomain(), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (user.User, error) {
	const query = `SELECT * FROM users WHERE username = $username LIMIT 1`

	result, err := surrealdb.Query[[]userDoc](ctx, r.db, query, map[string]any{
		"username": username,
	})
	if err != nil {
		r.log.Error("failed to find user", "username", username, "error", err)
		return user.User{}, fmt.Errorf("find user: %w", err)
	}

	if result == nil || len(*result) == 0 || len((*result)[0].Result) == 0 {
		return user.User{}, user.ErrNotFound
	}

	doc := (*result)[0].Result[0]
	return doc.toDomain(), nil
}
