// Package surreal implements the storage backend on SurrealDB.
//
// The connection is configured with the surrealcbor codec: SurrealDB speaks
// CBOR internally, and without the custom codec time.Time and RecordID values
// do not survive the round trip. All queries are parameterized SurrealQL;
// filtering, ordering and substring matching run inside the database.
package surreal

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/connection"
	"github.com/surrealdb/surrealdb.go/pkg/connection/gorillaws"
	"github.com/surrealdb/surrealdb.go/surrealcbor"
	"golang.org/x/exp/slog"

	"notekeeper/internal/app/server/config"
	"notekeeper/internal/domain/note"
	"notekeeper/internal/domain/user"
)

type Store struct {
	db    *surrealdb.DB
	users *UserRepository
	notes *NoteRepository
}

func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Store, error) {
	u, err := url.Parse(cfg.DB.Surreal.URL)
	if err != nil {
		return nil, fmt.Errorf("parse surrealdb url: %w", err)
	}

	conf := connection.NewConfig(u)

	codec := surrealcbor.New()
	conf.Marshaler = codec
	conf.Unmarshaler = codec

	conn := gorillaws.New(conf)

	db, err := surrealdb.FromConnection(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("connect to surrealdb: %w", err)
	}

	if cfg.DB.Surreal.Username != "" {
		if _, err := db.SignIn(ctx, map[string]any{
			"user": cfg.DB.Surreal.Username,
			"pass": cfg.DB.Surreal.Password,
		}); err != nil {
			return nil, fmt.Errorf("authenticate to surrealdb: %w", err)
		}
	}

	if err := db.Use(ctx, cfg.DB.Surreal.Namespace, cfg.DB.Surreal.Database); err != nil {
		return nil, fmt.Errorf("use namespace/database: %w", err)
	}

	if err := defineSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("define schema: %w", err)
	}

	return &Store{
		db:    db,
		users: NewUserRepository(db, log),
		notes: NewNoteRepository(db, log),
	}, nil
}

// defineSchema keeps the tables schemaless but pins down the two constraints
// the service relies on the store for: username uniqueness and the tag cap.
func defineSchema(ctx context.Context, db *surrealdb.DB) error {
	statements := []string{
		`DEFINE TABLE IF NOT EXISTS users SCHEMALESS`,
		`DEFINE INDEX IF NOT EXISTS users_username_unique ON TABLE users COLUMNS username UNIQUE`,
		`DEFINE TABLE IF NOT EXISTS notes SCHEMALESS`,
		`DEFINE FIELD IF NOT EXISTS tags ON TABLE notes FLEXIBLE ASSERT $value = NONE OR array::len($value) <= 9`,
	}

	for _, stmt := range statements {
		if _, err := surrealdb.Query[any](ctx, db, stmt, nil); err != nil {
			return fmt.Errorf("%q: %w", stmt, err)
		}
	}

	return nil
}

func (s *Store) Users() user.Repository { return s.users }
func (s *Store) Notes() note.Repository { return s.notes }

func (s *Store) Close() error {
	return s.db.Close(context.Background())
}

// isNotFound recognizes the driver's "nothing matched" errors; the driver
// does not expose a sentinel for them.
func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Expected a single or multiple results but got 0") ||
		strings.Contains(msg, "cannot unmarshal array into Go value")
}

func isUniqueIndexViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "already contains")
}
