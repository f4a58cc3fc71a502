package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"notekeeper/internal/app/server/config"
	"notekeeper/internal/domain/note"
	"notekeeper/internal/domain/user"
	"notekeeper/internal/infrastructure/migration"
)

type Store struct {
	pool  *pgxpool.Pool
	users *UserRepository
	notes *NoteRepository
}

func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Store, error) {
	pool, err := pgxpool.New(ctx, cfg.DB.DatabaseURI)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	mg := migration.NewMigration(cfg, migration.DefaultEngine)
	if err := mg.Up(); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &Store{
		pool:  pool,
		users: NewUserRepository(pool, log),
		notes: NewNoteRepository(pool, log),
	}, nil
}

func (s *Store) Users() user.Repository { return s.users }
func (s *Store) Notes() note.Repository { return s.notes }

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

func (s *Store) Pool() *pgxpool.Pool {
	return s.pool
}
