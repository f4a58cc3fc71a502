package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/note"
)

const noteColumns = `id, user_id, title, content, tags, background_color,
	is_archived, is_trashed, created_at, updated_at`

type NoteRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewNoteRepository(pool *pgxpool.Pool, log *slog.Logger) *NoteRepository {
	return &NoteRepository{
		pool: pool,
		log:  log.With("component", "note_repository"),
	}
}

func (r *NoteRepository) Create(ctx context.Context, n *note.Note) (*note.Note, error) {
	const query = `
		INSERT INTO notes (id, user_id, title, content, tags, background_color,
			is_archived, is_trashed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + noteColumns

	row := r.pool.QueryRow(ctx, query,
		uuid.NewString(), n.UserID, n.Title, n.Content, n.Tags, n.BackgroundColor,
		n.IsArchived, n.IsTrashed, n.CreatedAt, n.UpdatedAt)

	created, err := scanNote(row)
	if err != nil {
		r.log.Error("failed to create note", "user_id", n.UserID, "error", err)
		return nil, fmt.Errorf("create note: %w", err)
	}

	return created, nil
}

func (r *NoteRepository) Get(ctx context.Context, id string) (*note.Note, error) {
	const query = `SELECT ` + noteColumns + ` FROM notes WHERE id = $1`

	n, err := scanNote(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, note.ErrNotFound
		}
		r.log.Error("failed to get note", "note_id", id, "error", err)
		return nil, fmt.Errorf("get note: %w", err)
	}

	return n, nil
}

// Update is conditional on ownership so a racing delete or a foreign note
// never gets overwritten.
func (r *NoteRepository) Update(ctx context.Context, n *note.Note) (*note.Note, error) {
	const query = `
		UPDATE notes
		SET title = $1, content = $2, tags = $3, background_color = $4,
			is_archived = $5, is_trashed = $6, updated_at = $7
		WHERE id = $8 AND user_id = $9
		RETURNING ` + noteColumns

	row := r.pool.QueryRow(ctx, query,
		n.Title, n.Content, n.Tags, n.BackgroundColor,
		n.IsArchived, n.IsTrashed, n.UpdatedAt,
		n.ID, n.UserID)

	updated, err := scanNote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, note.ErrNotFound
		}
		r.log.Error("failed to update note", "note_id", n.ID, "error", err)
		return nil, fmt.Errorf("update note: %w", err)
	}

	return updated, nil
}

func (r *NoteRepository) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM notes WHERE id = $1 AND user_id = $2`

	if _, err := r.pool.Exec(ctx, query, id, userID); err != nil {
		r.log.Error("failed to delete note", "note_id", id, "error", err)
		return fmt.Errorf("delete note: %w", err)
	}

	return nil
}

func (r *NoteRepository) ListActive(ctx context.Context, userID string) ([]note.Note, error) {
	const query = `
		SELECT ` + noteColumns + `
		FROM notes
		WHERE user_id = $1 AND is_archived = false AND is_trashed = false
		ORDER BY created_at DESC`

	return r.list(ctx, query, userID)
}

func (r *NoteRepository) ListArchived(ctx context.Context, userID string) ([]note.Note, error) {
	const query = `
		SELECT ` + noteColumns + `
		FROM notes
		WHERE user_id = $1 AND is_archived = true
		ORDER BY created_at DESC`

	return r.list(ctx, query, userID)
}

func (r *NoteRepository) ListTrashed(ctx context.Context, userID string) ([]note.Note, error) {
	const query = `
		SELECT ` + noteColumns + `
		FROM notes
		WHERE user_id = $1 AND is_trashed = true
		ORDER BY created_at DESC`

	return r.list(ctx, query, userID)
}

func (r *NoteRepository) Search(ctx context.Context, userID, search string) ([]note.Note, error) {
	const query = `
		SELECT ` + noteColumns + `
		FROM notes
		WHERE user_id = $1 AND is_trashed = false
			AND (title ILIKE '%' || $2 || '%' OR content ILIKE '%' || $2 || '%')
		ORDER BY created_at DESC`

	return r.list(ctx, query, userID, search)
}

func (r *NoteRepository) list(ctx context.Context, query string, args ...any) ([]note.Note, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to list notes", "error", err)
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	notes := []note.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, *n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	return notes, nil
}

func scanNote(row pgx.Row) (*note.Note, error) {
	var n note.Note
	err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.Tags, &n.BackgroundColor,
		&n.IsArchived, &n.IsTrashed, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if n.Tags == nil {
		n.Tags = []string{}
	}
	return &n, nil
}
