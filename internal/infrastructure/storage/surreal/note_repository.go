package surreal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"
	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/note"
)

const notesTable = "notes"

// noteDoc is the stored shape of a note record. The owner is a RecordID so
// ownership filters can use record references instead of raw strings.
type noteDoc struct {
	ID              *models.RecordID `json:"id,omitempty"`
	Owner           models.RecordID  `json:"userId"`
	Title           string           `json:"title"`
	Content         string           `json:"content"`
	Tags            []string         `json:"tags"`
	BackgroundColor string           `json:"backgroundColor"`
	IsArchived      bool             `json:"isArchived"`
	IsTrashed       bool             `json:"isTrashed"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

func noteToDoc(n *note.Note) noteDoc {
	doc := noteDoc{
		Owner:           models.RecordID{Table: usersTable, ID: n.UserID},
		Title:           n.Title,
		Content:         n.Content,
		Tags:            n.Tags,
		BackgroundColor: n.BackgroundColor,
		IsArchived:      n.IsArchived,
		IsTrashed:       n.IsTrashed,
		CreatedAt:       n.CreatedAt,
		UpdatedAt:       n.UpdatedAt,
	}
	if n.ID != "" {
		doc.ID = &models.RecordID{Table: notesTable, ID: n.ID}
	}
	return doc
}

func (d *noteDoc) toDomain() note.Note {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return note.Note{
		ID:              recordIDString(d.ID),
		UserID:          recordIDString(&d.Owner),
		Title:           d.Title,
		Content:         d.Content,
		Tags:            tags,
		BackgroundColor: d.BackgroundColor,
		IsArchived:      d.IsArchived,
		IsTrashed:       d.IsTrashed,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

type NoteRepository struct {
	db  *surrealdb.DB
	log *slog.Logger
}

func NewNoteRepository(db *surrealdb.DB, log *slog.Logger) *NoteRepository {
	return &NoteRepository{
		db:  db,
		log: log.With("component", "surreal_note_repository"),
	}
}

func (r *NoteRepository) Create(ctx context.Context, n *note.Note) (*note.Note, error) {
	doc := noteToDoc(n)
	doc.ID = &models.RecordID{Table: notesTable, ID: uuid.NewString()}

	created, err := surrealdb.Create[noteDoc](ctx, r.db, notesTable, doc)
	if err != nil {
		r.log.Error("failed to create note", "user_id", n.UserID, "error", err)
		return nil, fmt.Errorf("create note: %w", err)
	}

	result := created.toDomain()
	return &result, nil
}

func (r *NoteRepository) Get(ctx context.Context, id string) (*note.Note, error) {
	rid := models.RecordID{Table: notesTable, ID: id}

	doc, err := surrealdb.Select[noteDoc](ctx, r.db, rid)
	if err != nil {
		if isNotFound(err) {
			return nil, note.ErrNotFound
		}
		r.log.Error("failed to get note", "note_id", id, "error", err)
		return nil, fmt.Errorf("get note: %w", err)
	}
	if doc == nil || doc.ID == nil {
		return nil, note.ErrNotFound
	}

	result := doc.toDomain()
	return &result, nil
}

// Update replaces the record content in a single conditional statement:
// nothing matches when the note is gone or owned by someone else.
func (r *NoteRepository) Update(ctx context.Context, n *note.Note) (*note.Note, error) {
	const query = `UPDATE $note CONTENT $content WHERE userId = $owner`

	doc := noteToDoc(n)
	doc.ID = nil // the id is the update target, not part of the content

	result, err := surrealdb.Query[[]noteDoc](ctx, r.db, query, map[string]any{
		"note":    models.RecordID{Table: notesTable, ID: n.ID},
		"owner":   models.RecordID{Table: usersTable, ID: n.UserID},
		"content": doc,
	})
	if err != nil {
		r.log.Error("failed to update note", "note_id", n.ID, "error", err)
		return nil, fmt.Errorf("update note: %w", err)
	}

	if result == nil || len(*result) == 0 || len((*result)[0].Result) == 0 {
		return nil, note.ErrNotFound
	}

	updated := (*result)[0].Result[0].toDomain()
	return &updated, nil
}

func (r *NoteRepository) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE $note WHERE userId = $owner`

	_, err := surrealdb.Query[any](ctx, r.db, query, map[string]any{
		"note":  models.RecordID{Table: notesTable, ID: id},
		"owner": models.RecordID{Table: usersTable, ID: userID},
	})
	if err != nil {
		r.log.Error("failed to delete note", "note_id", id, "error", err)
		return fmt.Errorf("delete note: %w", err)
	}

	return nil
}

func (r *NoteRepository) ListActive(ctx context.Context, userID string) ([]note.Note, error) {
	const query = `
		SELECT * FROM notes
		WHERE userId = $owner AND isArchived = false AND isTrashed = false
		ORDER BY createdAt DESC`

	return r.list(ctx, userID, query, nil)
}

func (r *NoteRepository) ListArchived(ctx context.Context, userID string) ([]note.Note, error) {
	const query = `
		SELECT * FROM notes
		WHERE userId = $owner AND isArchived = true
		ORDER BY createdAt DESC`

	return r.list(ctx, userID, query, nil)
}

func (r *NoteRepository) ListTrashed(ctx context.Context, userID string) ([]note.Note, error) {
	const query = `
		SELECT * FROM notes
		WHERE userId = $owner AND isTrashed = true
		ORDER BY createdAt DESC`

	return r.list(ctx, userID, query, nil)
}

func (r *NoteRepository) Search(ctx context.Context, userID, search string) ([]note.Note, error) {
	const query = `
		SELECT * FROM notes
		WHERE userId = $owner AND isTrashed = false
		AND (string::contains(string::lowercase(title), $query)
			OR string::contains(string::lowercase(content), $query))
		ORDER BY createdAt DESC`

	return r.list(ctx, userID, query, map[string]any{
		"query": strings.ToLower(search),
	})
}

func (r *NoteRepository) list(ctx context.Context, userID, query string, extra map[string]any) ([]note.Note, error) {
	params := map[string]any{
		"owner": models.RecordID{Table: usersTable, ID: userID},
	}
	for k, v := range extra {
		params[k] = v
	}

	result, err := surrealdb.Query[[]noteDoc](ctx, r.db, query, params)
	if err != nil {
		r.log.Error("failed to list notes", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list notes: %w", err)
	}

	notes := []note.Note{}
	if result != nil && len(*result) > 0 {
		for i := range (*result)[0].Result {
			notes = append(notes, (*result)[0].Result[i].toDomain())
		}
	}
	return notes, nil
}

