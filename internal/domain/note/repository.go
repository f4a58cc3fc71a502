package note

import (
	"context"
)

// Repository persists notes. List and search results are ordered by creation
// time descending; filtering, ordering and pattern matching are pushed down
// to the store.
type Repository interface {
	Create(ctx context.Context, n *Note) (*Note, error)

	// Get loads a note by id regardless of owner, so the caller can tell
	// a missing note from a foreign one.
	Get(ctx context.Context, id string) (*Note, error)

	// Update replaces the stored note, conditional on ownership: no note
	// matches id+owner -> ErrNotFound.
	Update(ctx context.Context, n *Note) (*Note, error)

	// Delete removes the note, conditional on ownership.
	Delete(ctx context.Context, userID, id string) error

	ListActive(ctx context.Context, userID string) ([]Note, error)
	ListArchived(ctx context.Context, userID string) ([]Note, error)
	ListTrashed(ctx context.Context, userID string) ([]Note, error)

	// Search matches query case-insensitively against title and content of
	// the owner's non-trashed notes.
	Search(ctx context.Context, userID, query string) ([]Note, error)
}
