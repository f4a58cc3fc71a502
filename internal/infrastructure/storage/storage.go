package storage

import (
	"notekeeper/internal/domain/note"
	"notekeeper/internal/domain/user"
)

// Store is the persistence backend behind the service. Two implementations
// exist: the SurrealDB document store (default) and Postgres.
type Store interface {
	Users() user.Repository
	Notes() note.Repository
	Close() error
}
