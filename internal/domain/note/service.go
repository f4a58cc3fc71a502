package note

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Create(ctx context.Context, userID string, fields Fields) (*Note, error)
	ListActive(ctx context.Context, userID string) ([]Note, error)
	ListArchived(ctx context.Context, userID string) ([]Note, error)
	ListTrashed(ctx context.Context, userID string) ([]Note, error)
	Search(ctx context.Context, userID, query string) ([]Note, error)
	Update(ctx context.Context, userID, id string, fields Fields) (*Note, error)
	Delete(ctx context.Context, userID, id string) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "note_service"),
	}
}

func validateFields(fields *Fields) error {
	if strings.TrimSpace(fields.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidData)
	}
	if len(fields.Tags) > MaxTags {
		return ErrTooManyTags
	}

	// Значения по умолчанию.
	if fields.Tags == nil {
		fields.Tags = []string{}
	}
	if fields.BackgroundColor == "" {
		fields.BackgroundColor = DefaultBackgroundColor
	}

	return nil
}

func (s *Service) Create(ctx context.Context, userID string, fields Fields) (*Note, error) {
	if err := validateFields(&fields); err != nil {
		return nil, err
	}

	now := time.Now()
	n := &Note{
		UserID:          userID,
		Title:           fields.Title,
		Content:         fields.Content,
		Tags:            fields.Tags,
		BackgroundColor: fields.BackgroundColor,
		IsArchived:      fields.IsArchived,
		IsTrashed:       fields.IsTrashed,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.repo.Create(ctx, n)
	if err != nil {
		s.log.Error("failed to create note", "user_id", userID, "error", err)
		return nil, fmt.Errorf("create note: %w", err)
	}

	s.log.Info("note created", "note_id", created.ID, "user_id", userID)
	return created, nil
}

func (s *Service) ListActive(ctx context.Context, userID string) ([]Note, error) {
	notes, err := s.repo.ListActive(ctx, userID)
	if err != nil {
		s.log.Error("failed to list notes", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// ListArchived намеренно не исключает удаленные заметки:
// архивный флаг и корзина независимы.
func (s *Service) ListArchived(ctx context.Context, userID string) ([]Note, error) {
	notes, err := s.repo.ListArchived(ctx, userID)
	if err != nil {
		s.log.Error("failed to list archived notes", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list archived notes: %w", err)
	}
	return notes, nil
}

func (s *Service) ListTrashed(ctx context.Context, userID string) ([]Note, error) {
	notes, err := s.repo.ListTrashed(ctx, userID)
	if err != nil {
		s.log.Error("failed to list trashed notes", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list trashed notes: %w", err)
	}
	return notes, nil
}

func (s *Service) Search(ctx context.Context, userID, query string) ([]Note, error) {
	notes, err := s.repo.Search(ctx, userID, query)
	if err != nil {
		s.log.Error("failed to search notes", "user_id", userID, "error", err)
		return nil, fmt.Errorf("search notes: %w", err)
	}
	return notes, nil
}

// Update replaces every user-controlled field with the supplied values
// (full replace, not a merge) and bumps UpdatedAt. The ownership check
// happens twice: once here to distinguish NotFound from Forbidden, and
// once inside the repository write itself.
func (s *Service) Update(ctx context.Context, userID, id string, fields Fields) (*Note, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.UserID != userID {
		return nil, ErrForbidden
	}

	if err := validateFields(&fields); err != nil {
		return nil, err
	}

	n := &Note{
		ID:              current.ID,
		UserID:          current.UserID,
		Title:           fields.Title,
		Content:         fields.Content,
		Tags:            fields.Tags,
		BackgroundColor: fields.BackgroundColor,
		IsArchived:      fields.IsArchived,
		IsTrashed:       fields.IsTrashed,
		CreatedAt:       current.CreatedAt,
		UpdatedAt:       time.Now(),
	}

	updated, err := s.repo.Update(ctx, n)
	if err != nil {
		s.log.Error("failed to update note", "note_id", id, "user_id", userID, "error", err)
		return nil, err
	}

	s.log.Info("note updated", "note_id", id, "user_id", userID)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if current.UserID != userID {
		return ErrForbidden
	}

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		s.log.Error("failed to delete note", "note_id", id, "user_id", userID, "error", err)
		return fmt.Errorf("delete note: %w", err)
	}

	s.log.Info("note deleted", "note_id", id, "user_id", userID)
	return nil
}
