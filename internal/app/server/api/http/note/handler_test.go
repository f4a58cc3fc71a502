package note

import (
	"context"
	"errors"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"notekeeper/internal/app/server/api/http/middleware/auth"
	"notekeeper/internal/domain/note"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, userID string, fields note.Fields) (*note.Note, error) {
	args := m.Called(ctx, userID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*note.Note), args.Error(1)
}

func (m *MockService) ListActive(ctx context.Context, userID string) ([]note.Note, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]note.Note), args.Error(1)
}

func (m *MockService) ListArchived(ctx context.Context, userID string) ([]note.Note, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]note.Note), args.Error(1)
}

func (m *MockService) ListTrashed(ctx context.Context, userID string) ([]note.Note, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]note.Note), args.Error(1)
}

func (m *MockService) Search(ctx context.Context, userID, query string) ([]note.Note, error) {
	args := m.Called(ctx, userID, query)
	return args.Get(0).([]note.Note), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, userID, id string, fields note.Fields) (*note.Note, error) {
	args := m.Called(ctx, userID, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*note.Note), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func authedCtx(userID string) context.Context {
	return auth.WithUserID(context.Background(), userID)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func TestHandler_Create(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	input := &createInput{}
	input.Body.Title = "Shopping"
	input.Body.Tags = []string{"home"}

	svc.On("Create", mock.Anything, "u-1", mock.MatchedBy(func(f note.Fields) bool {
		return f.Title == "Shopping" && len(f.Tags) == 1
	})).Return(&note.Note{ID: "n-1", UserID: "u-1", Title: "Shopping"}, nil)

	resp, err := h.create(authedCtx("u-1"), input)

	require.NoError(t, err)
	assert.Equal(t, "n-1", resp.Body.ID)
	assert.Equal(t, "Shopping", resp.Body.Title)

	svc.AssertExpectations(t)
}

func TestHandler_Create_NoAuth(t *testing.T) {
	h := NewHandler(nil, slog.Default(), nil)

	input := &createInput{}
	input.Body.Title = "Shopping"

	resp, err := h.create(context.Background(), input)

	assert.Nil(t, resp)
	assert.Equal(t, 401, statusOf(t, err))
}

func TestHandler_Create_TooManyTags(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	input := &createInput{}
	input.Body.Title = "Shopping"

	svc.On("Create", mock.Anything, "u-1", mock.Anything).Return(nil, note.ErrTooManyTags)

	resp, err := h.create(authedCtx("u-1"), input)

	assert.Nil(t, resp)
	assert.Equal(t, 422, statusOf(t, err))
	assert.Contains(t, err.Error(), "tags array must not exceed 9 items")
}

func TestHandler_List(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	notes := []note.Note{{ID: "n-2"}, {ID: "n-1"}}
	svc.On("ListActive", mock.Anything, "u-1").Return(notes, nil)

	resp, err := h.list(authedCtx("u-1"), nil)

	require.NoError(t, err)
	assert.Equal(t, notes, resp.Body)
}

func TestHandler_ListArchiveAndTrash(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	archived := []note.Note{{ID: "n-1", IsArchived: true}}
	trashed := []note.Note{{ID: "n-2", IsTrashed: true}}
	svc.On("ListArchived", mock.Anything, "u-1").Return(archived, nil)
	svc.On("ListTrashed", mock.Anything, "u-1").Return(trashed, nil)

	resp, err := h.listArchive(authedCtx("u-1"), nil)
	require.NoError(t, err)
	assert.Equal(t, archived, resp.Body)

	resp, err = h.listTrash(authedCtx("u-1"), nil)
	require.NoError(t, err)
	assert.Equal(t, trashed, resp.Body)
}

func TestHandler_Search(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	found := []note.Note{{ID: "n-1", Title: "Test"}}
	svc.On("Search", mock.Anything, "u-1", "T").Return(found, nil)

	resp, err := h.search(authedCtx("u-1"), &searchInput{Query: "T"})

	require.NoError(t, err)
	assert.Equal(t, found, resp.Body)
}

func TestHandler_Update(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	input := &updateInput{ID: "n-1"}
	input.Body.Title = "Renamed"
	input.Body.IsArchived = true

	svc.On("Update", mock.Anything, "u-1", "n-1", mock.MatchedBy(func(f note.Fields) bool {
		return f.Title == "Renamed" && f.IsArchived
	})).Return(&note.Note{ID: "n-1", Title: "Renamed", IsArchived: true}, nil)

	resp, err := h.update(authedCtx("u-1"), input)

	require.NoError(t, err)
	assert.Equal(t, "Renamed", resp.Body.Title)
	assert.True(t, resp.Body.IsArchived)
}

func TestHandler_Update_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "not found",
			serviceErr: note.ErrNotFound,
			wantStatus: 404,
			wantMsg:    "Note not found",
		},
		{
			name:       "foreign note",
			serviceErr: note.ErrForbidden,
			wantStatus: 403,
			wantMsg:    "Forbidden",
		},
		{
			name:       "invalid data",
			serviceErr: note.ErrInvalidData,
			wantStatus: 422,
		},
		{
			name:       "storage failure",
			serviceErr: errors.New("connection refused"),
			wantStatus: 500,
			wantMsg:    "Server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			h := NewHandler(svc, slog.Default(), nil)

			input := &updateInput{ID: "n-1"}
			input.Body.Title = "x"

			svc.On("Update", mock.Anything, "u-1", "n-1", mock.Anything).Return(nil, tt.serviceErr)

			resp, err := h.update(authedCtx("u-1"), input)

			assert.Nil(t, resp)
			assert.Equal(t, tt.wantStatus, statusOf(t, err))
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
			// Внутренняя причина не утекает наружу
			if tt.wantStatus == 500 {
				assert.NotContains(t, err.Error(), "connection refused")
			}
		})
	}
}

func TestHandler_Delete(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	svc.On("Delete", mock.Anything, "u-1", "n-1").Return(nil)

	resp, err := h.delete(authedCtx("u-1"), &deleteInput{ID: "n-1"})

	require.NoError(t, err)
	assert.Equal(t, "Note removed", resp.Body.Message)
}

func TestHandler_Delete_NotFound(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	svc.On("Delete", mock.Anything, "u-1", "missing").Return(note.ErrNotFound)

	resp, err := h.delete(authedCtx("u-1"), &deleteInput{ID: "missing"})

	assert.Nil(t, resp)
	assert.Equal(t, 404, statusOf(t, err))
}
