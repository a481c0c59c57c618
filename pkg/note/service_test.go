package note

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/studyhall-app/backend/internal/errdef"
	"github.com/studyhall-app/backend/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(groupService groupService, repository noteRepository) *Service {
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), groupService, repository)
}

func newMemberGroupService(groupId, userId uint) *mockGroupService {
	groupService := &mockGroupService{}
	groupService.
		On("RequireMember", groupId, userId).
		Return(&model.Membership{GroupID: groupId, UserID: userId, Role: model.RoleMember}, nil)
	return groupService
}

func TestService_Create(t *testing.T) {
	repository := &mockNoteRepository{}
	repository.
		On("create", mock.MatchedBy(func(n *model.Note) bool {
			return n.GroupID == 1 && n.UserID == 42 && n.Title == "Mitosis"
		})).
		Return(nil)
	service := newTestService(newMemberGroupService(1, 42), repository)

	note, err := service.Create(context.Background(), 1, &model.User{ID: 42}, "Mitosis", "phases of mitosis...")

	require.NoError(t, err)
	assert.Equal(t, uint(42), note.UserID)
	repository.AssertExpectations(t)
}

func TestService_Create_NotAMember(t *testing.T) {
	groupService := &mockGroupService{}
	groupService.
		On("RequireMember", uint(1), uint(42)).
		Return(nil, errdef.NewForbidden("user 42 is not a member of group 1"))
	repository := &mockNoteRepository{}
	service := newTestService(groupService, repository)

	note, err := service.Create(context.Background(), 1, &model.User{ID: 42}, "Mitosis", "...")

	require.Error(t, err)
	assert.True(t, errdef.IsForbidden(err))
	assert.Nil(t, note)
	repository.AssertNotCalled(t, "create", mock.Anything)
}

func TestService_Update(t *testing.T) {
	repository := &mockNoteRepository{}
	repository.
		On("find", uint(9)).
		Return(&model.Note{ID: 9, GroupID: 1, UserID: 42, Title: "Mitosis", Content: "old"}, nil)
	repository.
		On("save", mock.MatchedBy(func(n *model.Note) bool {
			return n.ID == 9 && n.Title == "Meiosis" && n.Content == "new"
		})).
		Return(nil)
	service := newTestService(newMemberGroupService(1, 42), repository)

	note, err := service.Update(context.Background(), 1, 9, &model.User{ID: 42}, "Meiosis", "new")

	require.NoError(t, err)
	assert.Equal(t, "Meiosis", note.Title)
	repository.AssertExpectations(t)
}

func TestService_Update_SomeoneElsesNote(t *testing.T) {
	repository := &mockNoteRepository{}
	repository.
		On("find", uint(9)).
		Return(&model.Note{ID: 9, GroupID: 1, UserID: 7}, nil)
	service := newTestService(newMemberGroupService(1, 42), repository)

	note, err := service.Update(context.Background(), 1, 9, &model.User{ID: 42}, "Meiosis", "new")

	require.Error(t, err)
	assert.True(t, errdef.IsForbidden(err))
	assert.Nil(t, note)
	repository.AssertNotCalled(t, "save", mock.Anything)
}

func TestService_Update_NoteInAnotherGroup(t *testing.T) {
	repository := &mockNoteRepository{}
	repository.
		On("find", uint(9)).
		Return(&model.Note{ID: 9, GroupID: 2, UserID: 42}, nil)
	service := newTestService(newMemberGroupService(1, 42), repository)

	note, err := service.Update(context.Background(), 1, 9, &model.User{ID: 42}, "Meiosis", "new")

	require.Error(t, err)
	assert.True(t, errdef.IsNotFound(err))
	assert.Nil(t, note)
}

func TestService_Delete(t *testing.T) {
	note := &model.Note{ID: 9, GroupID: 1, UserID: 42}
	repository := &mockNoteRepository{}
	repository.
		On("find", uint(9)).
		Return(note, nil)
	repository.
		On("delete", note).
		Return(nil)
	service := newTestService(newMemberGroupService(1, 42), repository)

	err := service.Delete(context.Background(), 1, 9, &model.User{ID: 42})

	require.NoError(t, err)
	repository.AssertExpectations(t)
}

func TestService_Delete_SomeoneElsesNote(t *testing.T) {
	repository := &mockNoteRepository{}
	repository.
		On("find", uint(9)).
		Return(&model.Note{ID: 9, GroupID: 1, UserID: 7}, nil)
	service := newTestService(newMemberGroupService(1, 42), repository)

	err := service.Delete(context.Background(), 1, 9, &model.User{ID: 42})

	require.Error(t, err)
	assert.True(t, errdef.IsForbidden(err))
	repository.AssertNotCalled(t, "delete", mock.Anything)
}

type mockGroupService struct{ mock.Mock }

func (m *mockGroupService) RequireMember(_ context.Context, groupId, userId uint) (*model.Membership, error) {
	called := m.Called(groupId, userId)
	membership, _ := called.Get(0).(*model.Membership)
	return membership, called.Error(1)
}

type mockNoteRepository struct{ mock.Mock }

func (m *mockNoteRepository) create(_ context.Context, note *model.Note) error {
	called := m.Called(note)
	return called.Error(0)
}

func (m *mockNoteRepository) find(_ context.Context, id uint) (*model.Note, error) {
	called := m.Called(id)
	note, _ := called.Get(0).(*model.Note)
	return note, called.Error(1)
}

func (m *mockNoteRepository) findAllByGroup(_ context.Context, groupId uint) ([]model.Note, error) {
	called := m.Called(groupId)
	notes, _ := called.Get(0).([]model.Note)
	return notes, called.Error(1)
}

func (m *mockNoteRepository) save(_ context.Context, note *model.Note) error {
	called := m.Called(note)
	return called.Error(0)
}

func (m *mockNoteRepository) delete(_ context.Context, note *model.Note) error {
	called := m.Called(note)
	return called.Error(0)
}
