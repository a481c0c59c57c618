package notification

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

func newTestService(groupService groupService, repository notificationRepository) *Service {
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), groupService, repository)
}

func TestService_Delete(t *testing.T) {
	groupService := &mockGroupService{}
	groupService.
		On("RequireMember", uint(1), uint(42)).
		Return(&model.Membership{GroupID: 1, UserID: 42, Role: model.RoleMember}, nil)
	repository := &mockNotificationRepository{}
	repository.
		On("delete", uint(9), uint(1), uint(42)).
		Return(nil)
	service := newTestService(groupService, repository)

	err := service.Delete(context.Background(), 1, 9, &model.User{ID: 42})

	require.NoError(t, err)
	repository.AssertExpectations(t)
}

func TestService_Delete_NotAMember(t *testing.T) {
	groupService := &mockGroupService{}
	groupService.
		On("RequireMember", uint(1), uint(42)).
		Return(nil, errdef.NewForbidden("user 42 is not a member of group 1"))
	repository := &mockNotificationRepository{}
	service := newTestService(groupService, repository)

	err := service.Delete(context.Background(), 1, 9, &model.User{ID: 42})

	require.Error(t, err)
	assert.True(t, errdef.IsForbidden(err))
	repository.AssertNotCalled(t, "delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Delete_NotificationNotFound(t *testing.T) {
	groupService := &mockGroupService{}
	groupService.
		On("RequireMember", uint(1), uint(42)).
		Return(&model.Membership{GroupID: 1, UserID: 42, Role: model.RoleMember}, nil)
	repository := &mockNotificationRepository{}
	repository.
		On("delete", uint(9), uint(1), uint(42)).
		Return(errdef.NewNotFound("notification 9 doesn't exist"))
	service := newTestService(groupService, repository)

	err := service.Delete(context.Background(), 1, 9, &model.User{ID: 42})

	require.Error(t, err)
	assert.True(t, errdef.IsNotFound(err))
}

func TestService_MarkRead(t *testing.T) {
	groupService := &mockGroupService{}
	groupService.
		On("RequireMember", uint(1), uint(42)).
		Return(&model.Membership{GroupID: 1, UserID: 42, Role: model.RoleMember}, nil)
	repository := &mockNotificationRepository{}
	repository.
		On("markRead", uint(1), uint(42), []uint{3, 4, 5}).
		Return(int64(2), nil)
	service := newTestService(groupService, repository)

	count, err := service.MarkRead(context.Background(), 1, &model.User{ID: 42}, []uint{3, 4, 5})

	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestService_MarkRead_GroupNotFound(t *testing.T) {
	groupService := &mockGroupService{}
	groupService.
		On("RequireMember", uint(1), uint(42)).
		Return(nil, errdef.NewNotFound("group 1 doesn't exist"))
	repository := &mockNotificationRepository{}
	service := newTestService(groupService, repository)

	_, err := service.MarkRead(context.Background(), 1, &model.User{ID: 42}, []uint{3})

	require.Error(t, err)
	assert.True(t, errdef.IsNotFound(err))
	repository.AssertNotCalled(t, "markRead", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_CountUnread(t *testing.T) {
	groupService := &mockGroupService{}
	groupService.
		On("RequireMember", uint(1), uint(42)).
		Return(&model.Membership{GroupID: 1, UserID: 42, Role: model.RoleMember}, nil)
	repository := &mockNotificationRepository{}
	repository.
		On("countUnread", uint(1), uint(42)).
		Return(int64(3), nil)
	service := newTestService(groupService, repository)

	count, err := service.CountUnread(context.Background(), 1, &model.User{ID: 42})

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestService_FindAll_NotAMember(t *testing.T) {
	groupService := &mockGroupService{}
	groupService.
		On("RequireMember", uint(1), uint(42)).
		Return(nil, errdef.NewForbidden("user 42 is not a member of group 1"))
	repository := &mockNotificationRepository{}
	service := newTestService(groupService, repository)

	notifications, err := service.FindAll(context.Background(), 1, &model.User{ID: 42})

	require.Error(t, err)
	assert.True(t, errdef.IsForbidden(err))
	assert.Nil(t, notifications)
}

type mockGroupService struct{ mock.Mock }

func (m *mockGroupService) RequireMember(_ context.Context, groupId, userId uint) (*model.Membership, error) {
	called := m.Called(groupId, userId)
	membership, _ := called.Get(0).(*model.Membership)
	return membership, called.Error(1)
}

type mockNotificationRepository struct{ mock.Mock }

func (m *mockNotificationRepository) findAllByGroupAndUser(_ context.Context, groupId, userId uint) ([]model.Notification, error) {
	called := m.Called(groupId, userId)
	notifications, _ := called.Get(0).([]model.Notification)
	return notifications, called.Error(1)
}

func (m *mockNotificationRepository) delete(_ context.Context, notificationId, groupId, userId uint) error {
	called := m.Called(notificationId, groupId, userId)
	return called.Error(0)
}

func (m *mockNotificationRepository) markRead(_ context.Context, groupId, userId uint, notificationIds []uint) (int64, error) {
	called := m.Called(groupId, userId, notificationIds)
	return called.Get(0).(int64), called.Error(1)
}

func (m *mockNotificationRepository) countUnread(_ context.Context, groupId, userId uint) (int64, error) {
	called := m.Called(groupId, userId)
	return called.Get(0).(int64), called.Error(1)
}
