package notification

import (
	"context"
	"log/slog"

	"github.com/studyhall-app/backend/pkg/model"
)

func NewService(logger *slog.Logger, groupService groupService, notificationRepository notificationRepository) *Service {
	return &Service{logger, groupService, notificationRepository}
}

type groupService interface {
	RequireMember(ctx context.Context, groupId, userId uint) (*model.Membership, error)
}

type notificationRepository interface {
	findAllByGroupAndUser(ctx context.Context, groupId, userId uint) ([]model.Notification, error)
	delete(ctx context.Context, notificationId, groupId, userId uint) error
	markRead(ctx context.Context, groupId, userId uint, notificationIds []uint) (int64, error)
	countUnread(ctx context.Context, groupId, userId uint) (int64, error)
}

type Service struct {
	logger                 *slog.Logger
	groupService           groupService
	notificationRepository notificationRepository
}

func (s *Service) FindAll(ctx context.Context, groupId uint, user *model.User) ([]model.Notification, error) {
	if _, err := s.groupService.RequireMember(ctx, groupId, user.ID); err != nil {
		return nil, err
	}

	return s.notificationRepository.findAllByGroupAndUser(ctx, groupId, user.ID)
}

func (s *Service) Delete(ctx context.Context, groupId, notificationId uint, user *model.User) error {
	if _, err := s.groupService.RequireMember(ctx, groupId, user.ID); err != nil {
		return err
	}

	err := s.notificationRepository.delete(ctx, notificationId, groupId, user.ID)
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "Notification deleted", "notification", notificationId, "group", groupId)
	return nil
}

// MarkRead marks the given notifications as read and reports how many rows
// were actually touched. Ids outside the caller's own notifications in the
// group don't count.
func (s *Service) MarkRead(ctx context.Context, groupId uint, user *model.User, notificationIds []uint) (int64, error) {
	if _, err := s.groupService.RequireMember(ctx, groupId, user.ID); err != nil {
		return 0, err
	}

	count, err := s.notificationRepository.markRead(ctx, groupId, user.ID, notificationIds)
	if err != nil {
		return 0, err
	}

	s.logger.InfoContext(ctx, "Notifications marked as read", "group", groupId, "count", count)
	return count, nil
}

func (s *Service) CountUnread(ctx context.Context, groupId uint, user *model.User) (int64, error) {
	if _, err := s.groupService.RequireMember(ctx, groupId, user.ID); err != nil {
		return 0, err
	}

	return s.notificationRepository.countUnread(ctx, groupId, user.ID)
}
