package message

import (
	"context"
	"log/slog"

	"github.com/studyhall-app/backend/pkg/model"
)

func NewService(logger *slog.Logger, groupService groupService, messageRepository messageRepository) *Service {
	return &Service{logger, groupService, messageRepository}
}

type groupService interface {
	RequireMember(ctx context.Context, groupId, userId uint) (*model.Membership, error)
}

type messageRepository interface {
	create(ctx context.Context, message *model.Message) error
	findAllByGroup(ctx context.Context, groupId uint) ([]model.Message, error)
}

type Service struct {
	logger            *slog.Logger
	groupService      groupService
	messageRepository messageRepository
}

// Post creates a message in the group. The repository takes care of
// notifying the other members.
func (s *Service) Post(ctx context.Context, groupId uint, user *model.User, body string) (*model.Message, error) {
	if _, err := s.groupService.RequireMember(ctx, groupId, user.ID); err != nil {
		return nil, err
	}

	message := &model.Message{
		GroupID: groupId,
		UserID:  user.ID,
		Body:    body,
	}
	err := s.messageRepository.create(ctx, message)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Message posted", "group", groupId, "message", message.ID)
	return message, nil
}

func (s *Service) FindAll(ctx context.Context, groupId uint, user *model.User) ([]model.Message, error) {
	if _, err := s.groupService.RequireMember(ctx, groupId, user.ID); err != nil {
		return nil, err
	}

	return s.messageRepository.findAllByGroup(ctx, groupId)
}
