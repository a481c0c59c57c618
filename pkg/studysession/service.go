package studysession

import (
	"context"
	"log/slog"
	"time"

	"github.com/studyhall-app/backend/internal/errdef"
	"github.com/studyhall-app/backend/pkg/model"
)

func NewService(logger *slog.Logger, groupService groupService, sessionRepository sessionRepository) *Service {
	return &Service{logger, groupService, sessionRepository}
}

type groupService interface {
	RequireMember(ctx context.Context, groupId, userId uint) (*model.Membership, error)
}

type sessionRepository interface {
	create(ctx context.Context, session *model.StudySession) error
	find(ctx context.Context, id uint) (*model.StudySession, error)
	findAllByGroup(ctx context.Context, groupId uint) ([]model.StudySession, error)
	delete(ctx context.Context, session *model.StudySession) error
}

type Service struct {
	logger            *slog.Logger
	groupService      groupService
	sessionRepository sessionRepository
}

func (s *Service) Schedule(ctx context.Context, groupId uint, user *model.User, title string, startsAt, endsAt time.Time) (*model.StudySession, error) {
	if _, err := s.groupService.RequireMember(ctx, groupId, user.ID); err != nil {
		return nil, err
	}

	if !endsAt.After(startsAt) {
		return nil, errdef.NewBadRequest("study session has to end after it starts")
	}

	session := &model.StudySession{
		GroupID:  groupId,
		UserID:   user.ID,
		Title:    title,
		StartsAt: startsAt,
		EndsAt:   endsAt,
	}
	err := s.sessionRepository.create(ctx, session)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Study session scheduled", "group", groupId, "session", session.ID)
	return session, nil
}

func (s *Service) FindAll(ctx context.Context, groupId uint, user *model.User) ([]model.StudySession, error) {
	if _, err := s.groupService.RequireMember(ctx, groupId, user.ID); err != nil {
		return nil, err
	}

	return s.sessionRepository.findAllByGroup(ctx, groupId)
}

// Cancel removes a session the user scheduled. A session in another group
// reads as not found, another member's session as forbidden.
func (s *Service) Cancel(ctx context.Context, groupId, sessionId uint, user *model.User) error {
	if _, err := s.groupService.RequireMember(ctx, groupId, user.ID); err != nil {
		return err
	}

	session, err := s.sessionRepository.find(ctx, sessionId)
	if err != nil {
		return err
	}

	if session.GroupID != groupId {
		return errdef.NewNotFound("study session %d doesn't exist", sessionId)
	}
	if session.UserID != user.ID {
		return errdef.NewForbidden("study session %d wasn't scheduled by user %d", sessionId, user.ID)
	}

	err = s.sessionRepository.delete(ctx, session)
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "Study session cancelled", "group", groupId, "session", sessionId)
	return nil
}
