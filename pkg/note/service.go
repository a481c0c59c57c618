package note

import (
	"context"
	"log/slog"

	"github.com/studyhall-app/backend/internal/errdef"
	"github.com/studyhall-app/backend/pkg/model"
)

func NewService(logger *slog.Logger, groupService groupService, noteRepository noteRepository) *Service {
	return &Service{logger, groupService, noteRepository}
}

type groupService interface {
	RequireMember(ctx context.Context, groupId, userId uint) (*model.Membership, error)
}

type noteRepository interface {
	create(ctx context.Context, note *model.Note) error
	find(ctx context.Context, id uint) (*model.Note, error)
	findAllByGroup(ctx context.Context, groupId uint) ([]model.Note, error)
	save(ctx context.Context, note *model.Note) error
	delete(ctx context.Context, note *model.Note) error
}

type Service struct {
	logger         *slog.Logger
	groupService   groupService
	noteRepository noteRepository
}

func (s *Service) Create(ctx context.Context, groupId uint, user *model.User, title, content string) (*model.Note, error) {
	if _, err := s.groupService.RequireMember(ctx, groupId, user.ID); err != nil {
		return nil, err
	}

	note := &model.Note{
		GroupID: groupId,
		UserID:  user.ID,
		Title:   title,
		Content: content,
	}
	err := s.noteRepository.create(ctx, note)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Note created", "group", groupId, "note", note.ID)
	return note, nil
}

func (s *Service) FindAll(ctx context.Context, groupId uint, user *model.User) ([]model.Note, error) {
	if _, err := s.groupService.RequireMember(ctx, groupId, user.ID); err != nil {
		return nil, err
	}

	return s.noteRepository.findAllByGroup(ctx, groupId)
}

func (s *Service) Update(ctx context.Context, groupId, noteId uint, user *model.User, title, content string) (*model.Note, error) {
	note, err := s.findOwn(ctx, groupId, noteId, user)
	if err != nil {
		return nil, err
	}

	note.Title = title
	note.Content = content
	err = s.noteRepository.save(ctx, note)
	if err != nil {
		return nil, err
	}

	return note, nil
}

func (s *Service) Delete(ctx context.Context, groupId, noteId uint, user *model.User) error {
	note, err := s.findOwn(ctx, groupId, noteId, user)
	if err != nil {
		return err
	}

	err = s.noteRepository.delete(ctx, note)
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "Note deleted", "group", groupId, "note", noteId)
	return nil
}

// findOwn resolves a note the user is allowed to modify. Notes are readable
// by every member but only the author can change or delete them. A note
// hanging off another group reads as not found, someone else's note in the
// group as forbidden.
func (s *Service) findOwn(ctx context.Context, groupId, noteId uint, user *model.User) (*model.Note, error) {
	if _, err := s.groupService.RequireMember(ctx, groupId, user.ID); err != nil {
		return nil, err
	}

	note, err := s.noteRepository.find(ctx, noteId)
	if err != nil {
		return nil, err
	}

	if note.GroupID != groupId {
		return nil, errdef.NewNotFound("note %d doesn't exist", noteId)
	}
	if note.UserID != user.ID {
		return nil, errdef.NewForbidden("note %d doesn't belong to user %d", noteId, user.ID)
	}

	return note, nil
}
