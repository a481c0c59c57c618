package group

import (
	"context"
	"log/slog"

	"github.com/studyhall-app/backend/internal/errdef"
	"github.com/studyhall-app/backend/pkg/model"
)

func NewService(logger *slog.Logger, groupRepository groupRepository) *Service {
	return &Service{
		logger:          logger,
		groupRepository: groupRepository,
	}
}

type groupRepository interface {
	create(ctx context.Context, group *model.StudyGroup, owner *model.User) error
	find(ctx context.Context, id uint) (*model.StudyGroup, error)
	findWithMembers(ctx context.Context, id uint) (*model.StudyGroup, error)
	findAllByUser(ctx context.Context, userId uint) ([]model.StudyGroup, error)
	findMembership(ctx context.Context, groupId, userId uint) (*model.Membership, error)
	createMembership(ctx context.Context, membership *model.Membership) error
	deleteMembership(ctx context.Context, membership *model.Membership) error
	delete(ctx context.Context, groupId uint) error
}

type Service struct {
	logger          *slog.Logger
	groupRepository groupRepository
}

// Create persists a new group with the creator as its one owner.
func (s Service) Create(ctx context.Context, name, subject string, private bool, owner *model.User) (*model.StudyGroup, error) {
	group := &model.StudyGroup{
		Name:    name,
		Subject: subject,
		Private: private,
	}

	err := s.groupRepository.create(ctx, group, owner)
	if err != nil {
		return nil, err
	}

	return group, nil
}

// Find returns the group with its members. Private groups are only visible to
// members; an existing private group probed by a non-member reads as
// forbidden, not as absent.
func (s Service) Find(ctx context.Context, groupId uint, user *model.User) (*model.StudyGroup, error) {
	group, err := s.groupRepository.findWithMembers(ctx, groupId)
	if err != nil {
		return nil, err
	}

	if group.Private {
		if _, err := s.groupRepository.findMembership(ctx, groupId, user.ID); err != nil {
			if errdef.IsNotFound(err) {
				return nil, errdef.NewForbidden("user %d is not a member of group %d", user.ID, groupId)
			}
			return nil, err
		}
	}

	return group, nil
}

// FindAll returns the groups the user is a member of.
func (s Service) FindAll(ctx context.Context, user *model.User) ([]model.StudyGroup, error) {
	return s.groupRepository.findAllByUser(ctx, user.ID)
}

// Join adds the user to the group with the member role. The returned
// membership carries the user's public profile.
func (s Service) Join(ctx context.Context, groupId uint, user *model.User) (*model.Membership, error) {
	group, err := s.groupRepository.find(ctx, groupId)
	if err != nil {
		return nil, err
	}

	if group.Private {
		return nil, errdef.NewForbidden("group %d is private", groupId)
	}

	_, err = s.groupRepository.findMembership(ctx, groupId, user.ID)
	if err == nil {
		return nil, errdef.NewDuplicated("user %d is already a member of group %d", user.ID, groupId)
	}
	if !errdef.IsNotFound(err) {
		return nil, err
	}

	membership := &model.Membership{
		GroupID: groupId,
		UserID:  user.ID,
		Role:    model.RoleMember,
	}
	// the unique index on (group_id, user_id) closes the race between the
	// check above and this insert
	err = s.groupRepository.createMembership(ctx, membership)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "User joined group", "group", groupId)
	return membership, nil
}

// Leave removes the caller's membership. The owner can never leave, a group
// without an owner would be unmanageable, so the only way out for an owner is
// deleting the group.
func (s Service) Leave(ctx context.Context, groupId uint, user *model.User) error {
	membership, err := s.groupRepository.findMembership(ctx, groupId, user.ID)
	if err != nil {
		if errdef.IsNotFound(err) {
			return errdef.NewForbidden("user %d is not a member of group %d", user.ID, groupId)
		}
		return err
	}

	if membership.IsOwner() {
		return errdef.NewForbidden("the owner cannot leave group %d, transfer is not supported so delete the group instead", groupId)
	}

	return s.groupRepository.deleteMembership(ctx, membership)
}

// Delete destroys the group and everything it owns. Owner only.
func (s Service) Delete(ctx context.Context, groupId uint, user *model.User) error {
	if _, err := s.RequireOwner(ctx, groupId, user.ID); err != nil {
		return err
	}

	err := s.groupRepository.delete(ctx, groupId)
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "Group deleted", "group", groupId)
	return nil
}

// RequireMember is the authorization guard consumed by the services operating
// inside a group. It answers whether the user holds any membership in the
// group, it never creates or mutates state. A missing group reads as not
// found, an existing group without a membership as forbidden.
func (s Service) RequireMember(ctx context.Context, groupId, userId uint) (*model.Membership, error) {
	membership, err := s.groupRepository.findMembership(ctx, groupId, userId)
	if err != nil {
		if errdef.IsNotFound(err) {
			if _, findErr := s.groupRepository.find(ctx, groupId); findErr != nil {
				return nil, findErr
			}
			return nil, errdef.NewForbidden("user %d is not a member of group %d", userId, groupId)
		}
		return nil, err
	}

	return membership, nil
}

// RequireOwner is the guard for lifecycle operations restricted to the owner.
func (s Service) RequireOwner(ctx context.Context, groupId, userId uint) (*model.Membership, error) {
	membership, err := s.RequireMember(ctx, groupId, userId)
	if err != nil {
		return nil, err
	}

	if !membership.IsOwner() {
		return nil, errdef.NewForbidden("user %d is not the owner of group %d", userId, groupId)
	}

	return membership, nil
}
