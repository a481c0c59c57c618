package group

import (
	"context"
	"errors"
	"fmt"

	"github.com/studyhall-app/backend/internal/errdef"
	"github.com/studyhall-app/backend/pkg/model"

	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(db *gorm.DB) *repository {
	return &repository{
		db: db,
	}
}

func (r repository) find(ctx context.Context, id uint) (*model.StudyGroup, error) {
	var group *model.StudyGroup
	err := r.db.
		WithContext(ctx).
		First(&group, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("group %d doesn't exist", id)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to find group: %v", err)
	}

	return group, nil
}

func (r repository) findWithMembers(ctx context.Context, id uint) (*model.StudyGroup, error) {
	var group *model.StudyGroup
	err := r.db.
		WithContext(ctx).
		Preload("Memberships.User").
		First(&group, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("group %d doesn't exist", id)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to find group with members: %v", err)
	}

	return group, nil
}

func (r repository) findAllByUser(ctx context.Context, userId uint) ([]model.StudyGroup, error) {
	var groups []model.StudyGroup
	err := r.db.
		WithContext(ctx).
		Joins("JOIN memberships ON memberships.group_id = study_groups.id").
		Where("memberships.user_id = ?", userId).
		Order("study_groups.updated_at desc").
		Find(&groups).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find groups of user %d: %v", userId, err)
	}
	return groups, nil
}

// create persists the group and its owner membership in one transaction, so a
// group can never exist without exactly one owner.
func (r repository) create(ctx context.Context, group *model.StudyGroup, owner *model.User) error {
	// only use ctx for values (logging) and not cancellation signals on cud operations. ctx
	// cancellation can lead to rollbacks which we should decide individually.
	ctx = context.WithoutCancel(ctx)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&group).Error; err != nil {
			return err
		}

		membership := &model.Membership{
			GroupID: group.ID,
			UserID:  owner.ID,
			Role:    model.RoleOwner,
		}
		if err := tx.Create(membership).Error; err != nil {
			return err
		}

		group.Memberships = []model.Membership{*membership}
		return nil
	})
}

func (r repository) findMembership(ctx context.Context, groupId, userId uint) (*model.Membership, error) {
	var membership *model.Membership
	err := r.db.
		WithContext(ctx).
		Preload("User").
		Where("group_id = ? AND user_id = ?", groupId, userId).
		First(&membership).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("user %d is not a member of group %d", userId, groupId)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to find membership: %v", err)
	}

	return membership, nil
}

// createMembership inserts the membership row. The composite unique index on
// (group_id, user_id) guarantees that concurrent joins cannot produce
// duplicates, one of them loses and gets a duplicated error.
func (r repository) createMembership(ctx context.Context, membership *model.Membership) error {
	ctx = context.WithoutCancel(ctx)

	err := r.db.WithContext(ctx).Create(&membership).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errdef.NewDuplicated("user %d is already a member of group %d", membership.UserID, membership.GroupID)
	}
	if err != nil {
		return err
	}

	return r.db.
		WithContext(ctx).
		Preload("User").
		First(&membership, membership.ID).Error
}

func (r repository) deleteMembership(ctx context.Context, membership *model.Membership) error {
	ctx = context.WithoutCancel(ctx)

	return r.db.WithContext(ctx).Delete(&model.Membership{}, membership.ID).Error
}

// delete removes every record owned by the group and the group itself in a
// single transaction. A concurrent reader either still sees the complete
// group or none of it.
func (r repository) delete(ctx context.Context, groupId uint) error {
	ctx = context.WithoutCancel(ctx)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned := []any{
			&model.Message{},
			&model.Note{},
			&model.StudySession{},
			&model.Notification{},
			&model.Membership{},
		}
		for _, records := range owned {
			if err := tx.Where("group_id = ?", groupId).Delete(records).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&model.StudyGroup{}, groupId)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errdef.NewNotFound("group %d doesn't exist", groupId)
		}
		return nil
	})
}
