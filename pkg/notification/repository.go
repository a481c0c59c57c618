package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/studyhall-app/backend/internal/errdef"
	"github.com/studyhall-app/backend/pkg/model"

	"gorm.io/gorm"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(db *gorm.DB) *repository {
	return &repository{db: db}
}

type repository struct {
	db *gorm.DB
}

func (r repository) findAllByGroupAndUser(ctx context.Context, groupId, userId uint) ([]model.Notification, error) {
	var notifications []model.Notification
	err := r.db.
		WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupId, userId).
		Order("created_at desc").
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find notifications for user %d in group %d: %v", userId, groupId, err)
	}
	return notifications, nil
}

// delete removes a single notification scoped to its owner. Scoping the
// delete by group and user means a notification belonging to someone else
// is indistinguishable from one that never existed.
func (r repository) delete(ctx context.Context, notificationId, groupId, userId uint) error {
	// only use ctx for values (logging) and not cancellation signals on cud operations. ctx
	// cancellation can lead to rollbacks which we should decide individually.
	ctx = context.WithoutCancel(ctx)

	result := r.db.
		WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupId, userId).
		Delete(&model.Notification{}, notificationId)
	if result.Error != nil {
		return fmt.Errorf("failed to delete notification %d: %v", notificationId, result.Error)
	}
	if result.RowsAffected < 1 {
		return errdef.NewNotFound("notification %d doesn't exist", notificationId)
	}
	return nil
}

// markRead stamps read_at on the requested notifications in a single update.
// Ids that don't exist or belong to another user or group fall out of the
// where clause, the returned count only covers the caller's own rows.
func (r repository) markRead(ctx context.Context, groupId, userId uint, notificationIds []uint) (int64, error) {
	ctx = context.WithoutCancel(ctx)

	result := r.db.
		WithContext(ctx).
		Model(&model.Notification{}).
		Where("id IN ? AND group_id = ? AND user_id = ?", notificationIds, groupId, userId).
		Update("read_at", time.Now())
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark notifications as read: %v", result.Error)
	}
	return result.RowsAffected, nil
}

func (r repository) countUnread(ctx context.Context, groupId, userId uint) (int64, error) {
	var count int64
	err := r.db.
		WithContext(ctx).
		Model(&model.Notification{}).
		Where("group_id = ? AND user_id = ? AND read_at IS NULL", groupId, userId).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %v", err)
	}
	return count, nil
}
