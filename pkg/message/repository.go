package message

import (
	"context"
	"errors"
	"fmt"

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

// create stores the message and fans one unread notification out to every
// other member of the group. Both happen in a single transaction so a
// message can never exist without its notifications or the other way
// around.
func (r repository) create(ctx context.Context, message *model.Message) error {
	// only use ctx for values (logging) and not cancellation signals on cud operations. ctx
	// cancellation can lead to rollbacks which we should decide individually.
	ctx = context.WithoutCancel(ctx)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var group model.StudyGroup
		err := tx.First(&group, message.GroupID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errdef.NewNotFound("group %d doesn't exist", message.GroupID)
			}
			return fmt.Errorf("failed to find group %d: %v", message.GroupID, err)
		}

		err = tx.Create(message).Error
		if err != nil {
			return fmt.Errorf("failed to create message: %v", err)
		}

		var recipientIds []uint
		err = tx.
			Model(&model.Membership{}).
			Where("group_id = ? AND user_id <> ?", message.GroupID, message.UserID).
			Pluck("user_id", &recipientIds).Error
		if err != nil {
			return fmt.Errorf("failed to find members of group %d: %v", message.GroupID, err)
		}

		if len(recipientIds) == 0 {
			return nil
		}

		notifications := make([]model.Notification, 0, len(recipientIds))
		for _, recipientId := range recipientIds {
			notifications = append(notifications, model.Notification{
				GroupID: message.GroupID,
				UserID:  recipientId,
				Message: fmt.Sprintf("New message in %s", group.Name),
			})
		}

		err = tx.Create(&notifications).Error
		if err != nil {
			return fmt.Errorf("failed to create notifications: %v", err)
		}

		return nil
	})
}

func (r repository) findAllByGroup(ctx context.Context, groupId uint) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.
		WithContext(ctx).
		Where("group_id = ?", groupId).
		Order("created_at asc, id asc").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find messages of group %d: %v", groupId, err)
	}
	return messages, nil
}
