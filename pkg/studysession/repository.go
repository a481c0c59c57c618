package studysession

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

func (r repository) create(ctx context.Context, session *model.StudySession) error {
	// only use ctx for values (logging) and not cancellation signals on cud operations. ctx
	// cancellation can lead to rollbacks which we should decide individually.
	ctx = context.WithoutCancel(ctx)

	err := r.db.WithContext(ctx).Create(session).Error
	if err != nil {
		return fmt.Errorf("failed to create study session: %v", err)
	}
	return nil
}

func (r repository) find(ctx context.Context, id uint) (*model.StudySession, error) {
	var session model.StudySession
	err := r.db.WithContext(ctx).First(&session, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errdef.NewNotFound("study session %d doesn't exist", id)
		}
		return nil, fmt.Errorf("failed to find study session %d: %v", id, err)
	}
	return &session, nil
}

func (r repository) findAllByGroup(ctx context.Context, groupId uint) ([]model.StudySession, error) {
	var sessions []model.StudySession
	err := r.db.
		WithContext(ctx).
		Where("group_id = ?", groupId).
		Order("starts_at asc").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find study sessions of group %d: %v", groupId, err)
	}
	return sessions, nil
}

func (r repository) delete(ctx context.Context, session *model.StudySession) error {
	ctx = context.WithoutCancel(ctx)

	err := r.db.WithContext(ctx).Delete(session).Error
	if err != nil {
		return fmt.Errorf("failed to delete study session %d: %v", session.ID, err)
	}
	return nil
}
