package note

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

func (r repository) create(ctx context.Context, note *model.Note) error {
	// only use ctx for values (logging) and not cancellation signals on cud operations. ctx
	// cancellation can lead to rollbacks which we should decide individually.
	ctx = context.WithoutCancel(ctx)

	err := r.db.WithContext(ctx).Create(note).Error
	if err != nil {
		return fmt.Errorf("failed to create note: %v", err)
	}
	return nil
}

func (r repository) find(ctx context.Context, id uint) (*model.Note, error) {
	var note model.Note
	err := r.db.WithContext(ctx).First(&note, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errdef.NewNotFound("note %d doesn't exist", id)
		}
		return nil, fmt.Errorf("failed to find note %d: %v", id, err)
	}
	return &note, nil
}

func (r repository) findAllByGroup(ctx context.Context, groupId uint) ([]model.Note, error) {
	var notes []model.Note
	err := r.db.
		WithContext(ctx).
		Where("group_id = ?", groupId).
		Order("updated_at desc").
		Find(&notes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find notes of group %d: %v", groupId, err)
	}
	return notes, nil
}

func (r repository) save(ctx context.Context, note *model.Note) error {
	ctx = context.WithoutCancel(ctx)

	err := r.db.WithContext(ctx).Save(note).Error
	if err != nil {
		return fmt.Errorf("failed to save note %d: %v", note.ID, err)
	}
	return nil
}

func (r repository) delete(ctx context.Context, note *model.Note) error {
	ctx = context.WithoutCancel(ctx)

	err := r.db.WithContext(ctx).Delete(note).Error
	if err != nil {
		return fmt.Errorf("failed to delete note %d: %v", note.ID, err)
	}
	return nil
}
