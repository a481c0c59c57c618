package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/studyhall-app/backend/internal/errdef"
	"github.com/studyhall-app/backend/pkg/model"

	"gorm.io/gorm"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(db *gorm.DB) *repository {
	return &repository{db}
}

type repository struct {
	db *gorm.DB
}

func (r repository) create(ctx context.Context, user *model.User) error {
	// only use ctx for values (logging) and not cancellation signals on cud operations. ctx
	// cancellation can lead to rollbacks which we should decide individually.
	ctx = context.WithoutCancel(ctx)

	err := r.db.WithContext(ctx).Create(&user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errdef.NewDuplicated("user %q already exists", user.Email)
	}

	return err
}

func (r repository) save(ctx context.Context, user *model.User) error {
	ctx = context.WithoutCancel(ctx)

	return r.db.WithContext(ctx).Save(&user).Error
}

func (r repository) findById(ctx context.Context, id uint) (*model.User, error) {
	var user *model.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("failed to find user with id %d", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %v", err)
	}
	return user, nil
}

func (r repository) findByEmail(ctx context.Context, email string) (*model.User, error) {
	var user *model.User
	err := r.db.
		WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("failed to find user with email %q", email)
	}
	return user, err
}

func (r repository) findByEmailToken(ctx context.Context, token uuid.UUID) (*model.User, error) {
	var user *model.User
	err := r.db.WithContext(ctx).First(&user, "email_token = ?", token.String()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("failed to find user with email token %q", token.String())
	}
	return user, err
}
