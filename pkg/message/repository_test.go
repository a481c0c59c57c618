package message

import (
	"context"
	"testing"

	"github.com/studyhall-app/backend/internal/errdef"
	"github.com/studyhall-app/backend/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.User{},
		&model.StudyGroup{},
		&model.Membership{},
		&model.Message{},
		&model.Notification{},
	)
	require.NoError(t, err)

	return db
}

func seedGroup(t *testing.T, db *gorm.DB, name string, memberIds ...uint) *model.StudyGroup {
	t.Helper()
	group := &model.StudyGroup{Name: name, Subject: "biology"}
	require.NoError(t, db.Create(group).Error)
	for i, userId := range memberIds {
		role := model.RoleMember
		if i == 0 {
			role = model.RoleOwner
		}
		membership := &model.Membership{GroupID: group.ID, UserID: userId, Role: role}
		require.NoError(t, db.Create(membership).Error)
	}
	return group
}

func TestRepository_Create_NotifiesOtherMembers(t *testing.T) {
	db := newTestDatabase(t)
	repository := NewRepository(db)
	ctx := context.Background()
	group := seedGroup(t, db, "Biology", 42, 7, 8)

	message := &model.Message{GroupID: group.ID, UserID: 42, Body: "anyone up for flashcards?"}
	require.NoError(t, repository.create(ctx, message))
	assert.NotZero(t, message.ID)

	var notifications []model.Notification
	require.NoError(t, db.Order("user_id asc").Find(&notifications).Error)
	require.Len(t, notifications, 2)
	assert.Equal(t, uint(7), notifications[0].UserID)
	assert.Equal(t, uint(8), notifications[1].UserID)
	for _, notification := range notifications {
		assert.Equal(t, group.ID, notification.GroupID)
		assert.Equal(t, "New message in Biology", notification.Message)
		assert.Nil(t, notification.ReadAt)
	}
}

func TestRepository_Create_SoleMemberGetsNoNotification(t *testing.T) {
	db := newTestDatabase(t)
	repository := NewRepository(db)
	ctx := context.Background()
	group := seedGroup(t, db, "Biology", 42)

	message := &model.Message{GroupID: group.ID, UserID: 42, Body: "talking to myself"}
	require.NoError(t, repository.create(ctx, message))

	var count int64
	require.NoError(t, db.Model(&model.Notification{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestRepository_Create_GroupNotFound(t *testing.T) {
	db := newTestDatabase(t)
	repository := NewRepository(db)
	ctx := context.Background()

	message := &model.Message{GroupID: 99, UserID: 42, Body: "hello?"}
	err := repository.create(ctx, message)

	require.Error(t, err)
	assert.True(t, errdef.IsNotFound(err))

	var count int64
	require.NoError(t, db.Model(&model.Message{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestRepository_FindAllByGroup(t *testing.T) {
	db := newTestDatabase(t)
	repository := NewRepository(db)
	ctx := context.Background()
	group := seedGroup(t, db, "Biology", 42, 7)
	other := seedGroup(t, db, "Chemistry", 42)

	require.NoError(t, repository.create(ctx, &model.Message{GroupID: group.ID, UserID: 42, Body: "first"}))
	require.NoError(t, repository.create(ctx, &model.Message{GroupID: group.ID, UserID: 7, Body: "second"}))
	require.NoError(t, repository.create(ctx, &model.Message{GroupID: other.ID, UserID: 42, Body: "elsewhere"}))

	messages, err := repository.findAllByGroup(ctx, group.ID)

	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "first", messages[0].Body)
	assert.Equal(t, "second", messages[1].Body)
}
