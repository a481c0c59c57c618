package group

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

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
		&model.Note{},
		&model.StudySession{},
		&model.Notification{},
	)
	require.NoError(t, err)

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user := &model.User{Email: email, Name: email, Validated: true}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestRepository_Create_OwnerMembership(t *testing.T) {
	db := newTestDatabase(t)
	repository := NewRepository(db)
	owner := seedUser(t, db, "owner@studyhall.dev")
	ctx := context.Background()

	group := &model.StudyGroup{Name: "Biology", Subject: "biology"}
	require.NoError(t, repository.create(ctx, group, owner))

	var memberships []model.Membership
	require.NoError(t, db.Where("group_id = ?", group.ID).Find(&memberships).Error)
	require.Len(t, memberships, 1)
	assert.Equal(t, owner.ID, memberships[0].UserID)
	assert.Equal(t, model.RoleOwner, memberships[0].Role)
}

func TestRepository_CreateMembership_DuplicateRejectedByUniqueIndex(t *testing.T) {
	db := newTestDatabase(t)
	repository := NewRepository(db)
	owner := seedUser(t, db, "owner@studyhall.dev")
	member := seedUser(t, db, "member@studyhall.dev")
	ctx := context.Background()

	group := &model.StudyGroup{Name: "Biology", Subject: "biology"}
	require.NoError(t, repository.create(ctx, group, owner))

	first := &model.Membership{GroupID: group.ID, UserID: member.ID, Role: model.RoleMember}
	require.NoError(t, repository.createMembership(ctx, first))
	assert.Equal(t, member.Email, first.User.Email, "created membership must carry the user profile")

	second := &model.Membership{GroupID: group.ID, UserID: member.ID, Role: model.RoleMember}
	err := repository.createMembership(ctx, second)
	require.Error(t, err)
	assert.True(t, errdef.IsDuplicated(err))

	var count int64
	require.NoError(t, db.Model(&model.Membership{}).Where("group_id = ? AND user_id = ?", group.ID, member.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count, "exactly one membership row must exist")
}

func TestRepository_Delete_CascadesToEverythingOwned(t *testing.T) {
	db := newTestDatabase(t)
	repository := NewRepository(db)
	owner := seedUser(t, db, "owner@studyhall.dev")
	member := seedUser(t, db, "member@studyhall.dev")
	ctx := context.Background()

	group := &model.StudyGroup{Name: "Biology", Subject: "biology"}
	require.NoError(t, repository.create(ctx, group, owner))
	require.NoError(t, repository.createMembership(ctx, &model.Membership{GroupID: group.ID, UserID: member.ID, Role: model.RoleMember}))

	other := &model.StudyGroup{Name: "Chemistry", Subject: "chemistry"}
	require.NoError(t, repository.create(ctx, other, owner))

	now := time.Now()
	require.NoError(t, db.Create(&model.Message{GroupID: group.ID, UserID: owner.ID, Body: "hello"}).Error)
	require.NoError(t, db.Create(&model.Note{GroupID: group.ID, UserID: owner.ID, Title: "Cells", Content: "..."}).Error)
	require.NoError(t, db.Create(&model.StudySession{GroupID: group.ID, UserID: owner.ID, Title: "Exam prep", StartsAt: now, EndsAt: now.Add(time.Hour)}).Error)
	require.NoError(t, db.Create(&model.Notification{GroupID: group.ID, UserID: member.ID, Message: "New message in Biology"}).Error)
	require.NoError(t, db.Create(&model.Message{GroupID: other.ID, UserID: owner.ID, Body: "unrelated"}).Error)

	require.NoError(t, repository.delete(ctx, group.ID))

	for _, records := range []any{&model.Message{}, &model.Note{}, &model.StudySession{}, &model.Notification{}, &model.Membership{}} {
		var count int64
		require.NoError(t, db.Model(records).Where("group_id = ?", group.ID).Count(&count).Error)
		assert.Equal(t, int64(0), count, "no records of %T may survive the group", records)
	}

	_, err := repository.find(ctx, group.ID)
	require.Error(t, err)
	assert.True(t, errdef.IsNotFound(err))

	var unrelated int64
	require.NoError(t, db.Model(&model.Message{}).Where("group_id = ?", other.ID).Count(&unrelated).Error)
	assert.Equal(t, int64(1), unrelated, "other groups must be untouched")
}

func TestRepository_Delete_UnknownGroup(t *testing.T) {
	db := newTestDatabase(t)
	repository := NewRepository(db)

	err := repository.delete(context.Background(), 12345)

	require.Error(t, err)
	assert.True(t, errdef.IsNotFound(err))
}

func TestRepository_FindAllByUser(t *testing.T) {
	db := newTestDatabase(t)
	repository := NewRepository(db)
	owner := seedUser(t, db, "owner@studyhall.dev")
	member := seedUser(t, db, "member@studyhall.dev")
	ctx := context.Background()

	biology := &model.StudyGroup{Name: "Biology", Subject: "biology"}
	require.NoError(t, repository.create(ctx, biology, owner))
	chemistry := &model.StudyGroup{Name: "Chemistry", Subject: "chemistry"}
	require.NoError(t, repository.create(ctx, chemistry, member))

	groups, err := repository.findAllByUser(ctx, owner.ID)

	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Biology", groups[0].Name)
}

// TestGroupLifecycle runs the full journey against the real store: the owner
// creates a group, a member joins and leaves, the owner deletes the group and
// any further join sees it as gone.
func TestGroupLifecycle(t *testing.T) {
	db := newTestDatabase(t)
	service := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), NewRepository(db))
	userA := seedUser(t, db, "a@studyhall.dev")
	userB := seedUser(t, db, "b@studyhall.dev")
	ctx := context.Background()

	group, err := service.Create(ctx, "Biology", "biology", false, userA)
	require.NoError(t, err)

	membership, err := service.Join(ctx, group.ID, userB)
	require.NoError(t, err)
	assert.Equal(t, model.RoleMember, membership.Role)
	assert.Equal(t, userB.Email, membership.User.Email)

	require.NoError(t, service.Leave(ctx, group.ID, userB))
	_, err = service.RequireMember(ctx, group.ID, userB.ID)
	assert.True(t, errdef.IsForbidden(err))

	require.NoError(t, service.Delete(ctx, group.ID, userA))

	_, err = service.Join(ctx, group.ID, userB)
	require.Error(t, err)
	assert.True(t, errdef.IsNotFound(err))
}
