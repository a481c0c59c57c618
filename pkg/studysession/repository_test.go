package studysession

import (
	"context"
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

	err = db.AutoMigrate(&model.StudySession{})
	require.NoError(t, err)

	return db
}

func TestRepository_FindAllByGroup_OrderedByStart(t *testing.T) {
	db := newTestDatabase(t)
	repository := NewRepository(db)
	ctx := context.Background()

	base := time.Date(2024, 11, 12, 18, 0, 0, 0, time.UTC)
	later := &model.StudySession{GroupID: 1, UserID: 42, Title: "Review", StartsAt: base.Add(24 * time.Hour), EndsAt: base.Add(26 * time.Hour)}
	earlier := &model.StudySession{GroupID: 1, UserID: 7, Title: "Exam prep", StartsAt: base, EndsAt: base.Add(2 * time.Hour)}
	elsewhere := &model.StudySession{GroupID: 2, UserID: 42, Title: "Other", StartsAt: base, EndsAt: base.Add(time.Hour)}
	for _, session := range []*model.StudySession{later, earlier, elsewhere} {
		require.NoError(t, repository.create(ctx, session))
	}

	sessions, err := repository.findAllByGroup(ctx, 1)

	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "Exam prep", sessions[0].Title)
	assert.Equal(t, "Review", sessions[1].Title)
}

func TestRepository_Find_NotFound(t *testing.T) {
	db := newTestDatabase(t)
	repository := NewRepository(db)

	session, err := repository.find(context.Background(), 99)

	require.Error(t, err)
	assert.True(t, errdef.IsNotFound(err))
	assert.Nil(t, session)
}

func TestRepository_Delete(t *testing.T) {
	db := newTestDatabase(t)
	repository := NewRepository(db)
	ctx := context.Background()

	base := time.Now()
	session := &model.StudySession{GroupID: 1, UserID: 42, Title: "Exam prep", StartsAt: base, EndsAt: base.Add(time.Hour)}
	require.NoError(t, repository.create(ctx, session))
	require.NoError(t, repository.delete(ctx, session))

	_, err := repository.find(ctx, session.ID)
	require.Error(t, err)
	assert.True(t, errdef.IsNotFound(err))
}
