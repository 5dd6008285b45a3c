package service

import (
	"testing"

	"thaimusic_backend/internal/model"
	"thaimusic_backend/internal/repository"
	"thaimusic_backend/internal/testutil"
	"thaimusic_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUnlockService(t *testing.T) (*UnlockService, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	svc := NewUnlockService(
		repository.NewUserUnlockRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewUserAnswerRepository(db),
		repository.NewTestCatalogRepository(db),
		repository.NewUserRepository(db),
	)
	return svc, db
}

func TestTierStatus(t *testing.T) {
	svc, db := newUnlockService(t)

	lto := &model.LevelTestOne{InstrumentID: 3, Name: "Khaen level test"}
	require.NoError(t, db.Create(lto).Error)
	q1 := seedChoiceQuestion(t, db, func(q *model.Question) { q.LevelTestOneID = &lto.ID }, "Khaen")
	q2 := seedChoiceQuestion(t, db, func(q *model.Question) { q.LevelTestOneID = &lto.ID }, "Ranat Ek")

	t.Run("UnknownTier", func(t *testing.T) {
		_, err := svc.Status(1, model.TestTier("midterm"), 3)
		assert.ErrorIs(t, err, util.ErrUnknownTier)
	})

	t.Run("NoTestInScope", func(t *testing.T) {
		status, err := svc.Status(1, model.TierLevelTestOne, 99)
		require.NoError(t, err)
		assert.False(t, status.HasTest)
	})

	t.Run("FreshUser", func(t *testing.T) {
		status, err := svc.Status(1, model.TierLevelTestOne, 3)
		require.NoError(t, err)
		assert.True(t, status.HasTest)
		assert.Equal(t, lto.ID, status.TestID)
		assert.Equal(t, "Khaen level test", status.TestName)
		assert.False(t, status.HasEverPassed)
		assert.False(t, status.Completed)
	})

	t.Run("PartiallyAnswered", func(t *testing.T) {
		require.NoError(t, db.Create(&model.UserAnswer{UserID: 1, QuestionID: q1, IsCorrect: true, Score: 1}).Error)

		status, err := svc.Status(1, model.TierLevelTestOne, 3)
		require.NoError(t, err)
		assert.False(t, status.Completed)
	})

	t.Run("CompletedAndUnlocked", func(t *testing.T) {
		require.NoError(t, db.Create(&model.UserAnswer{UserID: 1, QuestionID: q2, IsCorrect: false}).Error)
		require.NoError(t, db.Create(&model.UserUnlock{
			UserID: 1, TestType: model.TierLevelTestOne, TestID: lto.ID, InstrumentID: 3,
		}).Error)

		status, err := svc.Status(1, model.TierLevelTestOne, 3)
		require.NoError(t, err)
		assert.True(t, status.Completed)
		assert.True(t, status.HasEverPassed)
	})

	t.Run("UngatedTierIgnoresLedger", func(t *testing.T) {
		pre := &model.Pretest{InstrumentID: 3, Name: "Khaen pretest"}
		require.NoError(t, db.Create(pre).Error)

		status, err := svc.Status(1, model.TierPretest, 3)
		require.NoError(t, err)
		assert.True(t, status.HasTest)
		assert.False(t, status.HasEverPassed)
	})
}

func TestHistoryByUsername(t *testing.T) {
	svc, db := newUnlockService(t)

	user := &model.User{Username: "somchai", Email: "somchai@example.com", Password: "x", Role: model.RoleUser}
	require.NoError(t, db.Create(user).Error)

	lto := &model.LevelTestOne{InstrumentID: 1, Name: "Khaen level test"}
	require.NoError(t, db.Create(lto).Error)
	ltt := &model.LevelTestTwo{LessonID: 4, Name: "Lesson quiz"}
	require.NoError(t, db.Create(ltt).Error)

	require.NoError(t, db.Create(&model.UserUnlock{
		UserID: user.ID, TestType: model.TierLevelTestOne, TestID: lto.ID, InstrumentID: 1,
	}).Error)
	require.NoError(t, db.Create(&model.UserUnlock{
		UserID: user.ID, TestType: model.TierLevelTestTwo, TestID: ltt.ID, InstrumentID: 1,
	}).Error)

	t.Run("UnknownUser", func(t *testing.T) {
		_, err := svc.HistoryByUsername("nobody")
		assert.ErrorIs(t, err, util.ErrUserNotFound)
	})

	t.Run("NamesResolvedPerTier", func(t *testing.T) {
		entries, err := svc.HistoryByUsername("somchai")
		require.NoError(t, err)
		require.Len(t, entries, 2)

		byTier := make(map[model.TestTier]HistoryEntry)
		for _, e := range entries {
			byTier[e.TestType] = e
		}
		assert.Equal(t, "Khaen level test", byTier[model.TierLevelTestOne].TestName)
		assert.Equal(t, "Lesson quiz", byTier[model.TierLevelTestTwo].TestName)
	})

	t.Run("NoUnlocksIsEmptyNotNil", func(t *testing.T) {
		other := &model.User{Username: "malee", Email: "malee@example.com", Password: "x", Role: model.RoleUser}
		require.NoError(t, db.Create(other).Error)

		entries, err := svc.HistoryByUsername("malee")
		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})
}
