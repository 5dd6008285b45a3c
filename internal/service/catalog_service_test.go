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

func newCatalogService(t *testing.T) (*CatalogService, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	svc := NewCatalogService(
		repository.NewTestCatalogRepository(db),
		repository.NewTestRequirementRepository(db),
		repository.NewLessonRepository(db),
	)
	return svc, db
}

func TestCatalogListByInstrument(t *testing.T) {
	svc, db := newCatalogService(t)

	require.NoError(t, db.Create(&model.Pretest{InstrumentID: 1, Name: "Khaen pretest"}).Error)
	require.NoError(t, db.Create(&model.Pretest{InstrumentID: 1, Name: "Khaen pretest 2"}).Error)
	require.NoError(t, db.Create(&model.Pretest{InstrumentID: 2, Name: "Other instrument"}).Error)
	require.NoError(t, db.Create(&model.TestRequirement{PretestID: uintPtr(1), PassingScore: intPtr(3)}).Error)

	t.Run("ScopedWithConfiguredFlag", func(t *testing.T) {
		entries, err := svc.ListByInstrument(model.TierPretest, 1)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.True(t, entries[0].Configured)
		assert.False(t, entries[1].Configured)
		assert.Equal(t, model.TierPretest, entries[0].TestType)
	})

	t.Run("LessonTierRejected", func(t *testing.T) {
		_, err := svc.ListByInstrument(model.TierLevelTestTwo, 1)
		assert.ErrorIs(t, err, util.ErrUnknownTier)
	})
}

func TestCatalogListByLesson(t *testing.T) {
	svc, db := newCatalogService(t)

	lesson := &model.Lesson{InstrumentID: 1, Name: "Khaen basics"}
	require.NoError(t, db.Create(lesson).Error)
	require.NoError(t, db.Create(&model.LevelTestTwo{LessonID: lesson.ID, Name: "Quiz"}).Error)

	t.Run("UnknownLesson", func(t *testing.T) {
		_, err := svc.ListByLesson(model.TierLevelTestTwo, 999)
		assert.Error(t, err)
	})

	t.Run("UnconfiguredTest", func(t *testing.T) {
		entries, err := svc.ListByLesson(model.TierLevelTestTwo, lesson.ID)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.False(t, entries[0].Configured)
	})
}

func TestCatalogCreateTest(t *testing.T) {
	svc, db := newCatalogService(t)

	t.Run("InstrumentScoped", func(t *testing.T) {
		entry, err := svc.CreateTest(model.TierPosttest, "Final test", 5)
		require.NoError(t, err)
		assert.NotZero(t, entry.TestID)
		assert.Equal(t, model.TierPosttest, entry.TestType)
	})

	t.Run("LessonScopedNeedsLesson", func(t *testing.T) {
		_, err := svc.CreateTest(model.TierLevelTestThree, "Quiz", 999)
		assert.Error(t, err)

		lesson := &model.Lesson{InstrumentID: 1, Name: "Khaen basics"}
		require.NoError(t, db.Create(lesson).Error)

		entry, err := svc.CreateTest(model.TierLevelTestThree, "Quiz", lesson.ID)
		require.NoError(t, err)
		assert.NotZero(t, entry.TestID)
	})

	t.Run("EmptyName", func(t *testing.T) {
		_, err := svc.CreateTest(model.TierPretest, "", 1)
		assert.True(t, util.IsValidationError(err))
	})
}
