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

func newUserLevelService(t *testing.T) (*UserLevelService, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	svc := NewUserLevelService(
		repository.NewUserLevelRepository(db),
		repository.NewPosttestScoreRepository(db),
	)
	return svc, db
}

func seedLadder(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, l := range []model.UserLevel{
		{Name: "Beginner", MinScore: 0},
		{Name: "Intermediate", MinScore: 100},
		{Name: "Advanced", MinScore: 500},
	} {
		require.NoError(t, db.Create(&l).Error)
	}
}

func TestComputeLevel(t *testing.T) {
	svc, db := newUserLevelService(t)
	seedLadder(t, db)

	require.NoError(t, db.Create(&model.PosttestScore{UserID: 1, PosttestID: 1, Score: 80}).Error)
	require.NoError(t, db.Create(&model.PosttestScore{UserID: 1, PosttestID: 2, Score: 15}).Error)

	t.Run("SumPlusPendingDelta", func(t *testing.T) {
		level, err := svc.ComputeLevel(1, 10)
		require.NoError(t, err)
		require.NotNil(t, level)
		assert.Equal(t, "Intermediate", level.Name)
	})

	t.Run("ExactThresholdCounts", func(t *testing.T) {
		level, err := svc.ComputeLevel(1, 5)
		require.NoError(t, err)
		require.NotNil(t, level)
		assert.Equal(t, "Intermediate", level.Name)
	})

	t.Run("HighestRungWins", func(t *testing.T) {
		level, err := svc.ComputeLevel(1, 900)
		require.NoError(t, err)
		require.NotNil(t, level)
		assert.Equal(t, "Advanced", level.Name)
	})

	t.Run("NoScoresLandsOnZeroRung", func(t *testing.T) {
		level, err := svc.ComputeLevel(42, 0)
		require.NoError(t, err)
		require.NotNil(t, level)
		assert.Equal(t, "Beginner", level.Name)
	})

	t.Run("EmptyLadderIsNil", func(t *testing.T) {
		empty, _ := newUserLevelService(t)
		level, err := empty.ComputeLevel(1, 50)
		require.NoError(t, err)
		assert.Nil(t, level)
	})
}

func TestUserLevelLadderIntegrity(t *testing.T) {
	svc, db := newUserLevelService(t)
	seedLadder(t, db)

	t.Run("DuplicateNameRejected", func(t *testing.T) {
		_, err := svc.Create("Beginner", 50)
		assert.ErrorIs(t, err, util.ErrLevelNameTaken)
	})

	t.Run("DuplicateScoreRejected", func(t *testing.T) {
		_, err := svc.Create("Expert", 500)
		assert.ErrorIs(t, err, util.ErrLevelScoreTaken)
	})

	t.Run("EmptyNameRejected", func(t *testing.T) {
		_, err := svc.Create("", 50)
		assert.True(t, util.IsValidationError(err))
	})

	t.Run("CreateAndListOrdered", func(t *testing.T) {
		_, err := svc.Create("Master", 1000)
		require.NoError(t, err)

		levels, err := svc.List()
		require.NoError(t, err)
		require.Len(t, levels, 4)
		assert.Equal(t, "Beginner", levels[0].Name)
		assert.Equal(t, "Master", levels[3].Name)
	})

	t.Run("UpdateKeepingOwnValues", func(t *testing.T) {
		var level model.UserLevel
		require.NoError(t, db.Where("level_name = ?", "Advanced").First(&level).Error)

		// re-saving a rung with its own score must not trip the uniqueness check
		updated, err := svc.Update(level.ID, "Advanced Plus", 500)
		require.NoError(t, err)
		assert.Equal(t, "Advanced Plus", updated.Name)
	})

	t.Run("UpdateOntoAnotherRungRejected", func(t *testing.T) {
		var level model.UserLevel
		require.NoError(t, db.Where("level_name = ?", "Intermediate").First(&level).Error)

		_, err := svc.Update(level.ID, "Intermediate", 500)
		assert.ErrorIs(t, err, util.ErrLevelScoreTaken)
	})
}

func TestCurrentLevel(t *testing.T) {
	svc, db := newUserLevelService(t)
	seedLadder(t, db)

	t.Run("NoScoresIsNil", func(t *testing.T) {
		level, err := svc.CurrentLevel(7)
		require.NoError(t, err)
		assert.Nil(t, level)
	})

	t.Run("LatestStoredLevel", func(t *testing.T) {
		var intermediate model.UserLevel
		require.NoError(t, db.Where("level_name = ?", "Intermediate").First(&intermediate).Error)
		require.NoError(t, db.Create(&model.PosttestScore{
			UserID: 7, PosttestID: 1, Score: 120, LevelID: &intermediate.ID,
		}).Error)

		level, err := svc.CurrentLevel(7)
		require.NoError(t, err)
		require.NotNil(t, level)
		assert.Equal(t, "Intermediate", level.Name)
	})
}
