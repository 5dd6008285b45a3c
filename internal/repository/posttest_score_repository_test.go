package repository

import (
	"testing"

	"thaimusic_backend/internal/model"
	"thaimusic_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosttestScoreUpsert(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPosttestScoreRepository(db)

	require.NoError(t, repo.Upsert(&model.PosttestScore{UserID: 1, PosttestID: 1, Score: 3}))
	require.NoError(t, repo.Upsert(&model.PosttestScore{UserID: 1, PosttestID: 1, Score: 5}))
	require.NoError(t, repo.Upsert(&model.PosttestScore{UserID: 1, PosttestID: 2, Score: 2}))

	var count int64
	require.NoError(t, db.Model(&model.PosttestScore{}).Where("user_id = ?", 1).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	var row model.PosttestScore
	require.NoError(t, db.Where("user_id = ? AND posttest_id = ?", 1, 1).First(&row).Error)
	assert.Equal(t, 5, row.Score)
}

func TestPosttestScoreSumByUser(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPosttestScoreRepository(db)

	t.Run("NoRowsIsZero", func(t *testing.T) {
		total, err := repo.SumByUser(9)
		require.NoError(t, err)
		assert.Equal(t, 0, total)
	})

	t.Run("SumsAcrossPosttests", func(t *testing.T) {
		require.NoError(t, repo.Upsert(&model.PosttestScore{UserID: 9, PosttestID: 1, Score: 4}))
		require.NoError(t, repo.Upsert(&model.PosttestScore{UserID: 9, PosttestID: 2, Score: 6}))
		require.NoError(t, repo.Upsert(&model.PosttestScore{UserID: 10, PosttestID: 1, Score: 100}))

		total, err := repo.SumByUser(9)
		require.NoError(t, err)
		assert.Equal(t, 10, total)
	})
}

func TestUserAnswerUpsertBatch(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserAnswerRepository(db)

	first := []model.UserAnswer{
		{UserID: 1, QuestionID: 1, IsCorrect: false, Score: 0},
		{UserID: 1, QuestionID: 2, IsCorrect: true, Score: 1},
	}
	require.NoError(t, repo.UpsertBatch(first))

	second := []model.UserAnswer{
		{UserID: 1, QuestionID: 1, IsCorrect: true, Score: 1},
	}
	require.NoError(t, repo.UpsertBatch(second))

	var count int64
	require.NoError(t, db.Model(&model.UserAnswer{}).Where("user_id = ?", 1).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	var row model.UserAnswer
	require.NoError(t, db.Where("user_id = ? AND question_id = ?", 1, 1).First(&row).Error)
	assert.True(t, row.IsCorrect)
	assert.Equal(t, 1, row.Score)
}
