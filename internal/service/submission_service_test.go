package service

import (
	"strconv"
	"testing"

	"thaimusic_backend/internal/model"
	"thaimusic_backend/internal/repository"
	"thaimusic_backend/internal/testutil"
	"thaimusic_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func intPtr(v int) *int { return &v }

func uintPtr(v uint) *uint { return &v }

func newSubmissionService(t *testing.T) (*SubmissionService, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	levelSvc := NewUserLevelService(
		repository.NewUserLevelRepository(db),
		repository.NewPosttestScoreRepository(db),
	)
	svc := NewSubmissionService(
		repository.NewQuestionRepository(db),
		repository.NewUserAnswerRepository(db),
		repository.NewUserUnlockRepository(db),
		repository.NewTestRequirementRepository(db),
		repository.NewLessonRepository(db),
		repository.NewPosttestScoreRepository(db),
		levelSvc,
		zap.NewNop(),
	)
	return svc, db
}

// seedChoiceQuestion creates one choice question on the given tier FK with a
// single correct option and returns the question id.
func seedChoiceQuestion(t *testing.T, db *gorm.DB, set func(*model.Question), correct string) uint {
	t.Helper()
	q := &model.Question{Text: "which instrument"}
	set(q)
	require.NoError(t, db.Create(q).Error)
	require.NoError(t, db.Create(&model.ChoiceAnswer{
		QuestionID: q.ID, AnswerText: correct, IsCorrect: true,
	}).Error)
	require.NoError(t, db.Create(&model.ChoiceAnswer{
		QuestionID: q.ID, AnswerText: "wrong option", IsCorrect: false,
	}).Error)
	return q.ID
}

func answerKey(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func choiceAnswer(t *testing.T, text string) SubmittedAnswer {
	t.Helper()
	return decodeAnswer(t, `"`+text+`"`)
}

func TestSubmitValidation(t *testing.T) {
	svc, _ := newSubmissionService(t)

	t.Run("UnknownTier", func(t *testing.T) {
		_, err := svc.Submit(1, model.TestTier("midterm"), SubmitRequest{TestID: 1, ContextID: 1, Answers: map[string]SubmittedAnswer{}})
		assert.ErrorIs(t, err, util.ErrUnknownTier)
	})

	t.Run("MissingTestID", func(t *testing.T) {
		_, err := svc.Submit(1, model.TierPretest, SubmitRequest{ContextID: 1, Answers: map[string]SubmittedAnswer{}})
		assert.True(t, util.IsValidationError(err))
	})

	t.Run("MissingContext", func(t *testing.T) {
		_, err := svc.Submit(1, model.TierPretest, SubmitRequest{TestID: 1, Answers: map[string]SubmittedAnswer{}})
		assert.True(t, util.IsValidationError(err))
	})

	t.Run("NilAnswers", func(t *testing.T) {
		_, err := svc.Submit(1, model.TierPretest, SubmitRequest{TestID: 1, ContextID: 1})
		assert.True(t, util.IsValidationError(err))
	})

	t.Run("LessonScopedUnknownLesson", func(t *testing.T) {
		_, err := svc.Submit(1, model.TierLevelTestTwo, SubmitRequest{TestID: 1, ContextID: 999, Answers: map[string]SubmittedAnswer{}})
		assert.True(t, util.IsValidationError(err))
	})
}

func TestSubmitPretestThreshold(t *testing.T) {
	svc, db := newSubmissionService(t)

	q1 := seedChoiceQuestion(t, db, func(q *model.Question) { q.PretestID = uintPtr(1) }, "Khaen")
	q2 := seedChoiceQuestion(t, db, func(q *model.Question) { q.PretestID = uintPtr(1) }, "Ranat Ek")
	q3 := seedChoiceQuestion(t, db, func(q *model.Question) { q.PretestID = uintPtr(1) }, "Saw Duang")
	require.NoError(t, db.Create(&model.TestRequirement{PretestID: uintPtr(1), PassingScore: intPtr(2)}).Error)

	t.Run("TwoOfThreePasses", func(t *testing.T) {
		result, err := svc.Submit(7, model.TierPretest, SubmitRequest{
			TestID:    1,
			ContextID: 1,
			Answers: map[string]SubmittedAnswer{
				answerKey(q1): choiceAnswer(t, "Khaen"),
				answerKey(q2): choiceAnswer(t, "ranat ek"),
				answerKey(q3): choiceAnswer(t, "wrong option"),
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, result.Score)
		assert.Equal(t, 3, result.Total)
		assert.Equal(t, 67, result.Percentage)
		assert.True(t, result.Passed)
		assert.True(t, result.CanAccessLearning)
		assert.False(t, result.NoScoreRequired)
		require.NotNil(t, result.PassingScore)
		assert.Equal(t, 2, *result.PassingScore)
		assert.Equal(t, "go_to_learning", result.Navigation.Action)
		assert.Equal(t, "/learning", result.Navigation.Route)
	})

	t.Run("OneOfThreeFails", func(t *testing.T) {
		result, err := svc.Submit(8, model.TierPretest, SubmitRequest{
			TestID:    1,
			ContextID: 1,
			Answers: map[string]SubmittedAnswer{
				answerKey(q1): choiceAnswer(t, "Khaen"),
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Score)
		assert.False(t, result.Passed)
		assert.False(t, result.CanAccessLearning)
		assert.Equal(t, "retry_test", result.Navigation.Action)
		assert.Equal(t, "/pretest", result.Navigation.Route)
	})

	t.Run("UnansweredQuestionsGradeWrong", func(t *testing.T) {
		result, err := svc.Submit(9, model.TierPretest, SubmitRequest{
			TestID:    1,
			ContextID: 1,
			Answers:   map[string]SubmittedAnswer{},
		})
		require.NoError(t, err)
		assert.Equal(t, 0, result.Score)
		assert.Equal(t, 3, result.Total)

		var count int64
		require.NoError(t, db.Model(&model.UserAnswer{}).Where("user_id = ?", 9).Count(&count).Error)
		assert.Equal(t, int64(3), count)
	})

	t.Run("PretestNeverWritesUnlock", func(t *testing.T) {
		var count int64
		require.NoError(t, db.Model(&model.UserUnlock{}).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	})
}

func TestSubmitAutoPassWithoutRequirement(t *testing.T) {
	svc, db := newSubmissionService(t)

	q1 := seedChoiceQuestion(t, db, func(q *model.Question) { q.PretestID = uintPtr(5) }, "Khaen")

	result, err := svc.Submit(3, model.TierPretest, SubmitRequest{
		TestID:    5,
		ContextID: 1,
		Answers: map[string]SubmittedAnswer{
			answerKey(q1): choiceAnswer(t, "wrong option"),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)
	assert.True(t, result.Passed)
	assert.True(t, result.NoScoreRequired)
	assert.Nil(t, result.PassingScore)
}

func TestSubmitNullPassingScoreAutoPasses(t *testing.T) {
	svc, db := newSubmissionService(t)

	seedChoiceQuestion(t, db, func(q *model.Question) { q.PretestID = uintPtr(2) }, "Khaen")
	require.NoError(t, db.Create(&model.TestRequirement{PretestID: uintPtr(2), PassingScore: nil}).Error)

	result, err := svc.Submit(4, model.TierPretest, SubmitRequest{
		TestID:    2,
		ContextID: 1,
		Answers:   map[string]SubmittedAnswer{},
	})
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.True(t, result.NoScoreRequired)
}

func TestSubmitLevelTestOneGating(t *testing.T) {
	svc, db := newSubmissionService(t)

	q1 := seedChoiceQuestion(t, db, func(q *model.Question) { q.LevelTestOneID = uintPtr(1) }, "Khaen")
	q2 := seedChoiceQuestion(t, db, func(q *model.Question) { q.LevelTestOneID = uintPtr(1) }, "Ranat Ek")
	require.NoError(t, db.Create(&model.LevelTestOneScore{LevelTestOneID: 1, PassingScore: intPtr(2)}).Error)

	passing := map[string]SubmittedAnswer{
		answerKey(q1): choiceAnswer(t, "Khaen"),
		answerKey(q2): choiceAnswer(t, "Ranat Ek"),
	}
	failing := map[string]SubmittedAnswer{
		answerKey(q1): choiceAnswer(t, "Khaen"),
	}

	t.Run("FailWritesNoUnlock", func(t *testing.T) {
		result, err := svc.Submit(11, model.TierLevelTestOne, SubmitRequest{TestID: 1, ContextID: 6, Answers: failing})
		require.NoError(t, err)
		assert.False(t, result.Passed)
		assert.False(t, result.HasEverPassed)
		assert.False(t, result.CanAccessLearning)

		var count int64
		require.NoError(t, db.Model(&model.UserUnlock{}).Where("user_id = ?", 11).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	})

	t.Run("FirstPassGrantsUnlock", func(t *testing.T) {
		result, err := svc.Submit(11, model.TierLevelTestOne, SubmitRequest{TestID: 1, ContextID: 6, Answers: passing})
		require.NoError(t, err)
		assert.True(t, result.Passed)
		assert.False(t, result.HasEverPassed)
		assert.True(t, result.CanAccessLearning)

		var unlock model.UserUnlock
		require.NoError(t, db.Where("user_id = ?", 11).First(&unlock).Error)
		assert.Equal(t, model.TierLevelTestOne, unlock.TestType)
		assert.Equal(t, uint(1), unlock.TestID)
		assert.Equal(t, uint(6), unlock.InstrumentID)
	})

	t.Run("LaterFailKeepsAccess", func(t *testing.T) {
		result, err := svc.Submit(11, model.TierLevelTestOne, SubmitRequest{TestID: 1, ContextID: 6, Answers: failing})
		require.NoError(t, err)
		assert.False(t, result.Passed)
		assert.True(t, result.HasEverPassed)
		assert.True(t, result.CanAccessLearning)
		assert.Equal(t, "go_to_learning", result.Navigation.Action)

		var count int64
		require.NoError(t, db.Model(&model.UserUnlock{}).Where("user_id = ?", 11).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("ResubmissionOverwritesAnswers", func(t *testing.T) {
		var count int64
		require.NoError(t, db.Model(&model.UserAnswer{}).Where("user_id = ?", 11).Count(&count).Error)
		assert.Equal(t, int64(2), count)

		var record model.UserAnswer
		require.NoError(t, db.Where("user_id = ? AND question_id = ?", 11, q2).First(&record).Error)
		assert.False(t, record.IsCorrect)
		assert.Equal(t, 0, record.Score)
	})
}

func TestSubmitLessonScopedTier(t *testing.T) {
	svc, db := newSubmissionService(t)

	lesson := &model.Lesson{InstrumentID: 42, Name: "Khaen basics"}
	require.NoError(t, db.Create(lesson).Error)

	q1 := seedChoiceQuestion(t, db, func(q *model.Question) { q.LevelTestTwoID = uintPtr(1) }, "Khaen")
	require.NoError(t, db.Create(&model.TestRequirement{LevelTestTwoID: uintPtr(1), PassingScore: intPtr(1)}).Error)

	result, err := svc.Submit(20, model.TierLevelTestTwo, SubmitRequest{
		TestID:    1,
		ContextID: lesson.ID,
		Answers: map[string]SubmittedAnswer{
			answerKey(q1): choiceAnswer(t, "Khaen"),
		},
	})
	require.NoError(t, err)
	assert.True(t, result.Passed)

	// the unlock records the lesson's instrument, not the lesson id
	var unlock model.UserUnlock
	require.NoError(t, db.Where("user_id = ?", 20).First(&unlock).Error)
	assert.Equal(t, uint(42), unlock.InstrumentID)
}

func TestSubmitPosttestLeveling(t *testing.T) {
	svc, db := newSubmissionService(t)

	require.NoError(t, db.Create(&model.UserLevel{Name: "Beginner", MinScore: 0}).Error)
	require.NoError(t, db.Create(&model.UserLevel{Name: "Intermediate", MinScore: 2}).Error)
	require.NoError(t, db.Create(&model.UserLevel{Name: "Advanced", MinScore: 10}).Error)

	q1 := seedChoiceQuestion(t, db, func(q *model.Question) { q.PosttestID = uintPtr(1) }, "Khaen")
	q2 := seedChoiceQuestion(t, db, func(q *model.Question) { q.PosttestID = uintPtr(1) }, "Ranat Ek")

	t.Run("PosttestAlwaysPasses", func(t *testing.T) {
		result, err := svc.Submit(30, model.TierPosttest, SubmitRequest{
			TestID:    1,
			ContextID: 1,
			Answers:   map[string]SubmittedAnswer{},
		})
		require.NoError(t, err)
		assert.True(t, result.Passed)
		assert.True(t, result.NoScoreRequired)
	})

	t.Run("ScoreUpsertAndLevel", func(t *testing.T) {
		result, err := svc.Submit(31, model.TierPosttest, SubmitRequest{
			TestID:    1,
			ContextID: 1,
			Answers: map[string]SubmittedAnswer{
				answerKey(q1): choiceAnswer(t, "Khaen"),
				answerKey(q2): choiceAnswer(t, "Ranat Ek"),
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, result.Score)
		require.NotNil(t, result.Level)
		assert.Equal(t, "Intermediate", result.Level.Name)

		var row model.PosttestScore
		require.NoError(t, db.Where("user_id = ? AND posttest_id = ?", 31, 1).First(&row).Error)
		assert.Equal(t, 2, row.Score)
		require.NotNil(t, row.LevelID)
	})

	t.Run("SingleRowPerUserAndPosttest", func(t *testing.T) {
		_, err := svc.Submit(31, model.TierPosttest, SubmitRequest{
			TestID:    1,
			ContextID: 1,
			Answers: map[string]SubmittedAnswer{
				answerKey(q1): choiceAnswer(t, "Khaen"),
			},
		})
		require.NoError(t, err)

		var count int64
		require.NoError(t, db.Model(&model.PosttestScore{}).Where("user_id = ?", 31).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("BelowEveryRungHasNoLevel", func(t *testing.T) {
		require.NoError(t, db.Where("level_name = ?", "Beginner").Delete(&model.UserLevel{}).Error)

		result, err := svc.Submit(33, model.TierPosttest, SubmitRequest{
			TestID:    1,
			ContextID: 1,
			Answers:   map[string]SubmittedAnswer{},
		})
		require.NoError(t, err)
		assert.Nil(t, result.Level)
	})
}

func TestSubmitEmptyTest(t *testing.T) {
	svc, _ := newSubmissionService(t)

	result, err := svc.Submit(40, model.TierPretest, SubmitRequest{
		TestID:    77,
		ContextID: 1,
		Answers:   map[string]SubmittedAnswer{},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 0, result.Total)
	assert.Equal(t, 0, result.Percentage)
	assert.True(t, result.Passed)
}

func TestResetTest(t *testing.T) {
	svc, db := newSubmissionService(t)

	q1 := seedChoiceQuestion(t, db, func(q *model.Question) { q.LevelTestOneID = uintPtr(1) }, "Khaen")
	require.NoError(t, db.Create(&model.LevelTestOneScore{LevelTestOneID: 1, PassingScore: intPtr(1)}).Error)

	_, err := svc.Submit(50, model.TierLevelTestOne, SubmitRequest{
		TestID:    1,
		ContextID: 2,
		Answers: map[string]SubmittedAnswer{
			answerKey(q1): choiceAnswer(t, "Khaen"),
		},
	})
	require.NoError(t, err)

	deleted, err := svc.ResetTest(50, model.TierLevelTestOne, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	var answers int64
	require.NoError(t, db.Model(&model.UserAnswer{}).Where("user_id = ?", 50).Count(&answers).Error)
	assert.Equal(t, int64(0), answers)

	// earned unlocks survive a reset
	var unlocks int64
	require.NoError(t, db.Model(&model.UserUnlock{}).Where("user_id = ?", 50).Count(&unlocks).Error)
	assert.Equal(t, int64(1), unlocks)

	_, err = svc.ResetTest(50, model.TestTier("midterm"), 1)
	assert.ErrorIs(t, err, util.ErrUnknownTier)
}
