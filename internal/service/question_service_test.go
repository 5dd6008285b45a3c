package service

import (
	"context"
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

func newQuestionService(t *testing.T) (*QuestionService, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	svc := NewQuestionService(
		repository.NewQuestionRepository(db),
		repository.NewUserAnswerRepository(db),
		nil,
		zap.NewNop(),
	)
	return svc, db
}

func TestAssembleQuestions(t *testing.T) {
	svc, db := newQuestionService(t)
	ctx := context.Background()

	choiceQ := seedChoiceQuestion(t, db, func(q *model.Question) { q.PretestID = uintPtr(1) }, "Khaen")

	matchQ := &model.Question{Text: "match the instruments", PretestID: uintPtr(1)}
	require.NoError(t, db.Create(matchQ).Error)
	require.NoError(t, db.Create(&model.MatchPair{QuestionID: matchQ.ID, Prompt: "Khaen", Response: "wind"}).Error)
	require.NoError(t, db.Create(&model.MatchPair{QuestionID: matchQ.ID, Prompt: "Saw Duang", Response: "string"}).Error)
	require.NoError(t, db.Create(&model.QuestionMedia{QuestionID: matchQ.ID, ImageURL: "/uploads/q.png"}).Error)

	// authored text with no answers yet; must never be delivered
	emptyQ := &model.Question{Text: "unfinished question", PretestID: uintPtr(1)}
	require.NoError(t, db.Create(emptyQ).Error)

	t.Run("UnknownTier", func(t *testing.T) {
		_, err := svc.AssembleQuestions(ctx, model.TestTier("midterm"), 1, 0)
		assert.ErrorIs(t, err, util.ErrUnknownTier)
	})

	t.Run("IncompleteQuestionsDropped", func(t *testing.T) {
		bundles, err := svc.AssembleQuestions(ctx, model.TierPretest, 1, 0)
		require.NoError(t, err)
		require.Len(t, bundles, 2)
		assert.Equal(t, choiceQ, bundles[0].QuestionID)
		assert.Equal(t, matchQ.ID, bundles[1].QuestionID)
	})

	t.Run("CorrectnessFlagsStripped", func(t *testing.T) {
		bundles, err := svc.AssembleQuestions(ctx, model.TierPretest, 1, 0)
		require.NoError(t, err)

		// both the correct and the wrong option are present, undistinguished
		assert.Len(t, bundles[0].Choices, 2)
		assert.Empty(t, bundles[0].Pairs)

		assert.Len(t, bundles[1].Pairs, 2)
		assert.Len(t, bundles[1].Media, 1)
	})

	t.Run("AnsweredQuestionsFiltered", func(t *testing.T) {
		require.NoError(t, db.Create(&model.UserAnswer{UserID: 9, QuestionID: choiceQ, IsCorrect: true, Score: 1}).Error)

		bundles, err := svc.AssembleQuestions(ctx, model.TierPretest, 1, 9)
		require.NoError(t, err)
		require.Len(t, bundles, 1)
		assert.Equal(t, matchQ.ID, bundles[0].QuestionID)
	})

	t.Run("AnonymousSeesEverything", func(t *testing.T) {
		bundles, err := svc.AssembleQuestions(ctx, model.TierPretest, 1, 0)
		require.NoError(t, err)
		assert.Len(t, bundles, 2)
	})

	t.Run("EmptyTest", func(t *testing.T) {
		bundles, err := svc.AssembleQuestions(ctx, model.TierPosttest, 99, 0)
		require.NoError(t, err)
		assert.Empty(t, bundles)
	})
}
