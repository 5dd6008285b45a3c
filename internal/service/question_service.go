package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"thaimusic_backend/internal/model"
	"thaimusic_backend/internal/repository"
	"thaimusic_backend/internal/util"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	questionCacheKeyPrefix = "questions:"
	questionCacheTTL       = 10 * time.Minute
)

// QuestionBundle is one deliverable question: its text, media and the answer
// options for whichever kind it is. Correctness flags are stripped before the
// bundle reaches a learner.
type QuestionBundle struct {
	QuestionID   uint                  `json:"questiontext_id"`
	QuestionText string                `json:"question_text"`
	Media        []model.QuestionMedia `json:"media"`
	Choices      []QuestionChoice      `json:"choices,omitempty"`
	Pairs        []QuestionPairOptions `json:"pairs,omitempty"`
}

type QuestionChoice struct {
	AnswerID   uint   `json:"answertext_id"`
	AnswerText string `json:"answer_text"`
}

// QuestionPairOptions carries one correct pairing split into its prompt and
// response sides; the client shuffles the response column for display.
type QuestionPairOptions struct {
	PairID   uint   `json:"answermatch_id"`
	Prompt   string `json:"prompt"`
	Response string `json:"response"`
}

type QuestionService struct {
	QuestionRepo   *repository.QuestionRepository
	UserAnswerRepo *repository.UserAnswerRepository
	Redis          *redis.Client
	Logger         *zap.Logger
}

func NewQuestionService(
	questionRepo *repository.QuestionRepository,
	userAnswerRepo *repository.UserAnswerRepository,
	rdb *redis.Client,
	logger *zap.Logger,
) *QuestionService {
	return &QuestionService{
		QuestionRepo:   questionRepo,
		UserAnswerRepo: userAnswerRepo,
		Redis:          rdb,
		Logger:         logger,
	}
}

func questionCacheKey(tier model.TestTier, testID uint) string {
	return fmt.Sprintf("%s%s:%d", questionCacheKeyPrefix, tier, testID)
}

// AssembleQuestions returns the complete, authored questions of a test in
// question-id order. Questions with neither choices nor match pairs are
// unauthored and never surfaced. When userID is non-zero, questions the user
// already answered are excluded; grading ignores this filter and always
// scores the full set.
func (s *QuestionService) AssembleQuestions(ctx context.Context, tier model.TestTier, testID uint, userID uint) ([]QuestionBundle, error) {
	cfg, ok := tierConfigs[tier]
	if !ok {
		return nil, util.ErrUnknownTier
	}

	bundles, err := s.loadBundles(ctx, cfg, testID)
	if err != nil {
		return nil, err
	}
	if userID == 0 || len(bundles) == 0 {
		return bundles, nil
	}

	ids := make([]uint, len(bundles))
	for i, b := range bundles {
		ids[i] = b.QuestionID
	}
	answered, err := s.UserAnswerRepo.FindAnsweredQuestionIDs(userID, ids)
	if err != nil {
		return nil, err
	}

	remaining := make([]QuestionBundle, 0, len(bundles))
	for _, b := range bundles {
		if _, done := answered[b.QuestionID]; !done {
			remaining = append(remaining, b)
		}
	}
	return remaining, nil
}

// loadBundles assembles the user-independent part of the question set, cached
// in redis per (tier, test). Cache failures degrade to a direct read.
func (s *QuestionService) loadBundles(ctx context.Context, cfg TierConfig, testID uint) ([]QuestionBundle, error) {
	key := questionCacheKey(cfg.Tier, testID)
	if s.Redis != nil {
		val, err := s.Redis.Get(ctx, key).Result()
		if err == nil {
			var cached []QuestionBundle
			if json.Unmarshal([]byte(val), &cached) == nil {
				return cached, nil
			}
		} else if err != redis.Nil {
			s.Logger.Warn("question cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	bundles, err := s.buildBundles(cfg, testID)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		data, err := json.Marshal(bundles)
		if err == nil {
			if err := s.Redis.Set(ctx, key, data, questionCacheTTL).Err(); err != nil {
				s.Logger.Warn("question cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return bundles, nil
}

func (s *QuestionService) buildBundles(cfg TierConfig, testID uint) ([]QuestionBundle, error) {
	questions, err := s.QuestionRepo.FindByTierColumn(cfg.QuestionFK, testID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return []QuestionBundle{}, nil
	}

	ids := make([]uint, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}

	media, err := s.QuestionRepo.FindMediaByQuestionIDs(ids)
	if err != nil {
		return nil, err
	}
	choices, err := s.QuestionRepo.FindChoiceAnswersByQuestionIDs(ids)
	if err != nil {
		return nil, err
	}
	pairs, err := s.QuestionRepo.FindMatchPairsByQuestionIDs(ids)
	if err != nil {
		return nil, err
	}

	mediaByQ := make(map[uint][]model.QuestionMedia)
	for _, m := range media {
		mediaByQ[m.QuestionID] = append(mediaByQ[m.QuestionID], m)
	}
	choicesByQ := make(map[uint][]QuestionChoice)
	for _, c := range choices {
		choicesByQ[c.QuestionID] = append(choicesByQ[c.QuestionID], QuestionChoice{
			AnswerID:   c.ID,
			AnswerText: c.AnswerText,
		})
	}
	pairsByQ := make(map[uint][]QuestionPairOptions)
	for _, p := range pairs {
		pairsByQ[p.QuestionID] = append(pairsByQ[p.QuestionID], QuestionPairOptions{
			PairID:   p.ID,
			Prompt:   p.Prompt,
			Response: p.Response,
		})
	}

	bundles := make([]QuestionBundle, 0, len(questions))
	for _, q := range questions {
		qChoices := choicesByQ[q.ID]
		qPairs := pairsByQ[q.ID]
		if len(qChoices) == 0 && len(qPairs) == 0 {
			continue
		}
		bundles = append(bundles, QuestionBundle{
			QuestionID:   q.ID,
			QuestionText: q.Text,
			Media:        mediaByQ[q.ID],
			Choices:      qChoices,
			Pairs:        qPairs,
		})
	}
	return bundles, nil
}

// InvalidateCache drops the cached bundle for a test after admin edits.
func (s *QuestionService) InvalidateCache(ctx context.Context, tier model.TestTier, testID uint) {
	if s.Redis == nil {
		return
	}
	key := questionCacheKey(tier, testID)
	if err := s.Redis.Del(ctx, key).Err(); err != nil {
		s.Logger.Warn("question cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}
