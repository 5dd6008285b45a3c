package service

import (
	"strconv"

	"thaimusic_backend/internal/model"
	"thaimusic_backend/internal/repository"
	"thaimusic_backend/internal/util"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// RequirementSource names the table a tier resolves its passing threshold
// from. SourceNone is the posttest rule: no threshold, every submission
// passes.
type RequirementSource int

const (
	SourceNone RequirementSource = iota
	SourceTestRequirement
	SourceLevelTestOneScore
)

// TierConfig drives the shared submission flow for one test tier. The five
// tiers differ only in these values; the grading, persistence and gating
// logic is identical.
type TierConfig struct {
	Tier model.TestTier

	// QuestionFK is the tier's foreign key column on questiontext_instrument.
	QuestionFK string

	// ContextField is the request field carrying the content scope, for
	// validation messages.
	ContextField string

	// LessonScoped tiers receive a lesson id as context and resolve the
	// instrument through the lesson row.
	LessonScoped bool

	// GatesLearning tiers consult and write the unlock ledger; a first-time
	// pass durably opens the learning content behind the test.
	GatesLearning bool

	// AccumulatesScore marks the posttest tier: the attempt score feeds the
	// cumulative level calculation instead of a gate.
	AccumulatesScore bool

	Requirement   RequirementSource
	RequirementFK string
	RetryRoute    string
}

var tierConfigs = map[model.TestTier]TierConfig{
	model.TierPretest: {
		Tier:          model.TierPretest,
		QuestionFK:    "pretest_id",
		ContextField:  "instrument_id",
		Requirement:   SourceTestRequirement,
		RequirementFK: "pretest_id",
		RetryRoute:    "/pretest",
	},
	model.TierPosttest: {
		Tier:             model.TierPosttest,
		QuestionFK:       "posttest_id",
		ContextField:     "instrument_id",
		AccumulatesScore: true,
		Requirement:      SourceNone,
		RetryRoute:       "/posttest",
	},
	model.TierLevelTestOne: {
		Tier:          model.TierLevelTestOne,
		QuestionFK:    "leveltestone_id",
		ContextField:  "instrument_id",
		GatesLearning: true,
		Requirement:   SourceLevelTestOneScore,
		RetryRoute:    "/leveltestone",
	},
	model.TierLevelTestTwo: {
		Tier:          model.TierLevelTestTwo,
		QuestionFK:    "leveltesttwo_id",
		ContextField:  "lesson_id",
		LessonScoped:  true,
		GatesLearning: true,
		Requirement:   SourceTestRequirement,
		RequirementFK: "leveltesttwo_id",
		RetryRoute:    "/leveltesttwo",
	},
	model.TierLevelTestThree: {
		Tier:          model.TierLevelTestThree,
		QuestionFK:    "leveltestthree_id",
		ContextField:  "lesson_id",
		LessonScoped:  true,
		GatesLearning: true,
		Requirement:   SourceTestRequirement,
		RequirementFK: "leveltestthree_id",
		RetryRoute:    "/leveltestthree",
	},
}

// TierConfigFor returns the configuration for a tier and whether it exists.
func TierConfigFor(tier model.TestTier) (TierConfig, bool) {
	cfg, ok := tierConfigs[tier]
	return cfg, ok
}

type SubmitRequest struct {
	TestID    uint                       `json:"test_id"`
	ContextID uint                       `json:"context_id"`
	Answers   map[string]SubmittedAnswer `json:"answers"`
}

type NavigationHint struct {
	Action  string `json:"action"`
	Message string `json:"message"`
	Route   string `json:"route"`
}

type SubmitResult struct {
	Score             int              `json:"score"`
	Total             int              `json:"total"`
	Percentage        int              `json:"percentage"`
	Passed            bool             `json:"passed"`
	HasEverPassed     bool             `json:"hasEverPassed"`
	CanAccessLearning bool             `json:"canAccessLearning"`
	PassingScore      *int             `json:"passing_score"`
	NoScoreRequired   bool             `json:"no_score_required"`
	Level             *model.UserLevel `json:"level,omitempty"`
	Navigation        NavigationHint   `json:"navigation"`
}

type GradeOutcome struct {
	Records        []model.UserAnswer
	TotalScore     int
	TotalQuestions int
}

type SubmissionService struct {
	QuestionRepo      *repository.QuestionRepository
	UserAnswerRepo    *repository.UserAnswerRepository
	UnlockRepo        *repository.UserUnlockRepository
	RequirementRepo   *repository.TestRequirementRepository
	LessonRepo        *repository.LessonRepository
	PosttestScoreRepo *repository.PosttestScoreRepository
	UserLevelService  *UserLevelService
	Logger            *zap.Logger
}

func NewSubmissionService(
	questionRepo *repository.QuestionRepository,
	userAnswerRepo *repository.UserAnswerRepository,
	unlockRepo *repository.UserUnlockRepository,
	requirementRepo *repository.TestRequirementRepository,
	lessonRepo *repository.LessonRepository,
	posttestScoreRepo *repository.PosttestScoreRepository,
	userLevelService *UserLevelService,
	logger *zap.Logger,
) *SubmissionService {
	return &SubmissionService{
		QuestionRepo:      questionRepo,
		UserAnswerRepo:    userAnswerRepo,
		UnlockRepo:        unlockRepo,
		RequirementRepo:   requirementRepo,
		LessonRepo:        lessonRepo,
		PosttestScoreRepo: posttestScoreRepo,
		UserLevelService:  userLevelService,
		Logger:            logger,
	}
}

// Grade scores every question belonging to the test, not just the delivered
// subset: an absent submission is simply wrong. Emits one answer record per
// question; TotalQuestions counts all fetched questions.
func (s *SubmissionService) Grade(cfg TierConfig, testID uint, userID uint, answers map[string]SubmittedAnswer) (*GradeOutcome, error) {
	questions, err := s.QuestionRepo.FindByTierColumn(cfg.QuestionFK, testID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}

	choices, err := s.QuestionRepo.FindCorrectChoiceAnswersByQuestionIDs(ids)
	if err != nil {
		return nil, err
	}
	pairs, err := s.QuestionRepo.FindMatchPairsByQuestionIDs(ids)
	if err != nil {
		return nil, err
	}

	correctByQuestion := make(map[uint]CorrectAnswers, len(questions))
	for _, c := range choices {
		ca := correctByQuestion[c.QuestionID]
		ca.Choices = append(ca.Choices, c.AnswerText)
		correctByQuestion[c.QuestionID] = ca
	}
	for _, p := range pairs {
		ca := correctByQuestion[p.QuestionID]
		ca.Pairs = append(ca.Pairs, PairValue{Prompt: p.Prompt, Response: p.Response})
		correctByQuestion[p.QuestionID] = ca
	}

	outcome := &GradeOutcome{TotalQuestions: len(questions)}
	for _, q := range questions {
		submitted, ok := answers[strconv.FormatUint(uint64(q.ID), 10)]
		correct := ok && IsCorrect(submitted, correctByQuestion[q.ID])

		record := model.UserAnswer{
			UserID:     userID,
			QuestionID: q.ID,
			IsCorrect:  correct,
		}
		if correct {
			record.Score = 1
			outcome.TotalScore++
		}
		if ok && submitted.Raw() != nil {
			record.SelectedAnswer = datatypes.JSON(submitted.Raw())
		}
		outcome.Records = append(outcome.Records, record)
	}
	return outcome, nil
}

// resolvePassingScore returns the threshold for the test, or nil when no
// requirement row exists or the row's passing_score is NULL. Nil means
// auto-pass: the tier is deliberately ungated.
func (s *SubmissionService) resolvePassingScore(cfg TierConfig, testID uint) (*int, error) {
	switch cfg.Requirement {
	case SourceTestRequirement:
		score, _, err := s.RequirementRepo.FindPassingScoreByColumn(cfg.RequirementFK, testID)
		return score, err
	case SourceLevelTestOneScore:
		score, _, err := s.RequirementRepo.FindLevelTestOnePassingScore(testID)
		return score, err
	}
	return nil, nil
}

// Submit runs one test attempt for one tier: validate, check the unlock
// ledger, grade, persist answer records, evaluate the pass policy, grant the
// unlock on a first-time pass, and for the posttest recompute the user's
// level. Answer persistence always completes before any gate is granted; a
// store failure at any step aborts the whole attempt.
func (s *SubmissionService) Submit(userID uint, tier model.TestTier, req SubmitRequest) (*SubmitResult, error) {
	cfg, ok := tierConfigs[tier]
	if !ok {
		return nil, util.ErrUnknownTier
	}
	if req.TestID == 0 {
		return nil, util.NewValidationError("test_id", "test_id is required")
	}
	if req.ContextID == 0 {
		return nil, util.NewValidationError(cfg.ContextField, cfg.ContextField+" is required")
	}
	if req.Answers == nil {
		return nil, util.NewValidationError("answers", "answers are required")
	}

	instrumentID := req.ContextID
	if cfg.LessonScoped {
		lesson, err := s.LessonRepo.FindByID(req.ContextID)
		if err != nil {
			return nil, util.NewValidationError("lesson_id", "lesson not found")
		}
		instrumentID = lesson.InstrumentID
	}

	hasEverPassed := false
	if cfg.GatesLearning {
		unlock, err := s.UnlockRepo.Find(userID, tier, req.TestID)
		if err != nil {
			return nil, err
		}
		hasEverPassed = unlock != nil
	}

	outcome, err := s.Grade(cfg, req.TestID, userID, req.Answers)
	if err != nil {
		return nil, err
	}

	if err := s.UserAnswerRepo.UpsertBatch(outcome.Records); err != nil {
		return nil, err
	}

	passingScore, err := s.resolvePassingScore(cfg, req.TestID)
	if err != nil {
		return nil, err
	}
	passed := passingScore == nil || outcome.TotalScore >= *passingScore
	canAccessLearning := hasEverPassed || passed

	if cfg.GatesLearning && passed && !hasEverPassed {
		err := s.UnlockRepo.Upsert(&model.UserUnlock{
			UserID:       userID,
			TestType:     tier,
			TestID:       req.TestID,
			InstrumentID: instrumentID,
		})
		if err != nil {
			return nil, err
		}
		s.Logger.Info("test unlock granted",
			zap.Uint("user_id", userID),
			zap.String("test_type", string(tier)),
			zap.Uint("test_id", req.TestID))
	}

	result := &SubmitResult{
		Score:             outcome.TotalScore,
		Total:             outcome.TotalQuestions,
		Passed:            passed,
		HasEverPassed:     hasEverPassed,
		CanAccessLearning: canAccessLearning,
		PassingScore:      passingScore,
		NoScoreRequired:   passingScore == nil,
	}
	if outcome.TotalQuestions > 0 {
		result.Percentage = int(float64(outcome.TotalScore)/float64(outcome.TotalQuestions)*100 + 0.5)
	}

	if cfg.AccumulatesScore {
		level, err := s.UserLevelService.ComputeLevel(userID, outcome.TotalScore)
		if err != nil {
			return nil, err
		}
		var levelID *uint
		if level != nil {
			levelID = &level.ID
		}
		err = s.PosttestScoreRepo.Upsert(&model.PosttestScore{
			UserID:     userID,
			PosttestID: req.TestID,
			Score:      outcome.TotalScore,
			LevelID:    levelID,
		})
		if err != nil {
			return nil, err
		}
		result.Level = level
	}

	navigate(result, cfg, canAccessLearning, hasEverPassed)
	return result, nil
}

func navigate(result *SubmitResult, cfg TierConfig, canAccessLearning, hasEverPassed bool) {
	if canAccessLearning {
		message := "Congratulations, you passed. Online learning is now available."
		if hasEverPassed {
			message = "Learning is available because you already passed this test."
		}
		result.Navigation = NavigationHint{
			Action:  "go_to_learning",
			Message: message,
			Route:   "/learning",
		}
	} else {
		result.Navigation = NavigationHint{
			Action:  "retry_test",
			Message: "You did not reach the passing score. Please try again.",
			Route:   cfg.RetryRoute,
		}
	}
}

// ListUserAnswers returns a user's stored answer records, oldest question
// first.
func (s *SubmissionService) ListUserAnswers(userID uint) ([]model.UserAnswer, error) {
	return s.UserAnswerRepo.ListByUser(userID)
}

// ResetTest deletes a user's answer records for one test so the test can be
// retaken from a clean slate. Unlock grants are left untouched: passing is
// permanent.
func (s *SubmissionService) ResetTest(userID uint, tier model.TestTier, testID uint) (int, error) {
	cfg, ok := tierConfigs[tier]
	if !ok {
		return 0, util.ErrUnknownTier
	}
	questions, err := s.QuestionRepo.FindByTierColumn(cfg.QuestionFK, testID)
	if err != nil {
		return 0, err
	}
	ids := make([]uint, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	if err := s.UserAnswerRepo.DeleteByUserAndQuestions(userID, ids); err != nil {
		return 0, err
	}
	return len(ids), nil
}
