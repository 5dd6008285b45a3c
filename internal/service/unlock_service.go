package service

import (
	"time"

	"thaimusic_backend/internal/model"
	"thaimusic_backend/internal/repository"
	"thaimusic_backend/internal/util"
)

type UnlockService struct {
	UnlockRepo     *repository.UserUnlockRepository
	QuestionRepo   *repository.QuestionRepository
	UserAnswerRepo *repository.UserAnswerRepository
	CatalogRepo    *repository.TestCatalogRepository
	UserRepo       *repository.UserRepository
}

func NewUnlockService(
	unlockRepo *repository.UserUnlockRepository,
	questionRepo *repository.QuestionRepository,
	userAnswerRepo *repository.UserAnswerRepository,
	catalogRepo *repository.TestCatalogRepository,
	userRepo *repository.UserRepository,
) *UnlockService {
	return &UnlockService{
		UnlockRepo:     unlockRepo,
		QuestionRepo:   questionRepo,
		UserAnswerRepo: userAnswerRepo,
		CatalogRepo:    catalogRepo,
		UserRepo:       userRepo,
	}
}

// TierStatus reports where a user stands on the first test of a tier within a
// content scope (an instrument or a lesson, depending on the tier).
type TierStatus struct {
	HasTest       bool   `json:"hasTest"`
	TestID        uint   `json:"test_id,omitempty"`
	TestName      string `json:"test_name,omitempty"`
	HasEverPassed bool   `json:"hasEverPassed"`
	Completed     bool   `json:"completed"`
}

// Status resolves the first test of the tier in the scope, then checks the
// unlock ledger for gated tiers and answered-question completeness for the
// rest. Completed means every question of the test has a stored answer.
func (s *UnlockService) Status(userID uint, tier model.TestTier, contextID uint) (*TierStatus, error) {
	cfg, ok := tierConfigs[tier]
	if !ok {
		return nil, util.ErrUnknownTier
	}

	testID, testName, err := s.firstTest(tier, contextID)
	if err != nil {
		return nil, err
	}
	if testID == 0 {
		return &TierStatus{HasTest: false}, nil
	}

	status := &TierStatus{HasTest: true, TestID: testID, TestName: testName}

	if cfg.GatesLearning {
		unlock, err := s.UnlockRepo.Find(userID, tier, testID)
		if err != nil {
			return nil, err
		}
		status.HasEverPassed = unlock != nil
	}

	questions, err := s.QuestionRepo.FindByTierColumn(cfg.QuestionFK, testID)
	if err != nil {
		return nil, err
	}
	if len(questions) > 0 {
		ids := make([]uint, len(questions))
		for i, q := range questions {
			ids[i] = q.ID
		}
		answered, err := s.UserAnswerRepo.FindAnsweredQuestionIDs(userID, ids)
		if err != nil {
			return nil, err
		}
		status.Completed = len(answered) == len(ids)
	}
	return status, nil
}

func (s *UnlockService) firstTest(tier model.TestTier, contextID uint) (uint, string, error) {
	switch tier {
	case model.TierPretest:
		tests, err := s.CatalogRepo.ListPretestsByInstrument(contextID)
		if err != nil || len(tests) == 0 {
			return 0, "", err
		}
		return tests[0].ID, tests[0].Name, nil
	case model.TierPosttest:
		tests, err := s.CatalogRepo.ListPosttestsByInstrument(contextID)
		if err != nil || len(tests) == 0 {
			return 0, "", err
		}
		return tests[0].ID, tests[0].Name, nil
	case model.TierLevelTestOne:
		tests, err := s.CatalogRepo.ListLevelTestOnesByInstrument(contextID)
		if err != nil || len(tests) == 0 {
			return 0, "", err
		}
		return tests[0].ID, tests[0].Name, nil
	case model.TierLevelTestTwo:
		tests, err := s.CatalogRepo.ListLevelTestTwosByLesson(contextID)
		if err != nil || len(tests) == 0 {
			return 0, "", err
		}
		return tests[0].ID, tests[0].Name, nil
	case model.TierLevelTestThree:
		tests, err := s.CatalogRepo.ListLevelTestThreesByLesson(contextID)
		if err != nil || len(tests) == 0 {
			return 0, "", err
		}
		return tests[0].ID, tests[0].Name, nil
	}
	return 0, "", util.ErrUnknownTier
}

// HistoryEntry is one unlock grant enriched with the test's display name for
// the history screen.
type HistoryEntry struct {
	UnlockID     uint           `json:"unlock_id"`
	TestType     model.TestTier `json:"test_type"`
	TestID       uint           `json:"test_id"`
	TestName     string         `json:"test_name"`
	InstrumentID uint           `json:"instrument_id"`
	UnlockedAt   time.Time      `json:"unlocked_at"`
}

func (s *UnlockService) ListByUser(userID uint) ([]model.UserUnlock, error) {
	return s.UnlockRepo.ListByUser(userID)
}

// HistoryByUsername returns a user's unlock history newest-first, with test
// names resolved per tier in bulk.
func (s *UnlockService) HistoryByUsername(username string) ([]HistoryEntry, error) {
	user, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, util.ErrUserNotFound
	}

	unlocks, err := s.UnlockRepo.ListByUser(user.ID)
	if err != nil {
		return nil, err
	}
	if len(unlocks) == 0 {
		return []HistoryEntry{}, nil
	}

	idsByTier := make(map[model.TestTier][]uint)
	for _, u := range unlocks {
		idsByTier[u.TestType] = append(idsByTier[u.TestType], u.TestID)
	}

	names := make(map[model.TestTier]map[uint]string)
	for tier := range idsByTier {
		names[tier] = make(map[uint]string)
	}

	if ids := idsByTier[model.TierPretest]; len(ids) > 0 {
		tests, err := s.CatalogRepo.FindPretestsByIDs(ids)
		if err != nil {
			return nil, err
		}
		for _, t := range tests {
			names[model.TierPretest][t.ID] = t.Name
		}
	}
	if ids := idsByTier[model.TierPosttest]; len(ids) > 0 {
		tests, err := s.CatalogRepo.FindPosttestsByIDs(ids)
		if err != nil {
			return nil, err
		}
		for _, t := range tests {
			names[model.TierPosttest][t.ID] = t.Name
		}
	}
	if ids := idsByTier[model.TierLevelTestOne]; len(ids) > 0 {
		tests, err := s.CatalogRepo.FindLevelTestOnesByIDs(ids)
		if err != nil {
			return nil, err
		}
		for _, t := range tests {
			names[model.TierLevelTestOne][t.ID] = t.Name
		}
	}
	if ids := idsByTier[model.TierLevelTestTwo]; len(ids) > 0 {
		tests, err := s.CatalogRepo.FindLevelTestTwosByIDs(ids)
		if err != nil {
			return nil, err
		}
		for _, t := range tests {
			names[model.TierLevelTestTwo][t.ID] = t.Name
		}
	}
	if ids := idsByTier[model.TierLevelTestThree]; len(ids) > 0 {
		tests, err := s.CatalogRepo.FindLevelTestThreesByIDs(ids)
		if err != nil {
			return nil, err
		}
		for _, t := range tests {
			names[model.TierLevelTestThree][t.ID] = t.Name
		}
	}

	entries := make([]HistoryEntry, 0, len(unlocks))
	for _, u := range unlocks {
		entries = append(entries, HistoryEntry{
			UnlockID:     u.ID,
			TestType:     u.TestType,
			TestID:       u.TestID,
			TestName:     names[u.TestType][u.TestID],
			InstrumentID: u.InstrumentID,
			UnlockedAt:   u.UnlockedAt,
		})
	}
	return entries, nil
}
