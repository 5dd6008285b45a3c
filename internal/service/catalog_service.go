package service

import (
	"thaimusic_backend/internal/model"
	"thaimusic_backend/internal/repository"
	"thaimusic_backend/internal/util"
)

// CatalogService lists test instances for the test-selection screens.
type CatalogService struct {
	CatalogRepo     *repository.TestCatalogRepository
	RequirementRepo *repository.TestRequirementRepository
	LessonRepo      *repository.LessonRepository
}

func NewCatalogService(
	catalogRepo *repository.TestCatalogRepository,
	requirementRepo *repository.TestRequirementRepository,
	lessonRepo *repository.LessonRepository,
) *CatalogService {
	return &CatalogService{
		CatalogRepo:     catalogRepo,
		RequirementRepo: requirementRepo,
		LessonRepo:      lessonRepo,
	}
}

// CatalogEntry is one listed test. Configured reports whether a threshold row
// exists; an unconfigured test still runs and auto-passes.
type CatalogEntry struct {
	TestID     uint           `json:"test_id"`
	TestName   string         `json:"test_name"`
	TestType   model.TestTier `json:"test_type"`
	Configured bool           `json:"configured"`
}

// ListByInstrument returns the instrument-scoped tests of a tier, in id
// order. Lesson-scoped tiers must use ListByLesson.
func (s *CatalogService) ListByInstrument(tier model.TestTier, instrumentID uint) ([]CatalogEntry, error) {
	switch tier {
	case model.TierPretest:
		tests, err := s.CatalogRepo.ListPretestsByInstrument(instrumentID)
		if err != nil {
			return nil, err
		}
		entries := make([]CatalogEntry, 0, len(tests))
		for _, t := range tests {
			configured, err := s.RequirementRepo.HasRequirementByColumn("pretest_id", t.ID)
			if err != nil {
				return nil, err
			}
			entries = append(entries, CatalogEntry{TestID: t.ID, TestName: t.Name, TestType: tier, Configured: configured})
		}
		return entries, nil
	case model.TierPosttest:
		tests, err := s.CatalogRepo.ListPosttestsByInstrument(instrumentID)
		if err != nil {
			return nil, err
		}
		entries := make([]CatalogEntry, 0, len(tests))
		for _, t := range tests {
			configured, err := s.RequirementRepo.HasRequirementByColumn("posttest_id", t.ID)
			if err != nil {
				return nil, err
			}
			entries = append(entries, CatalogEntry{TestID: t.ID, TestName: t.Name, TestType: tier, Configured: configured})
		}
		return entries, nil
	case model.TierLevelTestOne:
		tests, err := s.CatalogRepo.ListLevelTestOnesByInstrument(instrumentID)
		if err != nil {
			return nil, err
		}
		entries := make([]CatalogEntry, 0, len(tests))
		for _, t := range tests {
			configured, err := s.RequirementRepo.HasLevelTestOneScore(t.ID)
			if err != nil {
				return nil, err
			}
			entries = append(entries, CatalogEntry{TestID: t.ID, TestName: t.Name, TestType: tier, Configured: configured})
		}
		return entries, nil
	}
	return nil, util.ErrUnknownTier
}

// ListByLesson returns the lesson-scoped tests of a tier.
func (s *CatalogService) ListByLesson(tier model.TestTier, lessonID uint) ([]CatalogEntry, error) {
	if _, err := s.LessonRepo.FindByID(lessonID); err != nil {
		return nil, err
	}
	switch tier {
	case model.TierLevelTestTwo:
		tests, err := s.CatalogRepo.ListLevelTestTwosByLesson(lessonID)
		if err != nil {
			return nil, err
		}
		entries := make([]CatalogEntry, 0, len(tests))
		for _, t := range tests {
			configured, err := s.RequirementRepo.HasRequirementByColumn("leveltesttwo_id", t.ID)
			if err != nil {
				return nil, err
			}
			entries = append(entries, CatalogEntry{TestID: t.ID, TestName: t.Name, TestType: tier, Configured: configured})
		}
		return entries, nil
	case model.TierLevelTestThree:
		tests, err := s.CatalogRepo.ListLevelTestThreesByLesson(lessonID)
		if err != nil {
			return nil, err
		}
		entries := make([]CatalogEntry, 0, len(tests))
		for _, t := range tests {
			configured, err := s.RequirementRepo.HasRequirementByColumn("leveltestthree_id", t.ID)
			if err != nil {
				return nil, err
			}
			entries = append(entries, CatalogEntry{TestID: t.ID, TestName: t.Name, TestType: tier, Configured: configured})
		}
		return entries, nil
	}
	return nil, util.ErrUnknownTier
}

// CreateTest registers a new test instance of the given tier.
func (s *CatalogService) CreateTest(tier model.TestTier, name string, contextID uint) (*CatalogEntry, error) {
	if name == "" {
		return nil, util.NewValidationError("test_name", "test_name is required")
	}
	if contextID == 0 {
		return nil, util.NewValidationError("context_id", "instrument_id or lesson_id is required")
	}

	switch tier {
	case model.TierPretest:
		t := &model.Pretest{InstrumentID: contextID, Name: name}
		if err := s.CatalogRepo.CreatePretest(t); err != nil {
			return nil, err
		}
		return &CatalogEntry{TestID: t.ID, TestName: t.Name, TestType: tier}, nil
	case model.TierPosttest:
		t := &model.Posttest{InstrumentID: contextID, Name: name}
		if err := s.CatalogRepo.CreatePosttest(t); err != nil {
			return nil, err
		}
		return &CatalogEntry{TestID: t.ID, TestName: t.Name, TestType: tier}, nil
	case model.TierLevelTestOne:
		t := &model.LevelTestOne{InstrumentID: contextID, Name: name}
		if err := s.CatalogRepo.CreateLevelTestOne(t); err != nil {
			return nil, err
		}
		return &CatalogEntry{TestID: t.ID, TestName: t.Name, TestType: tier}, nil
	case model.TierLevelTestTwo:
		if _, err := s.LessonRepo.FindByID(contextID); err != nil {
			return nil, err
		}
		t := &model.LevelTestTwo{LessonID: contextID, Name: name}
		if err := s.CatalogRepo.CreateLevelTestTwo(t); err != nil {
			return nil, err
		}
		return &CatalogEntry{TestID: t.ID, TestName: t.Name, TestType: tier}, nil
	case model.TierLevelTestThree:
		if _, err := s.LessonRepo.FindByID(contextID); err != nil {
			return nil, err
		}
		t := &model.LevelTestThree{LessonID: contextID, Name: name}
		if err := s.CatalogRepo.CreateLevelTestThree(t); err != nil {
			return nil, err
		}
		return &CatalogEntry{TestID: t.ID, TestName: t.Name, TestType: tier}, nil
	}
	return nil, util.ErrUnknownTier
}
