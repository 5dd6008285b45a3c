package service

import (
	"thaimusic_backend/internal/model"
	"thaimusic_backend/internal/repository"
	"thaimusic_backend/internal/util"
)

// RequirementService manages passing thresholds. A requirement row with a
// NULL passing_score is valid and means the test auto-passes.
type RequirementService struct {
	Repo *repository.TestRequirementRepository
}

func NewRequirementService(repo *repository.TestRequirementRepository) *RequirementService {
	return &RequirementService{Repo: repo}
}

func (s *RequirementService) List() ([]model.TestRequirement, error) {
	return s.Repo.List()
}

// Create binds a threshold to exactly one test instance. The level-one tier
// has its own table and is rejected here.
func (s *RequirementService) Create(tier model.TestTier, testID uint, passingScore *int) (*model.TestRequirement, error) {
	if testID == 0 {
		return nil, util.NewValidationError("test_id", "test_id is required")
	}

	req := &model.TestRequirement{PassingScore: passingScore}
	id := testID
	switch tier {
	case model.TierPretest:
		req.PretestID = &id
	case model.TierPosttest:
		req.PosttestID = &id
	case model.TierLevelTestTwo:
		req.LevelTestTwoID = &id
	case model.TierLevelTestThree:
		req.LevelTestThreeID = &id
	case model.TierLevelTestOne:
		return nil, util.NewValidationError("test_type", "leveltestone thresholds live in leveltestone_score")
	default:
		return nil, util.ErrUnknownTier
	}

	if err := s.Repo.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *RequirementService) Update(id uint, passingScore *int) (*model.TestRequirement, error) {
	req, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	req.PassingScore = passingScore
	if err := s.Repo.Update(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *RequirementService) Delete(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

func (s *RequirementService) ListLevelTestOneScores() ([]model.LevelTestOneScore, error) {
	return s.Repo.ListLevelTestOneScores()
}

func (s *RequirementService) CreateLevelTestOneScore(levelTestOneID uint, passingScore *int) (*model.LevelTestOneScore, error) {
	if levelTestOneID == 0 {
		return nil, util.NewValidationError("leveltestone_id", "leveltestone_id is required")
	}
	row := &model.LevelTestOneScore{LevelTestOneID: levelTestOneID, PassingScore: passingScore}
	if err := s.Repo.CreateLevelTestOneScore(row); err != nil {
		return nil, err
	}
	return row, nil
}

func (s *RequirementService) UpdateLevelTestOneScore(id uint, passingScore *int) (*model.LevelTestOneScore, error) {
	rows, err := s.Repo.ListLevelTestOneScores()
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].ID == id {
			rows[i].PassingScore = passingScore
			if err := s.Repo.UpdateLevelTestOneScore(&rows[i]); err != nil {
				return nil, err
			}
			return &rows[i], nil
		}
	}
	return nil, util.NewValidationError("score_id", "score row not found")
}

func (s *RequirementService) DeleteLevelTestOneScore(id uint) error {
	return s.Repo.DeleteLevelTestOneScore(id)
}
