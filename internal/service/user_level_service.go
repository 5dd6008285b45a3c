package service

import (
	"thaimusic_backend/internal/model"
	"thaimusic_backend/internal/repository"
	"thaimusic_backend/internal/util"
)

type UserLevelService struct {
	Repo              *repository.UserLevelRepository
	PosttestScoreRepo *repository.PosttestScoreRepository
}

func NewUserLevelService(repo *repository.UserLevelRepository, scoreRepo *repository.PosttestScoreRepository) *UserLevelService {
	return &UserLevelService{Repo: repo, PosttestScoreRepo: scoreRepo}
}

// ComputeLevel resolves the level a user holds after earning pendingDelta more
// posttest points. The delta is the attempt being processed, not yet
// persisted; it is added to the stored cumulative total. The ladder is walked
// score-ascending and the last rung at or below the total wins; nil when the
// total sits below every rung or the ladder is empty.
func (s *UserLevelService) ComputeLevel(userID uint, pendingDelta int) (*model.UserLevel, error) {
	stored, err := s.PosttestScoreRepo.SumByUser(userID)
	if err != nil {
		return nil, err
	}
	total := stored + pendingDelta

	levels, err := s.Repo.ListOrdered()
	if err != nil {
		return nil, err
	}

	var current *model.UserLevel
	for i := range levels {
		if total >= levels[i].MinScore {
			current = &levels[i]
		} else {
			break
		}
	}
	return current, nil
}

func (s *UserLevelService) List() ([]model.UserLevel, error) {
	return s.Repo.ListOrdered()
}

func (s *UserLevelService) CurrentLevel(userID uint) (*model.UserLevel, error) {
	return s.Repo.FindByUser(userID)
}

// Create enforces ladder integrity: both the name and the score of a level
// must be unique, otherwise two rungs would be indistinguishable.
func (s *UserLevelService) Create(name string, minScore int) (*model.UserLevel, error) {
	if name == "" {
		return nil, util.NewValidationError("level_name", "level_name is required")
	}
	taken, err := s.Repo.NameExists(name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, util.ErrLevelNameTaken
	}
	taken, err = s.Repo.ScoreExists(minScore, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, util.ErrLevelScoreTaken
	}

	level := &model.UserLevel{Name: name, MinScore: minScore}
	if err := s.Repo.Create(level); err != nil {
		return nil, err
	}
	return level, nil
}

func (s *UserLevelService) Update(id uint, name string, minScore int) (*model.UserLevel, error) {
	level, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, util.NewValidationError("level_name", "level_name is required")
	}
	taken, err := s.Repo.NameExists(name, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, util.ErrLevelNameTaken
	}
	taken, err = s.Repo.ScoreExists(minScore, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, util.ErrLevelScoreTaken
	}

	level.Name = name
	level.MinScore = minScore
	if err := s.Repo.Update(level); err != nil {
		return nil, err
	}
	return level, nil
}

func (s *UserLevelService) Delete(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}
