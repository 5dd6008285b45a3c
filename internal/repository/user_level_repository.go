package repository

import (
	"errors"

	"thaimusic_backend/internal/model"

	"gorm.io/gorm"
)

type UserLevelRepository struct {
	DB *gorm.DB
}

func NewUserLevelRepository(db *gorm.DB) *UserLevelRepository {
	return &UserLevelRepository{DB: db}
}

// ListOrdered returns the level ladder sorted by score ascending. The level
// calculator walks this order and keeps the last reachable rung.
func (r *UserLevelRepository) ListOrdered() ([]model.UserLevel, error) {
	var levels []model.UserLevel
	err := r.DB.Order("score ASC").Find(&levels).Error
	return levels, err
}

func (r *UserLevelRepository) FindByID(id uint) (*model.UserLevel, error) {
	var level model.UserLevel
	if err := r.DB.First(&level, id).Error; err != nil {
		return nil, err
	}
	return &level, nil
}

// NameExists and ScoreExists back the admin uniqueness checks; excludeID lets
// updates skip the row being edited.
func (r *UserLevelRepository) NameExists(name string, excludeID uint) (bool, error) {
	var count int64
	q := r.DB.Model(&model.UserLevel{}).Where("level_name = ?", name)
	if excludeID != 0 {
		q = q.Where("level_id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *UserLevelRepository) ScoreExists(score int, excludeID uint) (bool, error) {
	var count int64
	q := r.DB.Model(&model.UserLevel{}).Where("score = ?", score)
	if excludeID != 0 {
		q = q.Where("level_id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *UserLevelRepository) Create(level *model.UserLevel) error {
	return r.DB.Create(level).Error
}

func (r *UserLevelRepository) Update(level *model.UserLevel) error {
	return r.DB.Save(level).Error
}

func (r *UserLevelRepository) Delete(id uint) error {
	return r.DB.Delete(&model.UserLevel{}, id).Error
}

// FindByUser returns the level the user currently holds, derived from the
// level_id stored with their most recent posttest score write. Nil when the
// user has no posttest score yet or their total sits below every rung.
func (r *UserLevelRepository) FindByUser(userID uint) (*model.UserLevel, error) {
	var score model.PosttestScore
	err := r.DB.Where("user_id = ?", userID).Order("updated_at DESC").First(&score).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if score.LevelID == nil {
		return nil, nil
	}
	var level model.UserLevel
	if err := r.DB.First(&level, *score.LevelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &level, nil
}
