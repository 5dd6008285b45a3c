package repository

import (
	"thaimusic_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PosttestScoreRepository struct {
	DB *gorm.DB
}

func NewPosttestScoreRepository(db *gorm.DB) *PosttestScoreRepository {
	return &PosttestScoreRepository{DB: db}
}

// Upsert writes the latest posttest result, one row per (user, posttest).
// Resubmissions overwrite score and level_id rather than accumulating rows.
func (r *PosttestScoreRepository) Upsert(score *model.PosttestScore) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "posttest_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "level_id", "updated_at"}),
	}).Create(score).Error
}

// SumByUser totals the user's posttest scores across all posttests. The level
// ladder is climbed against this cumulative total, not any single test.
func (r *PosttestScoreRepository) SumByUser(userID uint) (int, error) {
	var total int64
	err := r.DB.Model(&model.PosttestScore{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(score), 0)").
		Scan(&total).Error
	return int(total), err
}

func (r *PosttestScoreRepository) ListByUser(userID uint) ([]model.PosttestScore, error) {
	var scores []model.PosttestScore
	err := r.DB.Where("user_id = ?", userID).Order("updated_at DESC").Find(&scores).Error
	return scores, err
}
