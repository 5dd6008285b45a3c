package repository

import (
	"errors"

	"thaimusic_backend/internal/model"

	"gorm.io/gorm"
)

type TestRequirementRepository struct {
	DB *gorm.DB
}

func NewTestRequirementRepository(db *gorm.DB) *TestRequirementRepository {
	return &TestRequirementRepository{DB: db}
}

// FindPassingScoreByColumn resolves the configured threshold for a test
// instance through testrequirement_instrument. The second return reports
// whether a requirement row exists at all; a row with NULL passing_score
// still counts as found (it is the auto-pass marker).
func (r *TestRequirementRepository) FindPassingScoreByColumn(fkColumn string, tierID uint) (*int, bool, error) {
	var req model.TestRequirement
	err := r.DB.Where(fkColumn+" = ?", tierID).First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return req.PassingScore, true, nil
}

// FindLevelTestOnePassingScore resolves the threshold for the first level test
// tier, which lives in its own leveltestone_score table.
func (r *TestRequirementRepository) FindLevelTestOnePassingScore(levelTestOneID uint) (*int, bool, error) {
	var row model.LevelTestOneScore
	err := r.DB.Where("leveltestone_id = ?", levelTestOneID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return row.PassingScore, true, nil
}

// HasRequirementByColumn reports whether any requirement row references the
// test instance. Catalog listings only surface configured tests.
func (r *TestRequirementRepository) HasRequirementByColumn(fkColumn string, tierID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.TestRequirement{}).Where(fkColumn+" = ?", tierID).Count(&count).Error
	return count > 0, err
}

func (r *TestRequirementRepository) HasLevelTestOneScore(levelTestOneID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.LevelTestOneScore{}).
		Where("leveltestone_id = ?", levelTestOneID).Count(&count).Error
	return count > 0, err
}

func (r *TestRequirementRepository) List() ([]model.TestRequirement, error) {
	var reqs []model.TestRequirement
	err := r.DB.Order("requirement_id ASC").Find(&reqs).Error
	return reqs, err
}

func (r *TestRequirementRepository) FindByID(id uint) (*model.TestRequirement, error) {
	var req model.TestRequirement
	if err := r.DB.First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *TestRequirementRepository) Create(req *model.TestRequirement) error {
	return r.DB.Create(req).Error
}

func (r *TestRequirementRepository) Update(req *model.TestRequirement) error {
	return r.DB.Save(req).Error
}

func (r *TestRequirementRepository) Delete(id uint) error {
	return r.DB.Delete(&model.TestRequirement{}, id).Error
}

func (r *TestRequirementRepository) ListLevelTestOneScores() ([]model.LevelTestOneScore, error) {
	var rows []model.LevelTestOneScore
	err := r.DB.Order("score_id ASC").Find(&rows).Error
	return rows, err
}

func (r *TestRequirementRepository) CreateLevelTestOneScore(row *model.LevelTestOneScore) error {
	return r.DB.Create(row).Error
}

func (r *TestRequirementRepository) UpdateLevelTestOneScore(row *model.LevelTestOneScore) error {
	return r.DB.Save(row).Error
}

func (r *TestRequirementRepository) DeleteLevelTestOneScore(id uint) error {
	return r.DB.Delete(&model.LevelTestOneScore{}, id).Error
}
