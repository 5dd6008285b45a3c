package repository

import (
	"thaimusic_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserAnswerRepository struct {
	DB *gorm.DB
}

func NewUserAnswerRepository(db *gorm.DB) *UserAnswerRepository {
	return &UserAnswerRepository{DB: db}
}

// UpsertBatch writes every record in one statement, overwriting the stored
// answer on (user_id, question_id) conflict. answered_at keeps its original
// value on overwrite; the retake replaces answer, correctness and score.
func (r *UserAnswerRepository) UpsertBatch(records []model.UserAnswer) error {
	if len(records) == 0 {
		return nil
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"selected_answer", "is_correct", "score", "updated_at",
		}),
	}).Create(&records).Error
}

// FindAnsweredQuestionIDs returns the subset of ids the user already has an
// answer record for, as a set.
func (r *UserAnswerRepository) FindAnsweredQuestionIDs(userID uint, ids []uint) (map[uint]struct{}, error) {
	answered := make(map[uint]struct{})
	if len(ids) == 0 {
		return answered, nil
	}
	var qids []uint
	err := r.DB.Model(&model.UserAnswer{}).
		Where("user_id = ? AND question_id IN ?", userID, ids).
		Pluck("question_id", &qids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range qids {
		answered[id] = struct{}{}
	}
	return answered, nil
}

func (r *UserAnswerRepository) ListByUser(userID uint) ([]model.UserAnswer, error) {
	var answers []model.UserAnswer
	err := r.DB.Where("user_id = ?", userID).Order("question_id ASC").Find(&answers).Error
	return answers, err
}

func (r *UserAnswerRepository) ListByQuestionIDs(ids []uint) ([]model.UserAnswer, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var answers []model.UserAnswer
	err := r.DB.Where("question_id IN ?", ids).Find(&answers).Error
	return answers, err
}

func (r *UserAnswerRepository) DeleteByUserAndQuestions(userID uint, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.DB.Where("user_id = ? AND question_id IN ?", userID, ids).
		Delete(&model.UserAnswer{}).Error
}
