package repository

import (
	"thaimusic_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// FindByTierColumn returns every question whose tier foreign key column equals
// tierID, ordered by question id. The column name always comes from the fixed
// tier table in the service layer, never from request input.
func (r *QuestionRepository) FindByTierColumn(fkColumn string, tierID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where(fkColumn+" = ?", tierID).Order("questiontext_id ASC").Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) FindMediaByQuestionIDs(ids []uint) ([]model.QuestionMedia, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var media []model.QuestionMedia
	err := r.DB.Where("questionstext_id IN ?", ids).Find(&media).Error
	return media, err
}

func (r *QuestionRepository) FindChoiceAnswersByQuestionIDs(ids []uint) ([]model.ChoiceAnswer, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var answers []model.ChoiceAnswer
	err := r.DB.Where("question_id IN ?", ids).Find(&answers).Error
	return answers, err
}

func (r *QuestionRepository) FindCorrectChoiceAnswersByQuestionIDs(ids []uint) ([]model.ChoiceAnswer, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var answers []model.ChoiceAnswer
	err := r.DB.Where("question_id IN ? AND is_correct = ?", ids, true).Find(&answers).Error
	return answers, err
}

func (r *QuestionRepository) FindMatchPairsByQuestionIDs(ids []uint) ([]model.MatchPair, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var pairs []model.MatchPair
	err := r.DB.Where("questiontext_id IN ?", ids).Find(&pairs).Error
	return pairs, err
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var q model.Question
	if err := r.DB.First(&q, id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuestionRepository) Create(q *model.Question) error {
	return r.DB.Create(q).Error
}

func (r *QuestionRepository) Update(q *model.Question) error {
	return r.DB.Save(q).Error
}

func (r *QuestionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Question{}, id).Error
}

func (r *QuestionRepository) CreateChoiceAnswer(a *model.ChoiceAnswer) error {
	return r.DB.Create(a).Error
}

func (r *QuestionRepository) UpdateChoiceAnswer(a *model.ChoiceAnswer) error {
	return r.DB.Save(a).Error
}

func (r *QuestionRepository) DeleteChoiceAnswer(id uint) error {
	return r.DB.Delete(&model.ChoiceAnswer{}, id).Error
}

func (r *QuestionRepository) FindChoiceAnswerByID(id uint) (*model.ChoiceAnswer, error) {
	var a model.ChoiceAnswer
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *QuestionRepository) CreateMatchPair(p *model.MatchPair) error {
	return r.DB.Create(p).Error
}

func (r *QuestionRepository) UpdateMatchPair(p *model.MatchPair) error {
	return r.DB.Save(p).Error
}

func (r *QuestionRepository) DeleteMatchPair(id uint) error {
	return r.DB.Delete(&model.MatchPair{}, id).Error
}

func (r *QuestionRepository) FindMatchPairByID(id uint) (*model.MatchPair, error) {
	var p model.MatchPair
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *QuestionRepository) CreateMedia(m *model.QuestionMedia) error {
	return r.DB.Create(m).Error
}

func (r *QuestionRepository) DeleteMedia(id uint) error {
	return r.DB.Delete(&model.QuestionMedia{}, id).Error
}

func (r *QuestionRepository) ListQuestionTypes() ([]model.QuestionType, error) {
	var types []model.QuestionType
	err := r.DB.Order("questiontype_id ASC").Find(&types).Error
	return types, err
}

func (r *QuestionRepository) CreateQuestionType(t *model.QuestionType) error {
	return r.DB.Create(t).Error
}
