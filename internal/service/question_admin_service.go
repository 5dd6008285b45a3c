package service

import (
	"context"

	"thaimusic_backend/internal/model"
	"thaimusic_backend/internal/repository"
	"thaimusic_backend/internal/util"
)

// QuestionAdminService owns authoring of questions and their answers. Every
// write invalidates the cached question bundle of the affected test.
type QuestionAdminService struct {
	Repo            *repository.QuestionRepository
	QuestionService *QuestionService
}

func NewQuestionAdminService(repo *repository.QuestionRepository, questionService *QuestionService) *QuestionAdminService {
	return &QuestionAdminService{Repo: repo, QuestionService: questionService}
}

// questionTier reports which tier a question belongs to through its single
// non-null foreign key.
func questionTier(q *model.Question) (model.TestTier, uint, bool) {
	switch {
	case q.PretestID != nil:
		return model.TierPretest, *q.PretestID, true
	case q.PosttestID != nil:
		return model.TierPosttest, *q.PosttestID, true
	case q.LevelTestOneID != nil:
		return model.TierLevelTestOne, *q.LevelTestOneID, true
	case q.LevelTestTwoID != nil:
		return model.TierLevelTestTwo, *q.LevelTestTwoID, true
	case q.LevelTestThreeID != nil:
		return model.TierLevelTestThree, *q.LevelTestThreeID, true
	}
	return "", 0, false
}

func (s *QuestionAdminService) invalidate(ctx context.Context, q *model.Question) {
	if tier, testID, ok := questionTier(q); ok {
		s.QuestionService.InvalidateCache(ctx, tier, testID)
	}
}

func (s *QuestionAdminService) ListByTest(tier model.TestTier, testID uint) ([]model.Question, error) {
	cfg, ok := tierConfigs[tier]
	if !ok {
		return nil, util.ErrUnknownTier
	}
	return s.Repo.FindByTierColumn(cfg.QuestionFK, testID)
}

// Create authors a question under one tier's test. Exactly one tier foreign
// key is set from the (tier, testID) pair.
func (s *QuestionAdminService) Create(ctx context.Context, tier model.TestTier, testID uint, text string, questionTypeID *uint) (*model.Question, error) {
	if !tier.Valid() {
		return nil, util.ErrUnknownTier
	}
	if text == "" {
		return nil, util.NewValidationError("question_text", "question_text is required")
	}
	if testID == 0 {
		return nil, util.NewValidationError("test_id", "test_id is required")
	}

	q := &model.Question{Text: text, QuestionTypeID: questionTypeID}
	id := testID
	switch tier {
	case model.TierPretest:
		q.PretestID = &id
	case model.TierPosttest:
		q.PosttestID = &id
	case model.TierLevelTestOne:
		q.LevelTestOneID = &id
	case model.TierLevelTestTwo:
		q.LevelTestTwoID = &id
	case model.TierLevelTestThree:
		q.LevelTestThreeID = &id
	}

	if err := s.Repo.Create(q); err != nil {
		return nil, err
	}
	s.invalidate(ctx, q)
	return q, nil
}

func (s *QuestionAdminService) UpdateText(ctx context.Context, id uint, text string) (*model.Question, error) {
	q, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, util.NewValidationError("question_text", "question_text is required")
	}
	q.Text = text
	if err := s.Repo.Update(q); err != nil {
		return nil, err
	}
	s.invalidate(ctx, q)
	return q, nil
}

func (s *QuestionAdminService) Delete(ctx context.Context, id uint) error {
	q, err := s.Repo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.invalidate(ctx, q)
	return nil
}

func (s *QuestionAdminService) AddChoice(ctx context.Context, questionID uint, answerText string, isCorrect bool) (*model.ChoiceAnswer, error) {
	q, err := s.Repo.FindByID(questionID)
	if err != nil {
		return nil, err
	}
	if answerText == "" {
		return nil, util.NewValidationError("answer_text", "answer_text is required")
	}
	choice := &model.ChoiceAnswer{QuestionID: questionID, AnswerText: answerText, IsCorrect: isCorrect}
	if err := s.Repo.CreateChoiceAnswer(choice); err != nil {
		return nil, err
	}
	s.invalidate(ctx, q)
	return choice, nil
}

func (s *QuestionAdminService) UpdateChoice(ctx context.Context, id uint, answerText string, isCorrect bool) (*model.ChoiceAnswer, error) {
	choice, err := s.Repo.FindChoiceAnswerByID(id)
	if err != nil {
		return nil, err
	}
	if answerText == "" {
		return nil, util.NewValidationError("answer_text", "answer_text is required")
	}
	choice.AnswerText = answerText
	choice.IsCorrect = isCorrect
	if err := s.Repo.UpdateChoiceAnswer(choice); err != nil {
		return nil, err
	}
	if q, err := s.Repo.FindByID(choice.QuestionID); err == nil {
		s.invalidate(ctx, q)
	}
	return choice, nil
}

func (s *QuestionAdminService) DeleteChoice(ctx context.Context, id uint) error {
	choice, err := s.Repo.FindChoiceAnswerByID(id)
	if err != nil {
		return err
	}
	if err := s.Repo.DeleteChoiceAnswer(id); err != nil {
		return err
	}
	if q, err := s.Repo.FindByID(choice.QuestionID); err == nil {
		s.invalidate(ctx, q)
	}
	return nil
}

func (s *QuestionAdminService) AddPair(ctx context.Context, questionID uint, prompt, response string) (*model.MatchPair, error) {
	q, err := s.Repo.FindByID(questionID)
	if err != nil {
		return nil, err
	}
	if prompt == "" || response == "" {
		return nil, util.NewValidationError("answermatch", "answermatch_prompt and answermatch_response are required")
	}
	pair := &model.MatchPair{QuestionID: questionID, Prompt: prompt, Response: response}
	if err := s.Repo.CreateMatchPair(pair); err != nil {
		return nil, err
	}
	s.invalidate(ctx, q)
	return pair, nil
}

func (s *QuestionAdminService) UpdatePair(ctx context.Context, id uint, prompt, response string) (*model.MatchPair, error) {
	pair, err := s.Repo.FindMatchPairByID(id)
	if err != nil {
		return nil, err
	}
	if prompt == "" || response == "" {
		return nil, util.NewValidationError("answermatch", "answermatch_prompt and answermatch_response are required")
	}
	pair.Prompt = prompt
	pair.Response = response
	if err := s.Repo.UpdateMatchPair(pair); err != nil {
		return nil, err
	}
	if q, err := s.Repo.FindByID(pair.QuestionID); err == nil {
		s.invalidate(ctx, q)
	}
	return pair, nil
}

func (s *QuestionAdminService) DeletePair(ctx context.Context, id uint) error {
	pair, err := s.Repo.FindMatchPairByID(id)
	if err != nil {
		return err
	}
	if err := s.Repo.DeleteMatchPair(id); err != nil {
		return err
	}
	if q, err := s.Repo.FindByID(pair.QuestionID); err == nil {
		s.invalidate(ctx, q)
	}
	return nil
}

func (s *QuestionAdminService) AddMedia(ctx context.Context, media *model.QuestionMedia) error {
	q, err := s.Repo.FindByID(media.QuestionID)
	if err != nil {
		return err
	}
	if err := s.Repo.CreateMedia(media); err != nil {
		return err
	}
	s.invalidate(ctx, q)
	return nil
}

func (s *QuestionAdminService) DeleteMedia(ctx context.Context, id uint) error {
	return s.Repo.DeleteMedia(id)
}

func (s *QuestionAdminService) ListQuestionTypes() ([]model.QuestionType, error) {
	return s.Repo.ListQuestionTypes()
}

func (s *QuestionAdminService) CreateQuestionType(name string) (*model.QuestionType, error) {
	if name == "" {
		return nil, util.NewValidationError("questiontype_name", "questiontype_name is required")
	}
	t := &model.QuestionType{Name: name}
	if err := s.Repo.CreateQuestionType(t); err != nil {
		return nil, err
	}
	return t, nil
}
