package model

// ChoiceAnswer is one option of a choice question. A question may carry more
// than one correct option (multi-correct is supported by the matcher).
type ChoiceAnswer struct {
	BaseModel

	ID         uint   `gorm:"primaryKey;autoIncrement;column:answertext_id" json:"answertext_id"`
	QuestionID uint   `gorm:"index;column:question_id" json:"question_id"`
	AnswerText string `gorm:"type:text;column:answer_text" json:"answer_text"`
	IsCorrect  bool   `gorm:"column:is_correct;default:false" json:"is_correct"`
}

func (ChoiceAnswer) TableName() string {
	return "answertext_instrument"
}

// MatchPair is one correct prompt/response pair of a matching question.
type MatchPair struct {
	BaseModel

	ID         uint   `gorm:"primaryKey;autoIncrement;column:answermatch_id" json:"answermatch_id"`
	QuestionID uint   `gorm:"index;column:questiontext_id" json:"questiontext_id"`
	Prompt     string `gorm:"type:text;column:answermatch_prompt" json:"answermatch_prompt"`
	Response   string `gorm:"type:text;column:answermatch_response" json:"answermatch_response"`
}

func (MatchPair) TableName() string {
	return "answermatch_instrument"
}
