package model

import (
	"time"

	"gorm.io/datatypes"
)

// UserAnswer is the persisted grading record for one (user, question) pair.
// At most one row exists per pair; resubmission overwrites through an
// upsert keyed on the composite unique index.
type UserAnswer struct {
	ID             uint           `gorm:"primaryKey;autoIncrement;column:answer_id" json:"answer_id"`
	UserID         uint           `gorm:"column:user_id;uniqueIndex:idx_user_question" json:"user_id"`
	QuestionID     uint           `gorm:"column:question_id;uniqueIndex:idx_user_question" json:"question_id"`
	SelectedAnswer datatypes.JSON `gorm:"column:selected_answer" json:"selected_answer"`
	IsCorrect      bool           `gorm:"column:is_correct" json:"is_correct"`
	Score          int            `gorm:"column:score" json:"score"`
	AnsweredAt     time.Time      `gorm:"column:answered_at;autoCreateTime" json:"answered_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserAnswer) TableName() string {
	return "user_answer"
}
