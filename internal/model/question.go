package model

type QuestionType struct {
	BaseModel

	ID   uint   `gorm:"primaryKey;autoIncrement;column:questiontype_id" json:"questiontype_id"`
	Name string `gorm:"size:100;column:questiontype_name" json:"questiontype_name"`
}

func (QuestionType) TableName() string {
	return "questiontype_instrument"
}

// Question belongs to exactly one test instance: exactly one of the five tier
// foreign keys is non-null. The core reads questions, it never writes them.
type Question struct {
	BaseModel

	ID             uint   `gorm:"primaryKey;autoIncrement;column:questiontext_id" json:"questiontext_id"`
	Text           string `gorm:"type:text;column:question_text" json:"question_text"`
	QuestionTypeID *uint  `gorm:"index;column:questiontype_id" json:"questiontype_id,omitempty"`

	PretestID        *uint `gorm:"index;column:pretest_id" json:"pretest_id,omitempty"`
	PosttestID       *uint `gorm:"index;column:posttest_id" json:"posttest_id,omitempty"`
	LevelTestOneID   *uint `gorm:"index;column:leveltestone_id" json:"leveltestone_id,omitempty"`
	LevelTestTwoID   *uint `gorm:"index;column:leveltesttwo_id" json:"leveltesttwo_id,omitempty"`
	LevelTestThreeID *uint `gorm:"index;column:leveltestthree_id" json:"leveltestthree_id,omitempty"`
}

func (Question) TableName() string {
	return "questiontext_instrument"
}

// QuestionMedia is an optional image/audio pair attached to a question.
// questionstext_id is a legacy column name kept for schema compatibility.
type QuestionMedia struct {
	BaseModel

	ID         uint   `gorm:"primaryKey;autoIncrement;column:questionmedia_id" json:"questionmedia_id"`
	QuestionID uint   `gorm:"index;column:questionstext_id" json:"questionstext_id"`
	ImageURL   string `gorm:"size:500;column:questionmedia_image" json:"questionmedia_image"`
	AudioURL   string `gorm:"size:500;column:questionmedia_audio" json:"questionmedia_audio"`
}

func (QuestionMedia) TableName() string {
	return "questionmedia_instrument"
}
