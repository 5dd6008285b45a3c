package model

type Lesson struct {
	BaseModel

	ID           uint   `gorm:"primaryKey;autoIncrement;column:lesson_id" json:"lesson_id"`
	InstrumentID uint   `gorm:"index;column:thaiinstrument_id" json:"thaiinstrument_id"`
	Name         string `gorm:"size:255;column:lesson_name;not null" json:"lesson_name"`
	Detail       string `gorm:"type:text;column:lesson_detail" json:"lesson_detail"`
	Order        int    `gorm:"column:lesson_order;default:0" json:"lesson_order"`
}

func (Lesson) TableName() string {
	return "lesson_instrument"
}

const (
	LearningMediaVideo = "video"
	LearningMediaAudio = "audio"
	LearningMediaDoc   = "doc"
)

// LearningMedia is one piece of instructional media attached to a lesson.
// DurationSeconds is probed at upload time for audio/video and zero otherwise.
type LearningMedia struct {
	BaseModel

	ID              uint   `gorm:"primaryKey;autoIncrement;column:learningmedia_id" json:"learningmedia_id"`
	LessonID        uint   `gorm:"index;column:lesson_id" json:"lesson_id"`
	MediaType       string `gorm:"size:20;column:media_type" json:"media_type"`
	MediaURL        string `gorm:"size:500;column:media_url" json:"media_url"`
	Title           string `gorm:"size:255;column:media_title" json:"media_title"`
	DurationSeconds int    `gorm:"column:duration_seconds;default:0" json:"duration_seconds"`
}

func (LearningMedia) TableName() string {
	return "learningmedia_instrument"
}
