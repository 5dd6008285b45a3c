package model

// Instrument is a Thai musical instrument, the top-level unit of content.
type Instrument struct {
	BaseModel

	ID          uint   `gorm:"primaryKey;autoIncrement;column:thaiinstrument_id" json:"thaiinstrument_id"`
	Name        string `gorm:"size:255;column:thaiinstrument_name;not null" json:"thaiinstrument_name"`
	Description string `gorm:"type:text;column:thaiinstrument_detail" json:"thaiinstrument_detail"`
	ImageURL    string `gorm:"size:500;column:thaiinstrument_image" json:"thaiinstrument_image"`
	AudioURL    string `gorm:"size:500;column:thaiinstrument_audio" json:"thaiinstrument_audio"`
}

func (Instrument) TableName() string {
	return "thai_instrument"
}

// ComponentMedia is an image/audio pair for one physical component of an
// instrument (a string, a key, a drumhead) shown on the instrument page.
type ComponentMedia struct {
	BaseModel

	ID           uint   `gorm:"primaryKey;autoIncrement;column:componentmedia_id" json:"componentmedia_id"`
	InstrumentID uint   `gorm:"index;column:thaiinstrument_id" json:"thaiinstrument_id"`
	Name         string `gorm:"size:255;column:componentmedia_name" json:"componentmedia_name"`
	ImageURL     string `gorm:"size:500;column:componentmedia_image" json:"componentmedia_image"`
	AudioURL     string `gorm:"size:500;column:componentmedia_audio" json:"componentmedia_audio"`
}

func (ComponentMedia) TableName() string {
	return "componentmedia_instrument"
}
