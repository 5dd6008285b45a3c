package model

// The five test-instance tables. Pretest and posttest hang off an instrument,
// level tests one hangs off an instrument, level tests two/three hang off a
// lesson. Questions reference these through tier-specific nullable foreign keys.

type Pretest struct {
	BaseModel

	ID           uint   `gorm:"primaryKey;autoIncrement;column:pretest_id" json:"pretest_id"`
	InstrumentID uint   `gorm:"index;column:instrument_id" json:"instrument_id"`
	Name         string `gorm:"size:255;column:pretest_name" json:"pretest_name"`
}

func (Pretest) TableName() string {
	return "pretest_instrument"
}

type Posttest struct {
	BaseModel

	ID           uint   `gorm:"primaryKey;autoIncrement;column:posttest_id" json:"posttest_id"`
	InstrumentID uint   `gorm:"index;column:instrument_id" json:"instrument_id"`
	Name         string `gorm:"size:255;column:posttest_name" json:"posttest_name"`
}

func (Posttest) TableName() string {
	return "posttest_instrument"
}

type LevelTestOne struct {
	BaseModel

	ID           uint   `gorm:"primaryKey;autoIncrement;column:leveltestone_id" json:"leveltestone_id"`
	InstrumentID uint   `gorm:"index;column:thaiinstrument_id" json:"thaiinstrument_id"`
	Name         string `gorm:"size:255;column:leveltestone_name" json:"leveltestone_name"`
}

func (LevelTestOne) TableName() string {
	return "leveltestone_instrument"
}

type LevelTestTwo struct {
	BaseModel

	ID       uint   `gorm:"primaryKey;autoIncrement;column:leveltesttwo_id" json:"leveltesttwo_id"`
	LessonID uint   `gorm:"index;column:lesson_id" json:"lesson_id"`
	Name     string `gorm:"size:255;column:leveltwo_name" json:"leveltwo_name"`
}

func (LevelTestTwo) TableName() string {
	return "leveltesttwo_instrument"
}

type LevelTestThree struct {
	BaseModel

	ID       uint   `gorm:"primaryKey;autoIncrement;column:leveltestthree_id" json:"leveltestthree_id"`
	LessonID uint   `gorm:"index;column:lesson_id" json:"lesson_id"`
	Name     string `gorm:"size:255;column:levelthree_name" json:"levelthree_name"`
}

func (LevelTestThree) TableName() string {
	return "leveltestthree_instrument"
}
