package model

// TestRequirement holds the passing threshold for a test instance of the
// pretest/posttest/leveltesttwo/leveltestthree tiers. A NULL PassingScore is
// the deliberate auto-pass marker: every submission passes that gate.
type TestRequirement struct {
	BaseModel

	ID               uint  `gorm:"primaryKey;autoIncrement;column:requirement_id" json:"requirement_id"`
	PretestID        *uint `gorm:"index;column:pretest_id" json:"pretest_id,omitempty"`
	PosttestID       *uint `gorm:"index;column:posttest_id" json:"posttest_id,omitempty"`
	LevelTestTwoID   *uint `gorm:"index;column:leveltesttwo_id" json:"leveltesttwo_id,omitempty"`
	LevelTestThreeID *uint `gorm:"index;column:leveltestthree_id" json:"leveltestthree_id,omitempty"`
	PassingScore     *int  `gorm:"column:passing_score" json:"passing_score"`
}

func (TestRequirement) TableName() string {
	return "testrequirement_instrument"
}

// LevelTestOneScore is the newer threshold table used only by the first level
// test tier. Same NULL-means-auto-pass convention as TestRequirement.
type LevelTestOneScore struct {
	BaseModel

	ID             uint `gorm:"primaryKey;autoIncrement;column:score_id" json:"score_id"`
	LevelTestOneID uint `gorm:"index;column:leveltestone_id" json:"leveltestone_id"`
	PassingScore   *int `gorm:"column:passing_score" json:"passing_score"`
}

func (LevelTestOneScore) TableName() string {
	return "leveltestone_score"
}
