package model

// UserLevel is one row of the ordered level ladder. MinScore is the cumulative
// posttest score required to hold the level; both name and score are unique,
// enforced at admin write time.
type UserLevel struct {
	BaseModel

	ID       uint   `gorm:"primaryKey;autoIncrement;column:level_id" json:"level_id"`
	Name     string `gorm:"size:100;column:level_name;uniqueIndex" json:"level_name"`
	MinScore int    `gorm:"column:score;uniqueIndex" json:"score"`
}

func (UserLevel) TableName() string {
	return "user_level"
}

// PosttestScore stores the latest score a user achieved on a posttest, one row
// per (user, posttest), overwritten on every resubmission. LevelID is
// recomputed and stored on every write rather than derived at read time.
type PosttestScore struct {
	ID         uint  `gorm:"primaryKey;autoIncrement;column:score_id" json:"score_id"`
	UserID     uint  `gorm:"column:user_id;uniqueIndex:idx_user_posttest" json:"user_id"`
	PosttestID uint  `gorm:"column:posttest_id;uniqueIndex:idx_user_posttest" json:"posttest_id"`
	Score      int   `gorm:"column:score" json:"score"`
	LevelID    *uint `gorm:"column:level_id" json:"level_id"`

	BaseModel
}

func (PosttestScore) TableName() string {
	return "posttest_score"
}
