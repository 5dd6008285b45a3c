package model

import "time"

// UserUnlock is a durable grant that user UserID cleared the gate
// (TestType, TestID). Grants are written once on the first passing submission
// and never revoked or updated afterwards.
type UserUnlock struct {
	ID           uint      `gorm:"primaryKey;autoIncrement;column:unlock_id" json:"unlock_id"`
	UserID       uint      `gorm:"column:user_id;uniqueIndex:idx_user_test" json:"user_id"`
	TestType     TestTier  `gorm:"size:20;column:test_type;uniqueIndex:idx_user_test" json:"test_type"`
	TestID       uint      `gorm:"column:test_id;uniqueIndex:idx_user_test" json:"test_id"`
	InstrumentID uint      `gorm:"index;column:instrument_id" json:"instrument_id"`
	UnlockedAt   time.Time `gorm:"column:unlocked_at;autoCreateTime" json:"unlocked_at"`
}

func (UserUnlock) TableName() string {
	return "user_unlock"
}
