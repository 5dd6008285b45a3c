// Package testutil provides a throwaway in-memory database for tests.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"thaimusic_backend/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// NewDB opens a fresh in-memory sqlite database with the full schema
// migrated. Each call gets its own database, so tests stay independent.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Instrument{},
		&model.ComponentMedia{},
		&model.Lesson{},
		&model.LearningMedia{},
		&model.Pretest{},
		&model.Posttest{},
		&model.LevelTestOne{},
		&model.LevelTestTwo{},
		&model.LevelTestThree{},
		&model.QuestionType{},
		&model.Question{},
		&model.QuestionMedia{},
		&model.ChoiceAnswer{},
		&model.MatchPair{},
		&model.UserAnswer{},
		&model.TestRequirement{},
		&model.LevelTestOneScore{},
		&model.UserUnlock{},
		&model.UserLevel{},
		&model.PosttestScore{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
