package database

import (
	"fmt"
	"log"

	"thaimusic_backend/internal/config"
	"thaimusic_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")
	return db, nil
}

// Migrate creates every table. Seed data is deliberately limited to the level
// ladder, which the level calculator needs before any posttest is scored.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
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
		return err
	}

	log.Println("Database migration completed")

	var count int64
	db.Model(&model.UserLevel{}).Count(&count)
	if count == 0 {
		defaultLevels := []model.UserLevel{
			{Name: "Beginner", MinScore: 0},
			{Name: "Intermediate", MinScore: 100},
			{Name: "Advanced", MinScore: 500},
		}
		for _, l := range defaultLevels {
			db.Create(&l)
		}
	}
	return nil
}
