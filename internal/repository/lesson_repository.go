package repository

import (
	"thaimusic_backend/internal/model"

	"gorm.io/gorm"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

func (r *LessonRepository) ListByInstrument(instrumentID uint) ([]model.Lesson, error) {
	var lessons []model.Lesson
	err := r.DB.Where("thaiinstrument_id = ?", instrumentID).
		Order("lesson_order ASC, lesson_id ASC").Find(&lessons).Error
	return lessons, err
}

func (r *LessonRepository) FindByID(id uint) (*model.Lesson, error) {
	var lesson model.Lesson
	if err := r.DB.First(&lesson, id).Error; err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (r *LessonRepository) Create(lesson *model.Lesson) error {
	return r.DB.Create(lesson).Error
}

func (r *LessonRepository) Update(lesson *model.Lesson) error {
	return r.DB.Save(lesson).Error
}

func (r *LessonRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Lesson{}, id).Error
}

func (r *LessonRepository) ListMedia(lessonID uint) ([]model.LearningMedia, error) {
	var media []model.LearningMedia
	err := r.DB.Where("lesson_id = ?", lessonID).
		Order("learningmedia_id ASC").Find(&media).Error
	return media, err
}

func (r *LessonRepository) FindMediaByID(id uint) (*model.LearningMedia, error) {
	var media model.LearningMedia
	if err := r.DB.First(&media, id).Error; err != nil {
		return nil, err
	}
	return &media, nil
}

func (r *LessonRepository) CreateMedia(media *model.LearningMedia) error {
	return r.DB.Create(media).Error
}

func (r *LessonRepository) DeleteMedia(id uint) error {
	return r.DB.Delete(&model.LearningMedia{}, id).Error
}
