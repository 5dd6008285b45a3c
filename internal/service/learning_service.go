package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"thaimusic_backend/internal/model"
	"thaimusic_backend/internal/repository"
	"thaimusic_backend/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type LearningService struct {
	LessonRepo *repository.LessonRepository
	UnlockRepo *repository.UserUnlockRepository
	Storage    *StorageService
	Logger     *zap.Logger
}

func NewLearningService(
	lessonRepo *repository.LessonRepository,
	unlockRepo *repository.UserUnlockRepository,
	storage *StorageService,
	logger *zap.Logger,
) *LearningService {
	return &LearningService{
		LessonRepo: lessonRepo,
		UnlockRepo: unlockRepo,
		Storage:    storage,
		Logger:     logger,
	}
}

type LessonDetail struct {
	model.Lesson
	Media []model.LearningMedia `json:"media"`
}

// ListLessons returns the instrument's lessons in authored order, with an
// access flag derived from the user's first level test unlock for that
// instrument.
func (s *LearningService) ListLessons(userID, instrumentID uint) ([]model.Lesson, bool, error) {
	lessons, err := s.LessonRepo.ListByInstrument(instrumentID)
	if err != nil {
		return nil, false, err
	}
	canAccess, err := s.UnlockRepo.FindByInstrument(userID, model.TierLevelTestOne, instrumentID)
	if err != nil {
		return nil, false, err
	}
	return lessons, canAccess, nil
}

func (s *LearningService) GetLesson(id uint) (*LessonDetail, error) {
	lesson, err := s.LessonRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	media, err := s.LessonRepo.ListMedia(id)
	if err != nil {
		return nil, err
	}
	return &LessonDetail{Lesson: *lesson, Media: media}, nil
}

func (s *LearningService) CreateLesson(lesson *model.Lesson) error {
	if lesson.Name == "" {
		return util.NewValidationError("lesson_name", "lesson_name is required")
	}
	return s.LessonRepo.Create(lesson)
}

func (s *LearningService) UpdateLesson(lesson *model.Lesson) error {
	if _, err := s.LessonRepo.FindByID(lesson.ID); err != nil {
		return err
	}
	return s.LessonRepo.Update(lesson)
}

func (s *LearningService) DeleteLesson(id uint) error {
	if _, err := s.LessonRepo.FindByID(id); err != nil {
		return err
	}
	return s.LessonRepo.Delete(id)
}

// UploadMedia stores a lesson media file and records it. Audio and video are
// probed for duration through ffmpeg before the temp copy is discarded; a
// probe failure only costs the duration, not the upload.
func (s *LearningService) UploadMedia(ctx context.Context, lessonID uint, mediaType, title string, file *multipart.FileHeader) (*model.LearningMedia, error) {
	if _, err := s.LessonRepo.FindByID(lessonID); err != nil {
		return nil, err
	}
	switch mediaType {
	case model.LearningMediaVideo, model.LearningMediaAudio, model.LearningMediaDoc:
	default:
		return nil, util.NewValidationError("media_type", "media_type must be video, audio or doc")
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "learningmedia-*"+filepath.Ext(file.Filename))
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.ReadFrom(src); err != nil {
		tmp.Close()
		return nil, err
	}
	tmp.Close()

	duration := 0
	if mediaType != model.LearningMediaDoc {
		info, err := util.ProbeMedia(tmp.Name())
		if err != nil {
			s.Logger.Warn("media probe failed", zap.String("file", file.Filename), zap.Error(err))
		} else {
			duration = int(info.Duration)
		}
	}

	filename := fmt.Sprintf("lessons/%d/%s_%s%s", lessonID, mediaType, uuid.New().String(), filepath.Ext(file.Filename))
	url, err := s.Storage.UploadFile(ctx, filename, tmp.Name(), file.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}

	media := &model.LearningMedia{
		LessonID:        lessonID,
		MediaType:       mediaType,
		MediaURL:        url,
		Title:           title,
		DurationSeconds: duration,
	}
	if err := s.LessonRepo.CreateMedia(media); err != nil {
		return nil, err
	}
	return media, nil
}

func (s *LearningService) DeleteMedia(id uint) error {
	if _, err := s.LessonRepo.FindMediaByID(id); err != nil {
		return err
	}
	return s.LessonRepo.DeleteMedia(id)
}
