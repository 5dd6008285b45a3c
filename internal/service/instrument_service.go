package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"thaimusic_backend/internal/model"
	"thaimusic_backend/internal/repository"
	"thaimusic_backend/internal/util"

	"github.com/google/uuid"
)

type InstrumentService struct {
	Repo    *repository.InstrumentRepository
	Storage *StorageService
}

func NewInstrumentService(repo *repository.InstrumentRepository, storage *StorageService) *InstrumentService {
	return &InstrumentService{Repo: repo, Storage: storage}
}

type InstrumentDetail struct {
	model.Instrument
	Components []model.ComponentMedia `json:"components"`
}

func (s *InstrumentService) List() ([]model.Instrument, error) {
	return s.Repo.List()
}

func (s *InstrumentService) Get(id uint) (*InstrumentDetail, error) {
	instrument, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	components, err := s.Repo.ListComponentMedia(id)
	if err != nil {
		return nil, err
	}
	return &InstrumentDetail{Instrument: *instrument, Components: components}, nil
}

func (s *InstrumentService) Create(instrument *model.Instrument) error {
	if instrument.Name == "" {
		return util.NewValidationError("thaiinstrument_name", "thaiinstrument_name is required")
	}
	return s.Repo.Create(instrument)
}

func (s *InstrumentService) Update(instrument *model.Instrument) error {
	if _, err := s.Repo.FindByID(instrument.ID); err != nil {
		return err
	}
	return s.Repo.Update(instrument)
}

func (s *InstrumentService) Delete(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

// UploadMedia stores an image or audio file for the instrument and updates
// the matching URL column.
func (s *InstrumentService) UploadMedia(ctx context.Context, id uint, kind string, file *multipart.FileHeader) (string, error) {
	instrument, err := s.Repo.FindByID(id)
	if err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	filename := fmt.Sprintf("instruments/%d/%s_%s%s", id, kind, uuid.New().String(), filepath.Ext(file.Filename))
	url, err := s.Storage.Upload(ctx, filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}

	switch kind {
	case "image":
		instrument.ImageURL = url
	case "audio":
		instrument.AudioURL = url
	default:
		return "", util.NewValidationError("kind", "kind must be image or audio")
	}
	if err := s.Repo.Update(instrument); err != nil {
		return "", err
	}
	return url, nil
}

func (s *InstrumentService) AddComponentMedia(media *model.ComponentMedia) error {
	if _, err := s.Repo.FindByID(media.InstrumentID); err != nil {
		return err
	}
	if media.Name == "" {
		return util.NewValidationError("componentmedia_name", "componentmedia_name is required")
	}
	return s.Repo.CreateComponentMedia(media)
}

func (s *InstrumentService) DeleteComponentMedia(id uint) error {
	return s.Repo.DeleteComponentMedia(id)
}
