package repository

import (
	"thaimusic_backend/internal/model"

	"gorm.io/gorm"
)

type InstrumentRepository struct {
	DB *gorm.DB
}

func NewInstrumentRepository(db *gorm.DB) *InstrumentRepository {
	return &InstrumentRepository{DB: db}
}

func (r *InstrumentRepository) List() ([]model.Instrument, error) {
	var instruments []model.Instrument
	err := r.DB.Order("thaiinstrument_id ASC").Find(&instruments).Error
	return instruments, err
}

func (r *InstrumentRepository) FindByID(id uint) (*model.Instrument, error) {
	var instrument model.Instrument
	if err := r.DB.First(&instrument, id).Error; err != nil {
		return nil, err
	}
	return &instrument, nil
}

func (r *InstrumentRepository) Create(instrument *model.Instrument) error {
	return r.DB.Create(instrument).Error
}

func (r *InstrumentRepository) Update(instrument *model.Instrument) error {
	return r.DB.Save(instrument).Error
}

func (r *InstrumentRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Instrument{}, id).Error
}

func (r *InstrumentRepository) ListComponentMedia(instrumentID uint) ([]model.ComponentMedia, error) {
	var media []model.ComponentMedia
	err := r.DB.Where("thaiinstrument_id = ?", instrumentID).
		Order("componentmedia_id ASC").Find(&media).Error
	return media, err
}

func (r *InstrumentRepository) CreateComponentMedia(media *model.ComponentMedia) error {
	return r.DB.Create(media).Error
}

func (r *InstrumentRepository) DeleteComponentMedia(id uint) error {
	return r.DB.Delete(&model.ComponentMedia{}, id).Error
}
