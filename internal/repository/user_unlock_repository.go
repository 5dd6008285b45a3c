package repository

import (
	"errors"

	"thaimusic_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserUnlockRepository struct {
	DB *gorm.DB
}

func NewUserUnlockRepository(db *gorm.DB) *UserUnlockRepository {
	return &UserUnlockRepository{DB: db}
}

// Find returns the grant for (user, tier, test) or nil; absence is not an error.
func (r *UserUnlockRepository) Find(userID uint, tier model.TestTier, testID uint) (*model.UserUnlock, error) {
	var unlock model.UserUnlock
	err := r.DB.Where("user_id = ? AND test_type = ? AND test_id = ?", userID, tier, testID).
		First(&unlock).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &unlock, nil
}

// Upsert inserts the grant, doing nothing on conflict with an existing row.
// The conflict target is the (user_id, test_type, test_id) unique index, so
// two concurrent first-time passes cannot produce duplicate grants.
func (r *UserUnlockRepository) Upsert(unlock *model.UserUnlock) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "test_type"}, {Name: "test_id"}},
		DoNothing: true,
	}).Create(unlock).Error
}

func (r *UserUnlockRepository) ListByUser(userID uint) ([]model.UserUnlock, error) {
	var unlocks []model.UserUnlock
	err := r.DB.Where("user_id = ?", userID).Order("unlocked_at DESC").Find(&unlocks).Error
	return unlocks, err
}

// FindByInstrument checks whether the user holds any grant of the given tier
// scoped to an instrument, regardless of the specific test id.
func (r *UserUnlockRepository) FindByInstrument(userID uint, tier model.TestTier, instrumentID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.UserUnlock{}).
		Where("user_id = ? AND test_type = ? AND instrument_id = ?", userID, tier, instrumentID).
		Count(&count).Error
	return count > 0, err
}
