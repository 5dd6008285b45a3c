package repository

import (
	"thaimusic_backend/internal/model"

	"gorm.io/gorm"
)

// TestCatalogRepository reads the five test-instance tables. These rows are
// pure catalog entries; thresholds and questions reference them by id.
type TestCatalogRepository struct {
	DB *gorm.DB
}

func NewTestCatalogRepository(db *gorm.DB) *TestCatalogRepository {
	return &TestCatalogRepository{DB: db}
}

func (r *TestCatalogRepository) ListPretestsByInstrument(instrumentID uint) ([]model.Pretest, error) {
	var tests []model.Pretest
	err := r.DB.Where("instrument_id = ?", instrumentID).Order("pretest_id ASC").Find(&tests).Error
	return tests, err
}

func (r *TestCatalogRepository) ListPosttestsByInstrument(instrumentID uint) ([]model.Posttest, error) {
	var tests []model.Posttest
	err := r.DB.Where("instrument_id = ?", instrumentID).Order("posttest_id ASC").Find(&tests).Error
	return tests, err
}

func (r *TestCatalogRepository) ListLevelTestOnesByInstrument(instrumentID uint) ([]model.LevelTestOne, error) {
	var tests []model.LevelTestOne
	err := r.DB.Where("thaiinstrument_id = ?", instrumentID).Order("leveltestone_id ASC").Find(&tests).Error
	return tests, err
}

func (r *TestCatalogRepository) ListLevelTestTwosByLesson(lessonID uint) ([]model.LevelTestTwo, error) {
	var tests []model.LevelTestTwo
	err := r.DB.Where("lesson_id = ?", lessonID).Order("leveltesttwo_id ASC").Find(&tests).Error
	return tests, err
}

func (r *TestCatalogRepository) ListLevelTestThreesByLesson(lessonID uint) ([]model.LevelTestThree, error) {
	var tests []model.LevelTestThree
	err := r.DB.Where("lesson_id = ?", lessonID).Order("leveltestthree_id ASC").Find(&tests).Error
	return tests, err
}

func (r *TestCatalogRepository) FindPretest(id uint) (*model.Pretest, error) {
	var test model.Pretest
	if err := r.DB.First(&test, id).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *TestCatalogRepository) FindPosttest(id uint) (*model.Posttest, error) {
	var test model.Posttest
	if err := r.DB.First(&test, id).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *TestCatalogRepository) FindLevelTestOne(id uint) (*model.LevelTestOne, error) {
	var test model.LevelTestOne
	if err := r.DB.First(&test, id).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *TestCatalogRepository) FindLevelTestTwo(id uint) (*model.LevelTestTwo, error) {
	var test model.LevelTestTwo
	if err := r.DB.First(&test, id).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *TestCatalogRepository) FindLevelTestThree(id uint) (*model.LevelTestThree, error) {
	var test model.LevelTestThree
	if err := r.DB.First(&test, id).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *TestCatalogRepository) FindPretestsByIDs(ids []uint) ([]model.Pretest, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tests []model.Pretest
	err := r.DB.Where("pretest_id IN ?", ids).Find(&tests).Error
	return tests, err
}

func (r *TestCatalogRepository) FindPosttestsByIDs(ids []uint) ([]model.Posttest, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tests []model.Posttest
	err := r.DB.Where("posttest_id IN ?", ids).Find(&tests).Error
	return tests, err
}

func (r *TestCatalogRepository) FindLevelTestOnesByIDs(ids []uint) ([]model.LevelTestOne, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tests []model.LevelTestOne
	err := r.DB.Where("leveltestone_id IN ?", ids).Find(&tests).Error
	return tests, err
}

func (r *TestCatalogRepository) FindLevelTestTwosByIDs(ids []uint) ([]model.LevelTestTwo, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tests []model.LevelTestTwo
	err := r.DB.Where("leveltesttwo_id IN ?", ids).Find(&tests).Error
	return tests, err
}

func (r *TestCatalogRepository) FindLevelTestThreesByIDs(ids []uint) ([]model.LevelTestThree, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tests []model.LevelTestThree
	err := r.DB.Where("leveltestthree_id IN ?", ids).Find(&tests).Error
	return tests, err
}

func (r *TestCatalogRepository) CreatePretest(test *model.Pretest) error {
	return r.DB.Create(test).Error
}

func (r *TestCatalogRepository) CreatePosttest(test *model.Posttest) error {
	return r.DB.Create(test).Error
}

func (r *TestCatalogRepository) CreateLevelTestOne(test *model.LevelTestOne) error {
	return r.DB.Create(test).Error
}

func (r *TestCatalogRepository) CreateLevelTestTwo(test *model.LevelTestTwo) error {
	return r.DB.Create(test).Error
}

func (r *TestCatalogRepository) CreateLevelTestThree(test *model.LevelTestThree) error {
	return r.DB.Create(test).Error
}
