package repository

import (
	"interview_prep_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type AptitudeRepository struct {
	DB *gorm.DB
}

func NewAptitudeRepository(db *gorm.DB) *AptitudeRepository {
	return &AptitudeRepository{DB: db}
}

func (r *AptitudeRepository) Create(test *model.AptitudeTest) error {
	return r.DB.Create(test).Error
}

func (r *AptitudeRepository) FindByIDAndUser(id, userID uint) (*model.AptitudeTest, error) {
	var test model.AptitudeTest
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&test).Error
	return &test, err
}

func (r *AptitudeRepository) FindByUser(userID uint) ([]model.AptitudeTest, error) {
	var tests []model.AptitudeTest
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&tests).Error
	return tests, err
}

func (r *AptitudeRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.AptitudeTest{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *AptitudeRepository) CountByUserSince(userID uint, since time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&model.AptitudeTest{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Count(&count).Error
	return count, err
}

func (r *AptitudeRepository) FindByUserSince(userID uint, since time.Time) ([]model.AptitudeTest, error) {
	var tests []model.AptitudeTest
	err := r.DB.Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at").Find(&tests).Error
	return tests, err
}
