package repository

import (
	"interview_prep_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type InterviewRepository struct {
	DB *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) *InterviewRepository {
	return &InterviewRepository{DB: db}
}

func (r *InterviewRepository) Create(interview *model.MockInterview) error {
	return r.DB.Create(interview).Error
}

func (r *InterviewRepository) Update(interview *model.MockInterview) error {
	return r.DB.Save(interview).Error
}

func (r *InterviewRepository) FindByIDAndUser(id, userID uint) (*model.MockInterview, error) {
	var interview model.MockInterview
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&interview).Error
	return &interview, err
}

func (r *InterviewRepository) FindByUser(userID uint) ([]model.MockInterview, error) {
	var interviews []model.MockInterview
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&interviews).Error
	return interviews, err
}

func (r *InterviewRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.MockInterview{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *InterviewRepository) CountByUserSince(userID uint, since time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&model.MockInterview{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Count(&count).Error
	return count, err
}

func (r *InterviewRepository) FindByUserSince(userID uint, since time.Time) ([]model.MockInterview, error) {
	var interviews []model.MockInterview
	err := r.DB.Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at").Find(&interviews).Error
	return interviews, err
}
