package repository

import (
	"interview_prep_backend/internal/model"

	"gorm.io/gorm"
)

type ResumeRepository struct {
	DB *gorm.DB
}

func NewResumeRepository(db *gorm.DB) *ResumeRepository {
	return &ResumeRepository{DB: db}
}

func (r *ResumeRepository) Create(resume *model.Resume) error {
	return r.DB.Create(resume).Error
}

func (r *ResumeRepository) FindByIDAndUser(id, userID uint) (*model.Resume, error) {
	var resume model.Resume
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&resume).Error
	return &resume, err
}

func (r *ResumeRepository) FindByUser(userID uint) ([]model.Resume, error) {
	var resumes []model.Resume
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&resumes).Error
	return resumes, err
}

func (r *ResumeRepository) Delete(resume *model.Resume) error {
	return r.DB.Delete(resume).Error
}
