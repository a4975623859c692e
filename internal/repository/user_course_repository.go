package repository

import (
	"interview_prep_backend/internal/model"

	"gorm.io/gorm"
)

type UserCourseRepository struct {
	DB *gorm.DB
}

func NewUserCourseRepository(db *gorm.DB) *UserCourseRepository {
	return &UserCourseRepository{DB: db}
}

func (r *UserCourseRepository) Create(uc *model.UserCourse) error {
	return r.DB.Create(uc).Error
}

func (r *UserCourseRepository) Update(uc *model.UserCourse) error {
	return r.DB.Save(uc).Error
}

func (r *UserCourseRepository) Delete(uc *model.UserCourse) error {
	return r.DB.Unscoped().Delete(uc).Error
}

func (r *UserCourseRepository) FindByUserAndCourse(userID, courseID uint) (*model.UserCourse, error) {
	var uc model.UserCourse
	err := r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&uc).Error
	return &uc, err
}

func (r *UserCourseRepository) FindByUser(userID uint) ([]model.UserCourse, error) {
	var ucs []model.UserCourse
	err := r.DB.Where("user_id = ?", userID).Find(&ucs).Error
	return ucs, err
}

func (r *UserCourseRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.UserCourse{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *UserCourseRepository) CountCompletedByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.UserCourse{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Count(&count).Error
	return count, err
}
