package repository

import (
	"interview_prep_backend/internal/model"

	"gorm.io/gorm"
)

type FAQRepository struct {
	DB *gorm.DB
}

func NewFAQRepository(db *gorm.DB) *FAQRepository {
	return &FAQRepository{DB: db}
}

func (r *FAQRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.FAQ{}).Count(&count).Error
	return count, err
}

func (r *FAQRepository) Create(faq *model.FAQ) error {
	return r.DB.Create(faq).Error
}

func (r *FAQRepository) FindAllOrdered() ([]model.FAQ, error) {
	var faqs []model.FAQ
	err := r.DB.Order("position, category").Find(&faqs).Error
	return faqs, err
}

func (r *FAQRepository) Search(query string) ([]model.FAQ, error) {
	var faqs []model.FAQ
	term := "%" + query + "%"
	err := r.DB.Where("question LIKE ? OR answer LIKE ?", term, term).Find(&faqs).Error
	return faqs, err
}
