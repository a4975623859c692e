package repository

import (
	"interview_prep_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) CountCourses() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Course{}).Count(&count).Error
	return count, err
}

func (r *CourseRepository) CountLessons() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Lesson{}).Count(&count).Error
	return count, err
}

// CreateWithLessons inserts a course and its lessons in one transaction.
func (r *CourseRepository) CreateWithLessons(course *model.Course, lessons []model.Lesson) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(course).Error; err != nil {
			return err
		}
		for i := range lessons {
			lessons[i].CourseID = course.ID
			if err := tx.Create(&lessons[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ClearAll removes courses, lessons and enrollments before a re-seed.
func (r *CourseRepository) ClearAll() error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.UserCourse{}).Error; err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Lesson{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Course{}).Error
	})
}

func (r *CourseRepository) FindAll() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.First(&course, id).Error
	return &course, err
}

func (r *CourseRepository) FindLessons(courseID uint) ([]model.Lesson, error) {
	var lessons []model.Lesson
	err := r.DB.Where("course_id = ?", courseID).Order("position").Find(&lessons).Error
	return lessons, err
}

func (r *CourseRepository) FindLesson(courseID, lessonID uint) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.Where("id = ? AND course_id = ?", lessonID, courseID).First(&lesson).Error
	return &lesson, err
}
