package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"interview_prep_backend/internal/model"
	"interview_prep_backend/internal/repository"
	"interview_prep_backend/internal/util"
	"interview_prep_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CourseService struct {
	CourseRepo     *repository.CourseRepository
	UserCourseRepo *repository.UserCourseRepository
	AI             *AIService
	Gamification   *GamificationService
}

func NewCourseService(courseRepo *repository.CourseRepository, userCourseRepo *repository.UserCourseRepository, ai *AIService, gamification *GamificationService) *CourseService {
	return &CourseService{
		CourseRepo:     courseRepo,
		UserCourseRepo: userCourseRepo,
		AI:             ai,
		Gamification:   gamification,
	}
}

// ListCourses returns the catalog, seeding it on first use. A catalog with
// courses but no lessons is treated as corrupt and re-seeded.
func (s *CourseService) ListCourses() ([]model.Course, error) {
	if err := s.ensureSeeded(); err != nil {
		return nil, err
	}
	return s.CourseRepo.FindAll()
}

func (s *CourseService) ensureSeeded() error {
	courseCount, err := s.CourseRepo.CountCourses()
	if err != nil {
		return err
	}
	lessonCount, err := s.CourseRepo.CountLessons()
	if err != nil {
		return err
	}

	if courseCount > 0 && lessonCount > 0 {
		return nil
	}

	if courseCount > 0 {
		logger.Log.Warn("Course catalog has no lessons, re-seeding")
		if err := s.CourseRepo.ClearAll(); err != nil {
			return err
		}
	}

	for _, seed := range seedCourses() {
		course := seed.course
		if err := s.CourseRepo.CreateWithLessons(&course, seed.lessons); err != nil {
			return err
		}
	}
	logger.Log.Info("Seeded course catalog", zap.Int("courses", len(seedCourses())))
	return nil
}

// CourseDetail is the catalog entry with its lesson outline. Lesson content
// is withheld here; it requires enrollment.
type CourseDetail struct {
	model.Course
	Lessons []LessonOutline `json:"lessons"`
}

type LessonOutline struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	Position        int    `json:"order"`
	DurationMinutes int    `json:"duration_minutes"`
}

func (s *CourseService) GetCourse(courseID uint) (*CourseDetail, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	lessons, err := s.CourseRepo.FindLessons(courseID)
	if err != nil {
		return nil, err
	}

	outline := make([]LessonOutline, 0, len(lessons))
	for _, lesson := range lessons {
		outline = append(outline, LessonOutline{
			ID:              lesson.ID,
			Title:           lesson.Title,
			Position:        lesson.Position,
			DurationMinutes: lesson.DurationMinutes,
		})
	}

	return &CourseDetail{Course: *course, Lessons: outline}, nil
}

// EnrolledCourse is one row of a user's course list.
type EnrolledCourse struct {
	ID                 uint    `json:"id"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	ProgressPercentage float64 `json:"progress_percentage"`
	Completed          bool    `json:"completed"`
	StartedAt          string  `json:"started_at"`
}

func (s *CourseService) MyCourses(userID uint) ([]EnrolledCourse, error) {
	enrollments, err := s.UserCourseRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	courses := make([]EnrolledCourse, 0, len(enrollments))
	for _, uc := range enrollments {
		course, err := s.CourseRepo.FindByID(uc.CourseID)
		if err != nil {
			continue
		}
		courses = append(courses, EnrolledCourse{
			ID:                 course.ID,
			Title:              course.Title,
			Description:        course.Description,
			ProgressPercentage: uc.ProgressPercentage,
			Completed:          uc.Completed,
			StartedAt:          uc.StartedAt.Format(time.RFC3339),
		})
	}
	return courses, nil
}

// Enroll creates the enrollment; a second attempt is ErrAlreadyEnrolled.
func (s *CourseService) Enroll(userID, courseID uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	if _, err := s.UserCourseRepo.FindByUserAndCourse(userID, courseID); err == nil {
		return nil, util.ErrAlreadyEnrolled
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	enrollment := &model.UserCourse{
		UserID:           userID,
		CourseID:         courseID,
		CompletedLessons: []uint{},
		StartedAt:        time.Now(),
	}
	if err := s.UserCourseRepo.Create(enrollment); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Unenroll(userID, courseID uint) error {
	enrollment, err := s.UserCourseRepo.FindByUserAndCourse(userID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrNotEnrolled
		}
		return err
	}
	return s.UserCourseRepo.Delete(enrollment)
}

// ProgressResult reports progress after a lesson toggle. XPEarned is non-zero
// only on the transition to completed; re-completing pays nothing.
type ProgressResult struct {
	ProgressPercentage float64 `json:"progress_percentage"`
	Completed          bool    `json:"completed"`
	XPEarned           int     `json:"xp_earned"`
	TotalXP            int     `json:"total_xp"`
}

// UpdateProgress marks a lesson complete or incomplete and recomputes
// percentage. The course completion XP is edge-triggered: once Completed is
// set it never resets, so unchecking lessons cannot re-earn the reward.
func (s *CourseService) UpdateProgress(userID, courseID, lessonID uint, completed bool) (*ProgressResult, error) {
	enrollment, err := s.UserCourseRepo.FindByUserAndCourse(userID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotEnrolled
		}
		return nil, err
	}

	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		return nil, err
	}

	lessons := enrollment.CompletedLessons
	if completed {
		if !containsLesson(lessons, lessonID) {
			lessons = append(lessons, lessonID)
		}
	} else {
		lessons = removeLesson(lessons, lessonID)
	}
	enrollment.CompletedLessons = lessons

	progress := float64(len(lessons)) / float64(course.TotalLessons) * 100
	enrollment.ProgressPercentage = progress

	xpEarned := 0
	if len(lessons) >= course.TotalLessons && !enrollment.Completed {
		enrollment.Completed = true
		now := time.Now()
		enrollment.CompletedAt = &now
		xpEarned = course.XPReward
	}

	if err := s.UserCourseRepo.Update(enrollment); err != nil {
		return nil, err
	}

	result := &ProgressResult{
		ProgressPercentage: progress,
		Completed:          enrollment.Completed,
		XPEarned:           xpEarned,
	}

	if xpEarned > 0 {
		user, err := s.Gamification.AwardXP(userID, xpEarned)
		if err != nil {
			return nil, err
		}
		result.TotalXP = user.TotalXP
	} else {
		user, err := s.Gamification.UserRepo.FindByID(userID)
		if err != nil {
			return nil, err
		}
		result.TotalXP = user.TotalXP
	}

	return result, nil
}

func containsLesson(lessons []uint, lessonID uint) bool {
	for _, id := range lessons {
		if id == lessonID {
			return true
		}
	}
	return false
}

func removeLesson(lessons []uint, lessonID uint) []uint {
	out := lessons[:0]
	for _, id := range lessons {
		if id != lessonID {
			out = append(out, id)
		}
	}
	return out
}

// ProgressDetail is the stored progress for one enrollment.
type ProgressDetail struct {
	ProgressPercentage float64 `json:"progress_percentage"`
	CompletedLessons   []uint  `json:"completed_lessons"`
	Completed          bool    `json:"completed"`
	StartedAt          string  `json:"started_at"`
	CompletedAt        *string `json:"completed_at"`
}

func (s *CourseService) GetProgress(userID, courseID uint) (*ProgressDetail, error) {
	enrollment, err := s.UserCourseRepo.FindByUserAndCourse(userID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotEnrolled
		}
		return nil, err
	}

	detail := &ProgressDetail{
		ProgressPercentage: enrollment.ProgressPercentage,
		CompletedLessons:   enrollment.CompletedLessons,
		Completed:          enrollment.Completed,
		StartedAt:          enrollment.StartedAt.Format(time.RFC3339),
	}
	if detail.CompletedLessons == nil {
		detail.CompletedLessons = []uint{}
	}
	if enrollment.CompletedAt != nil {
		completedAt := enrollment.CompletedAt.Format(time.RFC3339)
		detail.CompletedAt = &completedAt
	}
	return detail, nil
}

// GetLesson returns full lesson content; enrollment is required.
func (s *CourseService) GetLesson(userID, courseID, lessonID uint) (*model.Lesson, error) {
	if _, err := s.UserCourseRepo.FindByUserAndCourse(userID, courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotEnrolled
		}
		return nil, err
	}

	lesson, err := s.CourseRepo.FindLesson(courseID, lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}
	return lesson, nil
}

// ExplainLesson asks the tutor model to explain a lesson's concept.
func (s *CourseService) ExplainLesson(ctx context.Context, courseID, lessonID uint) (string, Source, error) {
	lesson, err := s.CourseRepo.FindLesson(courseID, lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", SourceFallback, util.ErrLessonNotFound
		}
		return "", SourceFallback, err
	}

	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		return "", SourceFallback, err
	}

	explanation, source := s.AI.ExplainLessonConcept(ctx, course.Title, lesson.Title, lesson.Content)
	return explanation, source, nil
}

// CourseCertificate is issued once every lesson of a course is done.
type CourseCertificate struct {
	CertificateID string `json:"certificate_id"`
	UserName      string `json:"user_name"`
	CourseTitle   string `json:"course_title"`
	CompletedAt   string `json:"completed_at"`
	Instructor    string `json:"instructor"`
	DurationHours int    `json:"duration_hours"`
}

func (s *CourseService) Certificate(userID, courseID uint, userName string) (*CourseCertificate, error) {
	enrollment, err := s.UserCourseRepo.FindByUserAndCourse(userID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotCompleted
		}
		return nil, err
	}
	if !enrollment.Completed {
		return nil, util.ErrCourseNotCompleted
	}

	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		return nil, err
	}

	completedAt := time.Now()
	if enrollment.CompletedAt != nil {
		completedAt = *enrollment.CompletedAt
	}

	return &CourseCertificate{
		CertificateID: fmt.Sprintf("CERT-%d-%d-%d", userID, courseID, time.Now().Unix()),
		UserName:      userName,
		CourseTitle:   course.Title,
		CompletedAt:   completedAt.Format("January 02, 2006"),
		Instructor:    "AI Interview Prep Team",
		DurationHours: course.DurationHours,
	}, nil
}
