package service

import (
	"strings"
	"testing"

	"interview_prep_backend/internal/repository"
	"interview_prep_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCourseService(db *gorm.DB) *CourseService {
	return NewCourseService(
		repository.NewCourseRepository(db),
		repository.NewUserCourseRepository(db),
		NewAIServiceWithGenerator(nil),
		newTestGamification(db),
	)
}

func TestListCoursesSeedsCatalog(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)

	courses, err := svc.ListCourses()
	require.NoError(t, err)
	require.Len(t, courses, 4)

	for _, course := range courses {
		assert.Greater(t, course.TotalLessons, 0)
		assert.Greater(t, course.XPReward, 0)
	}

	// A second call must not duplicate the catalog.
	courses, err = svc.ListCourses()
	require.NoError(t, err)
	assert.Len(t, courses, 4)
}

func TestGetCourseWithholdsLessonContent(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)

	courses, err := svc.ListCourses()
	require.NoError(t, err)

	detail, err := svc.GetCourse(courses[0].ID)
	require.NoError(t, err)
	assert.Len(t, detail.Lessons, courses[0].TotalLessons)

	_, err = svc.GetCourse(9999)
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestEnrollRejectsDuplicates(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)
	user := newTestUser(t, db, "course@example.com")

	courses, err := svc.ListCourses()
	require.NoError(t, err)

	course, err := svc.Enroll(user.ID, courses[0].ID)
	require.NoError(t, err)
	assert.Equal(t, courses[0].Title, course.Title)

	_, err = svc.Enroll(user.ID, courses[0].ID)
	assert.ErrorIs(t, err, util.ErrAlreadyEnrolled)

	_, err = svc.Enroll(user.ID, 9999)
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestUnenrollRemovesProgress(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)
	user := newTestUser(t, db, "course-un@example.com")

	courses, err := svc.ListCourses()
	require.NoError(t, err)

	_, err = svc.Enroll(user.ID, courses[0].ID)
	require.NoError(t, err)
	require.NoError(t, svc.Unenroll(user.ID, courses[0].ID))

	assert.ErrorIs(t, svc.Unenroll(user.ID, courses[0].ID), util.ErrNotEnrolled)
	_, err = svc.GetProgress(user.ID, courses[0].ID)
	assert.ErrorIs(t, err, util.ErrNotEnrolled)
}

func TestUpdateProgressAwardsCompletionXPOnce(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)
	user := newTestUser(t, db, "course-xp@example.com")

	courses, err := svc.ListCourses()
	require.NoError(t, err)
	course := courses[0]

	_, err = svc.Enroll(user.ID, course.ID)
	require.NoError(t, err)

	detail, err := svc.GetCourse(course.ID)
	require.NoError(t, err)

	var result *ProgressResult
	for _, lesson := range detail.Lessons {
		result, err = svc.UpdateProgress(user.ID, course.ID, lesson.ID, true)
		require.NoError(t, err)
	}
	assert.Equal(t, 100.0, result.ProgressPercentage)
	assert.True(t, result.Completed)
	assert.Equal(t, course.XPReward, result.XPEarned)
	assert.Equal(t, course.XPReward, result.TotalXP)

	// Unchecking and re-checking a lesson must not pay the reward again.
	last := detail.Lessons[len(detail.Lessons)-1]
	result, err = svc.UpdateProgress(user.ID, course.ID, last.ID, false)
	require.NoError(t, err)
	assert.True(t, result.Completed)
	assert.Equal(t, 0, result.XPEarned)

	result, err = svc.UpdateProgress(user.ID, course.ID, last.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 0, result.XPEarned)
	assert.Equal(t, course.XPReward, result.TotalXP)
}

func TestUpdateProgressRequiresEnrollment(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)
	user := newTestUser(t, db, "course-noenroll@example.com")

	courses, err := svc.ListCourses()
	require.NoError(t, err)

	_, err = svc.UpdateProgress(user.ID, courses[0].ID, 1, true)
	assert.ErrorIs(t, err, util.ErrNotEnrolled)
}

func TestGetLessonGatedByEnrollment(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)
	user := newTestUser(t, db, "course-lesson@example.com")

	courses, err := svc.ListCourses()
	require.NoError(t, err)
	detail, err := svc.GetCourse(courses[0].ID)
	require.NoError(t, err)
	lessonID := detail.Lessons[0].ID

	_, err = svc.GetLesson(user.ID, courses[0].ID, lessonID)
	assert.ErrorIs(t, err, util.ErrNotEnrolled)

	_, err = svc.Enroll(user.ID, courses[0].ID)
	require.NoError(t, err)

	lesson, err := svc.GetLesson(user.ID, courses[0].ID, lessonID)
	require.NoError(t, err)
	assert.NotEmpty(t, lesson.Content)

	_, err = svc.GetLesson(user.ID, courses[0].ID, 9999)
	assert.ErrorIs(t, err, util.ErrLessonNotFound)
}

func TestCourseCertificateRequiresCompletion(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)
	user := newTestUser(t, db, "course-cert@example.com")

	courses, err := svc.ListCourses()
	require.NoError(t, err)
	course := courses[0]

	_, err = svc.Enroll(user.ID, course.ID)
	require.NoError(t, err)

	_, err = svc.Certificate(user.ID, course.ID, user.Name)
	assert.ErrorIs(t, err, util.ErrCourseNotCompleted)

	detail, err := svc.GetCourse(course.ID)
	require.NoError(t, err)
	for _, lesson := range detail.Lessons {
		_, err = svc.UpdateProgress(user.ID, course.ID, lesson.ID, true)
		require.NoError(t, err)
	}

	cert, err := svc.Certificate(user.ID, course.ID, user.Name)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(cert.CertificateID, "CERT-"))
	assert.Equal(t, course.Title, cert.CourseTitle)
	assert.Equal(t, "AI Interview Prep Team", cert.Instructor)
}
