package service

import (
	"context"
	"testing"

	"interview_prep_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDashboardService(db *gorm.DB) *DashboardService {
	return NewDashboardService(
		repository.NewUserRepository(db),
		repository.NewAptitudeRepository(db),
		repository.NewInterviewRepository(db),
		repository.NewUserCourseRepository(db),
	)
}

func TestDashboardStatsAggregates(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "dash@example.com")

	aptitude := NewAptitudeService(
		repository.NewAptitudeRepository(db),
		NewAIServiceWithGenerator(nil),
		newTestGamification(db),
	)
	for _, correct := range []int{6, 8} {
		_, err := aptitude.SubmitTest(user.ID, &TestSubmission{
			Category:       "Logical",
			Difficulty:     "Medium",
			CorrectAnswers: correct,
			TotalQuestions: 10,
		})
		require.NoError(t, err)
	}

	// One finished interview and one still running; the unfinished one must
	// not drag the average down.
	interview := newInterviewService(db, nil)
	started, err := interview.Start(context.Background(), user.ID, "Backend Developer", "Medium", 1)
	require.NoError(t, err)
	_, err = interview.SubmitResponse(context.Background(), user.ID, started.InterviewID, &ResponseSubmission{
		QuestionID: 1,
		Question:   "Q",
		Response:   "A",
	})
	require.NoError(t, err)
	_, err = interview.Complete(user.ID, started.InterviewID)
	require.NoError(t, err)
	_, err = interview.Start(context.Background(), user.ID, "Backend Developer", "Medium", 1)
	require.NoError(t, err)

	course := newCourseService(db)
	courses, err := course.ListCourses()
	require.NoError(t, err)
	_, err = course.Enroll(user.ID, courses[0].ID)
	require.NoError(t, err)

	stats, err := newDashboardService(db).Stats(user.ID)
	require.NoError(t, err)

	assert.Equal(t, "dash@example.com", stats.User.Email)
	assert.Equal(t, int64(2), stats.Overview.TotalTests)
	assert.Equal(t, 70.0, stats.Overview.AvgTestScore)
	assert.Equal(t, int64(2), stats.Overview.TotalInterviews)
	assert.Equal(t, 70.0, stats.Overview.AvgInterviewScore)
	assert.Equal(t, int64(1), stats.Overview.EnrolledCourses)
	assert.Equal(t, int64(0), stats.Overview.CompletedCourses)
	assert.Equal(t, int64(2), stats.RecentActivity.TestsThisWeek)
	assert.Equal(t, int64(2), stats.RecentActivity.InterviewsThisWeek)
}

func TestDashboardStatsEmptyUser(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "dash-empty@example.com")

	stats, err := newDashboardService(db).Stats(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Overview.TotalTests)
	assert.Equal(t, 0.0, stats.Overview.AvgTestScore)
	assert.Equal(t, 0.0, stats.Overview.AvgInterviewScore)
}

func TestRecentActivityMergesAndLimits(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "dash-act@example.com")

	aptitude := NewAptitudeService(
		repository.NewAptitudeRepository(db),
		NewAIServiceWithGenerator(nil),
		newTestGamification(db),
	)
	_, err := aptitude.SubmitTest(user.ID, &TestSubmission{
		Category:       "Verbal",
		Difficulty:     "Easy",
		CorrectAnswers: 5,
		TotalQuestions: 10,
	})
	require.NoError(t, err)

	interview := newInterviewService(db, nil)
	_, err = interview.Start(context.Background(), user.ID, "Data Scientist", "Easy", 1)
	require.NoError(t, err)

	activities, err := newDashboardService(db).RecentActivity(user.ID, 0)
	require.NoError(t, err)
	require.Len(t, activities, 2)

	types := []string{activities[0].Type, activities[1].Type}
	assert.Contains(t, types, "test")
	assert.Contains(t, types, "interview")

	limited, err := newDashboardService(db).RecentActivity(user.ID, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestProgressChartWindows(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "dash-chart@example.com")

	aptitude := NewAptitudeService(
		repository.NewAptitudeRepository(db),
		NewAIServiceWithGenerator(nil),
		newTestGamification(db),
	)
	_, err := aptitude.SubmitTest(user.ID, &TestSubmission{
		Category:       "Quantitative",
		Difficulty:     "Hard",
		CorrectAnswers: 9,
		TotalQuestions: 10,
	})
	require.NoError(t, err)

	chart, err := newDashboardService(db).ProgressChart(user.ID)
	require.NoError(t, err)
	require.Len(t, chart.TestProgress, 1)
	assert.Equal(t, 90.0, chart.TestProgress[0].Score)
	assert.Equal(t, "Quantitative", chart.TestProgress[0].Category)
	assert.Empty(t, chart.InterviewProgress)
}
