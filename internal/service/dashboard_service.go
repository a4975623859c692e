package service

import (
	"fmt"
	"sort"
	"time"

	"interview_prep_backend/internal/repository"
)

type DashboardService struct {
	UserRepo       *repository.UserRepository
	AptitudeRepo   *repository.AptitudeRepository
	InterviewRepo  *repository.InterviewRepository
	UserCourseRepo *repository.UserCourseRepository
}

func NewDashboardService(userRepo *repository.UserRepository, aptitudeRepo *repository.AptitudeRepository, interviewRepo *repository.InterviewRepository, userCourseRepo *repository.UserCourseRepository) *DashboardService {
	return &DashboardService{
		UserRepo:       userRepo,
		AptitudeRepo:   aptitudeRepo,
		InterviewRepo:  interviewRepo,
		UserCourseRepo: userCourseRepo,
	}
}

type DashboardUser struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Level       int    `json:"level"`
	TotalXP     int    `json:"total_xp"`
	StreakCount int    `json:"streak_count"`
}

type DashboardOverview struct {
	TotalTests        int64   `json:"total_tests"`
	AvgTestScore      float64 `json:"avg_test_score"`
	TotalInterviews   int64   `json:"total_interviews"`
	AvgInterviewScore float64 `json:"avg_interview_score"`
	EnrolledCourses   int64   `json:"enrolled_courses"`
	CompletedCourses  int64   `json:"completed_courses"`
}

type RecentActivityCounts struct {
	TestsThisWeek      int64 `json:"tests_this_week"`
	InterviewsThisWeek int64 `json:"interviews_this_week"`
}

type DashboardStats struct {
	User           DashboardUser        `json:"user"`
	Overview       DashboardOverview    `json:"overview"`
	RecentActivity RecentActivityCounts `json:"recent_activity"`
}

// Stats aggregates everything the dashboard landing page shows. Interview
// averages skip unfinished interviews, which still carry a zero score.
func (s *DashboardService) Stats(userID uint) (*DashboardStats, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	tests, err := s.AptitudeRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	var testTotal float64
	for _, t := range tests {
		testTotal += t.Score
	}
	avgTestScore := 0.0
	if len(tests) > 0 {
		avgTestScore = round2(testTotal / float64(len(tests)))
	}

	interviews, err := s.InterviewRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	var interviewTotal float64
	scored := 0
	for _, iv := range interviews {
		if iv.OverallScore > 0 {
			interviewTotal += iv.OverallScore
			scored++
		}
	}
	avgInterviewScore := 0.0
	if scored > 0 {
		avgInterviewScore = round2(interviewTotal / float64(scored))
	}

	enrolled, err := s.UserCourseRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}
	completed, err := s.UserCourseRepo.CountCompletedByUser(userID)
	if err != nil {
		return nil, err
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	recentTests, err := s.AptitudeRepo.CountByUserSince(userID, weekAgo)
	if err != nil {
		return nil, err
	}
	recentInterviews, err := s.InterviewRepo.CountByUserSince(userID, weekAgo)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		User: DashboardUser{
			Name:        user.Name,
			Email:       user.Email,
			Level:       user.Level,
			TotalXP:     user.TotalXP,
			StreakCount: user.StreakCount,
		},
		Overview: DashboardOverview{
			TotalTests:        int64(len(tests)),
			AvgTestScore:      avgTestScore,
			TotalInterviews:   int64(len(interviews)),
			AvgInterviewScore: avgInterviewScore,
			EnrolledCourses:   enrolled,
			CompletedCourses:  completed,
		},
		RecentActivity: RecentActivityCounts{
			TestsThisWeek:      recentTests,
			InterviewsThisWeek: recentInterviews,
		},
	}, nil
}

// Activity is one entry of the combined recent-activity feed.
type Activity struct {
	Type      string  `json:"type"`
	Title     string  `json:"title"`
	Score     float64 `json:"score"`
	Timestamp string  `json:"timestamp"`
}

// RecentActivity merges the latest tests and interviews, newest first.
func (s *DashboardService) RecentActivity(userID uint, limit int) ([]Activity, error) {
	if limit <= 0 {
		limit = 10
	}

	tests, err := s.AptitudeRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	interviews, err := s.InterviewRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	activities := []Activity{}
	for i, t := range tests {
		if i >= 5 {
			break
		}
		activities = append(activities, Activity{
			Type:      "test",
			Title:     fmt.Sprintf("Completed %s Test", t.Category),
			Score:     t.Score,
			Timestamp: t.CreatedAt.Format(time.RFC3339),
		})
	}
	for i, iv := range interviews {
		if i >= 5 {
			break
		}
		activities = append(activities, Activity{
			Type:      "interview",
			Title:     fmt.Sprintf("%s Interview", iv.Role),
			Score:     iv.OverallScore,
			Timestamp: iv.CreatedAt.Format(time.RFC3339),
		})
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].Timestamp > activities[j].Timestamp
	})
	if len(activities) > limit {
		activities = activities[:limit]
	}
	return activities, nil
}

// TestProgressPoint and InterviewProgressPoint feed the 30-day charts.
type TestProgressPoint struct {
	Date     string  `json:"date"`
	Score    float64 `json:"score"`
	Category string  `json:"category"`
}

type InterviewProgressPoint struct {
	Date  string  `json:"date"`
	Score float64 `json:"score"`
	Role  string  `json:"role"`
}

type ProgressChart struct {
	TestProgress      []TestProgressPoint      `json:"test_progress"`
	InterviewProgress []InterviewProgressPoint `json:"interview_progress"`
}

func (s *DashboardService) ProgressChart(userID uint) (*ProgressChart, error) {
	monthAgo := time.Now().AddDate(0, 0, -30)

	tests, err := s.AptitudeRepo.FindByUserSince(userID, monthAgo)
	if err != nil {
		return nil, err
	}
	interviews, err := s.InterviewRepo.FindByUserSince(userID, monthAgo)
	if err != nil {
		return nil, err
	}

	chart := &ProgressChart{
		TestProgress:      []TestProgressPoint{},
		InterviewProgress: []InterviewProgressPoint{},
	}
	for _, t := range tests {
		chart.TestProgress = append(chart.TestProgress, TestProgressPoint{
			Date:     t.CreatedAt.Format("2006-01-02"),
			Score:    t.Score,
			Category: t.Category,
		})
	}
	for _, iv := range interviews {
		chart.InterviewProgress = append(chart.InterviewProgress, InterviewProgressPoint{
			Date:  iv.CreatedAt.Format("2006-01-02"),
			Score: iv.OverallScore,
			Role:  iv.Role,
		})
	}
	return chart, nil
}
