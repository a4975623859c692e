package service

import (
	"context"
	"strings"
	"testing"

	"interview_prep_backend/internal/model"
	"interview_prep_backend/internal/repository"
	"interview_prep_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateQuestionsDefaultsCount(t *testing.T) {
	svc := NewAptitudeService(nil, NewAIServiceWithGenerator(nil), nil)

	set := svc.GenerateQuestions(context.Background(), "Logical", "Medium", 0)

	assert.Len(t, set.Questions, 10)
	assert.Equal(t, 10, set.TotalQuestions)
	assert.Equal(t, "Logical", set.Category)
	assert.Equal(t, string(SourceFallback), set.Source)
}

func TestSubmitTestScoresAndAwardsXP(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "apt@example.com")
	svc := NewAptitudeService(
		repository.NewAptitudeRepository(db),
		NewAIServiceWithGenerator(nil),
		newTestGamification(db),
	)

	result, err := svc.SubmitTest(user.ID, &TestSubmission{
		Category:       "Logical",
		Difficulty:     "Medium",
		CorrectAnswers: 8,
		TotalQuestions: 10,
		TimeTaken:      300,
	})
	require.NoError(t, err)

	assert.Equal(t, 80.0, result.Score)
	assert.Equal(t, 90, result.XPEarned)
	assert.Equal(t, 90, result.TotalXP)
	assert.Equal(t, "Great job!", result.Message)

	has, err := repository.NewAchievementRepository(db).HasType(user.ID, model.AchievementFirstTest)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestSubmitTestLowScoreBonus(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "apt-low@example.com")
	svc := NewAptitudeService(
		repository.NewAptitudeRepository(db),
		NewAIServiceWithGenerator(nil),
		newTestGamification(db),
	)

	result, err := svc.SubmitTest(user.ID, &TestSubmission{
		Category:       "Verbal",
		Difficulty:     "Easy",
		CorrectAnswers: 4,
		TotalQuestions: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, 40.0, result.Score)
	assert.Equal(t, 45, result.XPEarned)
	assert.Equal(t, "Keep practicing!", result.Message)
}

func TestHistoryAveragesScores(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "apt-hist@example.com")
	svc := NewAptitudeService(
		repository.NewAptitudeRepository(db),
		NewAIServiceWithGenerator(nil),
		newTestGamification(db),
	)

	for _, correct := range []int{6, 8} {
		_, err := svc.SubmitTest(user.ID, &TestSubmission{
			Category:       "Quantitative",
			Difficulty:     "Medium",
			CorrectAnswers: correct,
			TotalQuestions: 10,
		})
		require.NoError(t, err)
	}

	history, err := svc.History(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, history.TotalTests)
	assert.Equal(t, 70.0, history.AverageScore)
}

func TestStatsGroupsByCategory(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "apt-stats@example.com")
	svc := NewAptitudeService(
		repository.NewAptitudeRepository(db),
		NewAIServiceWithGenerator(nil),
		newTestGamification(db),
	)

	submissions := []struct {
		category string
		correct  int
	}{
		{"Logical", 9},
		{"Logical", 7},
		{"Verbal", 5},
	}
	for _, sub := range submissions {
		_, err := svc.SubmitTest(user.ID, &TestSubmission{
			Category:       sub.category,
			Difficulty:     "Medium",
			CorrectAnswers: sub.correct,
			TotalQuestions: 10,
		})
		require.NoError(t, err)
	}

	stats, err := svc.Stats(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalTests)
	assert.Equal(t, 70.0, stats.AverageScore)
	assert.Equal(t, 90.0, stats.BestScore)

	logical := stats.ByCategory["Logical"]
	assert.Equal(t, 2, logical.Count)
	assert.Equal(t, 80.0, logical.Average)
	assert.Equal(t, 90.0, logical.Best)
}

func TestCertificateRequiresPassingScore(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "apt-cert@example.com")
	svc := NewAptitudeService(
		repository.NewAptitudeRepository(db),
		NewAIServiceWithGenerator(nil),
		newTestGamification(db),
	)

	failed, err := svc.SubmitTest(user.ID, &TestSubmission{
		Category:       "Logical",
		Difficulty:     "Hard",
		CorrectAnswers: 7,
		TotalQuestions: 10,
	})
	require.NoError(t, err)

	_, err = svc.Certificate(user.ID, failed.TestID, user.Name)
	assert.ErrorIs(t, err, util.ErrScoreTooLow)

	passed, err := svc.SubmitTest(user.ID, &TestSubmission{
		Category:       "Logical",
		Difficulty:     "Hard",
		CorrectAnswers: 8,
		TotalQuestions: 10,
	})
	require.NoError(t, err)

	cert, err := svc.Certificate(user.ID, passed.TestID, user.Name)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(cert.CertificateID, "APT-"))
	assert.Equal(t, user.Name, cert.UserName)
	assert.Equal(t, 80.0, cert.Score)
	assert.Equal(t, "AI Interview Prep System", cert.Instructor)
}

func TestCertificateUnknownTest(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "apt-missing@example.com")
	svc := NewAptitudeService(
		repository.NewAptitudeRepository(db),
		NewAIServiceWithGenerator(nil),
		newTestGamification(db),
	)

	_, err := svc.Certificate(user.ID, 999, user.Name)
	assert.ErrorIs(t, err, util.ErrTestNotFound)
}
