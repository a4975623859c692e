package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"interview_prep_backend/internal/model"
	"interview_prep_backend/internal/repository"
	"interview_prep_backend/internal/util"

	"gorm.io/gorm"
)

// certificateThreshold is the minimum aptitude score for a certificate.
const certificateThreshold = 80.0

type AptitudeService struct {
	AptitudeRepo *repository.AptitudeRepository
	AI           *AIService
	Gamification *GamificationService
}

func NewAptitudeService(aptitudeRepo *repository.AptitudeRepository, ai *AIService, gamification *GamificationService) *AptitudeService {
	return &AptitudeService{AptitudeRepo: aptitudeRepo, AI: ai, Gamification: gamification}
}

// QuestionSet is a freshly generated test, not yet persisted.
type QuestionSet struct {
	Questions      []model.AptitudeQuestion `json:"questions"`
	Category       string                   `json:"category"`
	Difficulty     string                   `json:"difficulty"`
	TotalQuestions int                      `json:"total_questions"`
	Source         string                   `json:"source"`
}

func (s *AptitudeService) GenerateQuestions(ctx context.Context, category, difficulty string, count int) *QuestionSet {
	if count <= 0 {
		count = 10
	}
	questions, source := s.AI.GenerateAptitudeQuestions(ctx, category, difficulty, count)
	return &QuestionSet{
		Questions:      questions,
		Category:       category,
		Difficulty:     difficulty,
		TotalQuestions: len(questions),
		Source:         string(source),
	}
}

// TestSubmission is a completed attempt as the client reports it.
type TestSubmission struct {
	Category       string                   `json:"category" binding:"required"`
	Difficulty     string                   `json:"difficulty" binding:"required"`
	Questions      []model.AnsweredQuestion `json:"questions_data"`
	CorrectAnswers int                      `json:"correct_answers"`
	TotalQuestions int                      `json:"total_questions" binding:"required,min=1"`
	TimeTaken      int                      `json:"time_taken"`
}

// TestResult reports the banked score and XP after a submission.
type TestResult struct {
	TestID   uint    `json:"test_id"`
	Score    float64 `json:"score"`
	XPEarned int     `json:"xp_earned"`
	TotalXP  int     `json:"total_xp"`
	Level    int     `json:"level"`
	Message  string  `json:"message"`
}

// SubmitTest persists the attempt and awards XP: the integer score plus a
// bonus of 10 at 80% or above, otherwise 5.
func (s *AptitudeService) SubmitTest(userID uint, submission *TestSubmission) (*TestResult, error) {
	score := float64(submission.CorrectAnswers) / float64(submission.TotalQuestions) * 100

	xpEarned := int(score) + 5
	message := "Keep practicing!"
	if score >= 80 {
		xpEarned = int(score) + 10
		message = "Great job!"
	}

	test := &model.AptitudeTest{
		UserID:         userID,
		Category:       submission.Category,
		Score:          score,
		TotalQuestions: submission.TotalQuestions,
		CorrectAnswers: submission.CorrectAnswers,
		TimeTaken:      submission.TimeTaken,
		Questions:      submission.Questions,
	}
	if err := s.AptitudeRepo.Create(test); err != nil {
		return nil, err
	}

	user, err := s.Gamification.AwardXP(userID, xpEarned)
	if err != nil {
		return nil, err
	}
	s.Gamification.GrantFirstTest(userID)

	return &TestResult{
		TestID:   test.ID,
		Score:    score,
		XPEarned: xpEarned,
		TotalXP:  user.TotalXP,
		Level:    user.Level,
		Message:  message,
	}, nil
}

// HistoryEntry summarizes one past attempt.
type HistoryEntry struct {
	ID             uint    `json:"id"`
	Category       string  `json:"category"`
	Score          float64 `json:"score"`
	CorrectAnswers int     `json:"correct_answers"`
	TotalQuestions int     `json:"total_questions"`
	TimeTaken      int     `json:"time_taken"`
	CreatedAt      string  `json:"created_at"`
}

type TestHistory struct {
	Tests        []HistoryEntry `json:"tests"`
	TotalTests   int            `json:"total_tests"`
	AverageScore float64        `json:"average_score"`
}

func (s *AptitudeService) History(userID uint) (*TestHistory, error) {
	tests, err := s.AptitudeRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, 0, len(tests))
	var total float64
	for _, t := range tests {
		total += t.Score
		entries = append(entries, HistoryEntry{
			ID:             t.ID,
			Category:       t.Category,
			Score:          t.Score,
			CorrectAnswers: t.CorrectAnswers,
			TotalQuestions: t.TotalQuestions,
			TimeTaken:      t.TimeTaken,
			CreatedAt:      t.CreatedAt.Format(time.RFC3339),
		})
	}

	history := &TestHistory{Tests: entries, TotalTests: len(entries)}
	if len(entries) > 0 {
		history.AverageScore = total / float64(len(entries))
	}
	return history, nil
}

// CategoryStats aggregates attempts within one category.
type CategoryStats struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
	Best    float64 `json:"best"`
}

type AptitudeStats struct {
	TotalTests   int                      `json:"total_tests"`
	AverageScore float64                  `json:"average_score"`
	BestScore    float64                  `json:"best_score"`
	ByCategory   map[string]CategoryStats `json:"by_category"`
}

func (s *AptitudeService) Stats(userID uint) (*AptitudeStats, error) {
	tests, err := s.AptitudeRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	stats := &AptitudeStats{ByCategory: map[string]CategoryStats{}}
	if len(tests) == 0 {
		return stats, nil
	}

	var total, best float64
	byCategory := map[string][]float64{}
	for _, t := range tests {
		total += t.Score
		if t.Score > best {
			best = t.Score
		}
		byCategory[t.Category] = append(byCategory[t.Category], t.Score)
	}

	stats.TotalTests = len(tests)
	stats.AverageScore = round2(total / float64(len(tests)))
	stats.BestScore = best
	for category, scores := range byCategory {
		var sum, catBest float64
		for _, score := range scores {
			sum += score
			if score > catBest {
				catBest = score
			}
		}
		stats.ByCategory[category] = CategoryStats{
			Count:   len(scores),
			Average: round2(sum / float64(len(scores))),
			Best:    catBest,
		}
	}
	return stats, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Certificate is a verifiable record of a passing attempt.
type Certificate struct {
	CertificateID string  `json:"certificate_id"`
	UserName      string  `json:"user_name"`
	Category      string  `json:"category"`
	Score         float64 `json:"score"`
	CompletedAt   string  `json:"completed_at"`
	Instructor    string  `json:"instructor"`
}

// Certificate issues a certificate for a test scoring at least 80%.
func (s *AptitudeService) Certificate(userID uint, testID uint, userName string) (*Certificate, error) {
	test, err := s.AptitudeRepo.FindByIDAndUser(testID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTestNotFound
		}
		return nil, err
	}

	if test.Score < certificateThreshold {
		return nil, util.ErrScoreTooLow
	}

	return &Certificate{
		CertificateID: fmt.Sprintf("APT-%d-%d-%d", userID, testID, time.Now().Unix()),
		UserName:      userName,
		Category:      test.Category,
		Score:         test.Score,
		CompletedAt:   test.CreatedAt.Format("January 02, 2006"),
		Instructor:    "AI Interview Prep System",
	}, nil
}
