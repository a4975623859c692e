package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"interview_prep_backend/internal/model"
	"interview_prep_backend/internal/repository"
	"interview_prep_backend/internal/util"

	"gorm.io/gorm"
)

// interviewCertThreshold is the minimum overall score for an interview certificate.
const interviewCertThreshold = 70.0

type InterviewService struct {
	InterviewRepo *repository.InterviewRepository
	AI            *AIService
	Gamification  *GamificationService
}

func NewInterviewService(interviewRepo *repository.InterviewRepository, ai *AIService, gamification *GamificationService) *InterviewService {
	return &InterviewService{InterviewRepo: interviewRepo, AI: ai, Gamification: gamification}
}

// StartedInterview is the session handed back when an interview begins.
type StartedInterview struct {
	InterviewID    uint                      `json:"interview_id"`
	Role           string                    `json:"role"`
	Difficulty     string                    `json:"difficulty"`
	Questions      []model.InterviewQuestion `json:"questions"`
	TotalQuestions int                       `json:"total_questions"`
	Source         string                    `json:"source"`
}

func (s *InterviewService) Start(ctx context.Context, userID uint, role, difficulty string, count int) (*StartedInterview, error) {
	if count <= 0 {
		count = 5
	}
	questions, source := s.AI.GenerateInterviewQuestions(ctx, role, difficulty, count)

	interview := &model.MockInterview{
		UserID:     userID,
		Role:       role,
		Difficulty: difficulty,
		Questions:  questions,
		Responses:  []model.InterviewResponse{},
		Feedback:   []model.ResponseEvaluation{},
	}
	if err := s.InterviewRepo.Create(interview); err != nil {
		return nil, err
	}

	return &StartedInterview{
		InterviewID:    interview.ID,
		Role:           role,
		Difficulty:     difficulty,
		Questions:      questions,
		TotalQuestions: len(questions),
		Source:         string(source),
	}, nil
}

// ResponseSubmission is one answered question in a running interview.
type ResponseSubmission struct {
	QuestionID     int      `json:"question_id"`
	Question       string   `json:"question" binding:"required"`
	Response       string   `json:"response" binding:"required"`
	ExpectedPoints []string `json:"expected_points"`
}

// ResponseResult returns the per-answer evaluation. XPEarned is advisory
// feedback for the client; XP is only banked when the interview completes.
type ResponseResult struct {
	Evaluation model.ResponseEvaluation `json:"evaluation"`
	XPEarned   int                      `json:"xp_earned"`
	Source     string                   `json:"source"`
}

func (s *InterviewService) SubmitResponse(ctx context.Context, userID, interviewID uint, submission *ResponseSubmission) (*ResponseResult, error) {
	interview, err := s.InterviewRepo.FindByIDAndUser(interviewID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInterviewNotFound
		}
		return nil, err
	}

	evaluation, source := s.AI.EvaluateInterviewResponse(ctx, submission.Question, submission.Response, submission.ExpectedPoints)
	evaluation.QuestionID = submission.QuestionID

	interview.Responses = append(interview.Responses, model.InterviewResponse{
		QuestionID: submission.QuestionID,
		Question:   submission.Question,
		Response:   submission.Response,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
	interview.Feedback = append(interview.Feedback, evaluation)

	if err := s.InterviewRepo.Update(interview); err != nil {
		return nil, err
	}

	return &ResponseResult{
		Evaluation: evaluation,
		XPEarned:   int(evaluation.Score) / 10,
		Source:     string(source),
	}, nil
}

// CompletionResult reports the final score and the XP banked for it.
type CompletionResult struct {
	OverallScore    float64                    `json:"overall_score"`
	XPEarned        int                        `json:"xp_earned"`
	TotalXP         int                        `json:"total_xp"`
	Level           int                        `json:"level"`
	FeedbackSummary []model.ResponseEvaluation `json:"feedback_summary"`
}

// Complete averages the per-answer scores, stores the result and awards XP:
// the integer score plus a bonus of 20 at 80 or above, otherwise 10.
func (s *InterviewService) Complete(userID, interviewID uint) (*CompletionResult, error) {
	interview, err := s.InterviewRepo.FindByIDAndUser(interviewID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInterviewNotFound
		}
		return nil, err
	}

	var overall float64
	if len(interview.Feedback) > 0 {
		var sum float64
		for _, f := range interview.Feedback {
			sum += f.Score
		}
		overall = sum / float64(len(interview.Feedback))
	}

	interview.OverallScore = overall
	if err := s.InterviewRepo.Update(interview); err != nil {
		return nil, err
	}

	xpEarned := int(overall) + 10
	if overall >= 80 {
		xpEarned = int(overall) + 20
	}

	user, err := s.Gamification.AwardXP(userID, xpEarned)
	if err != nil {
		return nil, err
	}
	s.Gamification.GrantFirstInterview(userID)

	return &CompletionResult{
		OverallScore:    overall,
		XPEarned:        xpEarned,
		TotalXP:         user.TotalXP,
		Level:           user.Level,
		FeedbackSummary: interview.Feedback,
	}, nil
}

// InterviewSummary is one row of the interview history listing.
type InterviewSummary struct {
	ID             uint    `json:"id"`
	Role           string  `json:"role"`
	Difficulty     string  `json:"difficulty"`
	OverallScore   float64 `json:"overall_score"`
	TotalQuestions int     `json:"total_questions"`
	CreatedAt      string  `json:"created_at"`
}

func (s *InterviewService) History(userID uint) ([]InterviewSummary, error) {
	interviews, err := s.InterviewRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]InterviewSummary, 0, len(interviews))
	for _, iv := range interviews {
		summaries = append(summaries, InterviewSummary{
			ID:             iv.ID,
			Role:           iv.Role,
			Difficulty:     iv.Difficulty,
			OverallScore:   iv.OverallScore,
			TotalQuestions: len(iv.Questions),
			CreatedAt:      iv.CreatedAt.Format(time.RFC3339),
		})
	}
	return summaries, nil
}

// InterviewFeedback is the full transcript with evaluations.
type InterviewFeedback struct {
	InterviewID  uint                       `json:"interview_id"`
	Role         string                     `json:"role"`
	Difficulty   string                     `json:"difficulty"`
	OverallScore float64                    `json:"overall_score"`
	Questions    []model.InterviewQuestion  `json:"questions"`
	Responses    []model.InterviewResponse  `json:"responses"`
	Feedback     []model.ResponseEvaluation `json:"feedback"`
}

func (s *InterviewService) Feedback(userID, interviewID uint) (*InterviewFeedback, error) {
	interview, err := s.InterviewRepo.FindByIDAndUser(interviewID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInterviewNotFound
		}
		return nil, err
	}

	return &InterviewFeedback{
		InterviewID:  interview.ID,
		Role:         interview.Role,
		Difficulty:   interview.Difficulty,
		OverallScore: interview.OverallScore,
		Questions:    interview.Questions,
		Responses:    interview.Responses,
		Feedback:     interview.Feedback,
	}, nil
}

// InterviewCertificate is issued for interviews scoring at least 70.
type InterviewCertificate struct {
	CertificateID string  `json:"certificate_id"`
	UserName      string  `json:"user_name"`
	Role          string  `json:"role"`
	Difficulty    string  `json:"difficulty"`
	Score         float64 `json:"score"`
	CompletedAt   string  `json:"completed_at"`
	Instructor    string  `json:"instructor"`
}

func (s *InterviewService) Certificate(userID, interviewID uint, userName string) (*InterviewCertificate, error) {
	interview, err := s.InterviewRepo.FindByIDAndUser(interviewID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInterviewNotFound
		}
		return nil, err
	}

	if interview.OverallScore < interviewCertThreshold {
		return nil, util.ErrScoreTooLow
	}

	return &InterviewCertificate{
		CertificateID: fmt.Sprintf("INT-%d-%d-%d", userID, interviewID, time.Now().Unix()),
		UserName:      userName,
		Role:          interview.Role,
		Difficulty:    interview.Difficulty,
		Score:         interview.OverallScore,
		CompletedAt:   interview.CreatedAt.Format("January 02, 2006"),
		Instructor:    "AI Interview Prep System",
	}, nil
}
