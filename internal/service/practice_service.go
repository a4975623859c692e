package service

import (
	"context"

	"interview_prep_backend/internal/model"
)

// practiceSubmitXP is awarded for submitting a practice solution. Solutions
// are not graded server-side; the reward incentivizes the practice itself.
const practiceSubmitXP = 25

type PracticeService struct {
	AI           *AIService
	Gamification *GamificationService
}

func NewPracticeService(ai *AIService, gamification *GamificationService) *PracticeService {
	return &PracticeService{AI: ai, Gamification: gamification}
}

// ProblemSet wraps generated practice problems with their origin.
type ProblemSet struct {
	Problems []model.CodingProblem `json:"problems"`
	Source   string                `json:"source"`
}

func (s *PracticeService) CodingProblems(ctx context.Context, category, difficulty, language string, count int) *ProblemSet {
	if language == "" {
		language = "Python"
	}
	if count <= 0 {
		count = 3
	}
	problems, source := s.AI.GenerateCodingProblems(ctx, category, difficulty, language, count)
	return &ProblemSet{Problems: problems, Source: string(source)}
}

// TutorialResult wraps a generated tutorial with its origin.
type TutorialResult struct {
	Tutorial model.Tutorial `json:"tutorial"`
	Source   string         `json:"source"`
}

func (s *PracticeService) Tutorial(ctx context.Context, category, topic string) *TutorialResult {
	tutorial, source := s.AI.GenerateAptitudeTutorial(ctx, category, topic)
	return &TutorialResult{Tutorial: tutorial, Source: string(source)}
}

// SubmissionResult reports the XP banked for a practice submission.
type SubmissionResult struct {
	Success  bool `json:"success"`
	XPEarned int  `json:"xp_earned"`
	TotalXP  int  `json:"total_xp"`
	Level    int  `json:"level"`
}

func (s *PracticeService) SubmitSolution(userID uint) (*SubmissionResult, error) {
	user, err := s.Gamification.AwardXP(userID, practiceSubmitXP)
	if err != nil {
		return nil, err
	}
	return &SubmissionResult{
		Success:  true,
		XPEarned: practiceSubmitXP,
		TotalXP:  user.TotalXP,
		Level:    user.Level,
	}, nil
}
