package model

// InterviewQuestion is generated per role and difficulty; Type is either
// "technical" or "behavioral".
type InterviewQuestion struct {
	Question       string   `json:"question"`
	Type           string   `json:"type"`
	ExpectedPoints []string `json:"expected_points"`
}

// InterviewResponse records one submitted answer.
type InterviewResponse struct {
	QuestionID int    `json:"question_id"`
	Question   string `json:"question"`
	Response   string `json:"response"`
	Timestamp  string `json:"timestamp"`
}

// ResponseEvaluation is the per-answer verdict, scored 0-100.
type ResponseEvaluation struct {
	QuestionID   int      `json:"question_id"`
	Score        float64  `json:"score"`
	Feedback     string   `json:"feedback"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

// MockInterview starts with empty responses and feedback; OverallScore stays 0
// until the interview is completed, then becomes the mean of feedback scores.
type MockInterview struct {
	BaseModel
	UserID       uint                 `gorm:"index;not null" json:"userId"`
	Role         string               `gorm:"size:100" json:"role"`
	Difficulty   string               `gorm:"size:20" json:"difficulty"`
	Questions    []InterviewQuestion  `gorm:"serializer:json" json:"questions"`
	Responses    []InterviewResponse  `gorm:"serializer:json" json:"responses"`
	Feedback     []ResponseEvaluation `gorm:"serializer:json" json:"aiFeedback"`
	OverallScore float64              `json:"overallScore"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (MockInterview) TableName() string {
	return "mock_interviews"
}
