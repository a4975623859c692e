package model

// AptitudeQuestion is one multiple-choice question, either AI-generated or from
// the static fallback bank. CorrectAnswer indexes into Options.
type AptitudeQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// AnsweredQuestion is a question together with the option the user picked.
type AnsweredQuestion struct {
	AptitudeQuestion
	Selected int `json:"selected"`
}

// AptitudeTest is immutable once submitted; the score is fixed at creation.
type AptitudeTest struct {
	BaseModel
	UserID         uint               `gorm:"index;not null" json:"userId"`
	Category       string             `gorm:"size:50" json:"category"`
	Score          float64            `json:"score"`
	TotalQuestions int                `json:"totalQuestions"`
	CorrectAnswers int                `json:"correctAnswers"`
	TimeTaken      int                `json:"timeTaken"` // seconds
	Questions      []AnsweredQuestion `gorm:"serializer:json" json:"questionsData"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (AptitudeTest) TableName() string {
	return "aptitude_tests"
}
