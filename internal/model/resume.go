package model

// ATSBreakdown carries the sub-scores behind the headline ATS score.
type ATSBreakdown struct {
	FormattingScore     int    `json:"formatting_score"`
	KeywordOptimization int    `json:"keyword_optimization"`
	StructureScore      int    `json:"structure_score"`
	ReadabilityScore    int    `json:"readability_score"`
	OverallFeedback     string `json:"overall_feedback"`
}

// ResumeAnalysis is the structured result of the AI resume review.
type ResumeAnalysis struct {
	ATSScore        float64      `json:"ats_score"`
	ATSFriendly     bool         `json:"ats_friendly"`
	ATSAnalysis     ATSBreakdown `json:"ats_analysis"`
	PositivePoints  []string     `json:"positive_points"`
	NegativePoints  []string     `json:"negative_points"`
	Skills          []string     `json:"skills"`
	ExperienceYears int          `json:"experience_years"`
	Strengths       []string     `json:"strengths"`
	Improvements    []string     `json:"improvements"`
	MissingSections []string     `json:"missing_sections"`
	KeywordsFound   []string     `json:"keywords_found"`
	KeywordsMissing []string     `json:"keywords_missing"`
}

// Resume keeps the stored object path so deleting the row can also delete the file.
type Resume struct {
	BaseModel
	UserID      uint           `gorm:"index;not null" json:"userId"`
	Filename    string         `gorm:"size:255;not null" json:"filename"`
	FilePath    string         `gorm:"size:255;not null" json:"-"`
	Analysis    ResumeAnalysis `gorm:"serializer:json" json:"analysis"`
	ATSScore    float64        `json:"atsScore"`
	Suggestions []string       `gorm:"serializer:json" json:"suggestions"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Resume) TableName() string {
	return "resumes"
}
