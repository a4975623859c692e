package model

import "time"

const (
	AchievementFirstTest      = "first_test"
	AchievementFirstInterview = "first_interview"
	AchievementStreak7        = "streak_7"
	AchievementLevel5         = "level_5"
)

// Achievement rows are append-only; a user earns each type at most once.
type Achievement struct {
	BaseModel
	UserID      uint      `gorm:"index;not null" json:"userId"`
	Type        string    `gorm:"size:50" json:"type"`
	Title       string    `gorm:"size:100" json:"title"`
	Description string    `gorm:"size:255" json:"description"`
	Icon        string    `gorm:"size:50" json:"icon"`
	EarnedAt    time.Time `json:"earnedAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Achievement) TableName() string {
	return "achievements"
}
