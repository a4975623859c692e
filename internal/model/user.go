package model

import (
	"time"
)

type User struct {
	BaseModel
	Email        string    `gorm:"size:100;unique;not null" json:"email"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Avatar       string    `gorm:"size:255;default:'/default-avatar.png'" json:"avatar"`
	Bio          string    `gorm:"type:text" json:"bio"`
	TotalXP      int       `gorm:"default:0" json:"totalXp"`
	Level        int       `gorm:"default:1" json:"level"`
	StreakCount  int       `gorm:"default:0" json:"streakCount"`
	LastLogin    time.Time `json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}
