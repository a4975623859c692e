package model

// FAQ is static reference data, lazily seeded on first read.
type FAQ struct {
	BaseModel
	Category string `gorm:"size:50" json:"category"`
	Question string `gorm:"type:text;not null" json:"question"`
	Answer   string `gorm:"type:text;not null" json:"answer"`
	Position int    `gorm:"default:0" json:"order"`
}

func (FAQ) TableName() string {
	return "faqs"
}
