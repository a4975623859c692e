package model

import "time"

type Course struct {
	BaseModel
	Title         string `gorm:"size:255;not null" json:"title"`
	Description   string `gorm:"type:text" json:"description"`
	Thumbnail     string `gorm:"size:255" json:"thumbnail"`
	Category      string `gorm:"size:50" json:"category"`
	Difficulty    string `gorm:"size:20" json:"difficulty"` // Beginner, Intermediate, Advanced
	TotalLessons  int    `json:"totalLessons"`
	DurationHours int    `json:"durationHours"`
	XPReward      int    `gorm:"default:100" json:"xpReward"`

	Lessons []Lesson `gorm:"foreignKey:CourseID" json:"-"`
}

func (Course) TableName() string {
	return "courses"
}

type Lesson struct {
	BaseModel
	CourseID        uint   `gorm:"index;not null" json:"courseId"`
	Title           string `gorm:"size:255;not null" json:"title"`
	Content         string `gorm:"type:text" json:"content"`
	VideoURL        string `gorm:"size:255" json:"videoUrl"`
	Position        int    `json:"order"` // display sequence within the course
	DurationMinutes int    `json:"durationMinutes"`
}

func (Lesson) TableName() string {
	return "lessons"
}

// UserCourse links a user to a course they enrolled in; the pair is unique.
// Completed flips true exactly once, when progress first reaches 100%.
type UserCourse struct {
	BaseModel
	UserID             uint       `gorm:"not null;uniqueIndex:idx_user_course" json:"userId"`
	CourseID           uint       `gorm:"not null;uniqueIndex:idx_user_course" json:"courseId"`
	ProgressPercentage float64    `gorm:"default:0" json:"progressPercentage"`
	CompletedLessons   []uint     `gorm:"serializer:json" json:"completedLessons"`
	Completed          bool       `gorm:"default:false" json:"completed"`
	StartedAt          time.Time  `json:"startedAt"`
	CompletedAt        *time.Time `json:"completedAt"`

	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Course Course `gorm:"foreignKey:CourseID" json:"-"`
}

func (UserCourse) TableName() string {
	return "user_courses"
}
