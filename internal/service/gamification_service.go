package service

import (
	"time"

	"interview_prep_backend/internal/model"
	"interview_prep_backend/internal/repository"
	"interview_prep_backend/pkg/logger"

	"go.uber.org/zap"
)

// StreakXPBonus is awarded once per calendar day on a streak check-in.
const StreakXPBonus = 5

// XPPerLevel controls level progression: level = total_xp/1000 + 1.
const XPPerLevel = 1000

// GamificationService owns XP accounting, level progression, daily streaks
// and milestone achievements. Feature services call AwardXP after each scored
// activity instead of mutating the user row themselves.
type GamificationService struct {
	UserRepo        *repository.UserRepository
	AchievementRepo *repository.AchievementRepository
}

func NewGamificationService(userRepo *repository.UserRepository, achievementRepo *repository.AchievementRepository) *GamificationService {
	return &GamificationService{UserRepo: userRepo, AchievementRepo: achievementRepo}
}

func LevelForXP(totalXP int) int {
	return totalXP/XPPerLevel + 1
}

// AwardXP increments the user's XP with an atomic SQL expression, then
// recomputes the level from the fresh total. Concurrent awards may briefly
// leave the level one recompute behind; the next award corrects it.
func (s *GamificationService) AwardXP(userID uint, xp int) (*model.User, error) {
	if err := s.UserRepo.AddXP(userID, xp); err != nil {
		return nil, err
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if level := LevelForXP(user.TotalXP); level != user.Level {
		if err := s.UserRepo.SetLevel(userID, level); err != nil {
			return nil, err
		}
		user.Level = level
	}

	if user.Level >= 5 {
		s.grant(userID, model.AchievementLevel5, "High Achiever", "Reached level 5", "🏆")
	}

	return user, nil
}

// NextStreak computes the streak after a check-in at now, given the previous
// check-in time. Consecutive calendar days extend the streak; a same-day
// repeat keeps it; any gap resets to 1.
func NextStreak(lastLogin time.Time, now time.Time, current int) (streak int, sameDay bool) {
	if lastLogin.IsZero() {
		return 1, false
	}

	today := dateOf(now)
	last := dateOf(lastLogin)

	switch {
	case last.Equal(today):
		return current, true
	case last.Equal(today.AddDate(0, 0, -1)):
		return current + 1, false
	default:
		return 1, false
	}
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StreakResult reports the outcome of a daily check-in.
type StreakResult struct {
	StreakCount    int  `json:"streak_count"`
	XPEarned       int  `json:"xp_earned"`
	TotalXP        int  `json:"total_xp"`
	AlreadyUpdated bool `json:"-"`
}

// UpdateStreak performs the daily check-in. The first call of a calendar day
// adjusts the streak and pays the bonus; repeats are no-ops.
func (s *GamificationService) UpdateStreak(userID uint) (*StreakResult, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	streak, sameDay := NextStreak(user.LastLogin, now, user.StreakCount)
	if sameDay {
		return &StreakResult{
			StreakCount:    user.StreakCount,
			TotalXP:        user.TotalXP,
			AlreadyUpdated: true,
		}, nil
	}

	user.StreakCount = streak
	user.LastLogin = now
	user.TotalXP += StreakXPBonus
	user.Level = LevelForXP(user.TotalXP)
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}

	if streak >= 7 {
		s.grant(userID, model.AchievementStreak7, "Week Warrior", "Maintained a 7-day streak", "🔥")
	}

	return &StreakResult{
		StreakCount: streak,
		XPEarned:    StreakXPBonus,
		TotalXP:     user.TotalXP,
	}, nil
}

// GamificationStats describes progress toward the next level.
type GamificationStats struct {
	Level              int     `json:"level"`
	TotalXP            int     `json:"total_xp"`
	XPForNextLevel     int     `json:"xp_for_next_level"`
	XPProgress         int     `json:"xp_progress"`
	ProgressPercentage float64 `json:"progress_percentage"`
	StreakCount        int     `json:"streak_count"`
}

func (s *GamificationService) Stats(userID uint) (*GamificationStats, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	// Level N spans [(N-1)*1000, N*1000).
	currentLevelXP := (user.Level - 1) * XPPerLevel
	xpProgress := user.TotalXP - currentLevelXP

	return &GamificationStats{
		Level:              user.Level,
		TotalXP:            user.TotalXP,
		XPForNextLevel:     XPPerLevel,
		XPProgress:         xpProgress,
		ProgressPercentage: float64(xpProgress) / float64(XPPerLevel) * 100,
		StreakCount:        user.StreakCount,
	}, nil
}

func (s *GamificationService) Achievements(userID uint) ([]model.Achievement, error) {
	return s.AchievementRepo.FindByUser(userID)
}

// LeaderboardEntry is one row of the public XP ranking.
type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Level  int    `json:"level"`
	XP     int    `json:"xp"`
	Streak int    `json:"streak"`
}

func (s *GamificationService) Leaderboard(limit int) ([]LeaderboardEntry, error) {
	users, err := s.UserRepo.FindTopByXP(limit)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for i, u := range users {
		entries = append(entries, LeaderboardEntry{
			Rank:   i + 1,
			Name:   u.Name,
			Level:  u.Level,
			XP:     u.TotalXP,
			Streak: u.StreakCount,
		})
	}
	return entries, nil
}

// GrantFirstTest awards the first aptitude test milestone, once.
func (s *GamificationService) GrantFirstTest(userID uint) {
	s.grant(userID, model.AchievementFirstTest, "First Steps", "Completed your first aptitude test", "🎯")
}

// GrantFirstInterview awards the first completed mock interview, once.
func (s *GamificationService) GrantFirstInterview(userID uint) {
	s.grant(userID, model.AchievementFirstInterview, "Interview Ready", "Completed your first mock interview", "🎤")
}

// grant records an achievement unless the user already holds that type.
// Failures are logged, not surfaced: a lost badge must not fail the activity.
func (s *GamificationService) grant(userID uint, achievementType, title, description, icon string) {
	has, err := s.AchievementRepo.HasType(userID, achievementType)
	if err != nil || has {
		return
	}

	achievement := &model.Achievement{
		UserID:      userID,
		Type:        achievementType,
		Title:       title,
		Description: description,
		Icon:        icon,
		EarnedAt:    time.Now(),
	}
	if err := s.AchievementRepo.Create(achievement); err != nil {
		logger.Log.Warn("Failed to record achievement",
			zap.Uint("user_id", userID),
			zap.String("type", achievementType),
			zap.Error(err))
	}
}
