package controller

import (
	"strconv"

	"interview_prep_backend/internal/service"
	"interview_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GamificationController struct {
	GamificationService *service.GamificationService
}

func NewGamificationController(gamificationService *service.GamificationService) *GamificationController {
	return &GamificationController{GamificationService: gamificationService}
}

func (c *GamificationController) Achievements(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	achievements, err := c.GamificationService.Achievements(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"achievements": achievements})
}

func (c *GamificationController) Leaderboard(ctx *gin.Context) {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}

	leaderboard, err := c.GamificationService.Leaderboard(limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"leaderboard": leaderboard})
}

func (c *GamificationController) Stats(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.GamificationService.Stats(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}

func (c *GamificationController) UpdateStreak(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.GamificationService.UpdateStreak(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if result.AlreadyUpdated {
		util.Success(ctx, gin.H{
			"message":      "Streak already updated today",
			"streak_count": result.StreakCount,
		})
		return
	}

	util.Success(ctx, result)
}
