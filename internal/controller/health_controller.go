package controller

import (
	"net/http"

	"interview_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
	AI interface{ Enabled() bool }
}

func NewHealthController(db *gorm.DB, ai interface{ Enabled() bool }) *HealthController {
	return &HealthController{DB: db, AI: ai}
}

func (c *HealthController) HealthCheck(ctx *gin.Context) {
	sqlDB, err := c.DB.DB()
	if err != nil {
		util.InternalServerError(ctx)
		return
	}

	if err := sqlDB.Ping(); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	aiStatus := "fallback"
	if c.AI.Enabled() {
		aiStatus = "up"
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"database": "up",
			"ai":       aiStatus,
		},
	})
}
