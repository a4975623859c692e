package controller

import (
	"interview_prep_backend/internal/service"
	"interview_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PracticeController struct {
	PracticeService *service.PracticeService
}

func NewPracticeController(practiceService *service.PracticeService) *PracticeController {
	return &PracticeController{PracticeService: practiceService}
}

type CodingRequest struct {
	Category   string `json:"category" binding:"required"`
	Difficulty string `json:"difficulty" binding:"required"`
	Language   string `json:"language"`
	Count      int    `json:"count"`
}

func (c *PracticeController) CodingProblems(ctx *gin.Context) {
	var req CodingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	set := c.PracticeService.CodingProblems(ctx.Request.Context(), req.Category, req.Difficulty, req.Language, req.Count)
	util.Success(ctx, set)
}

type TutorialRequest struct {
	Category string `json:"category" binding:"required"`
	Topic    string `json:"topic" binding:"required"`
}

func (c *PracticeController) Tutorial(ctx *gin.Context) {
	var req TutorialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result := c.PracticeService.Tutorial(ctx.Request.Context(), req.Category, req.Topic)
	util.Success(ctx, result)
}

// SubmitSolution accepts any payload; the submission is rewarded, not graded.
func (c *PracticeController) SubmitSolution(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var body map[string]interface{}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.PracticeService.SubmitSolution(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
