package controller

import (
	"errors"
	"strconv"

	"interview_prep_backend/internal/service"
	"interview_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AptitudeController struct {
	AptitudeService *service.AptitudeService
	AuthService     *service.AuthService
}

func NewAptitudeController(aptitudeService *service.AptitudeService, authService *service.AuthService) *AptitudeController {
	return &AptitudeController{AptitudeService: aptitudeService, AuthService: authService}
}

type QuestionRequest struct {
	Category   string `json:"category" binding:"required"`
	Difficulty string `json:"difficulty" binding:"required"`
	Count      int    `json:"count"`
}

func (c *AptitudeController) GenerateQuestions(ctx *gin.Context) {
	var req QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	set := c.AptitudeService.GenerateQuestions(ctx.Request.Context(), req.Category, req.Difficulty, req.Count)
	util.Success(ctx, set)
}

func (c *AptitudeController) SubmitTest(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var submission service.TestSubmission
	if err := ctx.ShouldBindJSON(&submission); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AptitudeService.SubmitTest(claims.UserID, &submission)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, result)
}

func (c *AptitudeController) History(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	history, err := c.AptitudeService.History(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, history)
}

func (c *AptitudeController) Stats(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.AptitudeService.Stats(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}

func (c *AptitudeController) Certificate(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	testID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid test id")
		return
	}

	user, err := c.AuthService.GetCurrentUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	certificate, err := c.AptitudeService.Certificate(claims.UserID, uint(testID), user.Name)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrTestNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrScoreTooLow):
			util.BadRequest(ctx, "Score too low. You need at least 80% to earn a certificate.")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, certificate)
}
