package controller

import (
	"errors"
	"strconv"

	"interview_prep_backend/internal/service"
	"interview_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type InterviewController struct {
	InterviewService *service.InterviewService
	AuthService      *service.AuthService
}

func NewInterviewController(interviewService *service.InterviewService, authService *service.AuthService) *InterviewController {
	return &InterviewController{InterviewService: interviewService, AuthService: authService}
}

type StartInterviewRequest struct {
	Role       string `json:"role" binding:"required"`
	Difficulty string `json:"difficulty" binding:"required"`
	Count      int    `json:"count"`
}

func (c *InterviewController) Start(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req StartInterviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	started, err := c.InterviewService.Start(ctx.Request.Context(), claims.UserID, req.Role, req.Difficulty, req.Count)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, started)
}

func (c *InterviewController) SubmitResponse(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	interviewID, err := parseIDParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "Invalid interview id")
		return
	}

	var submission service.ResponseSubmission
	if err := ctx.ShouldBindJSON(&submission); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.InterviewService.SubmitResponse(ctx.Request.Context(), claims.UserID, interviewID, &submission)
	if err != nil {
		if errors.Is(err, util.ErrInterviewNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}

func (c *InterviewController) Complete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	interviewID, err := parseIDParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "Invalid interview id")
		return
	}

	result, err := c.InterviewService.Complete(claims.UserID, interviewID)
	if err != nil {
		if errors.Is(err, util.ErrInterviewNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}

func (c *InterviewController) History(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	interviews, err := c.InterviewService.History(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"interviews": interviews})
}

func (c *InterviewController) Feedback(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	interviewID, err := parseIDParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "Invalid interview id")
		return
	}

	feedback, err := c.InterviewService.Feedback(claims.UserID, interviewID)
	if err != nil {
		if errors.Is(err, util.ErrInterviewNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, feedback)
}

func (c *InterviewController) Certificate(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	interviewID, err := parseIDParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "Invalid interview id")
		return
	}

	user, err := c.AuthService.GetCurrentUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	certificate, err := c.InterviewService.Certificate(claims.UserID, interviewID, user.Name)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrInterviewNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrScoreTooLow):
			util.BadRequest(ctx, "Score too low. You need at least 70% to earn a certificate.")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, certificate)
}

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	return uint(id), err
}
