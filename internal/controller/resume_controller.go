package controller

import (
	"errors"
	"io"
	"strings"

	"interview_prep_backend/internal/service"
	"interview_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResumeController struct {
	ResumeService *service.ResumeService
	MaxUploadSize int64
}

func NewResumeController(resumeService *service.ResumeService, maxUploadSize int64) *ResumeController {
	return &ResumeController{ResumeService: resumeService, MaxUploadSize: maxUploadSize}
}

// Upload accepts a multipart PDF or DOCX, runs the analysis and returns it.
func (c *ResumeController) Upload(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "Missing file")
		return
	}

	lower := strings.ToLower(fileHeader.Filename)
	if !strings.HasSuffix(lower, ".pdf") && !strings.HasSuffix(lower, ".docx") {
		util.BadRequest(ctx, "Only PDF and DOCX files are supported")
		return
	}

	if fileHeader.Size > c.MaxUploadSize {
		util.BadRequest(ctx, "File too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, c.MaxUploadSize))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	result, err := c.ResumeService.Upload(ctx.Request.Context(), claims.UserID, fileHeader.Filename, contentType, content)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUnsupportedFile):
			util.BadRequest(ctx, "Only PDF and DOCX files are supported")
		case errors.Is(err, util.ErrEmptyResumeText):
			util.BadRequest(ctx, "Failed to extract text from resume")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, result)
}

func (c *ResumeController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	resumes, err := c.ResumeService.List(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"resumes": resumes})
}

func (c *ResumeController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	resumeID, err := parseIDParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "Invalid resume id")
		return
	}

	detail, err := c.ResumeService.Get(claims.UserID, resumeID)
	if err != nil {
		if errors.Is(err, util.ErrResumeNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, detail)
}

func (c *ResumeController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	resumeID, err := parseIDParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "Invalid resume id")
		return
	}

	if err := c.ResumeService.Delete(ctx.Request.Context(), claims.UserID, resumeID); err != nil {
		if errors.Is(err, util.ErrResumeNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "Resume deleted successfully"})
}
