package controller

import (
	"errors"

	"interview_prep_backend/internal/service"
	"interview_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
	AuthService   *service.AuthService
}

func NewCourseController(courseService *service.CourseService, authService *service.AuthService) *CourseController {
	return &CourseController{CourseService: courseService, AuthService: authService}
}

func (c *CourseController) List(ctx *gin.Context) {
	courses, err := c.CourseService.ListCourses()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"courses": courses})
}

func (c *CourseController) MyCourses(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	courses, err := c.CourseService.MyCourses(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"courses": courses})
}

func (c *CourseController) Get(ctx *gin.Context) {
	courseID, err := parseIDParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "Invalid course id")
		return
	}

	detail, err := c.CourseService.GetCourse(courseID)
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, detail)
}

func (c *CourseController) Enroll(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID, err := parseIDParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "Invalid course id")
		return
	}

	course, err := c.CourseService.Enroll(claims.UserID, courseID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCourseNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrAlreadyEnrolled):
			util.BadRequest(ctx, "Already enrolled in this course")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{
		"message":      "Successfully enrolled",
		"course_id":    course.ID,
		"course_title": course.Title,
	})
}

func (c *CourseController) Unenroll(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID, err := parseIDParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "Invalid course id")
		return
	}

	if err := c.CourseService.Unenroll(claims.UserID, courseID); err != nil {
		if errors.Is(err, util.ErrNotEnrolled) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "Successfully unenrolled from course"})
}

type ProgressUpdateRequest struct {
	LessonID  uint `json:"lesson_id" binding:"required"`
	Completed bool `json:"completed"`
}

func (c *CourseController) UpdateProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID, err := parseIDParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "Invalid course id")
		return
	}

	var req ProgressUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.CourseService.UpdateProgress(claims.UserID, courseID, req.LessonID, req.Completed)
	if err != nil {
		if errors.Is(err, util.ErrNotEnrolled) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}

func (c *CourseController) GetProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID, err := parseIDParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "Invalid course id")
		return
	}

	detail, err := c.CourseService.GetProgress(claims.UserID, courseID)
	if err != nil {
		if errors.Is(err, util.ErrNotEnrolled) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, detail)
}

func (c *CourseController) GetLesson(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID, err := parseIDParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "Invalid course id")
		return
	}
	lessonID, err := parseIDParam(ctx, "lessonId")
	if err != nil {
		util.BadRequest(ctx, "Invalid lesson id")
		return
	}

	lesson, err := c.CourseService.GetLesson(claims.UserID, courseID, lessonID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNotEnrolled):
			util.Forbidden(ctx)
		case errors.Is(err, util.ErrLessonNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, lesson)
}

func (c *CourseController) ExplainLesson(ctx *gin.Context) {
	courseID, err := parseIDParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "Invalid course id")
		return
	}
	lessonID, err := parseIDParam(ctx, "lessonId")
	if err != nil {
		util.BadRequest(ctx, "Invalid lesson id")
		return
	}

	explanation, source, err := c.CourseService.ExplainLesson(ctx.Request.Context(), courseID, lessonID)
	if err != nil {
		if errors.Is(err, util.ErrLessonNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"explanation": explanation, "source": string(source)})
}

func (c *CourseController) Certificate(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID, err := parseIDParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "Invalid course id")
		return
	}

	user, err := c.AuthService.GetCurrentUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	certificate, err := c.CourseService.Certificate(claims.UserID, courseID, user.Name)
	if err != nil {
		if errors.Is(err, util.ErrCourseNotCompleted) {
			util.BadRequest(ctx, "Course not completed. Finish all lessons to earn your certificate.")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, certificate)
}
