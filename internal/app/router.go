package app

import (
	"interview_prep_backend/internal/config"
	"interview_prep_backend/internal/middleware"
	"interview_prep_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)

		auth := public.Group("/auth")
		{
			auth.POST("/signup", c.auth.Signup)
			auth.POST("/login", c.auth.Login)
			auth.POST("/forgot-password", c.auth.ForgotPassword)
			auth.POST("/reset-password", c.auth.ResetPassword)
		}

		// Browsing the catalog and FAQ needs no account.
		public.GET("/courses", c.course.List)
		public.GET("/courses/:id", c.course.Get)
		public.GET("/faq", c.faq.List)
		public.GET("/faq/search", c.faq.Search)
		public.GET("/gamification/leaderboard", c.gamification.Leaderboard)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg.JWT.Secret))
	{
		authGroup.GET("/auth/me", c.auth.Me)
		authGroup.PUT("/auth/me", c.auth.UpdateProfile)

		aptitude := authGroup.Group("/aptitude")
		{
			aptitude.POST("/questions", c.aptitude.GenerateQuestions)
			aptitude.POST("/submit", c.aptitude.SubmitTest)
			aptitude.GET("/history", c.aptitude.History)
			aptitude.GET("/stats", c.aptitude.Stats)
			aptitude.GET("/:id/certificate", c.aptitude.Certificate)
		}

		interview := authGroup.Group("/interview")
		{
			interview.POST("/start", c.interview.Start)
			interview.POST("/:id/respond", c.interview.SubmitResponse)
			interview.POST("/:id/complete", c.interview.Complete)
			interview.GET("/history", c.interview.History)
			interview.GET("/:id/feedback", c.interview.Feedback)
			interview.GET("/:id/certificate", c.interview.Certificate)
		}

		resume := authGroup.Group("/resume")
		{
			resume.POST("/upload", c.resume.Upload)
			resume.GET("/all", c.resume.List)
			resume.GET("/:id", c.resume.Get)
			resume.DELETE("/:id", c.resume.Delete)
		}

		courses := authGroup.Group("/courses")
		{
			courses.GET("/my-courses", c.course.MyCourses)
			courses.POST("/:id/enroll", c.course.Enroll)
			courses.POST("/:id/unenroll", c.course.Unenroll)
			courses.POST("/:id/progress", c.course.UpdateProgress)
			courses.GET("/:id/progress", c.course.GetProgress)
			courses.GET("/:id/lessons/:lessonId", c.course.GetLesson)
			courses.GET("/:id/lessons/:lessonId/explain", c.course.ExplainLesson)
			courses.GET("/:id/certificate", c.course.Certificate)
		}

		practice := authGroup.Group("/practice")
		{
			practice.POST("/coding/problems", c.practice.CodingProblems)
			practice.POST("/aptitude/tutorial", c.practice.Tutorial)
			practice.POST("/coding/submit", c.practice.SubmitSolution)
		}

		gamification := authGroup.Group("/gamification")
		{
			gamification.GET("/achievements", c.gamification.Achievements)
			gamification.GET("/stats", c.gamification.Stats)
			gamification.POST("/update-streak", c.gamification.UpdateStreak)
		}

		dashboard := authGroup.Group("/dashboard")
		{
			dashboard.GET("/stats", c.dashboard.Stats)
			dashboard.GET("/activity", c.dashboard.Activity)
			dashboard.GET("/charts/progress", c.dashboard.ProgressChart)
		}
	}
}
