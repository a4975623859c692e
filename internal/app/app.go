package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"interview_prep_backend/internal/config"
	"interview_prep_backend/internal/controller"
	"interview_prep_backend/internal/repository"
	"interview_prep_backend/internal/service"
	"interview_prep_backend/pkg/database"
	"interview_prep_backend/pkg/logger"
	"interview_prep_backend/pkg/monitoring"
	"interview_prep_backend/pkg/security"
	"interview_prep_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
}

type repositories struct {
	user        *repository.UserRepository
	aptitude    *repository.AptitudeRepository
	interview   *repository.InterviewRepository
	resume      *repository.ResumeRepository
	course      *repository.CourseRepository
	userCourse  *repository.UserCourseRepository
	achievement *repository.AchievementRepository
	faq         *repository.FAQRepository
}

type services struct {
	ai           *service.AIService
	storage      *service.StorageService
	gamification *service.GamificationService
	auth         *service.AuthService
	aptitude     *service.AptitudeService
	interview    *service.InterviewService
	resume       *service.ResumeService
	course       *service.CourseService
	practice     *service.PracticeService
	dashboard    *service.DashboardService
	faq          *service.FAQService
}

type controllers struct {
	auth         *controller.AuthController
	aptitude     *controller.AptitudeController
	interview    *controller.InterviewController
	resume       *controller.ResumeController
	course       *controller.CourseController
	gamification *controller.GamificationController
	dashboard    *controller.DashboardController
	faq          *controller.FAQController
	practice     *controller.PracticeController
	health       *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		aptitude:    repository.NewAptitudeRepository(db),
		interview:   repository.NewInterviewRepository(db),
		resume:      repository.NewResumeRepository(db),
		course:      repository.NewCourseRepository(db),
		userCourse:  repository.NewUserCourseRepository(db),
		achievement: repository.NewAchievementRepository(db),
		faq:         repository.NewFAQRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.ai = service.NewAIService(cfg.AI)
	s.storage = service.NewStorageService(cfg)
	s.gamification = service.NewGamificationService(repos.user, repos.achievement)
	s.auth = service.NewAuthService(repos.user, &cfg.JWT)
	s.aptitude = service.NewAptitudeService(repos.aptitude, s.ai, s.gamification)
	s.interview = service.NewInterviewService(repos.interview, s.ai, s.gamification)
	s.resume = service.NewResumeService(repos.resume, s.ai, s.storage, s.gamification)
	s.course = service.NewCourseService(repos.course, repos.userCourse, s.ai, s.gamification)
	s.practice = service.NewPracticeService(s.ai, s.gamification)
	s.dashboard = service.NewDashboardService(repos.user, repos.aptitude, repos.interview, repos.userCourse)
	s.faq = service.NewFAQService(repos.faq)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, cfg *config.Config) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		aptitude:     controller.NewAptitudeController(s.aptitude, s.auth),
		interview:    controller.NewInterviewController(s.interview, s.auth),
		resume:       controller.NewResumeController(s.resume, cfg.Storage.MaxUploadSize),
		course:       controller.NewCourseController(s.course, s.auth),
		gamification: controller.NewGamificationController(s.gamification),
		dashboard:    controller.NewDashboardController(s.dashboard),
		faq:          controller.NewFAQController(s.faq),
		practice:     controller.NewPracticeController(s.practice),
		health:       controller.NewHealthController(db, s.ai),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.RequestID())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services, db, cfg)

	monitoring.Init()

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("interview-prep", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for SIGINT/SIGTERM, then drain in-flight requests for up to 5s.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
