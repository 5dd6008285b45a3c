package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"thaimusic_backend/internal/config"
	"thaimusic_backend/internal/controller"
	"thaimusic_backend/internal/repository"
	"thaimusic_backend/internal/service"
	"thaimusic_backend/pkg/database"
	"thaimusic_backend/pkg/logger"
	"thaimusic_backend/pkg/mailer"
	"thaimusic_backend/pkg/monitoring"
	"thaimusic_backend/pkg/security"
	"thaimusic_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user          *repository.UserRepository
	instrument    *repository.InstrumentRepository
	lesson        *repository.LessonRepository
	question      *repository.QuestionRepository
	userAnswer    *repository.UserAnswerRepository
	userUnlock    *repository.UserUnlockRepository
	requirement   *repository.TestRequirementRepository
	userLevel     *repository.UserLevelRepository
	posttestScore *repository.PosttestScoreRepository
	catalog       *repository.TestCatalogRepository
}

type services struct {
	auth          *service.AuthService
	storage       *service.StorageService
	instrument    *service.InstrumentService
	learning      *service.LearningService
	question      *service.QuestionService
	questionAdmin *service.QuestionAdminService
	submission    *service.SubmissionService
	unlock        *service.UnlockService
	userLevel     *service.UserLevelService
	requirement   *service.RequirementService
	catalog       *service.CatalogService
}

type controllers struct {
	auth        *controller.AuthController
	instrument  *controller.InstrumentController
	learning    *controller.LearningController
	test        *controller.TestController
	question    *controller.QuestionController
	requirement *controller.RequirementController
	userLevel   *controller.UserLevelController
	catalog     *controller.CatalogController
	history     *controller.HistoryController
	health      *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:          repository.NewUserRepository(db),
		instrument:    repository.NewInstrumentRepository(db),
		lesson:        repository.NewLessonRepository(db),
		question:      repository.NewQuestionRepository(db),
		userAnswer:    repository.NewUserAnswerRepository(db),
		userUnlock:    repository.NewUserUnlockRepository(db),
		requirement:   repository.NewTestRequirementRepository(db),
		userLevel:     repository.NewUserLevelRepository(db),
		posttestScore: repository.NewPosttestScoreRepository(db),
		catalog:       repository.NewTestCatalogRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	m := mailer.New(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From)

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg, rdb, m, logger.Log)
	s.instrument = service.NewInstrumentService(repos.instrument, s.storage)
	s.learning = service.NewLearningService(repos.lesson, repos.userUnlock, s.storage, logger.Log)
	s.question = service.NewQuestionService(repos.question, repos.userAnswer, rdb, logger.Log)
	s.questionAdmin = service.NewQuestionAdminService(repos.question, s.question)
	s.userLevel = service.NewUserLevelService(repos.userLevel, repos.posttestScore)
	s.submission = service.NewSubmissionService(
		repos.question,
		repos.userAnswer,
		repos.userUnlock,
		repos.requirement,
		repos.lesson,
		repos.posttestScore,
		s.userLevel,
		logger.Log,
	)
	s.unlock = service.NewUnlockService(repos.userUnlock, repos.question, repos.userAnswer, repos.catalog, repos.user)
	s.requirement = service.NewRequirementService(repos.requirement)
	s.catalog = service.NewCatalogService(repos.catalog, repos.requirement, repos.lesson)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		instrument:  controller.NewInstrumentController(s.instrument),
		learning:    controller.NewLearningController(s.learning),
		test:        controller.NewTestController(s.submission, s.question, s.unlock),
		question:    controller.NewQuestionController(s.questionAdmin),
		requirement: controller.NewRequirementController(s.requirement),
		userLevel:   controller.NewUserLevelController(s.userLevel),
		catalog:     controller.NewCatalogController(s.catalog),
		history:     controller.NewHistoryController(s.unlock, s.submission),
		health:      controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if cfg.ForceMigrate || cfg.MigrateOnly {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Migration failed", zap.Error(err))
			log.Fatalf("Migration failed: %v", err)
		}
		logger.Log.Info("Migration complete")
		if cfg.MigrateOnly {
			os.Exit(0)
		}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("thaimusic-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
		router.Static("/api/uploads", cfg.Storage.LocalPath)
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
