package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"training_backend/internal/config"
	"training_backend/internal/controller"
	"training_backend/internal/repository"
	"training_backend/internal/service"
	"training_backend/internal/util"
	"training_backend/pkg/database"
	"training_backend/pkg/logger"
	"training_backend/pkg/monitoring"
	"training_backend/pkg/security"
	"training_backend/pkg/tracing"

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
	student       *repository.StudentRepository
	training      *repository.TrainingRepository
	group         *repository.GroupRepository
	enrollment    *repository.EnrollmentRepository
	attendance    *repository.AttendanceRepository
	seance        *repository.SeanceRepository
	sessionReport *repository.SessionReportRepository
	notification  *repository.NotificationRepository
}

type services struct {
	auth         *service.AuthService
	student      *service.StudentService
	training     *service.TrainingService
	group        *service.GroupService
	enrollment   *service.EnrollmentService
	attendance   *service.AttendanceService
	seance       *service.SeanceService
	calendar     *service.CalendarService
	progress     *service.ProgressService
	certificate  *service.CertificateService
	notification *service.NotificationService
	dashboard    *service.DashboardService
}

type controllers struct {
	auth         *controller.AuthController
	student      *controller.StudentController
	training     *controller.TrainingController
	group        *controller.GroupController
	enrollment   *controller.EnrollmentController
	seance       *controller.SeanceController
	notification *controller.NotificationController
	dashboard    *controller.DashboardController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ReloadConfig swaps the live config and fans it out to registered callbacks.
// Server port and database settings still need a restart.
func (a *App) ReloadConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:          repository.NewUserRepository(db),
		student:       repository.NewStudentRepository(db),
		training:      repository.NewTrainingRepository(db),
		group:         repository.NewGroupRepository(db),
		enrollment:    repository.NewEnrollmentRepository(db),
		attendance:    repository.NewAttendanceRepository(db),
		seance:        repository.NewSeanceRepository(db),
		sessionReport: repository.NewSessionReportRepository(db),
		notification:  repository.NewNotificationRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.auth = service.NewAuthService(repos.user, cfg)
	s.student = service.NewStudentService(repos.student)
	s.training = service.NewTrainingService(repos.training, repos.attendance, rdb)
	s.enrollment = service.NewEnrollmentService(repos.enrollment, repos.attendance, repos.student, s.training)
	s.group = service.NewGroupService(repos.group, repos.student, repos.user, s.training, s.enrollment)
	s.notification = service.NewNotificationService(repos.notification, repos.user)
	s.seance = service.NewSeanceService(
		db,
		repos.seance,
		repos.sessionReport,
		repos.group,
		repos.user,
		repos.enrollment,
		repos.attendance,
		s.training,
		s.notification,
	)
	s.attendance = service.NewAttendanceService(repos.attendance, repos.enrollment, repos.seance)
	s.calendar = service.NewCalendarService(repos.seance)
	s.progress = service.NewProgressService(repos.enrollment, repos.attendance, s.training)
	s.certificate = service.NewCertificateService(s.progress, repos.enrollment, repos.student, s.training)
	s.dashboard = service.NewDashboardService(repos.student, repos.training, repos.seance, repos.attendance, util.Today)

	return s
}

func (a *App) initControllers(s *services, repos *repositories) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		student:      controller.NewStudentController(s.student, s.enrollment, s.progress),
		training:     controller.NewTrainingController(s.training, s.group),
		group:        controller.NewGroupController(s.group),
		enrollment:   controller.NewEnrollmentController(s.enrollment, s.attendance, s.progress, s.certificate),
		seance:       controller.NewSeanceController(s.seance, s.calendar, s.attendance, repos.group),
		notification: controller.NewNotificationController(s.notification),
		dashboard:    controller.NewDashboardController(s.dashboard),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests,
		time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	controllers := app.initControllers(services, repos)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		_, err := tracing.InitTracer("training-platform", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

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
