package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/kbartosik/exam-session-api/api/swagger"
	"github.com/kbartosik/exam-session-api/internal/handler"
	"github.com/kbartosik/exam-session-api/internal/middleware"
	"github.com/kbartosik/exam-session-api/internal/repository"
	"github.com/kbartosik/exam-session-api/internal/service"
	"github.com/kbartosik/exam-session-api/pkg/cache"
	"github.com/kbartosik/exam-session-api/pkg/config"
	"github.com/kbartosik/exam-session-api/pkg/database"
	"github.com/kbartosik/exam-session-api/pkg/logger"
	corsmiddleware "github.com/kbartosik/exam-session-api/pkg/middleware/cors"
	reqidmiddleware "github.com/kbartosik/exam-session-api/pkg/middleware/requestid"
)

// @title Exam Session API
// @version 1.0.0
// @description Scheduling backend for university exam sessions
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close()

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
	}

	cacheSvc := buildCacheService(cfg, metricsSvc, logr)

	validate := validator.New()

	roomRepo := repository.NewRoomRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	examRepo := repository.NewExamRepository(db)
	termRepo := repository.NewExamTermRepository(db)
	sessionPeriodRepo := repository.NewSessionPeriodRepository(db)
	demoUserRepo := repository.NewDemoUserRepository(db)

	availabilitySvc := service.NewAvailabilityService(termRepo, logr)
	roomSvc := service.NewRoomService(roomRepo, availabilitySvc, cacheSvc, validate, logr)
	subjectSvc := service.NewSubjectService(subjectRepo, validate, logr)
	examSvc := service.NewExamService(examRepo, subjectRepo, validate, logr)
	termSvc := service.NewTermService(termRepo, examRepo, validate, logr)
	schedulingSvc := service.NewSchedulingService(roomSvc, availabilitySvc, termSvc, metricsSvc, validate, logr, cfg.Scheduling.EnforceCohortConflict)
	exportSvc := service.NewExportService(termSvc, nil, nil, logr)
	sessionPeriodSvc := service.NewSessionPeriodService(sessionPeriodRepo, validate, logr)
	demoUserSvc := service.NewDemoUserService(demoUserRepo, logr)

	roomHandler := handler.NewRoomHandler(roomSvc)
	subjectHandler := handler.NewSubjectHandler(subjectSvc)
	examHandler := handler.NewExamHandler(examSvc)
	termHandler := handler.NewTermHandler(schedulingSvc, termSvc, availabilitySvc, exportSvc)
	sessionPeriodHandler := handler.NewSessionPeriodHandler(sessionPeriodSvc)
	demoUserHandler := handler.NewDemoUserHandler(demoUserSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", readinessProbe(db))

	if cfg.Metrics.Enabled {
		r.GET("/metrics", metricsHandler.Prometheus)
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		rooms := api.Group("/rooms")
		rooms.GET("", roomHandler.List)
		rooms.POST("", roomHandler.Create)
		rooms.POST("/check-availability", roomHandler.CheckAvailability)
		rooms.GET("/:nazwa", roomHandler.Get)

		subjects := api.Group("/subjects")
		subjects.GET("", subjectHandler.List)
		subjects.POST("", subjectHandler.Create)

		exams := api.Group("/exams")
		exams.GET("", examHandler.List)
		exams.POST("", examHandler.Create)
		exams.GET("/:id", examHandler.Get)

		terms := api.Group("/exam-terms")
		terms.GET("", termHandler.List)
		terms.POST("", termHandler.Propose)
		terms.GET("/validation/check-room", termHandler.CheckRoom)
		terms.GET("/validation/check-students", termHandler.CheckStudents)
		terms.GET("/export", termHandler.Export)
		terms.GET("/:id", termHandler.Get)
		terms.PUT("/:id", termHandler.Decide)

		periods := api.Group("/session-periods")
		periods.GET("", sessionPeriodHandler.List)
		periods.POST("", sessionPeriodHandler.Create)

		api.GET("/demo-users", demoUserHandler.List)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// buildCacheService connects Redis when caching is enabled; a failed
// connection downgrades to no caching instead of aborting startup.
func buildCacheService(cfg *config.Config, metrics *service.MetricsService, logr *zap.Logger) *service.CacheService {
	if !cfg.Cache.Enabled {
		return nil
	}
	client, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, caching disabled", zap.Error(err))
		return nil
	}
	repo := repository.NewCacheRepository(client, logr)
	return service.NewCacheService(repo, metrics, cfg.Cache.TTL, logr, true)
}

func readinessProbe(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
