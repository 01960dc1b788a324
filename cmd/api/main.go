package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/okulpanel/rehber-api/api/swagger"
	"github.com/okulpanel/rehber-api/internal/handler"
	"github.com/okulpanel/rehber-api/internal/middleware"
	"github.com/okulpanel/rehber-api/internal/models"
	"github.com/okulpanel/rehber-api/internal/repository"
	"github.com/okulpanel/rehber-api/internal/service"
	"github.com/okulpanel/rehber-api/pkg/config"
	"github.com/okulpanel/rehber-api/pkg/database"
	"github.com/okulpanel/rehber-api/pkg/export"
	"github.com/okulpanel/rehber-api/pkg/logger"
	corsmiddleware "github.com/okulpanel/rehber-api/pkg/middleware/cors"
	reqidmiddleware "github.com/okulpanel/rehber-api/pkg/middleware/requestid"
	"github.com/okulpanel/rehber-api/pkg/storage"
)

// @title Rehber Panel API
// @version 1.0.0
// @description School guidance record keeper
// @BasePath /api/v1
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
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := repository.InitSchema(ctx, db); err != nil {
		logr.Sugar().Fatalw("failed to initialize schema", "error", err)
	}

	uploads, err := storage.NewUploadStore(cfg.Uploads.Dir)
	if err != nil {
		logr.Sugar().Fatalw("failed to prepare upload directory", "error", err)
	}

	validate := validator.New()

	studentRepo := repository.NewStudentRepository(db)
	yearRepo := repository.NewEducationYearRepository(db)
	classRepo := repository.NewClassRepository(db)
	guardianRepo := repository.NewGuardianRepository(db)
	talentRepo := repository.NewTalentRepository(db)
	devNoteRepo := repository.NewDevelopmentNoteRepository(db)
	evalNoteRepo := repository.NewEvaluationNoteRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)
	planRepo := repository.NewGuidancePlanRepository(db)
	eventRepo := repository.NewGuidanceEventRepository(db)

	yearSvc := service.NewEducationYearService(yearRepo, validate, logr)
	classSvc := service.NewClassService(classRepo, validate, logr)
	studentSvc := service.NewStudentService(studentRepo, uploads, validate, logr)
	transferSvc := service.NewTransferService(studentRepo, classRepo, logr)
	guardianSvc := service.NewGuardianService(guardianRepo, validate, logr)
	talentSvc := service.NewTalentService(talentRepo, validate, logr)
	devNoteSvc := service.NewNoteService(models.NoteKindDevelopment, devNoteRepo, validate, logr)
	evalNoteSvc := service.NewNoteService(models.NoteKindEvaluation, evalNoteRepo, validate, logr)
	announcementSvc := service.NewAnnouncementService(announcementRepo, validate, logr)
	guidanceSvc := service.NewGuidanceService(planRepo, eventRepo, uploads, validate, logr)
	exportSvc := service.NewExportService(studentSvc, talentRepo, devNoteRepo, evalNoteRepo, export.NewPDFExporter(), logr)
	metricsSvc := service.NewMetricsService()

	yearHandler := handler.NewEducationYearHandler(yearSvc)
	classHandler := handler.NewClassHandler(classSvc)
	studentHandler := handler.NewStudentHandler(studentSvc)
	transferHandler := handler.NewTransferHandler(transferSvc)
	guardianHandler := handler.NewGuardianHandler(guardianSvc)
	talentHandler := handler.NewTalentHandler(talentSvc)
	devNoteHandler := handler.NewNoteHandler(devNoteSvc)
	evalNoteHandler := handler.NewNoteHandler(evalNoteSvc)
	announcementHandler := handler.NewAnnouncementHandler(announcementSvc)
	planHandler := handler.NewGuidancePlanHandler(guidanceSvc)
	eventHandler := handler.NewGuidanceEventHandler(guidanceSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
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
	r.MaxMultipartMemory = cfg.Uploads.MaxFileSizeBytes

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Docs.Enabled {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.Static("/uploads", uploads.Dir())

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/education-years", yearHandler.List)
		api.POST("/education-years", yearHandler.Create)

		api.GET("/classes", classHandler.List)
		api.POST("/classes", classHandler.Create)

		api.GET("/students", studentHandler.List)
		api.POST("/students", studentHandler.Create)
		api.POST("/students/transfer", transferHandler.Transfer)
		api.GET("/students/:id", studentHandler.Get)
		api.PUT("/students/:id", studentHandler.Update)
		api.GET("/students/:id/export", exportHandler.StudentDossier)

		api.GET("/students/:id/guardians", guardianHandler.List)
		api.POST("/students/:id/guardians", guardianHandler.Create)
		api.PUT("/guardians/:id", guardianHandler.Update)
		api.DELETE("/guardians/:id", guardianHandler.Delete)

		api.GET("/students/:id/talents", talentHandler.List)
		api.POST("/students/:id/talents", talentHandler.Create)

		api.GET("/students/:id/development-notes", devNoteHandler.List)
		api.POST("/students/:id/development-notes", devNoteHandler.Create)
		api.GET("/students/:id/evaluation-notes", evalNoteHandler.List)
		api.POST("/students/:id/evaluation-notes", evalNoteHandler.Create)

		api.GET("/announcements", announcementHandler.List)
		api.POST("/announcements", announcementHandler.Create)
		api.PUT("/announcements/:id", announcementHandler.Update)
		api.DELETE("/announcements/:id", announcementHandler.Delete)

		api.GET("/guidance-plans", planHandler.List)
		api.POST("/guidance-plans", planHandler.Create)
		api.PUT("/guidance-plans/:id", planHandler.Update)
		api.DELETE("/guidance-plans/:id", planHandler.Delete)

		api.GET("/guidance-events", eventHandler.List)
		api.POST("/guidance-events", eventHandler.Create)
		api.PUT("/guidance-events/:id", eventHandler.Update)
		api.DELETE("/guidance-events/:id", eventHandler.Delete)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
