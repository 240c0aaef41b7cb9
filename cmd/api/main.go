package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Walbert29/student-management/api/swagger"
	"github.com/Walbert29/student-management/internal/handler"
	internalmiddleware "github.com/Walbert29/student-management/internal/middleware"
	"github.com/Walbert29/student-management/internal/repository"
	"github.com/Walbert29/student-management/internal/service"
	"github.com/Walbert29/student-management/pkg/cache"
	"github.com/Walbert29/student-management/pkg/config"
	"github.com/Walbert29/student-management/pkg/database"
	"github.com/Walbert29/student-management/pkg/logger"
	corsmiddleware "github.com/Walbert29/student-management/pkg/middleware/cors"
	reqidmiddleware "github.com/Walbert29/student-management/pkg/middleware/requestid"
)

// @title Student Management API
// @version 1.0.0
// @description Backend for student enrollment and academic structure management
// @BasePath /
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
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	cacheRepo := repository.NewCacheRepository(nil, logr)
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, listings served uncached", "error", err)
		} else {
			cacheRepo = repository.NewCacheRepository(redisClient, logr)
		}
	}
	defer cacheRepo.Close() //nolint:errcheck

	guardianRepo := repository.NewGuardianRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	enrollmentSvc := service.NewEnrollmentService(db, guardianRepo, studentRepo, roomRepo, enrollmentRepo, metricsSvc, logr)
	studentSvc := service.NewStudentService(db, guardianRepo, studentRepo, metricsSvc, logr)
	teacherSvc := service.NewTeacherService(teacherRepo, validate, logr)
	courseSvc := service.NewCourseService(courseRepo, validate, logr)
	groupSvc := service.NewGroupService(groupRepo, roomRepo, courseRepo, cacheRepo, cfg.Listings.CacheTTL, validate, logr)
	roomSvc := service.NewRoomService(roomRepo, studentRepo, cacheRepo, cfg.Listings.CacheTTL, logr)
	templateSvc := service.NewTemplateService(logr)

	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentSvc, cfg.Bulk.MaxFileSizeBytes)
	studentHandler := handler.NewStudentHandler(studentSvc, cfg.Bulk.MaxFileSizeBytes)
	teacherHandler := handler.NewTeacherHandler(teacherSvc)
	courseHandler := handler.NewCourseHandler(courseSvc)
	groupHandler := handler.NewGroupHandler(groupSvc)
	roomHandler := handler.NewRoomHandler(roomSvc)
	templateHandler := handler.NewTemplateHandler(templateSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "database unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// bulk ingestion walks the whole workbook row by row, so it gets its
	// own deadline instead of the default one
	bulkTimeout := func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.Bulk.RequestTimeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.POST("/enrollment/students", bulkTimeout, enrollmentHandler.BulkEnroll)
		api.DELETE("/enrollment/:enrollment_id", enrollmentHandler.Unenroll)

		api.PUT("/student/update/massive", bulkTimeout, studentHandler.BulkUpdate)
		api.GET("/student/group/:group_id", studentHandler.ListByGroup)
		api.GET("/student/room/:room_id", studentHandler.ListByRoom)

		api.POST("/teacher", teacherHandler.Create)
		api.POST("/course", courseHandler.Create)

		api.GET("/group/list", groupHandler.List)
		api.POST("/group", groupHandler.Create)
		api.DELETE("/group/:group_id", groupHandler.Delete)

		api.GET("/room/list", roomHandler.List)
		api.GET("/room/:room_id/roster", roomHandler.Roster)

		api.GET("/template/list/templates", templateHandler.List)
		api.GET("/template/template/:template_id", templateHandler.Download)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
