package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/program-enrollments-api/api/swagger"
	"github.com/noah-isme/program-enrollments-api/internal/dto"
	"github.com/noah-isme/program-enrollments-api/internal/handler"
	"github.com/noah-isme/program-enrollments-api/internal/middleware"
	"github.com/noah-isme/program-enrollments-api/internal/repository"
	"github.com/noah-isme/program-enrollments-api/internal/service"
	"github.com/noah-isme/program-enrollments-api/pkg/cache"
	"github.com/noah-isme/program-enrollments-api/pkg/config"
	"github.com/noah-isme/program-enrollments-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/program-enrollments-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/program-enrollments-api/pkg/middleware/requestid"
)

// @title Program Enrollments API
// @version 0.1.0
// @description Program and course enrollment management for partner registrars
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

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metricsSvc := service.NewMetricsService()

	var cacheRepo service.CacheRepository
	if cfg.Overview.CacheEnabled {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, overview cache disabled", zap.Error(err))
		} else {
			cacheRepo = repository.NewCacheRepository(client, logr)
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Overview.CacheTTL, logr, cacheRepo != nil)

	store := repository.NewMemoryStore()
	validate := dto.NewValidator()

	enrollmentSvc := service.NewEnrollmentService(store, store, cacheSvc, validate, logr, cfg.Enrollments.WriteBatchLimit)
	gradeSvc := service.NewGradeService(store, logr)
	overviewSvc := service.NewOverviewService(store, cacheSvc, cfg.Overview.CacheTTL, logr)

	enrollments := handler.NewEnrollmentHandler(enrollmentSvc)
	grades := handler.NewGradeHandler(gradeSvc)
	overviews := handler.NewOverviewHandler(overviewSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	api := r.Group(cfg.APIPrefix)
	programs := api.Group("/programs/:program_uuid")
	programs.GET("/enrollments", enrollments.List)
	programs.POST("/enrollments", enrollments.Create)
	programs.PATCH("/enrollments", enrollments.Update)
	programs.GET("/courses/:course_id/enrollments", enrollments.ListCourse)
	programs.POST("/courses/:course_id/enrollments", enrollments.CreateCourse)
	programs.PATCH("/courses/:course_id/enrollments", enrollments.UpdateCourse)
	programs.GET("/courses/:course_id/grades", grades.ListCourse)
	programs.GET("/overview", overviews.Get)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
