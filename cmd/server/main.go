package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/rhyrak/course-planner/internal/handler"
	"github.com/rhyrak/course-planner/internal/metrics"
	"github.com/rhyrak/course-planner/internal/service"
	"github.com/rhyrak/course-planner/pkg/config"
	"github.com/rhyrak/course-planner/pkg/logger"
	corsmiddleware "github.com/rhyrak/course-planner/pkg/middleware/cors"
	reqidmiddleware "github.com/rhyrak/course-planner/pkg/middleware/requestid"
)

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

	if cfg.Catalog.Path == "" && cfg.Catalog.URL == "" {
		logr.Fatal("CATALOG_PATH or CATALOG_URL must be set")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rec, err := metrics.New(reg)
	if err != nil {
		logr.Fatal("failed to register metrics", zap.Error(err))
	}

	plannerCfg, err := service.NewPlannerConfig(cfg)
	if err != nil {
		logr.Fatal("invalid planner config", zap.Error(err))
	}
	planner := service.NewPlannerService(service.NewCatalogSource(cfg.Catalog), nil, logr, rec, plannerCfg)
	plannerHandler := handler.NewPlannerHandler(planner)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(rec.Middleware())
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(rec.Handler()))

	api := r.Group(cfg.APIPrefix)
	plannerHandler.RegisterRoutes(api)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "catalog", catalogLocation(cfg.Catalog))
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

func catalogLocation(c config.CatalogConfig) string {
	if c.Path != "" {
		return c.Path
	}
	return c.URL
}
