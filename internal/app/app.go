package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"yonko_backend/internal/catalog"
	"yonko_backend/internal/config"
	"yonko_backend/internal/controller"
	"yonko_backend/internal/repository"
	"yonko_backend/internal/service"
	"yonko_backend/pkg/database"
	"yonko_backend/pkg/logger"
	"yonko_backend/pkg/monitoring"
	"yonko_backend/pkg/security"
	"yonko_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	Registry *catalog.Registry
	services *services
}

type repositories struct {
	user    *repository.UserRepository
	roadmap *repository.RoadmapRepository
}

type services struct {
	user    *service.UserService
	roadmap *service.RoadmapService
	sync    *service.SyncService
}

type controllers struct {
	user    *controller.UserController
	catalog *controller.CatalogController
	roadmap *controller.RoadmapController
	health  *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		user:    repository.NewUserRepository(db),
		roadmap: repository.NewRoadmapRepository(db, rdb),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}
	s.sync = service.NewSyncService(cfg.Sync)
	s.user = service.NewUserService(repos.user)
	s.roadmap = service.NewRoadmapService(repos.roadmap, a.Registry, s.sync)
	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		user:    controller.NewUserController(s.user),
		catalog: controller.NewCatalogController(a.Registry),
		roadmap: controller.NewRoadmapController(s.roadmap, s.user),
		health:  controller.NewHealthController(db, rdb),
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

// ApplyConfig 配置热更回调，只刷新可安全热更的段落
func (a *App) ApplyConfig(cfg *config.Config) {
	a.services.sync.Reconfigure(cfg.Sync)
	logger.Log.Info("Config reloaded", zap.String("sync_base_url", cfg.Sync.BaseURL))
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)

	logger.Log.Info("Logger initialized successfully")

	// 编目完整性校验失败必须在启动期终止，绝不带病上线
	registry, err := catalog.Builtin()
	if err != nil {
		logger.Log.Fatal("Invalid requirement catalog", zap.Error(err))
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// 缓存不可用时降级为纯数据库访问
		logger.Log.Warn("Redis unavailable, running without cache", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config:   cfg,
		DB:       db,
		Redis:    rdb,
		Registry: registry,
	}

	repos := app.initRepositories(db, rdb)
	services := app.initServices(repos, cfg)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("yonko-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

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

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
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
