package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"meli_dev_v1_202610/internal/config"
	"meli_dev_v1_202610/internal/controller"
	"meli_dev_v1_202610/internal/middleware"
	"meli_dev_v1_202610/internal/model"
	"meli_dev_v1_202610/internal/repository"
	"meli_dev_v1_202610/internal/router"
	"meli_dev_v1_202610/internal/service"
	"meli_dev_v1_202610/internal/task"
	"meli_dev_v1_202610/pkg/database"
	"meli_dev_v1_202610/pkg/logger"
	"meli_dev_v1_202610/pkg/meli"
)

const (
	appName    = "Mercado Livre Hub"
	appVersion = "1.0.0"
)

// @title Mercado Livre Hub API
// @version 1.0
// @description Mercado Livre 多企业卖家后台：授权、商品、竞品、广告与订单同步
// @host localhost:8000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app := &cli.App{
		Name:    "meli-hub",
		Usage:   appName,
		Version: appVersion,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config.yaml 所在目录",
				EnvVars: []string{"MELI_CONFIG_DIR"},
			},
		},
		// 默认启动服务
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "启动 HTTP 服务及后台任务",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "仅执行数据库自动建表",
				Action: migrate,
			},
			{
				Name:   "refresh-tokens",
				Usage:  "立即刷新 1 小时内过期的 Mercado Livre token",
				Action: refreshTokens,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// ==================== 命令 ====================

func serve(c *cli.Context) error {
	deps, err := bootstrap(c)
	if err != nil {
		return err
	}
	defer func() { _ = deps.Logger.Sync() }()

	tasks := task.NewTaskManager(&task.TaskManagerDeps{
		Refresher: deps.Services.Integration,
		Lister:    deps.Services.Integration,
		Orders:    deps.Services.Order,
		Logger:    deps.Logger,
	}, &task.TaskManagerConfig{
		TokenRefreshEnabled: deps.Config.Task.TokenRefreshEnabled,
		TokenRefreshCron:    deps.Config.Task.TokenRefreshCron,
		OrderSyncEnabled:    deps.Config.Task.OrderSyncEnabled,
		OrderSyncCron:       deps.Config.Task.OrderSyncCron,
		Concurrency:         deps.Config.Task.Concurrency,
	})
	if err := tasks.Start(); err != nil {
		return err
	}
	defer tasks.Stop()

	r := router.SetupRouter(deps.Controllers, router.Options{
		Logger:       deps.Logger,
		AllowOrigins: deps.Config.CORS.AllowOrigins,
		AppName:      appName,
		Version:      appVersion,
	})
	return startServer(r, deps.Config.App.Port, deps.Logger)
}

func migrate(c *cli.Context) error {
	cfg, l, err := loadConfig(c)
	if err != nil {
		return err
	}
	if _, err := initDatabase(cfg, l); err != nil {
		return err
	}
	l.Info("数据库迁移完成")
	return nil
}

func refreshTokens(c *cli.Context) error {
	deps, err := bootstrap(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, 5*time.Minute)
	defer cancel()

	tokenTask := task.NewTokenTask(deps.Services.Integration, deps.Logger)
	tokenTask.SetConcurrency(deps.Config.Task.Concurrency, 50*time.Millisecond)
	refreshed, failed := tokenTask.RunOnce(ctx)
	if failed > 0 {
		return fmt.Errorf("%d 个 token 刷新失败（成功 %d）", failed, refreshed)
	}
	return nil
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	Config      *config.Config
	Logger      *zap.Logger
	DB          *gorm.DB
	Services    *Services
	Controllers *router.Controllers
}

// Services 服务集合
type Services struct {
	Integration *service.IntegrationService
	User        *service.UserService
	Product     *service.ProductService
	Listing     *service.ListingService
	Competitor  *service.CompetitorService
	Ads         *service.AdsService
	Order       *service.OrderService
}

func loadConfig(c *cli.Context) (*config.Config, *zap.Logger, error) {
	var paths []string
	if dir := c.String("config"); dir != "" {
		paths = append(paths, dir)
	}
	cfg, err := config.Load(paths...)
	if err != nil {
		return nil, nil, err
	}

	l := logger.Init(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	return cfg, l, nil
}

// bootstrap 加载配置并初始化所有依赖
func bootstrap(c *cli.Context) (*Dependencies, error) {
	cfg, l, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	middleware.SetJWTConfig(&middleware.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenTTL:  cfg.JWT.AccessTTL,
		RefreshTokenTTL: cfg.JWT.RefreshTTL,
		Issuer:          cfg.JWT.Issuer,
	})
	middleware.SetDefaultInterval(cfg.Sync.Cooldown)
	middleware.SetupValidator()

	db, err := initDatabase(cfg, l)
	if err != nil {
		return nil, err
	}
	if err := middleware.RegisterAuditCallbacks(db); err != nil {
		return nil, fmt.Errorf("注册审计回调失败: %w", err)
	}

	if cfg.Meli.ClientID == "" || cfg.Meli.ClientSecret == "" {
		l.Warn("未配置 meli.client_id / meli.client_secret，授权相关接口将不可用")
	}
	client := meli.NewClient(meli.Config{
		ClientID:     cfg.Meli.ClientID,
		ClientSecret: cfg.Meli.ClientSecret,
		RedirectURI:  cfg.Meli.RedirectURI,
		APIBaseURL:   cfg.Meli.APIBaseURL,
		AuthURL:      cfg.Meli.AuthURL,
		TokenURL:     cfg.Meli.TokenURL,
		Timeout:      cfg.Meli.Timeout,
		Debug:        !cfg.IsProduction() && cfg.Log.Level == "debug",
	})

	services := initServices(db, client, l)
	return &Dependencies{
		Config:      cfg,
		Logger:      l,
		DB:          db,
		Services:    services,
		Controllers: initControllers(services, l),
	}, nil
}

// initDatabase 初始化数据库
func initDatabase(cfg *config.Config, l *zap.Logger) (*gorm.DB, error) {
	return database.InitDB(database.Options{
		DSN:      cfg.Database.DSN,
		LogLevel: cfg.Database.LogLevel,
	}, l,
		// 账号
		&model.Company{}, &model.User{},
		// Mercado Livre
		&model.MeliIntegration{},
		&model.Announcement{},
		&model.CatalogCompetitor{},
		&model.ProductAdsData{},
		&model.MeliOrder{},
	)
}

// initServices 初始化所有服务
func initServices(db *gorm.DB, client *meli.Client, l *zap.Logger) *Services {
	integration := service.NewIntegrationService(repository.NewIntegrationRepository(db), client, l.Named("integration"))

	return &Services{
		Integration: integration,
		User:        service.NewUserService(repository.NewUserRepository(db), repository.NewCompanyRepository(db)),
		Product:     service.NewProductService(integration, client, l.Named("product")),
		Listing:     service.NewListingService(repository.NewAnnouncementRepository(db), integration, client, l.Named("listing")),
		Competitor:  service.NewCompetitorService(repository.NewCompetitorRepository(db), integration, client, l.Named("competitor")),
		Ads:         service.NewAdsService(repository.NewProductAdsRepository(db), integration, client, l.Named("ads")),
		Order:       service.NewOrderService(repository.NewOrderRepository(db), integration, client, l.Named("order")),
	}
}

// initControllers 初始化所有控制器
func initControllers(svc *Services, l *zap.Logger) *router.Controllers {
	return &router.Controllers{
		User:         controller.NewUserController(svc.User),
		MeliAuth:     controller.NewMeliAuthController(svc.Integration, l.Named("meli_auth")),
		Product:      controller.NewProductController(svc.Product, svc.Listing),
		Announcement: controller.NewAnnouncementController(svc.Listing),
		Competitor:   controller.NewCompetitorController(svc.Competitor),
		Ads:          controller.NewAdsController(svc.Ads),
		Order:        controller.NewOrderController(svc.Order),
	}
}

// ==================== 服务启动 ====================

// startServer 启动服务，收到退出信号后优雅关闭
func startServer(r *gin.Engine, port string, l *zap.Logger) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		l.Info("服务启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("服务启动失败: %w", err)
	case <-quit:
	}

	l.Info("正在关闭服务...")

	// 优雅关闭，最多等待 30 秒
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("服务强制关闭: %w", err)
	}

	l.Info("服务已退出")
	return nil
}
