package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"meli_dev_v1_202610/internal/controller"
	"meli_dev_v1_202610/internal/middleware"
	"meli_dev_v1_202610/pkg/logger"

	_ "meli_dev_v1_202610/docs"
)

// Controllers 控制器集合
type Controllers struct {
	User         *controller.UserController
	MeliAuth     *controller.MeliAuthController
	Product      *controller.ProductController
	Announcement *controller.AnnouncementController
	Competitor   *controller.CompetitorController
	Ads          *controller.AdsController
	Order        *controller.OrderController
}

// Options 路由选项
type Options struct {
	Logger       *zap.Logger
	AllowOrigins []string
	AppName      string
	Version      string
}

// SetupRouter 创建 gin 引擎并注册所有路由
func SetupRouter(ctls *Controllers, opts Options) *gin.Engine {
	l := opts.Logger
	if l == nil {
		l = zap.NewNop()
	}

	r := gin.New()
	r.Use(
		logger.RequestID(),
		logger.GinMiddleware(l),
		logger.Recovery(l),
		middleware.CORS(opts.AllowOrigins),
	)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": opts.AppName, "version": opts.Version, "docs": "/swagger/index.html"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Swagger 文档
	// 访问 http://localhost:8000/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	InitRoutes(api, ctls)
	return r
}

// InitRoutes 注册 /api 下的业务路由
func InitRoutes(api *gin.RouterGroup, ctls *Controllers) {
	auth := middleware.JWTAuth()
	audit := middleware.AuditContext()

	// 用户认证
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", ctls.User.Register)
		authGroup.POST("/login", ctls.User.Login)
		authGroup.POST("/refresh", ctls.User.RefreshToken)
		authGroup.GET("/me", auth, ctls.User.GetProfile)
	}

	users := api.Group("/users", auth, audit)
	{
		users.GET("/me", ctls.User.GetProfile)
		users.PUT("/me", ctls.User.UpdateProfile)
		users.PUT("/company", ctls.User.UpdateCompany)
	}

	ml := api.Group("/mercado-livre")

	// Mercado Livre 直接调用的公开接口
	ml.GET("/auth/callback", ctls.MeliAuth.PublicCallback)
	ml.POST("/notifications/callback", ctls.MeliAuth.Notifications)

	secured := ml.Group("", auth, audit)

	// OAuth 连接管理
	{
		secured.GET("/authorization-url", ctls.MeliAuth.GetAuthorizationURL)
		secured.POST("/callback", ctls.MeliAuth.Callback)
		secured.GET("/status", ctls.MeliAuth.Status)
		secured.POST("/refresh", ctls.MeliAuth.Refresh)
		secured.DELETE("/disconnect", ctls.MeliAuth.Disconnect)
		secured.GET("/test-connection", ctls.MeliAuth.TestConnection)
	}

	// 实时商品
	{
		secured.GET("/products", ctls.Product.ListProducts)
		secured.GET("/products/:id", ctls.Product.GetProduct)
		secured.POST("/products", ctls.Product.CreateProduct)
		secured.PUT("/products/:id", ctls.Product.UpdateProduct)
		secured.DELETE("/products/:id", ctls.Product.DeleteProduct)
		secured.GET("/categories", ctls.Product.ListCategories)
		secured.GET("/categories/:id", ctls.Product.GetCategory)
		secured.GET("/item-details/:id", ctls.Product.GetItemDetails)
		secured.GET("/item-costs/:id", ctls.Product.GetItemCosts)
	}

	// 本地商品镜像
	{
		secured.GET("/announcements", ctls.Announcement.ListAnnouncements)
		secured.GET("/announcements/:id", ctls.Announcement.GetAnnouncement)
		secured.PUT("/announcements/:id/additional-info", ctls.Announcement.UpdateAdditionalInfo)
		secured.POST("/sync-announcements",
			middleware.SyncRateLimit(middleware.SyncTypeAnnouncement, 0, ""),
			ctls.Announcement.SyncAnnouncements,
		)
	}

	// 目录竞品
	competitors := secured.Group("/catalog-competitors")
	{
		competitors.GET("/db/:product_id", ctls.Competitor.ListCompetitors)
		competitors.POST("/sync/:product_id",
			middleware.SyncRateLimit(middleware.SyncTypeCompetitor, 0, "product_id"),
			ctls.Competitor.SyncCompetitors,
		)
		// :id 为目录商品或竞品商品 ID，两条路由共用同一参数名
		competitors.GET("/:id", ctls.Competitor.GetLiveCompetitors)
		competitors.PUT("/:id/manual-url", ctls.Competitor.UpdateManualURL)
	}

	// 商品广告
	{
		secured.GET("/advertisers", ctls.Ads.GetAdvertisers)
		secured.GET("/product-ads/items/:item_id", ctls.Ads.GetProductAd)
		secured.POST("/product-ads/sync/:item_id",
			middleware.SyncRateLimit(middleware.SyncTypeAds, 0, "item_id"),
			ctls.Ads.SyncProductAds,
		)
		secured.GET("/product-ads/db/:item_id", ctls.Ads.GetStoredAds)
	}

	// 订单
	orders := secured.Group("/orders")
	{
		orders.GET("/search", ctls.Order.SearchOrders)
		orders.POST("/sync",
			middleware.SyncRateLimit(middleware.SyncTypeOrder, 0, ""),
			ctls.Order.SyncOrders,
		)
		orders.GET("/db", ctls.Order.ListStoredOrders)
		orders.GET("/:order_id", ctls.Order.GetStoredOrder)
	}
}
