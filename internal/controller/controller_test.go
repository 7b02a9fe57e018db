package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"meli_dev_v1_202610/internal/middleware"
	"meli_dev_v1_202610/internal/model"
	"meli_dev_v1_202610/internal/repository"
	"meli_dev_v1_202610/internal/service"
	"meli_dev_v1_202610/pkg/meli"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// ==================== 测试辅助 ====================

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
}

func setupControllerTest(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.Company{},
		&model.User{},
		&model.MeliIntegration{},
		&model.Announcement{},
		&model.ProductAdsData{},
		&model.MeliOrder{},
	)
	if err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}

	// 仅 users/me 可用，其余上游接口一律 404
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/me", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":123,"nickname":"LOJA_TESTE","site_id":"MLB"}`))
	})
	upstream := httptest.NewServer(mux)
	t.Cleanup(upstream.Close)

	client := meli.NewClient(meli.Config{
		ClientID:     "app-123",
		ClientSecret: "secret",
		RedirectURI:  "http://localhost:5173/account/integration/callback",
		APIBaseURL:   upstream.URL,
		TokenURL:     upstream.URL + "/oauth/token",
		Timeout:      5 * time.Second,
	})

	integrationSvc := service.NewIntegrationService(repository.NewIntegrationRepository(db), client, nil)
	listingSvc := service.NewListingService(repository.NewAnnouncementRepository(db), integrationSvc, client, nil)
	adsSvc := service.NewAdsService(repository.NewProductAdsRepository(db), integrationSvc, client, nil)
	orderSvc := service.NewOrderService(repository.NewOrderRepository(db), integrationSvc, client, nil)
	userSvc := service.NewUserService(repository.NewUserRepository(db), repository.NewCompanyRepository(db))

	userCtl := NewUserController(userSvc)
	authCtl := NewMeliAuthController(integrationSvc, nil)
	announcementCtl := NewAnnouncementController(listingSvc)
	adsCtl := NewAdsController(adsSvc)
	orderCtl := NewOrderController(orderSvc)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/auth/register", userCtl.Register)
	api.POST("/auth/login", userCtl.Login)
	api.GET("/mercado-livre/auth/callback", authCtl.PublicCallback)
	api.POST("/mercado-livre/notifications/callback", authCtl.Notifications)

	protected := api.Group("", middleware.JWTAuth())
	protected.GET("/auth/me", userCtl.GetProfile)
	ml := protected.Group("/mercado-livre")
	ml.GET("/status", authCtl.Status)
	ml.POST("/refresh", authCtl.Refresh)
	ml.GET("/announcements", announcementCtl.ListAnnouncements)
	ml.PUT("/announcements/:id/additional-info", announcementCtl.UpdateAdditionalInfo)
	ml.POST("/sync-announcements",
		middleware.SyncRateLimit(middleware.SyncTypeAnnouncement, time.Hour, ""),
		announcementCtl.SyncAnnouncements)
	ml.GET("/product-ads/db/:item_id", adsCtl.GetStoredAds)
	ml.GET("/orders/db", orderCtl.ListStoredOrders)
	ml.GET("/orders/:order_id", orderCtl.GetStoredOrder)

	return &testEnv{router: r, db: db}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w.Code, resp
}

// login 注册并登录，返回 access token 和企业 ID
func (e *testEnv) login(t *testing.T, email, cnpj string) (string, int64) {
	t.Helper()
	code, _ := e.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":         "Ana Souza",
		"email":        email,
		"password":     "segredo123",
		"company_name": "Loja Teste",
		"cnpj":         cnpj,
	})
	require.Equal(t, http.StatusOK, code)

	code, resp := e.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"email": email, "password": "segredo123"})
	require.Equal(t, http.StatusOK, code)
	data := resp["data"].(map[string]interface{})
	user := data["user"].(map[string]interface{})
	return data["access_token"].(string), int64(user["company_id"].(float64))
}

// ==================== 认证 ====================

func TestUserController_AuthFlow(t *testing.T) {
	env := setupControllerTest(t)
	token, companyID := env.login(t, "ana@loja.com", "11.222.333/0001-81")
	assert.NotZero(t, companyID)

	code, resp := env.do(t, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 0, resp["code"])
	assert.Equal(t, "ana@loja.com", resp["data"].(map[string]interface{})["email"])

	// 重复注册
	code, resp = env.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Outra", "email": "ANA@loja.com", "password": "segredo123",
		"company_name": "Outra Loja", "cnpj": "11444777000161",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "邮箱已注册", resp["message"])

	// 错误密码
	code, resp = env.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"email": "ana@loja.com", "password": "errada"})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.EqualValues(t, 401, resp["code"])
}

func TestUserController_RegisterValidation(t *testing.T) {
	env := setupControllerTest(t)

	code, resp := env.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Ana", "email": "ana@loja.com", "password": "segredo123",
		"company_name": "Loja", "cnpj": "11222333000100",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, resp["message"], "cnpj 不是有效的 CNPJ")
}

// ==================== Mercado Livre 授权 ====================

func TestMeliAuthController_Status(t *testing.T) {
	env := setupControllerTest(t)
	token, companyID := env.login(t, "ana@loja.com", "11222333000181")

	code, resp := env.do(t, http.MethodGet, "/api/mercado-livre/status", token, nil)
	assert.Equal(t, http.StatusOK, code)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, false, data["connected"])

	exp := time.Now().Add(5 * time.Hour)
	require.NoError(t, env.db.Create(&model.MeliIntegration{
		CompanyID:   companyID,
		AccessToken: "APP_USR-token",
		MeliUserID:  "123",
		ExpiresAt:   &exp,
		IsActive:    true,
	}).Error)

	code, resp = env.do(t, http.MethodGet, "/api/mercado-livre/status", token, nil)
	assert.Equal(t, http.StatusOK, code)
	data = resp["data"].(map[string]interface{})
	assert.Equal(t, true, data["connected"])
	assert.Equal(t, "LOJA_TESTE", data["nickname"])

	// 没有 refresh_token
	code, _ = env.do(t, http.MethodPost, "/api/mercado-livre/refresh", token, nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestMeliAuthController_PublicEndpoints(t *testing.T) {
	env := setupControllerTest(t)

	code, resp := env.do(t, http.MethodGet, "/api/mercado-livre/auth/callback?code=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "缺少 code 或 state", resp["message"])

	code, resp = env.do(t, http.MethodGet, "/api/mercado-livre/auth/callback?code=abc&state=garbage", "", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, resp = env.do(t, http.MethodPost, "/api/mercado-livre/notifications/callback", "", gin.H{
		"topic": "orders_v2", "resource": "/orders/2000001", "user_id": 123,
	})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "received", resp["message"])
}

// ==================== 商品 / 广告 / 订单 ====================

func TestAnnouncementController(t *testing.T) {
	env := setupControllerTest(t)
	token, _ := env.login(t, "ana@loja.com", "11222333000181")

	code, resp := env.do(t, http.MethodGet, "/api/mercado-livre/announcements?limit=500", token, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, resp = env.do(t, http.MethodGet, "/api/mercado-livre/announcements", token, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 0, resp["data"].(map[string]interface{})["total"])

	code, resp = env.do(t, http.MethodPut, "/api/mercado-livre/announcements/MLB1/additional-info", token, gin.H{"taxes": "6%"})
	assert.Equal(t, http.StatusNotFound, code)
	assert.EqualValues(t, 404, resp["code"])
}

func TestAnnouncementController_FailedSyncReleasesCooldown(t *testing.T) {
	env := setupControllerTest(t)
	token, _ := env.login(t, "ana@loja.com", "11222333000181")

	// 未连接账号，同步失败后不占用冷却
	for i := 0; i < 2; i++ {
		code, resp := env.do(t, http.MethodPost, "/api/mercado-livre/sync-announcements", token, nil)
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "未连接 Mercado Livre 账号", resp["message"])
	}
}

func TestAdsController_StoredAds(t *testing.T) {
	env := setupControllerTest(t)
	token, _ := env.login(t, "ana@loja.com", "11222333000181")

	code, _ := env.do(t, http.MethodGet, "/api/mercado-livre/product-ads/db/MLB1?period_days=45", token, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = env.do(t, http.MethodGet, "/api/mercado-livre/product-ads/db/MLB1", token, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestOrderController_Stored(t *testing.T) {
	env := setupControllerTest(t)
	token, _ := env.login(t, "ana@loja.com", "11222333000181")

	code, resp := env.do(t, http.MethodGet, "/api/mercado-livre/orders/db?date_from=31-01-2026", token, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.EqualValues(t, 400, resp["code"])

	code, resp = env.do(t, http.MethodGet, "/api/mercado-livre/orders/db", token, nil)
	assert.Equal(t, http.StatusOK, code)
	data := resp["data"].(map[string]interface{})
	assert.EqualValues(t, 50, data["limit"])
	assert.Equal(t, false, data["has_more"])

	code, _ = env.do(t, http.MethodGet, "/api/mercado-livre/orders/999", token, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRoutes_RequireAuth(t *testing.T) {
	env := setupControllerTest(t)

	code, _ := env.do(t, http.MethodGet, "/api/mercado-livre/orders/db", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}
