package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ==================== JWT ====================

func TestGenerateAndParseTokenPair(t *testing.T) {
	access, refresh, err := GenerateTokenPair(10, 20, "ana@loja.com")
	require.NoError(t, err)

	claims, err := ParseToken(access)
	require.NoError(t, err)
	assert.Equal(t, int64(10), claims.UserID)
	assert.Equal(t, int64(20), claims.CompanyID)
	assert.Equal(t, TokenSubjectAccess, claims.Subject)

	rc, err := ParseToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, TokenSubjectRefresh, rc.Subject)

	_, err = ParseToken(access + "x")
	assert.Error(t, err)
}

func TestJWTAuth(t *testing.T) {
	r := gin.New()
	r.GET("/me", JWTAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"company_id": GetCompanyID(c), "user_id": GetUserID(c)})
	})

	access, refresh, _ := GenerateTokenPair(1, 2, "a@b.com")

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"缺少认证头", "", http.StatusUnauthorized},
		{"格式错误", "Token " + access, http.StatusUnauthorized},
		{"refresh token 不能访问", "Bearer " + refresh, http.StatusUnauthorized},
		{"正常", "Bearer " + access, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

// ==================== 同步限流 ====================

func TestSyncRateLimit_PerCompanyAndResource(t *testing.T) {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(ContextKeyCompanyID, int64(77))
		c.Next()
	})
	r.POST("/sync/:product_id", SyncRateLimit(SyncTypeCompetitor, time.Hour, "product_id"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	t.Cleanup(func() {
		ResetSyncLimit(77, SyncTypeCompetitor, "P1")
		ResetSyncLimit(77, SyncTypeCompetitor, "P2")
	})

	do := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, nil))
		return w
	}

	assert.Equal(t, http.StatusOK, do("/sync/P1").Code)

	w := do("/sync/P1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "retry_after")
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusOK, do("/sync/P2").Code)
}

func TestSyncCooldown_AcquireAndRelease(t *testing.T) {
	cd := NewSyncCooldown()
	key := CompanySyncKey(5, SyncTypeOrder, "")

	ok, wait := cd.Acquire(key, time.Hour)
	assert.True(t, ok)
	assert.Zero(t, wait)

	ok, wait = cd.Acquire(key, time.Hour)
	assert.False(t, ok)
	assert.Greater(t, wait, 59*time.Minute)

	// 被拒绝的请求不会延长冷却
	_, again := cd.Acquire(key, time.Hour)
	assert.LessOrEqual(t, again, wait)

	// 其他企业不受影响
	ok, _ = cd.Acquire(CompanySyncKey(6, SyncTypeOrder, ""), time.Hour)
	assert.True(t, ok)

	cd.Release(key)
	ok, _ = cd.Acquire(key, time.Hour)
	assert.True(t, ok)
}

func TestSyncCooldown_Refills(t *testing.T) {
	cd := NewSyncCooldown()
	key := CompanySyncKey(9, SyncTypeAds, "MLB1")

	ok, _ := cd.Acquire(key, 20*time.Millisecond)
	require.True(t, ok)
	ok, _ = cd.Acquire(key, 20*time.Millisecond)
	require.False(t, ok)

	time.Sleep(30 * time.Millisecond)
	ok, _ = cd.Acquire(key, 20*time.Millisecond)
	assert.True(t, ok)
}

func TestResetSyncLimit_ReleasesRoute(t *testing.T) {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(ContextKeyCompanyID, int64(88))
		c.Next()
	})
	r.POST("/orders/sync", SyncRateLimit(SyncTypeOrder, time.Hour, ""), func(c *gin.Context) {
		ResetSyncLimit(88, SyncTypeOrder, "")
		c.Status(http.StatusBadGateway)
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/orders/sync", nil))
		assert.Equal(t, http.StatusBadGateway, w.Code)
	}
}

func TestGetInterval(t *testing.T) {
	assert.Equal(t, 2*time.Minute, GetInterval(SyncTypeOrder))
	assert.Equal(t, time.Minute, GetInterval(SyncType("unknown")))
}

func TestFormatRetryMessage(t *testing.T) {
	assert.Equal(t, "同步冷却中，请 30 秒后重试", formatRetryMessage(30*time.Second))
	assert.Equal(t, "同步冷却中，请 2 分钟后重试", formatRetryMessage(2*time.Minute))
	assert.Equal(t, "同步冷却中，请 1 分 5 秒后重试", formatRetryMessage(65*time.Second))
}

// ==================== CORS ====================

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:5173"}))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

// ==================== 校验 ====================

type registerForm struct {
	CNPJ  string `json:"cnpj" binding:"required,cnpj"`
	Email string `json:"email" binding:"required,email"`
}

func TestSetupValidator_CNPJ(t *testing.T) {
	SetupValidator()

	r := gin.New()
	r.POST("/register", func(c *gin.Context) {
		var req registerForm
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": ValidationMessage(err)})
			return
		}
		c.Status(http.StatusOK)
	})

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, post(`{"cnpj":"11.222.333/0001-81","email":"a@b.com"}`).Code)

	w := post(`{"cnpj":"11222333000182","email":"a@b.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cnpj 不是有效的 CNPJ")
}
