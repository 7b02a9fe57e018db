package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"meli_dev_v1_202610/internal/model"
	"meli_dev_v1_202610/pkg/meli"
)

// ==================== 测试模型 ====================

// testCompetitorRow sqlite 不支持 text[]，数组列改用 text
type testCompetitorRow struct {
	ID                      int64 `gorm:"primaryKey"`
	CreatedAt               time.Time
	UpdatedAt               time.Time
	CompanyID               int64  `gorm:"uniqueIndex:idx_competitor_company_item,priority:1"`
	CatalogProductID        string `gorm:"index"`
	ItemID                  string `gorm:"uniqueIndex:idx_competitor_company_item,priority:2"`
	Title                   string
	Price                   decimal.Decimal `gorm:"type:decimal(12,2)"`
	OriginalPrice           decimal.NullDecimal
	Condition               string
	AvailableQuantity       int
	SoldQuantity            int
	Permalink               string
	URL                     string `gorm:"column:url"`
	ManualURL               *string
	SellerID                string
	SellerNickname          *string
	SellerReputationLevel   *string
	SellerPowerStatus       *string
	SellerTransactionsTotal int
	ShippingMode            *string
	ShippingLogisticType    *string
	ShippingFree            bool
	ShippingTags            string
	ListingTypeID           *string
	Tags                    string
	DealIDs                 string     `gorm:"column:deal_ids"`
	MLDateCreated           *time.Time `gorm:"column:ml_date_created"`
	MLLastUpdated           *time.Time `gorm:"column:ml_last_updated"`
}

func (testCompetitorRow) TableName() string { return "catalog_competitors" }

// ==================== 测试辅助 ====================

func setupServiceTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	err = db.AutoMigrate(
		&model.Company{},
		&model.User{},
		&model.MeliIntegration{},
		&model.Announcement{},
		&model.ProductAdsData{},
		&model.MeliOrder{},
		&testCompetitorRow{},
	)
	if err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	// :memory: 每个连接是独立的库
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取连接池失败: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	return db
}

// fakeMeli 模拟 Mercado Livre API，按路由统计调用次数
type fakeMeli struct {
	*httptest.Server
	mu   sync.Mutex
	hits map[string]int
}

func newFakeMeli(t *testing.T, routes map[string]http.HandlerFunc) *fakeMeli {
	f := &fakeMeli{hits: map[string]int{}}
	mux := http.NewServeMux()
	for pattern, handler := range routes {
		pattern, handler := pattern, handler
		mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			f.hits[pattern]++
			f.mu.Unlock()
			handler(w, r)
		})
	}
	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Close)
	return f
}

func (f *fakeMeli) Hits(pattern string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[pattern]
}

func (f *fakeMeli) Client() *meli.Client {
	return meli.NewClient(meli.Config{
		ClientID:     "app-123",
		ClientSecret: "secret",
		RedirectURI:  "http://localhost:5173/account/integration/callback",
		APIBaseURL:   f.URL,
		AuthURL:      f.URL + "/authorization",
		TokenURL:     f.URL + "/oauth/token",
		Timeout:      5 * time.Second,
	})
}

// writeJSON v 为 string 时原样输出
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if s, ok := v.(string); ok {
		_, _ = w.Write([]byte(s))
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, `{"message":"not_found","error":"not_found","status":404}`)
}

// stubTokens 固定返回的凭证
type stubTokens struct {
	integ *model.MeliIntegration
	err   error
}

func (s *stubTokens) EnsureValidToken(_ context.Context, companyID int64) (*model.MeliIntegration, error) {
	if s.err != nil {
		return nil, s.err
	}
	integ := *s.integ
	integ.CompanyID = companyID
	return &integ, nil
}

func newStubTokens() *stubTokens {
	exp := time.Now().Add(6 * time.Hour)
	return &stubTokens{integ: &model.MeliIntegration{
		AccessToken: "APP_USR-token",
		MeliUserID:  "123",
		ExpiresAt:   &exp,
		IsActive:    true,
	}}
}
