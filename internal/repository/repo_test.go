package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"meli_dev_v1_202610/internal/model"
)

// ==================== 测试模型 ====================

// testCompetitor sqlite 不支持 text[]，数组列改用 text
type testCompetitor struct {
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
	DealIDs                 string `gorm:"column:deal_ids"`
	MLDateCreated           *time.Time `gorm:"column:ml_date_created"`
	MLLastUpdated           *time.Time `gorm:"column:ml_last_updated"`
}

func (testCompetitor) TableName() string { return "catalog_competitors" }

// ==================== 测试辅助 ====================

func setupRepoTestDB(t *testing.T) *gorm.DB {
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
		&testCompetitor{},
	)
	if err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	return db
}

func strPtr(s string) *string { return &s }

// ==================== 企业 / 用户 ====================

func TestCompanyRepo_CreateWithOwner(t *testing.T) {
	db := setupRepoTestDB(t)
	companies := NewCompanyRepository(db)
	users := NewUserRepository(db)
	ctx := context.Background()

	company := &model.Company{Name: "Loja Azul", CNPJ: "11222333000181"}
	owner := &model.User{Name: "Ana", Email: "ana@loja.com", HashedPassword: "x"}
	require.NoError(t, companies.CreateWithOwner(ctx, company, owner))
	assert.NotZero(t, owner.CompanyID)

	got, err := users.GetByEmail(ctx, "ana@loja.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.Company)
	assert.Equal(t, "Loja Azul", got.Company.Name)

	exists, err := companies.ExistsByCNPJ(ctx, "11222333000181", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = companies.ExistsByCNPJ(ctx, "11222333000181", company.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	missing, err := users.GetByEmail(ctx, "nobody@loja.com")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

// ==================== 授权凭证 ====================

func TestIntegrationRepo_SaveKeepsOneRowPerCompany(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewIntegrationRepository(db)
	ctx := context.Background()

	exp := time.Now().Add(6 * time.Hour)
	first, err := repo.Save(ctx, &model.MeliIntegration{
		CompanyID: 1, AccessToken: "A1", RefreshToken: strPtr("R1"),
		TokenType: "Bearer", MeliUserID: "42", ExpiresIn: 21600, ExpiresAt: &exp, IsActive: true,
	})
	require.NoError(t, err)

	require.NoError(t, repo.Deactivate(ctx, 1))

	second, err := repo.Save(ctx, &model.MeliIntegration{
		CompanyID: 1, AccessToken: "A2", RefreshToken: strPtr("R2"),
		TokenType: "Bearer", MeliUserID: "42", ExpiresIn: 21600, ExpiresAt: &exp, IsActive: true,
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "A2", second.AccessToken)
	assert.True(t, second.IsActive)

	var count int64
	db.Model(&model.MeliIntegration{}).Where("company_id = ?", 1).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestIntegrationRepo_DeactivateKeepsRow(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewIntegrationRepository(db)
	ctx := context.Background()

	exp := time.Now().Add(time.Hour)
	_, err := repo.Save(ctx, &model.MeliIntegration{CompanyID: 7, AccessToken: "A", ExpiresAt: &exp, IsActive: true})
	require.NoError(t, err)

	require.NoError(t, repo.Deactivate(ctx, 7))

	active, err := repo.GetActiveByCompany(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, active)

	row, err := repo.GetByCompany(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.False(t, row.IsActive)
}

func TestIntegrationRepo_FindExpiring(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewIntegrationRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	soon := now.Add(20 * time.Minute)
	later := now.Add(5 * time.Hour)

	_, _ = repo.Save(ctx, &model.MeliIntegration{CompanyID: 1, AccessToken: "a", RefreshToken: strPtr("r"), ExpiresAt: &soon, IsActive: true})
	_, _ = repo.Save(ctx, &model.MeliIntegration{CompanyID: 2, AccessToken: "b", RefreshToken: strPtr("r"), ExpiresAt: &later, IsActive: true})
	_, _ = repo.Save(ctx, &model.MeliIntegration{CompanyID: 3, AccessToken: "c", ExpiresAt: &soon, IsActive: true})
	_, _ = repo.Save(ctx, &model.MeliIntegration{CompanyID: 4, AccessToken: "d", RefreshToken: strPtr("r"), ExpiresAt: &soon, IsActive: true})
	require.NoError(t, repo.Deactivate(ctx, 4))

	list, err := repo.FindExpiring(ctx, now.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(1), list[0].CompanyID)

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 3)
}

// ==================== 商品镜像 ====================

func TestAnnouncementRepo_UpdateSyncFieldsKeepsOperatorFields(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewAnnouncementRepository(db)
	ctx := context.Background()

	a := &model.Announcement{CompanyID: 1, MLItemID: "MLB1", Title: "v1", Price: decimal.NewFromInt(10)}
	require.NoError(t, repo.Create(ctx, a))

	require.NoError(t, repo.UpdateFields(ctx, a.ID, map[string]interface{}{
		"product_cost":     decimal.NewFromInt(4),
		"additional_notes": "fornecedor X",
	}))

	synced := &model.Announcement{CompanyID: 1, MLItemID: "MLB1", Title: "v2", Price: decimal.NewFromInt(12)}
	synced.ID = a.ID
	require.NoError(t, repo.UpdateSyncFields(ctx, synced))

	got, err := repo.GetByItemID(ctx, 1, "MLB1")
	require.NoError(t, err)
	assert.Equal(t, "v2", got.Title)
	assert.True(t, got.Price.Equal(decimal.NewFromInt(12)))
	require.True(t, got.ProductCost.Valid)
	assert.True(t, got.ProductCost.Decimal.Equal(decimal.NewFromInt(4)))
	require.NotNil(t, got.AdditionalNotes)
	assert.Equal(t, "fornecedor X", *got.AdditionalNotes)
}

func TestAnnouncementRepo_List(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewAnnouncementRepository(db)
	ctx := context.Background()

	for _, id := range []string{"MLB1", "MLB2", "MLB3"} {
		require.NoError(t, repo.Create(ctx, &model.Announcement{CompanyID: 1, MLItemID: id}))
	}
	require.NoError(t, repo.Create(ctx, &model.Announcement{CompanyID: 2, MLItemID: "MLB9"}))

	list, total, err := repo.List(ctx, AnnouncementFilter{CompanyID: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, list, 2)
}

// ==================== 目录竞品 ====================

func TestCompetitorRepo_UpsertPreservesManualURL(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewCompetitorRepository(db)
	ctx := context.Background()

	created, err := repo.Upsert(ctx, &model.CatalogCompetitor{CompanyID: 1, CatalogProductID: "MLB-P1", ItemID: "MLB1", Title: "a", Price: decimal.NewFromInt(100)})
	require.NoError(t, err)
	assert.True(t, created)

	rows, err := repo.UpdateManualURL(ctx, 1, "MLB1", strPtr("https://loja.example/a"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	created, err = repo.Upsert(ctx, &model.CatalogCompetitor{CompanyID: 1, CatalogProductID: "MLB-P1", ItemID: "MLB1", Title: "a2", Price: decimal.NewFromInt(90)})
	require.NoError(t, err)
	assert.False(t, created)

	got, err := repo.GetByItemID(ctx, 1, "MLB1")
	require.NoError(t, err)
	assert.Equal(t, "a2", got.Title)
	require.NotNil(t, got.ManualURL)
	assert.Equal(t, "https://loja.example/a", *got.ManualURL)
}

func TestCompetitorRepo_DeleteByItemIDs(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewCompetitorRepository(db)
	ctx := context.Background()

	for i, id := range []string{"A", "B", "C"} {
		_, err := repo.Upsert(ctx, &model.CatalogCompetitor{CompanyID: 1, CatalogProductID: "P", ItemID: id, Price: decimal.NewFromInt(int64(30 - i))})
		require.NoError(t, err)
	}

	// 其他企业的同名商品不受影响
	_, err := repo.Upsert(ctx, &model.CatalogCompetitor{CompanyID: 2, CatalogProductID: "P", ItemID: "A"})
	require.NoError(t, err)

	removed, err := repo.DeleteByItemIDs(ctx, 1, "P", []string{"A"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	list, err := repo.ListByCatalogProduct(ctx, 1, "P")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "C", list[0].ItemID)

	removed, err = repo.DeleteByItemIDs(ctx, 1, "P", nil)
	require.NoError(t, err)
	assert.Zero(t, removed)

	ids, err := repo.ListItemIDs(ctx, 2, "P")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, ids)
}

// ==================== 广告指标 ====================

func TestProductAdsRepo_UpsertByPeriod(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewProductAdsRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &model.ProductAdsData{CompanyID: 1, MLItemID: "MLB1", PeriodDays: 7, Clicks: 5}))
	require.NoError(t, repo.Upsert(ctx, &model.ProductAdsData{CompanyID: 1, MLItemID: "MLB1", PeriodDays: 15, Clicks: 9}))
	require.NoError(t, repo.Upsert(ctx, &model.ProductAdsData{CompanyID: 1, MLItemID: "MLB1", PeriodDays: 7, Clicks: 6}))

	list, err := repo.ListByItem(ctx, 1, "MLB1")
	require.NoError(t, err)
	require.Len(t, list, 2)

	got, err := repo.GetByPeriod(ctx, 1, "MLB1", 7)
	require.NoError(t, err)
	assert.Equal(t, 6, got.Clicks)

	none, err := repo.GetByPeriod(ctx, 1, "MLB1", 30)
	assert.NoError(t, err)
	assert.Nil(t, none)
}

// ==================== 订单 ====================

func TestOrderRepo_ListFilters(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	day := func(d int) *time.Time {
		ts := time.Date(2026, 3, d, 12, 0, 0, 0, time.UTC)
		return &ts
	}
	require.NoError(t, repo.Create(ctx, &model.MeliOrder{CompanyID: 1, OrderID: "1", Status: "paid", DateCreated: day(1)}))
	require.NoError(t, repo.Create(ctx, &model.MeliOrder{CompanyID: 1, OrderID: "2", Status: "cancelled", DateCreated: day(5)}))
	require.NoError(t, repo.Create(ctx, &model.MeliOrder{CompanyID: 1, OrderID: "3", Status: "paid", DateCreated: day(10)}))
	require.NoError(t, repo.Create(ctx, &model.MeliOrder{CompanyID: 2, OrderID: "4", Status: "paid", DateCreated: day(10)}))

	orders, total, err := repo.List(ctx, OrderFilter{CompanyID: 1, Status: "paid"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, "3", orders[0].OrderID)

	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)
	orders, total, err = repo.List(ctx, OrderFilter{CompanyID: 1, StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "2", orders[0].OrderID)

	exists, err := repo.ExistsByOrderID(ctx, 1, "4")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.UpdateByOrderID(ctx, 1, "1", map[string]interface{}{"status": "cancelled"}))
	got, err := repo.GetByOrderID(ctx, 1, "1")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", got.Status)
}
