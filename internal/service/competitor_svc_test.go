package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meli_dev_v1_202610/internal/repository"
	"meli_dev_v1_202610/pkg/errs"
)

// catalogFixture 目录商品当前的报价
type catalogFixture struct {
	mu      sync.Mutex
	items   []string
	missing bool
}

func (f *catalogFixture) set(items ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = items
}

func (f *catalogFixture) routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"GET /products/{id}/items": func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if f.missing {
				notFound(w, r)
				return
			}
			results := make([]string, 0, len(f.items))
			for i, id := range f.items {
				// 价格递减，便于验证排序
				price := 100 - i*10
				results = append(results, fmt.Sprintf(
					`{"item_id":%q,"title":"Fone Bluetooth Pró %s","price":%d,"original_price":%d,"condition":"new","seller_id":900,"listing_type_id":"gold_pro","shipping":{"free_shipping":true,"tags":["fulfillment"]},"tags":["good_quality_thumbnail"]}`,
					id, id, price, price))
			}
			writeJSON(w, http.StatusOK, `{"results":[`+strings.Join(results, ",")+`],"paging":{"total":`+fmt.Sprint(len(results))+`}}`)
		},
		"GET /users/{id}": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"id":900,"nickname":"LOJA_X","seller_reputation":{"level_id":"5_green","power_seller_status":"platinum","transactions":{"total":1200}}}`)
		},
	}
}

func newCompetitorTestService(t *testing.T, f *catalogFixture) (*CompetitorService, *fakeMeli) {
	db := setupServiceTestDB(t)
	fake := newFakeMeli(t, f.routes())
	repo := repository.NewCompetitorRepository(db)
	return NewCompetitorService(repo, newStubTokens(), fake.Client(), nil), fake
}

func competitorIDs(t *testing.T, svc *CompetitorService, companyID int64, catalogProductID string) []string {
	list, err := svc.ListCompetitors(context.Background(), companyID, catalogProductID)
	require.NoError(t, err)
	ids := make([]string, 0, len(list))
	for _, c := range list {
		ids = append(ids, c.ItemID)
	}
	return ids
}

func TestCompetitorService_SyncCompetitors_Reconcile(t *testing.T) {
	f := &catalogFixture{}
	f.set("A", "B", "C")
	svc, fake := newCompetitorTestService(t, f)
	ctx := context.Background()

	res, err := svc.SyncCompetitors(ctx, 1, "MLB100", false)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Synced)
	assert.Equal(t, 0, res.Removed)
	assert.Equal(t, 1, fake.Hits("GET /users/{id}"), "同一卖家只查询一次")

	// 手工链接在重新同步后保留
	manual := "https://example.com/b"
	_, err = svc.UpdateManualURL(ctx, 1, "B", &manual)
	require.NoError(t, err)

	f.set("B", "C", "D")
	res, err = svc.SyncCompetitors(ctx, 1, "MLB100", false)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Synced)
	assert.Equal(t, 1, res.Removed)
	assert.Equal(t, 3, res.TotalCurrent)
	assert.ElementsMatch(t, []string{"B", "C", "D"}, competitorIDs(t, svc, 1, "MLB100"))

	list, err := svc.ListCompetitors(ctx, 1, "MLB100")
	require.NoError(t, err)
	assert.Equal(t, "D", list[0].ItemID, "按价格升序")
	for _, c := range list {
		assert.False(t, c.OriginalPrice.Valid, "原价等于售价时不保存")
		require.NotNil(t, c.SellerNickname)
		assert.Equal(t, "LOJA_X", *c.SellerNickname)
		if c.ItemID == "B" {
			require.NotNil(t, c.ManualURL)
			assert.Equal(t, manual, *c.ManualURL)
		}
	}
}

func TestCompetitorService_SyncCompetitors_PerCompany(t *testing.T) {
	f := &catalogFixture{}
	svc, _ := newCompetitorTestService(t, f)
	ctx := context.Background()

	f.set("A", "B")
	_, err := svc.SyncCompetitors(ctx, 1, "MLB100", false)
	require.NoError(t, err)

	f.set("C")
	res, err := svc.SyncCompetitors(ctx, 2, "MLB100", false)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Removed, "不删除其他企业的竞品")
	assert.Equal(t, 1, res.TotalCurrent)

	assert.ElementsMatch(t, []string{"A", "B"}, competitorIDs(t, svc, 1, "MLB100"))
	assert.ElementsMatch(t, []string{"C"}, competitorIDs(t, svc, 2, "MLB100"))

	// 同一商品可同时出现在两个企业下，手工链接互不影响
	f.set("A")
	_, err = svc.SyncCompetitors(ctx, 2, "MLB100", false)
	require.NoError(t, err)
	url := "https://example.com/a"
	_, err = svc.UpdateManualURL(ctx, 2, "A", &url)
	require.NoError(t, err)

	list, err := svc.ListCompetitors(ctx, 1, "MLB100")
	require.NoError(t, err)
	for _, c := range list {
		assert.Nil(t, c.ManualURL)
	}
	_, err = svc.UpdateManualURL(ctx, 3, "A", &url)
	assert.True(t, errs.Is(err, errs.KindNotFound))
}

func TestCompetitorService_SyncCompetitors_DuplicateItems(t *testing.T) {
	f := &catalogFixture{}
	f.set("A", "A", "B")
	svc, _ := newCompetitorTestService(t, f)

	res, err := svc.SyncCompetitors(context.Background(), 1, "MLB100", false)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Synced)
	assert.Equal(t, 2, res.TotalCurrent)
	assert.ElementsMatch(t, []string{"A", "B"}, competitorIDs(t, svc, 1, "MLB100"))
}

func TestCompetitorService_SyncCompetitors_EmptyGuard(t *testing.T) {
	f := &catalogFixture{}
	f.set("A", "B")
	svc, _ := newCompetitorTestService(t, f)
	ctx := context.Background()

	_, err := svc.SyncCompetitors(ctx, 1, "MLB100", false)
	require.NoError(t, err)

	f.set()
	res, err := svc.SyncCompetitors(ctx, 1, "MLB100", false)
	require.NoError(t, err)
	assert.True(t, res.Guarded)
	assert.Equal(t, 2, res.TotalCurrent)
	assert.Len(t, competitorIDs(t, svc, 1, "MLB100"), 2, "空响应不删除本地数据")

	res, err = svc.SyncCompetitors(ctx, 1, "MLB100", true)
	require.NoError(t, err)
	assert.False(t, res.Guarded)
	assert.Equal(t, 2, res.Removed)
	assert.Empty(t, competitorIDs(t, svc, 1, "MLB100"))
}

func TestCompetitorService_SyncCompetitors_NotFound(t *testing.T) {
	f := &catalogFixture{missing: true}
	svc, _ := newCompetitorTestService(t, f)

	res, err := svc.SyncCompetitors(context.Background(), 1, "MLB404", false)
	require.NoError(t, err)
	assert.True(t, res.NotFound)
	assert.Equal(t, 0, res.Synced)
}

func TestCompetitorService_UpdateManualURL(t *testing.T) {
	f := &catalogFixture{}
	f.set("A")
	svc, _ := newCompetitorTestService(t, f)
	ctx := context.Background()

	url := "https://example.com/a"
	_, err := svc.UpdateManualURL(ctx, 1, "A", &url)
	assert.True(t, errs.Is(err, errs.KindNotFound))

	_, err = svc.SyncCompetitors(ctx, 1, "MLB100", false)
	require.NoError(t, err)

	c, err := svc.UpdateManualURL(ctx, 1, "A", &url)
	require.NoError(t, err)
	require.NotNil(t, c.ManualURL)

	blank := "  "
	c, err = svc.UpdateManualURL(ctx, 1, "A", &blank)
	require.NoError(t, err)
	assert.Nil(t, c.ManualURL, "空串清除链接")
}

func TestCompetitorService_FetchLiveCompetitors(t *testing.T) {
	f := &catalogFixture{}
	f.set("A", "B", "C")
	svc, _ := newCompetitorTestService(t, f)

	res, err := svc.FetchLiveCompetitors(context.Background(), 1, "MLB100")
	require.NoError(t, err)
	require.Equal(t, 3, res.Total)
	assert.Equal(t, "C", res.Results[0].ItemID)
	assert.Equal(t, "https://produto.mercadolivre.com.br/C-fone-bluetooth-pro-c", res.Results[0].URL)
	assert.Empty(t, competitorIDs(t, svc, 1, "MLB100"), "实时接口不落库")

	f.mu.Lock()
	f.missing = true
	f.mu.Unlock()
	res, err = svc.FetchLiveCompetitors(context.Background(), 1, "MLB100")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Fone de Ouvido Bluetooth  JBL", "fone-de-ouvido-bluetooth-jbl"},
		{"Câmera Açaí -- Pró!", "camera-acai-pro"},
		{"  Smartphone 128GB (Preto)  ", "smartphone-128gb-preto"},
		{"Kit 3 Peças - Promoção", "kit-3-pecas-promocao"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.title), tt.title)
	}
}

func TestProductURL(t *testing.T) {
	assert.Equal(t, "https://produto.mercadolivre.com.br/MLB123-tenis-corrida", ProductURL("MLB123", "Tênis Corrida"))
	assert.Equal(t, "https://produto.mercadolivre.com.br/MLB123", ProductURL("MLB123", ""))
}
