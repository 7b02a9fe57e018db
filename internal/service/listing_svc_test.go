package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meli_dev_v1_202610/internal/api/dto"
	"meli_dev_v1_202610/internal/repository"
	"meli_dev_v1_202610/pkg/errs"
)

// listingFixture 可变的上游商品数据
type listingFixture struct {
	mu       sync.Mutex
	ids      []string // 卖家商品 ID，为空时返回 MLB1、MLB2
	offsets  []int
	titles   map[string]string
	failItem map[string]bool
	sale     bool
	feesDown bool
}

func (f *listingFixture) routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"GET /users/{uid}/items/search": func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			ids := f.ids
			if ids == nil {
				ids = []string{"MLB1", "MLB2"}
			}
			offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
			limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
			f.offsets = append(f.offsets, offset)

			page := []string{}
			for i := offset; i < len(ids) && i < offset+limit; i++ {
				page = append(page, strconv.Quote(ids[i]))
			}
			writeJSON(w, http.StatusOK, fmt.Sprintf(`{"results":[%s],"paging":{"total":%d,"offset":%d,"limit":%d}}`,
				strings.Join(page, ","), len(ids), offset, limit))
		},
		"GET /items/{id}": func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			id := r.PathValue("id")
			if f.failItem[id] {
				writeJSON(w, http.StatusInternalServerError, `{"message":"internal error"}`)
				return
			}
			title, ok := f.titles[id]
			if !ok {
				notFound(w, r)
				return
			}
			writeJSON(w, http.StatusOK, fmt.Sprintf(
				`{"id":%q,"site_id":"MLB","title":%q,"category_id":"MLB1055","price":99.9,"currency_id":"BRL","available_quantity":5,"sold_quantity":1,"listing_type_id":"gold_special","condition":"new","status":"active","catalog_listing":false}`,
				id, title))
		},
		"GET /items/{id}/prices": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"id":"x","prices":[]}`)
		},
		"GET /items/{id}/sale_price": func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if !f.sale {
				notFound(w, r)
				return
			}
			writeJSON(w, http.StatusOK, `{"price_id":"p1","amount":89.9,"regular_amount":99.9,"currency_id":"BRL"}`)
		},
		"GET /items/{id}/price_to_win": notFound,
		"GET /sites/{site}/listing_prices": func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if f.feesDown {
				writeJSON(w, http.StatusInternalServerError, `{"message":"boom"}`)
				return
			}
			writeJSON(w, http.StatusOK, `[{"listing_type_id":"gold_pro","listing_type_name":"Premium","listing_fee_amount":0,"sale_fee_amount":15},`+
				`{"listing_type_id":"gold_special","listing_type_name":"Clássico","listing_fee_amount":6,"sale_fee_amount":11.99,"sale_fee_details":{"percentage_fee":12}}]`)
		},
	}
}

func newListingTestService(t *testing.T, f *listingFixture) (*ListingService, *fakeMeli) {
	db := setupServiceTestDB(t)
	fake := newFakeMeli(t, f.routes())
	repo := repository.NewAnnouncementRepository(db)
	return NewListingService(repo, newStubTokens(), fake.Client(), nil), fake
}

func TestListingService_SyncAnnouncements_Idempotent(t *testing.T) {
	f := &listingFixture{titles: map[string]string{"MLB1": "Fone Bluetooth", "MLB2": "Caixa de Som"}}
	svc, _ := newListingTestService(t, f)
	ctx := context.Background()

	first, err := svc.SyncAnnouncements(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Synced)
	assert.Equal(t, 2, first.TotalFound)
	assert.Equal(t, 2, first.TotalProcessed)
	assert.Empty(t, first.Errors)

	// 运营字段
	cost := decimal.RequireFromString("42.50")
	notes := "fornecedor SP"
	_, err = svc.UpdateAdditionalInfo(ctx, 1, "MLB1", &dto.AdditionalInfoRequest{ProductCost: dto.OptionalOf(cost), AdditionalNotes: dto.OptionalOf(notes)})
	require.NoError(t, err)

	second, err := svc.SyncAnnouncements(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Synced)
	assert.Equal(t, 0, second.Updated)
	assert.Equal(t, 2, second.Unchanged)

	// 上游变化只更新同步字段
	f.mu.Lock()
	f.titles["MLB1"] = "Fone Bluetooth V2"
	f.mu.Unlock()

	third, err := svc.SyncAnnouncements(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, third.Updated)
	assert.Equal(t, 1, third.Unchanged)

	a, err := svc.GetAnnouncement(ctx, 1, "MLB1")
	require.NoError(t, err)
	assert.Equal(t, "Fone Bluetooth V2", a.Title)
	require.True(t, a.ProductCost.Valid)
	assert.True(t, a.ProductCost.Decimal.Equal(cost), "同步不覆盖运营字段")
	require.NotNil(t, a.AdditionalNotes)
	assert.Equal(t, notes, *a.AdditionalNotes)

	list, err := svc.ListAnnouncements(ctx, 1, &dto.AnnouncementListRequest{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), list.Total)
}

func TestListingService_SyncAnnouncements_SalePriceAndFees(t *testing.T) {
	f := &listingFixture{titles: map[string]string{"MLB1": "Fone"}, sale: true}
	svc, _ := newListingTestService(t, f)
	ctx := context.Background()

	_, err := svc.SyncAnnouncements(ctx, 1)
	require.NoError(t, err)

	a, err := svc.GetAnnouncement(ctx, 1, "MLB1")
	require.NoError(t, err)
	assert.True(t, a.Price.Equal(decimal.RequireFromString("89.9")), "促销价覆盖 price")
	require.True(t, a.OriginalPrice.Valid)
	assert.True(t, a.OriginalPrice.Decimal.Equal(decimal.RequireFromString("99.9")))
	require.True(t, a.SalePrice.Valid)

	require.NotNil(t, a.ListingTypeName)
	assert.Equal(t, "Clássico", *a.ListingTypeName, "按 listing_type_id 选择费用")
	require.True(t, a.TotalCost.Valid)
	assert.True(t, a.TotalCost.Decimal.Equal(decimal.RequireFromString("17.99")))
	assert.Nil(t, a.CatalogStatus, "price_to_win 404 不影响同步")
}

func TestListingService_SyncAnnouncements_ItemFailureRecorded(t *testing.T) {
	f := &listingFixture{
		titles:   map[string]string{"MLB1": "Fone", "MLB2": "Caixa"},
		failItem: map[string]bool{"MLB2": true},
	}
	svc, _ := newListingTestService(t, f)

	res, err := svc.SyncAnnouncements(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Synced)
	assert.Equal(t, 2, res.TotalFound)
	assert.Equal(t, 1, res.TotalProcessed)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "MLB2")
}

func TestListingService_SyncAnnouncements_TokenError(t *testing.T) {
	f := &listingFixture{titles: map[string]string{}}
	svc, fake := newListingTestService(t, f)
	svc.tokens = &stubTokens{err: errs.NotFound("未连接 Mercado Livre 账号")}

	_, err := svc.SyncAnnouncements(context.Background(), 1)
	assert.True(t, errs.Is(err, errs.KindNotFound))
	assert.Equal(t, 0, fake.Hits("GET /users/{uid}/items/search"))
}

func TestListingService_SyncAnnouncements_Paginates(t *testing.T) {
	f := &listingFixture{titles: map[string]string{}}
	for i := 1; i <= 75; i++ {
		id := fmt.Sprintf("MLB%d", 1000+i)
		f.ids = append(f.ids, id)
		f.titles[id] = "Produto " + id
	}
	svc, fake := newListingTestService(t, f)
	ctx := context.Background()

	res, err := svc.SyncAnnouncements(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 75, res.TotalFound)
	assert.Equal(t, 75, res.Synced)
	assert.Empty(t, res.Errors)
	assert.Equal(t, []int{0, 50}, f.offsets)
	assert.Equal(t, 75, fake.Hits("GET /items/{id}"))

	list, err := svc.ListAnnouncements(ctx, 1, &dto.AnnouncementListRequest{Limit: 100})
	require.NoError(t, err)
	assert.Equal(t, int64(75), list.Total)
}

func TestListingService_UpdateAdditionalInfo_Validation(t *testing.T) {
	f := &listingFixture{titles: map[string]string{"MLB1": "Fone"}}
	svc, _ := newListingTestService(t, f)
	ctx := context.Background()

	_, err := svc.UpdateAdditionalInfo(ctx, 1, "MLB404", &dto.AdditionalInfoRequest{})
	assert.True(t, errs.Is(err, errs.KindNotFound))

	_, err = svc.SyncAnnouncements(ctx, 1)
	require.NoError(t, err)
	_, err = svc.UpdateAdditionalInfo(ctx, 1, "MLB1", &dto.AdditionalInfoRequest{})
	assert.True(t, errs.Is(err, errs.KindValidation))

	// 其他企业看不到
	_, err = svc.GetAnnouncement(ctx, 2, "MLB1")
	assert.True(t, errs.Is(err, errs.KindNotFound))
}

func TestListingService_UpdateAdditionalInfo_Clear(t *testing.T) {
	f := &listingFixture{titles: map[string]string{"MLB1": "Fone"}}
	svc, _ := newListingTestService(t, f)
	ctx := context.Background()

	_, err := svc.SyncAnnouncements(ctx, 1)
	require.NoError(t, err)

	_, err = svc.UpdateAdditionalInfo(ctx, 1, "MLB1", &dto.AdditionalInfoRequest{
		ProductCost:     dto.OptionalOf(decimal.NewFromInt(30)),
		Taxes:           dto.OptionalOf("6%"),
		AdditionalNotes: dto.OptionalOf("lote 1"),
	})
	require.NoError(t, err)

	// null 清空，未传的字段保持不变
	var req dto.AdditionalInfoRequest
	require.NoError(t, json.Unmarshal([]byte(`{"product_cost":null,"additional_notes":null}`), &req))
	a, err := svc.UpdateAdditionalInfo(ctx, 1, "MLB1", &req)
	require.NoError(t, err)
	assert.False(t, a.ProductCost.Valid)
	assert.Nil(t, a.AdditionalNotes)
	require.NotNil(t, a.Taxes)
	assert.Equal(t, "6%", *a.Taxes)

	_, err = svc.UpdateAdditionalInfo(ctx, 1, "MLB1", &dto.AdditionalInfoRequest{Taxes: dto.Null[string]()})
	require.NoError(t, err)
	a, err = svc.GetAnnouncement(ctx, 1, "MLB1")
	require.NoError(t, err)
	assert.Nil(t, a.Taxes)
}

func TestListingService_GetItemCosts(t *testing.T) {
	f := &listingFixture{titles: map[string]string{"MLB1": "Fone"}}
	svc, _ := newListingTestService(t, f)
	ctx := context.Background()

	live, err := svc.GetItemCosts(ctx, 1, "MLB1")
	require.NoError(t, err)
	assert.False(t, live.Estimated)
	assert.True(t, live.TotalCost.Equal(decimal.RequireFromString("17.99")))

	f.mu.Lock()
	f.feesDown = true
	f.mu.Unlock()

	est, err := svc.GetItemCosts(ctx, 1, "MLB1")
	require.NoError(t, err)
	assert.True(t, est.Estimated)
	assert.True(t, est.ListingFeeAmount.Equal(decimal.RequireFromString("15.90")))
	assert.True(t, est.SaleFeeAmount.Equal(decimal.RequireFromString("11.99")))
	assert.True(t, est.SaleFeePercentage.Decimal.Equal(decimal.NewFromInt(12)))
}

func TestEstimateFees(t *testing.T) {
	tests := []struct {
		listingType string
		price       string
		listingFee  string
		saleFee     string
	}{
		{"gold_special", "100", "15.90", "12"},
		{"gold_pro", "59.99", "15.90", "7.2"},
		{"gold", "10", "7.90", "1.2"},
		{"free", "10", "0", "1.2"},
		{"", "0", "0", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.listingType, func(t *testing.T) {
			listingFee, saleFee := EstimateFees(decimal.RequireFromString(tt.price), tt.listingType)
			assert.True(t, listingFee.Equal(decimal.RequireFromString(tt.listingFee)), "listing fee %s", listingFee)
			assert.True(t, saleFee.Equal(decimal.RequireFromString(tt.saleFee)), "sale fee %s", saleFee)
		})
	}
}
