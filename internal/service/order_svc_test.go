package service

import (
	"context"
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
	"meli_dev_v1_202610/internal/model"
	"meli_dev_v1_202610/internal/repository"
	"meli_dev_v1_202610/pkg/errs"
)

func orderJSON(id, status, created string) string {
	return fmt.Sprintf(`{"id":%s,"status":%q,"status_detail":null,"date_created":%q,"date_last_updated":%q,`+
		`"total_amount":150.5,"currency_id":"BRL",`+
		`"buyer":{"id":55,"nickname":"COMPRADOR","first_name":"Ana","phone":{"area_code":"11","number":"99999"}},`+
		`"seller":{"id":123,"nickname":"LOJA"},`+
		`"shipping":{"id":4001},`+
		`"payments":[{"id":9,"status":"approved","transaction_amount":150.5,"installments":3},{"id":10,"status":"refunded"}],`+
		`"feedback":{"sale":null,"purchase":null},`+
		`"order_items":[{"item":{"id":"MLB1","title":"Fone"},"quantity":1,"unit_price":150.5}],"tags":["paid","delivered"]}`,
		id, status, created, created)
}

type orderFixture struct {
	mu       sync.Mutex
	status   string
	ids      []string
	failPage bool
	offsets  []int
}

func (f *orderFixture) routes() map[string]http.HandlerFunc {
	created := map[string]string{
		"1001": "2026-03-01T10:00:00.000Z",
		"1002": "2026-03-02T10:00:00.000Z",
		"1003": "2026-03-03T10:00:00.000Z",
	}
	createdAt := func(id string) string {
		if at, ok := created[id]; ok {
			return at
		}
		return "2026-03-05T10:00:00.000Z"
	}
	return map[string]http.HandlerFunc{
		"GET /orders/search": func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if f.failPage {
				writeJSON(w, http.StatusInternalServerError, `{"message":"boom"}`)
				return
			}
			offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
			limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
			if limit <= 0 {
				limit = 50
			}
			f.offsets = append(f.offsets, offset)

			results := []string{}
			for i := offset; i < len(f.ids) && i < offset+limit; i++ {
				id := f.ids[i]
				results = append(results, orderJSON(id, f.status, createdAt(id)))
			}
			writeJSON(w, http.StatusOK, fmt.Sprintf(`{"results":[%s],"paging":{"total":%d,"offset":%d,"limit":%d}}`,
				strings.Join(results, ","), len(f.ids), offset, limit))
		},
		"GET /orders/{id}": func(w http.ResponseWriter, r *http.Request) {
			id := r.PathValue("id")
			writeJSON(w, http.StatusOK, orderJSON(id, "paid", createdAt(id)))
		},
	}
}

func newOrderTestService(t *testing.T, f *orderFixture) (*OrderService, *fakeMeli, repository.OrderRepository) {
	db := setupServiceTestDB(t)
	fake := newFakeMeli(t, f.routes())
	repo := repository.NewOrderRepository(db)
	return NewOrderService(repo, newStubTokens(), fake.Client(), nil), fake, repo
}

func TestOrderService_SyncOrders_NeverRefetchesExisting(t *testing.T) {
	f := &orderFixture{status: "paid", ids: []string{"1001", "1002", "1003"}}
	svc, fake, repo := newOrderTestService(t, f)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.MeliOrder{CompanyID: 1, OrderID: "1002", Status: "paid", CurrencyID: "BRL"}))

	res, err := svc.SyncOrders(ctx, 1, dto.OrderSyncOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Synced)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, 3, res.TotalFound)
	assert.Equal(t, 3, res.TotalProcessed)
	assert.Equal(t, 2, fake.Hits("GET /orders/{id}"), "已存在的订单不查询详情")

	res, err = svc.SyncOrders(ctx, 1, dto.OrderSyncOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Synced)
	assert.Equal(t, 3, res.Skipped)
	assert.Equal(t, 2, fake.Hits("GET /orders/{id}"))
}

func TestOrderService_SyncOrders_Paginates(t *testing.T) {
	ids := make([]string, 0, 120)
	for i := 0; i < 120; i++ {
		ids = append(ids, strconv.Itoa(5000+i))
	}
	f := &orderFixture{status: "paid", ids: ids}
	svc, fake, _ := newOrderTestService(t, f)
	ctx := context.Background()

	res, err := svc.SyncOrders(ctx, 1, dto.OrderSyncOptions{})
	require.NoError(t, err)
	assert.Equal(t, 120, res.TotalFound)
	assert.Equal(t, 120, res.TotalProcessed)
	assert.Equal(t, 120, res.Synced)
	assert.Empty(t, res.Errors)
	assert.Equal(t, []int{0, 50, 100}, f.offsets)
	assert.Equal(t, 3, fake.Hits("GET /orders/search"))

	stored, err := svc.ListStoredOrders(ctx, 1, &dto.StoredOrdersRequest{Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, int64(120), stored.Total)
	assert.Equal(t, 200, stored.Limit, "单页上限 200")
	assert.Len(t, stored.List, 120)
}

func TestOrderService_SyncOrders_RefreshExisting(t *testing.T) {
	f := &orderFixture{status: "paid", ids: []string{"1001", "1002"}}
	svc, fake, _ := newOrderTestService(t, f)
	ctx := context.Background()

	_, err := svc.SyncOrders(ctx, 1, dto.OrderSyncOptions{})
	require.NoError(t, err)

	f.mu.Lock()
	f.status = "cancelled"
	f.mu.Unlock()

	res, err := svc.SyncOrders(ctx, 1, dto.OrderSyncOptions{RefreshExisting: true})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Updated)
	assert.Equal(t, 2, fake.Hits("GET /orders/{id}"), "刷新只使用搜索结果")

	order, err := svc.GetStoredOrder(ctx, 1, "1001")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", order.Status)
	require.NotNil(t, order.BuyerNickname)
	assert.Equal(t, "COMPRADOR", *order.BuyerNickname, "刷新不影响其他字段")
}

func TestOrderService_SyncOrders_Errors(t *testing.T) {
	f := &orderFixture{failPage: true}
	svc, fake, _ := newOrderTestService(t, f)
	ctx := context.Background()

	_, err := svc.SyncOrders(ctx, 1, dto.OrderSyncOptions{DateFrom: "2026/03/01"})
	assert.True(t, errs.Is(err, errs.KindValidation))
	assert.Equal(t, 0, fake.Hits("GET /orders/search"), "日期无效时不请求上游")

	_, err = svc.SyncOrders(ctx, 1, dto.OrderSyncOptions{})
	assert.True(t, errs.Is(err, errs.KindUpstream), "第一页失败直接返回")
}

func TestOrderService_ListStoredOrders(t *testing.T) {
	f := &orderFixture{status: "paid", ids: []string{"1001", "1002", "1003"}}
	svc, _, _ := newOrderTestService(t, f)
	ctx := context.Background()

	_, err := svc.SyncOrders(ctx, 1, dto.OrderSyncOptions{})
	require.NoError(t, err)

	all, err := svc.ListStoredOrders(ctx, 1, &dto.StoredOrdersRequest{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), all.Total)
	assert.True(t, all.HasMore)
	require.Len(t, all.List, 2)
	assert.Equal(t, "1003", all.List[0].OrderID, "按创建时间倒序")

	ranged, err := svc.ListStoredOrders(ctx, 1, &dto.StoredOrdersRequest{DateFrom: "2026-03-01", DateTo: "2026-03-02", Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, int64(2), ranged.Total, "date_to 当天包含在内")
	assert.False(t, ranged.HasMore)

	_, err = svc.ListStoredOrders(ctx, 1, &dto.StoredOrdersRequest{DateFrom: "01-03-2026"})
	assert.True(t, errs.Is(err, errs.KindValidation))

	other, err := svc.ListStoredOrders(ctx, 2, &dto.StoredOrdersRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), other.Total)
}

func TestOrderService_GetStoredOrder_NotFound(t *testing.T) {
	svc, _, _ := newOrderTestService(t, &orderFixture{})

	_, err := svc.GetStoredOrder(context.Background(), 1, "999")
	assert.True(t, errs.Is(err, errs.KindNotFound))
}

func TestBuildOrder(t *testing.T) {
	f := &orderFixture{status: "paid", ids: []string{"1001"}}
	svc, _, _ := newOrderTestService(t, f)
	ctx := context.Background()

	_, err := svc.SyncOrders(ctx, 1, dto.OrderSyncOptions{})
	require.NoError(t, err)

	o, err := svc.GetStoredOrder(ctx, 1, "1001")
	require.NoError(t, err)
	assert.Equal(t, "55", o.BuyerID)
	require.NotNil(t, o.BuyerPhone)
	assert.Equal(t, "1199999", *o.BuyerPhone)
	assert.Equal(t, "123", o.SellerID)
	require.NotNil(t, o.ShippingID)
	assert.Equal(t, "4001", *o.ShippingID)
	require.NotNil(t, o.PaymentID)
	assert.Equal(t, "9", *o.PaymentID, "只取第一笔支付")
	require.NotNil(t, o.PaymentInstallments)
	assert.Equal(t, 3, *o.PaymentInstallments)
	assert.True(t, o.TotalAmount.Equal(decimal.RequireFromString("150.5")))
	assert.JSONEq(t, `["paid","delivered"]`, string(o.Tags))
	assert.Contains(t, string(o.Payments), `"refunded"`, "payments 原样保留")
	assert.Contains(t, string(o.OrderItems), `"MLB1"`)
	assert.Contains(t, string(o.RawData), `"order_items"`)
}
