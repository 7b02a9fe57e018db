package task

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meli_dev_v1_202610/internal/api/dto"
	"meli_dev_v1_202610/internal/model"
)

// ==================== 测试替身 ====================

type fakeRefresher struct {
	integs  []model.MeliIntegration
	listErr error
	failFor map[int64]bool

	mu      sync.Mutex
	calls   []int64
	running int32
	peak    int32
	window  time.Duration
}

func (f *fakeRefresher) ListExpiring(_ context.Context, within time.Duration) ([]model.MeliIntegration, error) {
	f.window = within
	return f.integs, f.listErr
}

func (f *fakeRefresher) RefreshCredential(_ context.Context, integ *model.MeliIntegration) (*model.MeliIntegration, error) {
	n := atomic.AddInt32(&f.running, 1)
	defer atomic.AddInt32(&f.running, -1)
	for {
		p := atomic.LoadInt32(&f.peak)
		if n <= p || atomic.CompareAndSwapInt32(&f.peak, p, n) {
			break
		}
	}
	time.Sleep(10 * time.Millisecond)

	f.mu.Lock()
	f.calls = append(f.calls, integ.CompanyID)
	f.mu.Unlock()

	if f.failFor[integ.CompanyID] {
		return nil, errors.New("invalid_grant")
	}
	return integ, nil
}

type fakeOrders struct {
	integs  []model.MeliIntegration
	failFor map[int64]bool

	mu    sync.Mutex
	calls map[int64]dto.OrderSyncOptions
}

func (f *fakeOrders) ListActive(context.Context) ([]model.MeliIntegration, error) {
	return f.integs, nil
}

func (f *fakeOrders) SyncOrders(_ context.Context, companyID int64, opts dto.OrderSyncOptions) (*dto.OrderSyncResult, error) {
	f.mu.Lock()
	if f.calls == nil {
		f.calls = map[int64]dto.OrderSyncOptions{}
	}
	f.calls[companyID] = opts
	f.mu.Unlock()

	if f.failFor[companyID] {
		return nil, errors.New("upstream down")
	}
	return &dto.OrderSyncResult{Synced: 2, Skipped: 1}, nil
}

func integrations(ids ...int64) []model.MeliIntegration {
	list := make([]model.MeliIntegration, 0, len(ids))
	for _, id := range ids {
		list = append(list, model.MeliIntegration{CompanyID: id, MeliUserID: "u", IsActive: true})
	}
	return list
}

// ==================== TokenTask ====================

func TestTokenTask_RunOnce(t *testing.T) {
	r := &fakeRefresher{
		integs:  integrations(1, 2, 3, 4, 5, 6),
		failFor: map[int64]bool{3: true},
	}
	tt := NewTokenTask(r, nil)
	tt.SetConcurrency(2, 0)

	refreshed, failed := tt.RunOnce(context.Background())

	assert.Equal(t, 5, refreshed)
	assert.Equal(t, 1, failed)
	assert.Len(t, r.calls, 6, "单个失败不影响其他企业")
	assert.LessOrEqual(t, atomic.LoadInt32(&r.peak), int32(2))
	assert.Equal(t, time.Hour, r.window)
}

func TestTokenTask_ListError(t *testing.T) {
	r := &fakeRefresher{listErr: errors.New("db down")}
	tt := NewTokenTask(r, nil)

	refreshed, failed := tt.RunOnce(context.Background())
	assert.Zero(t, refreshed)
	assert.Zero(t, failed)
	assert.Empty(t, r.calls)
}

func TestTokenTask_CanceledContext(t *testing.T) {
	r := &fakeRefresher{integs: integrations(1, 2, 3)}
	tt := NewTokenTask(r, nil)
	tt.SetConcurrency(1, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tt.RunOnce(ctx)
	assert.Empty(t, r.calls)
}

func TestTokenTask_InvalidSchedule(t *testing.T) {
	tt := NewTokenTask(&fakeRefresher{}, nil)
	tt.SetSchedule("not a cron")
	assert.Error(t, tt.Start())
}

// ==================== OrderSyncTask ====================

func TestOrderSyncTask_SyncAll(t *testing.T) {
	f := &fakeOrders{
		integs:  integrations(10, 20, 30),
		failFor: map[int64]bool{20: true},
	}
	ot := NewOrderSyncTask(f, f, nil)
	ot.SetConcurrency(2, 0)

	summary := ot.SyncAll(context.Background())

	assert.Equal(t, 3, summary.Companies)
	assert.Equal(t, 4, summary.Synced)
	assert.Equal(t, 2, summary.Skipped)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, f.calls, 3)
	// 定时任务不刷新已存在订单
	assert.False(t, f.calls[10].RefreshExisting)
}

func TestOrderSyncTask_NoCompanies(t *testing.T) {
	f := &fakeOrders{}
	summary := NewOrderSyncTask(f, f, nil).SyncAll(context.Background())
	assert.Equal(t, OrderSyncSummary{}, summary)
}

// ==================== TaskManager ====================

func TestTaskManager_Config(t *testing.T) {
	f := &fakeOrders{integs: integrations(1)}
	r := &fakeRefresher{}

	tm := NewTaskManager(&TaskManagerDeps{Refresher: r, Lister: f, Orders: f}, nil)
	assert.Equal(t, map[string]bool{"token_refresh": true, "order_sync": false}, tm.Status())

	_, err := tm.TriggerOrderSync(context.Background(), 1, dto.OrderSyncOptions{})
	assert.ErrorIs(t, err, ErrTaskDisabled)

	cfg := DefaultConfig()
	cfg.TokenRefreshEnabled = false
	cfg.OrderSyncEnabled = true
	tm = NewTaskManager(&TaskManagerDeps{Refresher: r, Lister: f, Orders: f}, cfg)

	_, _, err = tm.TriggerTokenRefresh(context.Background())
	assert.ErrorIs(t, err, ErrTaskDisabled)

	res, err := tm.TriggerOrderSync(context.Background(), 1, dto.OrderSyncOptions{RefreshExisting: true})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Synced)
	assert.True(t, f.calls[1].RefreshExisting)
}

func TestTaskManager_TriggerTokenRefresh(t *testing.T) {
	r := &fakeRefresher{integs: integrations(1, 2)}
	tm := NewTaskManager(&TaskManagerDeps{Refresher: r}, nil)

	refreshed, failed, err := tm.TriggerTokenRefresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, refreshed)
	assert.Zero(t, failed)
}
