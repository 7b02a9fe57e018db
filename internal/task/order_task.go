package task

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"meli_dev_v1_202610/internal/api/dto"
	"meli_dev_v1_202610/internal/model"
)

// ==================== OrderSyncTask 订单同步任务 ====================

// ActiveIntegrationLister 列出已连接的企业
type ActiveIntegrationLister interface {
	ListActive(ctx context.Context) ([]model.MeliIntegration, error)
}

// OrderSyncer 单企业订单同步
type OrderSyncer interface {
	SyncOrders(ctx context.Context, companyID int64, opts dto.OrderSyncOptions) (*dto.OrderSyncResult, error)
}

// OrderSyncSummary 一轮同步汇总
type OrderSyncSummary struct {
	Companies int
	Synced    int
	Skipped   int
	Failed    int
}

// OrderSyncTask 订单同步定时任务，默认关闭
type OrderSyncTask struct {
	lister ActiveIntegrationLister
	syncer OrderSyncer
	cron   *cron.Cron
	logger *zap.Logger
	spec   string

	// 并发控制
	concurrencyLimit int
	sleepTime        time.Duration
}

// NewOrderSyncTask 创建订单同步任务
func NewOrderSyncTask(lister ActiveIntegrationLister, syncer OrderSyncer, logger *zap.Logger) *OrderSyncTask {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderSyncTask{
		lister:           lister,
		syncer:           syncer,
		cron:             cron.New(cron.WithSeconds()),
		logger:           logger,
		spec:             "0 0 */2 * * *",
		concurrencyLimit: 5,
		sleepTime:        200 * time.Millisecond,
	}
}

// SetSchedule 设置 cron 表达式（秒级）
func (t *OrderSyncTask) SetSchedule(spec string) {
	if spec != "" {
		t.spec = spec
	}
}

// SetConcurrency 设置并发参数
func (t *OrderSyncTask) SetConcurrency(limit int, sleep time.Duration) {
	if limit > 0 {
		t.concurrencyLimit = limit
	}
	t.sleepTime = sleep
}

// Start 启动定时任务
func (t *OrderSyncTask) Start() error {
	_, err := t.cron.AddFunc(t.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()
		t.SyncAll(ctx)
	})
	if err != nil {
		return fmt.Errorf("订单同步定时任务启动失败: %w", err)
	}

	t.cron.Start()
	t.logger.Info("[Cron] 订单同步任务已启动", zap.String("spec", t.spec))
	return nil
}

// Stop 停止任务
func (t *OrderSyncTask) Stop() {
	<-t.cron.Stop().Done()
	t.logger.Info("[Cron] 订单同步任务已停止")
}

// SyncAll 同步所有已连接企业的订单
// 已存在的订单不重复拉取详情，由 OrderService 保证
func (t *OrderSyncTask) SyncAll(ctx context.Context) OrderSyncSummary {
	var summary OrderSyncSummary

	integs, err := t.lister.ListActive(ctx)
	if err != nil {
		t.logger.Error("[Cron] 获取已连接企业失败", zap.Error(err))
		return summary
	}
	if len(integs) == 0 {
		t.logger.Info("[Cron] 无已连接企业需要同步订单")
		return summary
	}
	summary.Companies = len(integs)

	sem := make(chan struct{}, t.concurrencyLimit)
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	t.logger.Info("[Cron] 开始同步订单", zap.Int("companies", len(integs)))

	for i := range integs {
		select {
		case <-ctx.Done():
			t.logger.Warn("[Cron] 订单同步超时停止")
			wg.Wait()
			return summary
		default:
		}

		sem <- struct{}{}
		wg.Add(1)
		if t.sleepTime > 0 {
			time.Sleep(t.sleepTime)
		}

		go func(companyID int64) {
			defer wg.Done()
			defer func() { <-sem }()

			res, err := t.syncer.SyncOrders(ctx, companyID, dto.OrderSyncOptions{})

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				summary.Failed++
				t.logger.Warn("[Cron] 企业订单同步失败", zap.Int64("company_id", companyID), zap.Error(err))
				return
			}
			summary.Synced += res.Synced
			summary.Skipped += res.Skipped
			if len(res.Errors) > 0 {
				t.logger.Warn("[Cron] 部分订单同步失败",
					zap.Int64("company_id", companyID),
					zap.Strings("errors", res.Errors))
			}
		}(integs[i].CompanyID)
	}

	wg.Wait()
	t.logger.Info("[Cron] 订单同步完成",
		zap.Int("companies", summary.Companies),
		zap.Int("synced", summary.Synced),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed))
	return summary
}

// SyncCompanyNow 立即同步单个企业
func (t *OrderSyncTask) SyncCompanyNow(ctx context.Context, companyID int64, opts dto.OrderSyncOptions) (*dto.OrderSyncResult, error) {
	return t.syncer.SyncOrders(ctx, companyID, opts)
}
