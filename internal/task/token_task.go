package task

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"meli_dev_v1_202610/internal/model"
)

// CredentialRefresher token 刷新所需的服务能力
type CredentialRefresher interface {
	ListExpiring(ctx context.Context, within time.Duration) ([]model.MeliIntegration, error)
	RefreshCredential(ctx context.Context, integ *model.MeliIntegration) (*model.MeliIntegration, error)
}

// TokenTask Mercado Livre token 保活
// 定期刷新 1 小时内过期的凭证，单个失败不影响其他企业
type TokenTask struct {
	refresher CredentialRefresher
	cron      *cron.Cron
	logger    *zap.Logger

	spec   string
	window time.Duration

	// 控制并发，避免瞬间打满 Mercado Livre 的 token 接口
	concurrencyLimit int
	sleepTime        time.Duration
}

func NewTokenTask(refresher CredentialRefresher, logger *zap.Logger) *TokenTask {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TokenTask{
		refresher:        refresher,
		cron:             cron.New(cron.WithSeconds()),
		logger:           logger,
		spec:             "0 0/30 * * * *",
		window:           time.Hour,
		concurrencyLimit: 5,
		sleepTime:        50 * time.Millisecond,
	}
}

// SetSchedule 设置 cron 表达式（秒级）
func (t *TokenTask) SetSchedule(spec string) {
	if spec != "" {
		t.spec = spec
	}
}

// SetConcurrency 设置并发参数
func (t *TokenTask) SetConcurrency(limit int, sleep time.Duration) {
	if limit > 0 {
		t.concurrencyLimit = limit
	}
	t.sleepTime = sleep
}

// Start 启动定时任务，启动时先执行一次
func (t *TokenTask) Start() error {
	_, err := t.cron.AddFunc(t.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		t.RunOnce(ctx)
	})
	if err != nil {
		return fmt.Errorf("无法启动 Token 定时任务: %w", err)
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		t.logger.Info("[Cron] 服务启动，正在执行首次 Token 检查...")
		t.RunOnce(ctx)
	}()

	t.cron.Start()
	t.logger.Info("[Cron] Token 保活任务已启动", zap.String("spec", t.spec))
	return nil
}

// Stop 停止任务，等待进行中的任务结束
func (t *TokenTask) Stop() {
	<-t.cron.Stop().Done()
	t.logger.Info("[Cron] Token 保活任务已停止")
}

// RunOnce 执行一轮刷新，返回成功与失败数量
func (t *TokenTask) RunOnce(ctx context.Context) (refreshed, failed int) {
	integs, err := t.refresher.ListExpiring(ctx, t.window)
	if err != nil {
		t.logger.Error("[Cron] 查询即将过期的凭证失败", zap.Error(err))
		return 0, 0
	}
	if len(integs) == 0 {
		t.logger.Debug("[Cron] 没有需要刷新的 token")
		return 0, 0
	}

	sem := make(chan struct{}, t.concurrencyLimit)
	var wg sync.WaitGroup
	var ok, bad int64

	t.logger.Info("[Cron] 开始刷新 token",
		zap.Int("count", len(integs)),
		zap.Int("concurrency", t.concurrencyLimit))

	for i := range integs {
		select {
		case <-ctx.Done():
			t.logger.Warn("[Cron] 任务超时停止")
			wg.Wait()
			return int(atomic.LoadInt64(&ok)), int(atomic.LoadInt64(&bad))
		default:
		}

		sem <- struct{}{}
		wg.Add(1)
		if t.sleepTime > 0 {
			time.Sleep(t.sleepTime)
		}

		go func(integ model.MeliIntegration) {
			defer wg.Done()
			defer func() { <-sem }()

			if _, err := t.refresher.RefreshCredential(ctx, &integ); err != nil {
				atomic.AddInt64(&bad, 1)
				t.logger.Warn("[Cron] token 刷新失败",
					zap.Int64("company_id", integ.CompanyID),
					zap.String("meli_user_id", integ.MeliUserID),
					zap.Error(err))
				return
			}
			atomic.AddInt64(&ok, 1)
		}(integs[i])
	}

	wg.Wait()
	refreshed, failed = int(ok), int(bad)
	t.logger.Info("[Cron] 本轮 token 刷新完成",
		zap.Int("refreshed", refreshed),
		zap.Int("failed", failed))
	return refreshed, failed
}
