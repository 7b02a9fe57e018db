package task

import (
	"context"

	"go.uber.org/zap"

	"meli_dev_v1_202610/internal/api/dto"
)

// ==================== TaskManager 后台任务管理器 ====================

// TaskManager 统一管理 token 保活与订单同步任务
type TaskManager struct {
	tokenTask *TokenTask
	orderTask *OrderSyncTask
	logger    *zap.Logger
}

// TaskManagerDeps 任务管理器依赖
type TaskManagerDeps struct {
	Refresher CredentialRefresher
	Lister    ActiveIntegrationLister
	Orders    OrderSyncer
	Logger    *zap.Logger
}

// TaskManagerConfig 任务管理器配置
type TaskManagerConfig struct {
	TokenRefreshEnabled bool
	TokenRefreshCron    string

	OrderSyncEnabled bool
	OrderSyncCron    string

	Concurrency int
}

// DefaultConfig 默认配置
func DefaultConfig() *TaskManagerConfig {
	return &TaskManagerConfig{
		TokenRefreshEnabled: true,
		TokenRefreshCron:    "0 0/30 * * * *",
		OrderSyncEnabled:    false,
		OrderSyncCron:       "0 0 */2 * * *",
		Concurrency:         5,
	}
}

// NewTaskManager 创建任务管理器
func NewTaskManager(deps *TaskManagerDeps, cfg *TaskManagerConfig) *TaskManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	tm := &TaskManager{logger: logger}

	if cfg.TokenRefreshEnabled && deps.Refresher != nil {
		tm.tokenTask = NewTokenTask(deps.Refresher, logger)
		tm.tokenTask.SetSchedule(cfg.TokenRefreshCron)
		tm.tokenTask.SetConcurrency(cfg.Concurrency, tm.tokenTask.sleepTime)
	}

	if cfg.OrderSyncEnabled && deps.Lister != nil && deps.Orders != nil {
		tm.orderTask = NewOrderSyncTask(deps.Lister, deps.Orders, logger)
		tm.orderTask.SetSchedule(cfg.OrderSyncCron)
		tm.orderTask.SetConcurrency(cfg.Concurrency, tm.orderTask.sleepTime)
	}

	return tm
}

// ==================== 生命周期管理 ====================

// Start 启动所有已启用的任务
func (tm *TaskManager) Start() error {
	tm.logger.Info("[TaskManager] 正在启动后台任务...")

	if tm.tokenTask != nil {
		if err := tm.tokenTask.Start(); err != nil {
			return err
		}
	}
	if tm.orderTask != nil {
		if err := tm.orderTask.Start(); err != nil {
			return err
		}
	}

	tm.logger.Info("[TaskManager] 后台任务已启动", zap.Any("status", tm.Status()))
	return nil
}

// Stop 停止所有任务
func (tm *TaskManager) Stop() {
	if tm.tokenTask != nil {
		tm.tokenTask.Stop()
	}
	if tm.orderTask != nil {
		tm.orderTask.Stop()
	}
	tm.logger.Info("[TaskManager] 后台任务已全部停止")
}

// ==================== 手动触发接口 ====================

// TriggerTokenRefresh 立即执行一轮 token 刷新
func (tm *TaskManager) TriggerTokenRefresh(ctx context.Context) (refreshed, failed int, err error) {
	if tm.tokenTask == nil {
		return 0, 0, ErrTaskDisabled
	}
	refreshed, failed = tm.tokenTask.RunOnce(ctx)
	return refreshed, failed, nil
}

// TriggerOrderSync 立即同步单个企业订单
func (tm *TaskManager) TriggerOrderSync(ctx context.Context, companyID int64, opts dto.OrderSyncOptions) (*dto.OrderSyncResult, error) {
	if tm.orderTask == nil {
		return nil, ErrTaskDisabled
	}
	return tm.orderTask.SyncCompanyNow(ctx, companyID, opts)
}

// ==================== 状态查询 ====================

// Status 获取任务状态
func (tm *TaskManager) Status() map[string]bool {
	return map[string]bool{
		"token_refresh": tm.tokenTask != nil,
		"order_sync":    tm.orderTask != nil,
	}
}

// ==================== 错误定义 ====================

type TaskError string

func (e TaskError) Error() string { return string(e) }

const (
	ErrTaskDisabled TaskError = "task is disabled"
)
