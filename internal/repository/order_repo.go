package repository

import (
	"context"
	"errors"
	"time"

	"meli_dev_v1_202610/internal/model"

	"gorm.io/gorm"
)

// ==================== 过滤条件 ====================

// OrderFilter 订单过滤条件
type OrderFilter struct {
	CompanyID int64
	Status    string
	StartDate *time.Time // date_created >= StartDate
	EndDate   *time.Time // date_created < EndDate
	Limit     int
	Offset    int
}

// ==================== OrderRepository 订单仓库 ====================

// OrderRepository 订单仓库接口
// (company_id, order_id) 的唯一性由同步逻辑保证
type OrderRepository interface {
	Create(ctx context.Context, order *model.MeliOrder) error
	GetByOrderID(ctx context.Context, companyID int64, orderID string) (*model.MeliOrder, error)
	ExistsByOrderID(ctx context.Context, companyID int64, orderID string) (bool, error)
	UpdateByOrderID(ctx context.Context, companyID int64, orderID string, fields map[string]interface{}) error
	List(ctx context.Context, filter OrderFilter) ([]model.MeliOrder, int64, error)
}

// ==================== 实现 ====================

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *model.MeliOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetByOrderID(ctx context.Context, companyID int64, orderID string) (*model.MeliOrder, error) {
	var order model.MeliOrder
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND order_id = ?", companyID, orderID).
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) ExistsByOrderID(ctx context.Context, companyID int64, orderID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.MeliOrder{}).
		Where("company_id = ? AND order_id = ?", companyID, orderID).
		Count(&count).Error
	return count > 0, err
}

func (r *orderRepository) UpdateByOrderID(ctx context.Context, companyID int64, orderID string, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.MeliOrder{}).
		Where("company_id = ? AND order_id = ?", companyID, orderID).
		Updates(fields).Error
}

func (r *orderRepository) List(ctx context.Context, filter OrderFilter) ([]model.MeliOrder, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.MeliOrder{}).Where("company_id = ?", filter.CompanyID)

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.StartDate != nil {
		query = query.Where("date_created >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date_created < ?", *filter.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit <= 0 {
		filter.Limit = 50
	}

	var orders []model.MeliOrder
	err := query.
		Order("date_created DESC, id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&orders).Error
	return orders, total, err
}
