package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"meli_dev_v1_202610/internal/model"
)

// ==================== 接口定义 ====================

// AnnouncementRepository 商品镜像仓储接口
type AnnouncementRepository interface {
	Create(ctx context.Context, a *model.Announcement) error
	GetByItemID(ctx context.Context, companyID int64, itemID string) (*model.Announcement, error)
	// UpdateSyncFields 只覆盖同步字段，运营字段保持不变
	UpdateSyncFields(ctx context.Context, a *model.Announcement) error
	// UpdateFields 运营手工字段
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error
	List(ctx context.Context, filter AnnouncementFilter) ([]model.Announcement, int64, error)
}

// ==================== 过滤条件 ====================

// AnnouncementFilter 商品过滤条件
type AnnouncementFilter struct {
	CompanyID int64
	Status    string
	Limit     int
	Offset    int
}

// ==================== 仓储实现 ====================

type announcementRepo struct {
	db *gorm.DB
}

// NewAnnouncementRepository 创建商品镜像仓储
func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepo{db: db}
}

func (r *announcementRepo) Create(ctx context.Context, a *model.Announcement) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *announcementRepo) GetByItemID(ctx context.Context, companyID int64, itemID string) (*model.Announcement, error) {
	var a model.Announcement
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND ml_item_id = ?", companyID, itemID).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &a, err
}

func (r *announcementRepo) UpdateSyncFields(ctx context.Context, a *model.Announcement) error {
	return r.db.WithContext(ctx).
		Model(a).
		Select(model.AnnouncementSyncColumns).
		Updates(a).Error
}

func (r *announcementRepo) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.Announcement{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *announcementRepo) List(ctx context.Context, filter AnnouncementFilter) ([]model.Announcement, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Announcement{}).Where("company_id = ?", filter.CompanyID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	var list []model.Announcement
	err := query.
		Order("updated_at DESC, id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&list).Error
	return list, total, err
}
