package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"meli_dev_v1_202610/internal/model"
)

// ==================== IntegrationRepository 授权凭证仓库 ====================

// IntegrationRepository Mercado Livre 授权凭证仓库
// company_id 唯一，因此每个企业至多一条凭证
type IntegrationRepository interface {
	// GetByCompany 不区分状态
	GetByCompany(ctx context.Context, companyID int64) (*model.MeliIntegration, error)
	GetActiveByCompany(ctx context.Context, companyID int64) (*model.MeliIntegration, error)
	// Save 按 company_id 插入或覆盖，返回落库后的记录
	Save(ctx context.Context, integ *model.MeliIntegration) (*model.MeliIntegration, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error
	Deactivate(ctx context.Context, companyID int64) error

	// 定时任务
	FindExpiring(ctx context.Context, before time.Time) ([]model.MeliIntegration, error)
	ListActive(ctx context.Context) ([]model.MeliIntegration, error)
}

// integrationUpsertColumns 重新授权时覆盖的列
var integrationUpsertColumns = []string{
	"access_token", "refresh_token", "token_type", "scope", "user_id",
	"expires_in", "expires_at", "is_active", "updated_by", "updated_at",
}

// ==================== 实现 ====================

type integrationRepository struct {
	db *gorm.DB
}

// NewIntegrationRepository 创建授权凭证仓库
func NewIntegrationRepository(db *gorm.DB) IntegrationRepository {
	return &integrationRepository{db: db}
}

func (r *integrationRepository) GetByCompany(ctx context.Context, companyID int64) (*model.MeliIntegration, error) {
	var integ model.MeliIntegration
	err := r.db.WithContext(ctx).Where("company_id = ?", companyID).First(&integ).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &integ, err
}

func (r *integrationRepository) GetActiveByCompany(ctx context.Context, companyID int64) (*model.MeliIntegration, error) {
	var integ model.MeliIntegration
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND is_active = ?", companyID, true).
		First(&integ).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &integ, err
}

func (r *integrationRepository) Save(ctx context.Context, integ *model.MeliIntegration) (*model.MeliIntegration, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "company_id"}},
			DoUpdates: clause.AssignmentColumns(integrationUpsertColumns),
		}).
		Create(integ).Error
	if err != nil {
		return nil, err
	}
	// 冲突更新时主键不一定回填，按企业重新读取
	return r.GetByCompany(ctx, integ.CompanyID)
}

func (r *integrationRepository) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.MeliIntegration{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *integrationRepository) Deactivate(ctx context.Context, companyID int64) error {
	return r.db.WithContext(ctx).
		Model(&model.MeliIntegration{}).
		Where("company_id = ?", companyID).
		Update("is_active", false).Error
}

// FindExpiring 有效、可刷新且在 before 之前过期的凭证
func (r *integrationRepository) FindExpiring(ctx context.Context, before time.Time) ([]model.MeliIntegration, error) {
	var list []model.MeliIntegration
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("(refresh_token IS NOT NULL AND refresh_token <> '')").
		Where("(expires_at IS NULL OR expires_at < ?)", before).
		Order("expires_at ASC").
		Find(&list).Error
	return list, err
}

func (r *integrationRepository) ListActive(ctx context.Context) ([]model.MeliIntegration, error) {
	var list []model.MeliIntegration
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("company_id ASC").
		Find(&list).Error
	return list, err
}
