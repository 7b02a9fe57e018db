package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"meli_dev_v1_202610/internal/model"
)

// ==================== CompanyRepository 企业仓库 ====================

// CompanyRepository 企业仓库接口
type CompanyRepository interface {
	// CreateWithOwner 同一事务内创建企业及其首个用户
	CreateWithOwner(ctx context.Context, company *model.Company, owner *model.User) error
	GetByID(ctx context.Context, id int64) (*model.Company, error)
	GetByCNPJ(ctx context.Context, cnpj string) (*model.Company, error)
	// ExistsByCNPJ excludeID > 0 时排除该企业自身
	ExistsByCNPJ(ctx context.Context, cnpj string, excludeID int64) (bool, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error
}

// ==================== 实现 ====================

type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository 创建企业仓库
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) CreateWithOwner(ctx context.Context, company *model.Company, owner *model.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(company).Error; err != nil {
			return err
		}
		owner.CompanyID = company.ID
		return tx.Create(owner).Error
	})
}

func (r *companyRepository) GetByID(ctx context.Context, id int64) (*model.Company, error) {
	var company model.Company
	err := r.db.WithContext(ctx).First(&company, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &company, err
}

func (r *companyRepository) GetByCNPJ(ctx context.Context, cnpj string) (*model.Company, error) {
	var company model.Company
	err := r.db.WithContext(ctx).Where("cnpj = ?", cnpj).First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &company, err
}

func (r *companyRepository) ExistsByCNPJ(ctx context.Context, cnpj string, excludeID int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&model.Company{}).Where("cnpj = ?", cnpj)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *companyRepository) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Company{}).Where("id = ?", id).Updates(fields).Error
}
