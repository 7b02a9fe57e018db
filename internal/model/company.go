package model

// Company 租户（企业）
type Company struct {
	BaseModel
	Name string `gorm:"size:255;not null" json:"name"`
	CNPJ string `gorm:"column:cnpj;size:18;uniqueIndex;not null" json:"cnpj"`

	Users []User `gorm:"foreignKey:CompanyID" json:"-"`
}

func (Company) TableName() string { return "companies" }

// User 系统用户，隶属于一个企业
type User struct {
	BaseModel
	Name           string `gorm:"size:255;not null" json:"name"`
	Email          string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	HashedPassword string `gorm:"size:255;not null" json:"-"`
	IsActive       bool   `gorm:"default:true" json:"is_active"`

	CompanyID int64    `gorm:"index;not null" json:"company_id"`
	Company   *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

func (User) TableName() string { return "users" }
