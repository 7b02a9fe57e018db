package model

import (
	"time"
)

// BaseModel 公共字段
// 不带 DeletedAt：竞品对账需要物理删除，授权凭证用 is_active 做软删除
type BaseModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
