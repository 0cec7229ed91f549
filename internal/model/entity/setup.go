package entity

import (
	"gorm.io/plugin/soft_delete"

	"tradevault/utils"
)

// Setup 用户自定义的策略标签，关联若干日志条目
type Setup struct {
	Id          int64                 `gorm:"column:id;primary_key;" json:"setup_id"`
	UserId      int64                 `gorm:"column:user_id;index" json:"user_id"`
	Name        string                `gorm:"column:name" json:"name"`
	Description string                `gorm:"column:description" json:"description"`
	TotalPnl    float64               `gorm:"column:total_pnl" json:"total_pnl"` // 累计盈亏计数器，创建时初始化为0
	CreatedAt   utils.JsonTime        `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   utils.JsonTime        `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt   utils.JsonTime        `gorm:"column:deleted_at" json:"deleted_at"`
	IsDel       soft_delete.DeletedAt `gorm:"softDelete:flag,DeletedAtField:DeletedAt"`
}

func (Setup) TableName() string {
	return "setup"
}
