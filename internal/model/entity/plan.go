package entity

import (
	"gorm.io/datatypes"
	"gorm.io/plugin/soft_delete"

	"tradevault/utils"
)

// Plan 交易计划文档，内容是自由格式的json
type Plan struct {
	Id        int64                 `gorm:"column:id;primary_key;" json:"plan_id"`
	UserId    int64                 `gorm:"column:user_id;index" json:"user_id"`
	Title     string                `gorm:"column:title" json:"title"`
	Content   datatypes.JSON        `gorm:"column:content" json:"content"`
	CreatedAt utils.JsonTime        `gorm:"column:created_at" json:"created_at"`
	UpdatedAt utils.JsonTime        `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt utils.JsonTime        `gorm:"column:deleted_at" json:"deleted_at"`
	IsDel     soft_delete.DeletedAt `gorm:"softDelete:flag,DeletedAtField:DeletedAt"`
}

func (Plan) TableName() string {
	return "plan"
}
