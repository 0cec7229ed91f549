package entity

import (
	"gorm.io/plugin/soft_delete"

	"tradevault/utils"
)

type User struct {
	Id           int64                 `gorm:"column:id;primary_key;" json:"id"`
	Name         string                `gorm:"column:name" json:"name"`
	Email        string                `gorm:"column:email;not null;unique" json:"email"` // unique 邮箱唯一且不能为空
	Password     string                `gorm:"column:password" json:"password"`
	Subscription string                `gorm:"column:subscription;default:free" json:"subscription"` // 订阅等级 free/pro
	PhotoUrl     string                `gorm:"column:photo_url" json:"photo_url"`
	RegisteredIp string                `gorm:"column:registered_ip" json:"registered_ip"`
	IsActive     bool                  `gorm:"column:is_active" json:"is_active"` // 邮箱是否已验证
	LastLoginAt  utils.JsonTime        `gorm:"column:last_login_at" json:"last_login_at"`
	CreatedAt    utils.JsonTime        `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    utils.JsonTime        `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt    utils.JsonTime        `gorm:"column:deleted_at" json:"deleted_at"`
	IsDel        soft_delete.DeletedAt `gorm:"softDelete:flag,DeletedAtField:DeletedAt"`
}

func (User) TableName() string {
	return "user"
}
