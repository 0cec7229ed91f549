package entity

import (
	"gorm.io/plugin/soft_delete"

	"tradevault/utils"
)

// BrokerAccount 关联的MT5账户，一个用户可以绑定多个
type BrokerAccount struct {
	Id                int64                 `gorm:"column:id;primary_key;" json:"id"`
	UserId            int64                 `gorm:"column:user_id;index" json:"user_id"`
	AccountNumber     string                `gorm:"column:account_number" json:"account_number"`
	BrokerServer      string                `gorm:"column:broker_server" json:"broker_server"`
	InvestorPassword  string                `gorm:"column:investor_password" json:"-"` // 只读密码，不往外吐
	ProviderAccountId string                `gorm:"column:provider_account_id" json:"provider_account_id"`
	Status            string                `gorm:"column:status" json:"status"` // CREATED / DEPLOYED / FAILED
	LastSyncedAt      utils.JsonTime        `gorm:"column:last_synced_at" json:"last_synced_at"`
	CreatedAt         utils.JsonTime        `gorm:"column:created_at" json:"created_at"`
	UpdatedAt         utils.JsonTime        `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt         utils.JsonTime        `gorm:"column:deleted_at" json:"deleted_at"`
	IsDel             soft_delete.DeletedAt `gorm:"softDelete:flag,DeletedAtField:DeletedAt"`
}

func (BrokerAccount) TableName() string {
	return "broker_account"
}
