package query

import (
	"context"
	"time"

	"gorm.io/gorm"

	"tradevault/internal/dao"
	"tradevault/internal/model/entity"
)

var _ dao.BrokerDao = (*brokerDao)(nil)

type brokerDao struct {
	ds *gorm.DB
}

func NewBrokerDao(ds *gorm.DB) *brokerDao {
	return &brokerDao{
		ds: ds,
	}
}

func (b *brokerDao) BrokerCreate(ctx context.Context, account *entity.BrokerAccount) error {
	return b.ds.WithContext(ctx).Create(account).Error
}

func (b *brokerDao) BrokerGetById(ctx context.Context, userId, accountId int64) (entity.BrokerAccount, error) {
	var account entity.BrokerAccount
	err := b.ds.WithContext(ctx).Where("id = ? AND user_id = ?", accountId, userId).First(&account).Error
	return account, err
}

func (b *brokerDao) BrokerList(ctx context.Context, userId int64) ([]entity.BrokerAccount, error) {
	var accounts []entity.BrokerAccount
	err := b.ds.WithContext(ctx).Model(&entity.BrokerAccount{}).Where("user_id = ?", userId).Order("created_at desc").Find(&accounts).Error
	return accounts, err
}

func (b *brokerDao) BrokerGetByNumber(ctx context.Context, userId int64, accountNumber, brokerServer string) (entity.BrokerAccount, error) {
	var account entity.BrokerAccount
	err := b.ds.WithContext(ctx).
		Where("user_id = ? AND account_number = ? AND broker_server = ?", userId, accountNumber, brokerServer).
		First(&account).Error
	return account, err
}

func (b *brokerDao) BrokerUpdateStatus(ctx context.Context, accountId int64, status, providerAccountId string) error {
	updates := map[string]interface{}{"status": status}
	if providerAccountId != "" {
		updates["provider_account_id"] = providerAccountId
	}
	return b.ds.WithContext(ctx).Model(&entity.BrokerAccount{}).Where("id = ?", accountId).Updates(updates).Error
}

func (b *brokerDao) BrokerTouchSync(ctx context.Context, accountId int64) error {
	return b.ds.WithContext(ctx).Model(&entity.BrokerAccount{}).Where("id = ?", accountId).Update("last_synced_at", time.Now()).Error
}

func (b *brokerDao) BrokerDelete(ctx context.Context, userId, accountId int64) error {
	return b.ds.WithContext(ctx).Where("user_id = ?", userId).Delete(&entity.BrokerAccount{Id: accountId}).Error
}
