package dao

import (
	"context"

	"tradevault/internal/model/entity"
)

type BrokerDao interface {
	// 绑定券商账户
	BrokerCreate(ctx context.Context, b *entity.BrokerAccount) error
	// 根据id获取账户，校验归属
	BrokerGetById(ctx context.Context, userId, accountId int64) (entity.BrokerAccount, error)
	// 该用户绑定的全部账户
	BrokerList(ctx context.Context, userId int64) ([]entity.BrokerAccount, error)
	// 按账号+服务器查已绑定的记录，没有则返回gorm.ErrRecordNotFound
	BrokerGetByNumber(ctx context.Context, userId int64, accountNumber, brokerServer string) (entity.BrokerAccount, error)
	// 更新部署状态与provider侧账户id
	BrokerUpdateStatus(ctx context.Context, accountId int64, status, providerAccountId string) error
	// 刷新最后同步时间
	BrokerTouchSync(ctx context.Context, accountId int64) error
	// 解绑账户
	BrokerDelete(ctx context.Context, userId, accountId int64) error
}
