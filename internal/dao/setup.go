package dao

import (
	"context"

	"tradevault/internal/model/entity"
)

type SetupDao interface {
	// 创建setup
	SetupCreate(ctx context.Context, s *entity.Setup) error
	// 根据id获取setup，校验归属
	SetupGetById(ctx context.Context, userId, setupId int64) (entity.Setup, error)
	// 该用户全部setup
	SetupList(ctx context.Context, userId int64) ([]entity.Setup, error)
	// 部分字段更新
	SetupUpdate(ctx context.Context, userId, setupId int64, updates map[string]interface{}) error
	// 累计盈亏计数器增量
	SetupAddPnl(ctx context.Context, setupId int64, delta float64) error
	// 删除setup
	SetupDelete(ctx context.Context, userId, setupId int64) error
}
