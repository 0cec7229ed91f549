package dao

import (
	"context"

	"tradevault/internal/model/entity"
)

type PlanDao interface {
	// 创建交易计划
	PlanCreate(ctx context.Context, p *entity.Plan) error
	// 根据id获取计划，校验归属
	PlanGetById(ctx context.Context, userId, planId int64) (entity.Plan, error)
	// 该用户全部计划，按创建时间倒序
	PlanList(ctx context.Context, userId int64) ([]entity.Plan, error)
	// 部分字段更新
	PlanUpdate(ctx context.Context, userId, planId int64, updates map[string]interface{}) error
	// 删除计划
	PlanDelete(ctx context.Context, userId, planId int64) error
}
