package query

import (
	"context"

	"gorm.io/gorm"

	"tradevault/internal/dao"
	"tradevault/internal/model/entity"
)

var _ dao.PlanDao = (*planDao)(nil)

type planDao struct {
	ds *gorm.DB
}

func NewPlanDao(ds *gorm.DB) *planDao {
	return &planDao{
		ds: ds,
	}
}

func (p *planDao) PlanCreate(ctx context.Context, plan *entity.Plan) error {
	return p.ds.WithContext(ctx).Create(plan).Error
}

func (p *planDao) PlanGetById(ctx context.Context, userId, planId int64) (entity.Plan, error) {
	var plan entity.Plan
	err := p.ds.WithContext(ctx).Where("id = ? AND user_id = ?", planId, userId).First(&plan).Error
	return plan, err
}

func (p *planDao) PlanList(ctx context.Context, userId int64) ([]entity.Plan, error) {
	var plans []entity.Plan
	err := p.ds.WithContext(ctx).Model(&entity.Plan{}).Where("user_id = ?", userId).Order("created_at desc").Find(&plans).Error
	return plans, err
}

func (p *planDao) PlanUpdate(ctx context.Context, userId, planId int64, updates map[string]interface{}) error {
	return p.ds.WithContext(ctx).Model(&entity.Plan{}).Where("id = ? AND user_id = ?", planId, userId).Updates(updates).Error
}

func (p *planDao) PlanDelete(ctx context.Context, userId, planId int64) error {
	return p.ds.WithContext(ctx).Where("user_id = ?", userId).Delete(&entity.Plan{Id: planId}).Error
}
