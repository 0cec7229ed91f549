package service

import (
	"context"

	"gorm.io/datatypes"

	"tradevault/internal/dao"
	"tradevault/internal/model"
	"tradevault/internal/model/entity"
	"tradevault/pkg/errors"
	"tradevault/pkg/errors/ecode"
	"tradevault/utils/uuid"
)

type PlanService interface {
	PlanCreate(ctx context.Context, userId int64, req model.PlanCreateReq) (res model.PlanCreateRes, err error)
	PlanGet(ctx context.Context, userId, planId int64) (res model.PlanRes, err error)
	PlanList(ctx context.Context, userId int64) (res []model.PlanRes, err error)
	PlanEdit(ctx context.Context, userId, planId int64, req model.PlanEditReq) error
	PlanDelete(ctx context.Context, userId, planId int64) error
}

type planService struct {
	pd   dao.PlanDao
	iSrv uuid.SnowNode
}

func NewPlanService(pd dao.PlanDao) *planService {
	return &planService{
		pd:   pd,
		iSrv: *uuid.NewNode(6),
	}
}

func (p *planService) PlanCreate(ctx context.Context, userId int64, req model.PlanCreateReq) (res model.PlanCreateRes, err error) {
	plan := entity.Plan{
		Id:     p.iSrv.GenSnowID(),
		UserId: userId,
		Title:  req.Title,
	}
	if len(req.Content) > 0 {
		raw, merr := jsonMarshal(req.Content)
		if merr != nil {
			return res, merr
		}
		plan.Content = datatypes.JSON(raw)
	}
	if err = p.pd.PlanCreate(ctx, &plan); err != nil {
		return res, err
	}
	res.PlanId = plan.Id
	return res, nil
}

func (p *planService) PlanGet(ctx context.Context, userId, planId int64) (res model.PlanRes, err error) {
	plan, err := p.pd.PlanGetById(ctx, userId, planId)
	if err != nil {
		return res, errors.Wrap(err, ecode.NotFoundErr, "plan not found")
	}
	return model.PlanResFrom(plan), nil
}

func (p *planService) PlanList(ctx context.Context, userId int64) ([]model.PlanRes, error) {
	plans, err := p.pd.PlanList(ctx, userId)
	if err != nil {
		return nil, err
	}
	res := make([]model.PlanRes, 0, len(plans))
	for _, plan := range plans {
		res = append(res, model.PlanResFrom(plan))
	}
	return res, nil
}

func (p *planService) PlanEdit(ctx context.Context, userId, planId int64, req model.PlanEditReq) error {
	if _, err := p.pd.PlanGetById(ctx, userId, planId); err != nil {
		return errors.Wrap(err, ecode.NotFoundErr, "plan not found")
	}
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		raw, merr := jsonMarshal(req.Content)
		if merr != nil {
			return merr
		}
		updates["content"] = datatypes.JSON(raw)
	}
	if len(updates) == 0 {
		return nil
	}
	return p.pd.PlanUpdate(ctx, userId, planId, updates)
}

func (p *planService) PlanDelete(ctx context.Context, userId, planId int64) error {
	if _, err := p.pd.PlanGetById(ctx, userId, planId); err != nil {
		return errors.Wrap(err, ecode.NotFoundErr, "plan not found")
	}
	return p.pd.PlanDelete(ctx, userId, planId)
}
