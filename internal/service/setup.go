package service

import (
	"context"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	json "github.com/goccy/go-json"

	"tradevault/internal/consts"
	"tradevault/internal/dao"
	"tradevault/internal/metrics"
	"tradevault/internal/model"
	"tradevault/internal/model/entity"
	"tradevault/pkg/cache"
	"tradevault/pkg/errors"
	"tradevault/pkg/errors/ecode"
	"tradevault/pkg/logger"
	"tradevault/utils"
	"tradevault/utils/uuid"
)

type SetupService interface {
	SetupCreate(ctx context.Context, userId int64, req model.SetupCreateReq) (res model.SetupCreateRes, err error)
	SetupGet(ctx context.Context, userId, setupId int64) (res model.SetupRes, err error)
	SetupList(ctx context.Context, userId int64) (res []model.SetupRes, err error)
	SetupEdit(ctx context.Context, userId, setupId int64, req model.SetupEditReq) error
	SetupDelete(ctx context.Context, userId, setupId int64) error
	// 全量重算该setup的三组指标
	SetupMetrics(ctx context.Context, userId, setupId int64) (res model.SetupMetricsRes, err error)
}

type setupService struct {
	sd   dao.SetupDao
	jd   dao.JournalDao
	iSrv uuid.SnowNode
	rc   *redis.Client
}

func NewSetupService(sd dao.SetupDao, jd dao.JournalDao) *setupService {
	return &setupService{
		sd:   sd,
		jd:   jd,
		iSrv: *uuid.NewNode(5),
		rc:   cache.GetRedisClient(),
	}
}

func (s *setupService) SetupCreate(ctx context.Context, userId int64, req model.SetupCreateReq) (res model.SetupCreateRes, err error) {
	setup := entity.Setup{
		Id:          s.iSrv.GenSnowID(),
		UserId:      userId,
		Name:        req.Name,
		Description: req.Description,
		TotalPnl:    0,
	}
	if err = s.sd.SetupCreate(ctx, &setup); err != nil {
		return res, err
	}
	res.SetupId = setup.Id
	return res, nil
}

func (s *setupService) SetupGet(ctx context.Context, userId, setupId int64) (res model.SetupRes, err error) {
	setup, err := s.sd.SetupGetById(ctx, userId, setupId)
	if err != nil {
		return res, errors.Wrap(err, ecode.NotFoundErr, "setup not found")
	}
	return setupResFrom(setup), nil
}

func (s *setupService) SetupList(ctx context.Context, userId int64) ([]model.SetupRes, error) {
	setups, err := s.sd.SetupList(ctx, userId)
	if err != nil {
		return nil, err
	}
	res := make([]model.SetupRes, 0, len(setups))
	for _, setup := range setups {
		res = append(res, setupResFrom(setup))
	}
	return res, nil
}

func (s *setupService) SetupEdit(ctx context.Context, userId, setupId int64, req model.SetupEditReq) error {
	if _, err := s.sd.SetupGetById(ctx, userId, setupId); err != nil {
		return errors.Wrap(err, ecode.NotFoundErr, "setup not found")
	}
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(updates) == 0 {
		return nil
	}
	return s.sd.SetupUpdate(ctx, userId, setupId, updates)
}

func (s *setupService) SetupDelete(ctx context.Context, userId, setupId int64) error {
	if _, err := s.sd.SetupGetById(ctx, userId, setupId); err != nil {
		return errors.Wrap(err, ecode.NotFoundErr, "setup not found")
	}
	return s.sd.SetupDelete(ctx, userId, setupId)
}

func (s *setupService) SetupMetrics(ctx context.Context, userId, setupId int64) (res model.SetupMetricsRes, err error) {
	if _, err = s.sd.SetupGetById(ctx, userId, setupId); err != nil {
		return res, errors.Wrap(err, ecode.NotFoundErr, "setup not found")
	}

	// 指标快照先查缓存，30秒的过期窗口可以接受
	rdsKey := consts.SetupMetricsPrefix + strconv.FormatInt(setupId, 10)
	if jsonBytes, cerr := s.rc.Get(ctx, rdsKey).Bytes(); cerr == nil {
		if err = json.Unmarshal(jsonBytes, &res); err == nil {
			return res, nil
		}
	}

	entries, err := s.jd.JournalListBySetup(ctx, userId, setupId)
	if err != nil {
		return res, err
	}
	core, consistency, execution := metrics.Compute(metrics.SamplesFrom(entries))
	res = model.SetupMetricsRes{
		SetupId:                 setupId,
		CoreMetrics:             core,
		ConsistencyMetrics:      consistency,
		ExecutionQualityMetrics: execution,
		GeneratedAt:             utils.JsonTime(time.Now()),
	}

	if jsonBytes, merr := json.Marshal(res); merr == nil {
		if cerr := s.rc.Set(ctx, rdsKey, jsonBytes, consts.RedisExrMetrics).Err(); cerr != nil {
			logger.Warnf("指标快照写缓存失败: %v", cerr)
		}
	}
	return res, nil
}

func setupResFrom(e entity.Setup) model.SetupRes {
	return model.SetupRes{
		SetupId:     e.Id,
		Name:        e.Name,
		Description: e.Description,
		TotalPnl:    e.TotalPnl,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
