package service

import (
	"context"
	"time"

	json "github.com/goccy/go-json"
	"gorm.io/datatypes"

	"tradevault/internal/consts"
	"tradevault/internal/dao"
	"tradevault/internal/model"
	"tradevault/internal/model/entity"
	"tradevault/pkg/errors"
	"tradevault/pkg/errors/ecode"
	"tradevault/utils/uuid"
)

type JournalService interface {
	JournalCreate(ctx context.Context, userId int64, req model.JournalEntryCreateReq) (res model.JournalEntryCreateRes, err error)
	JournalGet(ctx context.Context, userId, entryId int64) (res model.JournalEntryRes, err error)
	JournalList(ctx context.Context, userId int64, page, pageSize int) (res []model.JournalEntryRes, err error)
	// 只更新请求里出现的字段
	JournalEdit(ctx context.Context, userId, entryId int64, req model.JournalEntryEditReq) error
	JournalDelete(ctx context.Context, userId, entryId int64) error
}

type journalService struct {
	jd   dao.JournalDao
	sd   dao.SetupDao
	iSrv uuid.SnowNode
}

func NewJournalService(jd dao.JournalDao, sd dao.SetupDao) *journalService {
	return &journalService{
		jd:   jd,
		sd:   sd,
		iSrv: *uuid.NewNode(4),
	}
}

func (j *journalService) JournalCreate(ctx context.Context, userId int64, req model.JournalEntryCreateReq) (res model.JournalEntryCreateRes, err error) {
	// 手工录入的条目也要归属校验，不能把条目挂到别人的setup上
	if req.SetupId != 0 {
		if _, err = j.sd.SetupGetById(ctx, userId, req.SetupId); err != nil {
			return res, errors.Wrap(err, ecode.NotFoundErr, "setup not found")
		}
	}

	e := entity.JournalEntry{
		Id:         j.iSrv.GenSnowID(),
		UserId:     userId,
		SetupId:    req.SetupId,
		Status:     consts.TradeStatusClosed,
		Symbol:     req.Trade.Symbol,
		Direction:  req.Trade.Type,
		Volume:     req.Trade.Volume,
		EntryDate:  time.Time(req.Trade.EntryDate),
		EntryPrice: req.Trade.EntryPrice,
		ExitDate:   time.Time(req.Trade.ExitDate),
		ExitPrice:  req.Trade.ExitPrice,
		StopLoss:   req.Trade.StopLoss,
		TakeProfit: req.Trade.TakeProfit,

		EntryQuality:  req.ExecutionQuality.EntryQuality,
		ExitQuality:   req.ExecutionQuality.ExitQuality,
		Grade:         req.ExecutionQuality.Grade,
		MarketSession: req.MarketContext.MarketSession,

		Pnl:        req.Results.Pnl,
		HoldTimeMs: req.Results.HoldTime,
	}
	// 手工条目没有券商流水，幂等键用服务端id推导，保证唯一约束不空转
	e.SourceHash = "manual:" + uuid.GenUUID16()
	if e.EntryQuality == 0 {
		e.EntryQuality = consts.DefaultEntryQuality
	}
	if e.ExitQuality == 0 {
		e.ExitQuality = consts.DefaultExitQuality
	}
	if e.Grade == "" {
		e.Grade = consts.DefaultGrade
	}
	if e.MarketSession == "" {
		e.MarketSession = consts.DefaultMarketSession
	}
	if e.HoldTimeMs == 0 && !time.Time(req.Trade.ExitDate).IsZero() {
		e.HoldTimeMs = time.Time(req.Trade.ExitDate).Sub(time.Time(req.Trade.EntryDate)).Milliseconds()
	}
	if len(req.Learning) > 0 {
		raw, merr := jsonMarshal(req.Learning)
		if merr != nil {
			return res, merr
		}
		e.Learning = datatypes.JSON(raw)
	}

	if err = j.jd.JournalCreate(ctx, &e); err != nil {
		return res, err
	}
	if e.SetupId != 0 {
		if err := j.sd.SetupAddPnl(ctx, e.SetupId, e.Pnl); err != nil {
			return res, err
		}
	}
	res.JournalEntryId = e.Id
	return res, nil
}

func (j *journalService) JournalGet(ctx context.Context, userId, entryId int64) (res model.JournalEntryRes, err error) {
	e, err := j.jd.JournalGetById(ctx, userId, entryId)
	if err != nil {
		return res, errors.Wrap(err, ecode.NotFoundErr, "journal entry not found")
	}
	return model.JournalEntryResFrom(e), nil
}

func (j *journalService) JournalList(ctx context.Context, userId int64, page, pageSize int) ([]model.JournalEntryRes, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 200 {
		pageSize = 50
	}
	entries, err := j.jd.JournalList(ctx, userId, page, pageSize)
	if err != nil {
		return nil, err
	}
	res := make([]model.JournalEntryRes, 0, len(entries))
	for _, e := range entries {
		res = append(res, model.JournalEntryResFrom(e))
	}
	return res, nil
}

func (j *journalService) JournalEdit(ctx context.Context, userId, entryId int64, req model.JournalEntryEditReq) error {
	existing, err := j.jd.JournalGetById(ctx, userId, entryId)
	if err != nil {
		return errors.Wrap(err, ecode.NotFoundErr, "journal entry not found")
	}

	updates := map[string]interface{}{}
	var pnlDelta float64
	oldSetupId := existing.SetupId

	if req.SetupId != nil && *req.SetupId != existing.SetupId {
		if *req.SetupId != 0 {
			if _, err := j.sd.SetupGetById(ctx, userId, *req.SetupId); err != nil {
				return errors.Wrap(err, ecode.NotFoundErr, "setup not found")
			}
		}
		updates["setup_id"] = *req.SetupId
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Trade != nil {
		t := req.Trade
		updates["symbol"] = t.Symbol
		updates["direction"] = t.Type
		updates["volume"] = t.Volume
		updates["entry_date"] = time.Time(t.EntryDate)
		updates["entry_price"] = t.EntryPrice
		updates["exit_date"] = time.Time(t.ExitDate)
		updates["exit_price"] = t.ExitPrice
		updates["stop_loss"] = t.StopLoss
		updates["take_profit"] = t.TakeProfit
	}
	if req.ExecutionQuality != nil {
		updates["entry_quality"] = req.ExecutionQuality.EntryQuality
		updates["exit_quality"] = req.ExecutionQuality.ExitQuality
		updates["grade"] = req.ExecutionQuality.Grade
	}
	if req.MarketContext != nil {
		updates["market_session"] = req.MarketContext.MarketSession
	}
	if req.Results != nil {
		updates["pnl"] = req.Results.Pnl
		updates["hold_time_ms"] = req.Results.HoldTime
		pnlDelta = req.Results.Pnl - existing.Pnl
	}
	if req.Learning != nil {
		raw, merr := jsonMarshal(req.Learning)
		if merr != nil {
			return merr
		}
		updates["learning"] = datatypes.JSON(raw)
	}
	if len(updates) == 0 {
		return nil
	}
	if err := j.jd.JournalUpdate(ctx, userId, entryId, updates); err != nil {
		return err
	}

	// setup的累计盈亏跟着条目走：换了setup要把旧账转走，盈亏变了要补差额
	newSetupId := oldSetupId
	if v, ok := updates["setup_id"]; ok {
		newSetupId = v.(int64)
	}
	newPnl := existing.Pnl + pnlDelta
	if newSetupId != oldSetupId {
		if oldSetupId != 0 {
			if err := j.sd.SetupAddPnl(ctx, oldSetupId, -existing.Pnl); err != nil {
				return err
			}
		}
		if newSetupId != 0 {
			if err := j.sd.SetupAddPnl(ctx, newSetupId, newPnl); err != nil {
				return err
			}
		}
	} else if pnlDelta != 0 && newSetupId != 0 {
		if err := j.sd.SetupAddPnl(ctx, newSetupId, pnlDelta); err != nil {
			return err
		}
	}
	return nil
}

func (j *journalService) JournalDelete(ctx context.Context, userId, entryId int64) error {
	existing, err := j.jd.JournalGetById(ctx, userId, entryId)
	if err != nil {
		return errors.Wrap(err, ecode.NotFoundErr, "journal entry not found")
	}
	if err := j.jd.JournalDelete(ctx, userId, entryId); err != nil {
		return err
	}
	if existing.SetupId != 0 {
		return j.sd.SetupAddPnl(ctx, existing.SetupId, -existing.Pnl)
	}
	return nil
}

func jsonMarshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}
