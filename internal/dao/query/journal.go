package query

import (
	"context"

	"gorm.io/gorm"

	"tradevault/internal/dao"
	"tradevault/internal/model/entity"
)

var _ dao.JournalDao = (*journalDao)(nil)

type journalDao struct {
	ds *gorm.DB
}

func NewJournalDao(ds *gorm.DB) *journalDao {
	return &journalDao{
		ds: ds,
	}
}

func (j *journalDao) JournalCreate(ctx context.Context, e *entity.JournalEntry) error {
	return j.ds.WithContext(ctx).Create(e).Error
}

func (j *journalDao) JournalGetById(ctx context.Context, userId, entryId int64) (entity.JournalEntry, error) {
	var e entity.JournalEntry
	err := j.ds.WithContext(ctx).Where("id = ? AND user_id = ?", entryId, userId).First(&e).Error
	return e, err
}

func (j *journalDao) JournalList(ctx context.Context, userId int64, page, pageSize int) ([]entity.JournalEntry, error) {
	var entries []entity.JournalEntry
	// 分页查询
	offset := (page - 1) * pageSize
	err := j.ds.WithContext(ctx).Model(&entity.JournalEntry{}).Where("user_id = ?", userId).Limit(pageSize).Offset(offset).Order("entry_date desc").Find(&entries).Error
	return entries, err
}

func (j *journalDao) JournalListBySetup(ctx context.Context, userId, setupId int64) ([]entity.JournalEntry, error) {
	var entries []entity.JournalEntry
	// 指标计算依赖entry_date升序，排序放在库里做
	err := j.ds.WithContext(ctx).Model(&entity.JournalEntry{}).Where("user_id = ? AND setup_id = ?", userId, setupId).Order("entry_date asc").Find(&entries).Error
	return entries, err
}

func (j *journalDao) JournalUpdate(ctx context.Context, userId, entryId int64, updates map[string]interface{}) error {
	return j.ds.WithContext(ctx).Model(&entity.JournalEntry{}).Where("id = ? AND user_id = ?", entryId, userId).Updates(updates).Error
}

func (j *journalDao) JournalDelete(ctx context.Context, userId, entryId int64) error {
	return j.ds.WithContext(ctx).Where("user_id = ?", userId).Delete(&entity.JournalEntry{Id: entryId}).Error
}

func (j *journalDao) JournalUpsertBySourceHash(ctx context.Context, e *entity.JournalEntry) (bool, *entity.JournalEntry, error) {
	var existing entity.JournalEntry
	err := j.ds.WithContext(ctx).Where("source_hash = ?", e.SourceHash).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return true, nil, j.ds.WithContext(ctx).Create(e).Error
	}
	if err != nil {
		return false, nil, err
	}
	// 只覆盖券商侧派生的字段，setup归属和复盘笔记是用户的数据，不动
	updates := map[string]interface{}{
		"status":       e.Status,
		"symbol":       e.Symbol,
		"direction":    e.Direction,
		"volume":       e.Volume,
		"entry_date":   e.EntryDate,
		"entry_price":  e.EntryPrice,
		"exit_date":    e.ExitDate,
		"exit_price":   e.ExitPrice,
		"stop_loss":    e.StopLoss,
		"take_profit":  e.TakeProfit,
		"pnl":          e.Pnl,
		"hold_time_ms": e.HoldTimeMs,
	}
	err = j.ds.WithContext(ctx).Model(&entity.JournalEntry{}).Where("id = ?", existing.Id).Updates(updates).Error
	if err == nil {
		e.Id = existing.Id
	}
	return false, &existing, err
}
