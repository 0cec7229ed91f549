package dao

import (
	"context"

	"tradevault/internal/model/entity"
)

type JournalDao interface {
	// 创建日志条目
	JournalCreate(ctx context.Context, e *entity.JournalEntry) error
	// 根据id获取条目，校验归属
	JournalGetById(ctx context.Context, userId, entryId int64) (entity.JournalEntry, error)
	// 按用户分页查询，entry_date倒序
	JournalList(ctx context.Context, userId int64, page, pageSize int) ([]entity.JournalEntry, error)
	// 按setup查询该用户全部条目，entry_date升序
	JournalListBySetup(ctx context.Context, userId, setupId int64) ([]entity.JournalEntry, error)
	// 部分字段更新，updates的key是列名
	JournalUpdate(ctx context.Context, userId, entryId int64, updates map[string]interface{}) error
	// 删除条目
	JournalDelete(ctx context.Context, userId, entryId int64) error
	// 幂等落库：source_hash已存在则更新同步字段并带回更新前的旧行，
	// 否则插入。返回created=true表示走了插入分支
	JournalUpsertBySourceHash(ctx context.Context, e *entity.JournalEntry) (created bool, prev *entity.JournalEntry, err error)
}
