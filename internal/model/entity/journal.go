package entity

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/plugin/soft_delete"

	"tradevault/utils"
)

// JournalEntry 日志条目，一条完整（或开仓中）的往返交易记录
// source_hash 是同步入库的幂等键：同一券商账户下的同一个position
// 反复同步只会落到同一条记录上
type JournalEntry struct {
	Id         int64  `gorm:"column:id;primary_key;" json:"journal_entry_id"`
	UserId     int64  `gorm:"column:user_id;index" json:"user_id"`
	SetupId    int64  `gorm:"column:setup_id;index" json:"setup_id"` // 0表示未归入任何setup
	SourceHash string `gorm:"column:source_hash;unique" json:"source_hash"`
	Status     string `gorm:"column:status;default:closed" json:"status"` // open / closed

	// 交易本体
	Symbol     string    `gorm:"column:symbol" json:"symbol"`
	Direction  string    `gorm:"column:direction" json:"direction"` // long / short
	Volume     float64   `gorm:"column:volume" json:"volume"`
	EntryDate  time.Time `gorm:"column:entry_date;index" json:"entry_date"`
	EntryPrice float64   `gorm:"column:entry_price" json:"entry_price"`
	ExitDate   time.Time `gorm:"column:exit_date" json:"exit_date"`
	ExitPrice  float64   `gorm:"column:exit_price" json:"exit_price"`
	StopLoss   float64   `gorm:"column:stop_loss" json:"stop_loss"`
	TakeProfit float64   `gorm:"column:take_profit" json:"take_profit"`

	// 执行质量（暂时是占位值，等待评分器接入）
	EntryQuality int    `gorm:"column:entry_quality" json:"entry_quality"`
	ExitQuality  int    `gorm:"column:exit_quality" json:"exit_quality"`
	Grade        string `gorm:"column:grade" json:"grade"`

	// 市场环境
	MarketSession string `gorm:"column:market_session" json:"market_session"`

	// 交易结果
	Pnl        float64 `gorm:"column:pnl" json:"pnl"`
	HoldTimeMs int64   `gorm:"column:hold_time_ms" json:"hold_time_ms"` // 持仓时长，毫秒

	// 用户的复盘笔记，自由格式，创建时为空
	Learning datatypes.JSON `gorm:"column:learning" json:"learning"`

	CreatedAt utils.JsonTime        `gorm:"column:created_at" json:"created_at"`
	UpdatedAt utils.JsonTime        `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt utils.JsonTime        `gorm:"column:deleted_at" json:"deleted_at"`
	IsDel     soft_delete.DeletedAt `gorm:"softDelete:flag,DeletedAtField:DeletedAt"`
}

func (JournalEntry) TableName() string {
	return "journal_entry"
}
