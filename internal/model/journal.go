package model

import (
	"tradevault/internal/model/entity"
	"tradevault/utils"
)

// 持久化的日志条目对外契约：嵌套的文档结构
// trade / executionQuality / marketContext / results / learning 五个分组

type TradePayload struct {
	Symbol     string         `json:"symbol" binding:"required" label:"交易品种"`
	Type       string         `json:"type" binding:"required,oneof=long short" label:"方向"`
	Volume     float64        `json:"volume" label:"手数"`
	EntryDate  utils.JsonTime `json:"entry_date" label:"开仓时间"`
	EntryPrice float64        `json:"entry_price" binding:"required" label:"开仓价"`
	ExitDate   utils.JsonTime `json:"exit_date" label:"平仓时间"`
	ExitPrice  float64        `json:"exit_price" label:"平仓价"`
	StopLoss   float64        `json:"stop_loss"`
	TakeProfit float64        `json:"take_profit"`
}

type ExecutionQualityPayload struct {
	EntryQuality int    `json:"entry_quality"`
	ExitQuality  int    `json:"exit_quality"`
	Grade        string `json:"grade"`
}

type MarketContextPayload struct {
	MarketSession string `json:"market_session"`
}

type ResultsPayload struct {
	Pnl      float64 `json:"pnl"`
	HoldTime int64   `json:"hold_time"` // 毫秒
}

type JournalEntryCreateReq struct {
	SetupId          int64                   `json:"setup_id,string" label:"所属setup"`
	Trade            TradePayload            `json:"trade" binding:"required"`
	ExecutionQuality ExecutionQualityPayload `json:"execution_quality"`
	MarketContext    MarketContextPayload    `json:"market_context"`
	Results          ResultsPayload          `json:"results"`
	Learning         map[string]interface{}  `json:"learning"`
}

type JournalEntryCreateRes struct {
	JournalEntryId int64 `json:"journal_entry_id,string"`
}

// 编辑走merge语义：没有传的字段一律不动，所以全部用指针
type JournalEntryEditReq struct {
	SetupId          *int64                   `json:"setup_id,string"`
	Status           *string                  `json:"status"`
	Trade            *TradePayload            `json:"trade"`
	ExecutionQuality *ExecutionQualityPayload `json:"execution_quality"`
	MarketContext    *MarketContextPayload    `json:"market_context"`
	Results          *ResultsPayload          `json:"results"`
	Learning         map[string]interface{}   `json:"learning"`
}

type JournalEntryRes struct {
	JournalEntryId   int64                   `json:"journal_entry_id,string"`
	SetupId          int64                   `json:"setup_id,string"`
	Status           string                  `json:"status"`
	Trade            TradePayload            `json:"trade"`
	ExecutionQuality ExecutionQualityPayload `json:"execution_quality"`
	MarketContext    MarketContextPayload    `json:"market_context"`
	Results          ResultsPayload          `json:"results"`
	Learning         map[string]interface{}  `json:"learning"`
	CreatedAt        utils.JsonTime          `json:"created_at"`
	UpdatedAt        utils.JsonTime          `json:"updated_at"`
}

// JournalEntryResFrom 实体转响应结构
func JournalEntryResFrom(e entity.JournalEntry) JournalEntryRes {
	learning := map[string]interface{}{}
	if len(e.Learning) > 0 {
		// learning列存的是json对象，解析失败就按空map吐出
		_ = jsonUnmarshal(e.Learning, &learning)
	}
	return JournalEntryRes{
		JournalEntryId: e.Id,
		SetupId:        e.SetupId,
		Status:         e.Status,
		Trade: TradePayload{
			Symbol:     e.Symbol,
			Type:       e.Direction,
			Volume:     e.Volume,
			EntryDate:  utils.JsonTime(e.EntryDate),
			EntryPrice: e.EntryPrice,
			ExitDate:   utils.JsonTime(e.ExitDate),
			ExitPrice:  e.ExitPrice,
			StopLoss:   e.StopLoss,
			TakeProfit: e.TakeProfit,
		},
		ExecutionQuality: ExecutionQualityPayload{
			EntryQuality: e.EntryQuality,
			ExitQuality:  e.ExitQuality,
			Grade:        e.Grade,
		},
		MarketContext: MarketContextPayload{
			MarketSession: e.MarketSession,
		},
		Results: ResultsPayload{
			Pnl:      e.Pnl,
			HoldTime: e.HoldTimeMs,
		},
		Learning:  learning,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
